// SPDX-License-Identifier: EPL-2.0

package engine

import "errors"

var (
	ErrNoSink   = errors.New("engine has no sink")
	ErrNoSource = errors.New("engine needs a video source and a converter")
)
