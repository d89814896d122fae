// SPDX-License-Identifier: EPL-2.0

package video

import "errors"

var (
	ErrUnsupportedInput = errors.New("unsupported video input")
	ErrNoFrames         = errors.New("input has no frames")
	ErrInvalidFPS       = errors.New("frame rate must be positive")
)
