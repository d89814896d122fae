// SPDX-License-Identifier: EPL-2.0

package output

import "errors"

var (
	ErrAlreadyOpen  = errors.New("sink already open")
	ErrNotOpen      = errors.New("sink not open")
	ErrInvalidRate  = errors.New("sample rate must be positive")
	ErrRateMismatch = errors.New("audio device already running at another rate")
)
