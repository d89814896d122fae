// SPDX-License-Identifier: EPL-2.0

package synth

import "errors"

var (
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrLengthMismatch    = errors.New("value count does not match oscillator count")
)
