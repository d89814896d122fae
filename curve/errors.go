// SPDX-License-Identifier: EPL-2.0

package curve

import "errors"

var (
	// ErrInvalidOrder indicates a negative or too large recursion depth.
	ErrInvalidOrder = errors.New("invalid curve order")

	// ErrFrequencyCountMismatch indicates a frequency list whose length
	// differs from the number of curve points.
	ErrFrequencyCountMismatch = errors.New("frequency count does not match curve length")
)
