// SPDX-License-Identifier: EPL-2.0

package scale

import "errors"

var (
	// ErrInvalidRange indicates bounds that are negative, non-finite or not
	// strictly increasing.
	ErrInvalidRange = errors.New("invalid frequency range")
)
