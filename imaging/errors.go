// SPDX-License-Identifier: EPL-2.0

package imaging

import "errors"

var (
	ErrEmpty       = errors.New("empty image")
	ErrInvalidSize = errors.New("invalid target size")
)
