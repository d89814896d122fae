// SPDX-License-Identifier: EPL-2.0

package convert

import "errors"

var (
	ErrOutOfBoundsCluster = errors.New("cluster center outside curve bounds")
	ErrInvalidStripCount  = errors.New("invalid strip count")
	ErrNoFrequencies      = errors.New("converter needs at least one frequency")
	ErrEmptyFrame         = errors.New("empty frame")
	ErrInvalidParameter   = errors.New("invalid converter parameter")
)
