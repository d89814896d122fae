// SPDX-License-Identifier: EPL-2.0

package config

import "errors"

var (
	ErrInvalid            = errors.New("invalid configuration")
	ErrUnknownConverter   = errors.New("unknown converter")
	ErrUnknownScale       = errors.New("unknown audio scale")
	ErrUnknownCurve       = errors.New("unknown curve")
	ErrUnknownOrientation = errors.New("unknown scan orientation")
)
