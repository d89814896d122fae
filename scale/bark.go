// SPDX-License-Identifier: EPL-2.0

package scale

import "math"

// barkInverseIterations bounds the bisection in Bark.ToHz. 80 halvings of
// the bracket take any sane audio interval below float64 resolution.
const barkInverseIterations = 80

// Bark is the Zwicker & Terhardt critical band rate:
//
//	z = 13*atan(0.00076*hz) + 3.5*atan((hz/7500)^2)
//
// The forward transform has no closed-form inverse. ToHz inverts it
// numerically by bisection, which is exact to float64 resolution inside
// the monotonic domain (hz >= 0).
type Bark struct {
	bounds
}

// NewBark returns a Zwicker bark scale spanning [minHz, maxHz].
func NewBark(minHz, maxHz float64) (*Bark, error) {
	b, err := newBounds(minHz, maxHz)
	if err != nil {
		return nil, err
	}
	return &Bark{bounds: b}, nil
}

func (*Bark) ToScale(hz float64) float64 {
	return barkFromHz(hz)
}

func (*Bark) ToHz(value float64) float64 {
	if value <= 0 {
		return 0
	}

	// Grow the bracket until it contains value. The forward transform
	// saturates near 13*pi/2 + 3.5*pi/2, so cap the search.
	lo, hi := 0.0, 1000.0
	for barkFromHz(hi) < value {
		lo = hi
		hi *= 2
		if hi > 1e9 {
			return math.Inf(1)
		}
	}

	for range barkInverseIterations {
		mid := (lo + hi) / 2
		if barkFromHz(mid) < value {
			lo = mid
		} else {
			hi = mid
		}
	}

	return (lo + hi) / 2
}

func (b *Bark) Range(n int) []float64 {
	return rangeOf(b, n)
}

func barkFromHz(hz float64) float64 {
	r := hz / 7500
	return 13*math.Atan(0.00076*hz) + 3.5*math.Atan(r*r)
}

// BarkAsinh is the Wang, Sekey & Gersho approximation of the bark scale:
//
//	z  = 6 * asinh(hz/600)
//	hz = 600 * sinh(z/6)
type BarkAsinh struct {
	bounds
}

// NewBarkAsinh returns an asinh bark scale spanning [minHz, maxHz].
func NewBarkAsinh(minHz, maxHz float64) (*BarkAsinh, error) {
	b, err := newBounds(minHz, maxHz)
	if err != nil {
		return nil, err
	}
	return &BarkAsinh{bounds: b}, nil
}

func (*BarkAsinh) ToScale(hz float64) float64 {
	return 6 * math.Asinh(hz/600)
}

func (*BarkAsinh) ToHz(value float64) float64 {
	return 600 * math.Sinh(value/6)
}

func (b *BarkAsinh) Range(n int) []float64 {
	return rangeOf(b, n)
}
