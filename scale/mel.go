// SPDX-License-Identifier: EPL-2.0

package scale

import "math"

// Mel is the O'Shaughnessy mel scale:
//
//	m  = 2595 * log10(1 + hz/700)
//	hz = 700 * (10^(m/2595) - 1)
type Mel struct {
	bounds
}

// NewMel returns a mel scale spanning [minHz, maxHz].
func NewMel(minHz, maxHz float64) (*Mel, error) {
	b, err := newBounds(minHz, maxHz)
	if err != nil {
		return nil, err
	}
	return &Mel{bounds: b}, nil
}

func (*Mel) ToScale(hz float64) float64 {
	return melFromHz(hz)
}

func (*Mel) ToHz(value float64) float64 {
	return hzFromMel(value)
}

func (m *Mel) Range(n int) []float64 {
	return rangeOf(m, n)
}

func melFromHz(hz float64) float64 {
	return 2595 * math.Log10(1+hz/700)
}

func hzFromMel(m float64) float64 {
	return 700 * (math.Pow(10, m/2595) - 1)
}
