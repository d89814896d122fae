// SPDX-License-Identifier: EPL-2.0

package curve

import (
	"fmt"
	"iter"

	"github.com/ik5/owl/scale"
)

// FrequencyCurve assigns one frequency to every point of a curve, in curve
// order: the i-th generated point gets the i-th frequency.
type FrequencyCurve struct {
	curve  Curve
	points []Point
	freqs  []float64
}

// NewFrequencyCurve binds freqs to c. len(freqs) must equal c.Len().
func NewFrequencyCurve(c Curve, freqs []float64) (*FrequencyCurve, error) {
	if len(freqs) != c.Len() {
		return nil, fmt.Errorf("%w: %d frequencies for %d points",
			ErrFrequencyCountMismatch, len(freqs), c.Len())
	}

	fs := make([]float64, len(freqs))
	copy(fs, freqs)

	return &FrequencyCurve{
		curve:  c,
		points: c.Generate(),
		freqs:  fs,
	}, nil
}

// FromScale spreads s over every point of c.
func FromScale(c Curve, s scale.Scale) *FrequencyCurve {
	return &FrequencyCurve{
		curve:  c,
		points: c.Generate(),
		freqs:  s.Range(c.Len()),
	}
}

func (fc *FrequencyCurve) Curve() Curve    { return fc.curve }
func (fc *FrequencyCurve) SideLength() int { return fc.curve.SideLength() }
func (fc *FrequencyCurve) Len() int        { return len(fc.freqs) }
func (fc *FrequencyCurve) Points() []Point { return append([]Point(nil), fc.points...) }

// Frequencies returns a copy of the frequencies in curve order.
func (fc *FrequencyCurve) Frequencies() []float64 {
	return append([]float64(nil), fc.freqs...)
}

// Frequency returns the frequency bound to p. ok is false when p lies
// outside the curve's grid.
func (fc *FrequencyCurve) Frequency(p Point) (float64, bool) {
	i, ok := fc.curve.IndexOf(p)
	if !ok {
		return 0, false
	}
	return fc.freqs[i], true
}

// All yields (point, frequency) pairs in curve order.
func (fc *FrequencyCurve) All() iter.Seq2[Point, float64] {
	return func(yield func(Point, float64) bool) {
		for i, p := range fc.points {
			if !yield(p, fc.freqs[i]) {
				return
			}
		}
	}
}
