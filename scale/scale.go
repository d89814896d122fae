// SPDX-License-Identifier: EPL-2.0

package scale

import (
	"fmt"
	"math"
)

// Scale is a monotonic warp of the frequency axis.
//
// ToHz must invert ToScale within numerical tolerance. Range returns n
// frequencies spaced evenly in scale space between MinHz and MaxHz.
type Scale interface {
	MinHz() float64
	MaxHz() float64
	ToScale(hz float64) float64
	ToHz(value float64) float64
	Range(n int) []float64
}

// bounds holds the Hz interval shared by every scale.
type bounds struct {
	min float64
	max float64
}

func newBounds(minHz, maxHz float64) (bounds, error) {
	if math.IsNaN(minHz) || math.IsNaN(maxHz) || math.IsInf(minHz, 0) || math.IsInf(maxHz, 0) {
		return bounds{}, fmt.Errorf("%w: non-finite bound", ErrInvalidRange)
	}
	if minHz < 0 || minHz >= maxHz {
		return bounds{}, fmt.Errorf("%w: min=%.2f max=%.2f", ErrInvalidRange, minHz, maxHz)
	}
	return bounds{min: minHz, max: maxHz}, nil
}

func (b bounds) MinHz() float64 { return b.min }
func (b bounds) MaxHz() float64 { return b.max }

// rangeOf subdivides [to(min), to(max)] linearly into n points and maps
// each one back to Hz. The end points are pinned to the exact bounds and
// interior points are clamped, so round-trip error can never push a value
// outside [min, max].
func rangeOf(s Scale, n int) []float64 {
	if n <= 0 {
		return nil
	}

	lo, hi := s.MinHz(), s.MaxHz()
	if n == 1 {
		return []float64{lo}
	}

	from := s.ToScale(lo)
	to := s.ToScale(hi)
	step := (to - from) / float64(n-1)

	out := make([]float64, n)
	out[0] = lo
	out[n-1] = hi
	for i := 1; i < n-1; i++ {
		hz := s.ToHz(from + step*float64(i))
		out[i] = math.Min(math.Max(hz, lo), hi)
	}

	return out
}
