// SPDX-License-Identifier: EPL-2.0

package imaging

import (
	"math"
	"slices"
)

// Median returns the median brightness of the frame.
func Median(f *Frame) float64 {
	if f.Empty() {
		return 0
	}

	sorted := slices.Clone(f.Pix)
	slices.Sort(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// MedianThreshold zeroes every pixel at or below the frame's median and
// keeps the brightness of the rest.
func MedianThreshold(f *Frame) *Frame {
	m := Median(f)
	out := f.Clone()
	for i, v := range out.Pix {
		if v <= m {
			out.Pix[i] = 0
		}
	}
	return out
}

// Foreground lists the non-zero pixels of f as weighted points. Brightness
// is quantized to levels steps; pixels that quantize to zero are skipped.
func Foreground(f *Frame, levels int) []WeightedPoint {
	if f.Empty() || levels <= 0 {
		return nil
	}

	var points []WeightedPoint
	for y := range f.Height {
		for x := range f.Width {
			w := math.Floor(clamp(f.At(x, y), 0, 1) * float64(levels))
			if w <= 0 {
				continue
			}
			points = append(points, WeightedPoint{X: float64(x), Y: float64(y), Weight: w})
		}
	}
	return points
}
