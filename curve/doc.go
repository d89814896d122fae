// SPDX-License-Identifier: EPL-2.0

// Package curve implements space-filling curves and the binding of curve
// positions to frequencies.
//
// A space-filling curve orders the cells of a square grid so that cells
// close on the curve are also close on the grid. Mapping curve index to
// frequency therefore keeps neighbouring pixels on neighbouring pitches.
//
//	h, _ := curve.NewHilbert(2) // 4x4 grid, 16 points
//	for i, p := range h.Generate() {
//	    j, _ := h.IndexOf(p) // j == i
//	}
//
// FrequencyCurve pairs a curve with one frequency per point:
//
//	mel, _ := scale.NewMel(100, 800)
//	fc := curve.FromScale(h, mel)
//	hz, ok := fc.Frequency(curve.Point{X: 1, Y: 3})
package curve
