// SPDX-License-Identifier: EPL-2.0

package curve

// Hilbert is the 2-D Hilbert curve of side 2^order. Both directions run in
// O(order) per point, no table is materialized.
type Hilbert struct {
	order int
	side  int
}

func NewHilbert(order int) (*Hilbert, error) {
	if err := checkOrder(order, MaxHilbertOrder); err != nil {
		return nil, err
	}
	return &Hilbert{order: order, side: 1 << order}, nil
}

func (h *Hilbert) Order() int      { return h.order }
func (h *Hilbert) SideLength() int { return h.side }
func (h *Hilbert) Len() int        { return h.side * h.side }

func (h *Hilbert) Generate() []Point {
	out := make([]Point, h.Len())
	for i := range out {
		out[i] = h.At(i)
	}
	return out
}

// At returns the i-th point of the curve. i must be in [0, Len()).
func (h *Hilbert) At(i int) Point {
	var x, y int
	t := i
	for s := 1; s < h.side; s <<= 1 {
		rx := 1 & (t / 2)
		ry := 1 & (t ^ rx)
		x, y = rotate(s, x, y, rx, ry)
		x += s * rx
		y += s * ry
		t /= 4
	}
	return Point{X: x, Y: y}
}

func (h *Hilbert) IndexOf(p Point) (int, bool) {
	if !inside(p, h.side) {
		return 0, false
	}

	x, y := p.X, p.Y
	d := 0
	for s := h.side / 2; s > 0; s /= 2 {
		var rx, ry int
		if x&s > 0 {
			rx = 1
		}
		if y&s > 0 {
			ry = 1
		}
		d += s * s * ((3 * rx) ^ ry)
		x, y = rotate(h.side, x, y, rx, ry)
	}
	return d, true
}

// rotate flips and transposes a quadrant so the sub-curve is oriented
// the same way as its parent.
func rotate(n, x, y, rx, ry int) (int, int) {
	if ry != 0 {
		return x, y
	}
	if rx == 1 {
		x = n - 1 - x
		y = n - 1 - y
	}
	return y, x
}
