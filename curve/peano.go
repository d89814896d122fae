// SPDX-License-Identifier: EPL-2.0

package curve

import "sync"

// Peano is the serpentine Peano curve of side 3^order.
//
// Generation walks the classic nine-cell recursion. There is no closed-form
// inverse here, so the first call to Generate or IndexOf materializes the
// enumeration together with an inverse table; later calls are lookups.
type Peano struct {
	order int
	side  int

	once    sync.Once
	points  []Point
	indices []int // indexed by y*side + x
}

func NewPeano(order int) (*Peano, error) {
	if err := checkOrder(order, MaxPeanoOrder); err != nil {
		return nil, err
	}

	side := 1
	for range order {
		side *= 3
	}
	return &Peano{order: order, side: side}, nil
}

func (p *Peano) Order() int      { return p.order }
func (p *Peano) SideLength() int { return p.side }
func (p *Peano) Len() int        { return p.side * p.side }

func (p *Peano) Generate() []Point {
	p.once.Do(p.build)

	out := make([]Point, len(p.points))
	copy(out, p.points)
	return out
}

func (p *Peano) IndexOf(pt Point) (int, bool) {
	if !inside(pt, p.side) {
		return 0, false
	}
	p.once.Do(p.build)
	return p.indices[pt.Y*p.side+pt.X], true
}

func (p *Peano) build() {
	w := &peanoWalker{
		xDir:   1,
		yDir:   1,
		points: make([]Point, 0, p.Len()),
	}
	w.walk(p.order, 0, 0)

	p.points = w.points
	p.indices = make([]int, len(w.points))
	for i, pt := range w.points {
		p.indices[pt.Y*p.side+pt.X] = i
	}
}

// peanoWalker carries the cursor and the current sweep directions through
// the recursion. Every level visits three columns of three cells; within a
// column the horizontal direction flips between cells and the vertical
// direction flips between columns.
type peanoWalker struct {
	x, y       int
	xDir, yDir int
	points     []Point
}

func (w *peanoWalker) walk(depth, dx, dy int) {
	if depth == 0 {
		w.points = append(w.points, Point{X: w.x, Y: w.y})
		w.x += dx
		w.y += dy
		return
	}

	for column := range 3 {
		w.walk(depth-1, 0, w.yDir)
		w.xDir = -w.xDir
		w.walk(depth-1, 0, w.yDir)
		w.xDir = -w.xDir

		if column == 2 {
			w.walk(depth-1, dx, dy)
			return
		}

		w.walk(depth-1, w.xDir, 0)
		w.yDir = -w.yDir
	}
}
