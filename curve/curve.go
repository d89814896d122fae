// SPDX-License-Identifier: EPL-2.0

package curve

import "fmt"

const (
	// MaxHilbertOrder keeps SideLength()^2 inside a 32-bit index.
	MaxHilbertOrder = 15
	// MaxPeanoOrder keeps SideLength()^2 inside a 32-bit index.
	MaxPeanoOrder = 9
)

// Point is a cell of a square grid. X is the column, Y the row.
type Point struct {
	X, Y int
}

// Curve is a space-filling curve: a bijection between the indices
// [0, SideLength()^2) and the cells of a SideLength() x SideLength() grid.
type Curve interface {
	Order() int
	SideLength() int
	// Len returns SideLength()^2.
	Len() int
	// Generate returns every grid cell in curve order.
	Generate() []Point
	// IndexOf is the inverse of Generate. ok is false when p lies outside
	// the grid.
	IndexOf(p Point) (index int, ok bool)
}

func checkOrder(order, limit int) error {
	if order < 0 || order > limit {
		return fmt.Errorf("%w: %d (want 0..%d)", ErrInvalidOrder, order, limit)
	}
	return nil
}

func inside(p Point, side int) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < side && p.Y < side
}
