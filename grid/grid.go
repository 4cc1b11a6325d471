package grid

import "fmt"

// Grid describes a rectangular lattice of Width×Height points together with
// the start and end points of the snake. It is immutable once built.
type Grid struct {
	Width, Height int
	Start, End    Point
}

// New constructs a validated Grid. Returns ErrBadDimensions if width or
// height is below 1, or ErrOutOfBounds (wrapped with the offending point)
// if start or end fall outside the lattice. Start and end may coincide;
// on a single-point grid that is the degenerate solvable case.
// Complexity: O(1).
func New(width, height int, start, end Point) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, ErrBadDimensions
	}
	g := &Grid{Width: width, Height: height, Start: start, End: end}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("grid: start %v: %w", start, ErrOutOfBounds)
	}
	if !g.InBounds(end) {
		return nil, fmt.Errorf("grid: end %v: %w", end, ErrOutOfBounds)
	}

	return g, nil
}

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Size returns the total number of lattice points, Width×Height.
func (g *Grid) Size() int {
	return g.Width * g.Height
}

// Index maps p to its row-major index: Y*Width + X.
// Complexity: O(1).
func (g *Grid) Index(p Point) int {
	return p.Y*g.Width + p.X
}

// Coordinate converts a row-major index back to a Point.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Point {
	return Point{X: idx % g.Width, Y: idx / g.Width}
}
