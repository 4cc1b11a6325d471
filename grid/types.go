// Package grid defines core types and sentinel errors for the gridsnake
// data model.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and path mutation.
var (
	// ErrBadDimensions indicates a grid with width or height below 1.
	ErrBadDimensions = errors.New("grid: width and height must be at least 1")
	// ErrOutOfBounds indicates a point outside the lattice.
	ErrOutOfBounds = errors.New("grid: point lies outside the lattice")
	// ErrVisited indicates a Push of a point already on the path.
	ErrVisited = errors.New("grid: point already on the path")
	// ErrNotAdjacent indicates a Push of a point not adjacent to the path head.
	ErrNotAdjacent = errors.New("grid: point is not adjacent to the path head")
	// ErrEmptyPath indicates a Pop on an empty path.
	ErrEmptyPath = errors.New("grid: path is empty")
)

// Point is a single lattice point identified by its (X, Y) coordinates,
// with X growing rightwards and Y growing downwards.
type Point struct {
	X, Y int
}

// Add returns the point translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Adjacent reports whether p and q are 4-connected neighbors, differing
// by exactly 1 in one coordinate and 0 in the other.
func (p Point) Adjacent(q Point) bool {
	dx, dy := p.X-q.X, p.Y-q.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}

	return dx+dy == 1
}

// String formats the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// searchDirections fixes the deterministic candidate ordering used by every
// solver: Right, Left, Down, Up. The ordering decides which valid path is
// found first; it never affects solvability.
var searchDirections = [4]Point{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Directions returns the fixed candidate direction ordering.
func Directions() [4]Point {
	return searchDirections
}
