package grid

import "fmt"

// VisitState tracks a path under construction: the set of visited points
// and the ordered path itself, earliest-visited first. The two are kept in
// lockstep, so len(path) always equals the number of visited points.
//
// A VisitState is owned by a single solve invocation and must not be shared
// across concurrent solves.
type VisitState struct {
	grid    *Grid
	visited []bool // row-major, indexed by grid.Index
	path    []Point
}

// NewVisitState returns an empty VisitState for g. The grid must be non-nil.
// Complexity: O(W×H) for the visited bitset allocation.
func NewVisitState(g *Grid) *VisitState {
	return &VisitState{
		grid:    g,
		visited: make([]bool, g.Size()),
		path:    make([]Point, 0, g.Size()),
	}
}

// Push appends p to the path and marks it visited. Returns ErrOutOfBounds,
// ErrVisited, or ErrNotAdjacent (all wrapped with p) when the move violates
// the path invariants; such a failure signals a caller bug, never puzzle
// unsolvability.
// Complexity: O(1).
func (s *VisitState) Push(p Point) error {
	if !s.grid.InBounds(p) {
		return fmt.Errorf("grid: push %v: %w", p, ErrOutOfBounds)
	}
	if s.visited[s.grid.Index(p)] {
		return fmt.Errorf("grid: push %v: %w", p, ErrVisited)
	}
	if n := len(s.path); n > 0 && !p.Adjacent(s.path[n-1]) {
		return fmt.Errorf("grid: push %v: %w", p, ErrNotAdjacent)
	}
	s.visited[s.grid.Index(p)] = true
	s.path = append(s.path, p)

	return nil
}

// Pop removes the last point from the path and unmarks it.
// Returns ErrEmptyPath if the path is empty.
// Complexity: O(1).
func (s *VisitState) Pop() error {
	n := len(s.path)
	if n == 0 {
		return ErrEmptyPath
	}
	s.visited[s.grid.Index(s.path[n-1])] = false
	s.path = s.path[:n-1]

	return nil
}

// Last returns the current path head. The boolean is false when the path
// is empty.
func (s *VisitState) Last() (Point, bool) {
	if len(s.path) == 0 {
		return Point{}, false
	}

	return s.path[len(s.path)-1], true
}

// Len returns the number of points on the path.
func (s *VisitState) Len() int {
	return len(s.path)
}

// Visited reports whether p is already on the path. Out-of-bounds points
// are never visited.
func (s *VisitState) Visited(p Point) bool {
	return s.grid.InBounds(p) && s.visited[s.grid.Index(p)]
}

// Complete reports whether the path covers every lattice point and ends at
// the grid's end point. Checking the path length is sufficient for coverage
// because the path never contains duplicates.
func (s *VisitState) Complete() bool {
	n := len(s.path)

	return n == s.grid.Size() && s.path[n-1] == s.grid.End
}

// Candidates returns the unvisited in-bounds neighbors of p in the fixed
// direction ordering (Right, Left, Down, Up).
// Complexity: O(1); at most four neighbors.
func (s *VisitState) Candidates(p Point) []Point {
	out := make([]Point, 0, len(searchDirections))
	for _, d := range searchDirections {
		n := p.Add(d)
		if s.grid.InBounds(n) && !s.visited[s.grid.Index(n)] {
			out = append(out, n)
		}
	}

	return out
}

// Path returns a copy of the path built so far, earliest-visited first.
func (s *VisitState) Path() []Point {
	out := make([]Point, len(s.path))
	copy(out, s.path)

	return out
}
