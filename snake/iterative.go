package snake

import (
	"fmt"

	"github.com/katalvlaran/gridsnake/grid"
)

// frame records one suspended search branch: the point it placed on the
// path and a cursor into the direction table pointing at the next candidate
// direction to try. Cursor state survives backtracking, so a direction that
// already failed is never re-examined.
type frame struct {
	point grid.Point
	dirn  int
}

// SolveIterative searches for a Hamiltonian path on g using depth-first
// backtracking with an explicit frame stack instead of recursion. It is
// behaviorally identical to SolveRecursive: for any grid both return the
// same path, or both report no solution.
//
// The frame stack always mirrors the current path exactly, one frame per
// path point, which keeps memory at O(W×H) with no call-stack growth.
//
// Complexity: worst case exponential in W×H; memory O(W×H).
func SolveIterative(g *grid.Grid) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGrid
	}

	st := grid.NewVisitState(g)
	if err := st.Push(g.Start); err != nil {
		return Result{}, fmt.Errorf("snake: seed start: %w", err)
	}

	dirs := grid.Directions()
	stack := make([]frame, 1, g.Size())
	stack[0] = frame{point: g.Start}

	for len(stack) > 0 {
		if st.Complete() {
			return Result{Found: true, Path: st.Path()}, nil
		}

		top := &stack[len(stack)-1]

		// Cursor exhausted: backtrack. The parent frame's cursor already
		// points past the direction that led here, so it resumes with the
		// next untried candidate.
		if top.dirn >= len(dirs) {
			_ = st.Pop()
			stack = stack[:len(stack)-1]

			continue
		}

		next := top.point.Add(dirs[top.dirn])
		top.dirn++

		if !g.InBounds(next) || st.Visited(next) {
			continue
		}

		// Descend: place the candidate and open a fresh frame for it.
		_ = st.Push(next)
		stack = append(stack, frame{point: next})
	}

	return Result{}, nil
}
