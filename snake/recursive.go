package snake

import (
	"fmt"

	"github.com/katalvlaran/gridsnake/grid"
)

// SolveRecursive searches for a Hamiltonian path on g using depth-first
// backtracking with call-stack recursion. It returns the first complete
// path found under the fixed candidate ordering, or Result{Found: false}
// when the search space is exhausted.
//
// Recursion depth is bounded by W×H, the path length.
//
// Complexity: worst case exponential in W×H; memory O(W×H).
func SolveRecursive(g *grid.Grid) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGrid
	}

	st := grid.NewVisitState(g)
	if err := st.Push(g.Start); err != nil {
		return Result{}, fmt.Errorf("snake: seed start: %w", err)
	}

	if extend(st, g.Start) {
		return Result{Found: true, Path: st.Path()}, nil
	}

	return Result{}, nil
}

// extend grows the path from p depth-first, returning true as soon as the
// path is complete. On failure the visit state is restored to its state at
// entry, so the caller can try its own next candidate.
func extend(st *grid.VisitState, p grid.Point) bool {
	if st.Complete() {
		return true
	}

	for _, next := range st.Candidates(p) {
		// Candidates already vetted next: in bounds, unvisited, adjacent.
		_ = st.Push(next)
		if extend(st, next) {
			return true
		}
		_ = st.Pop()
	}

	return false
}
