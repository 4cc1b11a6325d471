// Package snake - unified dispatcher for the Hamiltonian path solvers.
package snake

import "github.com/katalvlaran/gridsnake/grid"

// Solve runs the configured search strategy on g and returns its Result.
// The default strategy is Recursive; select another with WithMethod.
//
// Contracts:
//   - g must be non-nil (ErrNilGrid otherwise).
//   - Repeated calls on the same Grid return the same Result: the search is
//     deterministic for the fixed candidate ordering.
//
// Complexity: that of the selected strategy (worst case exponential).
func Solve(g *grid.Grid, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGrid
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	switch o.Method {
	case Recursive:
		return SolveRecursive(g)
	case Iterative:
		return SolveIterative(g)
	default:
		return Result{}, ErrUnknownMethod
	}
}
