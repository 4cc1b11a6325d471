// Package snake implements Hamiltonian path search on a rectangular grid:
// find a path that visits every lattice point exactly once, starting and
// ending at given points, moving only between 4-connected neighbors.
//
// What:
//
//   - SolveRecursive: depth-first backtracking using call-stack recursion.
//   - SolveIterative: the same search re-expressed with an explicit frame
//     stack, for hosts where recursion depth is a concern.
//   - Solve: unified dispatcher selecting a Method via functional options.
//
// Both strategies stop at the first complete path (no enumeration of all
// solutions) and report exhaustion as a normal negative Result, never as an
// error. For a fixed candidate ordering the two are behaviorally identical:
// same found path, or both NotFound, on any grid.
//
// Why:
//
//   - The recursive form is the natural reading of the algorithm.
//   - The iterative form demonstrates the mechanical conversion of any
//     recursive backtracking search into a stack of resumable frames,
//     bounding memory at O(W×H) without call-stack growth.
//
// Complexity:
//
//   - Worst case exponential in W×H (exhaustive search).
//   - Memory: O(W×H) for the visit state plus the frame or call stack.
//
// Errors:
//
//   - ErrNilGrid: a nil *grid.Grid was passed.
//   - ErrUnknownMethod: the Method is not Recursive or Iterative.
//
// An unsolvable grid is NOT an error: it yields Result{Found: false}.
package snake
