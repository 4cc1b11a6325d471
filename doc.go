// Package gridsnake solves the grid snake problem: given a rectangular
// lattice of points, a start point, and an end point, find a path that
// visits every point exactly once (a Hamiltonian path), moving only
// between horizontal and vertical neighbors.
//
// The repository ships two interchangeable solvers behind one contract:
//
//	grid/   — shared data model: Grid descriptor, Point, VisitState
//	snake/  — RecursiveSolver and IterativeSolver (explicit frame stack)
//	render/ — coordinate listing and arrow-diagram output
//	server/ — HTTP surface for the solvers (gin)
//	cmd/    — gridsnake CLI (cobra)
//
// Quick ASCII example, a 3×3 grid from S=(0,0) to E=(2,2):
//
//	S → ○ → ○
//	        ↓
//	○ ← ○ ← ○
//	↓
//	○ → ○ → E
//
// Both solvers are deterministic: candidates are always tried in the fixed
// order Right, Left, Down, Up, so a given grid always yields the same path.
// An unsolvable grid is a normal negative result, not an error.
//
//	go get github.com/katalvlaran/gridsnake
package gridsnake
