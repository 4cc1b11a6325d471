// Package grid provides the shared data model for Hamiltonian path search
// on a rectangular lattice: the immutable Grid descriptor, lattice Points,
// and the mutable VisitState tracking a path under construction.
//
// What:
//
//   - Point: an (X, Y) lattice coordinate with 4-connectivity adjacency.
//   - Grid: width, height, start and end points, validated at construction
//     and immutable afterwards.
//   - VisitState: the visited set plus the ordered path built so far,
//     mutated by Push/Pop during backtracking.
//   - Directions: the fixed candidate ordering (Right, Left, Down, Up)
//     shared by every solver, so results are deterministic.
//
// Why:
//
//   - One model serves both the recursive and the iterative solver, which
//     differ only in how they manage suspended branches.
//   - Keeping the visited set as a row-major bitset makes Push, Pop and
//     Visited O(1) regardless of grid size.
//
// Complexity:
//
//   - Push, Pop, Visited, Complete: O(1).
//   - Candidates: O(1) (at most four neighbors inspected).
//   - Memory: O(W×H) for the visited bitset and the path.
//
// Errors:
//
//   - ErrBadDimensions: width or height below 1.
//   - ErrOutOfBounds: a point lies outside the lattice.
//   - ErrVisited: Push of a point already on the path.
//   - ErrNotAdjacent: Push of a point not 4-connected to the path head.
//   - ErrEmptyPath: Pop on an empty path.
package grid
