// Package render formats solved snake paths for terminal display, either as
// a one-line coordinate listing or as an arrow diagram drawn over the
// lattice.
//
// Diagram layout: lattice points are drawn as '○' on every second row and
// every fourth column (the horizontal stretch improves the aspect ratio),
// the start and end points are marked 'S' and 'E', and consecutive path
// points are joined by '→', '←', '↓' or '↑' connectors.
//
// Complexity: O(W×H) time and memory for Diagram, O(n) for Coords.
//
// Errors:
//
//   - ErrEmptyPath: Diagram of an empty path.
//   - ErrBrokenPath: consecutive path points are not 4-connected.
//   - grid.ErrOutOfBounds: a path point lies outside the grid.
package render
