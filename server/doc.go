// Package server exposes the snake solvers over HTTP.
//
// Endpoints:
//
//   - POST /api/solve: accepts a JSON grid description and returns the
//     solve outcome, the rendered diagram, and the elapsed wall-clock time.
//   - GET /healthz: liveness probe.
//
// A malformed or out-of-bounds grid is a 400 configuration error; an
// unsolvable grid is a 200 response with found=false. The two are never
// conflated.
package server
