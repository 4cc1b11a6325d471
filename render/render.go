package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridsnake/grid"
)

// Sentinel errors for path rendering.
var (
	// ErrEmptyPath indicates a Diagram request for an empty path.
	ErrEmptyPath = errors.New("render: path is empty")
	// ErrBrokenPath indicates consecutive path points that are not neighbors.
	ErrBrokenPath = errors.New("render: consecutive points are not adjacent")
)

// Cell markers and connectors used by Diagram.
const (
	markPoint = '○'
	markStart = 'S'
	markEnd   = 'E'
	markRight = '→'
	markLeft  = '←'
	markDown  = '↓'
	markUp    = '↑'
)

// Coords formats a path as a single line of coordinates joined by arrows,
// e.g. "(0,0) → (1,0) → (1,1)". An empty path yields an empty string.
func Coords(path []grid.Point) string {
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = p.String()
	}

	return strings.Join(parts, " → ")
}

// Diagram draws path as an arrow diagram over the lattice of g. Every
// lattice point appears as '○' (or 'S'/'E' for the path endpoints), and
// each step of the path is drawn as a directional arrow between the two
// cells it connects. Trailing spaces are trimmed from each row.
//
// Returns ErrEmptyPath for an empty path, grid.ErrOutOfBounds (wrapped) for
// a point outside g, and ErrBrokenPath when consecutive points are not
// 4-connected.
func Diagram(g *grid.Grid, path []grid.Point) (string, error) {
	if len(path) == 0 {
		return "", ErrEmptyPath
	}
	for _, p := range path {
		if !g.InBounds(p) {
			return "", fmt.Errorf("render: point %v: %w", p, grid.ErrOutOfBounds)
		}
	}

	// Stretch the lattice: points sit every 2nd row and 4th column.
	rows, cols := 2*g.Height-1, 4*g.Width-3
	cells := make([][]rune, rows)
	for r := range cells {
		cells[r] = make([]rune, cols)
		for c := range cells[r] {
			cells[r][c] = ' '
		}
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			cells[2*y][4*x] = markPoint
		}
	}

	cells[2*path[0].Y][4*path[0].X] = markStart
	last := path[len(path)-1]
	cells[2*last.Y][4*last.X] = markEnd

	for i := 1; i < len(path); i++ {
		p, q := path[i-1], path[i]
		if !p.Adjacent(q) {
			return "", fmt.Errorf("render: %v to %v: %w", p, q, ErrBrokenPath)
		}
		dx, dy := q.X-p.X, q.Y-p.Y

		var mark rune
		switch {
		case dx == 1:
			mark = markRight
		case dx == -1:
			mark = markLeft
		case dy == 1:
			mark = markDown
		default:
			mark = markUp
		}
		cells[2*p.Y+dy][4*p.X+2*dx] = mark
	}

	lines := make([]string, rows)
	for r, row := range cells {
		lines[r] = strings.TrimRight(string(row), " ")
	}

	return strings.Join(lines, "\n"), nil
}
