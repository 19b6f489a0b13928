package gridgraph

import (
	"fmt"
	"strings"
)

// Layout runes accepted by ParseLayout and emitted by Render.
const (
	RuneEmpty    = '.'
	RuneWall     = '#'
	RuneStart    = 'S'
	RuneEnd      = 'E'
	RuneFrontier = 'o'
	RuneVisited  = 'x'
	RunePath     = '*'
)

// ParseLayout builds a grid from text rows, one rune per cell:
// '.' empty, '#' wall, 'S' start, 'E' end. Rows are indexed by Y.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrLayoutRune or ErrLayoutMarkers.
func ParseLayout(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len([]rune(rows[0]))
	for _, row := range rows {
		if len([]rune(row)) != w {
			return nil, ErrNonRectangular
		}
	}
	g, err := NewGrid(w, len(rows))
	if err != nil {
		return nil, err
	}

	var starts, ends []Coord
	for y, row := range rows {
		for x, r := range []rune(row) {
			cell := &g.cells[g.index(x, y)]
			cell.Kind = Empty
			switch r {
			case RuneEmpty:
			case RuneWall:
				cell.Kind = Wall
			case RuneStart:
				cell.Kind = Start
				starts = append(starts, Coord{x, y})
			case RuneEnd:
				cell.Kind = End
				ends = append(ends, Coord{x, y})
			default:
				return nil, fmt.Errorf("%w: %q at (%d, %d)", ErrLayoutRune, r, x, y)
			}
		}
	}
	if len(starts) != 1 || len(ends) != 1 {
		return nil, fmt.Errorf("%w: found %d start, %d end", ErrLayoutMarkers, len(starts), len(ends))
	}
	g.start, g.end = starts[0], ends[0]

	return g, nil
}

// Layout returns the grid's editor state in ParseLayout format.
func (g *Grid) Layout() []string {
	rows := make([]string, g.Height)
	var sb strings.Builder
	for y := 0; y < g.Height; y++ {
		sb.Reset()
		for x := 0; x < g.Width; x++ {
			sb.WriteRune(kindRune(g.cells[g.index(x, y)].Kind))
		}
		rows[y] = sb.String()
	}
	return rows
}

// Render draws the grid including run state: markers and walls as in
// ParseLayout, 'o' frontier, 'x' visited, '*' cells of path.
func (g *Grid) Render(path []Coord) string {
	onPath := make(map[Coord]bool, len(path))
	for _, c := range path {
		onPath[c] = true
	}
	var sb strings.Builder
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			cell := &g.cells[g.index(x, y)]
			switch {
			case cell.Kind != Empty:
				sb.WriteRune(kindRune(cell.Kind))
			case onPath[cell.Pos]:
				sb.WriteRune(RunePath)
			case cell.Visit == Frontier:
				sb.WriteRune(RuneFrontier)
			case cell.Visit == Visited:
				sb.WriteRune(RuneVisited)
			default:
				sb.WriteRune(RuneEmpty)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func kindRune(k Kind) rune {
	switch k {
	case Wall:
		return RuneWall
	case Start:
		return RuneStart
	case End:
		return RuneEnd
	default:
		return RuneEmpty
	}
}
