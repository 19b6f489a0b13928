// Package gridgraph provides the 2-D cell lattice searched by the traversal engine.
// It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8) with a fixed neighbor order
//   - Per-cell kind (empty, wall, start, end) and per-run algorithm state
//   - Editor operations applied between runs
//   - Text layouts, reachability and minimal wall-breach routes
package gridgraph

import (
	"fmt"
	"iter"
	"slices"
)

// NewGrid constructs an all-empty Width×Height grid with Start at (0,0) and
// End at (width-1, height-1).
// Returns ErrEmptyGrid if either side is below one and ErrGridTooSmall
// if the grid has a single cell.
// Algorithmic complexity: O(W×H) time and memory.
func NewGrid(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, ErrEmptyGrid
	}
	if width*height < 2 {
		return nil, ErrGridTooSmall
	}
	g := &Grid{
		Width:  width,
		Height: height,
		cells:  make([]Cell, width*height),
		start:  Coord{0, 0},
		end:    Coord{width - 1, height - 1},
	}
	for i := range g.cells {
		x, y := g.Coordinate(i)
		g.cells[i].Pos = Coord{x, y}
		g.cells[i].reset()
	}
	g.cells[g.index(g.start.X, g.start.Y)].Kind = Start
	g.cells[g.index(g.end.X, g.end.Y)].Kind = End

	return g, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Contains reports whether c lies within the grid boundaries.
func (g *Grid) Contains(c Coord) bool {
	return g.InBounds(c.X, c.Y)
}

// CellAt returns the cell at (x,y), or ErrOutOfBounds.
// The pointer stays valid for the lifetime of the grid.
func (g *Grid) CellAt(x, y int) (*Cell, error) {
	if !g.InBounds(x, y) {
		return nil, fmt.Errorf("%w: (%d, %d) not in %dx%d", ErrOutOfBounds, x, y, g.Width, g.Height)
	}
	return &g.cells[g.index(x, y)], nil
}

// Cell is CellAt for a Coord.
func (g *Grid) Cell(c Coord) (*Cell, error) {
	return g.CellAt(c.X, c.Y)
}

// Start returns the Start marker position.
func (g *Grid) Start() Coord { return g.start }

// End returns the End marker position.
func (g *Grid) End() Coord { return g.end }

// Cells yields every cell in row-major order.
func (g *Grid) Cells() iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		for i := range g.cells {
			if !yield(&g.cells[i]) {
				return
			}
		}
	}
}

// Offsets returns the ordered neighbor offsets for conn:
// up, left, down, right, then (Conn8) up-left, down-left, down-right, up-right.
// The result is a copy; changing it does not affect neighbor order.
func Offsets(conn Connectivity) [][2]int {
	return slices.Clone(offsetsFor(conn))
}

// offsetsFor returns the shared offset table for conn. Callers must not modify it.
func offsetsFor(conn Connectivity) [][2]int {
	if conn == Conn8 {
		return offsets8
	}
	return offsets4
}

// Neighbors yields the in-bounds neighbors of c in the fixed Offsets order.
// The sequence is lazy and may be ranged over any number of times.
func (g *Grid) Neighbors(c Coord, conn Connectivity) iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		for _, d := range offsetsFor(conn) {
			n := c.Add(d)
			if !g.InBounds(n.X, n.Y) {
				continue
			}
			if !yield(&g.cells[g.index(n.X, n.Y)]) {
				return
			}
		}
	}
}

// Adjacent reports whether a and b are distinct neighbors under conn.
func Adjacent(a, b Coord, conn Connectivity) bool {
	for _, d := range offsetsFor(conn) {
		if a.Add(d) == b {
			return true
		}
	}
	return false
}

// ResetAlgorithmState clears visit markers, predecessors, scores and traces on
// every cell. Kinds, walls and marker positions are preserved.
// Complexity: O(W×H).
func (g *Grid) ResetAlgorithmState() {
	for i := range g.cells {
		g.cells[i].reset()
	}
}

// Predecessor returns the cell c was first reached from, if any.
func (g *Grid) Predecessor(c Coord) (Coord, bool) {
	if !g.Contains(c) {
		return Coord{}, false
	}
	p := g.cells[g.index(c.X, c.Y)].pred
	if p == noPredecessor {
		return Coord{}, false
	}
	x, y := g.Coordinate(p)
	return Coord{x, y}, true
}

// SetPredecessor records from as the predecessor of c. Both must be in bounds.
func (g *Grid) SetPredecessor(c, from Coord) error {
	if !g.Contains(c) || !g.Contains(from) {
		return fmt.Errorf("%w: predecessor %v -> %v", ErrOutOfBounds, from, c)
	}
	g.cells[g.index(c.X, c.Y)].pred = g.index(from.X, from.Y)
	return nil
}

// SetWall places or removes a wall at c. Markers cannot be walled over.
func (g *Grid) SetWall(c Coord, wall bool) error {
	cell, err := g.Cell(c)
	if err != nil {
		return err
	}
	if cell.Kind == Start || cell.Kind == End {
		return fmt.Errorf("%w: %v is the %s marker", ErrMarkerCollision, c, cell.Kind)
	}
	if wall {
		cell.Kind = Wall
	} else {
		cell.Kind = Empty
	}
	return nil
}

// ToggleWall flips c between Empty and Wall.
func (g *Grid) ToggleWall(c Coord) error {
	cell, err := g.Cell(c)
	if err != nil {
		return err
	}
	return g.SetWall(c, cell.Kind != Wall)
}

// ClearWalls turns every wall back into an empty cell.
func (g *Grid) ClearWalls() {
	for i := range g.cells {
		if g.cells[i].Kind == Wall {
			g.cells[i].Kind = Empty
		}
	}
}

// MoveStart relocates the Start marker; a wall at the target is replaced.
func (g *Grid) MoveStart(c Coord) error {
	return g.moveMarker(&g.start, c, Start)
}

// MoveEnd relocates the End marker; a wall at the target is replaced.
func (g *Grid) MoveEnd(c Coord) error {
	return g.moveMarker(&g.end, c, End)
}

func (g *Grid) moveMarker(marker *Coord, to Coord, kind Kind) error {
	cell, err := g.Cell(to)
	if err != nil {
		return err
	}
	if to == *marker {
		return nil
	}
	if cell.Kind == Start || cell.Kind == End {
		return fmt.Errorf("%w: %v already holds the %s marker", ErrMarkerCollision, to, cell.Kind)
	}
	g.cells[g.index(marker.X, marker.Y)].Kind = Empty
	cell.Kind = kind
	*marker = to
	return nil
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}
