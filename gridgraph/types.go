package gridgraph

import (
	"fmt"
	"math"
)

// Infinity marks an unset Dijkstra distance.
const Infinity = math.MaxInt

// noPredecessor is the sentinel index for "no predecessor recorded".
const noPredecessor = -1

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: up, left, down, right.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonals after the orthogonal directions.
	Conn8
)

// String returns "4" or "8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "8"
	}
	return "4"
}

// ParseConnectivity maps a neighbor count (4 or 8) to a Connectivity.
func ParseConnectivity(n int) (Connectivity, error) {
	switch n {
	case 4:
		return Conn4, nil
	case 8:
		return Conn8, nil
	}
	return Conn4, fmt.Errorf("%w: got %d", ErrConnectivity, n)
}

// Valid reports whether c is Conn4 or Conn8.
func (c Connectivity) Valid() bool { return c == Conn4 || c == Conn8 }

// Kind is the editor-owned role of a cell. The search engine only reads it.
type Kind int

const (
	// Empty cells are passable.
	Empty Kind = iota
	// Wall cells are never entered.
	Wall
	// Start is the unique source cell.
	Start
	// End is the unique target cell.
	End
)

func (k Kind) String() string {
	switch k {
	case Wall:
		return "wall"
	case Start:
		return "start"
	case End:
		return "end"
	default:
		return "empty"
	}
}

// VisitState is the exploration marker a search leaves on a cell.
type VisitState int

const (
	// Unvisited cells have not been discovered in the current run.
	Unvisited VisitState = iota
	// Frontier cells are discovered and waiting to be expanded.
	Frontier
	// Visited cells have had all outgoing edges examined.
	Visited
)

func (v VisitState) String() string {
	switch v {
	case Frontier:
		return "frontier"
	case Visited:
		return "visited"
	default:
		return "unvisited"
	}
}

// Coord is an integer grid coordinate. X grows rightwards, Y grows downwards.
type Coord struct {
	X, Y int
}

// String formats the coordinate as "(x, y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Add returns c shifted by the offset d.
func (c Coord) Add(d [2]int) Coord {
	return Coord{X: c.X + d[0], Y: c.Y + d[1]}
}

// Cell holds the editor kind and the per-run algorithm state of one grid position.
// Pos is fixed for the lifetime of the grid; every other algorithm field is cleared
// by ResetAlgorithmState.
type Cell struct {
	Pos   Coord
	Kind  Kind
	Visit VisitState

	// Distance is the Dijkstra cost from start (Infinity when unset).
	Distance int
	// G, H and F are the A* accumulated cost, heuristic estimate and their sum.
	G, H, F int
	// Trace lists the coordinates from start up to, but excluding, this cell.
	Trace []Coord

	// pred is the row-major index of the cell this one was first reached from.
	pred int
}

// Passable reports whether a search may step onto the cell.
func (c *Cell) Passable() bool {
	return c.Kind != Wall
}

// HasPredecessor reports whether a predecessor was recorded this run.
func (c *Cell) HasPredecessor() bool {
	return c.pred != noPredecessor
}

// reset restores every algorithm field to its initial value.
func (c *Cell) reset() {
	c.Visit = Unvisited
	c.Distance = Infinity
	c.G, c.H, c.F = 0, 0, 0
	c.Trace = nil
	c.pred = noPredecessor
}

// Grid is a fixed Width×Height lattice that exclusively owns its cells.
// Exactly one cell is Start and exactly one is End at all times.
type Grid struct {
	Width, Height int

	cells      []Cell
	start, end Coord
}

var (
	offsets4 = [][2]int{{0, -1}, {-1, 0}, {0, 1}, {1, 0}}
	offsets8 = [][2]int{{0, -1}, {-1, 0}, {0, 1}, {1, 0}, {-1, -1}, {-1, 1}, {1, 1}, {1, -1}}
)
