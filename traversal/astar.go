package traversal

import (
	"github.com/katalvlaran/pathgrid/frontier"
	"github.com/katalvlaran/pathgrid/gridgraph"
)

// astarFrontier orders by f = g + h. A cell's g is fixed when it is first
// admitted and never relaxed, so with the squared-Euclidean heuristic the
// returned path is the first one found, not necessarily a shortest one.
type astarFrontier struct {
	heap *frontier.Heap[gridgraph.Coord]
}

func newAStar() *astarFrontier {
	return &astarFrontier{heap: frontier.NewHeap[gridgraph.Coord]()}
}

// Heuristic is the A* estimate from c to end: squared Euclidean distance.
func Heuristic(c, end gridgraph.Coord) int {
	dx, dy := c.X-end.X, c.Y-end.Y
	return dx*dx + dy*dy
}

func (a *astarFrontier) seed(_ *State, start *gridgraph.Cell) {
	// start keeps g = h = f = 0 from the reset and enters with priority 0
	a.heap.Push(start.Pos, start.F)
}

func (a *astarFrontier) pop(s *State) (*gridgraph.Cell, bool) {
	e, ok := a.heap.Pop()
	if !ok {
		return nil, false
	}
	return s.cell(e.Item), true
}

func (a *astarFrontier) admit(s *State, from, to *gridgraph.Cell) bool {
	if to.Visit != gridgraph.Unvisited {
		return false
	}
	// O(n) scan keeps a cell from entering the heap twice.
	if a.heap.Contains(func(c gridgraph.Coord) bool { return c == to.Pos }) {
		return false
	}
	to.G = from.G + 1
	to.H = Heuristic(to.Pos, s.end)
	to.F = to.G + to.H
	s.link(from, to)
	to.Visit = gridgraph.Frontier
	a.heap.Push(to.Pos, to.F)
	return true
}

func (a *astarFrontier) path(s *State) ([]gridgraph.Coord, error) {
	return PathFromTrace(s.grid, s.end)
}

func (a *astarFrontier) traces() bool { return true }
func (a *astarFrontier) len() int     { return a.heap.Len() }
func (a *astarFrontier) clear()       { a.heap.Clear() }
