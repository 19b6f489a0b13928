package traversal

import (
	"github.com/katalvlaran/pathgrid/frontier"
	"github.com/katalvlaran/pathgrid/gridgraph"
)

// dijkstraFrontier is a lazy decrease-key priority queue on Distance.
// Relaxing a frontier cell pushes a fresh entry; the old one goes stale and
// is skipped at pop time because its cell is already Visited.
type dijkstraFrontier struct {
	heap *frontier.Heap[gridgraph.Coord]
}

func newDijkstra() *dijkstraFrontier {
	return &dijkstraFrontier{heap: frontier.NewHeap[gridgraph.Coord]()}
}

func (d *dijkstraFrontier) seed(_ *State, start *gridgraph.Cell) {
	start.Distance = 0
	d.heap.Push(start.Pos, 0)
}

func (d *dijkstraFrontier) pop(s *State) (*gridgraph.Cell, bool) {
	for {
		e, ok := d.heap.Pop()
		if !ok {
			return nil, false
		}
		c := s.cell(e.Item)
		if c.Visit == gridgraph.Visited || e.Priority > c.Distance {
			continue // stale
		}
		return c, true
	}
}

func (d *dijkstraFrontier) admit(s *State, from, to *gridgraph.Cell) bool {
	alt := from.Distance + 1
	if alt >= to.Distance {
		return false
	}
	to.Distance = alt
	s.link(from, to)
	to.Visit = gridgraph.Frontier
	d.heap.Push(to.Pos, alt)
	return true
}

func (d *dijkstraFrontier) path(s *State) ([]gridgraph.Coord, error) {
	return PathFromPredecessors(s.grid, s.start, s.end)
}

func (d *dijkstraFrontier) traces() bool { return false }
func (d *dijkstraFrontier) len() int     { return d.heap.Len() }
func (d *dijkstraFrontier) clear()       { d.heap.Clear() }
