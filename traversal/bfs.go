package traversal

import (
	"github.com/katalvlaran/pathgrid/frontier"
	"github.com/katalvlaran/pathgrid/gridgraph"
)

// bfsFrontier admits each cell at most once, on first discovery, and
// carries the path along as a per-cell trace.
type bfsFrontier struct {
	queue *frontier.Queue[gridgraph.Coord]
}

func newBFS() *bfsFrontier {
	return &bfsFrontier{queue: frontier.NewQueue[gridgraph.Coord]()}
}

func (b *bfsFrontier) seed(_ *State, start *gridgraph.Cell) {
	b.queue.Push(start.Pos)
}

func (b *bfsFrontier) pop(s *State) (*gridgraph.Cell, bool) {
	c, ok := b.queue.Pop()
	if !ok {
		return nil, false
	}
	return s.cell(c), true
}

func (b *bfsFrontier) admit(s *State, from, to *gridgraph.Cell) bool {
	if to.Visit != gridgraph.Unvisited {
		return false
	}
	s.link(from, to)
	to.Visit = gridgraph.Frontier
	b.queue.Push(to.Pos)
	return true
}

func (b *bfsFrontier) path(s *State) ([]gridgraph.Coord, error) {
	return PathFromTrace(s.grid, s.end)
}

func (b *bfsFrontier) traces() bool { return true }
func (b *bfsFrontier) len() int     { return b.queue.Len() }
func (b *bfsFrontier) clear()       { b.queue.Clear() }
