package traversal

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/pathgrid/gridgraph"
)

// cell returns the cell at a coordinate the engine itself produced.
func (s *State) cell(c gridgraph.Coord) *gridgraph.Cell {
	cell, err := s.grid.Cell(c)
	if err != nil {
		panic(fmt.Sprintf("traversal: frontier held out-of-bounds %v", c))
	}
	return cell
}

// PathFromPredecessors walks predecessor links back from end to start and
// returns the path in start→end order.
// Returns ErrInternalConsistency if the chain breaks before reaching start or
// runs longer than W×H steps (a cycle).
func PathFromPredecessors(g *gridgraph.Grid, start, end gridgraph.Coord) ([]gridgraph.Coord, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.Contains(start) || !g.Contains(end) {
		return nil, fmt.Errorf("traversal: %w: %v -> %v", gridgraph.ErrOutOfBounds, start, end)
	}

	limit := g.Width * g.Height
	path := []gridgraph.Coord{end}
	for cur := end; cur != start; {
		prev, ok := g.Predecessor(cur)
		if !ok {
			return nil, fmt.Errorf("%w: chain from %v breaks at %v", ErrInternalConsistency, end, cur)
		}
		path = append(path, prev)
		if len(path) > limit {
			return nil, fmt.Errorf("%w: predecessor cycle through %v", ErrInternalConsistency, cur)
		}
		cur = prev
	}
	slices.Reverse(path)
	return path, nil
}

// PathFromTrace returns the trace recorded on end followed by end itself.
// Returns ErrInternalConsistency if end carries no trace.
func PathFromTrace(g *gridgraph.Grid, end gridgraph.Coord) ([]gridgraph.Coord, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cell, err := g.Cell(end)
	if err != nil {
		return nil, fmt.Errorf("traversal: %w", err)
	}
	if len(cell.Trace) == 0 {
		return nil, fmt.Errorf("%w: no trace recorded at %v", ErrInternalConsistency, end)
	}
	path := make([]gridgraph.Coord, 0, len(cell.Trace)+1)
	path = append(path, cell.Trace...)
	return append(path, end), nil
}
