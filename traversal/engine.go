package traversal

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/pathgrid/gridgraph"
)

// strategy is the mode-specific part of the engine: frontier ordering,
// admission rule and path materialization.
type strategy interface {
	// seed places start in the frontier and initializes mode scalars.
	seed(s *State, start *gridgraph.Cell)
	// pop removes the next live cell; false when the frontier is exhausted.
	pop(s *State) (*gridgraph.Cell, bool)
	// admit applies the admission rule for an unvisited-or-frontier neighbor.
	admit(s *State, from, to *gridgraph.Cell) bool
	// path materializes start→end once end has been linked.
	path(s *State) ([]gridgraph.Coord, error)
	// traces reports whether the mode maintains Cell.Trace.
	traces() bool
	len() int
	clear()
}

// State is the explicit frontier state of one run. It is created by
// Initialize and advanced by Step; nothing about a run lives outside it.
type State struct {
	grid       *gridgraph.Grid
	start, end gridgraph.Coord
	mode       Mode
	conn       gridgraph.Connectivity
	opts       Options
	strat      strategy

	ticks  int
	done   bool
	result StepResult
}

// Initialize validates the endpoints, clears algorithm state on g and seeds
// the frontier with start.
// Returns ErrNilGrid, ErrUnknownMode, ErrOptionViolation, a wrapped
// gridgraph.ErrOutOfBounds, ErrSameEndpoints (also wrapping ErrOutOfBounds)
// or ErrEndpointMismatch.
//
// Complexity: O(W×H) for the reset.
func Initialize(
	g *gridgraph.Grid,
	start, end gridgraph.Coord,
	mode Mode,
	conn gridgraph.Connectivity,
	opts ...Option,
) (*State, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownMode, mode)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	startCell, err := g.Cell(start)
	if err != nil {
		return nil, fmt.Errorf("traversal: start: %w", err)
	}
	endCell, err := g.Cell(end)
	if err != nil {
		return nil, fmt.Errorf("traversal: end: %w", err)
	}
	if start == end {
		return nil, fmt.Errorf("%w: %w %v", gridgraph.ErrOutOfBounds, ErrSameEndpoints, start)
	}
	if startCell.Kind != gridgraph.Start || endCell.Kind != gridgraph.End {
		return nil, fmt.Errorf("%w: start %v is %s, end %v is %s",
			ErrEndpointMismatch, start, startCell.Kind, end, endCell.Kind)
	}

	s := &State{
		grid:  g,
		start: start,
		end:   end,
		mode:  mode,
		conn:  conn,
		opts:  o,
		strat: newStrategy(mode),
	}
	g.ResetAlgorithmState()
	s.strat.seed(s, startCell)
	startCell.Visit = gridgraph.Frontier
	s.opts.OnEnqueue(start)

	return s, nil
}

func newStrategy(mode Mode) strategy {
	switch mode {
	case AStar:
		return newAStar()
	case Dijkstra:
		return newDijkstra()
	default:
		return newBFS()
	}
}

// Step performs one tick:
//  1. An empty frontier completes the run with no path (OutcomeExhausted).
//  2. Exactly one live cell is popped and marked Visited.
//  3. Neighbors are examined in grid order; reaching End completes the run
//     with the reconstructed path, otherwise the mode's admission rule runs.
//  4. If the frontier is now empty the run completes with no path.
//
// The search stops at the first discovery of End, not when End is popped.
// Once complete, Step keeps returning the terminal result without mutating
// anything. The only error is a wrapped ErrInternalConsistency.
func (s *State) Step() (StepResult, error) {
	if s.done {
		return s.result, nil
	}
	if s.opts.MaxTicks > 0 && s.ticks >= s.opts.MaxTicks {
		return s.finish(StepResult{}, OutcomeAborted, nil), nil
	}

	cur, ok := s.strat.pop(s)
	if !ok {
		// ErrEmptyFrontier: benign terminal condition
		return s.finish(StepResult{}, OutcomeExhausted, nil), nil
	}
	s.ticks++
	cur.Visit = gridgraph.Visited
	s.opts.OnVisit(cur.Pos)

	res := StepResult{Status: Running, Current: cur.Pos}
	for n := range s.grid.Neighbors(cur.Pos, s.conn) {
		if n.Pos == s.end {
			s.link(cur, n)
			path, err := s.strat.path(s)
			if err != nil {
				s.finish(res, OutcomeFault, nil)
				return s.result, err
			}
			return s.finish(res, OutcomeFound, path), nil
		}
		if !n.Passable() || n.Visit == gridgraph.Visited {
			continue
		}
		if s.strat.admit(s, cur, n) {
			res.Discovered = append(res.Discovered, n.Pos)
			s.opts.OnEnqueue(n.Pos)
		}
	}

	if s.strat.len() == 0 {
		return s.finish(res, OutcomeExhausted, nil), nil
	}
	res.FrontierLen = s.strat.len()
	res.Tick = s.ticks
	return res, nil
}

// link records from as the first-discovery parent of to.
func (s *State) link(from, to *gridgraph.Cell) {
	_ = s.grid.SetPredecessor(to.Pos, from.Pos)
	if s.strat.traces() {
		to.Trace = append(slices.Clone(from.Trace), from.Pos)
	}
}

func (s *State) finish(res StepResult, outcome Outcome, path []gridgraph.Coord) StepResult {
	if outcome != OutcomeFound {
		path = []gridgraph.Coord{}
	}
	if outcome == OutcomeExhausted || outcome == OutcomeAborted {
		s.strat.clear()
	}
	res.Status = Complete
	res.Outcome = outcome
	res.Path = path
	res.FrontierLen = s.strat.len()
	res.Tick = s.ticks
	s.done = true
	s.result = res
	return res
}

// Run steps s until it completes or ctx is cancelled.
func Run(ctx context.Context, s *State) (StepResult, error) {
	for {
		select {
		case <-ctx.Done():
			return s.result, ctx.Err()
		default:
		}
		res, err := s.Step()
		if err != nil || res.Status == Complete {
			return res, err
		}
	}
}

// Grid returns the grid being searched.
func (s *State) Grid() *gridgraph.Grid { return s.grid }

// Mode returns the search mode.
func (s *State) Mode() Mode { return s.mode }

// Start returns the start coordinate.
func (s *State) Start() gridgraph.Coord { return s.start }

// End returns the end coordinate.
func (s *State) End() gridgraph.Coord { return s.end }

// Connectivity returns the neighbor connectivity of the run.
func (s *State) Connectivity() gridgraph.Connectivity { return s.conn }

// FrontierLen returns the current frontier size (stale Dijkstra entries included).
func (s *State) FrontierLen() int { return s.strat.len() }

// Ticks returns the number of expansions performed.
func (s *State) Ticks() int { return s.ticks }

// Done reports whether the run has completed.
func (s *State) Done() bool { return s.done }

// Result returns the terminal result; zero until Done.
func (s *State) Result() StepResult { return s.result }
