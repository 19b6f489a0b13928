// Package runner drives a traversal run through the visualizer lifecycle:
// Wait → Ready → Run ⇄ Pause → Complete → Wait.
//
// A Controller owns the grid while it lives. It is not safe for concurrent
// use; front ends call it from a single update loop.
package runner

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/pathgrid/gridgraph"
	"github.com/katalvlaran/pathgrid/traversal"
)

// Controller is the run state machine around one grid.
type Controller struct {
	grid     *gridgraph.Grid
	mode     traversal.Mode
	conn     gridgraph.Connectivity
	log      *slog.Logger
	now      func() time.Time
	metrics  *Metrics
	travOpts []traversal.Option

	status  Status
	state   *traversal.State
	last    traversal.StepResult
	runID   uuid.UUID
	started time.Time
	paused  time.Time
	elapsed time.Duration
}

// New returns a Controller in Wait around g.
func New(g *gridgraph.Grid, opts ...Option) (*Controller, error) {
	if g == nil {
		return nil, traversal.ErrNilGrid
	}
	c := &Controller{grid: g}
	defaults(c)
	for _, opt := range opts {
		opt(c)
	}
	if !c.mode.Valid() {
		return nil, traversal.ErrUnknownMode
	}
	if !c.conn.Valid() {
		return nil, fmt.Errorf("%w: %d", gridgraph.ErrConnectivity, int(c.conn))
	}
	return c, nil
}

// Arm moves Wait → Ready.
func (c *Controller) Arm() error {
	if c.status != Wait {
		return c.invalid("arm")
	}
	c.transition(Ready)
	return nil
}

// Tick advances the run. In Ready it first initializes the search, assigns a
// run ID and starts the clock. In Run it performs one step. In any other
// status it returns the last result unchanged.
func (c *Controller) Tick() (traversal.StepResult, error) {
	switch c.status {
	case Ready:
		state, err := traversal.Initialize(c.grid, c.grid.Start(), c.grid.End(), c.mode, c.conn, c.travOpts...)
		if err != nil {
			c.transition(Wait)
			return traversal.StepResult{}, err
		}
		c.state = state
		c.last = traversal.StepResult{}
		c.runID = uuid.New()
		c.started = c.now()
		c.elapsed = 0
		c.log.Debug("run started", "run", c.runID, "mode", c.mode, "conn", c.conn)
		c.transition(Run)
		return c.step()
	case Run:
		return c.step()
	default:
		return c.last, nil
	}
}

func (c *Controller) step() (traversal.StepResult, error) {
	before := c.state.Ticks()
	res, err := c.state.Step()
	c.last = res
	if c.state.Ticks() > before {
		c.metrics.observeTick(c.mode, res.FrontierLen)
	}
	if res.Status != traversal.Complete {
		return res, err
	}

	c.elapsed = c.now().Sub(c.started)
	c.transition(Complete)
	c.metrics.observeRun(c.mode, res.Outcome.String(), c.elapsed)
	if err != nil {
		c.log.Error("run aborted", "run", c.runID, "mode", c.mode, "error", err)
		return res, err
	}
	c.log.Info("run complete",
		"run", c.runID,
		"mode", c.mode,
		"outcome", res.Outcome,
		"ticks", res.Tick,
		"path", len(res.Path),
		"elapsed", c.elapsed,
	)
	return res, nil
}

// Pause moves Run → Pause and stops the clock.
func (c *Controller) Pause() error {
	if c.status != Run {
		return c.invalid("pause")
	}
	c.paused = c.now()
	c.transition(Pause)
	return nil
}

// Resume moves Pause → Run; paused time does not count towards Elapsed.
func (c *Controller) Resume() error {
	if c.status != Pause {
		return c.invalid("resume")
	}
	c.started = c.started.Add(c.now().Sub(c.paused))
	c.transition(Run)
	return nil
}

// Cancel abandons a Ready, Run or Pause run and returns to Wait with the
// grid's algorithm state cleared.
func (c *Controller) Cancel() error {
	switch c.status {
	case Ready:
	case Run, Pause:
		c.metrics.observeRun(c.mode, "cancelled", c.Elapsed())
	default:
		return c.invalid("cancel")
	}
	c.clear()
	c.transition(Wait)
	return nil
}

// Reset moves Complete → Wait, clearing the finished run from the grid.
func (c *Controller) Reset() error {
	if c.status != Complete {
		return c.invalid("reset")
	}
	c.clear()
	c.transition(Wait)
	return nil
}

// Toggle is the single start/pause key: Wait arms, Run pauses, Pause
// resumes and Complete resets.
func (c *Controller) Toggle() error {
	switch c.status {
	case Wait:
		return c.Arm()
	case Run:
		return c.Pause()
	case Pause:
		return c.Resume()
	case Complete:
		return c.Reset()
	default:
		return c.invalid("toggle")
	}
}

// Escape is the single back-out key: Wait clears walls, Complete resets and
// anything else cancels.
func (c *Controller) Escape() error {
	switch c.status {
	case Wait:
		c.grid.ClearWalls()
		c.log.Debug("walls cleared")
		return nil
	case Complete:
		return c.Reset()
	default:
		return c.Cancel()
	}
}

func (c *Controller) clear() {
	c.state = nil
	c.last = traversal.StepResult{}
	c.elapsed = 0
	c.grid.ResetAlgorithmState()
}

func (c *Controller) transition(to Status) {
	c.log.Debug("status", "from", c.status, "to", to)
	c.status = to
}

func (c *Controller) invalid(op string) error {
	return fmt.Errorf("%w: cannot %s while %s", ErrInvalidTransition, op, c.status)
}

// Status returns the lifecycle status.
func (c *Controller) Status() Status { return c.status }

// Mode returns the search mode used by the next (or current) run.
func (c *Controller) Mode() traversal.Mode { return c.mode }

// Connectivity returns the neighbor connectivity used by the next (or current) run.
func (c *Controller) Connectivity() gridgraph.Connectivity { return c.conn }

// Grid returns the controlled grid. Mutate it only through the Controller.
func (c *Controller) Grid() *gridgraph.Grid { return c.grid }

// Last returns the most recent step result.
func (c *Controller) Last() traversal.StepResult { return c.last }

// Path returns the found path once Complete, otherwise nil.
func (c *Controller) Path() []gridgraph.Coord {
	if c.status != Complete {
		return nil
	}
	return c.last.Path
}

// Outcome returns why the last run completed; OutcomeNone before that.
func (c *Controller) Outcome() traversal.Outcome { return c.last.Outcome }

// RunID identifies the current or last run; uuid.Nil before the first.
func (c *Controller) RunID() uuid.UUID { return c.runID }

// Ticks returns the expansions performed by the current run.
func (c *Controller) Ticks() int {
	if c.state == nil {
		return 0
	}
	return c.state.Ticks()
}

// Elapsed returns run time excluding pauses. It is frozen in Pause and Complete.
func (c *Controller) Elapsed() time.Duration {
	switch c.status {
	case Run:
		return c.now().Sub(c.started)
	case Pause:
		return c.paused.Sub(c.started)
	case Complete:
		return c.elapsed
	default:
		return 0
	}
}

// DebugInfo returns the overlay for cell p. Only available in Pause and Complete.
func (c *Controller) DebugInfo(p gridgraph.Coord) (map[string]string, error) {
	if c.status != Pause && c.status != Complete {
		return nil, ErrNotInspectable
	}
	return traversal.CellDebugInfo(c.grid, p, c.mode)
}
