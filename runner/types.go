package runner

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/pathgrid/gridgraph"
	"github.com/katalvlaran/pathgrid/internal/logging"
	"github.com/katalvlaran/pathgrid/traversal"
)

var (
	// ErrInvalidTransition is returned when a lifecycle call does not apply to the current status.
	ErrInvalidTransition = errors.New("runner: invalid transition")

	// ErrNotEditable is returned for grid or mode edits outside Wait.
	ErrNotEditable = errors.New("runner: grid can only be edited while waiting")

	// ErrNotInspectable is returned for DebugInfo outside Pause and Complete.
	ErrNotInspectable = errors.New("runner: cells can only be inspected while paused or complete")
)

// Status is the visualizer lifecycle state.
type Status int

const (
	// Wait is the editing state: walls and markers may change.
	Wait Status = iota
	// Ready is armed; the next Tick initializes the run.
	Ready
	// Run advances one search step per Tick.
	Run
	// Pause freezes the run and stops the clock.
	Pause
	// Complete holds the final result until Reset.
	Complete
)

func (s Status) String() string {
	switch s {
	case Wait:
		return "wait"
	case Ready:
		return "ready"
	case Run:
		return "run"
	case Pause:
		return "pause"
	case Complete:
		return "complete"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Option configures a Controller.
type Option func(*Controller)

// WithMode sets the initial search mode (BFS by default).
func WithMode(m traversal.Mode) Option {
	return func(c *Controller) { c.mode = m }
}

// WithConnectivity sets the initial neighbor connectivity (Conn4 by default).
func WithConnectivity(conn gridgraph.Connectivity) Option {
	return func(c *Controller) { c.conn = conn }
}

// WithLogger injects a logger; a no-op logger is used otherwise.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// WithMetrics attaches Prometheus collectors.
func WithMetrics(m *Metrics) Option {
	return func(c *Controller) { c.metrics = m }
}

// WithTraversalOptions forwards options to every traversal.Initialize call.
func WithTraversalOptions(opts ...traversal.Option) Option {
	return func(c *Controller) { c.travOpts = append(c.travOpts, opts...) }
}

func defaults(c *Controller) {
	c.mode = traversal.BFS
	c.conn = gridgraph.Conn4
	c.log = logging.NewNop()
	c.now = time.Now
}
