package traversal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/pathgrid/gridgraph"
)

// Sentinel errors for engine setup and stepping.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("traversal: grid is nil")

	// ErrSameEndpoints is returned, wrapped together with
	// gridgraph.ErrOutOfBounds, when start and end are the same cell.
	ErrSameEndpoints = errors.New("traversal: start and end must differ")

	// ErrEndpointMismatch is returned when the cells at start/end do not carry
	// the Start/End kinds.
	ErrEndpointMismatch = errors.New("traversal: start/end do not match grid markers")

	// ErrUnknownMode is returned for a Mode outside BFS, AStar, Dijkstra.
	ErrUnknownMode = errors.New("traversal: unknown mode")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("traversal: invalid option supplied")

	// ErrEmptyFrontier is the reason a run ends without a path. Step reports
	// it as a Complete result with OutcomeExhausted, never as an error.
	ErrEmptyFrontier = errors.New("traversal: frontier is empty")

	// ErrInternalConsistency signals a broken predecessor chain: a cycle, or a
	// chain that does not end at start.
	ErrInternalConsistency = errors.New("traversal: internal consistency fault")
)

// Mode selects the search algorithm.
type Mode int

const (
	// BFS explores in FIFO order; every edge costs one.
	BFS Mode = iota
	// AStar explores by f = g + h with h the squared Euclidean distance to end.
	AStar
	// Dijkstra explores by accumulated unit-edge distance.
	Dijkstra
)

// Modes returns every mode in panel order.
func Modes() []Mode { return []Mode{BFS, AStar, Dijkstra} }

func (m Mode) String() string {
	switch m {
	case BFS:
		return "BFS"
	case AStar:
		return "A*"
	case Dijkstra:
		return "Dijkstra"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Valid reports whether m is one of the known modes.
func (m Mode) Valid() bool { return m >= BFS && m <= Dijkstra }

// ParseMode accepts "bfs", "astar"/"a*" and "dijkstra", case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bfs":
		return BFS, nil
	case "astar", "a*", "a-star":
		return AStar, nil
	case "dijkstra":
		return Dijkstra, nil
	}
	return BFS, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Status is the engine-level run status reported by Step.
type Status int

const (
	// Running means the frontier is non-empty and End has not been reached.
	Running Status = iota
	// Complete is terminal; Path is set if End was reached.
	Complete
)

func (s Status) String() string {
	if s == Complete {
		return "complete"
	}
	return "run"
}

// Outcome explains why a run completed.
type Outcome int

const (
	// OutcomeNone is reported while the run is still going.
	OutcomeNone Outcome = iota
	// OutcomeFound means End was reached and Path is populated.
	OutcomeFound
	// OutcomeExhausted means the frontier emptied without reaching End.
	OutcomeExhausted
	// OutcomeAborted means the MaxTicks budget ran out.
	OutcomeAborted
	// OutcomeFault means path reconstruction hit ErrInternalConsistency.
	OutcomeFault
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFound:
		return "found"
	case OutcomeExhausted:
		return "exhausted"
	case OutcomeAborted:
		return "aborted"
	case OutcomeFault:
		return "fault"
	default:
		return "none"
	}
}

// StepResult is the outcome of one tick.
//   - Status:      Running or Complete.
//   - Outcome:     why a Complete run ended (OutcomeNone while Running).
//   - Path:        start→end coordinates, empty unless Outcome is OutcomeFound.
//   - Current:     the cell expanded this tick (zero when nothing was popped).
//   - Discovered:  cells admitted to the frontier this tick, in neighbor order.
//   - FrontierLen: frontier size after the tick.
//   - Tick:        number of expansions so far.
type StepResult struct {
	Status      Status
	Outcome     Outcome
	Path        []gridgraph.Coord
	Current     gridgraph.Coord
	Discovered  []gridgraph.Coord
	FrontierLen int
	Tick        int
}

// Option configures the engine via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Initialize.
type Option func(*Options)

// Options holds hooks and limits for a run.
type Options struct {
	// OnEnqueue is called when a cell is admitted to the frontier (start included).
	OnEnqueue func(c gridgraph.Coord)

	// OnVisit is called when a cell is popped and marked Visited.
	OnVisit func(c gridgraph.Coord)

	// MaxTicks, if > 0, completes the run with OutcomeAborted after that many expansions.
	MaxTicks int

	err error
}

// DefaultOptions returns no-op hooks and no tick limit.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(gridgraph.Coord) {},
		OnVisit:   func(gridgraph.Coord) {},
	}
}

// WithOnEnqueue registers a callback to run on frontier admission.
func WithOnEnqueue(fn func(c gridgraph.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run when a cell is expanded.
func WithOnVisit(fn func(c gridgraph.Coord)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxTicks bounds the number of expansions.
//
//	n > 0: complete with OutcomeAborted after n expansions
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxTicks(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxTicks cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxTicks = n
	}
}
