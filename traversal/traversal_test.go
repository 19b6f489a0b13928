package traversal_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathgrid/gridgraph"
	"github.com/katalvlaran/pathgrid/traversal"
)

// mustLayout parses rows or fails the test.
func mustLayout(t testing.TB, rows ...string) *gridgraph.Grid {
	t.Helper()
	g, err := gridgraph.ParseLayout(rows)
	require.NoError(t, err)
	return g
}

// runToEnd steps until Complete, failing if it takes more than W×H+1 ticks.
func runToEnd(t testing.TB, s *traversal.State) traversal.StepResult {
	t.Helper()
	g := s.Grid()
	for i := 0; i <= g.Width*g.Height+1; i++ {
		res, err := s.Step()
		require.NoError(t, err)
		if res.Status == traversal.Complete {
			return res
		}
	}
	t.Fatalf("run did not complete within %d ticks", g.Width*g.Height+1)
	return traversal.StepResult{}
}

// assertValidPath checks endpoints, adjacency and passability of path.
func assertValidPath(t testing.TB, g *gridgraph.Grid, conn gridgraph.Connectivity, path []gridgraph.Coord) {
	t.Helper()
	require.NotEmpty(t, path)
	assert.Equal(t, g.Start(), path[0], "path must begin at start")
	assert.Equal(t, g.End(), path[len(path)-1], "path must end at end")
	seen := make(map[gridgraph.Coord]bool, len(path))
	for i, c := range path {
		cell, err := g.Cell(c)
		require.NoError(t, err)
		assert.True(t, cell.Passable(), "wall on path at %v", c)
		assert.False(t, seen[c], "cell %v repeated", c)
		seen[c] = true
		if i > 0 {
			assert.True(t, gridgraph.Adjacent(path[i-1], c, conn), "%v -> %v not adjacent", path[i-1], c)
		}
	}
}

// countVisited returns the number of cells marked Visited.
func countVisited(g *gridgraph.Grid) int {
	n := 0
	for c := range g.Cells() {
		if c.Visit == gridgraph.Visited {
			n++
		}
	}
	return n
}

// ------------------------------------------------------------------------
// 1. Initialize validation
// ------------------------------------------------------------------------

func TestInitialize_Errors(t *testing.T) {
	g, err := gridgraph.NewGrid(4, 3)
	require.NoError(t, err)

	tests := []struct {
		name       string
		grid       *gridgraph.Grid
		start, end gridgraph.Coord
		mode       traversal.Mode
		opts       []traversal.Option
		want       error
	}{
		{"nil grid", nil, gridgraph.Coord{}, gridgraph.Coord{X: 3, Y: 2}, traversal.BFS, nil, traversal.ErrNilGrid},
		{"unknown mode", g, g.Start(), g.End(), traversal.Mode(9), nil, traversal.ErrUnknownMode},
		{"negative max ticks", g, g.Start(), g.End(), traversal.BFS,
			[]traversal.Option{traversal.WithMaxTicks(-1)}, traversal.ErrOptionViolation},
		{"start out of bounds", g, gridgraph.Coord{X: -1}, g.End(), traversal.BFS, nil, gridgraph.ErrOutOfBounds},
		{"end out of bounds", g, g.Start(), gridgraph.Coord{X: 4, Y: 0}, traversal.AStar, nil, gridgraph.ErrOutOfBounds},
		{"same endpoints", g, g.Start(), g.Start(), traversal.Dijkstra, nil, traversal.ErrSameEndpoints},
		{"same endpoints is out of bounds", g, g.End(), g.End(), traversal.BFS, nil, gridgraph.ErrOutOfBounds},
		{"end not marked", g, g.Start(), gridgraph.Coord{X: 2, Y: 2}, traversal.BFS, nil, traversal.ErrEndpointMismatch},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := traversal.Initialize(tc.grid, tc.start, tc.end, tc.mode, gridgraph.Conn4, tc.opts...)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, s)
		})
	}
}

// TestInitialize_ResetsGrid checks a second run starts from a clean slate.
func TestInitialize_ResetsGrid(t *testing.T) {
	g := mustLayout(t, "S...", "...E")
	s, err := traversal.Initialize(g, g.Start(), g.End(), traversal.Dijkstra, gridgraph.Conn4)
	require.NoError(t, err)
	runToEnd(t, s)
	require.Positive(t, countVisited(g))

	s, err = traversal.Initialize(g, g.Start(), g.End(), traversal.BFS, gridgraph.Conn4)
	require.NoError(t, err)
	assert.Equal(t, 1, s.FrontierLen())
	assert.Equal(t, 0, s.Ticks())
	assert.False(t, s.Done())
	for c := range g.Cells() {
		if c.Pos == g.Start() {
			assert.Equal(t, gridgraph.Frontier, c.Visit)
			continue
		}
		assert.Equal(t, gridgraph.Unvisited, c.Visit, "cell %v", c.Pos)
		assert.False(t, c.HasPredecessor(), "cell %v", c.Pos)
		assert.Equal(t, gridgraph.Infinity, c.Distance)
		assert.Empty(t, c.Trace)
	}
}

// ------------------------------------------------------------------------
// 2. Worked scenarios
// ------------------------------------------------------------------------

// TestStep_OpenGrid5x5 runs every mode corner to corner on an empty 5×5 grid.
func TestStep_OpenGrid5x5(t *testing.T) {
	tests := []struct {
		mode    traversal.Mode
		conn    gridgraph.Connectivity
		wantLen int // coordinates; 0 means "at least Manhattan"
	}{
		{traversal.BFS, gridgraph.Conn4, 9},
		{traversal.Dijkstra, gridgraph.Conn4, 9},
		{traversal.AStar, gridgraph.Conn4, 0},
		{traversal.BFS, gridgraph.Conn8, 5},
		{traversal.Dijkstra, gridgraph.Conn8, 5},
		{traversal.AStar, gridgraph.Conn8, 0},
	}
	for _, tc := range tests {
		t.Run(tc.mode.String()+"/conn"+tc.conn.String(), func(t *testing.T) {
			g, err := gridgraph.NewGrid(5, 5)
			require.NoError(t, err)
			s, err := traversal.Initialize(g, g.Start(), g.End(), tc.mode, tc.conn)
			require.NoError(t, err)

			res := runToEnd(t, s)
			assert.Equal(t, traversal.OutcomeFound, res.Outcome)
			assertValidPath(t, g, tc.conn, res.Path)
			if tc.wantLen > 0 {
				assert.Len(t, res.Path, tc.wantLen)
			} else {
				assert.GreaterOrEqual(t, len(res.Path), 5)
			}
		})
	}
}

// TestStep_AdjacentEndpoints completes on the very first tick.
func TestStep_AdjacentEndpoints(t *testing.T) {
	for _, mode := range traversal.Modes() {
		t.Run(mode.String(), func(t *testing.T) {
			g := mustLayout(t, "SE.", "...")
			s, err := traversal.Initialize(g, gridgraph.Coord{X: 0, Y: 0}, gridgraph.Coord{X: 1, Y: 0}, mode, gridgraph.Conn4)
			require.NoError(t, err)

			res, err := s.Step()
			require.NoError(t, err)
			assert.Equal(t, traversal.Complete, res.Status)
			assert.Equal(t, traversal.OutcomeFound, res.Outcome)
			assert.Equal(t, []gridgraph.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}}, res.Path)
			assert.Equal(t, 1, res.Tick)
			// down is examined before right
			assert.Equal(t, []gridgraph.Coord{{X: 0, Y: 1}}, res.Discovered)
		})
	}
}

// TestStep_SingleWallBlocks exhausts the frontier when the only route is walled.
func TestStep_SingleWallBlocks(t *testing.T) {
	for _, mode := range traversal.Modes() {
		t.Run(mode.String(), func(t *testing.T) {
			g, err := gridgraph.NewGrid(3, 1)
			require.NoError(t, err)
			require.NoError(t, g.SetWall(gridgraph.Coord{X: 1, Y: 0}, true))

			s, err := traversal.Initialize(g, g.Start(), g.End(), mode, gridgraph.Conn8)
			require.NoError(t, err)

			res, err := s.Step()
			require.NoError(t, err)
			assert.Equal(t, traversal.Complete, res.Status)
			assert.Equal(t, traversal.OutcomeExhausted, res.Outcome)
			assert.Empty(t, res.Path)
			assert.NotNil(t, res.Path)
			assert.Equal(t, 0, res.FrontierLen)
		})
	}
}

// TestStep_ExhaustedVisitsComponent checks an unreachable end leaves every
// reachable cell Visited and nothing else touched.
func TestStep_ExhaustedVisitsComponent(t *testing.T) {
	for _, mode := range traversal.Modes() {
		t.Run(mode.String(), func(t *testing.T) {
			g := mustLayout(t,
				"S.#..",
				"..#..",
				"###.E",
			)
			s, err := traversal.Initialize(g, g.Start(), g.End(), mode, gridgraph.Conn8)
			require.NoError(t, err)

			res := runToEnd(t, s)
			assert.Equal(t, traversal.OutcomeExhausted, res.Outcome)

			reach := g.ReachableFrom(g.Start(), gridgraph.Conn8)
			assert.Len(t, reach, 4)
			assert.Equal(t, len(reach), countVisited(g))
			assert.Equal(t, len(reach), res.Tick)
			for _, c := range reach {
				cell, _ := g.Cell(c)
				assert.Equal(t, gridgraph.Visited, cell.Visit)
			}
		})
	}
}

// TestStep_WalkedAroundWall traces the exact tick sequence of each mode.
func TestStep_WalkedAroundWall(t *testing.T) {
	want := []gridgraph.Coord{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}, {X: 2, Y: 2}}
	tests := []struct {
		mode      traversal.Mode
		wantTicks int
		wantOrder []gridgraph.Coord
	}{
		{traversal.BFS, 6, []gridgraph.Coord{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: 0}, {X: 1, Y: 2}}},
		{traversal.Dijkstra, 6, []gridgraph.Coord{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: 0}, {X: 1, Y: 2}}},
		// f ties resolve by insertion; (1,2) jumps ahead with f = 3 + 1
		{traversal.AStar, 5, []gridgraph.Coord{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}, {X: 0, Y: 2}, {X: 1, Y: 2}}},
	}
	for _, tc := range tests {
		t.Run(tc.mode.String(), func(t *testing.T) {
			g := mustLayout(t,
				"S..",
				".#.",
				"..E",
			)
			var order []gridgraph.Coord
			s, err := traversal.Initialize(g, g.Start(), g.End(), tc.mode, gridgraph.Conn4,
				traversal.WithOnVisit(func(c gridgraph.Coord) { order = append(order, c) }))
			require.NoError(t, err)

			res := runToEnd(t, s)
			assert.Equal(t, want, res.Path)
			assert.Equal(t, tc.wantTicks, res.Tick)
			assert.Equal(t, tc.wantOrder, order)
		})
	}
}

// ------------------------------------------------------------------------
// 3. Engine guarantees
// ------------------------------------------------------------------------

// TestStep_OneTransitionPerTick checks each tick marks exactly one new cell Visited.
func TestStep_OneTransitionPerTick(t *testing.T) {
	for _, mode := range traversal.Modes() {
		t.Run(mode.String(), func(t *testing.T) {
			g := mustLayout(t,
				"S.....",
				".##.#.",
				"...#..",
				".#...E",
			)
			s, err := traversal.Initialize(g, g.Start(), g.End(), mode, gridgraph.Conn4)
			require.NoError(t, err)
			for !s.Done() {
				before := countVisited(g)
				res, err := s.Step()
				require.NoError(t, err)
				assert.Equal(t, before+1, countVisited(g))
				assert.Equal(t, countVisited(g), res.Tick)
			}
		})
	}
}

// TestStep_NoDoubleAdmission checks BFS and A* enqueue each cell once per run.
func TestStep_NoDoubleAdmission(t *testing.T) {
	for _, mode := range []traversal.Mode{traversal.BFS, traversal.AStar} {
		t.Run(mode.String(), func(t *testing.T) {
			g, err := gridgraph.NewGrid(7, 6)
			require.NoError(t, err)
			count := map[gridgraph.Coord]int{}
			s, err := traversal.Initialize(g, g.Start(), g.End(), mode, gridgraph.Conn8,
				traversal.WithOnEnqueue(func(c gridgraph.Coord) { count[c]++ }))
			require.NoError(t, err)
			runToEnd(t, s)
			for c, n := range count {
				assert.Equal(t, 1, n, "cell %v enqueued %d times", c, n)
			}
			assert.Equal(t, 1, count[g.Start()])
		})
	}
}

// TestStep_AfterComplete checks repeated steps return the terminal result untouched.
func TestStep_AfterComplete(t *testing.T) {
	g := mustLayout(t, "S.#", "..E")
	s, err := traversal.Initialize(g, g.Start(), g.End(), traversal.BFS, gridgraph.Conn4)
	require.NoError(t, err)
	res := runToEnd(t, s)
	snapshot := g.Render(res.Path)

	for i := 0; i < 3; i++ {
		again, err := s.Step()
		require.NoError(t, err)
		assert.Equal(t, res, again)
	}
	assert.Equal(t, snapshot, g.Render(res.Path))
	assert.Equal(t, res, s.Result())
}

// TestStep_TraceMatchesPredecessors checks both reconstructions agree for traced modes.
func TestStep_TraceMatchesPredecessors(t *testing.T) {
	for _, mode := range []traversal.Mode{traversal.BFS, traversal.AStar} {
		t.Run(mode.String(), func(t *testing.T) {
			g := mustLayout(t,
				"S..#....",
				".#.#.##.",
				".#...#..",
				"...#...E",
			)
			s, err := traversal.Initialize(g, g.Start(), g.End(), mode, gridgraph.Conn4)
			require.NoError(t, err)
			res := runToEnd(t, s)
			require.Equal(t, traversal.OutcomeFound, res.Outcome)

			viaPred, err := traversal.PathFromPredecessors(g, g.Start(), g.End())
			require.NoError(t, err)
			assert.Equal(t, res.Path, viaPred)
		})
	}
}

func TestStep_MaxTicks(t *testing.T) {
	g, err := gridgraph.NewGrid(5, 5)
	require.NoError(t, err)
	s, err := traversal.Initialize(g, g.Start(), g.End(), traversal.BFS, gridgraph.Conn4, traversal.WithMaxTicks(2))
	require.NoError(t, err)

	for i := 1; i <= 2; i++ {
		res, err := s.Step()
		require.NoError(t, err)
		assert.Equal(t, traversal.Running, res.Status)
		assert.Equal(t, i, res.Tick)
	}
	res, err := s.Step()
	require.NoError(t, err)
	assert.Equal(t, traversal.Complete, res.Status)
	assert.Equal(t, traversal.OutcomeAborted, res.Outcome)
	assert.Equal(t, 2, res.Tick)
	assert.Empty(t, res.Path)
	assert.Equal(t, 0, s.FrontierLen())
}

// ------------------------------------------------------------------------
// 4. Mode-specific scores
// ------------------------------------------------------------------------

// TestAStar_Scores checks g is path length and h is squared Euclidean.
func TestAStar_Scores(t *testing.T) {
	g, err := gridgraph.NewGrid(5, 5)
	require.NoError(t, err)
	s, err := traversal.Initialize(g, g.Start(), g.End(), traversal.AStar, gridgraph.Conn4)
	require.NoError(t, err)

	_, err = s.Step()
	require.NoError(t, err)
	for _, c := range []gridgraph.Coord{{X: 0, Y: 1}, {X: 1, Y: 0}} {
		cell, _ := g.Cell(c)
		assert.Equal(t, gridgraph.Frontier, cell.Visit)
		assert.Equal(t, 1, cell.G)
		assert.Equal(t, 25, cell.H)
		assert.Equal(t, 26, cell.F)
	}
	assert.Equal(t, 32, traversal.Heuristic(g.Start(), g.End()))
}

// TestAStar_FirstFound documents that A* keeps the first g assigned to a cell.
func TestAStar_FirstFound(t *testing.T) {
	g := mustLayout(t,
		"......",
		".####.",
		"S#..#E",
		".#.##.",
		"......",
	)
	s, err := traversal.Initialize(g, g.Start(), g.End(), traversal.AStar, gridgraph.Conn4)
	require.NoError(t, err)
	res := runToEnd(t, s)
	require.Equal(t, traversal.OutcomeFound, res.Outcome)
	assertValidPath(t, g, gridgraph.Conn4, res.Path)

	bfsLen := shortestHops(g, gridgraph.Conn4)
	assert.GreaterOrEqual(t, len(res.Path)-1, bfsLen)
	for i, c := range res.Path[:len(res.Path)-1] {
		cell, _ := g.Cell(c)
		assert.Equal(t, i, cell.G, "g at %v", c)
	}
}

// TestDijkstra_Distances checks visited distances equal hop counts on an open grid.
func TestDijkstra_Distances(t *testing.T) {
	g, err := gridgraph.NewGrid(6, 4)
	require.NoError(t, err)
	s, err := traversal.Initialize(g, g.Start(), g.End(), traversal.Dijkstra, gridgraph.Conn4)
	require.NoError(t, err)
	res := runToEnd(t, s)
	require.Equal(t, traversal.OutcomeFound, res.Outcome)
	assert.Len(t, res.Path, 6+4-1)

	for c := range g.Cells() {
		if c.Visit != gridgraph.Visited {
			continue
		}
		assert.Equal(t, c.Pos.X+c.Pos.Y, c.Distance, "distance at %v", c.Pos)
	}
	// end is discovered, never expanded
	endCell, _ := g.Cell(g.End())
	assert.Equal(t, gridgraph.Unvisited, endCell.Visit)
}

// ------------------------------------------------------------------------
// 5. Hooks and Run
// ------------------------------------------------------------------------

func TestHooks(t *testing.T) {
	g := mustLayout(t, "S.", ".E")
	var enq, vis []gridgraph.Coord
	s, err := traversal.Initialize(g, g.Start(), g.End(), traversal.BFS, gridgraph.Conn4,
		traversal.WithOnEnqueue(func(c gridgraph.Coord) { enq = append(enq, c) }),
		traversal.WithOnVisit(func(c gridgraph.Coord) { vis = append(vis, c) }),
		traversal.WithOnVisit(nil), // ignored
	)
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Coord{{X: 0, Y: 0}}, enq)

	res := runToEnd(t, s)
	assert.Equal(t, traversal.OutcomeFound, res.Outcome)
	assert.Equal(t, []gridgraph.Coord{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}}, enq)
	assert.Equal(t, []gridgraph.Coord{{X: 0, Y: 0}, {X: 0, Y: 1}}, vis)
}

func TestRun(t *testing.T) {
	g, err := gridgraph.NewGrid(8, 8)
	require.NoError(t, err)
	s, err := traversal.Initialize(g, g.Start(), g.End(), traversal.Dijkstra, gridgraph.Conn8)
	require.NoError(t, err)

	res, err := traversal.Run(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, traversal.Complete, res.Status)
	assert.Len(t, res.Path, 8)
	assert.True(t, s.Done())
}

func TestRun_Cancelled(t *testing.T) {
	g, err := gridgraph.NewGrid(8, 8)
	require.NoError(t, err)
	s, err := traversal.Initialize(g, g.Start(), g.End(), traversal.BFS, gridgraph.Conn4)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = traversal.Run(ctx, s)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, s.Done())
	assert.Equal(t, 0, s.Ticks())
}

// ------------------------------------------------------------------------
// 6. Accessors and parsing
// ------------------------------------------------------------------------

func TestStateAccessors(t *testing.T) {
	g := mustLayout(t, "S..", "..E")
	s, err := traversal.Initialize(g, g.Start(), g.End(), traversal.AStar, gridgraph.Conn8)
	require.NoError(t, err)
	assert.Same(t, g, s.Grid())
	assert.Equal(t, traversal.AStar, s.Mode())
	assert.Equal(t, g.Start(), s.Start())
	assert.Equal(t, g.End(), s.End())
	assert.Equal(t, gridgraph.Conn8, s.Connectivity())
	assert.Equal(t, traversal.StepResult{}, s.Result())
}

func TestParseMode(t *testing.T) {
	tests := map[string]traversal.Mode{
		"bfs": traversal.BFS, "BFS": traversal.BFS,
		"astar": traversal.AStar, "A*": traversal.AStar, " a-star ": traversal.AStar,
		"Dijkstra": traversal.Dijkstra,
	}
	for in, want := range tests {
		got, err := traversal.ParseMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := traversal.ParseMode("dfs")
	assert.ErrorIs(t, err, traversal.ErrUnknownMode)

	assert.Equal(t, "A*", traversal.AStar.String())
	assert.Equal(t, "Mode(7)", traversal.Mode(7).String())
	assert.Equal(t, "found", traversal.OutcomeFound.String())
	assert.Equal(t, "complete", traversal.Complete.String())
}
