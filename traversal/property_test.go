package traversal_test

import (
	"context"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/pathgrid/gridgraph"
	"github.com/katalvlaran/pathgrid/traversal"
)

const propSide = 8

// shortestHops is a reference BFS over passable cells; -1 when unreachable.
func shortestHops(g *gridgraph.Grid, conn gridgraph.Connectivity) int {
	dist := map[gridgraph.Coord]int{g.Start(): 0}
	queue := []gridgraph.Coord{g.Start()}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur == g.End() {
			return dist[cur]
		}
		for n := range g.Neighbors(cur, conn) {
			if _, seen := dist[n.Pos]; seen || !n.Passable() {
				continue
			}
			dist[n.Pos] = dist[cur] + 1
			queue = append(queue, n.Pos)
		}
	}
	return -1
}

// wallGrid builds a propSide×propSide grid, walling cells whose roll is below density.
func wallGrid(rolls []int, density int) *gridgraph.Grid {
	rows := make([]string, propSide)
	var sb strings.Builder
	for y := 0; y < propSide; y++ {
		sb.Reset()
		for x := 0; x < propSide; x++ {
			switch {
			case x == 0 && y == 0:
				sb.WriteRune(gridgraph.RuneStart)
			case x == propSide-1 && y == propSide-1:
				sb.WriteRune(gridgraph.RuneEnd)
			case rolls[y*propSide+x] < density:
				sb.WriteRune(gridgraph.RuneWall)
			default:
				sb.WriteRune(gridgraph.RuneEmpty)
			}
		}
		rows[y] = sb.String()
	}
	g, err := gridgraph.ParseLayout(rows)
	if err != nil {
		panic(err)
	}
	return g
}

// validPath reports whether path is a start→end walk of adjacent passable cells.
func validPath(g *gridgraph.Grid, conn gridgraph.Connectivity, path []gridgraph.Coord) bool {
	if len(path) < 2 || path[0] != g.Start() || path[len(path)-1] != g.End() {
		return false
	}
	for i, c := range path {
		cell, err := g.Cell(c)
		if err != nil || !cell.Passable() {
			return false
		}
		if i > 0 && !gridgraph.Adjacent(path[i-1], c, conn) {
			return false
		}
	}
	return true
}

// TestSearchProperties checks path validity, optimality and exhaustion over random walls.
func TestSearchProperties(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping property-based test in short mode")
	}

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 150

	properties := gopter.NewProperties(parameters)

	rolls := gen.SliceOfN(propSide*propSide, gen.IntRange(0, 9))
	modes := gen.IntRange(0, 2)
	diag := gen.Bool()
	density := gen.IntRange(0, 5)

	// Property 1: a path is found exactly when end is reachable, and it is valid.
	properties.Property("found iff reachable, path valid", prop.ForAll(
		func(rs []int, m int, eight bool, d int) bool {
			g := wallGrid(rs, d)
			conn := gridgraph.Conn4
			if eight {
				conn = gridgraph.Conn8
			}
			s, err := traversal.Initialize(g, g.Start(), g.End(), traversal.Mode(m), conn)
			if err != nil {
				return false
			}
			res, err := traversal.Run(context.Background(), s)
			if err != nil || res.Status != traversal.Complete {
				return false
			}
			if g.Connected(g.Start(), g.End(), conn) {
				return res.Outcome == traversal.OutcomeFound && validPath(g, conn, res.Path)
			}
			return res.Outcome == traversal.OutcomeExhausted && len(res.Path) == 0
		},
		rolls, modes, diag, density,
	))

	// Property 2: BFS and Dijkstra return shortest hop counts.
	properties.Property("BFS and Dijkstra are optimal", prop.ForAll(
		func(rs []int, dijkstra bool, eight bool, d int) bool {
			g := wallGrid(rs, d)
			conn := gridgraph.Conn4
			if eight {
				conn = gridgraph.Conn8
			}
			mode := traversal.BFS
			if dijkstra {
				mode = traversal.Dijkstra
			}
			s, err := traversal.Initialize(g, g.Start(), g.End(), mode, conn)
			if err != nil {
				return false
			}
			res, err := traversal.Run(context.Background(), s)
			if err != nil {
				return false
			}
			want := shortestHops(g, conn)
			if want < 0 {
				return len(res.Path) == 0
			}
			return len(res.Path)-1 == want
		},
		rolls, gen.Bool(), diag, density,
	))

	// Property 3: every tick visits exactly one new cell and ticks never
	// exceed the number of passable cells.
	properties.Property("one visit per tick", prop.ForAll(
		func(rs []int, m int, d int) bool {
			g := wallGrid(rs, d)
			s, err := traversal.Initialize(g, g.Start(), g.End(), traversal.Mode(m), gridgraph.Conn4)
			if err != nil {
				return false
			}
			passable := 0
			for c := range g.Cells() {
				if c.Passable() {
					passable++
				}
			}
			for !s.Done() {
				res, err := s.Step()
				if err != nil || res.Tick > passable {
					return false
				}
				if countVisited(g) != s.Ticks() {
					return false
				}
			}
			return true
		},
		rolls, modes, density,
	))

	// Property 4: on an open grid BFS and Dijkstra path length is the Manhattan distance.
	properties.Property("open grid Manhattan", prop.ForAll(
		func(w, h int, dijkstra bool) bool {
			g, err := gridgraph.NewGrid(w, h)
			if err != nil {
				return false
			}
			mode := traversal.BFS
			if dijkstra {
				mode = traversal.Dijkstra
			}
			s, err := traversal.Initialize(g, g.Start(), g.End(), mode, gridgraph.Conn4)
			if err != nil {
				return false
			}
			res, err := traversal.Run(context.Background(), s)
			return err == nil && len(res.Path)-1 == (w-1)+(h-1)
		},
		gen.IntRange(2, 20), gen.IntRange(1, 20), gen.Bool(),
	))

	properties.TestingRun(t)
}
