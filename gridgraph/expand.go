package gridgraph

import (
	"fmt"
	"slices"

	"github.com/emirpasic/gods/lists/doublylinkedlist"
)

// BreachPath finds a route from `from` to `to` that crosses the fewest walls.
// Stepping onto a passable cell costs 0, stepping onto a wall costs 1.
// Returns the route (both endpoints included) and the number of walls on it.
//
// Behavior:
//  1. Validate both endpoints are in bounds.
//  2. 0–1 BFS from `from`:
//     • Moving into a passable cell → cost 0 (pushed to the front)
//     • Moving into a wall          → cost 1 (pushed to the back)
//  3. Stop when `to` is dequeued.
//  4. Reconstruct the route via the prev slice.
//
// A front end uses this as a hint after a run ends without a path.
//
// Complexity: O(W·H·d) time, O(W·H) memory for distance and prev.
func (g *Grid) BreachPath(from, to Coord, conn Connectivity) (path []Coord, walls int, err error) {
	if !g.Contains(from) || !g.Contains(to) {
		return nil, 0, fmt.Errorf("%w: breach %v -> %v", ErrOutOfBounds, from, to)
	}

	n := len(g.cells)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = Infinity
		prev[i] = noPredecessor
	}

	src, dst := g.index(from.X, from.Y), g.index(to.X, to.Y)
	dist[src] = 0
	dq := doublylinkedlist.New(src)
	done := make([]bool, n)
	found := false

	for !dq.Empty() {
		front, _ := dq.Get(0)
		dq.Remove(0)
		u := front.(int)
		if done[u] {
			continue
		}
		done[u] = true
		if u == dst {
			found = true
			break
		}
		ux, uy := g.Coordinate(u)
		for _, d := range offsetsFor(conn) {
			vx, vy := ux+d[0], uy+d[1]
			if !g.InBounds(vx, vy) {
				continue
			}
			v := g.index(vx, vy)
			step := 0
			if !g.cells[v].Passable() {
				step = 1
			}
			nd := dist[u] + step
			if nd < dist[v] {
				dist[v] = nd
				prev[v] = u
				if step == 0 {
					dq.Prepend(v)
				} else {
					dq.Append(v)
				}
			}
		}
	}

	if !found {
		return nil, 0, ErrNoPath
	}
	for at := dst; at != noPredecessor; at = prev[at] {
		x, y := g.Coordinate(at)
		path = append(path, Coord{x, y})
	}
	slices.Reverse(path)
	return path, dist[dst], nil
}

// WallsOn returns the wall cells along path, in order.
func (g *Grid) WallsOn(path []Coord) []Coord {
	var walls []Coord
	for _, c := range path {
		if g.Contains(c) && g.cells[g.index(c.X, c.Y)].Kind == Wall {
			walls = append(walls, c)
		}
	}
	return walls
}
