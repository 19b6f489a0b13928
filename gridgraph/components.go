package gridgraph

import "github.com/emirpasic/gods/queues/linkedlistqueue"

// ReachableFrom returns every passable cell connected to from under conn,
// in breadth-first discovery order starting with from itself.
// Returns nil when from is out of bounds or a wall.
//
// The flood ignores per-run algorithm state, so it can be used to check a
// layout before a run or to cross-check a finished one.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) ReachableFrom(from Coord, conn Connectivity) []Coord {
	if !g.Contains(from) || !g.cells[g.index(from.X, from.Y)].Passable() {
		return nil
	}
	seen := make([]bool, len(g.cells))
	i0 := g.index(from.X, from.Y)
	seen[i0] = true
	queue := linkedlistqueue.New()
	queue.Enqueue(i0)
	var comp []Coord

	for !queue.Empty() {
		head, _ := queue.Dequeue()
		u := head.(int)
		ux, uy := g.Coordinate(u)
		comp = append(comp, Coord{ux, uy})
		for _, d := range offsetsFor(conn) {
			vx, vy := ux+d[0], uy+d[1]
			if !g.InBounds(vx, vy) {
				continue
			}
			vi := g.index(vx, vy)
			if seen[vi] || !g.cells[vi].Passable() {
				continue
			}
			seen[vi] = true
			queue.Enqueue(vi)
		}
	}
	return comp
}

// Connected reports whether b is reachable from a without crossing walls.
func (g *Grid) Connected(a, b Coord, conn Connectivity) bool {
	for _, c := range g.ReachableFrom(a, conn) {
		if c == b {
			return true
		}
	}
	return false
}
