// Package gridgraph models the 2-D lattice a pathfinding visualizer paints on
// and the search engine explores.
//
// What:
//
//   - Grid owns Width×Height cells in row-major order; each Cell carries an
//     editor Kind (Empty, Wall, Start, End) and per-run algorithm state
//     (VisitState, predecessor, Distance, G/H/F, Trace).
//   - Neighbors yields adjacent cells in a fixed order so searches are reproducible.
//   - ResetAlgorithmState clears run state and keeps the layout.
//   - ParseLayout/Render convert to and from a one-rune-per-cell text form.
//   - ReachableFrom floods passable cells; BreachPath finds the route that knocks
//     down the fewest walls (0-1 BFS).
//
// Neighbor order:
//
//	Conn4: up, left, down, right
//	Conn8: up, left, down, right, up-left, down-left, down-right, up-right
//
// Predecessors are stored as row-major indices into the grid, never as pointers,
// so the predecessor tree cannot keep cells alive or form ownership cycles.
//
// Complexity:
//
//   - NewGrid, ResetAlgorithmState: O(W×H).
//   - CellAt, Neighbors (per call):  O(1) / O(d).
//   - ReachableFrom, BreachPath:     O(W×H×d), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid, ErrGridTooSmall: bad dimensions.
//   - ErrOutOfBounds: coordinate outside the grid.
//   - ErrMarkerCollision: an edit would wall over or stack Start/End.
//   - ErrNonRectangular, ErrLayoutRune, ErrLayoutMarkers: bad text layout.
//   - ErrNoPath: no route between the requested cells.
package gridgraph
