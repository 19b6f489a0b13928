// Package traversal is a steppable search engine over gridgraph.Grid.
//
// Initialize resets a grid's algorithm state and seeds a frontier from the
// Start cell; every call to (*State).Step expands exactly one cell, so a
// caller can render the grid between ticks. Three modes share one engine:
//
//	BFS       FIFO queue, unit edges, path via per-cell trace
//	AStar     min-heap on f = g + h, h = squared Euclidean, path via trace
//	Dijkstra  min-heap on distance with lazy decrease-key, path via predecessors
//
// Under Conn8 diagonal moves cost one, the same as orthogonal moves.
//
// A run stops as soon as End is discovered as a neighbor of the expanded cell.
// For BFS and Dijkstra on unit grids this still yields a shortest path; A*
// with the squared-Euclidean heuristic returns the first path found, which
// may be longer.
//
// Errors:
//
//	ErrNilGrid, ErrUnknownMode, ErrOptionViolation  invalid arguments
//	ErrSameEndpoints, ErrEndpointMismatch           invalid endpoints
//	ErrInternalConsistency                          broken predecessor chain
//
// An exhausted frontier is not an error: Step reports Complete with
// OutcomeExhausted and an empty path.
package traversal
