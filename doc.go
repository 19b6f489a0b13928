// Package pathgrid is a step-by-step pathfinding visualizer for 2D grids:
// draw walls, drop a start and an end, then watch BFS, A* or Dijkstra
// expand one cell per frame.
//
// 🚀 What is pathgrid?
//
//	A small engine plus a terminal front end that brings together:
//		• Grid model: walls, Start/End markers, 4- or 8-neighbor moves
//		• Steppable search: one expansion per Step, explicit frontier state
//		• Three modes: BFS, A* (squared-Euclidean h), Dijkstra
//		• Run lifecycle: wait → ready → run ⇄ pause → complete
//		• Debug overlay: predecessor, f/g/h or distance per cell
//
// ✨ Why pathgrid?
//
//   - Inspectable – every tick leaves Frontier/Visited marks on the grid
//   - No hidden state – a run lives entirely in traversal.State
//   - Deterministic – fixed neighbor order, heap ties broken by insertion
//   - Extensible – OnEnqueue/OnVisit hooks and Prometheus metrics
//
// Packages:
//
//	gridgraph/    Grid, Cell, Coord, layouts, reachability, wall-breach hints
//	frontier/     FIFO queue and (priority, seq) min-heap backing the modes
//	traversal/    Initialize/Step engine, path reconstruction, debug overlay
//	runner/       Controller state machine, timing, edits, metrics
//	config/       YAML settings with validation
//	cmd/pathgrid  `run` (headless) and `tui` (interactive) commands
//
// Quick ASCII example (BFS, 4-neighbor):
//
//	S x x
//	* # o
//	* * E
//
// '*' is the path, 'x' expanded cells, 'o' the frontier left behind.
//
//	go install github.com/katalvlaran/pathgrid/cmd/pathgrid@latest
package pathgrid
