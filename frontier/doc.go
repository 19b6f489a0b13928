// Package frontier provides the two open-set containers used by the search
// engine: a FIFO Queue for breadth-first search and a min-Heap for
// best-first searches (A*, Dijkstra).
//
// Both are generic wrappers over the gods queue implementations
// (linkedlistqueue and priorityqueue).
//
// Ordering:
//
//	Heap entries are ordered by the composite key (Priority, Seq), where Seq is a
//	per-heap insertion counter. Equal priorities therefore pop in insertion
//	order, which makes every search reproducible and never relies on comparing
//	the items themselves.
//
// Complexity:
//
//   - Queue Push/Pop:  O(1)
//   - Heap Push/Pop:   O(log n)
//   - Heap Contains:   O(n) linear scan
//
// Neither container is safe for concurrent use; the engine owns them from a
// single goroutine.
package frontier
