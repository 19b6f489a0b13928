package frontier

import (
	"cmp"

	"github.com/emirpasic/gods/queues/priorityqueue"
)

// Entry is one heap element: the item and its composite ordering key.
type Entry[T any] struct {
	Item     T
	Priority int
	Seq      uint64
}

// Less orders entries by (Priority, Seq) ascending.
func (e Entry[T]) Less(o Entry[T]) bool {
	return compareEntries(e, o) < 0
}

func compareEntries[T any](a, b Entry[T]) int {
	if c := cmp.Compare(a.Priority, b.Priority); c != 0 {
		return c
	}
	return cmp.Compare(a.Seq, b.Seq)
}

// Heap is a min-heap of T keyed by (priority, insertion sequence).
// Duplicate items are allowed; callers that need uniqueness use Contains.
type Heap[T any] struct {
	pq  *priorityqueue.Queue
	seq uint64
}

// NewHeap returns an empty heap.
func NewHeap[T any]() *Heap[T] {
	return &Heap[T]{
		pq: priorityqueue.NewWith(func(a, b interface{}) int {
			return compareEntries(a.(Entry[T]), b.(Entry[T]))
		}),
	}
}

// Push inserts item with the given priority and returns the stored entry.
func (h *Heap[T]) Push(item T, priority int) Entry[T] {
	e := Entry[T]{Item: item, Priority: priority, Seq: h.seq}
	h.seq++
	h.pq.Enqueue(e)
	return e
}

// Pop removes and returns the minimum entry; ok is false when empty.
func (h *Heap[T]) Pop() (e Entry[T], ok bool) {
	v, ok := h.pq.Dequeue()
	if !ok {
		return e, false
	}
	return v.(Entry[T]), true
}

// Peek returns the minimum entry without removing it.
func (h *Heap[T]) Peek() (e Entry[T], ok bool) {
	v, ok := h.pq.Peek()
	if !ok {
		return e, false
	}
	return v.(Entry[T]), true
}

// Len returns the number of entries, stale duplicates included.
func (h *Heap[T]) Len() int { return h.pq.Size() }

// Empty reports whether the heap holds no entries.
func (h *Heap[T]) Empty() bool { return h.pq.Empty() }

// Values returns the entries in internal heap order (not sorted).
func (h *Heap[T]) Values() []Entry[T] {
	raw := h.pq.Values()
	out := make([]Entry[T], len(raw))
	for i, v := range raw {
		out[i] = v.(Entry[T])
	}
	return out
}

// Contains reports whether any entry's item satisfies match.
// Complexity: O(n).
func (h *Heap[T]) Contains(match func(T) bool) bool {
	it := h.pq.Iterator()
	for it.Next() {
		if match(it.Value().(Entry[T]).Item) {
			return true
		}
	}
	return false
}

// Clear drops every entry. The sequence counter keeps increasing.
func (h *Heap[T]) Clear() { h.pq.Clear() }
