package frontier

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"
)

// Queue is a FIFO of T.
type Queue[T any] struct {
	q *linkedlistqueue.Queue
}

// NewQueue returns an empty queue seeded with items, in order.
func NewQueue[T any](items ...T) *Queue[T] {
	q := &Queue[T]{q: linkedlistqueue.New()}
	for _, it := range items {
		q.Push(it)
	}
	return q
}

// Push appends item at the back.
func (q *Queue[T]) Push(item T) { q.q.Enqueue(item) }

// Pop removes and returns the front item; ok is false when empty.
func (q *Queue[T]) Pop() (item T, ok bool) {
	v, ok := q.q.Dequeue()
	if !ok {
		return item, false
	}
	return v.(T), true
}

// Peek returns the front item without removing it.
func (q *Queue[T]) Peek() (item T, ok bool) {
	v, ok := q.q.Peek()
	if !ok {
		return item, false
	}
	return v.(T), true
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int { return q.q.Size() }

// Empty reports whether the queue holds no items.
func (q *Queue[T]) Empty() bool { return q.q.Empty() }

// Values returns the items front to back.
func (q *Queue[T]) Values() []T {
	raw := q.q.Values()
	out := make([]T, len(raw))
	for i, v := range raw {
		out[i] = v.(T)
	}
	return out
}

// Clear drops every item.
func (q *Queue[T]) Clear() { q.q.Clear() }
