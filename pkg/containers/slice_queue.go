package containers

import (
	"sync"
)

// Queue is a FIFO queue safe for concurrent use.
type Queue[T any] interface {
	Add(elem T)
	Pop() (T, bool)
	Peek() (T, bool)
	Size() int
}

// SliceQueue is a thread-safe FIFO queue backed by a slice. C receives a
// signal whenever elements are added, so a consumer can wait on it and
// then drain the queue with Pop.
type SliceQueue[T any] struct {
	mu    sync.Mutex
	elems []T

	C chan struct{}
}

// NewSliceQueue creates an empty SliceQueue.
func NewSliceQueue[T any]() *SliceQueue[T] {
	return &SliceQueue[T]{
		C: make(chan struct{}, 1),
	}
}

// Add appends elem and signals C without blocking.
func (q *SliceQueue[T]) Add(elem T) {
	q.mu.Lock()
	q.elems = append(q.elems, elem)
	q.mu.Unlock()

	select {
	case q.C <- struct{}{}:
	default:
	}
}

// Pop removes the oldest element.
func (q *SliceQueue[T]) Pop() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	var zero T
	if len(q.elems) == 0 {
		return zero, false
	}
	elem := q.elems[0]
	q.elems[0] = zero
	q.elems = q.elems[1:]
	return elem, true
}

// Peek returns the oldest element.
func (q *SliceQueue[T]) Peek() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.elems) == 0 {
		var zero T
		return zero, false
	}
	return q.elems[0], true
}

// Size returns the number of queued elements.
func (q *SliceQueue[T]) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.elems)
}

var _ Queue[int] = (*SliceQueue[int])(nil)
