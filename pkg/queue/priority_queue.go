package queue

import (
	"github.com/hanfei1991/queuelab/pkg/arena"
	"github.com/hanfei1991/queuelab/pkg/errors"
	"github.com/hanfei1991/queuelab/pkg/render"
)

// PriorityQueue is a singly linked list kept in ascending order, so the
// minimum is always at the head.
type PriorityQueue struct {
	nodes *arena.Arena
	head  arena.Index
}

// NewPriorityQueue creates an empty PriorityQueue.
func NewPriorityQueue() *PriorityQueue {
	return &PriorityQueue{
		nodes: arena.New(),
		head:  arena.Nil,
	}
}

// Enqueue inserts v before the first element greater than v. Elements
// equal to v stay in front of it.
func (q *PriorityQueue) Enqueue(v int32) error {
	idx := q.nodes.Alloc(v)
	if q.head == arena.Nil || v < q.nodes.Get(q.head).Value {
		q.nodes.Get(idx).Next = q.head
		q.head = idx
		return nil
	}

	cur := q.head
	for {
		next := q.nodes.Get(cur).Next
		if next == arena.Nil || q.nodes.Get(next).Value > v {
			break
		}
		cur = next
	}
	n := q.nodes.Get(idx)
	n.Next = q.nodes.Get(cur).Next
	q.nodes.Get(cur).Next = idx
	return nil
}

// Dequeue removes and returns the minimum.
func (q *PriorityQueue) Dequeue() (int32, error) {
	if q.head == arena.Nil {
		return 0, errors.ErrEmptyQueue.GenWithStackByArgs(KindPriority.Label())
	}
	idx := q.head
	n := q.nodes.Get(idx)
	v := n.Value
	q.head = n.Next
	q.nodes.Free(idx)
	return v, nil
}

// Peek returns the minimum.
func (q *PriorityQueue) Peek() (int32, error) {
	if q.head == arena.Nil {
		return 0, errors.ErrEmptyQueue.GenWithStackByArgs(KindPriority.Label())
	}
	return q.nodes.Get(q.head).Value, nil
}

// Values implements Queue.
func (q *PriorityQueue) Values() []int32 {
	return forward(q.nodes, q.head)
}

// Len implements Queue.
func (q *PriorityQueue) Len() int {
	return q.nodes.Len()
}

// Kind implements Queue.
func (q *PriorityQueue) Kind() Kind {
	return KindPriority
}

func (q *PriorityQueue) String() string {
	return render.Sequence(KindPriority.Label(), render.ArrowSep, q.Values())
}
