package queue

import (
	"github.com/hanfei1991/queuelab/pkg/arena"
	"github.com/hanfei1991/queuelab/pkg/errors"
	"github.com/hanfei1991/queuelab/pkg/render"
)

// SimpleQueue is a singly linked FIFO queue.
type SimpleQueue struct {
	nodes *arena.Arena
	head  arena.Index
	tail  arena.Index
}

// NewSimpleQueue creates an empty SimpleQueue.
func NewSimpleQueue() *SimpleQueue {
	return &SimpleQueue{
		nodes: arena.New(),
		head:  arena.Nil,
		tail:  arena.Nil,
	}
}

// Enqueue appends v at the tail.
func (q *SimpleQueue) Enqueue(v int32) error {
	idx := q.nodes.Alloc(v)
	if q.tail == arena.Nil {
		q.head, q.tail = idx, idx
		return nil
	}
	q.nodes.Get(q.tail).Next = idx
	q.tail = idx
	return nil
}

// Dequeue removes and returns the head.
func (q *SimpleQueue) Dequeue() (int32, error) {
	if q.head == arena.Nil {
		return 0, errors.ErrEmptyQueue.GenWithStackByArgs(KindSimple.Label())
	}
	idx := q.head
	n := q.nodes.Get(idx)
	v := n.Value
	q.head = n.Next
	if q.head == arena.Nil {
		q.tail = arena.Nil
	}
	q.nodes.Free(idx)
	return v, nil
}

// Peek returns the head.
func (q *SimpleQueue) Peek() (int32, error) {
	if q.head == arena.Nil {
		return 0, errors.ErrEmptyQueue.GenWithStackByArgs(KindSimple.Label())
	}
	return q.nodes.Get(q.head).Value, nil
}

// Values implements Queue.
func (q *SimpleQueue) Values() []int32 {
	return forward(q.nodes, q.head)
}

// Len implements Queue.
func (q *SimpleQueue) Len() int {
	return q.nodes.Len()
}

// Kind implements Queue.
func (q *SimpleQueue) Kind() Kind {
	return KindSimple
}

func (q *SimpleQueue) String() string {
	return render.Sequence(KindSimple.Label(), render.ArrowSep, q.Values())
}

// forward collects values by following Next links from head.
func forward(nodes *arena.Arena, head arena.Index) []int32 {
	values := make([]int32, 0, nodes.Len())
	for cur := head; cur != arena.Nil; cur = nodes.Get(cur).Next {
		values = append(values, nodes.Get(cur).Value)
	}
	return values
}
