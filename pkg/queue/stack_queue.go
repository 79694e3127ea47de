package queue

import (
	"github.com/hanfei1991/queuelab/pkg/errors"
	"github.com/hanfei1991/queuelab/pkg/render"
)

// StackQueue emulates a FIFO queue with two stacks. New elements are
// pushed on the inbox; the outbox is refilled from the inbox only when it
// is empty and the front is requested.
type StackQueue struct {
	inbox  *intStack
	outbox *intStack
}

// NewStackQueue creates an empty StackQueue.
func NewStackQueue() *StackQueue {
	return &StackQueue{
		inbox:  newIntStack(),
		outbox: newIntStack(),
	}
}

// Enqueue pushes v on the inbox.
func (q *StackQueue) Enqueue(v int32) error {
	q.inbox.push(v)
	return nil
}

// transfer moves every inbox element to an empty outbox, so the oldest
// element ends up on top.
func (q *StackQueue) transfer() {
	if !q.outbox.empty() {
		return
	}
	for !q.inbox.empty() {
		q.outbox.push(q.inbox.pop())
	}
}

// Dequeue pops the oldest element.
func (q *StackQueue) Dequeue() (int32, error) {
	q.transfer()
	if q.outbox.empty() {
		return 0, errors.ErrEmptyQueue.GenWithStackByArgs(KindSimple.Label())
	}
	return q.outbox.pop(), nil
}

// Peek returns the oldest element. It may move elements between the
// stacks but never changes the observable order.
func (q *StackQueue) Peek() (int32, error) {
	q.transfer()
	if q.outbox.empty() {
		return 0, errors.ErrEmptyQueue.GenWithStackByArgs(KindSimple.Label())
	}
	return q.outbox.top(), nil
}

// Values returns the outbox top to bottom followed by the inbox bottom
// to top.
func (q *StackQueue) Values() []int32 {
	out := q.outbox.bottomUp()
	values := make([]int32, 0, len(out)+q.inbox.len())
	for i := len(out) - 1; i >= 0; i-- {
		values = append(values, out[i])
	}
	return append(values, q.inbox.bottomUp()...)
}

// Len implements Queue.
func (q *StackQueue) Len() int {
	return q.inbox.len() + q.outbox.len()
}

// Kind implements Queue.
func (q *StackQueue) Kind() Kind {
	return KindStacks
}

func (q *StackQueue) String() string {
	return render.Sequence(KindStacks.Label(), render.ArrowSep, q.Values())
}
