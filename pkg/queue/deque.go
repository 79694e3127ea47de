package queue

import (
	"github.com/hanfei1991/queuelab/pkg/arena"
	"github.com/hanfei1991/queuelab/pkg/errors"
	"github.com/hanfei1991/queuelab/pkg/render"
)

// Deque is a doubly linked double-ended queue. As a Queue it adds at
// the rear and removes from the front.
type Deque struct {
	nodes *arena.Arena
	head  arena.Index
	tail  arena.Index
}

// NewDeque creates an empty Deque.
func NewDeque() *Deque {
	return &Deque{
		nodes: arena.New(),
		head:  arena.Nil,
		tail:  arena.Nil,
	}
}

// Enqueue is AddRear.
func (d *Deque) Enqueue(v int32) error {
	d.AddRear(v)
	return nil
}

// Dequeue is RemoveFront.
func (d *Deque) Dequeue() (int32, error) {
	return d.RemoveFront()
}

// AddFront inserts v before the head.
func (d *Deque) AddFront(v int32) {
	idx := d.nodes.Alloc(v)
	if d.head == arena.Nil {
		d.head, d.tail = idx, idx
		return
	}
	d.nodes.Get(idx).Next = d.head
	d.nodes.Get(d.head).Prev = idx
	d.head = idx
}

// AddRear inserts v after the tail.
func (d *Deque) AddRear(v int32) {
	idx := d.nodes.Alloc(v)
	if d.tail == arena.Nil {
		d.head, d.tail = idx, idx
		return
	}
	d.nodes.Get(idx).Prev = d.tail
	d.nodes.Get(d.tail).Next = idx
	d.tail = idx
}

// RemoveFront detaches and returns the head.
func (d *Deque) RemoveFront() (int32, error) {
	if d.head == arena.Nil {
		return 0, errors.ErrEmptyDeque.GenWithStackByArgs()
	}
	idx := d.head
	n := d.nodes.Get(idx)
	v := n.Value
	d.head = n.Next
	if d.head != arena.Nil {
		d.nodes.Get(d.head).Prev = arena.Nil
	} else {
		d.tail = arena.Nil
	}
	d.nodes.Free(idx)
	return v, nil
}

// RemoveRear detaches and returns the tail.
func (d *Deque) RemoveRear() (int32, error) {
	if d.tail == arena.Nil {
		return 0, errors.ErrEmptyDeque.GenWithStackByArgs()
	}
	idx := d.tail
	n := d.nodes.Get(idx)
	v := n.Value
	d.tail = n.Prev
	if d.tail != arena.Nil {
		d.nodes.Get(d.tail).Next = arena.Nil
	} else {
		d.head = arena.Nil
	}
	d.nodes.Free(idx)
	return v, nil
}

// Peek returns the head.
func (d *Deque) Peek() (int32, error) {
	if d.head == arena.Nil {
		return 0, errors.ErrEmptyDeque.GenWithStackByArgs()
	}
	return d.nodes.Get(d.head).Value, nil
}

// PeekRear returns the tail.
func (d *Deque) PeekRear() (int32, error) {
	if d.tail == arena.Nil {
		return 0, errors.ErrEmptyDeque.GenWithStackByArgs()
	}
	return d.nodes.Get(d.tail).Value, nil
}

// Values implements Queue.
func (d *Deque) Values() []int32 {
	return forward(d.nodes, d.head)
}

// Len implements Queue.
func (d *Deque) Len() int {
	return d.nodes.Len()
}

// Kind implements Queue.
func (d *Deque) Kind() Kind {
	return KindDeque
}

func (d *Deque) String() string {
	return render.Sequence(KindDeque.Label(), render.ArrowSep, d.Values())
}
