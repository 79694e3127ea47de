package queue

import (
	"github.com/hanfei1991/queuelab/pkg/errors"
	"github.com/hanfei1991/queuelab/pkg/render"
)

// CircularQueue is a fixed capacity ring buffer. Its logical order is
// front, front+1, ... modulo capacity, valid for count slots.
type CircularQueue struct {
	buf   []int32
	front int
	rear  int
	count int
}

// MaxCircularCapacity bounds the slots a CircularQueue preallocates.
const MaxCircularCapacity = 1 << 20

// ValidateCapacity checks that capacity fits a CircularQueue.
func ValidateCapacity(capacity int) error {
	if capacity <= 0 || capacity > MaxCircularCapacity {
		return errors.ErrInvalidCapacity.GenWithStackByArgs(capacity, MaxCircularCapacity)
	}
	return nil
}

// NewCircularQueue creates an empty CircularQueue holding at most
// capacity elements.
func NewCircularQueue(capacity int) (*CircularQueue, error) {
	if err := ValidateCapacity(capacity); err != nil {
		return nil, err
	}
	return &CircularQueue{
		buf:  make([]int32, capacity),
		rear: capacity - 1,
	}, nil
}

// Enqueue stores v after the rear slot.
func (q *CircularQueue) Enqueue(v int32) error {
	if q.IsFull() {
		return errors.ErrQueueFull.GenWithStackByArgs(len(q.buf))
	}
	q.rear = (q.rear + 1) % len(q.buf)
	q.buf[q.rear] = v
	q.count++
	return nil
}

// Dequeue removes and returns the front slot.
func (q *CircularQueue) Dequeue() (int32, error) {
	if q.IsEmpty() {
		return 0, errors.ErrQueueEmpty.GenWithStackByArgs()
	}
	v := q.buf[q.front]
	q.front = (q.front + 1) % len(q.buf)
	q.count--
	return v, nil
}

// Peek returns the front slot.
func (q *CircularQueue) Peek() (int32, error) {
	if q.IsEmpty() {
		return 0, errors.ErrQueueEmpty.GenWithStackByArgs()
	}
	return q.buf[q.front], nil
}

// Values implements Queue.
func (q *CircularQueue) Values() []int32 {
	values := make([]int32, 0, q.count)
	for i := 0; i < q.count; i++ {
		values = append(values, q.buf[(q.front+i)%len(q.buf)])
	}
	return values
}

// Len implements Queue.
func (q *CircularQueue) Len() int {
	return q.count
}

// Cap returns the fixed capacity.
func (q *CircularQueue) Cap() int {
	return len(q.buf)
}

// IsFull reports whether the next Enqueue would fail.
func (q *CircularQueue) IsFull() bool {
	return q.count == len(q.buf)
}

// IsEmpty reports whether the queue holds no element.
func (q *CircularQueue) IsEmpty() bool {
	return q.count == 0
}

// Kind implements Queue.
func (q *CircularQueue) Kind() Kind {
	return KindCircular
}

func (q *CircularQueue) String() string {
	return render.Sequence(KindCircular.Label(), render.ArrowSep, q.Values())
}
