package queue

import (
	"strings"

	"github.com/hanfei1991/queuelab/pkg/errors"
)

//go:generate mockgen -destination mock/queue_mock.go -package mock github.com/hanfei1991/queuelab/pkg/queue Queue

// Queue is the capability set shared by every queue variant.
// Implementations are not safe for concurrent use, the caller
// must serialize access.
type Queue interface {
	// Enqueue inserts v according to the variant's ordering rule.
	Enqueue(v int32) error
	// Dequeue removes and returns the front element.
	Dequeue() (int32, error)
	// Peek returns the front element without removing it.
	Peek() (int32, error)
	// Values returns the current contents, front first. It never mutates
	// the queue.
	Values() []int32
	Len() int
	Kind() Kind
	// String renders the contents for display.
	String() string
}

// Kind names a queue variant.
type Kind string

// Queue kinds, in display order.
const (
	KindSimple   Kind = "queue"
	KindPriority Kind = "priority"
	KindCircular Kind = "circular"
	KindDeque    Kind = "deque"
	KindStacks   Kind = "stacks"
)

// DefaultCircularCapacity is the capacity callers use when they do not
// choose one.
const DefaultCircularCapacity = 5

var kindLabels = map[Kind]string{
	KindSimple:   "Queue",
	KindPriority: "Priority Queue",
	KindCircular: "Circular Queue",
	KindDeque:    "Deque",
	KindStacks:   "Queue Using Stacks",
}

// Kinds returns every queue kind in display order.
func Kinds() []Kind {
	return []Kind{KindSimple, KindPriority, KindCircular, KindDeque, KindStacks}
}

// Label returns the display label of the kind.
func (k Kind) Label() string {
	if l, ok := kindLabels[k]; ok {
		return l
	}
	return string(k)
}

// ParseKind accepts a short name ("priority") or a display label
// ("Priority Queue"), case-insensitively.
func ParseKind(name string) (Kind, error) {
	name = strings.TrimSpace(name)
	for _, k := range Kinds() {
		if strings.EqualFold(name, string(k)) || strings.EqualFold(name, k.Label()) {
			return k, nil
		}
	}
	switch strings.ToLower(name) {
	case "simple", "fifo":
		return KindSimple, nil
	case "circ", "ring":
		return KindCircular, nil
	case "two-stacks", "stack":
		return KindStacks, nil
	}
	return "", errors.ErrUnknownKind.GenWithStackByArgs(name)
}

// New creates an empty queue of the given kind. capacity is only used by
// KindCircular.
func New(kind Kind, capacity int) (Queue, error) {
	switch kind {
	case KindSimple:
		return NewSimpleQueue(), nil
	case KindPriority:
		return NewPriorityQueue(), nil
	case KindCircular:
		q, err := NewCircularQueue(capacity)
		if err != nil {
			return nil, err
		}
		return q, nil
	case KindDeque:
		return NewDeque(), nil
	case KindStacks:
		return NewStackQueue(), nil
	default:
		return nil, errors.ErrUnknownKind.GenWithStackByArgs(string(kind))
	}
}
