package list

import (
	"github.com/hanfei1991/queuelab/pkg/arena"
	"github.com/hanfei1991/queuelab/pkg/errors"
	"github.com/hanfei1991/queuelab/pkg/render"
)

// Style selects how a List links its nodes.
type Style int

// List styles
const (
	Singly Style = iota
	Doubly
)

// Label returns the display label of the style.
func (s Style) Label() string {
	if s == Doubly {
		return "Doubly Linked List"
	}
	return "Linked List"
}

func (s Style) separator() string {
	if s == Doubly {
		return render.DoubleArrowSep
	}
	return render.ArrowSep
}

// List is a linked list of int32 addressed by 1-based positions.
// A Singly list keeps only forward links, a Doubly list keeps
// mutual forward and backward links.
type List struct {
	style Style
	nodes *arena.Arena
	head  arena.Index
	tail  arena.Index
}

// New creates an empty list of the given style.
func New(style Style) *List {
	return &List{
		style: style,
		nodes: arena.New(),
		head:  arena.Nil,
		tail:  arena.Nil,
	}
}

// Style returns the link style of the list.
func (l *List) Style() Style {
	return l.style
}

// Append adds v at the end.
func (l *List) Append(v int32) {
	idx := l.nodes.Alloc(v)
	if l.tail == arena.Nil {
		l.head, l.tail = idx, idx
		return
	}
	if l.style == Doubly {
		l.nodes.Get(idx).Prev = l.tail
	}
	l.nodes.Get(l.tail).Next = idx
	l.tail = idx
}

// locate returns the node at pos and its predecessor.
func (l *List) locate(pos int) (cur, prev arena.Index, err error) {
	if pos < 1 || pos > l.nodes.Len() {
		return arena.Nil, arena.Nil, errors.ErrPositionOutOfRange.GenWithStackByArgs(pos)
	}
	prev, cur = arena.Nil, l.head
	for i := 1; i < pos; i++ {
		prev, cur = cur, l.nodes.Get(cur).Next
	}
	return cur, prev, nil
}

// Read returns the value at pos.
func (l *List) Read(pos int) (int32, error) {
	cur, _, err := l.locate(pos)
	if err != nil {
		return 0, err
	}
	return l.nodes.Get(cur).Value, nil
}

// Update replaces the value at pos.
func (l *List) Update(pos int, v int32) error {
	cur, _, err := l.locate(pos)
	if err != nil {
		return err
	}
	l.nodes.Get(cur).Value = v
	return nil
}

// Delete unlinks the node at pos and returns its value.
func (l *List) Delete(pos int) (int32, error) {
	cur, prev, err := l.locate(pos)
	if err != nil {
		return 0, err
	}
	n := l.nodes.Get(cur)
	v := n.Value
	if l.style == Doubly {
		// the backward link is authoritative for a doubly linked list
		prev = n.Prev
	}

	if prev != arena.Nil {
		l.nodes.Get(prev).Next = n.Next
	} else {
		l.head = n.Next
	}
	if n.Next != arena.Nil {
		if l.style == Doubly {
			l.nodes.Get(n.Next).Prev = prev
		}
	} else {
		l.tail = prev
	}
	l.nodes.Free(cur)
	return v, nil
}

// Values returns the contents from head to tail.
func (l *List) Values() []int32 {
	values := make([]int32, 0, l.nodes.Len())
	for cur := l.head; cur != arena.Nil; cur = l.nodes.Get(cur).Next {
		values = append(values, l.nodes.Get(cur).Value)
	}
	return values
}

// Len returns the number of nodes.
func (l *List) Len() int {
	return l.nodes.Len()
}

func (l *List) String() string {
	return render.Sequence(l.style.Label(), l.style.separator(), l.Values())
}
