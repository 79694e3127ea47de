package list

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hanfei1991/queuelab/pkg/arena"
	"github.com/hanfei1991/queuelab/pkg/errors"
)

func newList(style Style, values ...int32) *List {
	l := New(style)
	for _, v := range values {
		l.Append(v)
	}
	return l
}

func checkBackwardLinks(t *testing.T, l *List) {
	if l.style != Doubly {
		return
	}
	var backward []int32
	for cur := l.tail; cur != arena.Nil; cur = l.nodes.Get(cur).Prev {
		backward = append(backward, l.nodes.Get(cur).Value)
	}
	forward := l.Values()
	require.Len(t, backward, len(forward))
	for i := range forward {
		require.Equal(t, forward[i], backward[len(backward)-1-i])
	}
	if l.head != arena.Nil {
		require.Equal(t, arena.Nil, l.nodes.Get(l.head).Prev)
		require.Equal(t, arena.Nil, l.nodes.Get(l.tail).Next)
	}
}

func TestListReadUpdate(t *testing.T) {
	t.Parallel()

	for _, style := range []Style{Singly, Doubly} {
		l := newList(style, 10, 20, 30)
		require.Equal(t, 3, l.Len())

		v, err := l.Read(2)
		require.NoError(t, err)
		require.Equal(t, int32(20), v)

		require.NoError(t, l.Update(3, 33))
		require.Equal(t, []int32{10, 20, 33}, l.Values())

		for _, pos := range []int{0, -1, 4} {
			_, err = l.Read(pos)
			require.True(t, errors.ErrPositionOutOfRange.Equal(err))
			require.True(t, errors.ErrPositionOutOfRange.Equal(l.Update(pos, 1)))
		}
		_, err = l.Read(4)
		require.Regexp(t, ".*node not found at position 4", err.Error())
	}
}

func TestListDelete(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		pos      int
		deleted  int32
		expected []int32
	}{
		{1, 1, []int32{2, 3, 4}},
		{2, 2, []int32{1, 3, 4}},
		{4, 4, []int32{1, 2, 3}},
	}
	for _, style := range []Style{Singly, Doubly} {
		for _, tc := range testCases {
			l := newList(style, 1, 2, 3, 4)
			v, err := l.Delete(tc.pos)
			require.NoError(t, err)
			require.Equal(t, tc.deleted, v)
			require.Equal(t, tc.expected, l.Values())
			checkBackwardLinks(t, l)

			// appending after a delete must extend the right tail
			l.Append(5)
			require.Equal(t, append(tc.expected, 5), l.Values())
			checkBackwardLinks(t, l)
		}

		l := newList(style, 1)
		_, err := l.Delete(1)
		require.NoError(t, err)
		require.Equal(t, 0, l.Len())
		_, err = l.Delete(1)
		require.True(t, errors.ErrPositionOutOfRange.Equal(err))
		l.Append(7)
		require.Equal(t, []int32{7}, l.Values())
	}
}

func TestListString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Linked List: null", New(Singly).String())
	require.Equal(t, "Linked List: 1 -> 2 -> null", newList(Singly, 1, 2).String())
	require.Equal(t, "Doubly Linked List: 1 <-> 2 <-> null", newList(Doubly, 1, 2).String())
}
