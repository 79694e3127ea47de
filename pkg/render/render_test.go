package render

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSequence(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		label    string
		sep      string
		values   []int32
		expected string
	}{
		{"Queue", ArrowSep, nil, "Queue: null"},
		{"Queue", ArrowSep, []int32{1, 2, 3}, "Queue: 1 -> 2 -> 3 -> null"},
		{"Doubly Linked List", DoubleArrowSep, []int32{-4, 7}, "Doubly Linked List: -4 <-> 7 <-> null"},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.expected, Sequence(tc.label, tc.sep, tc.values))
	}
}
