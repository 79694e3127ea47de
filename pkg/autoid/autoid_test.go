package autoid

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestUUIDAllocator(t *testing.T) {
	t.Parallel()

	a := NewUUIDAllocator()
	id1, id2 := a.AllocID(), a.AllocID()
	require.NotEqual(t, id1, id2)
	_, err := uuid.Parse(id1)
	require.NoError(t, err)
}

func TestSequenceAllocator(t *testing.T) {
	t.Parallel()

	var a Allocator = NewSequenceAllocator("session")
	require.Equal(t, "session-1", a.AllocID())
	require.Equal(t, "session-2", a.AllocID())
}
