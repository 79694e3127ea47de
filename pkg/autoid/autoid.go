package autoid

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Allocator hands out session identifiers.
type Allocator interface {
	AllocID() string
}

// UUIDAllocator allocates random UUIDs.
type UUIDAllocator struct{}

// NewUUIDAllocator creates a UUIDAllocator.
func NewUUIDAllocator() *UUIDAllocator {
	return new(UUIDAllocator)
}

// AllocID implements Allocator.
func (a *UUIDAllocator) AllocID() string {
	return uuid.New().String()
}

// SequenceAllocator allocates "<prefix>-1", "<prefix>-2", ...
// It is deterministic and mostly useful in tests and scripted runs.
type SequenceAllocator struct {
	sync.Mutex
	prefix string
	next   int64
}

// NewSequenceAllocator creates a SequenceAllocator.
func NewSequenceAllocator(prefix string) *SequenceAllocator {
	return &SequenceAllocator{prefix: prefix}
}

// AllocID implements Allocator.
func (a *SequenceAllocator) AllocID() string {
	a.Lock()
	defer a.Unlock()
	a.next++
	return fmt.Sprintf("%s-%d", a.prefix, a.next)
}
