package alloc

import (
	"sync"

	"github.com/joshuapare/memkit/mem"
)

// LockedAllocator serializes every operation of the wrapped allocator
// behind a single mutex. It is the only concurrency boundary in the
// package: everything beneath the lock may assume single-threaded access.
type LockedAllocator struct {
	mu    sync.Mutex
	inner mem.Allocator
}

// NewLocked wraps inner in a mutex.
func NewLocked(inner mem.Allocator) *LockedAllocator {
	if inner == nil {
		panic("alloc: LockedAllocator requires an inner allocator")
	}
	return &LockedAllocator{inner: inner}
}

func (l *LockedAllocator) Allocate(size int) mem.Block {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.Allocate(size)
}

func (l *LockedAllocator) Deallocate(b mem.Block) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.inner.Deallocate(b)
}

// Owns holds the lock while consulting the wrapped allocator. Always
// false when the wrapped allocator is not an Owner.
func (l *LockedAllocator) Owns(b mem.Block) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if o, ok := l.inner.(mem.Owner); ok {
		return o.Owns(b)
	}
	return false
}

var _ mem.OwningAllocator = (*LockedAllocator)(nil)
