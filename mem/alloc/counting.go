package alloc

import (
	"sync/atomic"

	"github.com/joshuapare/memkit/mem"
)

// Stats is a point-in-time snapshot of allocator traffic.
type Stats struct {
	Allocs            int64 // calls that produced a live block
	Frees             int64 // calls that consumed a live block
	Failed            int64 // calls that came back empty
	OutstandingBytes  int64
	OutstandingBlocks int64
}

// CountingAllocator is a pass-through wrapper that tracks traffic through
// the allocator beneath it. Counters are atomic, so the wrapper is safe
// to read concurrently even though the wrapped allocator may not be.
type CountingAllocator struct {
	inner  mem.Allocator
	allocs atomic.Int64
	frees  atomic.Int64
	failed atomic.Int64
	bytes  atomic.Int64
	blocks atomic.Int64
}

// NewCounting wraps inner with traffic counters.
func NewCounting(inner mem.Allocator) *CountingAllocator {
	if inner == nil {
		panic("alloc: CountingAllocator requires an inner allocator")
	}
	return &CountingAllocator{inner: inner}
}

func (c *CountingAllocator) Allocate(size int) mem.Block {
	b := c.inner.Allocate(size)
	if b.IsZero() {
		c.failed.Add(1)
		return b
	}
	c.allocs.Add(1)
	c.bytes.Add(int64(b.Size()))
	c.blocks.Add(1)
	return b
}

func (c *CountingAllocator) Deallocate(b mem.Block) {
	if b.IsZero() {
		return
	}
	c.inner.Deallocate(b)
	c.frees.Add(1)
	c.bytes.Add(-int64(b.Size()))
	c.blocks.Add(-1)
}

// Owns passes through when the wrapped allocator is an Owner.
func (c *CountingAllocator) Owns(b mem.Block) bool {
	if o, ok := c.inner.(mem.Owner); ok {
		return o.Owns(b)
	}
	return false
}

// Stats returns a snapshot of the counters.
func (c *CountingAllocator) Stats() Stats {
	return Stats{
		Allocs:            c.allocs.Load(),
		Frees:             c.frees.Load(),
		Failed:            c.failed.Load(),
		OutstandingBytes:  c.bytes.Load(),
		OutstandingBlocks: c.blocks.Load(),
	}
}

var _ mem.OwningAllocator = (*CountingAllocator)(nil)
