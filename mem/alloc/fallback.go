package alloc

import "github.com/joshuapare/memkit/mem"

// FallbackAllocator tries a primary allocator first and falls back to a
// secondary one when the primary comes back empty. The primary must be an
// owning allocator: its Owns answer is the only way a free can be routed
// back to the branch that produced the block.
//
// Not goroutine-safe.
type FallbackAllocator struct {
	primary  mem.OwningAllocator
	fallback mem.Allocator
}

// NewFallback composes primary and fallback.
func NewFallback(primary mem.OwningAllocator, fallback mem.Allocator) *FallbackAllocator {
	if primary == nil || fallback == nil {
		panic("alloc: FallbackAllocator requires both children")
	}
	return &FallbackAllocator{primary: primary, fallback: fallback}
}

// Allocate tries the primary, then the fallback.
func (f *FallbackAllocator) Allocate(size int) mem.Block {
	if b := f.primary.Allocate(size); !b.IsZero() {
		return b
	}
	return f.fallback.Allocate(size)
}

// Deallocate routes to whichever child produced the block, decided by the
// primary's ownership test.
func (f *FallbackAllocator) Deallocate(b mem.Block) {
	if b.IsZero() {
		return
	}
	if f.primary.Owns(b) {
		f.primary.Deallocate(b)
		return
	}
	f.fallback.Deallocate(b)
}

// Owns reports whether either child produced the block. The fallback side
// can only be consulted when it is itself an Owner; a non-owning fallback
// makes this composite's Owns meaningful for the primary's blocks only.
func (f *FallbackAllocator) Owns(b mem.Block) bool {
	if f.primary.Owns(b) {
		return true
	}
	if o, ok := f.fallback.(mem.Owner); ok {
		return o.Owns(b)
	}
	return false
}

var _ mem.OwningAllocator = (*FallbackAllocator)(nil)
