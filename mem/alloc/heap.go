package alloc

import (
	"log"

	"github.com/joshuapare/memkit/internal/sysmem"
	"github.com/joshuapare/memkit/mem"
)

// HeapAllocator hands out page-backed memory obtained directly from the
// operating system. Every block is its own mapping, so blocks may be
// released in any order.
//
// HeapAllocator cannot attribute blocks to itself and therefore has no
// Owns; in compositions it is only ever useful as the innermost fallback
// target, where ownership testing is never consulted.
type HeapAllocator struct{}

// Allocate returns a block of exactly size bytes, zero-filled, or the
// empty block if the OS refuses the mapping.
func (HeapAllocator) Allocate(size int) mem.Block {
	if size <= 0 {
		return mem.Block{}
	}
	p, err := sysmem.Alloc(size)
	if err != nil {
		if logAlloc {
			log.Printf("alloc: heap allocation of %d bytes failed: %v", size, err)
		}
		return mem.Block{}
	}
	return mem.NewBlock(p, size)
}

// Deallocate releases a block previously returned by Allocate. Blocks
// from any other source are undefined behavior; the OS may reject the
// unmap, which is reported only under MEMKIT_DEBUG.
func (HeapAllocator) Deallocate(b mem.Block) {
	if b.IsZero() {
		return
	}
	if err := sysmem.Free(b.Ptr(), b.Size()); err != nil && debugChecks {
		panic("alloc: " + err.Error())
	}
}

var _ mem.Allocator = HeapAllocator{}
