package alloc

import (
	"unsafe"

	"github.com/joshuapare/memkit/mem"
)

// freeNode is the intrusive link written into the first word of a pooled
// block. It exists only while the block sits in the pool; reuse or
// Release turns the word back into plain storage.
type freeNode struct {
	next *freeNode
}

// nodeWord is the smallest block that can carry an intrusive link.
var nodeWord = int(unsafe.Sizeof(uintptr(0)))

// FreeList recycles freed blocks whose size falls within an inclusive
// [min, max] range, threading an intrusive singly-linked list through the
// freed memory itself. Requests and frees outside the range pass straight
// through to the parent allocator.
//
// Pooled blocks are treated as interchangeable within the size class:
// a pooled node may be handed back for any in-range request regardless of
// the size it was originally allocated with. Release consequently assumes
// every pooled node's true size is max; the composing policy must only
// feed a bucket allocations of its own size class for that teardown to
// return memory cleanly (see Release).
//
// Not goroutine-safe.
type FreeList struct {
	parent   mem.Allocator
	min, max int
	head     *freeNode
	pooled   int
}

// NewFreeList creates a free list over parent recycling sizes in
// [min, max].
func NewFreeList(parent mem.Allocator, min, max int) *FreeList {
	if parent == nil {
		panic("alloc: FreeList requires a parent allocator")
	}
	if min < 0 || max < min {
		panic("alloc: FreeList bounds must satisfy 0 <= min <= max")
	}
	return &FreeList{parent: parent, min: min, max: max}
}

// inRange decides pool eligibility. Blocks too small to hold the link
// word are never pooled, so the predicate stays symmetric between
// Allocate and Deallocate and such blocks always round-trip through the
// parent.
func (f *FreeList) inRange(n int) bool {
	return n >= f.min && n <= f.max && n >= nodeWord
}

// Allocate pops the pool head for in-range requests when the pool is
// non-empty, otherwise delegates to the parent.
func (f *FreeList) Allocate(size int) mem.Block {
	if f.head != nil && f.inRange(size) {
		node := f.head
		f.head = node.next
		node.next = nil
		f.pooled--
		return mem.NewBlock(unsafe.Pointer(node), size)
	}
	return f.parent.Allocate(size)
}

// Deallocate pushes in-range blocks onto the pool, overwriting their
// first word with the link; everything else is forwarded to the parent.
func (f *FreeList) Deallocate(b mem.Block) {
	if b.IsZero() {
		return
	}
	if f.inRange(b.Size()) {
		node := (*freeNode)(b.Ptr())
		node.next = f.head
		f.head = node
		f.pooled++
		return
	}
	f.parent.Deallocate(b)
}

// Pooled returns the number of blocks currently held in the pool.
func (f *FreeList) Pooled() int { return f.pooled }

// Owns delegates to the parent when the parent can answer. Every block
// this list ever served was originally carved by the parent, so the
// parent's verdict is authoritative. Always false for non-Owner parents.
func (f *FreeList) Owns(b mem.Block) bool {
	if o, ok := f.parent.(mem.Owner); ok {
		return o.Owns(b)
	}
	return false
}

// Release drains the pool, returning every node to the parent with max as
// its assumed size. If the composed policy ever pooled a node that was
// allocated with a different size, the parent may fail to release that
// mapping; teardown is best-effort.
func (f *FreeList) Release() {
	for f.head != nil {
		node := f.head
		f.head = node.next
		node.next = nil
		f.parent.Deallocate(mem.NewBlock(unsafe.Pointer(node), f.max))
	}
	f.pooled = 0
}

var _ mem.OwningAllocator = (*FreeList)(nil)
