package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/memkit/mem"
)

func TestFreeListRecyclesExactAddress(t *testing.T) {
	fl := NewFreeList(HeapAllocator{}, 16, 32)
	defer fl.Release()

	b := fl.Allocate(20)
	require.False(t, b.IsZero())
	first := b.Ptr()

	fl.Deallocate(b)
	assert.Equal(t, 1, fl.Pooled(), "in-range free should land in the pool")

	b2 := fl.Allocate(20)
	require.False(t, b2.IsZero())
	assert.Equal(t, first, b2.Ptr(), "pool must hand back the recycled block")
	assert.Zero(t, fl.Pooled())

	fl.Deallocate(b2)
}

func TestFreeListOutOfRangeBypassesPool(t *testing.T) {
	parent := newRecorder(HeapAllocator{})
	fl := NewFreeList(parent, 16, 32)

	b := fl.Allocate(40)
	require.False(t, b.IsZero())
	assert.Equal(t, []int{40}, parent.allocs, "oversized request should go to the parent")

	fl.Deallocate(b)
	assert.Len(t, parent.frees, 1, "oversized free should go to the parent")
	assert.Zero(t, fl.Pooled())
}

func TestFreeListTooSmallToCarryLink(t *testing.T) {
	parent := newRecorder(HeapAllocator{})
	fl := NewFreeList(parent, 0, 32)

	// A block smaller than a pointer cannot hold the intrusive link and
	// must round-trip through the parent on both sides.
	b := fl.Allocate(4)
	require.False(t, b.IsZero())
	assert.Equal(t, []int{4}, parent.allocs)

	fl.Deallocate(b)
	assert.Len(t, parent.frees, 1)
	assert.Zero(t, fl.Pooled())
}

func TestFreeListPoolServesWithinSizeClass(t *testing.T) {
	fl := NewFreeList(HeapAllocator{}, 16, 32)
	defer fl.Release()

	b := fl.Allocate(32)
	fl.Deallocate(b)

	// Any in-range request may be served from the pool; nodes are
	// interchangeable within the class.
	b2 := fl.Allocate(24)
	require.False(t, b2.IsZero())
	assert.Equal(t, b.Ptr(), b2.Ptr())
	assert.Equal(t, 24, b2.Size(), "the block reports the requested size, not the node's history")

	fl.Deallocate(b2)
}

func TestFreeListRelease(t *testing.T) {
	parent := newRecorder(HeapAllocator{})
	fl := NewFreeList(parent, 16, 32)

	// Pool three blocks allocated at the class maximum so Release hands
	// truthful sizes back to the parent.
	blocks := make([]mem.Block, 3)
	for i := range blocks {
		blocks[i] = fl.Allocate(32)
		require.False(t, blocks[i].IsZero())
	}
	for _, b := range blocks {
		fl.Deallocate(b)
	}
	require.Equal(t, 3, fl.Pooled())

	freesBefore := len(parent.frees)
	fl.Release()

	assert.Zero(t, fl.Pooled())
	require.Len(t, parent.frees, freesBefore+3, "every pooled node should return to the parent")
	for _, b := range parent.frees[freesBefore:] {
		assert.Equal(t, 32, b.Size(), "released nodes are assumed to be the class maximum")
	}
}

func TestFreeListOwnsDelegatesToParent(t *testing.T) {
	stack := NewStack(256)
	fl := NewFreeList(stack, 16, 64)

	b := fl.Allocate(32)
	require.False(t, b.IsZero())
	assert.True(t, fl.Owns(b), "owning parent answers for the list")

	// A heap parent cannot attribute blocks, so neither can the list.
	heap := NewFreeList(HeapAllocator{}, 16, 64)
	hb := heap.Allocate(64)
	require.False(t, hb.IsZero())
	assert.False(t, heap.Owns(hb))
	heap.Deallocate(hb)
	heap.Release()
}

func TestFreeListBoundsValidation(t *testing.T) {
	assert.Panics(t, func() { NewFreeList(nil, 0, 16) })
	assert.Panics(t, func() { NewFreeList(HeapAllocator{}, -1, 16) })
	assert.Panics(t, func() { NewFreeList(HeapAllocator{}, 32, 16) })
}
