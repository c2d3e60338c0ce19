package mem

// MaxAlign is the alignment every strategy guarantees for the blocks it
// hands out. 16 covers the largest scalar alignment on the supported
// targets.
const MaxAlign = 16

// Allocator is the uniform contract implemented by every allocation
// strategy. Allocate returns an empty Block on failure; it never returns
// an error. Deallocate consumes a block previously produced by the same
// allocator and not yet freed; freeing a block twice, or routing it to an
// allocator that did not produce it, is a caller bug.
//
// Implementations are not goroutine-safe unless documented otherwise;
// wrap with alloc.NewLocked for concurrent use.
type Allocator interface {
	Allocate(size int) Block
	Deallocate(b Block)
}

// Owner is implemented by allocators that can tell whether a given block
// came from them. Ownership testing is what lets a composite route a
// Deallocate call to the child that actually produced the block, since
// blocks carry no allocator tag of their own.
type Owner interface {
	Owns(b Block) bool
}

// OwningAllocator combines the two capabilities. Only owning allocators
// can serve as the primary half of a fallback pair.
type OwningAllocator interface {
	Allocator
	Owner
}

// AlignUp rounds n up to the next multiple of align, which must be a
// power of two. Returns a value smaller than n only on overflow; callers
// allocating near the top of the int range must check for that.
func AlignUp(n, align int) int {
	return (n + align - 1) &^ (align - 1)
}
