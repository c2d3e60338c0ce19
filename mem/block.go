package mem

import "unsafe"

// Block describes an untyped allocation: a raw address paired with a size
// in bytes. A Block with a nil pointer is "empty" and represents a failed
// or absent allocation. Some strategies report failure with the requested
// size still attached (pointer nil, size non-zero) so that size-aware
// composites can reason about the miss; a block that actually escaped to a
// caller always carries a non-nil pointer and its true size.
type Block struct {
	ptr  unsafe.Pointer
	size int
}

// NewBlock builds a Block from a raw address and size. No validation is
// performed; a nil pointer with a non-zero size is the failed-allocation
// convention described above.
func NewBlock(ptr unsafe.Pointer, size int) Block {
	return Block{ptr: ptr, size: size}
}

// IsZero reports whether the block is empty (nil pointer).
func (b Block) IsZero() bool { return b.ptr == nil }

// Ptr returns the block's raw address, nil for empty blocks.
func (b Block) Ptr() unsafe.Pointer { return b.ptr }

// Size returns the block's size in bytes. For empty blocks this may still
// hold the size that was requested.
func (b Block) Size() int { return b.size }

// Bytes returns a byte-slice view over the block's storage, or nil for an
// empty block. The view aliases the allocation; it is valid only until the
// block is deallocated.
func (b Block) Bytes() []byte {
	if b.ptr == nil || b.size <= 0 {
		return nil
	}
	return unsafe.Slice((*byte)(b.ptr), b.size)
}
