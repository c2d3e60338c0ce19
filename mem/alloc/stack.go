package alloc

import (
	"unsafe"

	"github.com/joshuapare/memkit/mem"
)

// DefaultStackBytes is the buffer capacity used when NewStack is given a
// non-positive size.
const DefaultStackBytes = 8 * mem.KiB

// StackAllocator is a fixed-capacity bump allocator. Allocation advances
// a cursor through a pre-sized buffer; only the most recently allocated
// block can be reclaimed, so frees must arrive in LIFO order to recover
// space. Out-of-order frees are silent no-ops: the space is leaked until
// later frees unwind past it or the allocator is Reset.
//
// The stack allocator is meant to sit as the fast path in front of a
// FallbackAllocator, where a LIFO-violating free merely wastes some of
// the fixed buffer.
//
// Not goroutine-safe.
type StackAllocator struct {
	buf []byte // aligned window into the backing array
	top int    // bump cursor
}

// NewStack creates a stack allocator over a capacity-byte buffer. The
// buffer start is aligned to mem.MaxAlign by over-allocating and shifting,
// so every block the allocator hands out is max-aligned.
func NewStack(capacity int) *StackAllocator {
	if capacity <= 0 {
		capacity = DefaultStackBytes
	}
	raw := make([]byte, capacity+mem.MaxAlign)
	shift := 0
	if rem := int(uintptr(unsafe.Pointer(&raw[0])) & (mem.MaxAlign - 1)); rem != 0 {
		shift = mem.MaxAlign - rem
	}
	return &StackAllocator{buf: raw[shift : shift+capacity]}
}

// Allocate carves size bytes off the top of the buffer. On exhaustion it
// returns a block with a nil pointer but the requested size intact, so
// size-aware composites can still route the miss.
func (s *StackAllocator) Allocate(size int) mem.Block {
	if size <= 0 {
		return mem.Block{}
	}
	need := mem.AlignUp(size, mem.MaxAlign)
	if need < size || s.top+need > len(s.buf) {
		return mem.NewBlock(nil, size)
	}
	p := unsafe.Pointer(&s.buf[s.top])
	s.top += need
	return mem.NewBlock(p, size)
}

// Deallocate reclaims space only when b is the most recently allocated
// live block; anything else is a no-op.
func (s *StackAllocator) Deallocate(b mem.Block) {
	if b.IsZero() {
		return
	}
	need := mem.AlignUp(b.Size(), mem.MaxAlign)
	if uintptr(b.Ptr())+uintptr(need) == s.base()+uintptr(s.top) {
		s.top -= need
	}
}

// Owns reports whether b's address lies within the allocated region of
// the buffer.
func (s *StackAllocator) Owns(b mem.Block) bool {
	p := uintptr(b.Ptr())
	base := s.base()
	return p >= base && p < base+uintptr(s.top)
}

// Reset discards all allocations and rewinds the cursor to the start of
// the buffer. Outstanding blocks become invalid.
func (s *StackAllocator) Reset() { s.top = 0 }

// Capacity returns the buffer size in bytes.
func (s *StackAllocator) Capacity() int { return len(s.buf) }

// InUse returns the number of buffer bytes currently consumed, including
// alignment padding.
func (s *StackAllocator) InUse() int { return s.top }

func (s *StackAllocator) base() uintptr {
	return uintptr(unsafe.Pointer(&s.buf[0]))
}

var _ mem.OwningAllocator = (*StackAllocator)(nil)
