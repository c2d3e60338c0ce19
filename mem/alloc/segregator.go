package alloc

import "github.com/joshuapare/memkit/mem"

// Segregator routes requests at or below a size threshold to one
// allocator and larger requests to another. Allocation routes on the
// requested size; deallocation and ownership route on the block's
// recorded size, which relies on the invariant that a block's size never
// changes between allocation and deallocation.
//
// Not goroutine-safe.
type Segregator struct {
	threshold int
	small     mem.Allocator
	large     mem.Allocator
}

// NewSegregator composes the two branches around threshold. Requests of
// exactly threshold bytes go to the small branch.
func NewSegregator(threshold int, small, large mem.Allocator) *Segregator {
	if small == nil || large == nil {
		panic("alloc: Segregator requires both branches")
	}
	return &Segregator{threshold: threshold, small: small, large: large}
}

func (s *Segregator) Allocate(size int) mem.Block {
	if size <= s.threshold {
		return s.small.Allocate(size)
	}
	return s.large.Allocate(size)
}

func (s *Segregator) Deallocate(b mem.Block) {
	if b.IsZero() {
		return
	}
	if b.Size() <= s.threshold {
		s.small.Deallocate(b)
		return
	}
	s.large.Deallocate(b)
}

// Owns routes the query by the block's size. A branch that is not itself
// an Owner cannot claim anything.
func (s *Segregator) Owns(b mem.Block) bool {
	branch := s.large
	if b.Size() <= s.threshold {
		branch = s.small
	}
	if o, ok := branch.(mem.Owner); ok {
		return o.Owns(b)
	}
	return false
}

var _ mem.OwningAllocator = (*Segregator)(nil)
