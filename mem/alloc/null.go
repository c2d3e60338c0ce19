package alloc

import "github.com/joshuapare/memkit/mem"

// NullAllocator refuses every request. It models "no memory available"
// and exists for tests and for policy compositions that need a terminal
// branch that always fails.
type NullAllocator struct{}

// Allocate always returns the empty block.
func (NullAllocator) Allocate(size int) mem.Block { return mem.Block{} }

// Deallocate accepts only empty blocks; handing it a live block is a
// caller bug.
func (NullAllocator) Deallocate(b mem.Block) {
	if debugChecks && !b.IsZero() {
		panic("alloc: NullAllocator handed a non-empty block")
	}
}

// Owns never claims a block; nothing was ever allocated here.
func (NullAllocator) Owns(b mem.Block) bool { return false }

var _ mem.OwningAllocator = NullAllocator{}
