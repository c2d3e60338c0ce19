package alloc

import "github.com/joshuapare/memkit/mem"

// PoolAllocator is a segregated-pool policy built by SegregatedPool: a
// chain of Segregator/FreeList pairs over a shared parent allocator.
// Requests above the largest boundary bypass every pool and go straight
// to the parent.
//
// Not goroutine-safe.
type PoolAllocator struct {
	root  mem.Allocator
	lists []*FreeList
}

// SegregatedPool composes a size-class policy over parent from a strictly
// ascending slice of class boundaries. A boundary list {256, 512, 1024}
// yields pools recycling (0..256], (256..512] and (512..1024] byte
// blocks, in the spirit of a segregated free-list allocator.
func SegregatedPool(parent mem.Allocator, boundaries []int) *PoolAllocator {
	if parent == nil {
		panic("alloc: SegregatedPool requires a parent allocator")
	}
	if len(boundaries) == 0 {
		panic("alloc: SegregatedPool requires at least one class boundary")
	}
	for i, b := range boundaries {
		if b <= 0 || (i > 0 && b <= boundaries[i-1]) {
			panic("alloc: SegregatedPool boundaries must be positive and strictly ascending")
		}
	}

	p := &PoolAllocator{lists: make([]*FreeList, len(boundaries))}
	var root mem.Allocator = parent
	for i := len(boundaries) - 1; i >= 0; i-- {
		lo := 0
		if i > 0 {
			lo = boundaries[i-1] + 1
		}
		fl := NewFreeList(parent, lo, boundaries[i])
		p.lists[i] = fl
		root = NewSegregator(boundaries[i], fl, root)
	}
	p.root = root
	return p
}

func (p *PoolAllocator) Allocate(size int) mem.Block {
	return p.root.Allocate(size)
}

func (p *PoolAllocator) Deallocate(b mem.Block) {
	p.root.Deallocate(b)
}

// Pooled returns the total number of blocks held across all pools.
func (p *PoolAllocator) Pooled() int {
	n := 0
	for _, fl := range p.lists {
		n += fl.Pooled()
	}
	return n
}

// Release drains every pool back to the parent allocator.
func (p *PoolAllocator) Release() {
	for _, fl := range p.lists {
		fl.Release()
	}
}

var _ mem.Allocator = (*PoolAllocator)(nil)
