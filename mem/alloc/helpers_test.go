package alloc

import "github.com/joshuapare/memkit/mem"

// recorder wraps an allocator and records traffic so composition tests
// can assert routing decisions without caring about addresses.
type recorder struct {
	inner  mem.Allocator
	allocs []int
	frees  []mem.Block
}

func newRecorder(inner mem.Allocator) *recorder {
	return &recorder{inner: inner}
}

func (r *recorder) Allocate(size int) mem.Block {
	r.allocs = append(r.allocs, size)
	return r.inner.Allocate(size)
}

func (r *recorder) Deallocate(b mem.Block) {
	r.frees = append(r.frees, b)
	r.inner.Deallocate(b)
}
