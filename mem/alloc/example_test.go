package alloc_test

import (
	"fmt"

	"github.com/joshuapare/memkit/mem/alloc"
)

func ExampleAllocate() {
	b := alloc.Allocate(64)
	defer alloc.Deallocate(b)

	copy(b.Bytes(), "payload")
	fmt.Println(b.Size(), string(b.Bytes()[:7]))
	// Output: 64 payload
}

func ExampleNew() {
	type header struct {
		Magic uint32
		Count uint16
	}

	h := alloc.New[header]()
	defer alloc.Delete(h)

	h.Get().Magic = 0x1eaf
	fmt.Printf("%#x\n", h.Get().Magic)
	// Output: 0x1eaf
}

func ExampleNewFallback() {
	// Fast path on a small stack buffer, overflow to the OS heap.
	stack := alloc.NewStack(128)
	fb := alloc.NewFallback(stack, alloc.HeapAllocator{})

	fast := fb.Allocate(64)
	slow := fb.Allocate(4096)
	defer fb.Deallocate(slow)
	defer fb.Deallocate(fast)

	fmt.Println(stack.Owns(fast), stack.Owns(slow))
	// Output: true false
}
