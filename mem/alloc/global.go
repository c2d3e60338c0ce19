package alloc

import (
	"fmt"
	"log"

	"github.com/joshuapare/memkit/mem"
)

// Global allocation policy. Requests up to smallClassMax are tried
// against a fixed stack buffer first and fall back to a small free-list
// bucket; the two larger buckets recycle medium blocks; anything above
// largeClassMax goes straight to the OS heap.
const (
	globalStackBytes = 8 * mem.KiB

	smallClassMax  = 256
	mediumClassMax = 512
	largeClassMax  = 1024
)

// The composed process-wide allocator. The abort boundary sits above the
// lock so that exhaustion hooks run without holding the mutex; the
// counters sit just below it so Stats reflects the composed policy as one
// unit.
var (
	globalStack    = NewStack(globalStackBytes)
	globalCounting = NewCounting(
		NewSegregator(mediumClassMax,
			NewSegregator(smallClassMax,
				NewFallback(globalStack, NewFreeList(HeapAllocator{}, 0, smallClassMax)),
				NewFreeList(HeapAllocator{}, smallClassMax, mediumClassMax)),
			NewFreeList(HeapAllocator{}, mediumClassMax, largeClassMax)))
	globalAbort = NewAbort(NewLocked(globalCounting))
)

// Allocate obtains size bytes from the process-wide allocator. It never
// returns an empty block for a positive size: on true exhaustion the
// registered hooks run and the process terminates. Non-positive sizes
// yield the empty block, which Deallocate accepts as a no-op.
func Allocate(size int) mem.Block {
	if size <= 0 {
		return mem.Block{}
	}
	b := globalAbort.Allocate(size)
	if logAlloc {
		log.Printf("alloc: global allocate %d bytes -> %#x", size, uintptr(b.Ptr()))
	}
	return b
}

// Deallocate returns a block previously obtained from Allocate. Safe to
// call with the empty block.
func Deallocate(b mem.Block) {
	if b.IsZero() {
		return
	}
	if logAlloc {
		log.Printf("alloc: global deallocate %d bytes at %#x", b.Size(), uintptr(b.Ptr()))
	}
	globalAbort.Deallocate(b)
}

// OnExhausted registers a diagnostic hook to run immediately before the
// process terminates on unrecoverable allocation failure. Returns false
// once the bounded registry is full.
func OnExhausted(fn ExhaustionHook) bool {
	return globalAbort.OnExhausted(fn)
}

// GlobalStats returns a snapshot of traffic through the global allocator.
func GlobalStats() Stats {
	return globalCounting.Stats()
}

// PolicyTier describes one routing tier of the global allocator.
type PolicyTier struct {
	MaxSize int    // largest request this tier accepts, 0 for unbounded
	Backend string // human-readable description of where blocks come from
}

// GlobalPolicy returns the routing tiers of the global allocator in the
// order requests are matched against them.
func GlobalPolicy() []PolicyTier {
	return []PolicyTier{
		{MaxSize: smallClassMax, Backend: fmt.Sprintf("%s stack buffer, free-list fallback", mem.FormatSize(globalStackBytes))},
		{MaxSize: mediumClassMax, Backend: "free list over OS heap"},
		{MaxSize: largeClassMax, Backend: "free list over OS heap"},
		{MaxSize: 0, Backend: "OS heap"},
	}
}
