// Package alloc provides the composable allocation strategies of memkit
// and the process-wide allocator built from them.
//
// # Overview
//
// Every strategy implements mem.Allocator and can be combined with the
// others to express an allocation policy. The building blocks are:
//
//   - NullAllocator: refuses everything (terminal, for policy selection)
//   - HeapAllocator: page-backed memory straight from the OS
//   - StackAllocator: fixed-capacity bump allocator with LIFO reclaim
//   - FreeList: size-class pool recycling freed blocks intrusively
//   - FallbackAllocator: try primary, fall back on failure
//   - Segregator: route by request size around a threshold
//   - LockedAllocator: mutex wrapper, the sole concurrency boundary
//   - AbortAllocator: turn exhaustion into hooks + process termination
//   - CountingAllocator: traffic counters for tests and tooling
//
// # The global allocator
//
// Allocate and Deallocate go through a single composed instance:
// small requests are tried against an 8 KiB stack allocator and fall back
// to size-class free lists over the OS heap; requests above 512 bytes go
// to a larger free-list bucket; everything is serialized by one mutex and
// wrapped so that true exhaustion runs the registered hooks and
// terminates the process. From the caller's side allocation is
// infallible: a block returned by Allocate is never empty.
//
//	b := alloc.Allocate(240)
//	defer alloc.Deallocate(b)
//	copy(b.Bytes(), payload)
//
// The typed layer allocates and initializes in one step:
//
//	v := alloc.New[Header]()        // zeroed storage for one Header
//	defer alloc.Delete(v)
//	v.Get().Magic = headerMagic
//
// Values placed in allocator storage must not contain Go pointers; the
// garbage collector does not scan these regions. New enforces this with a
// reflect-based check.
//
// # Failure model
//
// Inside a composition tree, exhaustion is an empty mem.Block travelling
// up the chain; composites absorb it by trying their next branch. Only
// the AbortAllocator at the top converts a fully exhausted chain into a
// fatal event. Contract violations (double free, freeing a foreign block)
// are checked only when the MEMKIT_DEBUG environment toggle is set and
// are undefined behavior otherwise.
//
// # Environment toggles
//
//   - MEMKIT_DEBUG: enable contract-violation panics
//   - MEMKIT_LOG_ALLOC: log global allocate/deallocate traffic
//   - MEMKIT_POISON: fill freed typed storage with 0xDD
//
// # Thread safety
//
// Individual strategies are not goroutine-safe. The global allocator is,
// by virtue of its LockedAllocator layer; standalone compositions need
// their own NewLocked wrapper.
package alloc
