// Package mem defines the block descriptors and allocator contract shared
// by every allocation strategy in memkit.
//
// # Blocks
//
// A Block pairs a raw address with the size the caller requested. Blocks
// are inert value types: they allocate nothing themselves, run no
// initialization, and are invalidated by the Deallocate call that consumes
// them. Typed[T] is the same descriptor viewed as a count of T values
// instead of a byte count; the two convert freely through TypedOf and Raw.
//
// # The allocator contract
//
// Every strategy implements Allocator:
//
//	type Allocator interface {
//	    Allocate(size int) Block
//	    Deallocate(b Block)
//	}
//
// Allocate signals failure by returning a Block whose pointer is nil;
// it never returns an error. Strategies that can attribute a block to
// themselves additionally implement Owner, which is what lets composite
// allocators route a Deallocate call back to whichever child produced the
// block. An allocator without Owns cannot serve as the primary half of a
// fallback pair, since there is no other way to route frees.
//
// Concrete strategies live in the alloc subpackage.
package mem
