package alloc

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/joshuapare/memkit/mem"
)

// MaxExhaustionHooks bounds the hook registry of an AbortAllocator.
const MaxExhaustionHooks = 8

// ExhaustionHook is a last-chance diagnostic callback run right before
// the process terminates on unrecoverable allocation failure.
type ExhaustionHook func()

// AbortAllocator converts allocation failure from a recoverable empty
// block into a fatal event. Past this boundary allocation is infallible:
// callers never see an empty block, so code built on top never checks.
//
// On exhaustion the registered hooks run in registration order, then the
// process terminates with a non-zero status.
type AbortAllocator struct {
	inner  mem.Allocator
	hooks  [MaxExhaustionHooks]ExhaustionHook
	nhooks atomic.Int32

	// fatal must not return. Swapped out by tests.
	fatal func(size int)
}

// NewAbort wraps inner in the abort boundary.
func NewAbort(inner mem.Allocator) *AbortAllocator {
	if inner == nil {
		panic("alloc: AbortAllocator requires an inner allocator")
	}
	a := &AbortAllocator{inner: inner}
	a.fatal = a.defaultFatal
	return a
}

// OnExhausted appends fn to the hook registry. Registration is atomic and
// may race with other registrations; it returns false once the registry
// is full.
func (a *AbortAllocator) OnExhausted(fn ExhaustionHook) bool {
	if fn == nil {
		return false
	}
	for {
		n := a.nhooks.Load()
		if int(n) >= MaxExhaustionHooks {
			return false
		}
		if a.nhooks.CompareAndSwap(n, n+1) {
			a.hooks[n] = fn
			return true
		}
	}
}

// Allocate delegates to the wrapped allocator. On an empty result it runs
// the hooks and terminates the process; the call does not return to the
// caller on failure.
func (a *AbortAllocator) Allocate(size int) mem.Block {
	b := a.inner.Allocate(size)
	if b.IsZero() {
		a.exhausted(size)
	}
	return b
}

// Deallocate is a pure pass-through.
func (a *AbortAllocator) Deallocate(b mem.Block) {
	a.inner.Deallocate(b)
}

// Owns passes through when the wrapped allocator is an Owner.
func (a *AbortAllocator) Owns(b mem.Block) bool {
	if o, ok := a.inner.(mem.Owner); ok {
		return o.Owns(b)
	}
	return false
}

func (a *AbortAllocator) exhausted(size int) {
	// A slot may be reserved before its hook is stored; skip such holes
	// rather than waiting on the racing registration.
	n := int(a.nhooks.Load())
	if n > MaxExhaustionHooks {
		n = MaxExhaustionHooks
	}
	for i := 0; i < n; i++ {
		if fn := a.hooks[i]; fn != nil {
			fn()
		}
	}
	a.fatal(size)
}

func (a *AbortAllocator) defaultFatal(size int) {
	fmt.Fprintf(os.Stderr, "memkit: allocator exhausted serving a %d byte request\n", size)
	os.Exit(2)
}

var _ mem.OwningAllocator = (*AbortAllocator)(nil)
