package alloc

import (
	"fmt"
	"reflect"
	"sync"
	"unsafe"

	"github.com/joshuapare/memkit/mem"
)

// zerobase backs zero-size allocations, the same trick the runtime uses:
// every zero-size value shares one address and no storage is consumed.
var zerobase [mem.MaxAlign]byte

// New allocates storage for a single T from the global allocator and
// returns a typed block over zeroed memory. T must not contain Go
// pointers: allocator storage is invisible to the garbage collector, so a
// pointer placed there would not keep its target alive. Violations panic.
func New[T any]() mem.Typed[T] {
	return NewSlice[T](1)
}

// NewSlice allocates zeroed storage for n values of T from the global
// allocator. Zero-size element types consume no storage. Panics if T
// contains Go pointers or n is not positive.
func NewSlice[T any](n int) mem.Typed[T] {
	mustBePointerFree[T]()
	if n <= 0 {
		panic("alloc: NewSlice count must be positive")
	}
	elem := int(unsafe.Sizeof(*new(T)))
	if elem == 0 {
		return mem.TypedOf[T](mem.NewBlock(unsafe.Pointer(&zerobase), 0))
	}
	total := elem * n
	if total/elem != n {
		panic("alloc: NewSlice size overflows")
	}
	b := Allocate(total)
	clear(b.Bytes())
	return mem.TypedOf[T](b)
}

// NewInit allocates a T and runs init on the fresh zeroed value. If init
// returns an error or panics, the storage is released before the failure
// propagates, so a failed initialization never leaks its allocation.
func NewInit[T any](init func(*T) error) (mem.Typed[T], error) {
	t := New[T]()
	done := false
	defer func() {
		if !done {
			Delete(t)
		}
	}()
	if init != nil {
		if err := init(t.Get()); err != nil {
			return mem.Typed[T]{}, err
		}
	}
	done = true
	return t, nil
}

// Delete releases a typed block back to the global allocator. Zero and
// zero-size blocks are no-ops. With MEMKIT_POISON set the storage is
// filled with a poison pattern first so stale reads are visible.
func Delete[T any](t mem.Typed[T]) {
	b := t.Raw()
	if b.IsZero() || b.Size() == 0 {
		return
	}
	if poisonFree {
		poison(b.Bytes())
	}
	Deallocate(b)
}

// ptrFreeCache memoizes the reflect walk per element type.
var ptrFreeCache sync.Map // reflect.Type -> bool (true when T carries pointers)

func mustBePointerFree[T any]() {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if v, ok := ptrFreeCache.Load(t); ok {
		if v.(bool) {
			panic(fmt.Sprintf("alloc: %s contains Go pointers and cannot live in allocator storage", t))
		}
		return
	}
	has := typeHasPointers(t)
	ptrFreeCache.Store(t, has)
	if has {
		panic(fmt.Sprintf("alloc: %s contains Go pointers and cannot live in allocator storage", t))
	}
}

func typeHasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return typeHasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if typeHasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		// String, Slice, Map, Pointer, Interface, Func, Chan,
		// UnsafePointer and anything unexpected.
		return true
	}
}
