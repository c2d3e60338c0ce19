package mem

import "unsafe"

// Typed is a Block viewed as storage for count values of T rather than a
// byte count. Like Block it is a plain descriptor: it runs no constructors
// or destructors and does not keep the storage alive on its own.
type Typed[T any] struct {
	ptr   *T
	count int
}

// TypedOf reinterprets b as storage for values of T. The count is the
// byte size divided by T's size; trailing bytes that do not fit a whole T
// are ignored. Zero-size types yield a count of zero while keeping the
// block's address.
func TypedOf[T any](b Block) Typed[T] {
	if b.IsZero() {
		return Typed[T]{}
	}
	elem := int(unsafe.Sizeof(*new(T)))
	if elem == 0 {
		return Typed[T]{ptr: (*T)(b.Ptr())}
	}
	return Typed[T]{ptr: (*T)(b.Ptr()), count: b.Size() / elem}
}

// Raw converts back to an untyped Block, scaling the count by T's size.
func (t Typed[T]) Raw() Block {
	if t.ptr == nil {
		return Block{}
	}
	elem := int(unsafe.Sizeof(*new(T)))
	return NewBlock(unsafe.Pointer(t.ptr), t.count*elem)
}

// IsZero reports whether the typed block is empty.
func (t Typed[T]) IsZero() bool { return t.ptr == nil }

// Get returns a pointer to the first T, nil for empty blocks.
func (t Typed[T]) Get() *T { return t.ptr }

// Count returns the number of T values the storage holds.
func (t Typed[T]) Count() int { return t.count }

// Slice returns a []T view over the storage, nil for empty blocks. The
// view aliases the allocation and is valid only until deallocation.
func (t Typed[T]) Slice() []T {
	if t.ptr == nil || t.count <= 0 {
		return nil
	}
	return unsafe.Slice(t.ptr, t.count)
}
