//go:build unix

package sysmem

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Alloc reserves size bytes of zeroed, page-backed memory via an
// anonymous private mapping.
func Alloc(size int) (unsafe.Pointer, error) {
	if size <= 0 {
		return nil, fmt.Errorf("sysmem: invalid allocation size %d", size)
	}
	data, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("sysmem: mmap %d bytes: %w", size, err)
	}
	return unsafe.Pointer(&data[0]), nil
}

// Free releases a region previously obtained from Alloc. The size must be
// the one the region was allocated with.
func Free(p unsafe.Pointer, size int) error {
	if p == nil || size <= 0 {
		return nil
	}
	if err := unix.Munmap(unsafe.Slice((*byte)(p), size)); err != nil {
		return fmt.Errorf("sysmem: munmap: %w", err)
	}
	return nil
}
