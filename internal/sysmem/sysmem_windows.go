//go:build windows

package sysmem

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Alloc reserves size bytes of zeroed, page-backed memory via
// VirtualAlloc.
func Alloc(size int) (unsafe.Pointer, error) {
	if size <= 0 {
		return nil, fmt.Errorf("sysmem: invalid allocation size %d", size)
	}
	addr, err := windows.VirtualAlloc(0, uintptr(size),
		windows.MEM_COMMIT|windows.MEM_RESERVE,
		windows.PAGE_READWRITE)
	if err != nil {
		return nil, fmt.Errorf("sysmem: VirtualAlloc %d bytes: %w", size, err)
	}
	return unsafe.Pointer(addr), nil
}

// Free releases a region previously obtained from Alloc. VirtualFree with
// MEM_RELEASE frees the whole reservation, so the size is unused here but
// kept for interface symmetry with the unix build.
func Free(p unsafe.Pointer, size int) error {
	if p == nil || size <= 0 {
		return nil
	}
	if err := windows.VirtualFree(uintptr(p), 0, windows.MEM_RELEASE); err != nil {
		return fmt.Errorf("sysmem: VirtualFree: %w", err)
	}
	return nil
}
