// Package sysmem obtains page-backed memory directly from the operating
// system, outside the Go heap. Regions returned by Alloc are invisible to
// the garbage collector and must be released with Free.
//
// Each Alloc creates an independent mapping, so Free may be called with
// exactly the pointer and size of a prior Alloc and nothing else.
package sysmem
