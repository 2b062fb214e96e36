package heapmgr

import (
	"runtime"
	"unsafe"
)

// Alloc returns a pointer to a T allocated from h, with zeroed memory.
// Unlike a fresh arena allocation, heap memory may have previously held
// another value, so Alloc always clears it; use AllocUninitialized to
// skip that when the caller will overwrite it anyway. Returns nil if h
// cannot satisfy the allocation.
func Alloc[T any](h *Heap) *T {
	var zero T
	size := unsafe.Sizeof(zero)
	p := h.Malloc(size)
	if p == nil {
		return nil
	}
	t := (*T)(p)
	*t = zero
	return t
}

// AllocUninitialized returns a *T located in h without zeroing memory.
// Faster than Alloc, but contents are undefined until written. Returns
// nil if h cannot satisfy the allocation.
func AllocUninitialized[T any](h *Heap) *T {
	var zero T
	p := h.Malloc(unsafe.Sizeof(zero))
	if p == nil {
		return nil
	}
	return (*T)(p)
}

// AllocSlice allocates a slice of n zeroed elements of type T from h.
// Returns nil if n <= 0 or h cannot satisfy the allocation.
func AllocSlice[T any](h *Heap, n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	elemSize := unsafe.Sizeof(zero)
	p := h.Malloc(elemSize * uintptr(n))
	if p == nil {
		return nil
	}
	s := unsafe.Slice((*T)(p), n)
	for i := range s {
		s[i] = zero
	}
	return s
}

// AllocSliceUninitialized allocates a slice of n uninitialized elements
// of type T from h. Returns nil if n <= 0 or h cannot satisfy the
// allocation.
func AllocSliceUninitialized[T any](h *Heap, n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	elemSize := unsafe.Sizeof(zero)
	p := h.Malloc(elemSize * uintptr(n))
	if p == nil {
		return nil
	}
	return unsafe.Slice((*T)(p), n)
}

// FreeValue releases a *T previously returned by Alloc, AllocUninitialized,
// or AllocSlice/AllocSliceUninitialized (pass &s[0] for a slice).
func FreeValue[T any](h *Heap, t *T) {
	h.Free(unsafe.Pointer(t))
}

// PtrAndKeepAlive returns t and calls runtime.KeepAlive on h, so h stays
// reachable at least until this call returns.
func PtrAndKeepAlive[T any](h *Heap, t *T) *T {
	runtime.KeepAlive(h)
	return t
}
