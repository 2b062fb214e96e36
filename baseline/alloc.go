package baseline

import (
	"runtime"
	"unsafe"
)

// Alloc returns a pointer to a T stored inside the PaddedBump with zeroed
// memory. The returned pointer is valid as long as the allocator hasn't
// been released.
func Alloc[T any](a *PaddedBump) *T {
	var zero T
	size := int(unsafe.Sizeof(zero))
	b := a.AllocBytes(size)
	if len(b) > 0 {
		clear(b)
	}
	return (*T)(unsafe.Pointer(&b[0]))
}

// AllocZeroed is identical to Alloc — provided for API consistency.
func AllocZeroed[T any](a *PaddedBump) *T {
	return Alloc[T](a)
}

// AllocUninitialized returns a *T located in the allocator without
// zeroing memory. Faster than Alloc, but contents are undefined.
func AllocUninitialized[T any](a *PaddedBump) *T {
	var zero T
	size := int(unsafe.Sizeof(zero))
	b := a.AllocBytes(size)
	return (*T)(unsafe.Pointer(&b[0]))
}

// AllocSlice allocates a slice of n uninitialized elements of type T.
// Returns nil if n <= 0.
func AllocSlice[T any](a *PaddedBump, n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	total := elemSize * n
	b := a.AllocBytes(total)
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n)
}

// AllocSliceZeroed allocates a slice of n zeroed elements of type T.
func AllocSliceZeroed[T any](a *PaddedBump, n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	total := elemSize * n
	b := a.AllocBytes(total)
	if len(b) > 0 {
		clear(b)
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n)
}

// PtrAndKeepAlive returns t and calls runtime.KeepAlive on the allocator,
// so the allocator stays reachable at least until this call returns.
func PtrAndKeepAlive[T any](a *PaddedBump, t *T) *T {
	runtime.KeepAlive(a)
	return t
}
