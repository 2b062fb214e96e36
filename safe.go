package heapmgr

import (
	"sync"
	"unsafe"
)

// SafeHeap is a mutex-protected wrapper around Heap for concurrent use.
// All operations are thread-safe but pay for mutex locking on every
// call.
type SafeHeap struct {
	mu sync.Mutex
	h  *Heap
}

// NewSafeHeap creates a thread-safe Heap backed by the best Provider
// available on this platform.
func NewSafeHeap() *SafeHeap {
	return &SafeHeap{h: New()}
}

// NewSafeHeapWithProvider creates a thread-safe Heap backed by the
// given Provider.
func NewSafeHeapWithProvider(p Provider) *SafeHeap {
	return &SafeHeap{h: NewHeap(p)}
}

// Malloc thread-safely allocates at least nbytes of memory.
func (s *SafeHeap) Malloc(nbytes uintptr) unsafe.Pointer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.h.Malloc(nbytes)
}

// Free thread-safely releases a pointer previously returned by Malloc.
func (s *SafeHeap) Free(p unsafe.Pointer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.h.Free(p)
}

// Stats thread-safely computes a snapshot of the heap's state.
func (s *SafeHeap) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.h.Stats()
}

// IsValid thread-safely runs the full invariant validator.
func (s *SafeHeap) IsValid() (bool, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return IsValid(s.h)
}

// SafeAlloc thread-safely returns a zeroed *T allocated from s.
func SafeAlloc[T any](s *SafeHeap) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Alloc[T](s.h)
}

// SafeAllocUninitialized thread-safely returns a *T allocated from s
// without zeroing memory.
func SafeAllocUninitialized[T any](s *SafeHeap) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocUninitialized[T](s.h)
}

// SafeAllocSlice thread-safely allocates a zeroed slice of n elements
// of type T from s.
func SafeAllocSlice[T any](s *SafeHeap, n int) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocSlice[T](s.h, n)
}

// SafeAllocSliceUninitialized thread-safely allocates a slice of n
// uninitialized elements of type T from s.
func SafeAllocSliceUninitialized[T any](s *SafeHeap, n int) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocSliceUninitialized[T](s.h, n)
}

// SafeFreeValue thread-safely frees a *T previously returned by
// SafeAlloc or SafeAllocUninitialized.
func SafeFreeValue[T any](s *SafeHeap, t *T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	FreeValue(s.h, t)
}
