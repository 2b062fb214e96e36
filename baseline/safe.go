package baseline

import (
	"runtime"
	"sync"
)

// SafePaddedBump is a mutex-protected wrapper around PaddedBump for
// concurrent access. All operations are thread-safe but pay for mutex
// locking on every call.
type SafePaddedBump struct {
	mu sync.Mutex
	a  *PaddedBump
}

// NewSafePaddedBump creates a new thread-safe PaddedBump with the
// specified chunk size. If chunkSize <= 0, DefaultChunkSize is used.
func NewSafePaddedBump(chunkSize int) *SafePaddedBump {
	return &SafePaddedBump{a: NewPaddedBump(chunkSize)}
}

// AllocBytes thread-safely allocates n bytes. Returns nil if n <= 0.
func (s *SafePaddedBump) AllocBytes(n int) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.AllocBytes(n)
}

// EnsureCapacity thread-safely ensures the current chunk has at least n
// free bytes.
func (s *SafePaddedBump) EnsureCapacity(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.EnsureCapacity(n)
}

// Reset thread-safely resets allocation offsets for reuse.
func (s *SafePaddedBump) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Reset()
}

// Release thread-safely drops all chunks, making the allocator unusable.
func (s *SafePaddedBump) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Release()
}

// Free is a documented no-op, mirroring PaddedBump.Free.
func (s *SafePaddedBump) Free(b []byte) {}

// SafeAlloc thread-safely returns a zeroed *T stored inside the
// allocator.
func SafeAlloc[T any](s *SafePaddedBump) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Alloc[T](s.a)
}

// SafeAllocZeroed is identical to SafeAlloc — provided for API
// consistency.
func SafeAllocZeroed[T any](s *SafePaddedBump) *T {
	return SafeAlloc[T](s)
}

// SafeAllocUninitialized thread-safely returns a *T without zeroing
// memory.
func SafeAllocUninitialized[T any](s *SafePaddedBump) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocUninitialized[T](s.a)
}

// SafeAllocSlice thread-safely allocates a slice of n elements of type T.
func SafeAllocSlice[T any](s *SafePaddedBump, n int) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocSlice[T](s.a, n)
}

// SafeAllocSliceZeroed thread-safely allocates a zeroed slice of n
// elements.
func SafeAllocSliceZeroed[T any](s *SafePaddedBump, n int) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocSliceZeroed[T](s.a, n)
}

// SafePtrAndKeepAlive thread-safely returns t and calls runtime.KeepAlive
// on the allocator.
func SafePtrAndKeepAlive[T any](s *SafePaddedBump, t *T) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	runtime.KeepAlive(s.a)
	return t
}
