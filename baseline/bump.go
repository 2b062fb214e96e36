package baseline

import "unsafe"

// largestAlign is the alignment granularity bump allocations are rounded
// up to, mirroring the original C allocator's use of the widest scalar
// type so any returned pointer is safe to reinterpret as any value.
const largestAlign = unsafe.Sizeof(complex128(0))

// Bump is the simplest possible allocator: each call extends the backing
// buffer by exactly the (alignment-rounded) requested size and hands back
// the new tail. There is no bookkeeping beyond a single growing buffer,
// and Free is a no-op — memory is reclaimed only when the Bump itself is
// discarded.
type Bump struct {
	buf []byte
}

// NewBump creates an empty Bump allocator.
func NewBump() *Bump {
	return &Bump{}
}

// AllocBytes extends the allocator by n bytes rounded up to largestAlign
// and returns the first n of them. Returns nil if n <= 0.
func (b *Bump) AllocBytes(n int) []byte {
	if n <= 0 {
		return nil
	}
	start := len(b.buf)
	b.buf = append(b.buf, make([]byte, roundUp(n, int(largestAlign)))...)
	return b.buf[start : start+n : start+n]
}

// Free is a documented no-op.
func (b *Bump) Free([]byte) {}

// SizeInUse returns the total number of bytes the buffer has grown by so
// far, alignment padding included.
func (b *Bump) SizeInUse() int {
	return len(b.buf)
}

func roundUp(n, m int) int {
	return ((n - 1) / m) * m + m
}
