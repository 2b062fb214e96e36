// Package baseline implements the two simplest allocation strategies kept
// in this repository purely as reference points: a pure bump allocator and
// a padded (chunked, grow-ahead) bump allocator. Neither keeps any
// per-allocation bookkeeping, and neither supports freeing
// individual allocations — compare them against the segregated free-list
// engine in the parent package, which is the one actually meant for
// general-purpose use.
package baseline

import "unsafe"

// DefaultChunkSize is the default chunk size for new PaddedBump allocators
// (64 KiB).
const DefaultChunkSize = 1 << 16

// chunk is one batch of backing memory owned by a PaddedBump, plus how
// far into it bump allocation has progressed.
type chunk struct {
	buf    []byte  // backing memory
	offset uintptr // allocation offset within buf
}

// remaining reports how many bytes chunk c can still hand out, once its
// offset is rounded up to pointer-size alignment.
func (c *chunk) remaining() uintptr {
	aligned := alignPtr(c.offset)
	if aligned >= uintptr(len(c.buf)) {
		return 0
	}
	return uintptr(len(c.buf)) - aligned
}

// bump carves n aligned bytes out of c and advances its offset past them.
// The caller must already know remaining() >= n.
func (c *chunk) bump(n int) []byte {
	start := int(alignPtr(c.offset))
	c.offset = uintptr(start + n)
	return c.buf[start : start+n : start+n]
}

// PaddedBump is a chunked bump allocator: it grows ahead of need in
// batches ("pads" the heap, hence the name) and bump-allocates within the
// current batch. It never reuses memory freed by Free, which is a no-op;
// callers reclaim in bulk via Reset (keep the chunks, rewind the offsets)
// or Release (drop everything).
type PaddedBump struct {
	chunks    []chunk
	chunkSize int
	cur       int // index of the chunk currently being bumped
}

// NewPaddedBump creates a new PaddedBump with the specified chunk size.
// If chunkSize <= 0, DefaultChunkSize is used.
func NewPaddedBump(chunkSize int) *PaddedBump {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	a := &PaddedBump{chunkSize: chunkSize}
	a.addChunk(chunkSize)
	return a
}

// AllocBytes returns a []byte slice pointing into the allocator's backing
// chunk, growing a fresh chunk first if the current one has no room left.
// The caller must ensure the allocator remains reachable while the
// returned slice is in use. Returns nil if n <= 0.
func (a *PaddedBump) AllocBytes(n int) []byte {
	if n <= 0 {
		return nil
	}
	a.panicIfReleased()

	if a.chunks[a.cur].remaining() < uintptr(n) {
		a.addChunk(n)
	}
	return a.chunks[a.cur].bump(n)
}

// EnsureCapacity ensures the current chunk has at least n free bytes. If
// not, it moves on to a kept chunk with room or grows the allocator with
// a new chunk.
func (a *PaddedBump) EnsureCapacity(n int) {
	a.panicIfReleased()
	if a.chunks[a.cur].remaining() < uintptr(n) {
		a.addChunk(n)
	}
}

// Reset resets allocation offsets to zero but keeps allocated chunks for
// reuse. It costs O(number of chunks), independent of how many
// allocations were made.
func (a *PaddedBump) Reset() {
	a.panicIfReleased()
	for i := range a.chunks {
		a.chunks[i].offset = 0
	}
	a.cur = 0
}

// Release drops all chunks and makes the allocator unusable: subsequent
// AllocBytes, EnsureCapacity and Reset calls panic, while the statistics
// methods report zero.
func (a *PaddedBump) Release() {
	a.chunks = nil
	a.cur = 0
}

// Free is a documented no-op: PaddedBump never reclaims individual
// allocations, only bulk via Reset or Release.
func (a *PaddedBump) Free([]byte) {}

// addChunk makes current the next chunk able to hold at least min bytes:
// a later chunk kept by Reset if one has room, otherwise a freshly
// appended chunk.
func (a *PaddedBump) addChunk(min int) {
	for i := a.cur + 1; i < len(a.chunks); i++ {
		if a.chunks[i].remaining() >= uintptr(min) {
			a.cur = i
			return
		}
	}
	size := a.chunkSize
	if min > size {
		size = min
	}
	a.chunks = append(a.chunks, chunk{buf: make([]byte, size)})
	a.cur = len(a.chunks) - 1
}

func (a *PaddedBump) panicIfReleased() {
	if a.chunks == nil {
		panic("baseline: use after Release()")
	}
}

// alignPtr aligns the offset up to pointer size alignment.
func alignPtr(off uintptr) uintptr {
	const align = unsafe.Sizeof(uintptr(0))
	mask := align - 1
	return (off + mask) & ^mask
}
