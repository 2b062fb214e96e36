package heapmgr

import "unsafe"

// growthIncrement is the number of bytes grow first requests from the
// Provider, even when the triggering allocation needs far less. Growing
// in bigger steps amortizes the cost of Extend (a real mprotect syscall
// on the unix Provider) across many small mallocs. If the Provider
// refuses that much, grow retries with exactly the bytes the allocation
// needs, so a single grow can be smaller than growthIncrement.
const growthIncrement = 1 << 16 // 64 KiB

// Heap is a general-purpose dynamic memory allocator: a segregated
// free-list manager over a single contiguous region supplied by a
// Provider. It is not safe for concurrent use; wrap it in a SafeHeap
// for that.
type Heap struct {
	provider  Provider
	heapStart uintptr
	heapEnd   uintptr
	bins      bins
}

// New creates a Heap backed by the best Provider available on this
// platform (a real mmap/mprotect reservation on unix, a slice-backed
// fallback elsewhere).
func New() *Heap {
	return NewHeap(newDefaultProvider())
}

// NewHeap creates a Heap backed by the given Provider. The heap starts
// out empty; its first Malloc triggers the first call to Extend.
func NewHeap(p Provider) *Heap {
	start := uintptr(p.Base())
	return &Heap{
		provider:  p,
		heapStart: start,
		heapEnd:   start + p.Reserved(),
	}
}

// Malloc allocates at least nbytes of memory and returns a pointer to
// it, or nil if the request cannot be satisfied (the Provider refused
// to grow far enough). A request of zero bytes returns nil.
func (h *Heap) Malloc(nbytes uintptr) unsafe.Pointer {
	if nbytes == 0 {
		return nil
	}
	// bytesToUnits counts payload and header; the footer takes one more.
	units := bytesToUnits(nbytes) + 1
	if units < minUnitsPerChunk {
		units = minUnitsPerChunk
	}

	c := h.bins.findFit(units)
	if c == nilChunk {
		if !h.grow(units) {
			return nil
		}
		c = h.bins.findFit(units)
		if c == nilChunk {
			return nil
		}
	}

	h.bins.remove(c)
	h.useChunk(c, units)
	c.setStatus(statusInUse)
	h.debugCheck("malloc")
	return c.toPayload()
}

// Free releases a pointer previously returned by Malloc (or by the
// generic Alloc helpers), coalescing it with any adjacent free
// neighbors. Freeing nil is a no-op.
func (h *Heap) Free(p unsafe.Pointer) {
	if p == nil {
		return
	}
	c := chunkFromPayload(p)
	c.setStatus(statusFree)

	if next := c.nextInMem(h.heapEnd); next != nilChunk && next.getStatus() == statusFree {
		h.bins.remove(next)
		c.setUnits(c.units() + next.units())
	}
	if prev := c.prevInMem(h.heapStart); prev != nilChunk && prev.getStatus() == statusFree {
		h.bins.remove(prev)
		prev.setUnits(prev.units() + c.units())
		c = prev
	}
	c.setFooter()
	h.bins.insertFront(c)
	h.debugCheck("free")
}

// useChunk commits c to servicing a request of exactly u units,
// splitting off and freeing the remainder if the leftover is large
// enough to form a valid chunk of its own. c must not be in any bin.
func (h *Heap) useChunk(c chunk, u uintptr) {
	leftover := c.units() - u
	if leftover < minUnitsPerChunk {
		// Too small to split off; the whole chunk goes to the caller.
		c.setFooter()
		return
	}
	c.setUnits(u)
	c.setFooter()

	rem := chunk(c.addr() + u*unitSize)
	rem.setUnits(leftover)
	rem.setStatus(statusFree)
	rem.setFooter()
	h.bins.insertFront(rem)
}

// grow asks the Provider for growthIncrement bytes of additional address
// space, or for exactly enough to hold minUnits units when that is more
// or when the Provider refuses growthIncrement, then folds the
// new span into a FREE chunk — coalescing it with the heap's current
// last chunk first, if that chunk is itself free — and inserts the
// result into the bins. Returns false if the Provider cannot grow far
// enough even for the exact request.
func (h *Heap) grow(minUnits uintptr) bool {
	need := unitsToBytes(minUnits)
	growBytes := need
	if growBytes < growthIncrement {
		growBytes = growthIncrement
	}

	if !h.provider.Extend(growBytes) {
		if growBytes == need {
			return false
		}
		growBytes = need
		if !h.provider.Extend(growBytes) {
			return false
		}
	}

	newChunk := chunk(h.heapEnd)
	newChunk.setUnits(growBytes / unitSize)
	newChunk.setStatus(statusFree)
	newChunk.setFooter()
	h.heapEnd += growBytes

	if prev := newChunk.prevInMem(h.heapStart); prev != nilChunk && prev.getStatus() == statusFree {
		h.bins.remove(prev)
		prev.setUnits(prev.units() + newChunk.units())
		prev.setFooter()
		newChunk = prev
	}
	h.bins.insertFront(newChunk)
	return true
}

// HeapStart returns the address of the start of the managed region.
// Exposed for the validator and for tests/benchmarks that need to walk
// the heap directly.
func (h *Heap) HeapStart() uintptr { return h.heapStart }

// HeapEnd returns the address one past the end of the managed region.
func (h *Heap) HeapEnd() uintptr { return h.heapEnd }
