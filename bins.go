package heapmgr

// binMax is the number of segregated free-list bins. Bins are indexed
// by a chunk's unit count: bin i (for i < binMax-1) holds only chunks
// of exactly i units, giving O(1) insert/remove/exact-fit lookup for
// every size an allocator sees in practice. The final bin, binMax-1, is
// an overflow bin holding every chunk at or above that unit count,
// scanned linearly on the rare path where a request is unusually large.
const binMax = 1024

// bins is the free-list index: bins[i] is the head of a doubly-linked
// list of FREE chunks (linked through chunk.prevInList/nextInList),
// or nilChunk if the bin is empty.
type bins [binMax]chunk

// binIndex maps a unit count to its bin. Every size from minUnitsPerChunk
// up to binMax-2 gets an exact bin; anything larger collapses into the
// overflow bin.
func binIndex(units uintptr) int {
	if units >= binMax-1 {
		return binMax - 1
	}
	return int(units)
}

// insertFront pushes c onto the front of its bin's free list. c must
// already be marked FREE; its header/footer units must be set.
func (b *bins) insertFront(c chunk) {
	idx := binIndex(c.units())
	head := b[idx]
	c.setPrevInList(nilChunk)
	c.setNextInList(head)
	if head != nilChunk {
		head.setPrevInList(c)
	}
	b[idx] = c
}

// remove unlinks c from whichever bin it currently sits in. c must be a
// chunk previously inserted via insertFront and not yet removed.
func (b *bins) remove(c chunk) {
	idx := binIndex(c.units())
	prev := c.prevInList()
	next := c.nextInList()
	if prev != nilChunk {
		prev.setNextInList(next)
	} else {
		b[idx] = next
	}
	if next != nilChunk {
		next.setPrevInList(prev)
	}
	c.setPrevInList(nilChunk)
	c.setNextInList(nilChunk)
}

// findFit returns the first FREE chunk able to hold a request of
// minUnits units, following a segregated best-fit-then-first-fit
// strategy: scan exact-size bins upward from minUnits' own bin (every
// chunk found there is an exact or near-exact fit by construction),
// then fall back to a linear first-fit scan of the overflow bin.
// Returns nilChunk if no chunk anywhere can satisfy the request.
func (b *bins) findFit(minUnits uintptr) chunk {
	start := binIndex(minUnits)
	for idx := start; idx < binMax-1; idx++ {
		if b[idx] != nilChunk {
			return b[idx]
		}
	}
	for c := b[binMax-1]; c != nilChunk; c = c.nextInList() {
		if c.units() >= minUnits {
			return c
		}
	}
	return nilChunk
}
