package heapmgr

import "unsafe"

// status is the lifecycle state of a chunk's header.
type status uintptr

const (
	statusFree  status = 0
	statusInUse status = 1
)

// unitSize is the allocator's quantum: one unit equals the size of a
// chunk header, which is also exactly large enough to hold the
// prevInList/nextInList pointer pair a free chunk stores in its first
// payload unit. Two machine words comfortably covers the platform's
// largest scalar alignment.
const unitSize = 2 * unsafe.Sizeof(uintptr(0))

// minUnitsPerChunk is the smallest valid chunk size in units: one unit
// for the header, one for the footer (this implementation always uses
// one, for O(1) left-neighbor lookup), and one payload unit, which
// doubles as storage for the intrusive free-list links while the chunk
// is free. See SPEC_FULL.md §3/DESIGN.md for why this is 3, not the
// footerless illustrative value of 2.
const minUnitsPerChunk = 3

// chunk is an address into the heap at the base of a chunk. It carries
// no Go-level fields of its own — all chunk state lives in the backing
// arena at this address, read and written through the accessors below.
type chunk uintptr

const nilChunk chunk = 0

func (c chunk) headerWord() *uintptr {
	return (*uintptr)(unsafe.Pointer(uintptr(c)))
}

// units returns the chunk's total size in units, header included.
func (c chunk) units() uintptr {
	return *c.headerWord() >> 1
}

func (c chunk) setUnits(u uintptr) {
	w := c.headerWord()
	*w = (u << 1) | uintptr(status(*w&1))
}

func (c chunk) getStatus() status {
	return status(*c.headerWord() & 1)
}

func (c chunk) setStatus(s status) {
	w := c.headerWord()
	*w = (*w &^ 1) | uintptr(s)
}

// addr returns the address of c as a uintptr, for building derived
// addresses.
func (c chunk) addr() uintptr { return uintptr(c) }

// footerWord returns the address of the footer word, the last unit of
// the chunk.
func (c chunk) footerWord() *uintptr {
	return (*uintptr)(unsafe.Pointer(c.addr() + c.units()*unitSize - unitSize))
}

func (c chunk) setFooter() {
	*c.footerWord() = c.units()
}

// linkWords returns the addresses of the prev/next intrusive list link
// fields, which live in the chunk's first payload unit. Valid only while
// the chunk is FREE; once IN_USE those bytes belong to the caller.
func (c chunk) linkWords() (prev, next *uintptr) {
	base := c.addr() + unitSize
	return (*uintptr)(unsafe.Pointer(base)), (*uintptr)(unsafe.Pointer(base + unsafe.Sizeof(uintptr(0))))
}

func (c chunk) prevInList() chunk {
	p, _ := c.linkWords()
	return chunk(*p)
}

func (c chunk) setPrevInList(v chunk) {
	p, _ := c.linkWords()
	*p = uintptr(v)
}

func (c chunk) nextInList() chunk {
	_, n := c.linkWords()
	return chunk(*n)
}

func (c chunk) setNextInList(v chunk) {
	_, n := c.linkWords()
	*n = uintptr(v)
}

// nextInMem returns the chunk immediately following c in memory, or
// nilChunk if c is the last chunk before heapEnd.
func (c chunk) nextInMem(heapEnd uintptr) chunk {
	n := c.addr() + c.units()*unitSize
	if n == heapEnd {
		return nilChunk
	}
	return chunk(n)
}

// prevInMem returns the chunk immediately preceding c in memory, found
// in O(1) via c's left neighbor's footer, or nilChunk if c is the first
// chunk at heapStart.
func (c chunk) prevInMem(heapStart uintptr) chunk {
	if c.addr() == heapStart {
		return nilChunk
	}
	footer := (*uintptr)(unsafe.Pointer(c.addr() - unitSize))
	prevUnits := *footer
	return chunk(c.addr() - prevUnits*unitSize)
}

// toPayload returns the user-visible payload address of an IN_USE chunk:
// one unit past the chunk base.
func (c chunk) toPayload() unsafe.Pointer {
	return unsafe.Pointer(c.addr() + unitSize)
}

// chunkFromPayload recovers the owning chunk from a payload address
// previously returned by toPayload.
func chunkFromPayload(p unsafe.Pointer) chunk {
	return chunk(uintptr(p) - unitSize)
}

// payloadUnits returns the number of whole units available to the
// caller in c: its units minus the header and footer unit.
func (c chunk) payloadUnits() uintptr {
	return c.units() - 2
}

// bytesToUnits converts a requested payload size in bytes to a total
// chunk size in units, including the header unit. Payload bytes beyond
// what a single unit can describe round up; the +1 accounts for the
// header (spec.md §3). The footer unit, always present in this layout,
// is not included; Malloc adds it.
func bytesToUnits(bytes uintptr) uintptr {
	return (bytes+unitSize-1)/unitSize + 1
}

// unitsToBytes converts a unit count to a byte count.
func unitsToBytes(units uintptr) uintptr {
	return units * unitSize
}

// chunkIsValid checks the per-chunk invariants from spec.md §4.1: it
// lies within the heap, carries a sane size, fits within the heap end,
// has a recognized status, and (since this layout always uses a footer)
// its footer agrees with its header.
func chunkIsValid(c chunk, heapStart, heapEnd uintptr) (bool, string) {
	if c.addr() < heapStart || c.addr() >= heapEnd {
		return false, "chunk address outside heap bounds"
	}
	u := c.units()
	if u < minUnitsPerChunk {
		return false, "chunk smaller than minUnitsPerChunk"
	}
	if c.addr()+u*unitSize > heapEnd {
		return false, "chunk extends past heap end"
	}
	s := c.getStatus()
	if s != statusFree && s != statusInUse {
		return false, "chunk has unrecognized status"
	}
	if *c.footerWord() != u {
		return false, "chunk footer disagrees with header"
	}
	return true, ""
}
