package heapmgr

import "fmt"

// IsValid walks the heap and its bins, checking every invariant a
// correctly functioning allocator must maintain. It returns false and a
// description of the first violation found, or true if none is found.
// It is safe to call at any point between Malloc/Free calls (not
// concurrently with one): a live heap never violates these invariants.
//
// Checks performed:
//   - if heapStart == heapEnd (a never-grown heap), every bin must be
//     empty and the memory walk is skipped entirely;
//   - every chunk, walked left to right from heapStart, is internally
//     well formed (chunkIsValid, which includes footer/header agreement)
//     and the chunk that follows it finds it again through its footer
//     (prevInMem);
//   - the memory walk consumes exactly the span [heapStart, heapEnd)
//     with no gaps or overlaps;
//   - no two adjacent chunks are both FREE (a missed coalesce);
//   - every bin's list is acyclic and each member is FREE, sits in the
//     bin its size maps to, and is doubly linked consistently;
//   - the set of FREE chunks found while walking memory matches the set
//     of chunks found across all bins exactly.
func IsValid(h *Heap) (bool, string) {
	if h.heapStart == h.heapEnd {
		for idx := 0; idx < binMax; idx++ {
			if h.bins[idx] != nilChunk {
				return false, fmt.Sprintf("heap is empty but bin %d is non-empty", idx)
			}
		}
		return true, ""
	}

	memFree := make(map[chunk]bool)

	c := chunk(h.heapStart)
	for c != nilChunk {
		if ok, reason := chunkIsValid(c, h.heapStart, h.heapEnd); !ok {
			return false, fmt.Sprintf("chunk %#x: %s", uintptr(c), reason)
		}
		if c.getStatus() == statusFree {
			memFree[c] = true
		}
		next := c.nextInMem(h.heapEnd)
		if next != nilChunk {
			if c.getStatus() == statusFree && next.getStatus() == statusFree {
				return false, fmt.Sprintf("adjacent free chunks at %#x and %#x were not coalesced", uintptr(c), uintptr(next))
			}
			if p := next.prevInMem(h.heapStart); p != c {
				return false, fmt.Sprintf("chunk %#x footer does not identify %#x as its left neighbor", uintptr(next), uintptr(c))
			}
		}
		c = next
	}

	binFree := make(map[chunk]bool)
	for idx := 0; idx < binMax; idx++ {
		head := h.bins[idx]
		if head == nilChunk {
			continue
		}
		slow, fast := head, head
		for {
			if fast == nilChunk {
				break
			}
			fast = fast.nextInList()
			if fast == nilChunk {
				break
			}
			fast = fast.nextInList()
			slow = slow.nextInList()
			if slow == fast {
				return false, fmt.Sprintf("cycle detected in bin %d free list", idx)
			}
		}

		var prev chunk = nilChunk
		for cur := head; cur != nilChunk; cur = cur.nextInList() {
			if cur.getStatus() != statusFree {
				return false, fmt.Sprintf("chunk %#x in bin %d is not FREE", uintptr(cur), idx)
			}
			if got := binIndex(cur.units()); got != idx {
				return false, fmt.Sprintf("chunk %#x of %d units sits in bin %d, belongs in bin %d", uintptr(cur), cur.units(), idx, got)
			}
			if cur.prevInList() != prev {
				return false, fmt.Sprintf("chunk %#x in bin %d has inconsistent backward link", uintptr(cur), idx)
			}
			if binFree[cur] {
				return false, fmt.Sprintf("chunk %#x appears in more than one bin", uintptr(cur))
			}
			binFree[cur] = true
			prev = cur
		}
	}

	if len(memFree) != len(binFree) {
		return false, fmt.Sprintf("memory walk found %d free chunks but bins hold %d", len(memFree), len(binFree))
	}
	for c := range memFree {
		if !binFree[c] {
			return false, fmt.Sprintf("free chunk %#x found in memory walk is missing from its bin", uintptr(c))
		}
	}

	return true, ""
}
