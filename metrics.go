package heapmgr

// Stats is a point-in-time snapshot of a Heap's internal state, for
// monitoring and tests. Computing it walks every chunk in the heap, so
// it is O(chunk count), not O(1) — don't call it on a hot path.
type Stats struct {
	// HeapBytes is the total size of the managed region, in bytes.
	HeapBytes uintptr
	// InUseBytes is the sum of all IN_USE chunk sizes, header/footer
	// included.
	InUseBytes uintptr
	// FreeBytes is the sum of all FREE chunk sizes, header/footer
	// included.
	FreeBytes uintptr
	// InUseChunks is the number of IN_USE chunks.
	InUseChunks int
	// FreeChunks is the number of FREE chunks.
	FreeChunks int
	// LargestFreeBytes is the size of the single largest FREE chunk, or
	// zero if the heap has none.
	LargestFreeBytes uintptr
}

// Utilization returns the fraction of the managed region currently
// IN_USE, in the range [0, 1]. Returns 0 for an empty heap.
func (s Stats) Utilization() float64 {
	if s.HeapBytes == 0 {
		return 0
	}
	return float64(s.InUseBytes) / float64(s.HeapBytes)
}

// Stats computes a fresh snapshot of the heap's state.
func (h *Heap) Stats() Stats {
	s := Stats{HeapBytes: h.heapEnd - h.heapStart}
	if h.heapStart == h.heapEnd {
		return s
	}
	for c := chunk(h.heapStart); c != nilChunk; c = c.nextInMem(h.heapEnd) {
		bytes := unitsToBytes(c.units())
		switch c.getStatus() {
		case statusInUse:
			s.InUseBytes += bytes
			s.InUseChunks++
		case statusFree:
			s.FreeBytes += bytes
			s.FreeChunks++
			if bytes > s.LargestFreeBytes {
				s.LargestFreeBytes = bytes
			}
		}
	}
	return s
}
