// Package heapmgr implements a general-purpose dynamic memory allocator
// on top of a pluggable region of raw address space: segregated
// free-list bins, in-band chunk headers/footers, splitting and
// coalescing, and a debug-mode invariant validator.
//
//	h := heapmgr.New()
//	p := h.Malloc(128)
//	defer h.Free(p)
//
//	x := heapmgr.Alloc[MyStruct](h)
//	s := heapmgr.AllocSlice[int](h, 100)
//
// The region itself comes from a Provider, which models the operating
// system's program-break/mmap growth protocol: monotonic, never
// shrinking, refusing outright when it cannot grow further. New uses
// the best Provider available on the current platform; NewHeap accepts
// any Provider, which is how tests and benchmarks substitute a
// deterministic, bounded one.
//
// Heap is not safe for concurrent use. SafeHeap wraps it behind a
// mutex for callers that need to share one allocator across goroutines.
//
// Building with -tags heapmgr_debug runs the full invariant validator
// after every Malloc and Free, panicking at the first broken invariant
// instead of letting heap corruption propagate silently. This is far
// too slow for production use; call IsValid directly instead if you
// need occasional checks in a normal build.
//
// For simpler reference points — and to make the cost of this
// package's free-list bookkeeping visible by comparison — see the
// baseline subpackage's Bump and PaddedBump allocators.
package heapmgr
