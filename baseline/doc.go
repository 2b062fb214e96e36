// Package baseline implements the two simplest allocation strategies kept
// around as reference points for the segregated free-list allocator in
// the parent package.
//
// # Bump
//
// Bump is append-only: every allocation extends the backing buffer by
// the request rounded up to the widest scalar alignment, and Free does
// nothing. It has no internal
// fragmentation bookkeeping at all.
//
// # PaddedBump
//
//	a := baseline.NewPaddedBump(0) // default chunk size
//	defer a.Release()
//
//	buf := a.AllocBytes(1024)
//	ptr := baseline.Alloc[MyStruct](a)
//	slice := baseline.AllocSlice[int](a, 100)
//
//	a.Reset() // bulk reclamation, O(number of chunks)
//
// PaddedBump grows ahead of need in chunks (64 KiB by default) and
// bump-allocates within the current chunk, the same strategy the
// original C heap manager's "padded" variant uses to amortize the cost
// of asking the operating system for more memory. Neither allocator
// reuses memory freed by an individual Free call — both exist only to
// make the cost of the parent package's free-list bookkeeping visible by
// comparison.
//
// For concurrent access, use SafePaddedBump, a mutex-protected wrapper.
package baseline
