//go:build !unix

package heapmgr

// newDefaultProvider falls back to the portable slice-backed Provider on
// platforms without a unix-style mmap/mprotect path.
func newDefaultProvider() Provider {
	return newSliceProvider(defaultReservation)
}

// defaultReservation mirrors the unix Provider's virtual reservation size
// so Stats and tests behave consistently across platforms.
const defaultReservation = 1 << 30 // 1 GiB
