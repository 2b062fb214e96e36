//go:build unix

package heapmgr

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// unixProvider is the production Provider on unix targets: it reserves a
// large span of virtual address space up front with mmap(PROT_NONE),
// then commits pages on demand with mprotect(PROT_READ|PROT_WRITE) as
// Extend is called. Reserving (rather than mmap-ing exactly what's
// needed each time) gives the engine the fixed base address it requires
// — chunk metadata stores absolute addresses into this region, and an
// mmap that moved on every growth would invalidate them.
type unixProvider struct {
	mem      []byte
	reserved uintptr
}

// defaultReservation is the virtual address space reserved up front by
// newUnixProvider. It costs no physical memory until committed via
// mprotect, so it can be generous.
const defaultReservation = 1 << 30 // 1 GiB

func newUnixProvider() (*unixProvider, error) {
	mem, err := unix.Mmap(-1, 0, defaultReservation,
		unix.PROT_NONE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, err
	}
	return &unixProvider{mem: mem}, nil
}

func (p *unixProvider) Base() unsafe.Pointer {
	if len(p.mem) == 0 {
		return nil
	}
	return unsafe.Pointer(&p.mem[0])
}

func (p *unixProvider) Reserved() uintptr {
	return p.reserved
}

func (p *unixProvider) Extend(n uintptr) bool {
	newReserved := p.reserved + n
	if newReserved < p.reserved { // overflow
		return false
	}
	if newReserved > uintptr(len(p.mem)) {
		return false
	}
	if err := unix.Mprotect(p.mem[p.reserved:newReserved], unix.PROT_READ|unix.PROT_WRITE); err != nil {
		return false
	}
	p.reserved = newReserved
	return true
}

// newDefaultProvider picks the best Provider available on this platform:
// a real mmap/mprotect-backed reservation on unix, falling back to the
// portable slice-backed Provider if the reservation itself fails (e.g.
// under a restrictive sandbox).
func newDefaultProvider() Provider {
	if p, err := newUnixProvider(); err == nil {
		return p
	}
	return newSliceProvider(defaultReservation)
}
