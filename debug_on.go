//go:build heapmgr_debug

package heapmgr

import "fmt"

// debugCheck runs the full validator after every mutating operation
// when built with -tags heapmgr_debug, panicking immediately at the
// first broken invariant instead of letting a corrupted heap silently
// keep running. It is far too slow for production use, which is why
// it compiles to nothing without the build tag.
func (h *Heap) debugCheck(op string) {
	if ok, reason := IsValid(h); !ok {
		panic(fmt.Sprintf("heapmgr: invariant broken after %s: %s", op, reason))
	}
}
