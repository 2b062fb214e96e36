//go:build !heapmgr_debug

package heapmgr

// debugCheck is a no-op in production builds; see debug_on.go.
func (h *Heap) debugCheck(op string) {}
