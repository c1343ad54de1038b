//go:build tinygo

package interrupt

import "unsafe"

// address returns the code address the core branches to for h, or zero for
// nil and for handlers carrying state.
func address(h Handler) uintptr {
	if h == nil {
		return 0
	}
	return (*funcValue)(unsafe.Pointer(&h)).entry()
}
