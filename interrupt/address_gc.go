//go:build !tinygo

package interrupt

import "reflect"

// address returns the code address of h, or zero for nil. The gc toolchain
// gives every closure of one function literal the same code address.
func address(h Handler) uintptr {
	if h == nil {
		return 0
	}
	return reflect.ValueOf(h).Pointer()
}
