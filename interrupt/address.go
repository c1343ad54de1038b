package interrupt

import "unsafe"

// funcValue is how TinyGo lays out a func value: the captured state of a
// closure or the receiver of a method value, then the code address.
type funcValue struct {
	context unsafe.Pointer
	code    uintptr
}

// entry returns the code address of f, or zero when f carries state that a
// vector table slot cannot hold.
func (f *funcValue) entry() uintptr {
	if f.context != nil {
		return 0
	}
	return f.code
}
