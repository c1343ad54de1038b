// Package volatile provides loads and stores that the compiler may not elide,
// reorder or merge. Every access to a memory-mapped register goes through here.
//
// The accessors are backed by sync/atomic. On ARMv7-M a 32-bit atomic load or
// store lowers to a single LDR/STR framed by barriers, which is exactly the
// access a device register expects.
package volatile

import "sync/atomic"

func LoadUint32(addr *uint32) (val uint32) {
	return atomic.LoadUint32(addr)
}

func StoreUint32(addr *uint32, val uint32) {
	atomic.StoreUint32(addr, val)
}

func LoadUintptr(addr *uintptr) (val uintptr) {
	return atomic.LoadUintptr(addr)
}

func StoreUintptr(addr *uintptr, val uintptr) {
	atomic.StoreUintptr(addr, val)
}

// SetBits performs a read-modify-write that sets every bit in mask.
func SetBits(addr *uint32, mask uint32) {
	StoreUint32(addr, LoadUint32(addr)|mask)
}

// ClearBits performs a read-modify-write that clears every bit in mask.
func ClearBits(addr *uint32, mask uint32) {
	StoreUint32(addr, LoadUint32(addr)&^mask)
}

// HasBits reports whether every bit in mask is set.
func HasBits(addr *uint32, mask uint32) bool {
	return LoadUint32(addr)&mask == mask
}
