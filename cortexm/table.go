package cortexm

import "unsafe"

const (
	// MinTableAlignment is the smallest boundary a relocated vector table is
	// placed on.
	MinTableAlignment = 512

	// WordSize is the width of one vector table slot on the running target.
	WordSize = unsafe.Sizeof(uintptr(0))
)

// TableAlignment returns the boundary a table of the given number of slots
// must start on: the smallest power of two holding the whole table, and never
// less than MinTableAlignment. VTOR ignores the low bits below it.
func TableAlignment(slots int) uintptr {
	return TableAlignmentFor(slots, WordSize)
}

// TableAlignmentFor is TableAlignment for a target whose slots are wordSize
// bytes wide.
func TableAlignmentFor(slots int, wordSize uintptr) uintptr {
	size := uintptr(slots) * wordSize
	align := uintptr(MinTableAlignment)
	for align < size {
		align <<= 1
	}
	return align
}

// AlignTable allocates a table of the given number of slots starting on the
// boundary TableAlignment requires. The Go heap never moves objects, so the
// alignment holds for the lifetime of the table.
func AlignTable(slots int) []uintptr {
	align := TableAlignment(slots)
	buf := make([]uintptr, slots+int(align/WordSize))
	offset := (align - TableAddress(buf)%align) % align
	start := int(offset / WordSize)
	return buf[start : start+slots : start+slots]
}

// TableAddress returns the address of the first slot of table, or zero for
// an empty table.
func TableAddress(table []uintptr) uintptr {
	if len(table) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&table[0]))
}

// TableAligned reports whether table starts on its required boundary.
func TableAligned(table []uintptr) bool {
	if len(table) == 0 {
		return false
	}
	return TableAddress(table)%TableAlignment(len(table)) == 0
}
