package cortexm

import (
	"unsafe"

	"omibyte.io/cortexm/volatile"
)

var (
	NVIC = (*NVIC_STR)(unsafe.Pointer(uintptr(0xE000E100)))
)

type (
	NVIC_STR struct {
		ISER [16]uint32
		_    [16]uint32
		ICER [16]uint32
		_    [16]uint32
		ISPR [16]uint32
		_    [16]uint32
		ICPR [16]uint32
		_    [16]uint32
		IABR [16]uint32
		_    [48]uint32
		IPR  [124]uint32
		_    [580]uint32
		STIR uint32
	}
)

// The set/clear registers are write-one. Each store carries a single bit so
// that no other line is touched, which also means no read-modify-write races
// with handlers toggling neighbouring lines.

func (n *NVIC_STR) EnableIRQ(line uint16) {
	if int(line>>5) >= len(n.ISER) {
		return
	}
	volatile.StoreUint32(&n.ISER[line>>5], 1<<(line&0x1F))
}

func (n *NVIC_STR) DisableIRQ(line uint16) {
	if int(line>>5) >= len(n.ICER) {
		return
	}
	volatile.StoreUint32(&n.ICER[line>>5], 1<<(line&0x1F))
}

func (n *NVIC_STR) IRQEnabled(line uint16) bool {
	if int(line>>5) >= len(n.ISER) {
		return false
	}
	return volatile.LoadUint32(&n.ISER[line>>5])&(1<<(line&0x1F)) != 0
}

// DisableAll masks every peripheral line at the controller.
func (n *NVIC_STR) DisableAll() {
	for i := range n.ICER {
		volatile.StoreUint32(&n.ICER[i], 0xFFFFFFFF)
	}
}

func (n *NVIC_STR) SetPending(line uint16) {
	if int(line>>5) >= len(n.ISPR) {
		return
	}
	volatile.StoreUint32(&n.ISPR[line>>5], 1<<(line&0x1F))
}

func (n *NVIC_STR) ClearPending(line uint16) {
	if int(line>>5) >= len(n.ICPR) {
		return
	}
	volatile.StoreUint32(&n.ICPR[line>>5], 1<<(line&0x1F))
}

func (n *NVIC_STR) Pending(line uint16) bool {
	if int(line>>5) >= len(n.ISPR) {
		return false
	}
	return volatile.LoadUint32(&n.ISPR[line>>5])&(1<<(line&0x1F)) != 0
}

// SetPriority updates the priority byte of a line. The byte lanes are packed
// four to a word and updated with a word-wide read-modify-write.
func (n *NVIC_STR) SetPriority(line uint16, priority uint8) {
	index := int(line) / 4
	if index >= len(n.IPR) {
		return
	}
	shift := (uint32(line) % 4) * 8
	value := volatile.LoadUint32(&n.IPR[index])
	value = (value &^ (0xFF << shift)) | uint32(priority)<<shift
	volatile.StoreUint32(&n.IPR[index], value)
}

func (n *NVIC_STR) Priority(line uint16) uint8 {
	index := int(line) / 4
	if index >= len(n.IPR) {
		return 0
	}
	shift := (uint32(line) % 4) * 8
	return uint8(volatile.LoadUint32(&n.IPR[index]) >> shift)
}
