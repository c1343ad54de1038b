package cortexm

import (
	"unsafe"

	"omibyte.io/cortexm/volatile"
)

var (
	DWT       = (*DataWatchpoint)(unsafe.Pointer(uintptr(0xE0001000)))
	CoreDebug = (*CoreDebugBlock)(unsafe.Pointer(uintptr(0xE000EDF0)))
)

type (
	// DataWatchpoint covers the counter half of the DWT block. The comparator
	// registers that follow PCSR are not used here.
	DataWatchpoint struct {
		CTRL     DWT_CTRL
		CYCCNT   DWT_CYCCNT
		CPICNT   uint32
		EXCCNT   uint32
		SLEEPCNT uint32
		LSUCNT   uint32
		FOLDCNT  uint32
		PCSR     uint32
	}

	CoreDebugBlock struct {
		DHCSR uint32
		DCRSR uint32
		DCRDR uint32
		DEMCR DEMCR
	}

	DWT_CTRL   uint32
	DWT_CYCCNT uint32
	DEMCR      uint32
)

func (reg *DWT_CTRL) SetCYCCNTENA(enable bool) {
	if enable {
		volatile.SetBits((*uint32)(reg), 0x1)
	} else {
		volatile.ClearBits((*uint32)(reg), 0x1)
	}
}

func (reg *DWT_CTRL) GetCYCCNTENA() bool {
	return volatile.LoadUint32((*uint32)(reg))&0x1 != 0
}

func (reg *DWT_CYCCNT) Get() uint32 {
	return volatile.LoadUint32((*uint32)(reg))
}

func (reg *DWT_CYCCNT) Set(value uint32) {
	volatile.StoreUint32((*uint32)(reg), value)
}

// SetTRCENA gates the DWT, ITM, ETM and TPIU blocks. None of them count
// until it is set.
func (reg *DEMCR) SetTRCENA(enable bool) {
	if enable {
		volatile.SetBits((*uint32)(reg), 0x1<<24)
	} else {
		volatile.ClearBits((*uint32)(reg), 0x1<<24)
	}
}

func (reg *DEMCR) GetTRCENA() bool {
	return volatile.LoadUint32((*uint32)(reg))&(0x1<<24) != 0
}
