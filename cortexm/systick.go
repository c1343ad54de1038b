package cortexm

import (
	"unsafe"

	"omibyte.io/cortexm/volatile"
)

var (
	SYST = (*SysTick)(unsafe.Pointer(uintptr(0xE000E010)))
)

type SysTick struct {
	CSR   SYST_CSR
	RVR   SYST_RVR
	CVR   SYST_CVR
	CALIB SYST_CALIB
}

const (
	// SYST_CSR_ENABLE starts the countdown from the reload value. Clearing it
	// stops the counter; setting it again restarts the count.
	SYST_CSR_ENABLE = 0x1 << 0
	// SYST_CSR_TICKINT pends the SysTick exception when the count falls from
	// 1 to 0.
	SYST_CSR_TICKINT = 0x1 << 1
	// SYST_CSR_CLKSOURCE selects the processor clock when set, the external
	// reference clock when clear.
	SYST_CSR_CLKSOURCE = 0x1 << 2
	// SYST_CSR_COUNTFLAG is set when the count falls from 1 to 0 and cleared
	// by the next read of CSR.
	SYST_CSR_COUNTFLAG = 0x1 << 16

	// SYST_RVR_MAX is the largest value the 24-bit reload field holds.
	SYST_RVR_MAX = 0x00FFFFFF
)

type SYST_CSR uint32

func (reg *SYST_CSR) Get() uint32 {
	return volatile.LoadUint32((*uint32)(reg))
}

func (reg *SYST_CSR) Set(value uint32) {
	volatile.StoreUint32((*uint32)(reg), value)
}

func (reg *SYST_CSR) SetENABLE(enable bool) {
	if enable {
		volatile.SetBits((*uint32)(reg), SYST_CSR_ENABLE)
	} else {
		volatile.ClearBits((*uint32)(reg), SYST_CSR_ENABLE)
	}
}

func (reg *SYST_CSR) GetENABLE() bool {
	return volatile.LoadUint32((*uint32)(reg))&SYST_CSR_ENABLE != 0
}

func (reg *SYST_CSR) GetTICKINT() bool {
	return volatile.LoadUint32((*uint32)(reg))&SYST_CSR_TICKINT != 0
}

func (reg *SYST_CSR) GetCLKSOURCE() bool {
	return volatile.LoadUint32((*uint32)(reg))&SYST_CSR_CLKSOURCE != 0
}

func (reg *SYST_CSR) GetCOUNTFLAG() bool {
	return volatile.LoadUint32((*uint32)(reg))&SYST_CSR_COUNTFLAG != 0
}

type SYST_RVR uint32

func (reg *SYST_RVR) SetRELOAD(value uint32) {
	volatile.StoreUint32((*uint32)(reg), value&SYST_RVR_MAX)
}

func (reg *SYST_RVR) GetRELOAD() uint32 {
	return volatile.LoadUint32((*uint32)(reg))
}

type SYST_CVR uint32

// Clear zeroes the current value. Any write clears the register, and a write
// while counting suppresses the next reload, which is how a running count is
// stopped dead. Zeroing it this way never fires the exception.
func (reg *SYST_CVR) Clear() {
	volatile.StoreUint32((*uint32)(reg), 0)
}

func (reg *SYST_CVR) GetVALUE() uint32 {
	return volatile.LoadUint32((*uint32)(reg))
}

type SYST_CALIB uint32

func (reg *SYST_CALIB) GetTENMS() uint32 {
	return volatile.LoadUint32((*uint32)(reg)) & 0xFFFFFF
}

func (reg *SYST_CALIB) GetSKEW() bool {
	return volatile.LoadUint32((*uint32)(reg))&(0x1<<30) != 0
}

func (reg *SYST_CALIB) GetNOREF() bool {
	return volatile.LoadUint32((*uint32)(reg))&(0x1<<31) != 0
}
