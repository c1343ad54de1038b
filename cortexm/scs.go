package cortexm

import (
	"unsafe"

	"omibyte.io/cortexm/volatile"
)

var (
	SCS = (*SystemControlSpace)(unsafe.Pointer(uintptr(0xE000ED00)))
)

type (
	SystemControlSpace struct {
		CPUID SCS_CPUID
		ICSR  SCS_ICSR
		VTOR  SCS_VTOR
		AIRCR SCS_AIRCR
		SCR   SCS_SCR
		CCR   SCS_CCR
		SHPR  [3]SCS_SHPR
		SHCSR SCS_SHCSR
		CFSR  SCS_CFSR
		HFSR  SCS_HFSR
		DFSR  SCS_DFSR
		MMFAR SCS_MMFAR
		BFAR  SCS_BFAR
		AFSR  SCS_AFSR
		_     [18]uint32
		CPACR SCS_CPACR
	}

	SCS_CPUID uint32
	SCS_ICSR  uint32
	SCS_AIRCR uint32
	SCS_SCR   uint32
	SCS_CCR   uint32
	SCS_SHPR  uint32
	SCS_SHCSR uint32
	SCS_CFSR  uint32
	SCS_HFSR  uint32
	SCS_DFSR  uint32
	SCS_MMFAR uint32
	SCS_BFAR  uint32
	SCS_AFSR  uint32
	SCS_CPACR uint32

	// SCS_VTOR is pointer sized so that a stand-in block can hold the address
	// of a table living in host memory. On the 32-bit core it is the plain
	// 32-bit register.
	SCS_VTOR uintptr
)

const (
	icsrPENDSTCLR  = 0x1 << 25
	icsrPENDSTSET  = 0x1 << 26
	icsrPENDSVCLR  = 0x1 << 27
	icsrPENDSVSET  = 0x1 << 28
	icsrNMIPENDSET = 0x1 << 31

	aircrVECTKEY     = 0x5FA << 16
	aircrSYSRESETREQ = 0x1 << 2

	cpacrCP10 = 0x3 << 20
	cpacrCP11 = 0x3 << 22
)

func (reg *SCS_VTOR) GetTBLOFF() uintptr {
	return volatile.LoadUintptr((*uintptr)(reg))
}

func (reg *SCS_VTOR) SetTBLOFF(addr uintptr) {
	volatile.StoreUintptr((*uintptr)(reg), addr)
}

// The ICSR set/clear bits are write-one; zeros written to the others are
// ignored, so each setter stores its bit alone.

func (reg *SCS_ICSR) GetPENDSVSET() bool {
	return volatile.LoadUint32((*uint32)(reg))&icsrPENDSVSET != 0
}

func (reg *SCS_ICSR) SetPENDSVSET() {
	volatile.StoreUint32((*uint32)(reg), icsrPENDSVSET)
}

func (reg *SCS_ICSR) SetPENDSVCLR() {
	volatile.StoreUint32((*uint32)(reg), icsrPENDSVCLR)
}

func (reg *SCS_ICSR) GetPENDSTSET() bool {
	return volatile.LoadUint32((*uint32)(reg))&icsrPENDSTSET != 0
}

func (reg *SCS_ICSR) SetPENDSTSET() {
	volatile.StoreUint32((*uint32)(reg), icsrPENDSTSET)
}

func (reg *SCS_ICSR) SetPENDSTCLR() {
	volatile.StoreUint32((*uint32)(reg), icsrPENDSTCLR)
}

func (reg *SCS_ICSR) GetNMIPENDSET() bool {
	return volatile.LoadUint32((*uint32)(reg))&icsrNMIPENDSET != 0
}

func (reg *SCS_ICSR) SetNMIPENDSET() {
	volatile.StoreUint32((*uint32)(reg), icsrNMIPENDSET)
}

// configurableHandler reports whether exception n has a priority byte in
// SHPR1-3. Numbers 7 to 10 and 13 are reserved and their bytes are RES0.
func configurableHandler(n int) bool {
	switch {
	case n < 4 || n > 15:
		return false
	case n >= 7 && n <= 10, n == 13:
		return false
	}
	return true
}

// SetSystemHandlerPriority sets the priority of system handler n, where n is
// the exception number (4 for MemManage through 15 for SysTick). Reserved
// numbers and exceptions with a fixed priority are ignored.
func (s *SystemControlSpace) SetSystemHandlerPriority(n int, priority uint8) {
	if !configurableHandler(n) {
		return
	}
	reg := (*uint32)(&s.SHPR[(n-4)/4])
	shift := uint32((n-4)%4) * 8
	v := volatile.LoadUint32(reg)
	v = (v &^ (0xFF << shift)) | uint32(priority)<<shift
	volatile.StoreUint32(reg, v)
}

func (s *SystemControlSpace) SystemHandlerPriority(n int) uint8 {
	if !configurableHandler(n) {
		return 0
	}
	reg := (*uint32)(&s.SHPR[(n-4)/4])
	shift := uint32((n-4)%4) * 8
	return uint8(volatile.LoadUint32(reg) >> shift)
}

// RequestReset asks the core for a system reset. The write is ignored by the
// processor unless VECTKEY carries 0x5FA.
func (reg *SCS_AIRCR) RequestReset() {
	volatile.StoreUint32((*uint32)(reg), aircrVECTKEY|aircrSYSRESETREQ)
}

// EnableFPU grants full access to coprocessors 10 and 11. On a core without
// an FPU the next floating point instruction raises a UsageFault.
func (reg *SCS_CPACR) EnableFPU() {
	volatile.SetBits((*uint32)(reg), cpacrCP10|cpacrCP11)
}
