package cortexm

import (
	"unsafe"

	"omibyte.io/cortexm/volatile"
)

// Memory reads words the core addresses directly, such as the entries of the
// vector table VTOR points to before relocation.
type Memory interface {
	LoadWord(addr uintptr) uintptr
}

// InterruptMask is the global interrupt mask. On the core it is PRIMASK.
type InterruptMask interface {
	DisableInterrupts()
	EnableInterrupts()
}

// Registers bundles every register block the interrupt core touches. It is
// the only place where addresses are turned into pointers; everything else
// goes through the named fields and accessors.
type Registers struct {
	NVIC      *NVIC_STR
	SCS       *SystemControlSpace
	SYST      *SysTick
	DWT       *DataWatchpoint
	CoreDebug *CoreDebugBlock
	Memory    Memory
	Mask      InterruptMask
}

// Hardware returns the register blocks at their architectural addresses.
func Hardware() *Registers {
	return &Registers{
		NVIC:      NVIC,
		SCS:       SCS,
		SYST:      SYST,
		DWT:       DWT,
		CoreDebug: CoreDebug,
		Memory:    bus{},
		Mask:      PRIMASK{},
	}
}

type bus struct{}

func (bus) LoadWord(addr uintptr) uintptr {
	return volatile.LoadUintptr((*uintptr)(unsafe.Pointer(addr)))
}

// PRIMASK masks interrupts with cpsid/cpsie.
type PRIMASK struct{}

func (PRIMASK) DisableInterrupts() {
	DisableInterrupts()
}

func (PRIMASK) EnableInterrupts() {
	EnableInterrupts()
}
