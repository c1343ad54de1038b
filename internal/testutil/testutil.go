// Package testutil builds register blocks in ordinary memory so the
// interrupt core can run on a host.
//
// The stand-in blocks are plain memory: a write-one-to-set register keeps
// exactly the word last stored to it, so a set and its matching clear are
// two independent words rather than one line state.
package testutil

import (
	"fmt"

	"omibyte.io/cortexm/cortexm"
)

const (
	// BootStackTop and BootReset are the first two words of the boot vector
	// table a Stub starts with.
	BootStackTop uintptr = 0x20008000
	BootReset    uintptr = 0x00000411
)

// Stub owns every register block a cortexm.Registers points at.
type Stub struct {
	Registers *cortexm.Registers
	Mask      *CountingMask

	NVIC      cortexm.NVIC_STR
	SCS       cortexm.SystemControlSpace
	SYST      cortexm.SysTick
	DWT       cortexm.DataWatchpoint
	CoreDebug cortexm.CoreDebugBlock

	// Boot is the table VTOR points to out of reset.
	Boot [2]uintptr

	regions [][]uintptr
}

func NewStub() *Stub {
	s := &Stub{
		Mask: &CountingMask{},
		Boot: [2]uintptr{BootStackTop, BootReset},
	}
	s.Registers = &cortexm.Registers{
		NVIC:      &s.NVIC,
		SCS:       &s.SCS,
		SYST:      &s.SYST,
		DWT:       &s.DWT,
		CoreDebug: &s.CoreDebug,
		Memory:    s,
		Mask:      s.Mask,
	}
	s.Map(s.Boot[:])
	s.SCS.VTOR.SetTBLOFF(cortexm.TableAddress(s.Boot[:]))
	return s
}

// Map makes words readable through the stub's Memory.
func (s *Stub) Map(words []uintptr) {
	s.regions = append(s.regions, words)
}

// Table allocates an aligned vector table and maps it.
func (s *Stub) Table(slots int) []uintptr {
	table := cortexm.AlignTable(slots)
	s.Map(table)
	return table
}

// LoadWord resolves addr against the mapped regions. Reads anywhere else
// panic, since on the core they would read whatever happens to live there.
func (s *Stub) LoadWord(addr uintptr) uintptr {
	for _, region := range s.regions {
		base := cortexm.TableAddress(region)
		end := base + uintptr(len(region))*cortexm.WordSize
		if addr >= base && addr < end && (addr-base)%cortexm.WordSize == 0 {
			return region[(addr-base)/cortexm.WordSize]
		}
	}
	panic(fmt.Sprintf("testutil: read of unmapped address %#x", addr))
}

// CountingMask records global mask transitions.
type CountingMask struct {
	Disabled int
	Enabled  int
	Masked   bool

	OnDisable func()
	OnEnable  func()
}

func (m *CountingMask) DisableInterrupts() {
	m.Disabled++
	m.Masked = true
	if m.OnDisable != nil {
		m.OnDisable()
	}
}

func (m *CountingMask) EnableInterrupts() {
	m.Enabled++
	m.Masked = false
	if m.OnEnable != nil {
		m.OnEnable()
	}
}
