package interrupt

import "strconv"

// IRQ names an interrupt. Negative values are the core exceptions, counted
// back from SysTick at -1. Non-negative values are peripheral lines.
type IRQ int16

const (
	TopOfStack            IRQ = -16
	Reset                 IRQ = -15
	NonMaskableInterrupt  IRQ = -14
	HardFault             IRQ = -13
	MemoryManagementFault IRQ = -12
	BusFault              IRQ = -11
	UsageFault            IRQ = -10
	Reserved7             IRQ = -9
	Reserved8             IRQ = -8
	Reserved9             IRQ = -7
	Reserved10            IRQ = -6
	SoftwareCall          IRQ = -5
	Reserved12            IRQ = -4
	Reserved13            IRQ = -3
	PendSV                IRQ = -2
	SysTick               IRQ = -1
)

// CoreInterrupts is the number of core exception slots at the head of every
// vector table.
const CoreInterrupts = 16

var coreNames = [CoreInterrupts]string{
	"TopOfStack",
	"Reset",
	"NonMaskableInterrupt",
	"HardFault",
	"MemoryManagementFault",
	"BusFault",
	"UsageFault",
	"Reserved7",
	"Reserved8",
	"Reserved9",
	"Reserved10",
	"SoftwareCall",
	"Reserved12",
	"Reserved13",
	"PendSV",
	"SysTick",
}

func (irq IRQ) String() string {
	if irq.Core() {
		return coreNames[irq.slot()]
	}
	return "IRQ" + strconv.Itoa(int(irq))
}

// Core reports whether irq is one of the processor's own exceptions.
func (irq IRQ) Core() bool {
	return irq >= TopOfStack && irq < 0
}

// slot maps an identifier onto its index in the vector table.
func (irq IRQ) slot() int {
	return int(irq) + CoreInterrupts
}
