// Package interrupt owns the relocatable vector table of a Cortex-M core and
// the enable state of its interrupt lines.
//
// A Controller is bound to one set of register blocks. On a device there is
// exactly one, returned by Default. Nothing here locks: the relocation path
// runs with interrupts masked, and every other entry point is expected to be
// called from the foreground or with interrupts already masked.
package interrupt

import (
	"fmt"

	"omibyte.io/cortexm/cortexm"
)

// Controller manages the vector table and the NVIC of one core.
type Controller struct {
	regs  *cortexm.Registers
	table []uintptr

	// storage holds the tables InitializeFor allocated, keyed by the
	// maximum identifier they were sized for.
	storage map[IRQ][]uintptr
}

var defaultController = New(cortexm.Hardware())

// Default returns the controller for the running core.
func Default() *Controller {
	return defaultController
}

// New returns a controller driving regs. The controller starts
// uninitialized.
func New(regs *cortexm.Registers) *Controller {
	return &Controller{
		regs:    regs,
		storage: map[IRQ][]uintptr{},
	}
}

// Registers returns the register blocks the controller drives.
func (c *Controller) Registers() *cortexm.Registers {
	return c.regs
}

// Initialize relocates the vector table into table and populates it.
//
// The first two slots receive the stack top and reset entries of the table
// the core points at right now. The four fault slots receive their own
// handlers and every other slot receives DefaultHandler.
//
// table must be longer than CoreInterrupts and start on the boundary
// cortexm.TableAlignment requires, and it must outlive the controller. Passing
// the table that is already installed does nothing.
func (c *Controller) Initialize(table []uintptr) {
	if c.installed(table) {
		return
	}
	if len(table) <= CoreInterrupts {
		panic(fmt.Sprintf("interrupt: vector table of %d slots cannot hold the core exceptions", len(table)))
	}
	if !cortexm.TableAligned(table) {
		panic(fmt.Sprintf("interrupt: vector table at %#x is not aligned to %d bytes",
			cortexm.TableAddress(table), cortexm.TableAlignment(len(table))))
	}

	// Read the boot record before anything changes.
	current := c.regs.SCS.VTOR.GetTBLOFF()
	stackTop := c.regs.Memory.LoadWord(current)
	reset := c.regs.Memory.LoadWord(current + cortexm.WordSize)

	c.regs.Mask.DisableInterrupts()

	table[TopOfStack.slot()] = stackTop
	table[Reset.slot()] = reset
	for i := NonMaskableInterrupt.slot(); i < len(table); i++ {
		table[i] = address(InitialHandler(IRQ(i - CoreInterrupts)))
	}

	c.table = table
	c.regs.SCS.VTOR.SetTBLOFF(cortexm.TableAddress(table))

	c.regs.Mask.EnableInterrupts()
}

// InitializeFor initializes the controller with a table sized for peripheral
// identifiers below max. The table is allocated on the first call for a
// given max and reused afterwards, so repeated calls with the same max do
// nothing. Calls with a different max allocate a second table and relocate
// to it.
func (c *Controller) InitializeFor(max IRQ) {
	if max <= 0 {
		panic(fmt.Sprintf("interrupt: maximum identifier must be positive, got %d", max))
	}

	table, ok := c.storage[max]
	if !ok {
		table = cortexm.AlignTable(int(max) + CoreInterrupts)
		c.storage[max] = table
	}
	c.Initialize(table)
}

// Revert masks every interrupt, disables every peripheral line and forgets
// the installed table. Interrupts stay masked until the next Initialize.
//
// Drivers holding interrupts stop working after this call. Only use it
// before any of them depend on their interrupts.
func (c *Controller) Revert() {
	c.regs.Mask.DisableInterrupts()
	c.regs.NVIC.DisableAll()
	c.table = nil
}

// Initialized reports whether VTOR points at the installed table. It reads
// the register every time, so a VTOR changed behind the controller's back
// counts as uninitialized.
func (c *Controller) Initialized() bool {
	if len(c.table) == 0 {
		return false
	}
	return c.regs.SCS.VTOR.GetTBLOFF() == cortexm.TableAddress(c.table)
}

// Table returns a read-only view of the installed table. The view is empty
// before Initialize and after Revert.
func (c *Controller) Table() Table {
	return Table{slots: c.table}
}

func (c *Controller) installed(table []uintptr) bool {
	return len(c.table) > 0 &&
		len(table) == len(c.table) &&
		cortexm.TableAddress(table) == cortexm.TableAddress(c.table)
}

// Table is a read-only view of a vector table.
type Table struct {
	slots []uintptr
}

// Len returns the number of slots, core slots included.
func (t Table) Len() int {
	return len(t.slots)
}

// Address returns the address of the first slot.
func (t Table) Address() uintptr {
	return cortexm.TableAddress(t.slots)
}

// Slot returns the entry at index i, counting the stack top slot as zero.
func (t Table) Slot(i int) uintptr {
	return t.slots[i]
}

// Entry returns the entry serving irq and whether irq has a slot.
func (t Table) Entry(irq IRQ) (uintptr, bool) {
	i := irq.slot()
	if i < 0 || i >= len(t.slots) {
		return 0, false
	}
	return t.slots[i], true
}
