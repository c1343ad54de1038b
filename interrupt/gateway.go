package interrupt

import "omibyte.io/cortexm/volatile"

// Valid reports whether irq addresses a slot of the installed table. Nothing
// is valid before Initialize or after Revert.
func (c *Controller) Valid(irq IRQ) bool {
	if !c.Initialized() {
		return false
	}
	return irq >= TopOfStack && irq.slot() < len(c.table)
}

// Enable installs handler for irq and, for a peripheral line, unmasks the
// line at the NVIC. Core exceptions are always enabled, so only their slot
// changes. Invalid identifiers are ignored, as are nil handlers and handlers
// whose code address cannot be taken (see Handler).
//
// The slot write and the enable write are two separate stores. A line that
// is already enabled can fire between them and still run its old handler.
func (c *Controller) Enable(irq IRQ, handler Handler) {
	entry := address(handler)
	if entry == 0 || !c.Valid(irq) {
		return
	}

	volatile.StoreUintptr(&c.table[irq.slot()], entry)

	if irq >= 0 {
		c.regs.NVIC.EnableIRQ(uint16(irq))
	}
}

// Disable masks a peripheral line at the NVIC. The line keeps its handler.
// Core exceptions cannot be masked this way and invalid identifiers are
// ignored.
func (c *Controller) Disable(irq IRQ) {
	if !c.Valid(irq) || irq < 0 {
		return
	}
	c.regs.NVIC.DisableIRQ(uint16(irq))
}

// Verify reports whether handler is installed for irq and, for a peripheral
// line, whether the line is enabled. It is false for handlers Enable would
// ignore.
func (c *Controller) Verify(irq IRQ, handler Handler) bool {
	entry := address(handler)
	if entry == 0 || !c.Valid(irq) {
		return false
	}

	if volatile.LoadUintptr(&c.table[irq.slot()]) != entry {
		return false
	}

	if irq < 0 {
		return true
	}
	return c.regs.NVIC.IRQEnabled(uint16(irq))
}

// SetPriority sets the priority of irq. Peripheral lines are set at the
// NVIC and the configurable core exceptions (MemoryManagementFault through
// SysTick) in the system handler priority registers. The remaining core
// exceptions have fixed priorities and are ignored, as are invalid
// identifiers.
func (c *Controller) SetPriority(irq IRQ, priority uint8) {
	if !c.Valid(irq) {
		return
	}
	switch {
	case irq >= 0:
		c.regs.NVIC.SetPriority(uint16(irq), priority)
	case irq >= MemoryManagementFault:
		c.regs.SCS.SetSystemHandlerPriority(irq.slot(), priority)
	}
}

// Priority returns the priority of irq, or zero when it has none to read.
func (c *Controller) Priority(irq IRQ) uint8 {
	if !c.Valid(irq) {
		return 0
	}
	switch {
	case irq >= 0:
		return c.regs.NVIC.Priority(uint16(irq))
	case irq >= MemoryManagementFault:
		return c.regs.SCS.SystemHandlerPriority(irq.slot())
	}
	return 0
}

// SetPending pends irq. Besides peripheral lines only the NMI, PendSV and
// SysTick exceptions can be pended from software.
func (c *Controller) SetPending(irq IRQ) {
	if !c.Valid(irq) {
		return
	}
	switch {
	case irq >= 0:
		c.regs.NVIC.SetPending(uint16(irq))
	case irq == NonMaskableInterrupt:
		c.regs.SCS.ICSR.SetNMIPENDSET()
	case irq == PendSV:
		c.regs.SCS.ICSR.SetPENDSVSET()
	case irq == SysTick:
		c.regs.SCS.ICSR.SetPENDSTSET()
	}
}

// ClearPending removes a pending irq that has not been taken yet.
func (c *Controller) ClearPending(irq IRQ) {
	if !c.Valid(irq) {
		return
	}
	switch {
	case irq >= 0:
		c.regs.NVIC.ClearPending(uint16(irq))
	case irq == PendSV:
		c.regs.SCS.ICSR.SetPENDSVCLR()
	case irq == SysTick:
		c.regs.SCS.ICSR.SetPENDSTCLR()
	}
}

// Pending reports whether irq is waiting to be taken.
func (c *Controller) Pending(irq IRQ) bool {
	if !c.Valid(irq) {
		return false
	}
	switch {
	case irq >= 0:
		return c.regs.NVIC.Pending(uint16(irq))
	case irq == NonMaskableInterrupt:
		return c.regs.SCS.ICSR.GetNMIPENDSET()
	case irq == PendSV:
		return c.regs.SCS.ICSR.GetPENDSVSET()
	case irq == SysTick:
		return c.regs.SCS.ICSR.GetPENDSTSET()
	}
	return false
}
