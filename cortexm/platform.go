package cortexm

// DisableInterrupts masks every configurable exception. It compiles to a
// single cpsid i and does nothing on hosts.
func DisableInterrupts() {
	disableInterrupts()
}

// EnableInterrupts clears the global mask. It compiles to a single cpsie i
// and does nothing on hosts.
func EnableInterrupts() {
	enableInterrupts()
}

// WaitForInterrupt stops the core until an interrupt arrives.
func WaitForInterrupt() {
	waitForInterrupt()
}

// WaitForEvent stops the core until an event arrives.
func WaitForEvent() {
	waitForEvent()
}

// RequestReset asks the system to reset and returns. The reset lands some
// time later.
func RequestReset(regs *Registers) {
	dataSyncBarrier()
	regs.SCS.AIRCR.RequestReset()
	dataSyncBarrier()
}

// Reset requests a system reset and waits for it. It never returns.
func Reset(regs *Registers) {
	RequestReset(regs)

	// The reset is asynchronous
	for {
	}
}

// EnableFPU grants full access to coprocessors 10 and 11. Floating point
// instructions fault until this has run.
func EnableFPU(regs *Registers) {
	regs.SCS.CPACR.EnableFPU()
	dataSyncBarrier()
	instructionBarrier()
}
