package interrupt

// Handler is an interrupt service routine. The vector table stores only its
// code address, so a handler must be a top-level function. Closures and
// method values carry state the core cannot pass along; Enable ignores them
// where the compiler exposes that state, and Verify does not match them.
// Handlers that need state keep it in a package-level registry read by a
// top-level trampoline, the way the systick package does.
type Handler = func()

// InitialHandler returns the handler Initialize installs for irq, or nil for
// the two boot record slots, which are copied from the boot table instead.
func InitialHandler(irq IRQ) Handler {
	switch irq {
	case TopOfStack, Reset:
		return nil
	case HardFault:
		return HardFaultHandler
	case MemoryManagementFault:
		return MemoryManagementFaultHandler
	case BusFault:
		return BusFaultHandler
	case UsageFault:
		return UsageFaultHandler
	}
	return DefaultHandler
}

// The handlers below are installed by Initialize. Each one parks the core so
// that an unexpected exception is easy to spot under a debugger. Replace
// them with Enable before relying on the interrupt.

// DefaultHandler serves every slot without a dedicated handler.
func DefaultHandler() {
	for {
	}
}

// HardFaultHandler serves the hard fault slot.
func HardFaultHandler() {
	for {
	}
}

// MemoryManagementFaultHandler serves the memory management fault slot.
func MemoryManagementFaultHandler() {
	for {
	}
}

// BusFaultHandler serves the bus fault slot.
func BusFaultHandler() {
	for {
	}
}

// UsageFaultHandler serves the usage fault slot.
func UsageFaultHandler() {
	for {
	}
}
