package peripheral

// Interrupt is a single interrupt line whose handler can be swapped at
// runtime.
type Interrupt interface {
	Enable(handler func())
	Disable()
	Verify(handler func()) bool
	SetPriority(priority uint8)
}
