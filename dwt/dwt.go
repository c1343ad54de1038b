// Package dwt exposes the DWT cycle counter as a steady clock.
package dwt

import (
	"omibyte.io/cortexm/cortexm"
	"omibyte.io/cortexm/peripheral"
)

// Counter extends the 32-bit CYCCNT register to 64 bits. Uptime must be
// called at least once per counter wrap for the extension to hold.
type Counter struct {
	dwt       *cortexm.DataWatchpoint
	frequency peripheral.Hertz

	last uint32
	high uint64
}

var _ peripheral.SteadyClock = (*Counter)(nil)

// New enables trace, zeroes the cycle count and starts it. frequency is the
// core clock the counter runs at.
func New(regs *cortexm.Registers, frequency peripheral.Hertz) *Counter {
	regs.CoreDebug.DEMCR.SetTRCENA(true)
	regs.DWT.CYCCNT.Set(0)
	regs.DWT.CTRL.SetCYCCNTENA(true)

	return &Counter{
		dwt:       regs.DWT,
		frequency: frequency,
	}
}

// RegisterCPUFrequency records a new core clock. The count is left alone.
func (c *Counter) RegisterCPUFrequency(frequency peripheral.Hertz) {
	c.frequency = frequency
}

func (c *Counter) Frequency() peripheral.Hertz {
	return c.frequency
}

// Uptime returns the cycles counted since New.
func (c *Counter) Uptime() uint64 {
	count := c.dwt.CYCCNT.Get()
	if count < c.last {
		c.high += 1 << 32
	}
	c.last = count
	return c.high | uint64(count)
}
