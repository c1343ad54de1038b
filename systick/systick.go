// Package systick turns the Cortex-M SysTick counter into a one-shot timer.
//
// At most one callback is pending at a time. Scheduling a new one replaces
// the old one whether or not it fired.
package systick

import (
	"fmt"
	"time"

	"omibyte.io/cortexm/cortexm"
	"omibyte.io/cortexm/interrupt"
	"omibyte.io/cortexm/peripheral"
)

// ClockSource selects what drives the counter.
type ClockSource uint8

const (
	// External uses the implementation defined reference clock.
	External ClockSource = iota
	// Processor uses the core clock.
	Processor
)

// Timer is the SysTick one-shot timer.
type Timer struct {
	ctl       *interrupt.Controller
	syst      *cortexm.SysTick
	frequency peripheral.Hertz
}

var _ peripheral.Timer = (*Timer)(nil)

// New configures the counter to run from source at frequency and leaves it
// stopped. The vector table of ctl must already be initialized, since the
// timer installs its own handler into it.
func New(ctl *interrupt.Controller, frequency peripheral.Hertz, source ClockSource) (*Timer, error) {
	if !ctl.Initialized() {
		return nil, fmt.Errorf("%w: systick needs an initialized vector table", peripheral.ErrOperationNotPermitted)
	}

	t := &Timer{
		ctl:  ctl,
		syst: ctl.Registers().SYST,
	}
	t.RegisterCPUFrequency(frequency, source)
	return t, nil
}

// RegisterCPUFrequency tells the timer the frequency of the clock driving it.
// The counter is stopped, so anything scheduled is dropped.
func (t *Timer) RegisterCPUFrequency(frequency peripheral.Hertz, source ClockSource) {
	t.stop()
	t.frequency = frequency

	// Zeroing the current value while counting suppresses the reload, which
	// halts the count.
	t.syst.CVR.Clear()

	control := uint32(cortexm.SYST_CSR_TICKINT)
	if source == Processor {
		control |= cortexm.SYST_CSR_CLKSOURCE
	}
	t.syst.CSR.Set(control)
}

// Frequency returns the frequency the timer converts delays with.
func (t *Timer) Frequency() peripheral.Hertz {
	return t.frequency
}

// IsRunning reports whether the counter is counting.
func (t *Timer) IsRunning() bool {
	return t.syst.CSR.GetENABLE()
}

// Cancel stops the counter. The reload value is kept.
func (t *Timer) Cancel() {
	t.stop()
}

// Schedule runs callback from the SysTick exception once delay has passed.
// Delays shorter than one cycle still fire after one cycle. Delays longer
// than the 24-bit reload register holds are rejected with
// peripheral.ErrInvalidArgument and leave the timer untouched. So does a
// vector table that is no longer installed, with
// peripheral.ErrOperationNotPermitted.
func (t *Timer) Schedule(callback func(), delay time.Duration) error {
	if !t.ctl.Initialized() {
		return fmt.Errorf("%w: systick needs an initialized vector table", peripheral.ErrOperationNotPermitted)
	}

	reload, err := Reload(t.frequency, delay)
	if err != nil {
		return err
	}

	t.stop()
	t.ctl.ClearPending(interrupt.SysTick)

	// The vector table slot can only hold a code address, so the callback is
	// kept here for the trampoline to pick up.
	scheduled.syst = t.syst
	scheduled.callback = callback
	t.ctl.Enable(interrupt.SysTick, trampoline)

	t.syst.CVR.Clear()
	t.syst.RVR.SetRELOAD(reload)

	// Starting always counts down from the reload value.
	t.start()
	return nil
}

// SetPriority sets the priority of the SysTick exception.
func (t *Timer) SetPriority(priority uint8) {
	t.ctl.SetPriority(interrupt.SysTick, priority)
}

// Close stops the counter and disables the SysTick interrupt. The trampoline
// stays in the vector table until something replaces it.
func (t *Timer) Close() error {
	t.stop()
	t.ctl.Disable(interrupt.SysTick)
	return nil
}

func (t *Timer) start() {
	t.syst.CSR.SetENABLE(true)
}

func (t *Timer) stop() {
	t.syst.CSR.SetENABLE(false)
}

// Reload converts delay at frequency into a reload value. Anything below two
// cycles becomes one.
func Reload(frequency peripheral.Hertz, delay time.Duration) (uint32, error) {
	cycles := frequency.Cycles(delay)
	switch {
	case cycles <= 1:
		return 1, nil
	case cycles > cortexm.SYST_RVR_MAX:
		return 0, fmt.Errorf("%w: %v at %v is %d cycles, reload holds at most %d",
			peripheral.ErrInvalidArgument, delay, frequency, cycles, cortexm.SYST_RVR_MAX)
	}
	return uint32(cycles), nil
}

// MaxDelay returns the longest delay a single reload covers at frequency.
func MaxDelay(frequency peripheral.Hertz) time.Duration {
	return time.Duration(float64(cortexm.SYST_RVR_MAX) / float64(frequency) * float64(time.Second))
}
