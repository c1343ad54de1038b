package peripheral

import "time"

// Timer runs a single callback once after a delay. Scheduling again
// replaces any callback that has not fired yet.
type Timer interface {
	IsRunning() bool
	Cancel()
	Schedule(callback func(), delay time.Duration) error
}

// SteadyClock is a monotonic counter ticking at Frequency.
type SteadyClock interface {
	Frequency() Hertz
	Uptime() uint64
}
