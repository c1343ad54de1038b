package systick

import "omibyte.io/cortexm/cortexm"

// scheduled lives as long as the program: the SysTick slot points at
// trampoline for as long as nothing else replaces it.
var scheduled struct {
	syst     *cortexm.SysTick
	callback func()
}

// trampoline is the SysTick handler. It stops the counter so the event
// fires once, then hands over to the scheduled callback, which may schedule
// again.
func trampoline() {
	if scheduled.syst == nil {
		return
	}
	scheduled.syst.CSR.SetENABLE(false)

	if callback := scheduled.callback; callback != nil {
		callback()
	}
}
