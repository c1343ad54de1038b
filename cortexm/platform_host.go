//go:build !(tinygo && cortexm)

package cortexm

func disableInterrupts() {}

func enableInterrupts() {}

func waitForInterrupt() {}

func waitForEvent() {}

func dataSyncBarrier() {}

func instructionBarrier() {}
