//go:build tinygo && cortexm

package cortexm

import "device/arm"

func disableInterrupts() {
	arm.Asm("cpsid i")
}

func enableInterrupts() {
	arm.Asm("cpsie i")
}

func waitForInterrupt() {
	arm.Asm("wfi")
}

func waitForEvent() {
	arm.Asm("wfe")
}

func dataSyncBarrier() {
	arm.Asm("dsb 0xF")
}

func instructionBarrier() {
	arm.Asm("isb 0xF")
}
