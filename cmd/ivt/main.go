// Command ivt inspects vector table layouts and SysTick reload values for
// the Cortex-M parts in the target catalogue.
package main

import (
	"log"
)

func main() {
	log.SetFlags(0)
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
