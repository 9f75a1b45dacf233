// Command dmactl runs scripts of DMA controller commands against a simulated
// NEORV32 SoC. It's meant for trying out transfer configurations and for
// checking the driver's register sequences without hardware.
package main

import (
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("dmactl: ")

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
