package xirq

import "github.com/clktmr/neorv32/soc"

const baseAddr = soc.BaseXIRQ

// Register offsets
const (
	RegEIE  uint32 = 0x00 // channel enable
	RegEIP  uint32 = 0x04 // channel pending, write zero to clear
	RegESC  uint32 = 0x08 // active source, write to acknowledge
	RegTTYP uint32 = 0x0c // trigger type, 0 for level, 1 for edge
	RegTPOL uint32 = 0x10 // trigger polarity, 0 for low/falling, 1 for high/rising
)

// NumChannels is the maximum number of channels the controller can implement.
const NumChannels = 32
