package soc

// Addr represents a physical address on the 32 bit system bus.
type Addr uint32

// Base addresses of the IO devices
const (
	BaseDMA     uintptr = 0xffff_ed00
	BaseXIRQ    uintptr = 0xffff_f300
	BaseSysInfo uintptr = 0xffff_fe00
)

// Bus gives access to the 32 bit registers of a single register block.
// Offsets are in bytes relative to the block's base address and must be word
// aligned.
type Bus interface {
	Load(off uint32) uint32
	Store(off uint32, v uint32)
}
