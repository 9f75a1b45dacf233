// The soc package provides a hardware abstraction layer for the NEORV32 RISC-V
// system on chip.
//
// Every peripheral driver in the subpackages operates on a register block
// through the minimal [Bus] interface. On hardware that is [MMIO] at the
// peripheral's base address, in tests it's usually [Mem] or a model from the
// sim package. All hardware capabilities are directly exposed and in general
// unsafe. Drivers don't lock, callers must serialize access to a peripheral.
package soc
