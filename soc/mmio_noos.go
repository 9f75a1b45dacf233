//go:build noos

package soc

import (
	"embedded/mmio"
	"unsafe"

	"github.com/clktmr/neorv32/debug"
)

// MMIO is a [Bus] to a memory mapped register block.
type MMIO struct {
	base unsafe.Pointer
}

// NewMMIO returns the MMIO for the register block starting at base.
func NewMMIO(base unsafe.Pointer) MMIO {
	return MMIO{base}
}

func (m MMIO) reg(off uint32) *mmio.U32 {
	debug.Assert(off%4 == 0, "soc: unaligned register offset")
	return (*mmio.U32)(unsafe.Add(m.base, off))
}

func (m MMIO) Load(off uint32) uint32 {
	return m.reg(off).Load()
}

func (m MMIO) Store(off uint32, v uint32) {
	m.reg(off).Store(v)
}
