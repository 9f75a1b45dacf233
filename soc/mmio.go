//go:build !noos

package soc

import (
	"sync/atomic"
	"unsafe"

	"github.com/clktmr/neorv32/debug"
)

// MMIO is a [Bus] to a memory mapped register block.
//
// Atomic loads and stores keep the compiler from merging or eliding register
// accesses.
type MMIO struct {
	base unsafe.Pointer
}

// NewMMIO returns the MMIO for the register block starting at base.
func NewMMIO(base unsafe.Pointer) MMIO {
	return MMIO{base}
}

func (m MMIO) reg(off uint32) *uint32 {
	debug.Assert(off%4 == 0, "soc: unaligned register offset")
	return (*uint32)(unsafe.Add(m.base, off))
}

func (m MMIO) Load(off uint32) uint32 {
	return atomic.LoadUint32(m.reg(off))
}

func (m MMIO) Store(off uint32, v uint32) {
	atomic.StoreUint32(m.reg(off), v)
}
