package sim

import (
	"math/bits"

	"github.com/clktmr/neorv32/soc"
	"github.com/clktmr/neorv32/soc/sysinfo"
)

// Default configuration of a new Machine
const (
	DefaultClock    = 100_000_000
	DefaultFeatures = sysinfo.DMEM | sysinfo.IODMA | sysinfo.IOXIRQ
	DefaultXIRQs    = 32
)

// Machine ties memory, peripherals and the CPU's fast interrupts together.
//
// Raised interrupts stay pending until they are enabled, then the handler
// installed with [Machine.Handle] is called. Like on a real hart, handlers
// aren't nested: interrupts raised by a handler are served after it returns.
type Machine struct {
	Memory  *Memory
	DMA     *DMA
	SysInfo *SysInfo
	XIRQ    *XIRQ

	mie, mip uint32
	inTrap   bool
	handlers [32]func()
}

func NewMachine() *Machine {
	m := &Machine{Memory: &Memory{}}
	m.DMA = NewDMA(m.Memory)
	m.DMA.OnDone = func() { m.Raise(soc.IrqDMA) }
	m.XIRQ = NewXIRQ(DefaultXIRQs, func() { m.Raise(soc.IrqXIRQ) })
	m.SysInfo = &SysInfo{Clock: DefaultClock, Features: DefaultFeatures}
	return m
}

// Handle installs the trap handler for irq. A nil handler discards the
// interrupt.
func (m *Machine) Handle(irq soc.FIRQ, handler func()) {
	m.handlers[irq&31] = handler
}

func (m *Machine) EnableIRQ(irq soc.FIRQ) {
	m.mie |= 1 << (irq & 31)
	m.dispatch()
}

func (m *Machine) DisableIRQ(irq soc.FIRQ) {
	m.mie &^= 1 << (irq & 31)
}

// Raise signals fast interrupt irq. The DMA controller observes all fast
// interrupts for automatic transfers.
func (m *Machine) Raise(irq soc.FIRQ) {
	m.DMA.Trigger(irq)
	m.mip |= 1 << (irq & 31)
	m.dispatch()
}

// Pending reports whether irq was raised but not served yet.
func (m *Machine) Pending(irq soc.FIRQ) bool {
	return m.mip&(1<<(irq&31)) != 0
}

func (m *Machine) dispatch() {
	if m.inTrap {
		return
	}
	m.inTrap = true
	defer func() { m.inTrap = false }()

	for m.mip&m.mie != 0 {
		irq := bits.TrailingZeros32(m.mip & m.mie)
		m.mip &^= 1 << irq
		if handler := m.handlers[irq]; handler != nil {
			handler()
		}
	}
}
