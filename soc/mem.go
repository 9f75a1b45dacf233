package soc

// Access describes a single register access on a [Mem].
type Access struct {
	Store bool
	Off   uint32
	Val   uint32
}

// Mem is a [Bus] backed by ordinary memory, e.g. for testing drivers without
// hardware. Registers that were never written read as zero. Stores issued
// through the Bus interface are recorded and can be inspected with
// [Mem.Stores].
type Mem struct {
	regs   map[uint32]uint32
	stores []Access
}

func NewMem() *Mem {
	return &Mem{regs: make(map[uint32]uint32)}
}

func (m *Mem) Load(off uint32) uint32 {
	return m.regs[off]
}

func (m *Mem) Store(off uint32, v uint32) {
	m.regs[off] = v
	m.stores = append(m.stores, Access{Store: true, Off: off, Val: v})
}

// Set changes a register without recording the access. Use it to simulate
// the hardware updating its status.
func (m *Mem) Set(off uint32, v uint32) {
	m.regs[off] = v
}

// Stores returns all stores since creation or the last call to
// [Mem.ResetStores], oldest first.
func (m *Mem) Stores() []Access {
	return m.stores
}

func (m *Mem) ResetStores() {
	m.stores = nil
}
