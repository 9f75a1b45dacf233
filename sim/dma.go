package sim

import (
	"math/bits"

	"github.com/clktmr/neorv32/debug"
	"github.com/clktmr/neorv32/soc"
	"github.com/clktmr/neorv32/soc/dma"
)

// DMA models the DMA controller's register block and transfer engine. It moves
// one element per [DMA.Tick].
//
// Status bits of the control register are read-only, writing the control
// register never changes them unless the controller is disabled. Writes to the
// address and transfer type registers are ignored while busy.
type DMA struct {
	mem *Memory

	cmd    dma.Ctrl
	status dma.Ctrl
	src    uint32
	dst    uint32
	ttype  uint32

	rd, wr soc.Addr // current addresses of the transfer in progress
	left   uint32
	fences int
	inDone bool

	// OnDone is called whenever a transfer stops, successful or not. Triggers
	// signaled while it runs are ignored, so a transfer selecting the
	// controller's own interrupt is not restarted by its completion.
	OnDone func()
}

func NewDMA(mem *Memory) *DMA {
	return &DMA{mem: mem}
}

func (d *DMA) Load(off uint32) uint32 {
	switch off {
	case dma.RegCtrl:
		return uint32(d.cmd | d.status)
	case dma.RegSrcBase:
		return d.src
	case dma.RegDstBase:
		return d.dst
	case dma.RegTType:
		return d.ttype
	}
	return 0
}

func (d *DMA) Store(off uint32, v uint32) {
	switch off {
	case dma.RegCtrl:
		d.cmd = dma.Ctrl(v) & dma.CtrlCommands
		if d.cmd&dma.CtrlEnable == 0 {
			d.reset()
		}
		return
	}

	if d.Busy() {
		return
	}

	switch off {
	case dma.RegSrcBase:
		d.src = v
	case dma.RegDstBase:
		d.dst = v
	case dma.RegTType:
		d.ttype = v
		if d.cmd&(dma.CtrlEnable|dma.CtrlAuto) == dma.CtrlEnable {
			d.start()
		}
	}
}

// Trigger signals fast interrupt irq to the controller. It starts a transfer
// with the current configuration if the controller is enabled, idle and in
// automatic mode with irq selected. Triggers are edges: a trigger signaled from
// within OnDone is lost.
func (d *DMA) Trigger(irq soc.FIRQ) {
	if irq < soc.FIRQ0 || irq > soc.FIRQ15 || d.Busy() || d.inDone {
		return
	}
	if d.cmd&(dma.CtrlEnable|dma.CtrlAuto) != dma.CtrlEnable|dma.CtrlAuto {
		return
	}
	if soc.Field(uint32(d.cmd), dma.FIRQSelShift, dma.FIRQSelWidth) != irq.Line() {
		return
	}
	d.start()
}

// Busy reports whether a transfer is in progress.
func (d *DMA) Busy() bool {
	return d.status&dma.CtrlBusy != 0
}

// Fences returns the number of memory barriers issued so far.
func (d *DMA) Fences() int {
	return d.fences
}

// Tick moves a single element of the transfer in progress. It returns false if
// the controller is idle.
func (d *DMA) Tick() bool {
	if !d.Busy() {
		return false
	}
	debug.Assert(d.left > 0, "sim: busy without elements left")

	cfg := dma.Config(d.ttype)
	q := cfg.Quantity()

	var data uint32
	var err error
	if q == dma.W2W {
		data, err = d.mem.Load32(d.rd)
	} else {
		var b uint8
		b, err = d.mem.Load8(d.rd)
		data = uint32(b)
		if q == dma.B2SW {
			data = uint32(int32(int8(b)))
		}
	}
	if err != nil {
		d.src = uint32(d.rd)
		d.stop(dma.CtrlErrorRead)
		return true
	}

	if q == dma.B2B {
		err = d.mem.Store8(d.wr, uint8(data))
	} else {
		if cfg&dma.Endian != 0 {
			data = bits.ReverseBytes32(data)
		}
		err = d.mem.Store32(d.wr, data)
	}
	if err != nil {
		d.dst = uint32(d.wr)
		d.stop(dma.CtrlErrorWrite)
		return true
	}

	if cfg&dma.SrcInc != 0 {
		d.rd += srcSize(q)
	}
	if cfg&dma.DstInc != 0 {
		d.wr += dstSize(q)
	}
	d.left--
	if d.left == 0 {
		d.stop(0)
	}
	return true
}

// Run ticks until the controller is idle, but at most limit times. It returns
// the number of elements processed.
func (d *DMA) Run(limit int) (n int) {
	for n < limit && d.Tick() {
		n++
	}
	return
}

func (d *DMA) start() {
	d.status = dma.CtrlBusy
	d.rd, d.wr = soc.Addr(d.src), soc.Addr(d.dst)
	d.left = d.ttype & dma.TTypeNumMask
	if d.left == 0 {
		d.stop(0)
	}
}

func (d *DMA) stop(errs dma.Ctrl) {
	d.status = dma.CtrlDone | errs
	d.left = 0
	if errs == 0 && d.cmd&dma.CtrlFence != 0 {
		d.fences++
	}
	if d.OnDone != nil {
		inDone := d.inDone
		d.inDone = true
		d.OnDone()
		d.inDone = inDone
	}
}

func (d *DMA) reset() {
	d.status = 0
	d.left = 0
}

func srcSize(q dma.Config) soc.Addr {
	if q == dma.W2W {
		return 4
	}
	return 1
}

func dstSize(q dma.Config) soc.Addr {
	if q == dma.B2B {
		return 1
	}
	return 4
}
