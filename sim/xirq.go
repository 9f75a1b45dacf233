package sim

import (
	"math/bits"

	"github.com/clktmr/neorv32/soc"
	"github.com/clktmr/neorv32/soc/xirq"
)

// XIRQ models the external interrupt controller. Input conditions aren't
// modelled, [XIRQ.Assert] stands for a channel input meeting its configured
// trigger.
type XIRQ struct {
	mask uint32 // implemented channels

	eie, eip   uint32
	ttyp, tpol uint32
	esc        uint32
	active     bool

	raise func()
}

// NewXIRQ returns a controller with n channels. It calls raise each time it
// signals an interrupt to the CPU.
func NewXIRQ(n uint, raise func()) *XIRQ {
	return &XIRQ{mask: soc.Mask[uint32](n), raise: raise}
}

func (x *XIRQ) Load(off uint32) uint32 {
	switch off {
	case xirq.RegEIE:
		return x.eie
	case xirq.RegEIP:
		return x.eip
	case xirq.RegESC:
		return x.esc
	case xirq.RegTTYP:
		return x.ttyp
	case xirq.RegTPOL:
		return x.tpol
	}
	return 0
}

func (x *XIRQ) Store(off uint32, v uint32) {
	switch off {
	case xirq.RegEIE:
		x.eie = v & x.mask
	case xirq.RegEIP:
		x.eip &= v
	case xirq.RegESC:
		x.active = false
	case xirq.RegTTYP:
		x.ttyp = v & x.mask
	case xirq.RegTPOL:
		x.tpol = v & x.mask
	}
	x.update()
}

// Assert triggers channel ch. Disabled or unimplemented channels are ignored.
func (x *XIRQ) Assert(ch int) {
	if ch < 0 || ch >= xirq.NumChannels {
		return
	}
	x.eip |= 1 << ch & x.eie
	x.update()
}

// Pending returns the pending channels.
func (x *XIRQ) Pending() uint32 {
	return x.eip
}

func (x *XIRQ) update() {
	pending := x.eip & x.eie
	if x.active || pending == 0 {
		return
	}
	x.esc = uint32(bits.TrailingZeros32(pending))
	x.active = true
	if x.raise != nil {
		x.raise()
	}
}
