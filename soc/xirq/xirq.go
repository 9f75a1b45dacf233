// Package xirq provides a driver for the NEORV32 external interrupt
// controller.
//
// The controller multiplexes up to 32 external interrupt channels onto the
// CPU's fast interrupt [soc.IrqXIRQ]. Channels are prioritized by their index,
// channel 0 having the highest priority. [Controller.Handle] dispatches to the
// handler installed for the active channel. [Controller.Setup] installs it as
// the trap handler for soc.IrqXIRQ, otherwise the platform's trap handler must
// call it.
package xirq

import (
	"errors"
	"math/bits"

	"github.com/clktmr/neorv32/soc"
	"github.com/clktmr/neorv32/soc/sysinfo"
)

var ErrChannel = errors.New("xirq: invalid channel")

// Trigger selects on which input condition a channel becomes pending.
type Trigger uint8

const (
	LowLevel    Trigger = 0b00
	HighLevel   Trigger = 0b01
	FallingEdge Trigger = 0b10
	RisingEdge  Trigger = 0b11
)

// Controller is a handle to the external interrupt controller. It isn't safe
// for concurrent use, except that Handle may interrupt other methods.
type Controller struct {
	regs     soc.Bus
	info     *sysinfo.SysInfo
	mie      soc.InterruptEnabler
	handlers [NumChannels]func()
}

// New returns a Controller for register block regs. The controller's fast
// interrupt is masked and unmasked using mie.
func New(regs soc.Bus, info *sysinfo.SysInfo, mie soc.InterruptEnabler) *Controller {
	return &Controller{regs: regs, info: info, mie: mie}
}

// Available reports whether the external interrupt controller was synthesized.
func (c *Controller) Available() bool {
	return c.info.Has(sysinfo.IOXIRQ)
}

// Setup disables all channels, clears all pending interrupts and removes all
// installed handlers. If traps isn't nil, [Controller.Handle] is installed as
// its handler for soc.IrqXIRQ.
func (c *Controller) Setup(traps soc.HandlerInstaller) {
	c.regs.Store(RegEIE, 0)
	c.regs.Store(RegEIP, 0)
	c.regs.Store(RegESC, 0)
	c.handlers = [NumChannels]func(){}
	if traps != nil {
		traps.Handle(soc.IrqXIRQ, c.Handle)
	}
}

// GlobalEnable enables the controller's interrupt to the CPU. Interrupts that
// triggered while disabled remain pending.
func (c *Controller) GlobalEnable() {
	c.mie.EnableIRQ(soc.IrqXIRQ)
}

// GlobalDisable disables the controller's interrupt to the CPU.
func (c *Controller) GlobalDisable() {
	c.mie.DisableIRQ(soc.IrqXIRQ)
}

// Num returns the number of implemented channels. It disables the
// controller's interrupt to the CPU, which must be reenabled with
// [Controller.GlobalEnable].
func (c *Controller) Num() int {
	if !c.Available() {
		return 0
	}

	c.GlobalDisable()
	eie := c.regs.Load(RegEIE)
	c.regs.Store(RegEIE, 0xffff_ffff)
	n := bits.OnesCount32(c.regs.Load(RegEIE))
	c.regs.Store(RegEIE, eie)
	return n
}

// SetupTrigger configures the trigger type of a channel.
func (c *Controller) SetupTrigger(ch int, trig Trigger) error {
	if ch < 0 || ch >= NumChannels {
		return ErrChannel
	}
	typ := soc.Insert(c.regs.Load(RegTTYP), uint(ch), 1, uint32(trig>>1))
	pol := soc.Insert(c.regs.Load(RegTPOL), uint(ch), 1, uint32(trig))
	c.regs.Store(RegTTYP, typ)
	c.regs.Store(RegTPOL, pol)
	return nil
}

// ClearPending clears a channel's pending interrupt. Only the lower 5 bits of
// ch are used.
func (c *Controller) ClearPending(ch int) {
	c.regs.Store(RegEIP, ^channelBit(ch))
}

// ChannelEnable enables a channel. Only the lower 5 bits of ch are used.
func (c *Controller) ChannelEnable(ch int) {
	c.regs.Store(RegEIE, c.regs.Load(RegEIE)|channelBit(ch))
}

// ChannelDisable disables a channel. Only the lower 5 bits of ch are used.
func (c *Controller) ChannelDisable(ch int) {
	c.regs.Store(RegEIE, c.regs.Load(RegEIE)&^channelBit(ch))
}

// Install sets the handler that is called by [Controller.Handle] when channel
// ch is the active source. A nil handler ignores the channel's interrupts.
func (c *Controller) Install(ch int, handler func()) error {
	if ch < 0 || ch >= NumChannels {
		return ErrChannel
	}
	c.handlers[ch] = handler
	return nil
}

// Uninstall removes the handler of channel ch and disables the channel.
func (c *Controller) Uninstall(ch int) error {
	if ch < 0 || ch >= NumChannels {
		return ErrChannel
	}
	c.handlers[ch] = nil
	c.ChannelDisable(ch)
	return nil
}

// Handle serves the currently active channel: it clears its pending flag,
// runs the installed handler and acknowledges the interrupt.
func (c *Controller) Handle() {
	src := int(c.regs.Load(RegESC) & (NumChannels - 1))
	c.regs.Store(RegEIP, ^channelBit(src))

	if handler := c.handlers[src]; handler != nil {
		handler()
	}

	c.regs.Store(RegESC, 0)
}

func channelBit(ch int) uint32 {
	return 1 << (ch & (NumChannels - 1))
}
