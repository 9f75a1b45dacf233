// Package dma provides a driver for the NEORV32 direct memory access
// controller.
//
// The controller copies up to 2^24-1 elements from a source to a destination
// address. A transfer is either started by software ([Controller.Transfer]) or
// by a fast interrupt request ([Controller.TransferAuto]). The driver only
// sets up transfers, progress must be polled with [Controller.Status] and
// [Controller.Done].
//
// Source and destination must be aligned to the element size selected in the
// transfer's [Config]. This is not checked.
package dma

import (
	"unsafe"

	"github.com/clktmr/neorv32/soc"
	"github.com/clktmr/neorv32/soc/sysinfo"
)

// Controller is a handle to the DMA controller's registers. It holds no state
// besides the register block, but isn't safe for concurrent use.
type Controller struct {
	regs soc.Bus
	info *sysinfo.SysInfo
}

// New returns a Controller for the DMA register block regs. The system
// information block info is only used by [Controller.Available].
func New(regs soc.Bus, info *sysinfo.SysInfo) *Controller {
	return &Controller{regs: regs, info: info}
}

// Default returns the Controller at its fixed hardware address.
func Default() *Controller {
	return New(soc.NewMMIO(unsafe.Pointer(baseAddr)), sysinfo.Default())
}

// Available reports whether the DMA controller was synthesized. All other
// methods have undefined results if it wasn't.
func (c *Controller) Available() bool {
	return c.info.Has(sysinfo.IODMA)
}

// Enable enables the controller.
func (c *Controller) Enable() {
	c.setCtrl(CtrlEnable)
}

// Disable disables and resets the controller. A transfer in progress is
// aborted.
func (c *Controller) Disable() {
	c.clearCtrl(CtrlEnable)
}

// FenceEnable makes the controller issue a memory barrier when a transfer
// completes without errors. All transferred data is visible once
// [Controller.Done] returns true.
func (c *Controller) FenceEnable() {
	c.setCtrl(CtrlFence)
}

// FenceDisable stops issuing memory barriers after transfers.
func (c *Controller) FenceDisable() {
	c.clearCtrl(CtrlFence)
}

// Transfer starts copying num elements from src to dst. Only the lower 24 bits
// of num are used.
//
// The controller must be enabled and idle.
func (c *Controller) Transfer(src, dst soc.Addr, num uint32, config Config) {
	c.clearCtrl(CtrlAuto)
	c.setup(src, dst, num, config)
}

// TransferAuto configures a transfer like [Controller.Transfer], but instead
// of starting it right away the transfer is triggered by fast interrupt
// request irq. Only FIRQ0 to FIRQ15 can be selected, other values are reduced
// to their lower 4 bits.
func (c *Controller) TransferAuto(src, dst soc.Addr, num uint32, config Config, irq soc.FIRQ) {
	ctrl := c.regs.Load(RegCtrl)
	ctrl |= uint32(CtrlAuto)
	ctrl = soc.Insert(ctrl, FIRQSelShift, FIRQSelWidth, uint32(irq))
	c.regs.Store(RegCtrl, ctrl)

	c.setup(src, dst, num, config)
}

// Status returns the controller's current state. Errors take precedence over
// busy.
func (c *Controller) Status() Status {
	ctrl := Ctrl(c.regs.Load(RegCtrl))
	switch {
	case ctrl&CtrlErrorWrite != 0:
		return StatusErrorWrite
	case ctrl&CtrlErrorRead != 0:
		return StatusErrorRead
	case ctrl&CtrlBusy != 0:
		return StatusBusy
	}
	return StatusIdle
}

// Done reports whether a transfer was executed, successful or not. Use
// [Controller.Status] to check for errors. The flag is cleared by hardware
// when the next transfer starts.
func (c *Controller) Done() bool {
	return Ctrl(c.regs.Load(RegCtrl))&CtrlDone != 0
}

// setup writes the transfer's registers. Writing RegTType must come last,
// since it triggers the transfer in manual mode.
func (c *Controller) setup(src, dst soc.Addr, num uint32, config Config) {
	c.regs.Store(RegSrcBase, uint32(src))
	c.regs.Store(RegDstBase, uint32(dst))
	c.regs.Store(RegTType, num&TTypeNumMask|uint32(config)&TTypeConfigMask)
}

func (c *Controller) setCtrl(bits Ctrl) {
	c.regs.Store(RegCtrl, c.regs.Load(RegCtrl)|uint32(bits))
}

func (c *Controller) clearCtrl(bits Ctrl) {
	c.regs.Store(RegCtrl, c.regs.Load(RegCtrl)&^uint32(bits))
}
