package sim_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/clktmr/neorv32/sim"
	"github.com/clktmr/neorv32/soc"
	"github.com/clktmr/neorv32/soc/dma"
	"github.com/clktmr/neorv32/soc/sysinfo"
)

const (
	srcAddr soc.Addr = 0x8000_0000
	dstAddr soc.Addr = 0x8000_0100
	ramSize          = 0x200
)

var _ = Describe("DMA", func() {
	var (
		m    *sim.Machine
		ctrl *dma.Controller
		ram  *sim.Region
	)

	BeforeEach(func() {
		m = sim.NewMachine()
		ram = m.Memory.Map(srcAddr, ramSize)
		for i := range 0x40 {
			ram.Data[i] = byte(i + 0x80)
		}
		ctrl = dma.New(m.DMA, sysinfo.New(m.SysInfo))
		Expect(ctrl.Available()).To(BeTrue())
		ctrl.Enable()
	})

	It("should copy words", func() {
		ctrl.Transfer(srcAddr, dstAddr, 4, dma.W2W|dma.SrcInc|dma.DstInc)
		Expect(ctrl.Status()).To(Equal(dma.StatusBusy))
		Expect(ctrl.Done()).To(BeFalse())

		Expect(m.DMA.Run(100)).To(Equal(4))
		Expect(ctrl.Status()).To(Equal(dma.StatusIdle))
		Expect(ctrl.Done()).To(BeTrue())
		Expect(ram.Data[0x100:0x110]).To(Equal(ram.Data[:0x10]))
		Expect(ram.Data[0x110]).To(BeZero())
	})

	It("should extend bytes to words", func() {
		ctrl.Transfer(srcAddr, dstAddr, 2, dma.B2UW|dma.SrcInc|dma.DstInc)
		m.DMA.Run(100)
		Expect(ram.Data[0x100:0x108]).To(Equal([]byte{0x80, 0, 0, 0, 0x81, 0, 0, 0}))

		ctrl.Transfer(srcAddr, dstAddr, 2, dma.B2SW|dma.SrcInc|dma.DstInc)
		m.DMA.Run(100)
		Expect(ram.Data[0x100:0x108]).To(Equal([]byte{0x80, 0xff, 0xff, 0xff, 0x81, 0xff, 0xff, 0xff}))
	})

	It("should swap byte order", func() {
		ctrl.Transfer(srcAddr, dstAddr, 1, dma.W2W|dma.Endian)
		m.DMA.Run(100)
		Expect(ram.Data[0x100:0x104]).To(Equal([]byte{0x83, 0x82, 0x81, 0x80}))
	})

	It("should keep constant addresses", func() {
		ctrl.Transfer(srcAddr+3, dstAddr, 8, dma.B2B|dma.DstInc)
		m.DMA.Run(100)
		Expect(ram.Data[0x100:0x109]).To(Equal([]byte{0x83, 0x83, 0x83, 0x83, 0x83, 0x83, 0x83, 0x83, 0}))
	})

	It("should complete empty transfers immediately", func() {
		ctrl.Transfer(srcAddr, dstAddr, 0, dma.W2W)
		Expect(ctrl.Done()).To(BeTrue())
		Expect(ctrl.Status()).To(Equal(dma.StatusIdle))
		Expect(m.DMA.Tick()).To(BeFalse())
	})

	It("should only use the lower 24 bits of the count", func() {
		ctrl.Transfer(srcAddr, dstAddr, 0x0100_0002, dma.B2B|dma.SrcInc|dma.DstInc)
		Expect(m.DMA.Run(100)).To(Equal(2))
	})

	It("should report read errors", func() {
		ctrl.Transfer(srcAddr+ramSize-4, dstAddr, 2, dma.W2W|dma.SrcInc|dma.DstInc)
		m.DMA.Run(100)
		Expect(ctrl.Done()).To(BeTrue())
		Expect(ctrl.Status()).To(Equal(dma.StatusErrorRead))
		Expect(m.DMA.Load(dma.RegSrcBase)).To(Equal(uint32(srcAddr + ramSize)))
	})

	It("should report write errors", func() {
		ctrl.Transfer(srcAddr, 0x1000, 1, dma.W2W)
		m.DMA.Run(100)
		Expect(ctrl.Status()).To(Equal(dma.StatusErrorWrite))
		Expect(m.DMA.Load(dma.RegDstBase)).To(Equal(uint32(0x1000)))
	})

	It("should clear done and errors when the next transfer starts", func() {
		ctrl.Transfer(srcAddr, 0x1000, 1, dma.W2W)
		m.DMA.Run(100)
		Expect(ctrl.Status()).To(Equal(dma.StatusErrorWrite))

		ctrl.Transfer(srcAddr, dstAddr, 1, dma.W2W)
		Expect(ctrl.Done()).To(BeFalse())
		Expect(ctrl.Status()).To(Equal(dma.StatusBusy))
	})

	It("should abort when disabled", func() {
		ctrl.Transfer(srcAddr, dstAddr, 16, dma.B2B|dma.SrcInc|dma.DstInc)
		m.DMA.Run(4)
		ctrl.Disable()

		Expect(ctrl.Status()).To(Equal(dma.StatusIdle))
		Expect(m.DMA.Tick()).To(BeFalse())
		Expect(ram.Data[0x100:0x104]).To(Equal(ram.Data[:4]))
		Expect(ram.Data[0x104]).To(BeZero())
	})

	It("should ignore transfers while disabled", func() {
		ctrl.Disable()
		ctrl.Transfer(srcAddr, dstAddr, 1, dma.W2W)
		Expect(ctrl.Status()).To(Equal(dma.StatusIdle))
		Expect(ctrl.Done()).To(BeFalse())
	})

	It("should count fences only for clean transfers", func() {
		ctrl.FenceEnable()
		ctrl.Transfer(srcAddr, dstAddr, 1, dma.W2W)
		m.DMA.Run(100)
		ctrl.Transfer(srcAddr, 0x1000, 1, dma.W2W)
		m.DMA.Run(100)
		Expect(m.DMA.Fences()).To(Equal(1))

		ctrl.FenceDisable()
		ctrl.Transfer(srcAddr, dstAddr, 1, dma.W2W)
		m.DMA.Run(100)
		Expect(m.DMA.Fences()).To(Equal(1))
	})

	It("should signal completion via FIRQ", func() {
		served := 0
		m.Handle(soc.IrqDMA, func() { served++ })
		m.EnableIRQ(soc.IrqDMA)

		ctrl.Transfer(srcAddr, dstAddr, 2, dma.W2W|dma.SrcInc|dma.DstInc)
		Expect(served).To(Equal(0))
		m.DMA.Run(100)
		Expect(served).To(Equal(1))
	})

	Context("in automatic mode", func() {
		BeforeEach(func() {
			ctrl.TransferAuto(srcAddr, dstAddr, 4, dma.B2B|dma.SrcInc|dma.DstInc, soc.IrqUART0RX)
		})

		It("should wait for the selected FIRQ", func() {
			Expect(ctrl.Status()).To(Equal(dma.StatusIdle))
			Expect(m.DMA.Tick()).To(BeFalse())

			m.Raise(soc.IrqUART0TX)
			Expect(ctrl.Status()).To(Equal(dma.StatusIdle))

			m.Raise(soc.IrqUART0RX)
			Expect(ctrl.Status()).To(Equal(dma.StatusBusy))
			Expect(m.DMA.Run(100)).To(Equal(4))
			Expect(ctrl.Done()).To(BeTrue())
		})

		It("should be switched back to manual mode", func() {
			ctrl.Transfer(srcAddr, dstAddr, 1, dma.B2B)
			Expect(ctrl.Status()).To(Equal(dma.StatusBusy))
		})

		It("should be triggered repeatedly", func() {
			m.Raise(soc.IrqUART0RX)
			m.DMA.Run(100)
			m.Raise(soc.IrqUART0RX)
			Expect(ctrl.Done()).To(BeFalse())
			Expect(m.DMA.Run(100)).To(Equal(4))
		})

		It("should not be retriggered by its own completion", func() {
			ctrl.TransferAuto(srcAddr, dstAddr, 0, dma.W2W, soc.IrqDMA)
			m.Raise(soc.IrqDMA)
			Expect(ctrl.Done()).To(BeTrue())
			Expect(ctrl.Status()).To(Equal(dma.StatusIdle))
			Expect(m.Pending(soc.IrqDMA)).To(BeTrue())

			ctrl.TransferAuto(srcAddr, dstAddr, 4, dma.B2B|dma.SrcInc|dma.DstInc, soc.IrqDMA)
			m.Raise(soc.IrqDMA)
			Expect(m.DMA.Run(1000)).To(Equal(4))
			Expect(m.DMA.Busy()).To(BeFalse())

			m.Raise(soc.IrqDMA)
			Expect(m.DMA.Busy()).To(BeTrue())
		})
	})
})
