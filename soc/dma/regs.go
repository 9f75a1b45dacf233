package dma

import "github.com/clktmr/neorv32/soc"

const baseAddr = soc.BaseDMA

// Register offsets
const (
	RegCtrl    uint32 = 0x0 // control and status
	RegSrcBase uint32 = 0x4 // source base address
	RegDstBase uint32 = 0x8 // destination base address
	RegTType   uint32 = 0xc // transfer type and count, writing triggers
)

// Ctrl holds the bits of the control register. Command bits are read/write,
// status bits are set by hardware and read-only.
type Ctrl uint32

// Command bits
const (
	CtrlEnable Ctrl = 1 << 0 // reset and disable DMA if cleared
	CtrlAuto   Ctrl = 1 << 1 // transfers are triggered by FIRQ
	CtrlFence  Ctrl = 1 << 2 // issue memory barrier after successful transfer
)

// Status bits
const (
	CtrlErrorRead  Ctrl = 1 << (iota + 8) // bus error during read, SRC_BASE shows faulting address
	CtrlErrorWrite                        // bus error during write, DST_BASE shows faulting address
	CtrlBusy                              // transfer in progress
	CtrlDone                              // a transfer was executed
)

// FIRQ select field in the control register
const (
	FIRQSelShift = 16
	FIRQSelWidth = 4
)

// CtrlCommands covers all software writable bits of the control register.
const CtrlCommands = CtrlEnable | CtrlAuto | CtrlFence | Ctrl(0xf)<<FIRQSelShift

// Fields of the transfer type register
const (
	TTypeNumMask    uint32 = 0x00ff_ffff
	TTypeConfigMask uint32 = 0xff00_0000
	TTypeQSelShift         = 27
	TTypeQSelWidth         = 2
)
