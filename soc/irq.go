package soc

// FIRQ is one of the CPU's 16 fast interrupt requests. Its value is the
// interrupt's bit position in the mip and mie CSRs, so FIRQ0 is 16.
type FIRQ uint8

const (
	FIRQ0 FIRQ = 16 + iota
	FIRQ1
	FIRQ2
	FIRQ3
	FIRQ4
	FIRQ5
	FIRQ6
	FIRQ7
	FIRQ8
	FIRQ9
	FIRQ10
	FIRQ11
	FIRQ12
	FIRQ13
	FIRQ14
	FIRQ15
)

// Fast interrupt assignment of the IO devices
const (
	IrqTWD     = FIRQ0  // two-wire device
	IrqCFS     = FIRQ1  // custom functions subsystem
	IrqUART0RX = FIRQ2  // primary UART receive
	IrqUART0TX = FIRQ3  // primary UART transmit
	IrqUART1RX = FIRQ4  // secondary UART receive
	IrqUART1TX = FIRQ5  // secondary UART transmit
	IrqSPI     = FIRQ6  // SPI transfer done
	IrqTWI     = FIRQ7  // two-wire interface
	IrqXIRQ    = FIRQ8  // external interrupt controller
	IrqNEOLED  = FIRQ9  // smart LED buffer
	IrqDMA     = FIRQ10 // DMA transfer done
	IrqSDI     = FIRQ11 // serial data interface
	IrqGPTMR   = FIRQ12 // general purpose timer
	IrqONEWIRE = FIRQ13 // 1-wire bus
	IrqSLINK   = FIRQ14 // stream link
	IrqTRNG    = FIRQ15 // true random number generator
)

// Line returns the index of the fast interrupt line, which are the lower 4
// bits of the interrupt number.
func (irq FIRQ) Line() uint32 {
	return uint32(irq) & 0xf
}

// InterruptEnabler controls the CPU's machine interrupt enable bits (mie CSR).
type InterruptEnabler interface {
	EnableIRQ(irq FIRQ)
	DisableIRQ(irq FIRQ)
}

// HandlerInstaller installs the trap handler of a fast interrupt.
type HandlerInstaller interface {
	Handle(irq FIRQ, handler func())
}
