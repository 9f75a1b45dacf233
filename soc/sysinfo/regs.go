package sysinfo

import "github.com/clktmr/neorv32/soc"

const baseAddr = soc.BaseSysInfo

// Register offsets, all registers are read-only
const (
	RegClock uint32 = 0x0 // clock frequency in Hz
	RegMem   uint32 = 0x4 // log2 of internal memory sizes
	RegSoC   uint32 = 0x8 // synthesized features
	RegCache uint32 = 0xc // cache configuration
)

// Fields of the RegMem register
const (
	memIMEMShift = 0
	memDMEMShift = 8
)

// Feature is a set of the SoC's synthesis options, as reported by RegSoC.
type Feature uint32

const (
	Bootloader Feature = 1 << iota // bootloader implemented
	XBus                           // external bus interface
	IMEM                           // processor-internal instruction memory
	DMEM                           // processor-internal data memory
	OCD                            // on-chip debugger
	ICache                         // instruction cache
	DCache                         // data cache
	ClockGating                    // clock gating
	XBusCache                      // external bus cache
	XIP                            // execute in place
	XIPCache                       // execute in place cache
	OCDAuth                        // on-chip debugger authentication
	IMEMROM                        // internal instruction memory as ROM
	IOTWD                          // two-wire device
	IODMA                          // direct memory access controller
	IOGPIO                         // general purpose IO
	IOCLINT                        // core local interruptor
	IOUART0                        // primary UART
	IOSPI                          // SPI controller
	IOTWI                          // two-wire interface
	IOPWM                          // pulse width modulation
	IOWDT                          // watchdog timer
	IOCFS                          // custom functions subsystem
	IOTRNG                         // true random number generator
	IOSDI                          // serial data interface
	IOUART1                        // secondary UART
	IONEOLED                       // smart LED interface
	IOXIRQ                         // external interrupt controller
	IOGPTMR                        // general purpose timer
	IOSLINK                        // stream link
	IOONEWIRE                      // 1-wire controller
	IOCRC                          // cyclic redundancy check unit
)

var featureNames = [32]string{
	"BOOTLOADER", "XBUS", "IMEM", "DMEM", "OCD", "ICACHE", "DCACHE",
	"CLOCK_GATING", "XBUS_CACHE", "XIP", "XIP_CACHE", "OCD_AUTH", "IMEM_ROM",
	"TWD", "DMA", "GPIO", "CLINT", "UART0", "SPI", "TWI", "PWM", "WDT", "CFS",
	"TRNG", "SDI", "UART1", "NEOLED", "XIRQ", "GPTMR", "SLINK", "ONEWIRE", "CRC",
}
