// Package sysinfo reads the NEORV32 system information block, which reports
// the clock frequency and the options the SoC was synthesized with.
package sysinfo

import (
	"strings"
	"unsafe"

	"github.com/clktmr/neorv32/soc"
)

// SysInfo is a handle to the system information registers.
type SysInfo struct {
	regs soc.Bus
}

func New(regs soc.Bus) *SysInfo {
	return &SysInfo{regs: regs}
}

// Default returns the system information block at its fixed hardware address.
func Default() *SysInfo {
	return New(soc.NewMMIO(unsafe.Pointer(baseAddr)))
}

// Features returns all synthesized features.
func (s *SysInfo) Features() Feature {
	return Feature(s.regs.Load(RegSoC))
}

// Has reports whether all features in f were synthesized.
func (s *SysInfo) Has(f Feature) bool {
	return s.Features()&f == f
}

// ClockHz returns the processor's clock frequency.
func (s *SysInfo) ClockHz() uint32 {
	return s.regs.Load(RegClock)
}

// IMEMSize returns the size of the internal instruction memory in bytes, or
// zero if not synthesized.
func (s *SysInfo) IMEMSize() uint32 {
	if !s.Has(IMEM) {
		return 0
	}
	return 1 << soc.Field(s.regs.Load(RegMem), memIMEMShift, 8)
}

// DMEMSize returns the size of the internal data memory in bytes, or zero if
// not synthesized.
func (s *SysInfo) DMEMSize() uint32 {
	if !s.Has(DMEM) {
		return 0
	}
	return 1 << soc.Field(s.regs.Load(RegMem), memDMEMShift, 8)
}

func (f Feature) String() string {
	var names []string
	for i, name := range featureNames {
		if f&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	return strings.Join(names, "|")
}
