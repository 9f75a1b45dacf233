package sim

import "github.com/clktmr/neorv32/soc/sysinfo"

// SysInfo models the read-only system information registers.
type SysInfo struct {
	Clock    uint32
	Mem      uint32
	Features sysinfo.Feature
	Cache    uint32
}

func (s *SysInfo) Load(off uint32) uint32 {
	switch off {
	case sysinfo.RegClock:
		return s.Clock
	case sysinfo.RegMem:
		return s.Mem
	case sysinfo.RegSoC:
		return uint32(s.Features)
	case sysinfo.RegCache:
		return s.Cache
	}
	return 0
}

func (s *SysInfo) Store(off uint32, v uint32) {}
