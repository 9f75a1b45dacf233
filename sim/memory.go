// Package sim models the parts of the NEORV32 SoC that the drivers in soc
// operate on. The models implement [soc.Bus], so drivers can run unmodified
// against them on any host.
package sim

import (
	"encoding/binary"
	"errors"

	"github.com/clktmr/neorv32/debug"
	"github.com/clktmr/neorv32/soc"
	"github.com/sigurn/crc8"
)

var ErrBusFault = errors.New("sim: bus fault")

var crcTable = crc8.MakeTable(crc8.CRC8)

// Region is a contiguous block of memory.
type Region struct {
	Base soc.Addr
	Data []byte
}

func (r *Region) contains(addr soc.Addr, n int) bool {
	return addr >= r.Base && uint64(addr)+uint64(n) <= uint64(r.Base)+uint64(len(r.Data))
}

// Memory is the little-endian system memory. Accesses outside of a mapped
// region and misaligned word accesses fail with [ErrBusFault].
type Memory struct {
	regions []*Region
}

// Map adds a zeroed region of size bytes at base. Regions must not overlap.
func (m *Memory) Map(base soc.Addr, size int) *Region {
	r := &Region{Base: base, Data: make([]byte, size)}
	if debug.Enabled {
		for _, other := range m.regions {
			debug.Assertf(!other.contains(base, 1) && !r.contains(other.Base, 1),
				"sim: region at %#x overlaps region at %#x", base, other.Base)
		}
	}
	m.regions = append(m.regions, r)
	return r
}

func (m *Memory) slice(addr soc.Addr, n int) ([]byte, error) {
	for _, r := range m.regions {
		if r.contains(addr, n) {
			off := int(addr - r.Base)
			return r.Data[off : off+n], nil
		}
	}
	return nil, ErrBusFault
}

func (m *Memory) ReadAt(p []byte, addr soc.Addr) error {
	b, err := m.slice(addr, len(p))
	if err != nil {
		return err
	}
	copy(p, b)
	return nil
}

func (m *Memory) WriteAt(p []byte, addr soc.Addr) error {
	b, err := m.slice(addr, len(p))
	if err != nil {
		return err
	}
	copy(b, p)
	return nil
}

func (m *Memory) Load8(addr soc.Addr) (uint8, error) {
	b, err := m.slice(addr, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (m *Memory) Store8(addr soc.Addr, v uint8) error {
	b, err := m.slice(addr, 1)
	if err != nil {
		return err
	}
	b[0] = v
	return nil
}

func (m *Memory) Load32(addr soc.Addr) (uint32, error) {
	if addr%4 != 0 {
		return 0, ErrBusFault
	}
	b, err := m.slice(addr, 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (m *Memory) Store32(addr soc.Addr, v uint32) error {
	if addr%4 != 0 {
		return ErrBusFault
	}
	b, err := m.slice(addr, 4)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(b, v)
	return nil
}

// Mapped reports whether all n bytes at addr are inside a single region.
func (m *Memory) Mapped(addr soc.Addr, n int) bool {
	_, err := m.slice(addr, n)
	return err == nil
}

// Fill sets n bytes at addr to v.
func (m *Memory) Fill(addr soc.Addr, n int, v byte) error {
	b, err := m.slice(addr, n)
	if err != nil {
		return err
	}
	for i := range b {
		b[i] = v
	}
	return nil
}

// CRC8 returns the CRC-8 checksum of n bytes at addr.
func (m *Memory) CRC8(addr soc.Addr, n int) (uint8, error) {
	b, err := m.slice(addr, n)
	if err != nil {
		return 0, err
	}
	return crc8.Checksum(b, crcTable), nil
}
