// This file is part of Chips.
//
// Chips is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Chips is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Chips.  If not, see <https://www.gnu.org/licenses/>.

// Package bus provides a ready-made host for the CPU packages: a flat 64KB
// memory with a tick adapter for each CPU family. It is enough to run real
// machine code without writing a host from scratch, and serves as the
// reference for how a richer host should decode the pin words.
package bus

import (
	"os"

	"github.com/darmod23/chips/curated"
	"github.com/darmod23/chips/hardware/m6502"
	"github.com/darmod23/chips/hardware/z80"
)

// Memory is a flat 64KB address space with a 64K IO space for the Z80 port
// instructions. The zero value is ready to use.
type Memory struct {
	Data  [0x10000]uint8
	Ports [0x10000]uint8

	// raised in the pin word returned by every tick. a convenient way of
	// holding an interrupt line
	Hold uint64

	// byte driven onto the data bus during a Z80 interrupt acknowledge
	IntVector uint8

	// number of ticks serviced
	Clock uint64
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	return &Memory{}
}

// LoadImage copies a binary image into memory at the given origin. An image
// that would run past the top of memory is an error.
func (mem *Memory) LoadImage(data []byte, origin uint16) error {
	if len(data) > 0x10000-int(origin) {
		return curated.Errorf(curated.BusError, "image too large for origin")
	}
	copy(mem.Data[origin:], data)
	return nil
}

// LoadFile reads a binary image from disk and copies it into memory at the
// given origin.
func (mem *Memory) LoadFile(filename string, origin uint16) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return curated.Errorf(curated.BusError, err)
	}
	return mem.LoadImage(data, origin)
}

// Peek returns the byte at the given address without a bus transaction.
func (mem *Memory) Peek(addr uint16) uint8 {
	return mem.Data[addr]
}

// Poke writes the byte at the given address without a bus transaction.
func (mem *Memory) Poke(addr uint16, v uint8) {
	mem.Data[addr] = v
}

// TickM6502 services one clock cycle of a 6502. The RW pin selects the
// transfer direction; there is a transfer on every cycle.
func (mem *Memory) TickM6502(pins uint64) uint64 {
	mem.Clock++

	addr := m6502.Addr(pins)
	if pins&m6502.RW == m6502.RW {
		pins = m6502.SetData(pins, mem.Data[addr])
	} else {
		mem.Data[addr] = m6502.Data(pins)
	}

	return pins | mem.Hold
}

// TickZ80 services one clock cycle of a Z80. Unlike the 6502 the Z80 only
// requests a transfer on some cycles, indicated by the MREQ and IORQ
// strobes.
func (mem *Memory) TickZ80(pins uint64) uint64 {
	mem.Clock++

	addr := z80.Addr(pins)
	switch {
	case pins&(z80.M1|z80.IORQ) == z80.M1|z80.IORQ:
		pins = z80.SetData(pins, mem.IntVector)
	case pins&(z80.MREQ|z80.RD) == z80.MREQ|z80.RD:
		pins = z80.SetData(pins, mem.Data[addr])
	case pins&(z80.MREQ|z80.WR) == z80.MREQ|z80.WR:
		mem.Data[addr] = z80.Data(pins)
	case pins&(z80.IORQ|z80.RD) == z80.IORQ|z80.RD:
		pins = z80.SetData(pins, mem.Ports[addr])
	case pins&(z80.IORQ|z80.WR) == z80.IORQ|z80.WR:
		mem.Ports[addr] = z80.Data(pins)
	}

	return pins | mem.Hold
}
