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

package m6502

// The pin word packs the simultaneous logical level of every emulated pin of
// the 6502 into one value: the sixteen address lines, the eight data lines
// and the control lines. A pin word is what travels through the tick
// callback once per clock cycle.
const (
	// address lines occupy bits 0-15 and data lines bits 16-23. use the
	// Addr/Data/SetAddr/SetData functions rather than these masks
	addrMask uint64 = 0x0000ffff
	dataMask uint64 = 0x00ff0000

	// RW indicates a read cycle when set and a write cycle when clear
	RW uint64 = 1 << 24

	// IRQ is the maskable interrupt request line. level triggered
	IRQ uint64 = 1 << 25

	// NMI is the non-maskable interrupt line. edge triggered
	NMI uint64 = 1 << 26

	// PinMask covers every pin emulated by this package. the core never sets
	// a bit outside of this mask
	PinMask uint64 = 0xffffffff
)

const dataShift = 16

// Addr extracts the 16-bit address bus value from a pin word.
func Addr(pins uint64) uint16 {
	return uint16(pins & addrMask)
}

// SetAddr merges a 16-bit address bus value into a pin word.
func SetAddr(pins uint64, addr uint16) uint64 {
	return (pins &^ addrMask) | uint64(addr)
}

// Data extracts the 8-bit data bus value from a pin word.
func Data(pins uint64) uint8 {
	return uint8((pins & dataMask) >> dataShift)
}

// SetData merges an 8-bit data bus value into a pin word.
func SetData(pins uint64, data uint8) uint64 {
	return (pins &^ dataMask) | uint64(data)<<dataShift
}

// MakePins builds a pin word from control bits, an address bus value and a
// data bus value.
func MakePins(ctrl uint64, addr uint16, data uint8) uint64 {
	return ctrl | uint64(data)<<dataShift | uint64(addr)
}
