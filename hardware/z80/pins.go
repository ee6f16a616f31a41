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

package z80

// The pin word packs the simultaneous logical level of every emulated pin of
// the Z80 into one value. Address lines occupy bits 0-15 and data lines bits
// 16-23, as for the 6502 core. The Z80 has a much richer set of control
// pins, occupying the bits from 24 up.
const (
	addrMask uint64 = 0x0000ffff
	dataMask uint64 = 0x00ff0000

	// system control pins
	M1   uint64 = 1 << 24 // machine cycle one (opcode fetch)
	MREQ uint64 = 1 << 25 // memory request
	IORQ uint64 = 1 << 26 // input/output request
	RD   uint64 = 1 << 27 // read
	WR   uint64 = 1 << 28 // write
	RFSH uint64 = 1 << 29 // dynamic memory refresh

	// CPU control pins
	HALT  uint64 = 1 << 30 // CPU is in the halt state
	WAIT  uint64 = 1 << 31 // wait state requested by the host
	INT   uint64 = 1 << 32 // maskable interrupt request
	NMI   uint64 = 1 << 33 // non-maskable interrupt request
	RESET uint64 = 1 << 34 // reset

	// CPU bus control pins
	BUSREQ uint64 = 1 << 35 // bus request
	BUSACK uint64 = 1 << 36 // bus acknowledge

	// CtrlMask covers every control pin
	CtrlMask uint64 = M1 | MREQ | IORQ | RD | WR | RFSH | HALT | WAIT | INT | NMI | RESET | BUSREQ | BUSACK

	// PinMask covers every pin emulated by this package
	PinMask uint64 = addrMask | dataMask | CtrlMask
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
