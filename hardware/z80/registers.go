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

// the main register bank is stored as a flat array in pair order, low byte
// first. the order is chosen so that the 3-bit register index used by the
// instruction encoding (B=0 C=1 D=2 E=3 H=4 L=5 A=7) maps to an array slot
// by flipping the least significant bit. index 6 refers to memory and is
// special-cased by the decoder before the array is ever touched.
const (
	regC = 0
	regB = 1
	regE = 2
	regD = 3
	regL = 4
	regH = 5
	regA = 6
	regF = 7
)

// reg8 returns the value of the 8-bit register named by an instruction
// encoding index.
func (z *Z80) reg8(i uint8) uint8 {
	return z.regs[i^1]
}

// setReg8 stores an 8-bit value in the register named by an instruction
// encoding index.
func (z *Z80) setReg8(i uint8, v uint8) {
	z.regs[i^1] = v
}

// A returns the accumulator.
func (z *Z80) A() uint8 { return z.regs[regA] }

// F returns the flag register.
func (z *Z80) F() uint8 { return z.regs[regF] }

// SetA loads the accumulator.
func (z *Z80) SetA(v uint8) { z.regs[regA] = v }

// SetF loads the flag register.
func (z *Z80) SetF(v uint8) { z.regs[regF] = v }

// AF returns the accumulator and flag register as a 16-bit pair.
func (z *Z80) AF() uint16 { return uint16(z.regs[regA])<<8 | uint16(z.regs[regF]) }

// BC returns the BC register pair.
func (z *Z80) BC() uint16 { return uint16(z.regs[regB])<<8 | uint16(z.regs[regC]) }

// DE returns the DE register pair.
func (z *Z80) DE() uint16 { return uint16(z.regs[regD])<<8 | uint16(z.regs[regE]) }

// HL returns the HL register pair.
func (z *Z80) HL() uint16 { return uint16(z.regs[regH])<<8 | uint16(z.regs[regL]) }

// SetAF loads the accumulator and flag register from a 16-bit pair.
func (z *Z80) SetAF(v uint16) {
	z.regs[regA] = uint8(v >> 8)
	z.regs[regF] = uint8(v)
}

// SetBC loads the BC register pair.
func (z *Z80) SetBC(v uint16) {
	z.regs[regB] = uint8(v >> 8)
	z.regs[regC] = uint8(v)
}

// SetDE loads the DE register pair.
func (z *Z80) SetDE(v uint16) {
	z.regs[regD] = uint8(v >> 8)
	z.regs[regE] = uint8(v)
}

// SetHL loads the HL register pair.
func (z *Z80) SetHL(v uint16) {
	z.regs[regH] = uint8(v >> 8)
	z.regs[regL] = uint8(v)
}

// IR returns the interrupt vector and refresh registers as the 16-bit value
// driven onto the address bus during refresh cycles.
func (z *Z80) IR() uint16 { return uint16(z.I)<<8 | uint16(z.R) }

// bumpR increments the low seven bits of the refresh register, leaving the
// top bit untouched. this happens once per opcode fetch.
func (z *Z80) bumpR() {
	z.R = (z.R & 0x80) | ((z.R + 1) & 0x7f)
}

// exAF exchanges AF with its alternate.
func (z *Z80) exAF() {
	af := z.AF()
	z.SetAF(z.af2)
	z.af2 = af
}

// exx exchanges BC, DE and HL with their alternates.
func (z *Z80) exx() {
	bc := z.BC()
	de := z.DE()
	hl := z.HL()
	z.SetBC(z.bc2)
	z.SetDE(z.de2)
	z.SetHL(z.hl2)
	z.bc2 = bc
	z.de2 = de
	z.hl2 = hl
}

// exDEHL exchanges DE and HL. unlike most HL operations this is never
// redirected to an index register by a prefix.
func (z *Z80) exDEHL() {
	de := z.DE()
	z.SetDE(z.HL())
	z.SetHL(de)
}

// rpGet returns the value of a register pair named by the 2-bit pair index
// used by the instruction encoding (BC, DE, HL, SP). in index mode the HL
// slot refers to IX or IY.
func (z *Z80) rpGet(p uint8, ix *uint16) uint16 {
	switch p {
	case 0:
		return z.BC()
	case 1:
		return z.DE()
	case 2:
		if ix != nil {
			return *ix
		}
		return z.HL()
	}
	return z.SP
}

// rpSet stores a value in a register pair named by the 2-bit pair index.
func (z *Z80) rpSet(p uint8, ix *uint16, v uint16) {
	switch p {
	case 0:
		z.SetBC(v)
	case 1:
		z.SetDE(v)
	case 2:
		if ix != nil {
			*ix = v
		} else {
			z.SetHL(v)
		}
	default:
		z.SP = v
	}
}

// rp2Get is like rpGet but with AF in place of SP, as used by PUSH and POP.
func (z *Z80) rp2Get(p uint8, ix *uint16) uint16 {
	if p == 3 {
		return z.AF()
	}
	return z.rpGet(p, ix)
}

// rp2Set is like rpSet but with AF in place of SP.
func (z *Z80) rp2Set(p uint8, ix *uint16, v uint16) {
	if p == 3 {
		z.SetAF(v)
		return
	}
	z.rpSet(p, ix, v)
}
