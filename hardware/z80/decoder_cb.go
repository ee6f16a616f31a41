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

// the CB page covers rotates and shifts, bit tests, and bit set and reset.
// every one of its 256 opcodes is defined.

// rot runs one of the eight rotate and shift operations on a value,
// returning the result and setting flags.
func (z *Z80) rot(y uint8, v uint8) uint8 {
	var res uint8
	var c uint8

	switch y {
	case 0: // RLC
		c = v >> 7
		res = v<<1 | c
	case 1: // RRC
		c = v & 1
		res = v>>1 | c<<7
	case 2: // RL
		c = v >> 7
		res = v<<1 | z.regs[regF]&FlagC
	case 3: // RR
		c = v & 1
		res = v>>1 | (z.regs[regF]&FlagC)<<7
	case 4: // SLA
		c = v >> 7
		res = v << 1
	case 5: // SRA
		c = v & 1
		res = v>>1 | v&0x80
	case 6: // SLL shifts a one into bit zero
		c = v >> 7
		res = v<<1 | 1
	case 7: // SRL
		c = v & 1
		res = v >> 1
	}

	z.regs[regF] = sz53pTable[res] | c
	return res
}

// bitTest sets flags according to a single bit of the operand. the operand
// itself is not changed.
func (z *Z80) bitTest(y uint8, v uint8) {
	f := z.regs[regF]&FlagC | FlagH | v&(FlagY|FlagX)
	if v&(1<<y) == 0 {
		f |= FlagZ | FlagP
	} else if y == 7 {
		f |= FlagS
	}
	z.regs[regF] = f
}

// executeCB decodes and runs an instruction from the CB page. in index mode
// the displacement byte sits between the prefix and the opcode, and the
// operand is always memory.
func (z *Z80) executeCB(ix *uint16) {
	if ix != nil {
		z.executeIndexCB(ix)
		return
	}

	op := z.fetch()
	x := op >> 6
	y := (op >> 3) & 7
	r := op & 7

	if r == 6 {
		addr := z.HL()
		v := z.memRead(addr)
		z.tickN(1)
		switch x {
		case 0:
			z.memWrite(addr, z.rot(y, v))
		case 1:
			z.bitTest(y, v)
		case 2:
			z.memWrite(addr, v&^(1<<y))
		case 3:
			z.memWrite(addr, v|1<<y)
		}
		return
	}

	v := z.reg8(r)
	switch x {
	case 0:
		z.setReg8(r, z.rot(y, v))
	case 1:
		z.bitTest(y, v)
	case 2:
		z.setReg8(r, v&^(1<<y))
	case 3:
		z.setReg8(r, v|1<<y)
	}
}

func (z *Z80) executeIndexCB(ix *uint16) {
	d := int8(z.memRead(z.PC))
	z.PC++
	op := z.memRead(z.PC)
	z.PC++
	z.tickN(2)

	addr := *ix + uint16(int16(d))
	z.WZ = addr

	x := op >> 6
	y := (op >> 3) & 7

	v := z.memRead(addr)
	z.tickN(1)
	switch x {
	case 0:
		z.memWrite(addr, z.rot(y, v))
	case 1:
		z.bitTest(y, v)
	case 2:
		z.memWrite(addr, v&^(1<<y))
	case 3:
		z.memWrite(addr, v|1<<y)
	}
}
