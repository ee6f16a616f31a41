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

import (
	"github.com/darmod23/chips/logger"
)

// the ED page covers the extended instructions: 16-bit arithmetic with
// carry, block transfer and search, interrupt control and the IO
// instructions that take the port from the C register. large parts of the
// page are unassigned. an unassigned opcode executes as a two-fetch NOP and
// is logged once through message de-duplication in the logger.

func (z *Z80) executeED() {
	op := z.fetch()
	x := op >> 6
	y := (op >> 3) & 7
	zz := op & 7
	p := y >> 1
	q := y & 1

	if x == 2 && zz <= 3 && y >= 4 {
		z.executeBlock(y, zz)
		return
	}

	if x != 1 {
		logger.Logf("z80", "undefined opcode ED %02x", op)
		return
	}

	switch zz {
	case 0: // IN r,(C). with y=6 only the flags are affected
		v := z.ioRead(z.BC())
		z.WZ = z.BC() + 1
		if y != 6 {
			z.setReg8(y, v)
		}
		z.regs[regF] = z.regs[regF]&FlagC | sz53pTable[v]

	case 1: // OUT (C),r. with y=6 a zero byte is written
		var v uint8
		if y != 6 {
			v = z.reg8(y)
		}
		z.ioWrite(z.BC(), v)
		z.WZ = z.BC() + 1

	case 2:
		if q == 0 {
			z.sbc16(z.rpGet(p, nil))
		} else {
			z.adc16(z.rpGet(p, nil))
		}

	case 3:
		addr := z.immWord()
		z.WZ = addr + 1
		if q == 0 { // LD (nn),rr
			rr := z.rpGet(p, nil)
			z.memWrite(addr, uint8(rr))
			z.memWrite(addr+1, uint8(rr>>8))
		} else { // LD rr,(nn)
			lo := z.memRead(addr)
			hi := z.memRead(addr + 1)
			z.rpSet(p, nil, uint16(hi)<<8|uint16(lo))
		}

	case 4: // NEG
		a := z.regs[regA]
		res := -int(a)
		z.regs[regA] = uint8(res)
		z.regs[regF] = subFlags(0, a, res)

	case 5: // RETN, with RETI in the y=1 slot. both restore IFF1
		z.PC = z.pop()
		z.WZ = z.PC
		z.IFF1 = z.IFF2

	case 6: // IM
		switch y & 3 {
		case 2:
			z.IM = 1
		case 3:
			z.IM = 2
		default:
			z.IM = 0
		}

	case 7:
		switch y {
		case 0: // LD I,A
			z.tickN(1)
			z.I = z.regs[regA]
		case 1: // LD R,A
			z.tickN(1)
			z.R = z.regs[regA]
		case 2: // LD A,I
			z.tickN(1)
			z.regs[regA] = z.I
			z.irFlags(z.I)
		case 3: // LD A,R
			z.tickN(1)
			z.regs[regA] = z.R
			z.irFlags(z.R)
		case 4:
			z.rrd()
		case 5:
			z.rld()
		default:
			logger.Logf("z80", "undefined opcode ED %02x", op)
		}
	}
}

// irFlags sets flags after LD A,I and LD A,R. the parity flag reports the
// state of the second interrupt flip-flop.
func (z *Z80) irFlags(v uint8) {
	f := z.regs[regF]&FlagC | sz53Table[v]
	if z.IFF2 {
		f |= FlagP
	}
	z.regs[regF] = f
}

// sbc16 performs SBC HL,rr with the full complement of flags, unlike the
// plain 16-bit addition of the main page.
func (z *Z80) sbc16(rr uint16) {
	hl := z.HL()
	z.WZ = hl + 1
	z.tickN(7)

	c := int(z.regs[regF] & FlagC)
	res := int(hl) - int(rr) - c
	z.SetHL(uint16(res))

	f := FlagN
	f |= uint8(res>>8) & (FlagS | FlagY | FlagX)
	if uint16(res) == 0 {
		f |= FlagZ
	}
	f |= uint8((int(hl)^int(rr)^res)>>8) & FlagH
	f |= uint8(res>>16) & FlagC
	f |= uint8(((int(hl)^int(rr))&(int(hl)^res))>>13) & FlagP
	z.regs[regF] = f
}

// adc16 performs ADC HL,rr.
func (z *Z80) adc16(rr uint16) {
	hl := z.HL()
	z.WZ = hl + 1
	z.tickN(7)

	c := int(z.regs[regF] & FlagC)
	res := int(hl) + int(rr) + c
	z.SetHL(uint16(res))

	var f uint8
	f |= uint8(res>>8) & (FlagS | FlagY | FlagX)
	if uint16(res) == 0 {
		f |= FlagZ
	}
	f |= uint8((int(hl)^int(rr)^res)>>8) & FlagH
	f |= uint8(res>>16) & FlagC
	f |= uint8(((int(hl)^int(rr)^0x8000)&(int(rr)^res))>>13) & FlagP
	z.regs[regF] = f
}

// rrd rotates the low nibble of the accumulator through the two nibbles of
// the byte at HL.
func (z *Z80) rrd() {
	addr := z.HL()
	v := z.memRead(addr)
	z.tickN(4)
	a := z.regs[regA]
	z.regs[regA] = a&0xf0 | v&0x0f
	z.memWrite(addr, a<<4|v>>4)
	z.WZ = addr + 1
	z.regs[regF] = z.regs[regF]&FlagC | sz53pTable[z.regs[regA]]
}

// rld rotates the low nibble of the accumulator through the byte at HL in
// the other direction.
func (z *Z80) rld() {
	addr := z.HL()
	v := z.memRead(addr)
	z.tickN(4)
	a := z.regs[regA]
	z.regs[regA] = a&0xf0 | v>>4
	z.memWrite(addr, v<<4|a&0x0f)
	z.WZ = addr + 1
	z.regs[regF] = z.regs[regF]&FlagC | sz53pTable[z.regs[regA]]
}

// executeBlock runs the sixteen block transfer, search and IO instructions.
// y selects increment, decrement or their repeating forms. zz selects the
// operation.
func (z *Z80) executeBlock(y, zz uint8) {
	var delta uint16 = 1
	if y == 5 || y == 7 {
		delta = 0xffff
	}
	repeat := y >= 6

	switch zz {
	case 0: // LDI, LDD, LDIR, LDDR
		v := z.memRead(z.HL())
		z.memWrite(z.DE(), v)
		z.tickN(2)
		z.SetHL(z.HL() + delta)
		z.SetDE(z.DE() + delta)
		z.SetBC(z.BC() - 1)

		n := v + z.regs[regA]
		f := z.regs[regF] & (FlagS | FlagZ | FlagC)
		f |= (n & 0x02) << 4
		f |= n & FlagX
		if z.BC() != 0 {
			f |= FlagP
		}
		z.regs[regF] = f

		if repeat && z.BC() != 0 {
			z.tickN(5)
			z.PC -= 2
			z.WZ = z.PC + 1
		}

	case 1: // CPI, CPD, CPIR, CPDR
		v := z.memRead(z.HL())
		z.tickN(5)
		a := z.regs[regA]
		res := a - v
		z.SetHL(z.HL() + delta)
		z.SetBC(z.BC() - 1)

		f := z.regs[regF]&FlagC | FlagN | sz53Table[res]&(FlagS|FlagZ)
		if (a^v^res)&FlagH != 0 {
			f |= FlagH
		}
		n := res
		if f&FlagH != 0 {
			n--
		}
		f |= (n & 0x02) << 4
		f |= n & FlagX
		if z.BC() != 0 {
			f |= FlagP
		}
		z.regs[regF] = f

		if repeat && z.BC() != 0 && res != 0 {
			z.tickN(5)
			z.PC -= 2
			z.WZ = z.PC + 1
		}

	case 2: // INI, IND, INIR, INDR
		z.tickN(1)
		v := z.ioRead(z.BC())
		z.memWrite(z.HL(), v)
		z.regs[regB]--
		z.SetHL(z.HL() + delta)
		z.blockIOFlags(v)

		if repeat && z.regs[regB] != 0 {
			z.tickN(5)
			z.PC -= 2
		}

	case 3: // OUTI, OUTD, OTIR, OTDR
		z.tickN(1)
		v := z.memRead(z.HL())
		z.regs[regB]--
		z.ioWrite(z.BC(), v)
		z.SetHL(z.HL() + delta)
		z.blockIOFlags(v)

		if repeat && z.regs[regB] != 0 {
			z.tickN(5)
			z.PC -= 2
		}
	}
}

// blockIOFlags sets the documented flags after the block IO instructions.
// the zero flag tracks the B register, the subtract flag the top bit of the
// transferred byte.
func (z *Z80) blockIOFlags(v uint8) {
	f := sz53Table[z.regs[regB]]
	if v&0x80 != 0 {
		f |= FlagN
	}
	z.regs[regF] = f
}
