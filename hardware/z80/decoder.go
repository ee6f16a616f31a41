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

// the decoder works on the octal structure of the opcode rather than a flat
// 256-entry table. splitting the opcode into the x, y, z, p and q fields
// groups instructions that share operand plumbing, which keeps the index
// register prefixes manageable: a prefixed opcode runs through the same
// paths with the ix argument pointing at IX or IY.

// effAddr returns the effective address of the (HL) operand. in index mode
// a displacement byte is fetched and five internal cycles elapse while the
// CPU forms the sum.
func (z *Z80) effAddr(ix *uint16) uint16 {
	if ix == nil {
		return z.HL()
	}
	d := int8(z.memRead(z.PC))
	z.PC++
	z.tickN(5)
	z.WZ = *ix + uint16(int16(d))
	return z.WZ
}

// getRIx reads an 8-bit register, substituting the halves of the index
// register for H and L when a prefix is in effect. never used for operand
// index 6.
func (z *Z80) getRIx(i uint8, ix *uint16) uint8 {
	if ix != nil {
		switch i {
		case 4:
			return uint8(*ix >> 8)
		case 5:
			return uint8(*ix)
		}
	}
	return z.reg8(i)
}

// setRIx writes an 8-bit register with the same index substitution as
// getRIx.
func (z *Z80) setRIx(i uint8, ix *uint16, v uint8) {
	if ix != nil {
		switch i {
		case 4:
			*ix = (*ix & 0x00ff) | uint16(v)<<8
			return
		case 5:
			*ix = (*ix & 0xff00) | uint16(v)
			return
		}
	}
	z.setReg8(i, v)
}

// cond tests a branch condition named by the 3-bit condition index.
func (z *Z80) cond(y uint8) bool {
	f := z.regs[regF]
	switch y {
	case 0:
		return f&FlagZ == 0
	case 1:
		return f&FlagZ != 0
	case 2:
		return f&FlagC == 0
	case 3:
		return f&FlagC != 0
	case 4:
		return f&FlagP == 0
	case 5:
		return f&FlagP != 0
	case 6:
		return f&FlagS == 0
	}
	return f&FlagS != 0
}

// alu performs one of the eight accumulator operations named by the 3-bit
// operation index.
func (z *Z80) alu(y uint8, val uint8) {
	a := z.regs[regA]
	switch y {
	case 0: // ADD
		res := int(a) + int(val)
		z.regs[regA] = uint8(res)
		z.regs[regF] = addFlags(a, val, res)
	case 1: // ADC
		res := int(a) + int(val) + int(z.regs[regF]&FlagC)
		z.regs[regA] = uint8(res)
		z.regs[regF] = addFlags(a, val, res)
	case 2: // SUB
		res := int(a) - int(val)
		z.regs[regA] = uint8(res)
		z.regs[regF] = subFlags(a, val, res)
	case 3: // SBC
		res := int(a) - int(val) - int(z.regs[regF]&FlagC)
		z.regs[regA] = uint8(res)
		z.regs[regF] = subFlags(a, val, res)
	case 4: // AND
		a &= val
		z.regs[regA] = a
		z.regs[regF] = sz53pTable[a] | FlagH
	case 5: // XOR
		a ^= val
		z.regs[regA] = a
		z.regs[regF] = sz53pTable[a]
	case 6: // OR
		a |= val
		z.regs[regA] = a
		z.regs[regF] = sz53pTable[a]
	case 7: // CP
		res := int(a) - int(val)
		z.regs[regF] = cpFlags(a, val, res)
	}
}

// relJump applies a signed displacement to the program counter.
func (z *Z80) relJump(d int8) {
	z.PC += uint16(int16(d))
	z.WZ = z.PC
}

// add16 performs the 16-bit addition of ADD HL,rr. only the carry, half
// carry and undocumented flags are affected.
func (z *Z80) add16(p uint8, ix *uint16) {
	hl := z.rpGet(2, ix)
	rr := z.rpGet(p, ix)
	z.WZ = hl + 1
	z.tickN(7)
	res := int(hl) + int(rr)
	z.rpSet(2, ix, uint16(res))
	f := z.regs[regF] & (FlagS | FlagZ | FlagP)
	f |= uint8((int(hl)^int(rr)^res)>>8) & FlagH
	f |= uint8(res>>16) & FlagC
	f |= uint8(res>>8) & (FlagY | FlagX)
	z.regs[regF] = f
}

// execute decodes and runs one instruction. the opcode fetch has already
// happened. ix is nil for the unprefixed instruction set, or points at IX
// or IY when a DD or FD prefix is in effect.
func (z *Z80) execute(op uint8, ix *uint16) {
	x := op >> 6
	y := (op >> 3) & 7
	zz := op & 7
	p := y >> 1
	q := y & 1

	switch x {
	case 1:
		// 8-bit loads, and HALT in the slot that would be LD (HL),(HL)
		switch {
		case y == 6 && zz == 6:
			z.halt()
		case y == 6:
			// the register operand is never redirected to an index half
			// when the other operand is memory
			v := z.reg8(zz)
			z.memWrite(z.effAddr(ix), v)
		case zz == 6:
			v := z.memRead(z.effAddr(ix))
			z.setReg8(y, v)
		default:
			z.setRIx(y, ix, z.getRIx(zz, ix))
		}

	case 2:
		// accumulator arithmetic and logic on a register operand
		if zz == 6 {
			z.alu(y, z.memRead(z.effAddr(ix)))
		} else {
			z.alu(y, z.getRIx(zz, ix))
		}

	case 0:
		z.executeX0(y, zz, p, q, ix)

	case 3:
		z.executeX3(y, zz, p, q, ix)
	}
}

func (z *Z80) executeX0(y, zz, p, q uint8, ix *uint16) {
	switch zz {
	case 0:
		switch y {
		case 0: // NOP
		case 1: // EX AF,AF'
			z.exAF()
		case 2: // DJNZ d
			z.tickN(1)
			d := int8(z.memRead(z.PC))
			z.PC++
			z.regs[regB]--
			if z.regs[regB] != 0 {
				z.tickN(5)
				z.relJump(d)
			}
		case 3: // JR d
			d := int8(z.memRead(z.PC))
			z.PC++
			z.tickN(5)
			z.relJump(d)
		default: // JR cc,d
			d := int8(z.memRead(z.PC))
			z.PC++
			if z.cond(y - 4) {
				z.tickN(5)
				z.relJump(d)
			}
		}

	case 1:
		if q == 0 { // LD rr,nn
			z.rpSet(p, ix, z.immWord())
		} else { // ADD HL,rr
			z.add16(p, ix)
		}

	case 2:
		a := z.regs[regA]
		switch {
		case q == 0 && p == 0: // LD (BC),A
			z.memWrite(z.BC(), a)
			z.WZ = uint16(a)<<8 | (z.BC()+1)&0x00ff
		case q == 0 && p == 1: // LD (DE),A
			z.memWrite(z.DE(), a)
			z.WZ = uint16(a)<<8 | (z.DE()+1)&0x00ff
		case q == 0 && p == 2: // LD (nn),HL
			addr := z.immWord()
			hl := z.rpGet(2, ix)
			z.memWrite(addr, uint8(hl))
			z.memWrite(addr+1, uint8(hl>>8))
			z.WZ = addr + 1
		case q == 0 && p == 3: // LD (nn),A
			addr := z.immWord()
			z.memWrite(addr, a)
			z.WZ = uint16(a)<<8 | (addr+1)&0x00ff
		case p == 0: // LD A,(BC)
			z.regs[regA] = z.memRead(z.BC())
			z.WZ = z.BC() + 1
		case p == 1: // LD A,(DE)
			z.regs[regA] = z.memRead(z.DE())
			z.WZ = z.DE() + 1
		case p == 2: // LD HL,(nn)
			addr := z.immWord()
			lo := z.memRead(addr)
			hi := z.memRead(addr + 1)
			z.rpSet(2, ix, uint16(hi)<<8|uint16(lo))
			z.WZ = addr + 1
		default: // LD A,(nn)
			addr := z.immWord()
			z.regs[regA] = z.memRead(addr)
			z.WZ = addr + 1
		}

	case 3:
		// 16-bit increment and decrement. no flags
		z.tickN(2)
		if q == 0 {
			z.rpSet(p, ix, z.rpGet(p, ix)+1)
		} else {
			z.rpSet(p, ix, z.rpGet(p, ix)-1)
		}

	case 4: // INC r
		if y == 6 {
			addr := z.effAddr(ix)
			v := z.memRead(addr)
			z.tickN(1)
			res := v + 1
			z.regs[regF] = incFlags(z.regs[regF], res)
			z.memWrite(addr, res)
		} else {
			res := z.getRIx(y, ix) + 1
			z.setRIx(y, ix, res)
			z.regs[regF] = incFlags(z.regs[regF], res)
		}

	case 5: // DEC r
		if y == 6 {
			addr := z.effAddr(ix)
			v := z.memRead(addr)
			z.tickN(1)
			res := v - 1
			z.regs[regF] = decFlags(z.regs[regF], res)
			z.memWrite(addr, res)
		} else {
			res := z.getRIx(y, ix) - 1
			z.setRIx(y, ix, res)
			z.regs[regF] = decFlags(z.regs[regF], res)
		}

	case 6: // LD r,n
		if y == 6 {
			if ix != nil {
				// the displacement arrives before the immediate and the
				// address sum overlaps the operand read
				d := int8(z.memRead(z.PC))
				z.PC++
				n := z.memRead(z.PC)
				z.PC++
				z.tickN(2)
				z.memWrite(*ix+uint16(int16(d)), n)
			} else {
				n := z.memRead(z.PC)
				z.PC++
				z.memWrite(z.HL(), n)
			}
		} else {
			n := z.memRead(z.PC)
			z.PC++
			z.setRIx(y, ix, n)
		}

	case 7:
		z.accumulatorOp(y)
	}
}

// accumulatorOp runs the eight single-cycle accumulator and flag
// instructions of the first opcode quadrant.
func (z *Z80) accumulatorOp(y uint8) {
	a := z.regs[regA]
	f := z.regs[regF]

	switch y {
	case 0: // RLCA
		c := a >> 7
		a = a<<1 | c
		z.regs[regA] = a
		z.regs[regF] = (f & (FlagS | FlagZ | FlagP)) | c | a&(FlagY|FlagX)
	case 1: // RRCA
		c := a & 1
		a = a>>1 | c<<7
		z.regs[regA] = a
		z.regs[regF] = (f & (FlagS | FlagZ | FlagP)) | c | a&(FlagY|FlagX)
	case 2: // RLA
		c := a >> 7
		a = a<<1 | f&FlagC
		z.regs[regA] = a
		z.regs[regF] = (f & (FlagS | FlagZ | FlagP)) | c | a&(FlagY|FlagX)
	case 3: // RRA
		c := a & 1
		a = a>>1 | (f&FlagC)<<7
		z.regs[regA] = a
		z.regs[regF] = (f & (FlagS | FlagZ | FlagP)) | c | a&(FlagY|FlagX)
	case 4:
		z.daa()
	case 5: // CPL
		a = ^a
		z.regs[regA] = a
		z.regs[regF] = (f & (FlagS | FlagZ | FlagP | FlagC)) | FlagH | FlagN | a&(FlagY|FlagX)
	case 6: // SCF
		z.regs[regF] = (f & (FlagS | FlagZ | FlagP)) | FlagC | a&(FlagY|FlagX)
	case 7: // CCF
		nf := f & (FlagS | FlagZ | FlagP)
		if f&FlagC != 0 {
			nf |= FlagH
		} else {
			nf |= FlagC
		}
		z.regs[regF] = nf | a&(FlagY|FlagX)
	}
}

// daa adjusts the accumulator after BCD arithmetic. the correction depends
// on the carry, half carry and subtract flags left by the preceding
// instruction.
func (z *Z80) daa() {
	a := z.regs[regA]
	f := z.regs[regF]

	var correct uint8
	var carry uint8
	if f&FlagH != 0 || a&0x0f > 0x09 {
		correct = 0x06
	}
	if f&FlagC != 0 || a > 0x99 {
		correct |= 0x60
		carry = FlagC
	}

	res := a + correct
	if f&FlagN != 0 {
		res = a - correct
	}

	nf := (f & FlagN) | carry
	nf |= (a ^ res) & FlagH
	nf |= sz53pTable[res]

	z.regs[regA] = res
	z.regs[regF] = nf
}

func (z *Z80) executeX3(y, zz, p, q uint8, ix *uint16) {
	switch zz {
	case 0: // RET cc
		z.tickN(1)
		if z.cond(y) {
			z.PC = z.pop()
			z.WZ = z.PC
		}

	case 1:
		if q == 0 { // POP rr
			z.rp2Set(p, ix, z.pop())
		} else {
			switch p {
			case 0: // RET
				z.PC = z.pop()
				z.WZ = z.PC
			case 1: // EXX
				z.exx()
			case 2: // JP (HL)
				z.PC = z.rpGet(2, ix)
			case 3: // LD SP,HL
				z.tickN(2)
				z.SP = z.rpGet(2, ix)
			}
		}

	case 2: // JP cc,nn
		addr := z.immWord()
		z.WZ = addr
		if z.cond(y) {
			z.PC = addr
		}

	case 3:
		switch y {
		case 0: // JP nn
			z.PC = z.immWord()
			z.WZ = z.PC
		case 1:
			z.executeCB(ix)
		case 2: // OUT (n),A
			n := z.memRead(z.PC)
			z.PC++
			a := z.regs[regA]
			z.ioWrite(uint16(a)<<8|uint16(n), a)
			z.WZ = uint16(a)<<8 | uint16(n+1)
		case 3: // IN A,(n)
			n := z.memRead(z.PC)
			z.PC++
			port := uint16(z.regs[regA])<<8 | uint16(n)
			z.regs[regA] = z.ioRead(port)
			z.WZ = port + 1
		case 4: // EX (SP),HL
			lo := z.memRead(z.SP)
			hi := z.memRead(z.SP + 1)
			z.tickN(1)
			hl := z.rpGet(2, ix)
			z.memWrite(z.SP+1, uint8(hl>>8))
			z.memWrite(z.SP, uint8(hl))
			z.tickN(2)
			z.rpSet(2, ix, uint16(hi)<<8|uint16(lo))
			z.WZ = uint16(hi)<<8 | uint16(lo)
		case 5: // EX DE,HL
			z.exDEHL()
		case 6: // DI
			z.IFF1 = false
			z.IFF2 = false
		case 7: // EI
			z.pendingEI = true
		}

	case 4: // CALL cc,nn
		addr := z.immWord()
		z.WZ = addr
		if z.cond(y) {
			z.tickN(1)
			z.push(z.PC)
			z.PC = addr
		}

	case 5:
		if q == 0 { // PUSH rr
			z.tickN(1)
			z.push(z.rp2Get(p, ix))
		} else {
			switch p {
			case 0: // CALL nn
				addr := z.immWord()
				z.WZ = addr
				z.tickN(1)
				z.push(z.PC)
				z.PC = addr
			case 1: // DD prefix
				next := z.fetch()
				z.execute(next, &z.IX)
			case 2:
				z.executeED()
			case 3: // FD prefix
				next := z.fetch()
				z.execute(next, &z.IY)
			}
		}

	case 6: // alu n
		n := z.memRead(z.PC)
		z.PC++
		z.alu(y, n)

	case 7: // RST
		z.tickN(1)
		z.push(z.PC)
		z.PC = uint16(y) * 8
		z.WZ = z.PC
	}
}

// halt stops instruction execution. the program counter is wound back so
// that the CPU idles on the halt opcode until an interrupt releases it.
func (z *Z80) halt() {
	z.Halted = true
	z.On(HALT)
	z.PC--
}
