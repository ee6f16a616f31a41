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

// Package instructions defines every opcode of the 6502 instruction set. The
// CPU looks up the fetched opcode in the definitions table and uses the
// definition to drive the decode state machine.
//
// Cycle counts in the definitions are the documented counts for the
// instruction, exclusive of any page-sensitive penalty. The CPU does not pad
// execution to match the definition; cycles are an emergent property of the
// bus transactions performed during decoding. The counts recorded here exist
// so that tests can verify the emergent behaviour.
package instructions

import "fmt"

// Operator identifies the operation performed by an instruction regardless
// of addressing mode.
type Operator int

// List of operators.
const (
	Adc Operator = iota
	And
	Asl
	Bcc
	Bcs
	Beq
	Bit
	Bmi
	Bne
	Bpl
	Brk
	Bvc
	Bvs
	Clc
	Cld
	Cli
	Clv
	Cmp
	Cpx
	Cpy
	Dec
	Dex
	Dey
	Eor
	Inc
	Inx
	Iny
	Jmp
	Jsr
	Lda
	Ldx
	Ldy
	Lsr
	Nop
	Ora
	Pha
	Php
	Pla
	Plp
	Rol
	Ror
	Rti
	Rts
	Sbc
	Sec
	Sed
	Sei
	Sta
	Stx
	Sty
	Tax
	Tay
	Tsx
	Txa
	Txs
	Tya
)

// AddressingMode describes how the data for the instruction is obtained.
type AddressingMode int

// List of addressing modes.
const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	Relative // relative addressing is used for branch instructions

	Absolute // abs
	ZeroPage // zpg
	Indirect // (ind) - JMP only

	IndexedIndirect // (ind,X)
	IndirectIndexed // (ind),Y

	AbsoluteIndexedX // abs,X
	AbsoluteIndexedY // abs,Y

	ZeroPageIndexedX // zpg,X
	ZeroPageIndexedY // zpg,Y
)

// EffectCategory categorises an instruction by the effect it has.
type EffectCategory int

// List of effect categories.
const (
	Read EffectCategory = iota
	Write
	RMW

	// the following effects have a variable effect on the program counter.
	// branch instructions specifically can be distinguished by the Relative
	// addressing mode
	Flow
	Subroutine
	Interrupt
)

// Definition describes a single opcode.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	Mnemonic       string
	AddressingMode AddressingMode
	Cycles         int

	// PageSensitive instructions consume one extra cycle when address
	// indexing crosses a page boundary
	PageSensitive bool

	Effect EffectCategory

	// Undocumented is true for the opcodes that are not part of the
	// documented instruction set. they decode to do-nothing NOPs
	Undocumented bool
}

// String returns the instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s (%d cycles) [mode=%d pagesens=%t effect=%d]",
		defn.OpCode, defn.Mnemonic, defn.Cycles, defn.AddressingMode, defn.PageSensitive, defn.Effect)
}

// IsBranch returns true if the instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}

// the documented instruction set. fields are in declaration order: OpCode,
// Operator, Mnemonic, AddressingMode, Cycles, PageSensitive, Effect,
// Undocumented.
var documented = []Definition{
	{0x00, Brk, "BRK", Implied, 7, false, Interrupt, false},
	{0x01, Ora, "ORA", IndexedIndirect, 6, false, Read, false},
	{0x05, Ora, "ORA", ZeroPage, 3, false, Read, false},
	{0x06, Asl, "ASL", ZeroPage, 5, false, RMW, false},
	{0x08, Php, "PHP", Implied, 3, false, Read, false},
	{0x09, Ora, "ORA", Immediate, 2, false, Read, false},
	{0x0a, Asl, "ASL", Accumulator, 2, false, RMW, false},
	{0x0d, Ora, "ORA", Absolute, 4, false, Read, false},
	{0x0e, Asl, "ASL", Absolute, 6, false, RMW, false},
	{0x10, Bpl, "BPL", Relative, 2, true, Flow, false},
	{0x11, Ora, "ORA", IndirectIndexed, 5, true, Read, false},
	{0x15, Ora, "ORA", ZeroPageIndexedX, 4, false, Read, false},
	{0x16, Asl, "ASL", ZeroPageIndexedX, 6, false, RMW, false},
	{0x18, Clc, "CLC", Implied, 2, false, Read, false},
	{0x19, Ora, "ORA", AbsoluteIndexedY, 4, true, Read, false},
	{0x1d, Ora, "ORA", AbsoluteIndexedX, 4, true, Read, false},
	{0x1e, Asl, "ASL", AbsoluteIndexedX, 7, false, RMW, false},
	{0x20, Jsr, "JSR", Absolute, 6, false, Subroutine, false},
	{0x21, And, "AND", IndexedIndirect, 6, false, Read, false},
	{0x24, Bit, "BIT", ZeroPage, 3, false, Read, false},
	{0x25, And, "AND", ZeroPage, 3, false, Read, false},
	{0x26, Rol, "ROL", ZeroPage, 5, false, RMW, false},
	{0x28, Plp, "PLP", Implied, 4, false, Read, false},
	{0x29, And, "AND", Immediate, 2, false, Read, false},
	{0x2a, Rol, "ROL", Accumulator, 2, false, RMW, false},
	{0x2c, Bit, "BIT", Absolute, 4, false, Read, false},
	{0x2d, And, "AND", Absolute, 4, false, Read, false},
	{0x2e, Rol, "ROL", Absolute, 6, false, RMW, false},
	{0x30, Bmi, "BMI", Relative, 2, true, Flow, false},
	{0x31, And, "AND", IndirectIndexed, 5, true, Read, false},
	{0x35, And, "AND", ZeroPageIndexedX, 4, false, Read, false},
	{0x36, Rol, "ROL", ZeroPageIndexedX, 6, false, RMW, false},
	{0x38, Sec, "SEC", Implied, 2, false, Read, false},
	{0x39, And, "AND", AbsoluteIndexedY, 4, true, Read, false},
	{0x3d, And, "AND", AbsoluteIndexedX, 4, true, Read, false},
	{0x3e, Rol, "ROL", AbsoluteIndexedX, 7, false, RMW, false},
	{0x40, Rti, "RTI", Implied, 6, false, Interrupt, false},
	{0x41, Eor, "EOR", IndexedIndirect, 6, false, Read, false},
	{0x45, Eor, "EOR", ZeroPage, 3, false, Read, false},
	{0x46, Lsr, "LSR", ZeroPage, 5, false, RMW, false},
	{0x48, Pha, "PHA", Implied, 3, false, Read, false},
	{0x49, Eor, "EOR", Immediate, 2, false, Read, false},
	{0x4a, Lsr, "LSR", Accumulator, 2, false, RMW, false},
	{0x4c, Jmp, "JMP", Absolute, 3, false, Flow, false},
	{0x4d, Eor, "EOR", Absolute, 4, false, Read, false},
	{0x4e, Lsr, "LSR", Absolute, 6, false, RMW, false},
	{0x50, Bvc, "BVC", Relative, 2, true, Flow, false},
	{0x51, Eor, "EOR", IndirectIndexed, 5, true, Read, false},
	{0x55, Eor, "EOR", ZeroPageIndexedX, 4, false, Read, false},
	{0x56, Lsr, "LSR", ZeroPageIndexedX, 6, false, RMW, false},
	{0x58, Cli, "CLI", Implied, 2, false, Read, false},
	{0x59, Eor, "EOR", AbsoluteIndexedY, 4, true, Read, false},
	{0x5d, Eor, "EOR", AbsoluteIndexedX, 4, true, Read, false},
	{0x5e, Lsr, "LSR", AbsoluteIndexedX, 7, false, RMW, false},
	{0x60, Rts, "RTS", Implied, 6, false, Subroutine, false},
	{0x61, Adc, "ADC", IndexedIndirect, 6, false, Read, false},
	{0x65, Adc, "ADC", ZeroPage, 3, false, Read, false},
	{0x66, Ror, "ROR", ZeroPage, 5, false, RMW, false},
	{0x68, Pla, "PLA", Implied, 4, false, Read, false},
	{0x69, Adc, "ADC", Immediate, 2, false, Read, false},
	{0x6a, Ror, "ROR", Accumulator, 2, false, RMW, false},
	{0x6c, Jmp, "JMP", Indirect, 5, false, Flow, false},
	{0x6d, Adc, "ADC", Absolute, 4, false, Read, false},
	{0x6e, Ror, "ROR", Absolute, 6, false, RMW, false},
	{0x70, Bvs, "BVS", Relative, 2, true, Flow, false},
	{0x71, Adc, "ADC", IndirectIndexed, 5, true, Read, false},
	{0x75, Adc, "ADC", ZeroPageIndexedX, 4, false, Read, false},
	{0x76, Ror, "ROR", ZeroPageIndexedX, 6, false, RMW, false},
	{0x78, Sei, "SEI", Implied, 2, false, Read, false},
	{0x79, Adc, "ADC", AbsoluteIndexedY, 4, true, Read, false},
	{0x7d, Adc, "ADC", AbsoluteIndexedX, 4, true, Read, false},
	{0x7e, Ror, "ROR", AbsoluteIndexedX, 7, false, RMW, false},
	{0x81, Sta, "STA", IndexedIndirect, 6, false, Write, false},
	{0x84, Sty, "STY", ZeroPage, 3, false, Write, false},
	{0x85, Sta, "STA", ZeroPage, 3, false, Write, false},
	{0x86, Stx, "STX", ZeroPage, 3, false, Write, false},
	{0x88, Dey, "DEY", Implied, 2, false, Read, false},
	{0x8a, Txa, "TXA", Implied, 2, false, Read, false},
	{0x8c, Sty, "STY", Absolute, 4, false, Write, false},
	{0x8d, Sta, "STA", Absolute, 4, false, Write, false},
	{0x8e, Stx, "STX", Absolute, 4, false, Write, false},
	{0x90, Bcc, "BCC", Relative, 2, true, Flow, false},
	{0x91, Sta, "STA", IndirectIndexed, 6, false, Write, false},
	{0x94, Sty, "STY", ZeroPageIndexedX, 4, false, Write, false},
	{0x95, Sta, "STA", ZeroPageIndexedX, 4, false, Write, false},
	{0x96, Stx, "STX", ZeroPageIndexedY, 4, false, Write, false},
	{0x98, Tya, "TYA", Implied, 2, false, Read, false},
	{0x99, Sta, "STA", AbsoluteIndexedY, 5, false, Write, false},
	{0x9a, Txs, "TXS", Implied, 2, false, Read, false},
	{0x9d, Sta, "STA", AbsoluteIndexedX, 5, false, Write, false},
	{0xa0, Ldy, "LDY", Immediate, 2, false, Read, false},
	{0xa1, Lda, "LDA", IndexedIndirect, 6, false, Read, false},
	{0xa2, Ldx, "LDX", Immediate, 2, false, Read, false},
	{0xa4, Ldy, "LDY", ZeroPage, 3, false, Read, false},
	{0xa5, Lda, "LDA", ZeroPage, 3, false, Read, false},
	{0xa6, Ldx, "LDX", ZeroPage, 3, false, Read, false},
	{0xa8, Tay, "TAY", Implied, 2, false, Read, false},
	{0xa9, Lda, "LDA", Immediate, 2, false, Read, false},
	{0xaa, Tax, "TAX", Implied, 2, false, Read, false},
	{0xac, Ldy, "LDY", Absolute, 4, false, Read, false},
	{0xad, Lda, "LDA", Absolute, 4, false, Read, false},
	{0xae, Ldx, "LDX", Absolute, 4, false, Read, false},
	{0xb0, Bcs, "BCS", Relative, 2, true, Flow, false},
	{0xb1, Lda, "LDA", IndirectIndexed, 5, true, Read, false},
	{0xb4, Ldy, "LDY", ZeroPageIndexedX, 4, false, Read, false},
	{0xb5, Lda, "LDA", ZeroPageIndexedX, 4, false, Read, false},
	{0xb6, Ldx, "LDX", ZeroPageIndexedY, 4, false, Read, false},
	{0xb8, Clv, "CLV", Implied, 2, false, Read, false},
	{0xb9, Lda, "LDA", AbsoluteIndexedY, 4, true, Read, false},
	{0xba, Tsx, "TSX", Implied, 2, false, Read, false},
	{0xbc, Ldy, "LDY", AbsoluteIndexedX, 4, true, Read, false},
	{0xbd, Lda, "LDA", AbsoluteIndexedX, 4, true, Read, false},
	{0xbe, Ldx, "LDX", AbsoluteIndexedY, 4, true, Read, false},
	{0xc0, Cpy, "CPY", Immediate, 2, false, Read, false},
	{0xc1, Cmp, "CMP", IndexedIndirect, 6, false, Read, false},
	{0xc4, Cpy, "CPY", ZeroPage, 3, false, Read, false},
	{0xc5, Cmp, "CMP", ZeroPage, 3, false, Read, false},
	{0xc6, Dec, "DEC", ZeroPage, 5, false, RMW, false},
	{0xc8, Iny, "INY", Implied, 2, false, Read, false},
	{0xc9, Cmp, "CMP", Immediate, 2, false, Read, false},
	{0xca, Dex, "DEX", Implied, 2, false, Read, false},
	{0xcc, Cpy, "CPY", Absolute, 4, false, Read, false},
	{0xcd, Cmp, "CMP", Absolute, 4, false, Read, false},
	{0xce, Dec, "DEC", Absolute, 6, false, RMW, false},
	{0xd0, Bne, "BNE", Relative, 2, true, Flow, false},
	{0xd1, Cmp, "CMP", IndirectIndexed, 5, true, Read, false},
	{0xd5, Cmp, "CMP", ZeroPageIndexedX, 4, false, Read, false},
	{0xd6, Dec, "DEC", ZeroPageIndexedX, 6, false, RMW, false},
	{0xd8, Cld, "CLD", Implied, 2, false, Read, false},
	{0xd9, Cmp, "CMP", AbsoluteIndexedY, 4, true, Read, false},
	{0xdd, Cmp, "CMP", AbsoluteIndexedX, 4, true, Read, false},
	{0xde, Dec, "DEC", AbsoluteIndexedX, 7, false, RMW, false},
	{0xe0, Cpx, "CPX", Immediate, 2, false, Read, false},
	{0xe1, Sbc, "SBC", IndexedIndirect, 6, false, Read, false},
	{0xe4, Cpx, "CPX", ZeroPage, 3, false, Read, false},
	{0xe5, Sbc, "SBC", ZeroPage, 3, false, Read, false},
	{0xe6, Inc, "INC", ZeroPage, 5, false, RMW, false},
	{0xe8, Inx, "INX", Implied, 2, false, Read, false},
	{0xe9, Sbc, "SBC", Immediate, 2, false, Read, false},
	{0xea, Nop, "NOP", Implied, 2, false, Read, false},
	{0xec, Cpx, "CPX", Absolute, 4, false, Read, false},
	{0xed, Sbc, "SBC", Absolute, 4, false, Read, false},
	{0xee, Inc, "INC", Absolute, 6, false, RMW, false},
	{0xf0, Beq, "BEQ", Relative, 2, true, Flow, false},
	{0xf1, Sbc, "SBC", IndirectIndexed, 5, true, Read, false},
	{0xf5, Sbc, "SBC", ZeroPageIndexedX, 4, false, Read, false},
	{0xf6, Inc, "INC", ZeroPageIndexedX, 6, false, RMW, false},
	{0xf8, Sed, "SED", Implied, 2, false, Read, false},
	{0xf9, Sbc, "SBC", AbsoluteIndexedY, 4, true, Read, false},
	{0xfd, Sbc, "SBC", AbsoluteIndexedX, 4, true, Read, false},
	{0xfe, Inc, "INC", AbsoluteIndexedX, 7, false, RMW, false},
}

// GetDefinitions returns the complete instruction table, keyed by opcode.
// Every opcode maps to a definition; opcodes outside the documented set are
// given a two-cycle NOP definition, marked Undocumented.
func GetDefinitions() []*Definition {
	defs := make([]*Definition, 256)

	for i := range documented {
		defs[documented[i].OpCode] = &documented[i]
	}

	for i := 0; i < 256; i++ {
		if defs[i] == nil {
			defs[i] = &Definition{
				OpCode:         uint8(i),
				Operator:       Nop,
				Mnemonic:       "NOP",
				AddressingMode: Implied,
				Cycles:         2,
				Effect:         Read,
				Undocumented:   true,
			}
		}
	}

	return defs
}
