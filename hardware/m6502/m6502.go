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

import (
	"fmt"

	"github.com/darmod23/chips/hardware/m6502/instructions"
	"github.com/darmod23/chips/hardware/m6502/registers"
	"github.com/darmod23/chips/logger"
)

// TickFn is the callback through which the CPU communicates with the outside
// world. The function receives the pin word for the current clock cycle and
// must perform one cycle's worth of bus work: answer the address on the data
// lines if the RW pin is set, or accept the data lines if it is clear. Each
// call is atomic and self-contained; the CPU never assumes work spans more
// than one call.
type TickFn func(pins uint64) uint64

// vector addresses. the low byte of the vector is read from the named
// address and the high byte from the address immediately after.
const (
	NMIVector   uint16 = 0xfffa
	ResetVector uint16 = 0xfffc
	IRQVector   uint16 = 0xfffe
)

// address of the bottom of the stack.
const stackOrigin uint16 = 0x0100

// M6502 implements a cycle-stepped 6502. Register logic is implemented by
// the registers sub-package.
type M6502 struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.Register
	Status registers.StatusRegister

	// Pins is the pin word most recently exchanged with the tick callback.
	// a host wanting to raise the IRQ or NMI line between instructions
	// should continue to assert the pin on every tick for as long as the
	// line is held
	Pins uint64

	// BreakMask ends an Exec() run early when a pin in the mask is observed
	// to be active after an instruction has completed. for use by a
	// monitoring host; the CPU makes no decisions of its own with it
	BreakMask uint64

	// LastResult records the most recently executed instruction
	LastResult Result

	tick TickFn
	defs []*instructions.Definition

	// NMI is edge triggered. the state of the pin at the previous
	// instruction boundary decides whether a new edge has occurred
	lastNMI bool
}

// NewM6502 is the preferred method of initialisation for the M6502 type.
// The CPU is created in the documented post-power-on state. The tick
// callback is mandatory; a nil callback is a programming error and the
// function panics rather than limp on.
func NewM6502(tick TickFn) *M6502 {
	if tick == nil {
		panic("m6502: tick callback is mandatory")
	}

	mc := &M6502{
		tick: tick,
		defs: instructions.GetDefinitions(),
	}

	mc.Pins = RW
	mc.Status.Reset()
	mc.SP.Load(0xfd)

	return mc
}

func (mc *M6502) String() string {
	return fmt.Sprintf("PC=%s A=%s X=%s Y=%s SP=%s SR=%s",
		mc.PC, mc.A, mc.X, mc.Y, mc.SP, mc.Status)
}

// Reset restores the documented post-reset register state and loads the
// program counter from the reset vector. The two vector reads go through
// the tick protocol like any other bus transaction.
func (mc *M6502) Reset() {
	mc.LastResult.Reset()
	mc.Status.Reset()
	mc.SP.Load(0xfd)
	mc.Pins = RW
	mc.lastNMI = false

	// the reset vector reads are bus transactions like any other
	lo := mc.read8Bit(ResetVector)
	hi := mc.read8Bit(ResetVector + 1)
	mc.PC.Load(uint16(hi)<<8 | uint16(lo))
}

// read8Bit performs a single read cycle at the specified address.
func (mc *M6502) read8Bit(address uint16) uint8 {
	pins := mc.tick(MakePins(RW, address, 0)) & PinMask
	mc.Pins = pins

	// +1 cycle
	mc.LastResult.Cycles++

	return Data(pins)
}

// write8Bit performs a single write cycle of value to the specified address.
func (mc *M6502) write8Bit(address uint16, value uint8) {
	// RW clear indicates a write cycle
	mc.Pins = mc.tick(MakePins(0, address, value)) & PinMask

	// +1 cycle
	mc.LastResult.Cycles++
}

// read8BitPC reads from the program counter location and advances the
// program counter.
func (mc *M6502) read8BitPC() uint8 {
	v := mc.read8Bit(mc.PC.Address())
	mc.PC.Add(1)
	return v
}

// phantom reads are bus transactions the CPU performs as a side effect of
// its internal timing. the value read is discarded but the cycle is real
// and visible to the host.
func (mc *M6502) phantomRead(address uint16) {
	_ = mc.read8Bit(address)
}

func (mc *M6502) push(value uint8) {
	mc.write8Bit(stackOrigin|mc.SP.Address(), value)
	mc.SP.Load(mc.SP.Value() - 1)
}

func (mc *M6502) pull() uint8 {
	mc.SP.Load(mc.SP.Value() + 1)
	return mc.read8Bit(stackOrigin | mc.SP.Address())
}

// branch implements the relative addressing branch instructions. offset has
// already been read from the program. a taken branch costs one extra cycle
// and a further cycle if the branch destination is on a different page.
func (mc *M6502) branch(flag bool, offset uint8) {
	mc.LastResult.BranchSuccess = flag

	if !flag {
		return
	}

	// sign extend the offset
	address := uint16(offset)
	if address&0x0080 == 0x0080 {
		address |= 0xff00
	}

	oldPC := mc.PC.Address()

	// phantom read while the low byte of the PC is adjusted
	// +1 cycle
	mc.phantomRead(oldPC)

	// add offset to the low byte of the PC only, keeping the old high byte.
	// the high byte is fixed up on the next cycle if required
	mc.PC.Add(address)
	mc.LastResult.PageFault = oldPC&0xff00 != mc.PC.Address()&0xff00
	mc.PC.Load(oldPC&0xff00 | mc.PC.Address()&0x00ff)

	if mc.LastResult.PageFault {
		// phantom read at the not-yet-fixed-up address
		// +1 cycle
		mc.phantomRead(mc.PC.Address())

		if address&0xff00 == 0xff00 {
			mc.PC.Add(0xff00)
		} else {
			mc.PC.Add(0x0100)
		}
	}
}

// interrupt performs the 7 cycle interrupt entry sequence, redirecting the
// program counter through the specified vector. the status byte pushed to
// the stack has the break flag clear, distinguishing a hardware interrupt
// from BRK.
func (mc *M6502) interrupt(vector uint16) {
	// two phantom reads while the interrupt is being recognised
	// +2 cycles
	mc.phantomRead(mc.PC.Address())
	mc.phantomRead(mc.PC.Address())

	// +3 cycles
	mc.push(uint8(mc.PC.Address() >> 8))
	mc.push(uint8(mc.PC.Address() & 0xff))
	mc.Status.Break = false
	mc.push(mc.Status.Value())

	mc.Status.InterruptDisable = true

	// +2 cycles
	lo := mc.read8Bit(vector)
	hi := mc.read8Bit(vector + 1)
	mc.PC.Load(uint16(hi)<<8 | uint16(lo))
}

// ExecuteInstruction decodes and executes exactly one instruction, or one
// interrupt entry sequence if an interrupt is pending at the instruction
// boundary. It returns the number of cycles consumed; the tick callback
// will have been called exactly that many times.
func (mc *M6502) ExecuteInstruction() (int, error) {
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	// observe interrupt pins at the instruction boundary. NMI is edge
	// triggered, IRQ is level triggered and masked by the interrupt disable
	// flag
	nmi := mc.Pins&NMI == NMI
	nmiEdge := nmi && !mc.lastNMI
	mc.lastNMI = nmi

	if nmiEdge {
		mc.interrupt(NMIVector)
		return mc.LastResult.Cycles, nil
	}

	if mc.Pins&IRQ == IRQ && !mc.Status.InterruptDisable {
		mc.interrupt(IRQVector)
		return mc.LastResult.Cycles, nil
	}

	// read opcode and look up instruction definition
	// +1 cycle
	opcode := mc.read8BitPC()
	defn := mc.defs[opcode]
	if defn == nil {
		// the definitions table covers every opcode so this should be
		// impossible. the check is kept in case the table generation is
		// ever broken
		return mc.LastResult.Cycles, fmt.Errorf("m6502: no definition for opcode %#02x", opcode)
	}
	mc.LastResult.Defn = defn

	if defn.Undocumented {
		logger.Logf("m6502", "undocumented opcode %#02x executed as NOP", opcode)
	}

	// address is the effective address for memory accessing instructions
	var address uint16

	// value is the operand value for instructions that work on data: read
	// from the program for immediate mode and from memory for the other
	// data modes. for read-modify-write instructions the value is written
	// back to memory after modification
	var value uint8

	// gather address and value according to the addressing mode. phantom
	// bus transactions are performed where the real CPU performs them, so
	// that cycle counts and pin traffic are correct
	switch defn.AddressingMode {
	case instructions.Implied:
		// the next instruction byte is read but the PC is not incremented
		// +1 cycle
		mc.phantomRead(mc.PC.Address())

	case instructions.Accumulator:
		// +1 cycle
		mc.phantomRead(mc.PC.Address())
		value = mc.A.Value()

	case instructions.Immediate:
		// +1 cycle
		value = mc.read8BitPC()
		mc.LastResult.InstructionData = uint16(value)

	case instructions.Relative:
		// +1 cycle
		value = mc.read8BitPC()
		mc.LastResult.InstructionData = uint16(value)

	case instructions.Absolute:
		// +2 cycles
		lo := mc.read8BitPC()

		// JSR performs its stack work before reading the high byte of the
		// target address
		if defn.Operator == instructions.Jsr {
			// +3 cycles
			mc.phantomRead(stackOrigin | mc.SP.Address())
			mc.push(uint8(mc.PC.Address() >> 8))
			mc.push(uint8(mc.PC.Address() & 0xff))
		}

		hi := mc.read8BitPC()
		address = uint16(hi)<<8 | uint16(lo)
		mc.LastResult.InstructionData = address

	case instructions.ZeroPage:
		// +1 cycle
		address = uint16(mc.read8BitPC())
		mc.LastResult.InstructionData = address

	case instructions.Indirect:
		// JMP (addr) is the only instruction using this mode
		// +2 cycles
		lo := mc.read8BitPC()
		hi := mc.read8BitPC()
		indirect := uint16(hi)<<8 | uint16(lo)
		mc.LastResult.InstructionData = indirect

		// the 6502 does not carry into the high byte when reading the
		// second byte of the target address. a vector at the very end of a
		// page wraps around to the start of the same page
		// +2 cycles
		alo := mc.read8Bit(indirect)
		ahi := mc.read8Bit(indirect&0xff00 | (indirect+1)&0x00ff)
		address = uint16(ahi)<<8 | uint16(alo)

	case instructions.IndexedIndirect: // (ind,X)
		// +1 cycle
		base := mc.read8BitPC()
		mc.LastResult.InstructionData = uint16(base)

		// phantom read while the index is added
		// +1 cycle
		mc.phantomRead(uint16(base))

		// +2 cycles
		lo := mc.read8Bit(uint16(base + mc.X.Value()))
		hi := mc.read8Bit(uint16(base + mc.X.Value() + 1))
		address = uint16(hi)<<8 | uint16(lo)

	case instructions.IndirectIndexed: // (ind),Y
		// +1 cycle
		base := mc.read8BitPC()
		mc.LastResult.InstructionData = uint16(base)

		// +2 cycles
		lo := mc.read8Bit(uint16(base))
		hi := mc.read8Bit(uint16(base + 1))

		address = uint16(hi)<<8 | uint16(lo) + mc.Y.Address()
		unfixed := uint16(hi)<<8 | uint16(lo+mc.Y.Value())
		mc.LastResult.PageFault = address != unfixed

		// write instructions always spend the fix-up cycle; read
		// instructions only when a page boundary is crossed
		if defn.Effect != instructions.Read || mc.LastResult.PageFault {
			// +1 cycle
			mc.phantomRead(unfixed)
		}

	case instructions.AbsoluteIndexedX, instructions.AbsoluteIndexedY:
		// +2 cycles
		lo := mc.read8BitPC()
		hi := mc.read8BitPC()
		mc.LastResult.InstructionData = uint16(hi)<<8 | uint16(lo)

		index := mc.X.Value()
		if defn.AddressingMode == instructions.AbsoluteIndexedY {
			index = mc.Y.Value()
		}

		address = mc.LastResult.InstructionData + uint16(index)
		unfixed := uint16(hi)<<8 | uint16(lo+index)
		mc.LastResult.PageFault = address != unfixed

		// write and read-modify-write instructions always spend the fix-up
		// cycle
		if defn.Effect != instructions.Read || mc.LastResult.PageFault {
			// +1 cycle
			mc.phantomRead(unfixed)
		}

	case instructions.ZeroPageIndexedX:
		// +1 cycle
		base := mc.read8BitPC()
		mc.LastResult.InstructionData = uint16(base)

		// phantom read while the index is added. the address wraps within
		// page zero
		// +1 cycle
		mc.phantomRead(uint16(base))
		address = uint16(base + mc.X.Value())

	case instructions.ZeroPageIndexedY:
		// +1 cycle
		base := mc.read8BitPC()
		mc.LastResult.InstructionData = uint16(base)

		// +1 cycle
		mc.phantomRead(uint16(base))
		address = uint16(base + mc.Y.Value())
	}

	// read the operand value for read and read-modify-write instructions
	switch defn.Effect {
	case instructions.Read, instructions.RMW:
		switch defn.AddressingMode {
		case instructions.Implied, instructions.Accumulator, instructions.Immediate, instructions.Relative:
			// value already gathered, or not required
		default:
			// +1 cycle
			value = mc.read8Bit(address)
		}
	}

	err := mc.execute(defn, address, value)
	if err != nil {
		return mc.LastResult.Cycles, err
	}

	return mc.LastResult.Cycles, nil
}

// execute performs the operation indicated by the instruction definition.
// any remaining bus transactions for the instruction happen here.
func (mc *M6502) execute(defn *instructions.Definition, address uint16, value uint8) error {
	// scratch register for operations that do not target a named register
	var scratch registers.Register

	// rmw performs the write-back portion of a read-modify-write
	// instruction: the unmodified value is written back while the
	// modification happens, followed by the modified value
	rmw := func(modified uint8) {
		if defn.AddressingMode == instructions.Accumulator {
			mc.A.Load(modified)
			return
		}

		// +2 cycles
		mc.write8Bit(address, value)
		mc.write8Bit(address, modified)
	}

	switch defn.Operator {
	case instructions.Nop:
		// does nothing obviously

	case instructions.Lda:
		mc.A.Load(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Ldx:
		mc.X.Load(value)
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Ldy:
		mc.Y.Load(value)
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case instructions.Sta:
		// +1 cycle
		mc.write8Bit(address, mc.A.Value())

	case instructions.Stx:
		// +1 cycle
		mc.write8Bit(address, mc.X.Value())

	case instructions.Sty:
		// +1 cycle
		mc.write8Bit(address, mc.Y.Value())

	case instructions.Tax:
		mc.X.Load(mc.A.Value())
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Tay:
		mc.Y.Load(mc.A.Value())
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case instructions.Txa:
		mc.A.Load(mc.X.Value())
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Tya:
		mc.A.Load(mc.Y.Value())
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Tsx:
		mc.X.Load(mc.SP.Value())
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Txs:
		// does not affect status flags
		mc.SP.Load(mc.X.Value())

	case instructions.Adc:
		if mc.Status.DecimalMode {
			carry, zero, overflow, sign := mc.A.AddDecimal(value, mc.Status.Carry)
			mc.Status.Carry = carry
			mc.Status.Zero = zero
			mc.Status.Overflow = overflow
			mc.Status.Sign = sign
		} else {
			carry, overflow := mc.A.Add(value, mc.Status.Carry)
			mc.Status.Carry = carry
			mc.Status.Overflow = overflow
			mc.Status.Zero = mc.A.IsZero()
			mc.Status.Sign = mc.A.IsNegative()
		}

	case instructions.Sbc:
		if mc.Status.DecimalMode {
			carry, zero, overflow, sign := mc.A.SubtractDecimal(value, mc.Status.Carry)
			mc.Status.Carry = carry
			mc.Status.Zero = zero
			mc.Status.Overflow = overflow
			mc.Status.Sign = sign
		} else {
			carry, overflow := mc.A.Subtract(value, mc.Status.Carry)
			mc.Status.Carry = carry
			mc.Status.Overflow = overflow
			mc.Status.Zero = mc.A.IsZero()
			mc.Status.Sign = mc.A.IsNegative()
		}

	case instructions.Cmp:
		// compare computes the subtraction in a scratch register, leaving
		// the accumulator unmodified. only the flags record the result
		scratch = mc.A
		carry, _ := scratch.Subtract(value, true)
		mc.Status.Carry = carry
		mc.Status.Zero = scratch.IsZero()
		mc.Status.Sign = scratch.IsNegative()

	case instructions.Cpx:
		scratch = mc.X
		carry, _ := scratch.Subtract(value, true)
		mc.Status.Carry = carry
		mc.Status.Zero = scratch.IsZero()
		mc.Status.Sign = scratch.IsNegative()

	case instructions.Cpy:
		scratch = mc.Y
		carry, _ := scratch.Subtract(value, true)
		mc.Status.Carry = carry
		mc.Status.Zero = scratch.IsZero()
		mc.Status.Sign = scratch.IsNegative()

	case instructions.And:
		mc.A.AND(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Ora:
		mc.A.ORA(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Eor:
		mc.A.EOR(value)
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Bit:
		scratch.Load(value)
		mc.Status.Sign = scratch.IsNegative()
		mc.Status.Overflow = scratch.IsBitV()
		scratch.AND(mc.A.Value())
		mc.Status.Zero = scratch.IsZero()

	case instructions.Asl:
		scratch.Load(value)
		mc.Status.Carry = scratch.ASL()
		mc.Status.Zero = scratch.IsZero()
		mc.Status.Sign = scratch.IsNegative()
		rmw(scratch.Value())

	case instructions.Lsr:
		scratch.Load(value)
		mc.Status.Carry = scratch.LSR()
		mc.Status.Zero = scratch.IsZero()
		mc.Status.Sign = scratch.IsNegative()
		rmw(scratch.Value())

	case instructions.Rol:
		scratch.Load(value)
		mc.Status.Carry = scratch.ROL(mc.Status.Carry)
		mc.Status.Zero = scratch.IsZero()
		mc.Status.Sign = scratch.IsNegative()
		rmw(scratch.Value())

	case instructions.Ror:
		scratch.Load(value)
		mc.Status.Carry = scratch.ROR(mc.Status.Carry)
		mc.Status.Zero = scratch.IsZero()
		mc.Status.Sign = scratch.IsNegative()
		rmw(scratch.Value())

	case instructions.Inc:
		scratch.Load(value + 1)
		mc.Status.Zero = scratch.IsZero()
		mc.Status.Sign = scratch.IsNegative()
		rmw(scratch.Value())

	case instructions.Dec:
		scratch.Load(value - 1)
		mc.Status.Zero = scratch.IsZero()
		mc.Status.Sign = scratch.IsNegative()
		rmw(scratch.Value())

	case instructions.Inx:
		mc.X.Load(mc.X.Value() + 1)
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Iny:
		mc.Y.Load(mc.Y.Value() + 1)
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case instructions.Dex:
		mc.X.Load(mc.X.Value() - 1)
		mc.Status.Zero = mc.X.IsZero()
		mc.Status.Sign = mc.X.IsNegative()

	case instructions.Dey:
		mc.Y.Load(mc.Y.Value() - 1)
		mc.Status.Zero = mc.Y.IsZero()
		mc.Status.Sign = mc.Y.IsNegative()

	case instructions.Clc:
		mc.Status.Carry = false

	case instructions.Sec:
		mc.Status.Carry = true

	case instructions.Cli:
		mc.Status.InterruptDisable = false

	case instructions.Sei:
		mc.Status.InterruptDisable = true

	case instructions.Cld:
		mc.Status.DecimalMode = false

	case instructions.Sed:
		mc.Status.DecimalMode = true

	case instructions.Clv:
		mc.Status.Overflow = false

	case instructions.Pha:
		// +1 cycle
		mc.push(mc.A.Value())

	case instructions.Pla:
		// the stack pointer adjustment costs a cycle before the pull
		// +2 cycles
		mc.phantomRead(stackOrigin | mc.SP.Address())
		mc.A.Load(mc.pull())
		mc.Status.Zero = mc.A.IsZero()
		mc.Status.Sign = mc.A.IsNegative()

	case instructions.Php:
		// the pushed status byte always has the break flag set
		mc.Status.Break = true

		// +1 cycle
		mc.push(mc.Status.Value())

	case instructions.Plp:
		// +2 cycles
		mc.phantomRead(stackOrigin | mc.SP.Address())
		mc.Status.Load(mc.pull())

	case instructions.Jmp:
		mc.PC.Load(address)

	case instructions.Jsr:
		// stack work was performed during Absolute address gathering
		mc.PC.Load(address)

	case instructions.Rts:
		// +3 cycles
		mc.phantomRead(stackOrigin | mc.SP.Address())
		lo := mc.pull()
		hi := mc.pull()
		mc.PC.Load(uint16(hi)<<8 | uint16(lo))

		// PC increment is a cycle of its own
		// +1 cycle
		mc.phantomRead(mc.PC.Address())
		mc.PC.Add(1)

	case instructions.Brk:
		// BRK advances the PC past the padding byte that follows the
		// opcode. the padding byte was consumed by the Implied phantom
		// read so the PC needs a further increment
		mc.PC.Add(1)

		// +2 cycles
		mc.push(uint8(mc.PC.Address() >> 8))
		mc.push(uint8(mc.PC.Address() & 0xff))

		// the pushed status byte has the break flag set, distinguishing
		// BRK from a hardware interrupt
		mc.Status.Break = true

		// +1 cycle
		mc.push(mc.Status.Value())
		mc.Status.InterruptDisable = true

		// +2 cycles
		lo := mc.read8Bit(IRQVector)
		hi := mc.read8Bit(IRQVector + 1)
		mc.PC.Load(uint16(hi)<<8 | uint16(lo))

	case instructions.Rti:
		// +2 cycles
		mc.phantomRead(stackOrigin | mc.SP.Address())
		mc.Status.Load(mc.pull())

		// +2 cycles
		lo := mc.pull()
		hi := mc.pull()
		mc.PC.Load(uint16(hi)<<8 | uint16(lo))

	case instructions.Bcc:
		mc.branch(!mc.Status.Carry, value)

	case instructions.Bcs:
		mc.branch(mc.Status.Carry, value)

	case instructions.Beq:
		mc.branch(mc.Status.Zero, value)

	case instructions.Bne:
		mc.branch(!mc.Status.Zero, value)

	case instructions.Bmi:
		mc.branch(mc.Status.Sign, value)

	case instructions.Bpl:
		mc.branch(!mc.Status.Sign, value)

	case instructions.Bvc:
		mc.branch(!mc.Status.Overflow, value)

	case instructions.Bvs:
		mc.branch(mc.Status.Overflow, value)

	default:
		return fmt.Errorf("m6502: unimplemented operator for opcode %#02x", defn.OpCode)
	}

	return nil
}

// Exec repeatedly executes instructions until at least the requested number
// of cycles have been consumed or a pin in the BreakMask is observed to be
// active after an instruction. Instructions are indivisible so the returned
// cycle count may exceed the request.
func (mc *M6502) Exec(cycles int) (int, error) {
	total := 0

	for total < cycles {
		n, err := mc.ExecuteInstruction()
		total += n
		if err != nil {
			return total, err
		}

		if mc.Pins&mc.BreakMask != 0 {
			break
		}
	}

	return total, nil
}
