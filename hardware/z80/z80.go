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
	"fmt"
)

// TickFn is called once per clock cycle with the current pin word. The host
// inspects the control and address pins, services any memory or IO request,
// and returns the pin word for the next cycle. Reads are answered by merging
// the requested byte into the data bus bits of the returned word.
type TickFn func(pins uint64) uint64

// interrupt entry points
const (
	NMIVector uint16 = 0x0066
	IM1Vector uint16 = 0x0038
)

// Z80 is an emulation of the Z80 processor. The CPU has no access to memory
// of its own, every bus transaction is presented to the host through the
// tick callback.
type Z80 struct {
	// main register bank, indexed by the reg* constants
	regs [8]uint8

	// alternate register bank
	af2 uint16
	bc2 uint16
	de2 uint16
	hl2 uint16

	IX uint16
	IY uint16
	SP uint16
	PC uint16

	// memptr. updated by many instructions and observable only through the
	// undocumented flag bits of BIT (HL)
	WZ uint16

	I uint8
	R uint8

	// interrupt state
	IM        uint8
	IFF1      bool
	IFF2      bool
	pendingEI bool
	lastNMI   bool

	Halted bool

	// Pins is the pin word as of the most recent clock cycle
	Pins uint64

	// BreakMask halts a Run() loop at the next instruction boundary when any
	// of its pins are raised
	BreakMask uint64

	// number of clock cycles consumed by the most recent Step()
	Cycles int

	tick TickFn
}

// NewZ80 is the preferred method of initialisation for the Z80 structure.
// The tick callback is mandatory.
func NewZ80(tick TickFn) *Z80 {
	if tick == nil {
		panic("z80: tick callback is mandatory")
	}
	z := &Z80{tick: tick}
	z.Reset()
	return z
}

func (z *Z80) String() string {
	return fmt.Sprintf("PC=%04x AF=%04x BC=%04x DE=%04x HL=%04x IX=%04x IY=%04x SP=%04x IM=%d",
		z.PC, z.AF(), z.BC(), z.DE(), z.HL(), z.IX, z.IY, z.SP, z.IM)
}

// Reset places the CPU in the state it is in after the reset line has been
// released. Execution resumes from address zero.
func (z *Z80) Reset() {
	z.regs = [8]uint8{}
	z.SetAF(0xffff)
	z.af2 = 0
	z.bc2 = 0
	z.de2 = 0
	z.hl2 = 0
	z.IX = 0
	z.IY = 0
	z.SP = 0xffff
	z.PC = 0
	z.WZ = 0
	z.I = 0
	z.R = 0
	z.IM = 0
	z.IFF1 = false
	z.IFF2 = false
	z.pendingEI = false
	z.lastNMI = false
	z.Halted = false
	z.Pins = 0
}

// On raises the given pins in the stored pin word.
func (z *Z80) On(pins uint64) {
	z.Pins |= pins
}

// Off lowers the given pins in the stored pin word.
func (z *Z80) Off(pins uint64) {
	z.Pins &^= pins
}

// Any returns true if at least one of the given pins is raised.
func (z *Z80) Any(pins uint64) bool {
	return z.Pins&pins != 0
}

// All returns true if every one of the given pins is raised.
func (z *Z80) All(pins uint64) bool {
	return z.Pins&pins == pins
}

// tick1 runs a single clock cycle, presenting the stored pin word to the
// host and adopting whatever the host returns.
func (z *Z80) tick1() {
	z.Pins = z.tick(z.Pins) & PinMask
	z.Cycles++
}

// tickN runs internal cycles during which the CPU makes no bus request.
func (z *Z80) tickN(n int) {
	for i := 0; i < n; i++ {
		z.tick1()
	}
}

// fetch runs an opcode fetch machine cycle. four clock cycles: two for the
// opcode read with M1 raised, two for the refresh of dynamic memory with the
// IR pair on the address bus.
func (z *Z80) fetch() uint8 {
	z.On(M1)
	z.Pins = SetAddr(z.Pins, z.PC)
	z.PC++
	z.tick1()

	z.On(MREQ | RD)
	z.tick1()
	op := Data(z.Pins)
	z.bumpR()

	z.Off(M1 | MREQ | RD)
	z.On(RFSH)
	z.Pins = SetAddr(z.Pins, z.IR())
	z.tick1()

	z.On(MREQ)
	z.tick1()
	z.Off(MREQ | RFSH)

	return op
}

// memRead runs a memory read machine cycle of three clock cycles.
func (z *Z80) memRead(addr uint16) uint8 {
	z.Pins = SetAddr(z.Pins, addr)
	z.tick1()

	z.On(MREQ | RD)
	z.tick1()
	v := Data(z.Pins)

	z.Off(MREQ | RD)
	z.tick1()

	return v
}

// memWrite runs a memory write machine cycle of three clock cycles.
func (z *Z80) memWrite(addr uint16, v uint8) {
	z.Pins = SetAddr(z.Pins, addr)
	z.tick1()

	z.On(MREQ | WR)
	z.Pins = SetData(z.Pins, v)
	z.tick1()

	z.Off(MREQ | WR)
	z.tick1()
}

// ioRead runs an input machine cycle. four clock cycles, the extra one being
// the wait state the CPU inserts on every IO transaction.
func (z *Z80) ioRead(port uint16) uint8 {
	z.Pins = SetAddr(z.Pins, port)
	z.tick1()

	z.On(IORQ | RD)
	z.tick1()
	z.tick1()
	v := Data(z.Pins)

	z.Off(IORQ | RD)
	z.tick1()

	return v
}

// ioWrite runs an output machine cycle of four clock cycles.
func (z *Z80) ioWrite(port uint16, v uint8) {
	z.Pins = SetAddr(z.Pins, port)
	z.tick1()

	z.On(IORQ | WR)
	z.Pins = SetData(z.Pins, v)
	z.tick1()
	z.tick1()

	z.Off(IORQ | WR)
	z.tick1()
}

// immWord reads a 16-bit immediate operand, low byte first.
func (z *Z80) immWord() uint16 {
	lo := z.memRead(z.PC)
	z.PC++
	hi := z.memRead(z.PC)
	z.PC++
	return uint16(hi)<<8 | uint16(lo)
}

// push writes a 16-bit value to the stack, high byte first.
func (z *Z80) push(v uint16) {
	z.SP--
	z.memWrite(z.SP, uint8(v>>8))
	z.SP--
	z.memWrite(z.SP, uint8(v))
}

// pop reads a 16-bit value from the stack.
func (z *Z80) pop() uint16 {
	lo := z.memRead(z.SP)
	z.SP++
	hi := z.memRead(z.SP)
	z.SP++
	return uint16(hi)<<8 | uint16(lo)
}

// Step executes a single instruction, running the tick callback once per
// clock cycle. Interrupt and reset pins are sampled before the opcode fetch.
// It returns the number of clock cycles consumed.
func (z *Z80) Step() int {
	z.Cycles = 0

	if z.Any(RESET) {
		z.Off(RESET)
		z.Reset()
		z.tickN(3)
		return z.Cycles
	}

	// EI raises the interrupt flip-flops after the instruction that follows
	// it has completed, so a newly enabled interrupt is not accepted at this
	// boundary
	intHoldoff := false
	if z.pendingEI {
		z.pendingEI = false
		z.IFF1 = true
		z.IFF2 = true
		intHoldoff = true
	}

	// NMI is edge triggered
	nmi := z.Any(NMI)
	nmiEdge := nmi && !z.lastNMI
	z.lastNMI = nmi

	if nmiEdge {
		z.nonMaskableInterrupt()
		return z.Cycles
	}

	if z.Any(INT) && z.IFF1 && !intHoldoff {
		z.maskableInterrupt()
		return z.Cycles
	}

	if z.Halted {
		// the CPU fetches NOPs until an interrupt arrives. the refresh
		// register keeps counting
		z.bumpR()
		z.tickN(4)
		return z.Cycles
	}

	op := z.fetch()
	z.execute(op, nil)

	return z.Cycles
}

// Run executes instructions until at least the given number of clock cycles
// have elapsed, or until a pin in BreakMask is raised. It returns the number
// of clock cycles actually consumed; instructions are never split so the
// return value may exceed the request.
func (z *Z80) Run(cycles int) int {
	total := 0
	for total < cycles {
		total += z.Step()
		if z.Pins&z.BreakMask != 0 {
			break
		}
	}
	return total
}

// nonMaskableInterrupt enters the non-maskable interrupt service routine.
// eleven clock cycles.
func (z *Z80) nonMaskableInterrupt() {
	z.leaveHalt()
	z.IFF2 = z.IFF1
	z.IFF1 = false
	z.bumpR()
	z.tickN(5)
	z.push(z.PC)
	z.PC = NMIVector
	z.WZ = z.PC
}

// maskableInterrupt enters the maskable interrupt service routine according
// to the current interrupt mode. the acknowledge machine cycle raises M1 and
// IORQ together, during which the host may drive a vector byte onto the data
// bus for mode 2.
func (z *Z80) maskableInterrupt() {
	z.leaveHalt()
	z.IFF1 = false
	z.IFF2 = false
	z.bumpR()

	z.On(M1 | IORQ)
	z.Pins = SetAddr(z.Pins, z.PC)
	z.tickN(5)
	vector := Data(z.Pins)
	z.Off(M1 | IORQ)
	z.tickN(2)

	z.push(z.PC)

	switch z.IM {
	case 2:
		addr := uint16(z.I)<<8 | uint16(vector)
		lo := z.memRead(addr)
		hi := z.memRead(addr + 1)
		z.PC = uint16(hi)<<8 | uint16(lo)
	default:
		// mode 0 assumes the conventional RST 38h on the bus, making it
		// equivalent to mode 1
		z.PC = IM1Vector
	}
	z.WZ = z.PC
}

func (z *Z80) leaveHalt() {
	if z.Halted {
		z.Halted = false
		z.Off(HALT)
		z.PC++
	}
}
