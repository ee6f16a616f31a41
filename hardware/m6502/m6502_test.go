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

package m6502_test

import (
	"testing"

	"github.com/darmod23/chips/hardware/m6502"
	"github.com/darmod23/chips/test"
)

// mockMem is a flat 64KiB memory answering the tick protocol.
type mockMem struct {
	internal [0x10000]uint8

	// number of tick calls observed
	ticks int

	// pins held active by the "hardware" on every tick. how a real device
	// holds an interrupt line
	hold uint64
}

func (mem *mockMem) Tick(pins uint64) uint64 {
	mem.ticks++
	pins |= mem.hold
	addr := m6502.Addr(pins)
	if pins&m6502.RW == m6502.RW {
		return m6502.SetData(pins, mem.internal[addr])
	}
	mem.internal[addr] = m6502.Data(pins)
	return pins
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

// newTestCPU returns a CPU and memory with the reset vector pointing at
// origin, reset already performed.
func newTestCPU(t *testing.T, origin uint16) (*m6502.M6502, *mockMem) {
	t.Helper()

	mem := &mockMem{}
	mem.internal[0xfffc] = uint8(origin & 0xff)
	mem.internal[0xfffd] = uint8(origin >> 8)

	mc := m6502.NewM6502(mem.Tick)
	mc.Reset()

	return mc, mem
}

func step(t *testing.T, mc *m6502.M6502) int {
	t.Helper()
	cycles, err := mc.ExecuteInstruction()
	if err != nil {
		t.Fatal(err)
	}
	return cycles
}

func TestNilTickCallback(t *testing.T) {
	defer func() {
		test.ExpectSuccess(t, recover() != nil)
	}()
	_ = m6502.NewM6502(nil)
}

func TestReset(t *testing.T) {
	mc, _ := newTestCPU(t, 0x0200)

	// architecturally defined post-reset constants
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0200))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xfd))
	test.ExpectEquality(t, mc.Status.Value(), uint8(0x24))
}

func TestLoadImmediate(t *testing.T) {
	// end-to-end scenario: reset vector 0x0200, LDA #$42 at 0x0200
	mc, mem := newTestCPU(t, 0x0200)
	mem.putInstructions(0x0200, 0xa9, 0x42)

	cycles := step(t, mc)
	test.ExpectEquality(t, cycles, 2)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x42))
	test.ExpectFailure(t, mc.Status.Zero)
	test.ExpectFailure(t, mc.Status.Sign)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0202))
}

func TestNOPIdempotence(t *testing.T) {
	mc, mem := newTestCPU(t, 0x0200)
	mem.putInstructions(0x0200, 0xea, 0xea, 0xea, 0xea)

	for i := 1; i <= 4; i++ {
		cycles := step(t, mc)
		test.ExpectEquality(t, cycles, 2)
		test.ExpectEquality(t, mc.PC.Address(), 0x0200+uint16(i))
	}
}

func TestOneTickPerCycle(t *testing.T) {
	mc, mem := newTestCPU(t, 0x0200)

	// LDA $1234,X with X causing a page cross
	mem.putInstructions(0x0200, 0xa2, 0xff, 0xbd, 0x01, 0x12)
	mem.internal[0x1300] = 0x99

	step(t, mc) // LDX #$ff

	mem.ticks = 0
	cycles := step(t, mc) // LDA $1201,X
	test.ExpectEquality(t, cycles, 5)
	test.ExpectEquality(t, mem.ticks, 5)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x99))
}

func TestStatusInstructions(t *testing.T) {
	mc, mem := newTestCPU(t, 0x0200)

	// SEC; CLC; SEI; CLI; SED; CLD
	mem.putInstructions(0x0200, 0x38, 0x18, 0x78, 0x58, 0xf8, 0xd8)

	step(t, mc)
	test.ExpectSuccess(t, mc.Status.Carry)
	step(t, mc)
	test.ExpectFailure(t, mc.Status.Carry)
	step(t, mc)
	test.ExpectSuccess(t, mc.Status.InterruptDisable)
	step(t, mc)
	test.ExpectFailure(t, mc.Status.InterruptDisable)
	step(t, mc)
	test.ExpectSuccess(t, mc.Status.DecimalMode)
	step(t, mc)
	test.ExpectFailure(t, mc.Status.DecimalMode)
}

func TestArithmetic(t *testing.T) {
	mc, mem := newTestCPU(t, 0x0200)

	// LDA #$01; ADC #$0a
	mem.putInstructions(0x0200, 0xa9, 0x01, 0x69, 0x0a)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x0b))
	test.ExpectFailure(t, mc.Status.Carry)

	// LDA #$ff; ADC #$01 -> 0x00, carry set, zero set
	mem.putInstructions(0x0204, 0xa9, 0xff, 0x18, 0x69, 0x01)
	step(t, mc)
	step(t, mc) // CLC
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x00))
	test.ExpectSuccess(t, mc.Status.Carry)
	test.ExpectSuccess(t, mc.Status.Zero)

	// SEC; LDA #$0a; SBC #$0b -> 0xff, borrow (carry clear), sign set
	mem.putInstructions(0x0209, 0x38, 0xa9, 0x0a, 0xe9, 0x0b)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), uint8(0xff))
	test.ExpectFailure(t, mc.Status.Carry)
	test.ExpectSuccess(t, mc.Status.Sign)
}

func TestCompareLeavesAccumulator(t *testing.T) {
	mc, mem := newTestCPU(t, 0x0200)

	// LDA #$40; CMP #$41
	mem.putInstructions(0x0200, 0xa9, 0x40, 0xc9, 0x41)
	step(t, mc)
	step(t, mc)

	test.ExpectEquality(t, mc.A.Value(), uint8(0x40))
	test.ExpectFailure(t, mc.Status.Carry)
	test.ExpectFailure(t, mc.Status.Zero)
	test.ExpectSuccess(t, mc.Status.Sign)

	// CMP #$40 -> equality: carry and zero set
	mem.putInstructions(0x0204, 0xc9, 0x40)
	step(t, mc)
	test.ExpectSuccess(t, mc.Status.Carry)
	test.ExpectSuccess(t, mc.Status.Zero)
}

func TestDecimalMode(t *testing.T) {
	mc, mem := newTestCPU(t, 0x0200)

	// SED; CLC; LDA #$09; ADC #$01 -> 0x10 in BCD
	mem.putInstructions(0x0200, 0xf8, 0x18, 0xa9, 0x09, 0x69, 0x01)
	for i := 0; i < 4; i++ {
		step(t, mc)
	}
	test.ExpectEquality(t, mc.A.Value(), uint8(0x10))
	test.ExpectFailure(t, mc.Status.Carry)

	// SEC; LDA #$10; SBC #$01 -> 0x09 in BCD
	mem.putInstructions(0x0206, 0x38, 0xa9, 0x10, 0xe9, 0x01)
	for i := 0; i < 3; i++ {
		step(t, mc)
	}
	test.ExpectEquality(t, mc.A.Value(), uint8(0x09))
	test.ExpectSuccess(t, mc.Status.Carry)
}

func TestBranchCycles(t *testing.T) {
	mc, mem := newTestCPU(t, 0x0200)

	// BNE not taken is 2 cycles
	mem.putInstructions(0x0200, 0xa9, 0x00, 0xd0, 0x10)
	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 2)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0204))

	// BEQ taken, same page, is 3 cycles
	mem.putInstructions(0x0204, 0xf0, 0x10)
	test.ExpectEquality(t, step(t, mc), 3)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0216))

	// BEQ taken across a page boundary is 4 cycles. offset $80 is -128
	mem.putInstructions(0x0216, 0xf0, 0x80)
	test.ExpectEquality(t, step(t, mc), 4)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0198))
}

func TestStack(t *testing.T) {
	mc, mem := newTestCPU(t, 0x0200)

	// LDA #$42; PHA; LDA #$00; PLA
	mem.putInstructions(0x0200, 0xa9, 0x42, 0x48, 0xa9, 0x00, 0x68)
	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 3) // PHA
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xfc))
	test.ExpectEquality(t, mem.internal[0x01fd], uint8(0x42))
	step(t, mc)
	test.ExpectSuccess(t, mc.Status.Zero)
	test.ExpectEquality(t, step(t, mc), 4) // PLA
	test.ExpectEquality(t, mc.A.Value(), uint8(0x42))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xfd))
	test.ExpectFailure(t, mc.Status.Zero)
}

func TestSubroutine(t *testing.T) {
	mc, mem := newTestCPU(t, 0x0200)

	// JSR $0300 ... RTS
	mem.putInstructions(0x0200, 0x20, 0x00, 0x03)
	mem.putInstructions(0x0300, 0x60)

	test.ExpectEquality(t, step(t, mc), 6) // JSR
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0300))

	// JSR pushes the address of the last byte of the JSR instruction
	test.ExpectEquality(t, mem.internal[0x01fd], uint8(0x02))
	test.ExpectEquality(t, mem.internal[0x01fc], uint8(0x02))

	test.ExpectEquality(t, step(t, mc), 6) // RTS
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0203))
}

func TestJumpIndirectPageWrap(t *testing.T) {
	mc, mem := newTestCPU(t, 0x0200)

	// JMP ($10ff) takes its high byte from $1000, not $1100
	mem.putInstructions(0x0200, 0x6c, 0xff, 0x10)
	mem.internal[0x10ff] = 0x34
	mem.internal[0x1100] = 0xff
	mem.internal[0x1000] = 0x12

	test.ExpectEquality(t, step(t, mc), 5)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x1234))
}

func TestBrkRti(t *testing.T) {
	mc, mem := newTestCPU(t, 0x0200)

	mem.internal[0xfffe] = 0x00
	mem.internal[0xffff] = 0x03
	mem.putInstructions(0x0200, 0x00, 0xea) // BRK; (padding)
	mem.putInstructions(0x0300, 0x40)       // RTI

	test.ExpectEquality(t, step(t, mc), 7) // BRK
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0300))
	test.ExpectSuccess(t, mc.Status.InterruptDisable)

	// pushed status byte has the break flag set
	test.ExpectEquality(t, mem.internal[0x01fb]&0x10, uint8(0x10))

	test.ExpectEquality(t, step(t, mc), 6) // RTI

	// BRK pushes PC+2; return address is the byte after the padding byte
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0202))
}

func TestIRQ(t *testing.T) {
	mc, mem := newTestCPU(t, 0x0200)

	mem.internal[0xfffe] = 0x00
	mem.internal[0xffff] = 0x03
	mem.putInstructions(0x0200, 0x58, 0xea) // CLI; NOP

	step(t, mc) // CLI

	// assert the IRQ pin as the host would: on the stored pin word
	mc.Pins |= m6502.IRQ

	cycles := step(t, mc)
	test.ExpectEquality(t, cycles, 7)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0300))
	test.ExpectSuccess(t, mc.Status.InterruptDisable)

	// pushed status byte has the break flag clear
	test.ExpectEquality(t, mem.internal[0x01fb]&0x10, uint8(0x00))
}

func TestIRQMasked(t *testing.T) {
	mc, mem := newTestCPU(t, 0x0200)

	mem.putInstructions(0x0200, 0xea)

	// interrupt disable is set after reset so the IRQ is ignored
	mc.Pins |= m6502.IRQ
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0201))
}

func TestNMI(t *testing.T) {
	mc, mem := newTestCPU(t, 0x0200)

	mem.internal[0xfffa] = 0x00
	mem.internal[0xfffb] = 0x04
	mem.putInstructions(0x0200, 0xea, 0xea)

	// NMI is not masked by the interrupt disable flag
	mc.Pins |= m6502.NMI
	cycles := step(t, mc)
	test.ExpectEquality(t, cycles, 7)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0400))

	// NMI is edge triggered: holding the pin active does not re-trigger
	mem.putInstructions(0x0400, 0xea)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0401))
}

func TestExecBudget(t *testing.T) {
	mc, mem := newTestCPU(t, 0x0200)

	for i := 0; i < 32; i++ {
		mem.internal[0x0200+uint16(i)] = 0xea
	}

	// instructions are indivisible: a budget of 5 cycles requires 3 NOPs
	cycles, err := mc.Exec(5)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cycles, 6)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0203))
}

func TestExecBreakMask(t *testing.T) {
	mc, mem := newTestCPU(t, 0x0200)

	mem.putInstructions(0x0200, 0xea, 0xea)

	// a host holding the IRQ line while the interrupt is masked still
	// terminates a run with a matching break mask
	mc.BreakMask = m6502.IRQ
	mem.hold = m6502.IRQ

	cycles, err := mc.Exec(1000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cycles, 2)
	test.ExpectEquality(t, mc.PC.Address(), uint16(0x0201))
}

func TestRegisterToRegister(t *testing.T) {
	mc, mem := newTestCPU(t, 0x0200)

	// LDA #$7f; TAX
	mem.putInstructions(0x0200, 0xa9, 0x7f, 0xaa)
	step(t, mc)
	test.ExpectEquality(t, step(t, mc), 2)
	test.ExpectEquality(t, mc.X.Value(), uint8(0x7f))
	test.ExpectEquality(t, mc.A.Value(), uint8(0x7f))
}

func TestReadModifyWrite(t *testing.T) {
	mc, mem := newTestCPU(t, 0x0200)

	// ASL $10
	mem.internal[0x0010] = 0xc0
	mem.putInstructions(0x0200, 0x06, 0x10)

	test.ExpectEquality(t, step(t, mc), 5)
	test.ExpectEquality(t, mem.internal[0x0010], uint8(0x80))
	test.ExpectSuccess(t, mc.Status.Carry)
	test.ExpectSuccess(t, mc.Status.Sign)

	// INC $10 with wrap to zero
	mem.internal[0x0010] = 0xff
	mem.putInstructions(0x0202, 0xe6, 0x10)
	step(t, mc)
	test.ExpectEquality(t, mem.internal[0x0010], uint8(0x00))
	test.ExpectSuccess(t, mc.Status.Zero)
}
