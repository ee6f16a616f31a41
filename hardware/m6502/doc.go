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

// Package m6502 emulates the 6502 microprocessor at the level of individual
// bus cycles. The CPU does not own any memory. Instead, the host supplies a
// tick callback; the CPU calls it exactly once per clock cycle with a pin
// word describing the state of the address, data and control lines, and the
// host answers the cycle's bus work in the returned pin word.
//
// A minimal host looks like this:
//
//	var mem [0x10000]uint8
//
//	mc := m6502.NewM6502(func(pins uint64) uint64 {
//		if pins&m6502.RW == m6502.RW {
//			return m6502.SetData(pins, mem[m6502.Addr(pins)])
//		}
//		mem[m6502.Addr(pins)] = m6502.Data(pins)
//		return pins
//	})
//
//	mc.Reset()
//	cycles, _ := mc.Exec(1000)
//
// ExecuteInstruction() steps the CPU by exactly one instruction and Exec()
// runs instructions until a cycle budget is met. Because instructions are
// indivisible the number of cycles executed may exceed the budget.
//
// The host raises the IRQ and NMI pins by setting them on the pin word it
// returns from the tick callback (or directly on the Pins field between
// instructions). Both are observed at instruction boundaries.
package m6502
