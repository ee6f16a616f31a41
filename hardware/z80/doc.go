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

// Package z80 emulates the Z80 processor to clock cycle accuracy. As with
// the m6502 package, the CPU owns no memory. Every machine cycle is broken
// into its constituent clock cycles and each one is presented to the host
// through the tick callback as a pin word. The host decodes the control
// pins, answers memory and IO requests on the data bus bits, and may raise
// the interrupt and reset pins in the returned word.
//
// An opcode fetch takes four clock cycles, the latter two being the refresh
// of dynamic memory with the IR register pair on the address bus. Memory
// reads and writes take three clock cycles and IO transactions four. The
// documented instruction timings all emerge from this choreography.
//
// A minimal host with 64KB of flat RAM:
//
//	var mem [0x10000]uint8
//
//	cpu := z80.NewZ80(func(pins uint64) uint64 {
//		addr := z80.Addr(pins)
//		switch {
//		case pins&(z80.MREQ|z80.RD) == z80.MREQ|z80.RD:
//			pins = z80.SetData(pins, mem[addr])
//		case pins&(z80.MREQ|z80.WR) == z80.MREQ|z80.WR:
//			mem[addr] = z80.Data(pins)
//		}
//		return pins
//	})
//
//	cpu.Step()
//
// Execution begins at address zero, as it does on the silicon after the
// reset line is released.
package z80
