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

// Package registers implements the register file of the 6502: the 8-bit
// general purpose registers, the program counter and the status register.
//
// The arithmetic functions of the Register type also form the ALU of the
// CPU. Registers do not update status flags themselves; instead, flag
// information is returned by the arithmetic functions and the status
// register is updated by the CPU as required. For example:
//
//	a.Load(10)
//	carry, overflow := a.Add(251, false)
//	sr.Carry = carry
//	sr.Overflow = overflow
//	sr.Zero = a.IsZero()
//
// In this case, both the carry flag and the zero flag will be true.
package registers
