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

package registers

import "strings"

// StatusRegister is the special purpose register that stores the flags of
// the CPU.
//
// Bit 5 of the register is not defined by the architecture and always reads
// as set. The Break flag is not a real flag at all; it only ever appears in
// the copy of the register pushed to the stack, set for BRK/PHP and clear
// for IRQ/NMI entry.
type StatusRegister struct {
	Sign             bool
	Overflow         bool
	Break            bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// flag bits as they appear in the packed register value.
const (
	maskCarry            = 0x01
	maskZero             = 0x02
	maskInterruptDisable = 0x04
	maskDecimalMode      = 0x08
	maskBreak            = 0x10
	maskUnused           = 0x20
	maskOverflow         = 0x40
	maskSign             = 0x80
)

func (sr StatusRegister) String() string {
	s := strings.Builder{}

	flag := func(set bool, on, off rune) {
		if set {
			s.WriteRune(on)
		} else {
			s.WriteRune(off)
		}
	}

	flag(sr.Sign, 'S', 's')
	flag(sr.Overflow, 'V', 'v')
	s.WriteRune('-')
	flag(sr.Break, 'B', 'b')
	flag(sr.DecimalMode, 'D', 'd')
	flag(sr.InterruptDisable, 'I', 'i')
	flag(sr.Zero, 'Z', 'z')
	flag(sr.Carry, 'C', 'c')

	return s.String()
}

// Reset sets the status register to the architecturally defined post-reset
// state: interrupt disable set, everything else clear.
func (sr *StatusRegister) Reset() {
	*sr = StatusRegister{InterruptDisable: true}
}

// Value returns the packed status register byte. The unused bit is always
// set.
func (sr StatusRegister) Value() uint8 {
	var v uint8 = maskUnused

	if sr.Sign {
		v |= maskSign
	}
	if sr.Overflow {
		v |= maskOverflow
	}
	if sr.Break {
		v |= maskBreak
	}
	if sr.DecimalMode {
		v |= maskDecimalMode
	}
	if sr.InterruptDisable {
		v |= maskInterruptDisable
	}
	if sr.Zero {
		v |= maskZero
	}
	if sr.Carry {
		v |= maskCarry
	}

	return v
}

// Load a packed byte into the status register. The unused bit is discarded.
func (sr *StatusRegister) Load(v uint8) {
	sr.Sign = v&maskSign == maskSign
	sr.Overflow = v&maskOverflow == maskOverflow
	sr.Break = v&maskBreak == maskBreak
	sr.DecimalMode = v&maskDecimalMode == maskDecimalMode
	sr.InterruptDisable = v&maskInterruptDisable == maskInterruptDisable
	sr.Zero = v&maskZero == maskZero
	sr.Carry = v&maskCarry == maskCarry
}
