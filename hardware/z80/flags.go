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

// flag register bits
const (
	FlagC uint8 = 1 << 0 // carry
	FlagN uint8 = 1 << 1 // add/subtract
	FlagP uint8 = 1 << 2 // parity/overflow
	FlagX uint8 = 1 << 3 // undocumented copy of result bit 3
	FlagH uint8 = 1 << 4 // half carry
	FlagY uint8 = 1 << 5 // undocumented copy of result bit 5
	FlagZ uint8 = 1 << 6 // zero
	FlagS uint8 = 1 << 7 // sign
)

// sz53Table holds the S, Z, Y and X flags for every 8-bit result.
// sz53pTable additionally folds in the parity flag.
var (
	sz53Table   [256]uint8
	sz53pTable  [256]uint8
	parityTable [256]uint8
)

func init() {
	for i := 0; i < 256; i++ {
		v := uint8(i)
		f := v & (FlagS | FlagY | FlagX)
		if v == 0 {
			f |= FlagZ
		}
		sz53Table[i] = f

		p := v
		p ^= p >> 4
		p ^= p >> 2
		p ^= p >> 1
		if p&1 == 0 {
			parityTable[i] = FlagP
		}
		sz53pTable[i] = f | parityTable[i]
	}
}

// addFlags computes the flag register after an 8-bit addition. acc and val
// are the operands and res the unmasked sum, which may carry into bit 8.
func addFlags(acc, val uint8, res int) uint8 {
	f := sz53Table[res&0xff]
	f |= uint8(res>>8) & FlagC
	f |= uint8(int(acc)^int(val)^res) & FlagH
	f |= uint8(((int(val)^int(acc)^0x80)&(int(val)^res))>>5) & FlagP
	return f
}

// subFlags computes the flag register after an 8-bit subtraction. acc and
// val are the operands and res the unmasked difference, which may borrow
// into bit 8.
func subFlags(acc, val uint8, res int) uint8 {
	f := FlagN | sz53Table[res&0xff]
	f |= uint8(res>>8) & FlagC
	f |= uint8(int(acc)^int(val)^res) & FlagH
	f |= uint8(((int(val)^int(acc))&(int(res)^int(acc)))>>5) & FlagP
	return f
}

// cpFlags computes the flag register after CP. the arithmetic matches
// subFlags but the undocumented X and Y flags are copied from the operand
// rather than the result.
func cpFlags(acc, val uint8, res int) uint8 {
	f := subFlags(acc, val, res)
	f &^= FlagY | FlagX
	f |= val & (FlagY | FlagX)
	return f
}

// incFlags computes the flag register after INC r. carry is preserved from
// the existing flags.
func incFlags(f, res uint8) uint8 {
	nf := (f & FlagC) | sz53Table[res]
	if res&0x0f == 0 {
		nf |= FlagH
	}
	if res == 0x80 {
		nf |= FlagP
	}
	return nf
}

// decFlags computes the flag register after DEC r. carry is preserved from
// the existing flags.
func decFlags(f, res uint8) uint8 {
	nf := (f & FlagC) | FlagN | sz53Table[res]
	if res&0x0f == 0x0f {
		nf |= FlagH
	}
	if res == 0x7f {
		nf |= FlagP
	}
	return nf
}
