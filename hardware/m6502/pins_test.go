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

func TestPinPacking(t *testing.T) {
	// packing an address and data value and then extracting them yields the
	// original values
	for _, addr := range []uint16{0x0000, 0x0001, 0x1234, 0x8000, 0xffff} {
		for _, data := range []uint8{0x00, 0x01, 0x42, 0x80, 0xff} {
			pins := m6502.MakePins(m6502.RW, addr, data)
			test.ExpectEquality(t, m6502.Addr(pins), addr)
			test.ExpectEquality(t, m6502.Data(pins), data)
			test.ExpectEquality(t, pins&m6502.RW, m6502.RW)
		}
	}
}

func TestPinFieldIsolation(t *testing.T) {
	// merging one field must never corrupt bits belonging to another field
	pins := m6502.MakePins(m6502.RW|m6502.IRQ, 0xffff, 0xff)

	pins = m6502.SetAddr(pins, 0x0000)
	test.ExpectEquality(t, m6502.Addr(pins), uint16(0x0000))
	test.ExpectEquality(t, m6502.Data(pins), uint8(0xff))
	test.ExpectEquality(t, pins&(m6502.RW|m6502.IRQ), m6502.RW|m6502.IRQ)

	pins = m6502.SetData(pins, 0x00)
	test.ExpectEquality(t, m6502.Data(pins), uint8(0x00))
	test.ExpectEquality(t, pins&(m6502.RW|m6502.IRQ), m6502.RW|m6502.IRQ)
}
