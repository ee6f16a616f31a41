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

package bus_test

import (
	"testing"

	"github.com/darmod23/chips/curated"
	"github.com/darmod23/chips/hardware/bus"
	"github.com/darmod23/chips/hardware/m6502"
	"github.com/darmod23/chips/hardware/z80"
	"github.com/darmod23/chips/test"
)

func TestLoadImage(t *testing.T) {
	mem := bus.NewMemory()

	err := mem.LoadImage([]byte{0x01, 0x02, 0x03}, 0x8000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, mem.Peek(0x8000), 0x01)
	test.ExpectEquality(t, mem.Peek(0x8002), 0x03)

	// an image that runs past the top of memory is rejected
	err = mem.LoadImage(make([]byte, 3), 0xfffe)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, curated.BusError))
}

func TestRunM6502Program(t *testing.T) {
	// LDA #$42; STA $0200
	mem := bus.NewMemory()
	err := mem.LoadImage([]byte{0xa9, 0x42, 0x8d, 0x00, 0x02}, 0x8000)
	test.ExpectSuccess(t, err)
	mem.Poke(0xfffc, 0x00)
	mem.Poke(0xfffd, 0x80)

	mc := m6502.NewM6502(mem.TickM6502)
	mc.Reset()
	_, err = mc.ExecuteInstruction()
	test.ExpectSuccess(t, err)
	_, err = mc.ExecuteInstruction()
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, mem.Peek(0x0200), 0x42)
}

func TestRunZ80Program(t *testing.T) {
	// LD A,0x42; LD (0x8000),A; HALT
	mem := bus.NewMemory()
	err := mem.LoadImage([]byte{0x3e, 0x42, 0x32, 0x00, 0x80, 0x76}, 0)
	test.ExpectSuccess(t, err)

	mc := z80.NewZ80(mem.TickZ80)
	for i := 0; i < 3; i++ {
		mc.Step()
	}

	test.ExpectEquality(t, mem.Peek(0x8000), 0x42)
	test.ExpectSuccess(t, mc.Halted)
}

func TestHoldLine(t *testing.T) {
	mem := bus.NewMemory()
	mem.Hold = z80.INT

	mc := z80.NewZ80(mem.TickZ80)
	mc.Step()
	test.ExpectSuccess(t, mc.Any(z80.INT))
}
