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

package monitor_test

import (
	"strings"
	"testing"

	"github.com/darmod23/chips/hardware/bus"
	"github.com/darmod23/chips/hardware/z80"
	"github.com/darmod23/chips/monitor"
	"github.com/darmod23/chips/test"
)

func newSession(script string, program ...uint8) (*monitor.Monitor, *bus.Memory, *strings.Builder) {
	mem := bus.NewMemory()
	copy(mem.Data[:], program)
	mc := z80.NewZ80(mem.TickZ80)

	out := &strings.Builder{}
	mon := monitor.NewMonitor(monitor.WrapZ80(mc), mem, strings.NewReader(script), out)
	return mon, mem, out
}

func TestStepCommand(t *testing.T) {
	// LD A,n twice
	mon, _, out := newSession("s\ns\nq\n", 0x3e, 0x01, 0x3e, 0x02)

	err := mon.Loop()
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out.String(), "PC=0002"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "PC=0004"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "[7 cycles]"))
}

func TestStepCount(t *testing.T) {
	mon, _, out := newSession("step 3\nregs\n", 0x00, 0x00, 0x00)

	err := mon.Loop()
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out.String(), "PC=0003"))
}

func TestMemCommands(t *testing.T) {
	mon, mem, out := newSession("poke 8000 42\nmem 8000 1\nq\n")

	err := mon.Loop()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, mem.Peek(0x8000), 0x42)
	test.ExpectSuccess(t, strings.Contains(out.String(), "8000: 42"))
}

func TestUnrecognisedCommand(t *testing.T) {
	mon, _, out := newSession("wibble\nq\n")

	err := mon.Loop()
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(out.String(), "unrecognised command"))
}

func TestSessionEndsAtEOF(t *testing.T) {
	mon, _, _ := newSession("s\n", 0x00)
	err := mon.Loop()
	test.ExpectSuccess(t, err)
}
