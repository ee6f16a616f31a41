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

package monitor

import (
	"github.com/darmod23/chips/hardware/m6502"
	"github.com/darmod23/chips/hardware/z80"
)

// CPU is the view of a processor required by the monitor. both CPU packages
// satisfy it through a thin adapter.
type CPU interface {
	// Step executes a single instruction and returns the number of clock
	// cycles consumed
	Step() (int, error)

	// String returns a one line register dump
	String() string

	Reset()
}

type m6502Adapter struct {
	mc *m6502.M6502
}

// WrapM6502 adapts a 6502 to the monitor CPU interface.
func WrapM6502(mc *m6502.M6502) CPU {
	return &m6502Adapter{mc: mc}
}

func (a *m6502Adapter) Step() (int, error) {
	return a.mc.ExecuteInstruction()
}

func (a *m6502Adapter) String() string {
	return a.mc.String()
}

func (a *m6502Adapter) Reset() {
	a.mc.Reset()
}

type z80Adapter struct {
	mc *z80.Z80
}

// WrapZ80 adapts a Z80 to the monitor CPU interface.
func WrapZ80(mc *z80.Z80) CPU {
	return &z80Adapter{mc: mc}
}

func (a *z80Adapter) Step() (int, error) {
	return a.mc.Step(), nil
}

func (a *z80Adapter) String() string {
	return a.mc.String()
}

func (a *z80Adapter) Reset() {
	a.mc.Reset()
}
