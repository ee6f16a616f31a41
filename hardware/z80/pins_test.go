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

package z80_test

import (
	"testing"

	"github.com/darmod23/chips/hardware/z80"
	"github.com/darmod23/chips/test"
)

func TestPinsRoundTrip(t *testing.T) {
	pins := z80.MakePins(z80.MREQ|z80.RD, 0xabcd, 0x5a)
	test.ExpectEquality(t, z80.Addr(pins), 0xabcd)
	test.ExpectEquality(t, z80.Data(pins), 0x5a)
	test.ExpectEquality(t, pins&z80.CtrlMask, z80.MREQ|z80.RD)

	// changing one field leaves the others alone
	pins = z80.SetAddr(pins, 0x1234)
	test.ExpectEquality(t, z80.Addr(pins), 0x1234)
	test.ExpectEquality(t, z80.Data(pins), 0x5a)

	pins = z80.SetData(pins, 0xff)
	test.ExpectEquality(t, z80.Addr(pins), 0x1234)
	test.ExpectEquality(t, z80.Data(pins), 0xff)
	test.ExpectEquality(t, pins&z80.CtrlMask, z80.MREQ|z80.RD)
}

func TestPinHelpers(t *testing.T) {
	mc := z80.NewZ80(func(pins uint64) uint64 { return pins })

	mc.On(z80.INT | z80.WAIT)
	test.ExpectSuccess(t, mc.Any(z80.INT))
	test.ExpectSuccess(t, mc.All(z80.INT|z80.WAIT))
	test.ExpectFailure(t, mc.All(z80.INT|z80.NMI))

	mc.Off(z80.WAIT)
	test.ExpectFailure(t, mc.Any(z80.WAIT))
	test.ExpectSuccess(t, mc.Any(z80.INT))
}
