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

package logger

import (
	"strings"
	"testing"

	"github.com/darmod23/chips/test"
)

func TestRepeatFolding(t *testing.T) {
	l := newLogger(16)
	l.log("test", "hello")
	l.log("test", "hello")
	l.log("test", "hello")
	l.log("test", "goodbye")

	test.ExpectEquality(t, len(l.entries), 2)
	test.ExpectEquality(t, l.entries[0].repeated, 2)

	s := &strings.Builder{}
	l.write(s)
	test.ExpectEquality(t, s.String(), "test: hello (repeat x3)\ntest: goodbye\n")
}

func TestMaxEntries(t *testing.T) {
	l := newLogger(2)
	l.log("test", "a")
	l.log("test", "b")
	l.log("test", "c")

	test.ExpectEquality(t, len(l.entries), 2)

	s := &strings.Builder{}
	l.tail(s, 1)
	test.ExpectEquality(t, s.String(), "test: c\n")
}
