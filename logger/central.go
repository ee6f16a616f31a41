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

// Package logger is the central log for the entire application. Log entries
// are tagged with the package (or sub-system) that raised them and repeated
// entries are folded rather than accumulated.
package logger

import (
	"fmt"
	"io"
)

// the maximum number of entries in the central logger.
const maxCentral = 256

var central *logger

func init() {
	central = newLogger(maxCentral)
}

// Log adds a new entry to the central logger.
func Log(tag, detail string) {
	central.log(tag, detail)
}

// Logf adds a new formatted entry to the central logger.
func Logf(tag, format string, args ...interface{}) {
	central.log(tag, fmt.Sprintf(format, args...))
}

// Clear all entries from the central logger.
func Clear() {
	central.clear()
}

// Write the contents of the central logger to the io.Writer.
func Write(output io.Writer) {
	central.write(output)
}

// Tail writes the last N entries of the central logger to the io.Writer.
func Tail(output io.Writer, number int) {
	central.tail(output, number)
}

// SetEcho to an io.Writer. Future entries will be echoed to the writer as
// they arrive. A nil writer turns echoing off.
func SetEcho(output io.Writer) {
	central.echo = output
}
