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
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// cbreakMode puts a terminal into cbreak mode so that single keypresses
// arrive without waiting for a newline. the returned function restores the
// previous attributes.
func cbreakMode(f *os.File) (func(), error) {
	var saved unix.Termios

	if err := termios.Tcgetattr(f.Fd(), &saved); err != nil {
		return nil, err
	}

	cbreak := saved
	termios.Cfmakecbreak(&cbreak)
	if err := termios.Tcsetattr(f.Fd(), termios.TCIFLUSH, &cbreak); err != nil {
		return nil, err
	}

	return func() {
		_ = termios.Tcsetattr(f.Fd(), termios.TCIFLUSH, &saved)
	}, nil
}
