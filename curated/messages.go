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

package curated

// error patterns shared by more than one package. patterns used by a single
// package are declared in that package.
const (
	// sentinal
	BusError     = "bus error: %v"
	MonitorError = "monitor error: %v"

	// program termination
	UserInterrupt = "user interrupt"
	UserQuit      = "user quit"
)
