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

package m6502

import (
	"fmt"

	"github.com/darmod23/chips/hardware/m6502/instructions"
)

// Result records the anatomy of the most recently executed instruction. It
// exists for the benefit of a monitoring host; the CPU itself never reads
// it back.
type Result struct {
	// the address the opcode was fetched from
	Address uint16

	// the instruction definition for the opcode. nil until the first
	// instruction after reset has completed
	Defn *instructions.Definition

	// operand bytes assembled into a single value
	InstructionData uint16

	// cycles consumed by the instruction, including any page-sensitive
	// penalty and branch cycles
	Cycles int

	// whether address indexing crossed a page boundary
	PageFault bool

	// whether a branch instruction was taken
	BranchSuccess bool
}

// Reset prepares the result for a new instruction.
func (r *Result) Reset() {
	r.Address = 0
	r.Defn = nil
	r.InstructionData = 0
	r.Cycles = 0
	r.PageFault = false
	r.BranchSuccess = false
}

func (r Result) String() string {
	if r.Defn == nil {
		return "no instruction"
	}

	s := fmt.Sprintf("%04x %s", r.Address, r.Defn.Mnemonic)

	switch r.Defn.AddressingMode {
	case instructions.Implied:
	case instructions.Accumulator:
		s = fmt.Sprintf("%s A", s)
	case instructions.Immediate:
		s = fmt.Sprintf("%s #$%02x", s, r.InstructionData)
	case instructions.Relative:
		s = fmt.Sprintf("%s $%02x", s, r.InstructionData)
	case instructions.Absolute:
		s = fmt.Sprintf("%s $%04x", s, r.InstructionData)
	case instructions.ZeroPage:
		s = fmt.Sprintf("%s $%02x", s, r.InstructionData)
	case instructions.Indirect:
		s = fmt.Sprintf("%s ($%04x)", s, r.InstructionData)
	case instructions.IndexedIndirect:
		s = fmt.Sprintf("%s ($%02x,X)", s, r.InstructionData)
	case instructions.IndirectIndexed:
		s = fmt.Sprintf("%s ($%02x),Y", s, r.InstructionData)
	case instructions.AbsoluteIndexedX:
		s = fmt.Sprintf("%s $%04x,X", s, r.InstructionData)
	case instructions.AbsoluteIndexedY:
		s = fmt.Sprintf("%s $%04x,Y", s, r.InstructionData)
	case instructions.ZeroPageIndexedX:
		s = fmt.Sprintf("%s $%02x,X", s, r.InstructionData)
	case instructions.ZeroPageIndexedY:
		s = fmt.Sprintf("%s $%02x,Y", s, r.InstructionData)
	}

	return fmt.Sprintf("%s [%d cycles]", s, r.Cycles)
}
