// This file is part of GopherDMG.
//
// GopherDMG is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherDMG is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherDMG.  If not, see <https://www.gnu.org/licenses/>.

package execution

import (
	"fmt"

	"github.com/jetsetilly/gopherdmg/hardware/cpu/instructions"
)

// Bug identifies a quirk of the CPU that affected the execution of an
// instruction.
type Bug string

// List of CPU bugs.
const (
	NoBug Bug = ""

	// the HALT bug occurs when HALT is executed with interrupts disabled and
	// an interrupt already pending. the byte following the HALT is read twice
	HaltBug Bug = "halt bug"
)

// Kind of step taken by the CPU.
type Kind int

// List of step kinds.
const (
	Instruction Kind = iota

	// dispatch of an interrupt to its handler
	Dispatch

	// one cycle of waiting during HALT or STOP
	Idle
)

// Result records the execution of the most recent instruction.
type Result struct {
	// address of the opcode. the prefix for extended instructions
	Address uint16

	Kind Kind

	// nil unless Kind is Instruction
	Defn *instructions.Definition

	// the operand as read from memory, if any
	Operand uint16

	// number of bytes read from the instruction stream
	ByteCount int

	// number of machine cycles used
	Cycles int

	CPUBug Bug

	// Final is true once the instruction has been completely executed
	Final bool
}

// Reset the result to its zero state.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	switch r.Kind {
	case Dispatch:
		return fmt.Sprintf("%#04x interrupt dispatch (%d cycles)", r.Address, r.Cycles)
	case Idle:
		return fmt.Sprintf("%#04x idle (%d cycles)", r.Address, r.Cycles)
	}

	if r.Defn == nil {
		return fmt.Sprintf("%#04x undecoded instruction", r.Address)
	}

	s := fmt.Sprintf("%#04x %s", r.Address, r.Defn.Mnemonic)
	switch r.Defn.Bytes - r.extendedBytes() {
	case 2:
		s = fmt.Sprintf("%s [%#02x]", s, r.Operand)
	case 3:
		s = fmt.Sprintf("%s [%#04x]", s, r.Operand)
	}

	if r.CPUBug != NoBug {
		s = fmt.Sprintf("%s (%s)", s, r.CPUBug)
	}

	return s
}

// the number of bytes in the instruction taken by the prefix
func (r Result) extendedBytes() int {
	if r.Defn != nil && r.Defn.Prefixed {
		return 1
	}
	return 0
}
