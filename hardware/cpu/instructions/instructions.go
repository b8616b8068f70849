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

// Package instructions defines the SM83 instruction set. The definitions are
// parsed from CSV files embedded in the package: one for the primary opcode
// table and one for the extended table of opcodes that follow the 0xcb
// prefix.
//
// The definitions describe the size and cost of each instruction but not its
// behaviour. The behaviour is implemented by the cpu package.
package instructions

import (
	"fmt"
)

// EffectCategory categorises an instruction by the effect it has.
type EffectCategory int

// List of effect categories.
const (
	Read EffectCategory = iota
	Write
	RMW

	// flow instructions change the program counter without touching the
	// stack
	Flow

	// subroutine instructions change the program counter and push or pop
	// the return address
	Subroutine

	// instructions that change the interrupt master enable flag
	Interrupt
)

func (e EffectCategory) String() string {
	switch e {
	case Read:
		return "READ"
	case Write:
		return "WRITE"
	case RMW:
		return "RMW"
	case Flow:
		return "FLOW"
	case Subroutine:
		return "SUBROUTINE"
	case Interrupt:
		return "INTERRUPT"
	}
	return "unknown effect"
}

// Definition defines each instruction in the instruction set; one per
// instruction.
type Definition struct {
	OpCode uint8

	// Prefixed is true for instructions in the extended table
	Prefixed bool

	Mnemonic string

	// the number of bytes including the opcode (and the prefix for extended
	// instructions)
	Bytes int

	// the number of machine cycles. for conditional instructions this is the
	// cost when the condition fails
	Cycles int

	// the number of machine cycles when the condition of a conditional
	// instruction succeeds. zero for all other instructions
	BranchCycles int

	Effect EffectCategory
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Mnemonic == "" {
		return "undecoded instruction"
	}
	if defn.Prefixed {
		return fmt.Sprintf("cb %02x %s +%dbytes (%d cycles) [%s]", defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Cycles, defn.Effect)
	}
	if defn.IsConditional() {
		return fmt.Sprintf("%02x %s +%dbytes (%d/%d cycles) [%s]", defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Cycles, defn.BranchCycles, defn.Effect)
	}
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [%s]", defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Cycles, defn.Effect)
}

// IsConditional returns true if the cost of the instruction depends on a
// condition.
func (defn Definition) IsConditional() bool {
	return defn.BranchCycles > 0
}

// IsPrefix returns true if the instruction is the prefix for the extended
// table.
func (defn Definition) IsPrefix() bool {
	return !defn.Prefixed && defn.OpCode == Prefix
}

// Prefix is the opcode that selects the extended table for the next opcode.
const Prefix = 0xcb
