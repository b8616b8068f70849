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

package registers

import (
	"fmt"
	"strings"
)

// Flag is a bit in the low byte of the AF pair.
type Flag uint8

// List of flags. The bottom four bits of the flags byte are unused.
const (
	Zero      Flag = 0x80
	Subtract  Flag = 0x40
	HalfCarry Flag = 0x20
	Carry     Flag = 0x10
)

func (f Flag) String() string {
	switch f {
	case Zero:
		return "Z"
	case Subtract:
		return "N"
	case HalfCarry:
		return "H"
	case Carry:
		return "C"
	}
	return "?"
}

// Registers is the complete register file of the CPU.
type Registers struct {
	AF Pair
	BC Pair
	DE Pair
	HL Pair
	SP StackPointer
	PC ProgramCounter
}

// NewRegisters is the preferred method of initialisation for the Registers
// type. All registers are zero.
func NewRegisters() Registers {
	return Registers{
		AF: newFlagsPair("AF"),
		BC: NewPair("BC"),
		DE: NewPair("DE"),
		HL: NewPair("HL"),
		SP: NewStackPointer(0),
		PC: NewProgramCounter(0),
	}
}

// Reset all registers to zero.
func (r *Registers) Reset() {
	r.AF.Load(0)
	r.BC.Load(0)
	r.DE.Load(0)
	r.HL.Load(0)
	r.SP.Load(0)
	r.PC.Load(0)
}

func (r Registers) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s %s %s %s ", r.AF, r.BC, r.DE, r.HL))
	s.WriteString(fmt.Sprintf("SP=%s PC=%s ", r.SP, r.PC))
	for _, f := range []Flag{Zero, Subtract, HalfCarry, Carry} {
		if r.Flag(f) {
			s.WriteString(f.String())
		} else {
			s.WriteString(strings.ToLower(f.String()))
		}
	}
	return s.String()
}

// A returns the accumulator.
func (r Registers) A() uint8 {
	return r.AF.Hi()
}

// SetA sets the accumulator. The flags are unchanged.
func (r *Registers) SetA(val uint8) {
	r.AF.SetHi(val)
}

// Flag returns the state of a single flag.
func (r Registers) Flag(f Flag) bool {
	return r.AF.Lo()&uint8(f) == uint8(f)
}

// SetFlag sets or clears a single flag.
func (r *Registers) SetFlag(f Flag, set bool) {
	if set {
		r.AF.SetLo(r.AF.Lo() | uint8(f))
	} else {
		r.AF.SetLo(r.AF.Lo() &^ uint8(f))
	}
}

// SetFlags sets all four flags at once.
func (r *Registers) SetFlags(z, n, h, c bool) {
	var f uint8
	if z {
		f |= uint8(Zero)
	}
	if n {
		f |= uint8(Subtract)
	}
	if h {
		f |= uint8(HalfCarry)
	}
	if c {
		f |= uint8(Carry)
	}
	r.AF.SetLo(f)
}
