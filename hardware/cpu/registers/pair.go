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

import "fmt"

// Pair is a 16-bit register that can also be accessed as two 8-bit registers.
type Pair struct {
	label string
	value uint16

	// bits of the low byte that can be written to. all bits for every pair
	// other than AF
	loMask uint8
}

// NewPair is the preferred method of initialisation for the Pair type.
func NewPair(label string) Pair {
	return Pair{
		label:  label,
		loMask: 0xff,
	}
}

// newFlagsPair creates a Pair where the low nibble of the low byte is
// always zero.
func newFlagsPair(label string) Pair {
	return Pair{
		label:  label,
		loMask: 0xf0,
	}
}

// Label returns the name of the pair.
func (r Pair) Label() string {
	return r.label
}

func (r Pair) String() string {
	return fmt.Sprintf("%s=%#04x", r.label, r.value)
}

// Word returns the 16-bit value of the pair.
func (r Pair) Word() uint16 {
	return r.value
}

// Hi returns bits 15 to 8 of the pair.
func (r Pair) Hi() uint8 {
	return uint8(r.value >> 8)
}

// Lo returns bits 7 to 0 of the pair.
func (r Pair) Lo() uint8 {
	return uint8(r.value)
}

// Load a 16-bit value into the pair.
func (r *Pair) Load(val uint16) {
	r.value = val & (0xff00 | uint16(r.loMask))
}

// SetHi sets bits 15 to 8 of the pair. The low byte is unchanged.
func (r *Pair) SetHi(val uint8) {
	r.value = uint16(val)<<8 | r.value&0x00ff
}

// SetLo sets bits 7 to 0 of the pair. The high byte is unchanged.
func (r *Pair) SetLo(val uint8) {
	r.value = r.value&0xff00 | uint16(val&r.loMask)
}

// Add value to the pair. The result wraps around on overflow. Subtraction is
// done by adding the two's complement of the value.
func (r *Pair) Add(val uint16) {
	r.Load(r.value + val)
}
