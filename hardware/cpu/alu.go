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

package cpu

import "github.com/jetsetilly/gopherdmg/hardware/cpu/registers"

// the eight accumulator operations selected by bits 3 to 5 of the opcode.
var accumulatorOperations = [8]func(mc *CPU, v uint8){
	(*CPU).add,
	(*CPU).adc,
	(*CPU).sub,
	(*CPU).sbc,
	(*CPU).and,
	(*CPU).xor,
	(*CPU).or,
	(*CPU).cp,
}

func (mc *CPU) carryIn() uint8 {
	if mc.Flag(registers.Carry) {
		return 1
	}
	return 0
}

func (mc *CPU) addWithCarry(v uint8, c uint8) {
	a := mc.A()
	r := uint16(a) + uint16(v) + uint16(c)
	mc.SetFlags(uint8(r) == 0, false, (a&0x0f)+(v&0x0f)+c > 0x0f, r > 0xff)
	mc.SetA(uint8(r))
}

// subtract v and c from the accumulator and set the flags. the result is
// returned but not stored.
func (mc *CPU) subtractWithCarry(v uint8, c uint8) uint8 {
	a := mc.A()
	r := int(a) - int(v) - int(c)
	mc.SetFlags(uint8(r) == 0, true, int(a&0x0f)-int(v&0x0f)-int(c) < 0, r < 0)
	return uint8(r)
}

func (mc *CPU) add(v uint8) {
	mc.addWithCarry(v, 0)
}

func (mc *CPU) adc(v uint8) {
	mc.addWithCarry(v, mc.carryIn())
}

func (mc *CPU) sub(v uint8) {
	mc.SetA(mc.subtractWithCarry(v, 0))
}

func (mc *CPU) sbc(v uint8) {
	mc.SetA(mc.subtractWithCarry(v, mc.carryIn()))
}

func (mc *CPU) cp(v uint8) {
	mc.subtractWithCarry(v, 0)
}

func (mc *CPU) and(v uint8) {
	a := mc.A() & v
	mc.SetFlags(a == 0, false, true, false)
	mc.SetA(a)
}

func (mc *CPU) xor(v uint8) {
	a := mc.A() ^ v
	mc.SetFlags(a == 0, false, false, false)
	mc.SetA(a)
}

func (mc *CPU) or(v uint8) {
	a := mc.A() | v
	mc.SetFlags(a == 0, false, false, false)
	mc.SetA(a)
}

// inc and dec do not affect the carry flag.
func (mc *CPU) inc(v uint8) uint8 {
	r := v + 1
	mc.SetFlag(registers.Zero, r == 0)
	mc.SetFlag(registers.Subtract, false)
	mc.SetFlag(registers.HalfCarry, v&0x0f == 0x0f)
	return r
}

func (mc *CPU) dec(v uint8) uint8 {
	r := v - 1
	mc.SetFlag(registers.Zero, r == 0)
	mc.SetFlag(registers.Subtract, true)
	mc.SetFlag(registers.HalfCarry, v&0x0f == 0x00)
	return r
}

// addHL adds v to HL. the zero flag is not affected. half-carry is from bit
// 11 and carry is from bit 15.
func (mc *CPU) addHL(v uint16) {
	hl := mc.HL.Word()
	r := uint32(hl) + uint32(v)
	mc.SetFlag(registers.Subtract, false)
	mc.SetFlag(registers.HalfCarry, (hl&0x0fff)+(v&0x0fff) > 0x0fff)
	mc.SetFlag(registers.Carry, r > 0xffff)
	mc.HL.Load(uint16(r))
}

// spOffset returns the stack pointer plus the signed displacement e. the
// flags are set from the unsigned addition of e to the low byte of the
// stack pointer.
func (mc *CPU) spOffset(e uint8) uint16 {
	sp := mc.SP.Address()
	mc.SetFlags(false, false, (sp&0x0f)+uint16(e&0x0f) > 0x0f, (sp&0xff)+uint16(e) > 0xff)
	return uint16(int(sp) + int(int8(e)))
}

// daa adjusts the accumulator to binary coded decimal after an addition or
// subtraction.
func (mc *CPU) daa() {
	a := mc.A()
	c := mc.Flag(registers.Carry)
	h := mc.Flag(registers.HalfCarry)

	if !mc.Flag(registers.Subtract) {
		if c || a > 0x99 {
			a += 0x60
			c = true
		}
		if h || a&0x0f > 0x09 {
			a += 0x06
		}
	} else {
		if c {
			a -= 0x60
		}
		if h {
			a -= 0x06
		}
	}

	mc.SetFlag(registers.Zero, a == 0)
	mc.SetFlag(registers.HalfCarry, false)
	mc.SetFlag(registers.Carry, c)
	mc.SetA(a)
}

// shift implementations take the value of the carry flag and return the
// result and the new value of the carry flag.
type shift func(v uint8, carry bool) (uint8, bool)

// the eight shift operations of the extended table selected by bits 3 to 5
// of the opcode.
var shiftOperations = [8]shift{rlc, rrc, rl, rr, sla, sra, swap, srl}

func rlc(v uint8, _ bool) (uint8, bool) {
	return v<<1 | v>>7, v&0x80 == 0x80
}

func rrc(v uint8, _ bool) (uint8, bool) {
	return v>>1 | v<<7, v&0x01 == 0x01
}

func rl(v uint8, carry bool) (uint8, bool) {
	r := v << 1
	if carry {
		r |= 0x01
	}
	return r, v&0x80 == 0x80
}

func rr(v uint8, carry bool) (uint8, bool) {
	r := v >> 1
	if carry {
		r |= 0x80
	}
	return r, v&0x01 == 0x01
}

func sla(v uint8, _ bool) (uint8, bool) {
	return v << 1, v&0x80 == 0x80
}

func sra(v uint8, _ bool) (uint8, bool) {
	return v>>1 | v&0x80, v&0x01 == 0x01
}

func swap(v uint8, _ bool) (uint8, bool) {
	return v<<4 | v>>4, false
}

func srl(v uint8, _ bool) (uint8, bool) {
	return v >> 1, v&0x01 == 0x01
}
