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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopherdmg/hardware/cpu/registers"
	"github.com/jetsetilly/gopherdmg/test"
)

func TestPairAliasing(t *testing.T) {
	r := registers.NewRegisters()

	for _, p := range []*registers.Pair{&r.BC, &r.DE, &r.HL} {
		for _, v := range []uint16{0x0000, 0x1234, 0x00ff, 0xff00, 0xffff, 0xa55a} {
			p.Load(v)
			test.ExpectEquality(t, p.Hi(), uint8(v>>8), p.Label())
			test.ExpectEquality(t, p.Lo(), uint8(v), p.Label())
			test.ExpectEquality(t, p.Word(), v, p.Label())
		}

		// writes through the byte views are visible through the word view
		p.Load(0)
		p.SetHi(0x12)
		test.ExpectEquality(t, p.Word(), uint16(0x1200), p.Label())
		p.SetLo(0x34)
		test.ExpectEquality(t, p.Word(), uint16(0x1234), p.Label())
		p.SetHi(0xab)
		test.ExpectEquality(t, p.Word(), uint16(0xab34), p.Label())
	}
}

func TestFlagsNibble(t *testing.T) {
	r := registers.NewRegisters()

	r.AF.Load(0xffff)
	test.ExpectEquality(t, r.AF.Word(), uint16(0xfff0))
	test.ExpectEquality(t, r.A(), uint8(0xff))

	r.AF.SetLo(0x0f)
	test.ExpectEquality(t, r.AF.Lo(), uint8(0x00))

	r.AF.Load(0x12f0)
	r.AF.Add(0x0001)
	test.ExpectEquality(t, r.AF.Lo()&0x0f, uint8(0x00))
}

func TestFlags(t *testing.T) {
	r := registers.NewRegisters()

	r.SetA(0x42)
	r.SetFlag(registers.Zero, true)
	r.SetFlag(registers.Carry, true)
	test.ExpectEquality(t, r.AF.Lo(), uint8(0x90))
	test.ExpectSuccess(t, r.Flag(registers.Zero))
	test.ExpectFailure(t, r.Flag(registers.Subtract))
	test.ExpectSuccess(t, r.Flag(registers.Carry))
	test.ExpectEquality(t, r.A(), uint8(0x42))

	r.SetFlag(registers.Zero, false)
	test.ExpectEquality(t, r.AF.Lo(), uint8(0x10))

	r.SetFlags(false, true, true, false)
	test.ExpectEquality(t, r.AF.Lo(), uint8(0x60))
	test.ExpectEquality(t, r.A(), uint8(0x42))

	test.ExpectEquality(t, r.String(), "AF=0x4260 BC=0x0000 DE=0x0000 HL=0x0000 SP=0x0000 PC=0x0000 zNHc")
}

func TestWordRegisters(t *testing.T) {
	pc := registers.NewProgramCounter(0)
	test.ExpectEquality(t, pc.Address(), uint16(0))
	pc.Load(0x100)
	pc.Add(2)
	test.ExpectEquality(t, pc.Address(), uint16(0x102))
	pc.Add(-3)
	test.ExpectEquality(t, pc.Address(), uint16(0xff))

	// wrap around in both directions
	pc.Load(0xffff)
	pc.Add(1)
	test.ExpectEquality(t, pc.Address(), uint16(0))

	sp := registers.NewStackPointer(0xfffe)
	sp.Add(-2)
	test.ExpectEquality(t, sp.Address(), uint16(0xfffc))
	sp.Load(1)
	sp.Add(-2)
	test.ExpectEquality(t, sp.Address(), uint16(0xffff))
}

func TestReset(t *testing.T) {
	r := registers.NewRegisters()
	r.AF.Load(0x1234)
	r.BC.Load(0x5678)
	r.SP.Load(0xfffe)
	r.PC.Load(0x0100)
	r.Reset()
	test.ExpectEquality(t, r.AF.Word(), uint16(0))
	test.ExpectEquality(t, r.BC.Word(), uint16(0))
	test.ExpectEquality(t, r.SP.Address(), uint16(0))
	test.ExpectEquality(t, r.PC.Address(), uint16(0))
}
