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

// operation implements the behaviour of a single opcode. The program counter
// points to the byte after the opcode when the operation is called. Taken is
// true if the condition of a conditional instruction succeeded.
type operation func(mc *CPU) (taken bool, err error)

func nop(_ *CPU) (bool, error) {
	return false, nil
}

// memory addressed by the indirect forms of LD A. the HL forms increment or
// decrement HL after use.
var indirectAddress = [4]func(mc *CPU) uint16{
	func(mc *CPU) uint16 { return mc.BC.Word() },
	func(mc *CPU) uint16 { return mc.DE.Word() },
	func(mc *CPU) uint16 {
		a := mc.HL.Word()
		mc.HL.Add(1)
		return a
	},
	func(mc *CPU) uint16 {
		a := mc.HL.Word()
		mc.HL.Add(0xffff)
		return a
	},
}

// primaryOperations returns the operation table for unprefixed opcodes.
// Opcodes that do not exist are nil, as is the prefix opcode.
func primaryOperations() [256]operation {
	var ops [256]operation

	ops[0x00] = nop

	// 16-bit register operations
	for idx := range uint8(4) {
		ops[0x01|idx<<4] = func(mc *CPU) (bool, error) {
			v, err := mc.imm16()
			if err != nil {
				return false, err
			}
			mc.setRR(idx, v)
			return false, nil
		}

		ops[0x02|idx<<4] = func(mc *CPU) (bool, error) {
			return false, mc.write(indirectAddress[idx](mc), mc.A())
		}

		ops[0x0a|idx<<4] = func(mc *CPU) (bool, error) {
			v, err := mc.read(indirectAddress[idx](mc))
			if err != nil {
				return false, err
			}
			mc.SetA(v)
			return false, nil
		}

		ops[0x03|idx<<4] = func(mc *CPU) (bool, error) {
			mc.setRR(idx, mc.rr(idx)+1)
			return false, nil
		}

		ops[0x0b|idx<<4] = func(mc *CPU) (bool, error) {
			mc.setRR(idx, mc.rr(idx)-1)
			return false, nil
		}

		ops[0x09|idx<<4] = func(mc *CPU) (bool, error) {
			mc.addHL(mc.rr(idx))
			return false, nil
		}

		ops[0xc1|idx<<4] = func(mc *CPU) (bool, error) {
			v, err := mc.pop()
			if err != nil {
				return false, err
			}
			mc.stackPair(idx).Load(v)
			return false, nil
		}

		ops[0xc5|idx<<4] = func(mc *CPU) (bool, error) {
			return false, mc.push(mc.stackPair(idx).Word())
		}
	}

	// 8-bit register operations
	for idx := range uint8(8) {
		ops[0x04|idx<<3] = func(mc *CPU) (bool, error) {
			v, err := mc.r8(idx)
			if err != nil {
				return false, err
			}
			return false, mc.setR8(idx, mc.inc(v))
		}

		ops[0x05|idx<<3] = func(mc *CPU) (bool, error) {
			v, err := mc.r8(idx)
			if err != nil {
				return false, err
			}
			return false, mc.setR8(idx, mc.dec(v))
		}

		ops[0x06|idx<<3] = func(mc *CPU) (bool, error) {
			v, err := mc.imm8()
			if err != nil {
				return false, err
			}
			return false, mc.setR8(idx, v)
		}

		for src := range uint8(8) {
			ops[0x40|idx<<3|src] = func(mc *CPU) (bool, error) {
				v, err := mc.r8(src)
				if err != nil {
					return false, err
				}
				return false, mc.setR8(idx, v)
			}
		}

		// accumulator operations. idx selects the operation
		alu := accumulatorOperations[idx]
		for src := range uint8(8) {
			ops[0x80|idx<<3|src] = func(mc *CPU) (bool, error) {
				v, err := mc.r8(src)
				if err != nil {
					return false, err
				}
				alu(mc, v)
				return false, nil
			}
		}

		ops[0xc6|idx<<3] = func(mc *CPU) (bool, error) {
			v, err := mc.imm8()
			if err != nil {
				return false, err
			}
			alu(mc, v)
			return false, nil
		}

		ops[0xc7|idx<<3] = func(mc *CPU) (bool, error) {
			if err := mc.push(mc.PC.Address()); err != nil {
				return false, err
			}
			mc.PC.Load(uint16(idx) << 3)
			return false, nil
		}
	}

	// LD (HL),(HL) is HALT
	ops[0x76] = func(mc *CPU) (bool, error) {
		mc.halt()
		return false, nil
	}

	// rotations of the accumulator always clear the zero flag
	for idx, f := range shiftOperations[:4] {
		ops[0x07|idx<<3] = func(mc *CPU) (bool, error) {
			a, c := f(mc.A(), mc.Flag(registers.Carry))
			mc.SetA(a)
			mc.SetFlags(false, false, false, c)
			return false, nil
		}
	}

	ops[0x08] = func(mc *CPU) (bool, error) {
		address, err := mc.imm16()
		if err != nil {
			return false, err
		}
		if err := mc.write(address, uint8(mc.SP.Address())); err != nil {
			return false, err
		}
		return false, mc.write(address+1, uint8(mc.SP.Address()>>8))
	}

	ops[0x10] = func(mc *CPU) (bool, error) {
		if _, err := mc.imm8(); err != nil {
			return false, err
		}
		mc.stop()
		return false, nil
	}

	ops[0x27] = func(mc *CPU) (bool, error) {
		mc.daa()
		return false, nil
	}

	ops[0x2f] = func(mc *CPU) (bool, error) {
		mc.SetA(^mc.A())
		mc.SetFlag(registers.Subtract, true)
		mc.SetFlag(registers.HalfCarry, true)
		return false, nil
	}

	ops[0x37] = func(mc *CPU) (bool, error) {
		mc.SetFlag(registers.Subtract, false)
		mc.SetFlag(registers.HalfCarry, false)
		mc.SetFlag(registers.Carry, true)
		return false, nil
	}

	ops[0x3f] = func(mc *CPU) (bool, error) {
		mc.SetFlag(registers.Subtract, false)
		mc.SetFlag(registers.HalfCarry, false)
		mc.SetFlag(registers.Carry, !mc.Flag(registers.Carry))
		return false, nil
	}

	// flow control
	ops[0x18] = func(mc *CPU) (bool, error) {
		e, err := mc.imm8()
		if err != nil {
			return false, err
		}
		mc.PC.Add(int(int8(e)))
		return false, nil
	}

	ops[0xc3] = func(mc *CPU) (bool, error) {
		address, err := mc.imm16()
		if err != nil {
			return false, err
		}
		mc.PC.Load(address)
		return false, nil
	}

	ops[0xe9] = func(mc *CPU) (bool, error) {
		mc.PC.Load(mc.HL.Word())
		return false, nil
	}

	ops[0xcd] = func(mc *CPU) (bool, error) {
		address, err := mc.imm16()
		if err != nil {
			return false, err
		}
		if err := mc.push(mc.PC.Address()); err != nil {
			return false, err
		}
		mc.PC.Load(address)
		return false, nil
	}

	ops[0xc9] = func(mc *CPU) (bool, error) {
		address, err := mc.pop()
		if err != nil {
			return false, err
		}
		mc.PC.Load(address)
		return false, nil
	}

	ops[0xd9] = func(mc *CPU) (bool, error) {
		address, err := mc.pop()
		if err != nil {
			return false, err
		}
		mc.PC.Load(address)
		mc.IME = true
		mc.imeDelay = 0
		return false, nil
	}

	for cc := range uint8(4) {
		ops[0x20|cc<<3] = func(mc *CPU) (bool, error) {
			e, err := mc.imm8()
			if err != nil {
				return false, err
			}
			if !mc.condition(cc) {
				return false, nil
			}
			mc.PC.Add(int(int8(e)))
			return true, nil
		}

		ops[0xc2|cc<<3] = func(mc *CPU) (bool, error) {
			address, err := mc.imm16()
			if err != nil {
				return false, err
			}
			if !mc.condition(cc) {
				return false, nil
			}
			mc.PC.Load(address)
			return true, nil
		}

		ops[0xc4|cc<<3] = func(mc *CPU) (bool, error) {
			address, err := mc.imm16()
			if err != nil {
				return false, err
			}
			if !mc.condition(cc) {
				return false, nil
			}
			if err := mc.push(mc.PC.Address()); err != nil {
				return false, err
			}
			mc.PC.Load(address)
			return true, nil
		}

		ops[0xc0|cc<<3] = func(mc *CPU) (bool, error) {
			if !mc.condition(cc) {
				return false, nil
			}
			address, err := mc.pop()
			if err != nil {
				return false, err
			}
			mc.PC.Load(address)
			return true, nil
		}
	}

	// high page loads
	ops[0xe0] = func(mc *CPU) (bool, error) {
		n, err := mc.imm8()
		if err != nil {
			return false, err
		}
		return false, mc.write(0xff00|uint16(n), mc.A())
	}

	ops[0xf0] = func(mc *CPU) (bool, error) {
		n, err := mc.imm8()
		if err != nil {
			return false, err
		}
		v, err := mc.read(0xff00 | uint16(n))
		if err != nil {
			return false, err
		}
		mc.SetA(v)
		return false, nil
	}

	ops[0xe2] = func(mc *CPU) (bool, error) {
		return false, mc.write(0xff00|uint16(mc.BC.Lo()), mc.A())
	}

	ops[0xf2] = func(mc *CPU) (bool, error) {
		v, err := mc.read(0xff00 | uint16(mc.BC.Lo()))
		if err != nil {
			return false, err
		}
		mc.SetA(v)
		return false, nil
	}

	ops[0xea] = func(mc *CPU) (bool, error) {
		address, err := mc.imm16()
		if err != nil {
			return false, err
		}
		return false, mc.write(address, mc.A())
	}

	ops[0xfa] = func(mc *CPU) (bool, error) {
		address, err := mc.imm16()
		if err != nil {
			return false, err
		}
		v, err := mc.read(address)
		if err != nil {
			return false, err
		}
		mc.SetA(v)
		return false, nil
	}

	// stack pointer arithmetic
	ops[0xe8] = func(mc *CPU) (bool, error) {
		e, err := mc.imm8()
		if err != nil {
			return false, err
		}
		mc.SP.Load(mc.spOffset(e))
		return false, nil
	}

	ops[0xf8] = func(mc *CPU) (bool, error) {
		e, err := mc.imm8()
		if err != nil {
			return false, err
		}
		mc.HL.Load(mc.spOffset(e))
		return false, nil
	}

	ops[0xf9] = func(mc *CPU) (bool, error) {
		mc.SP.Load(mc.HL.Word())
		return false, nil
	}

	// interrupt master enable
	ops[0xf3] = func(mc *CPU) (bool, error) {
		mc.IME = false
		mc.imeDelay = 0
		return false, nil
	}

	ops[0xfb] = func(mc *CPU) (bool, error) {
		if !mc.IME && mc.imeDelay == 0 {
			mc.imeDelay = 2
		}
		return false, nil
	}

	return ops
}

// extendedOperations returns the operation table for opcodes that follow the
// prefix. Every opcode exists.
func extendedOperations() [256]operation {
	var ops [256]operation

	for idx := range uint8(8) {
		f := shiftOperations[idx]
		bit := uint8(0x01) << idx

		for reg := range uint8(8) {
			ops[idx<<3|reg] = func(mc *CPU) (bool, error) {
				v, err := mc.r8(reg)
				if err != nil {
					return false, err
				}
				v, c := f(v, mc.Flag(registers.Carry))
				mc.SetFlags(v == 0, false, false, c)
				return false, mc.setR8(reg, v)
			}

			// BIT does not write to the register
			ops[0x40|idx<<3|reg] = func(mc *CPU) (bool, error) {
				v, err := mc.r8(reg)
				if err != nil {
					return false, err
				}
				mc.SetFlag(registers.Zero, v&bit == 0)
				mc.SetFlag(registers.Subtract, false)
				mc.SetFlag(registers.HalfCarry, true)
				return false, nil
			}

			ops[0x80|idx<<3|reg] = func(mc *CPU) (bool, error) {
				v, err := mc.r8(reg)
				if err != nil {
					return false, err
				}
				return false, mc.setR8(reg, v&^bit)
			}

			ops[0xc0|idx<<3|reg] = func(mc *CPU) (bool, error) {
				v, err := mc.r8(reg)
				if err != nil {
					return false, err
				}
				return false, mc.setR8(reg, v|bit)
			}
		}
	}

	return ops
}
