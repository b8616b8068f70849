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

// Package cpu emulates the SM83 processor found in the DMG. The processor
// executes instructions according to the single byte value read from the
// address pointed to by the program counter. This single byte is the opcode
// and is looked up in the primary instruction table. The opcode 0xcb is a
// prefix that selects the extended table for the opcode that follows it.
//
// The instruction definitions in the instructions package describe the size
// and cost of every instruction. The behaviour of each opcode is implemented
// by the operation tables in this package. NewCPU() checks that the two
// agree.
//
// The CPU type requires an implementation of the cpubus.Memory interface, a
// view of the interrupt controller and a Divider, which is reset by the STOP
// instruction.
//
//	mc, err := cpu.NewCPU(prefs, mem, irq, tmr)
//	if err != nil {
//		return err
//	}
//
//	for {
//		if err := mc.Cycle(); err != nil {
//			return err
//		}
//	}
//
// Cycle() should be called once per machine cycle. An instruction is executed
// in its entirety on the first cycle and the CPU then waits for the remaining
// cycles of the instruction before executing the next one. Step() executes
// the next instruction immediately and returns the number of machine cycles
// it would have taken.
//
// The LastResult field can be probed for information about the most recent
// step. See the execution package for more information.
package cpu
