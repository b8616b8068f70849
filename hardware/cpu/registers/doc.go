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

// Package registers implements the register file of the SM83 CPU.
//
// The general purpose registers are arranged in pairs: AF, BC, DE and HL. Each
// pair is a single 16-bit value that can also be accessed as two 8-bit halves.
// The high byte (bits 15 to 8) is the first register named by the pair and the
// low byte (bits 7 to 0) is the second. So for the BC pair, B is the high byte
// and C is the low byte:
//
//	bc := registers.NewPair("BC")
//	bc.Load(0x1234)
//	bc.Hi() // 0x12 (B)
//	bc.Lo() // 0x34 (C)
//
// The low byte of AF holds the flags. Only the top four bits are used and the
// bottom four bits always read as zero, however the byte is written.
//
// The stack pointer and program counter are word only.
package registers
