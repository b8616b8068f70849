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

package cpubus

// Register represents a named address in the IO area of memory.
type Register string

// List of memory mapped registers known to the emulation.
const (
	DIV  Register = "DIV"
	TIMA Register = "TIMA"
	TMA  Register = "TMA"
	TAC  Register = "TAC"
	IF   Register = "IF"
	NR52 Register = "NR52"
	BOOT Register = "BOOT"
	IE   Register = "IE"
)

// Addresses of the memory mapped registers.
const (
	AddrDIV  = uint16(0xff04)
	AddrTIMA = uint16(0xff05)
	AddrTMA  = uint16(0xff06)
	AddrTAC  = uint16(0xff07)
	AddrIF   = uint16(0xff0f)
	AddrNR52 = uint16(0xff26)
	AddrBOOT = uint16(0xff50)
	AddrIE   = uint16(0xffff)
)

// RegisterNames maps the address of a register to its name.
var RegisterNames = map[uint16]Register{
	AddrDIV:  DIV,
	AddrTIMA: TIMA,
	AddrTMA:  TMA,
	AddrTAC:  TAC,
	AddrIF:   IF,
	AddrNR52: NR52,
	AddrBOOT: BOOT,
	AddrIE:   IE,
}

// Interrupt vectors. The vector for an interrupt is InterruptVector plus
// InterruptVectorStride multiplied by the interrupt's bit number.
const (
	InterruptVector       = uint16(0x0040)
	InterruptVectorStride = uint16(0x0008)
)
