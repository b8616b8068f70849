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

// Package cpubus defines the interface between the CPU and the memory system,
// along with the addresses of the memory mapped registers.
package cpubus

import "errors"

// Memory defines the operations for the memory system when accessed from the
// CPU. The address space router implements this interface and dispatches the
// access to the correct memory area, meaning that the CPU need not care which
// part of memory it is reading or writing.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// AddressError is the sentinal error wrapped by every error caused by an
// access to an address that is not claimed by a memory area. It can be tested
// for with errors.Is().
var AddressError = errors.New("inaccessible address")
