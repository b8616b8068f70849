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

// Package memory implements the address space router of the DMG. Every read
// and write made by the CPU passes through the Memory type, which uses the
// memorymap package to decide which area of memory the address belongs to and
// then dispatches the access to that area.
//
// Some areas are owned by the Memory type itself (work RAM and high RAM). The
// others are owned by other parts of the emulation and are bound to the
// Memory type when it is created: the boot image, video memory, the
// cartridge, the timer and the interrupt registers.
//
// Access to an address that does not belong to any area is an error. The
// error wraps cpubus.AddressError.
package memory
