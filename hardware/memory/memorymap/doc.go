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

// Package memorymap facilitates the translation of addresses to primary
// address equivalents and identifies the area of memory an address belongs to.
//
// The DMG address space is divided into fixed areas. Some areas, like work
// RAM, have a mirror. MapAddress() returns the offset of an address into its
// area, so an address in the mirror returns the same offset as the equivalent
// address in the primary area.
//
// MapAddress() is a pure function of the address. The state of an area (for
// example, whether the boot image is currently mapped) is the concern of the
// memory package.
package memorymap
