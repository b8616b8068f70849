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

// Package cartridge fully implements loading of cartridge images and the
// mapping of cartridge memory into the DMG address space.
//
// The cartridge header describes the size of ROM and RAM and the kind of
// controller (the memory bank controller) fitted to the cartridge. The
// controller translates addresses in the cartridge areas of memory to an
// offset in the physical ROM or RAM. The set of controllers is closed and
// currently only the "none" controller is supported. Support for new
// controllers is added with a new implementation of the controller interface
// and a new case in newController().
//
// A Cartridge instance is created once and then has images attached to it and
// ejected from it. A failed Attach() leaves the existing cartridge in place.
package cartridge
