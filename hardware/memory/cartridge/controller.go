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

package cartridge

import "github.com/jetsetilly/gopherdmg/curated"

// Sentinal error patterns.
const (
	NoRAM = "cartridge: no RAM at offset %#04x"
)

// controller implementations translate logical addresses in the cartridge
// areas of memory to offsets in the physical ROM and RAM. addresses are
// normalised to the origin of the area: 0x0000 to 0x7fff for ROM and 0x0000
// to 0x1fff for RAM.
type controller interface {
	kind() Kind

	// translate a ROM address to an offset into ROM
	translateROM(addr uint16) (int, error)

	// translate a RAM address to an offset into RAM
	translateRAM(addr uint16) (int, error)

	// writes to ROM addresses are commands to the controller
	command(addr uint16, data uint8) error
}

// newController returns the controller for the kind of cartridge described by
// the header. this is the only place where the set of supported controllers
// is defined.
func newController(h Header) (controller, error) {
	switch h.Kind {
	case None:
		return newNone(h), nil
	}
	return nil, curated.Errorf(UnsupportedController, h.Kind)
}
