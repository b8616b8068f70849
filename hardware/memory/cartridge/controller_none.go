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

// none is the controller for cartridges with no memory bank controller. ROM is
// mapped directly and writes to ROM are ignored. Up to 8KiB of RAM can be
// mapped directly.
type none struct {
	ramSize int
}

func newNone(h Header) *none {
	return &none{
		ramSize: h.RAMSize,
	}
}

// kind implements the controller interface.
func (ctrl *none) kind() Kind {
	return None
}

// translateROM implements the controller interface.
func (ctrl *none) translateROM(addr uint16) (int, error) {
	return int(addr), nil
}

// translateRAM implements the controller interface.
func (ctrl *none) translateRAM(addr uint16) (int, error) {
	if int(addr) >= ctrl.ramSize {
		return 0, curated.Errorf(NoRAM, addr)
	}
	return int(addr), nil
}

// command implements the controller interface.
func (ctrl *none) command(_ uint16, _ uint8) error {
	return nil
}
