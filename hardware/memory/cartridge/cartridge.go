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

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/logger"
)

// Sentinal error patterns.
const (
	Ejected = "cartridge: no cartridge attached"
)

// the values of ID and Hash when no cartridge is attached.
const (
	ejectedID   = "ejected"
	ejectedHash = "nohash"
)

// Cartridge defines the information and operations for a DMG cartridge.
type Cartridge struct {
	// ID is the identifier of the image as given to Attach()
	ID string

	// SHA1 hash of the image
	Hash string

	Header Header

	rom  []uint8
	ram  []uint8
	ctrl controller
}

// NewCartridge is the preferred method of initialisation for the Cartridge
// type. The new cartridge is in the ejected state.
func NewCartridge() *Cartridge {
	cart := &Cartridge{}
	cart.Eject()
	return cart
}

func (cart *Cartridge) String() string {
	if cart.IsEjected() {
		return ejectedID
	}
	return fmt.Sprintf("%s (%s)", cart.Header, cart.ID)
}

// Eject removes the cartridge. Access to cartridge memory is an error until a
// new image is attached.
func (cart *Cartridge) Eject() {
	cart.ID = ejectedID
	cart.Hash = ejectedHash
	cart.Header = Header{}
	cart.rom = nil
	cart.ram = nil
	cart.ctrl = nil
}

// IsEjected returns true if no cartridge is attached.
func (cart *Cartridge) IsEjected() bool {
	return cart.ctrl == nil
}

// Attach a cartridge image. The image is checked and the controller created
// before the existing cartridge is replaced. If an error is returned the
// existing cartridge is left unchanged.
func (cart *Cartridge) Attach(id string, data []uint8) error {
	h, err := ParseHeader(data)
	if err != nil {
		return err
	}

	if len(data) != h.ROMSize {
		return curated.Errorf(SizeMismatch, len(data), h.ROMSize)
	}

	ctrl, err := newController(h)
	if err != nil {
		return err
	}

	if !h.ChecksumOK {
		logger.Logf(logger.Allow, "cartridge", "header checksum mismatch for %s (%#02x)", id, h.Checksum)
	}

	// the cartridge keeps its own copy of the data
	rom := make([]uint8, len(data))
	copy(rom, data)

	cart.ID = id
	cart.Hash = fmt.Sprintf("%x", sha1.Sum(data))
	cart.Header = h
	cart.rom = rom
	cart.ram = make([]uint8, h.RAMSize)
	cart.ctrl = ctrl

	logger.Logf(logger.Allow, "cartridge", "attached %s [%s]", cart.Header, cart.Hash)

	return nil
}

// ReadROM returns the ROM byte for the address. The address is normalised to
// the range 0x0000 to 0x7fff.
func (cart *Cartridge) ReadROM(addr uint16) (uint8, error) {
	if cart.IsEjected() {
		return 0, curated.Errorf(Ejected)
	}
	idx, err := cart.ctrl.translateROM(addr)
	if err != nil {
		return 0, err
	}
	return cart.rom[idx%len(cart.rom)], nil
}

// WriteROM sends a write to a ROM address to the controller. The address is
// normalised to the range 0x0000 to 0x7fff.
func (cart *Cartridge) WriteROM(addr uint16, data uint8) error {
	if cart.IsEjected() {
		return curated.Errorf(Ejected)
	}
	return cart.ctrl.command(addr, data)
}

// ReadRAM returns the RAM byte for the address. The address is normalised to
// the range 0x0000 to 0x1fff.
func (cart *Cartridge) ReadRAM(addr uint16) (uint8, error) {
	if cart.IsEjected() {
		return 0, curated.Errorf(Ejected)
	}
	idx, err := cart.ctrl.translateRAM(addr)
	if err != nil {
		return 0, err
	}
	return cart.ram[idx], nil
}

// WriteRAM writes to RAM at the address. The address is normalised to the
// range 0x0000 to 0x1fff.
func (cart *Cartridge) WriteRAM(addr uint16, data uint8) error {
	if cart.IsEjected() {
		return curated.Errorf(Ejected)
	}
	idx, err := cart.ctrl.translateRAM(addr)
	if err != nil {
		return err
	}
	cart.ram[idx] = data
	return nil
}
