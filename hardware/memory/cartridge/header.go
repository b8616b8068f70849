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
	"fmt"
	"strings"

	"github.com/jetsetilly/gopherdmg/curated"
)

// Offsets of the header fields in the cartridge image.
const (
	titleOrigin    = 0x0134
	titleMemtop    = 0x0143
	kindOffset     = 0x0147
	romSizeOffset  = 0x0148
	ramSizeOffset  = 0x0149
	checksumOffset = 0x014d

	// an image must be at least this long to contain a complete header
	headerMemtop = 0x014f
)

// Sentinal error patterns.
const (
	HeaderTruncated       = "cartridge: image too short for header (%d bytes)"
	InvalidROMSize        = "cartridge: invalid ROM size code (%#02x)"
	InvalidRAMSize        = "cartridge: invalid RAM size code (%#02x)"
	SizeMismatch          = "cartridge: image size (%d bytes) does not match header (%d bytes)"
	UnsupportedController = "cartridge: unsupported controller (%v)"
)

// Kind is the controller kind as found in the cartridge header.
type Kind uint8

// List of controller kinds. Only None is supported. The others are named so
// that an unsupported cartridge can be described in error messages.
const (
	None      Kind = 0x00
	MBC1      Kind = 0x01
	MBC1RAM   Kind = 0x02
	MBC1Bat   Kind = 0x03
	MBC2      Kind = 0x05
	MBC2Bat   Kind = 0x06
	ROMRAM    Kind = 0x08
	ROMRAMBat Kind = 0x09
	MBC3      Kind = 0x11
	MBC5      Kind = 0x19
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case MBC1, MBC1RAM, MBC1Bat:
		return fmt.Sprintf("MBC1 (%#02x)", uint8(k))
	case MBC2, MBC2Bat:
		return fmt.Sprintf("MBC2 (%#02x)", uint8(k))
	case ROMRAM, ROMRAMBat:
		return fmt.Sprintf("ROM+RAM (%#02x)", uint8(k))
	case MBC3:
		return "MBC3"
	case MBC5:
		return "MBC5"
	}
	return fmt.Sprintf("unknown (%#02x)", uint8(k))
}

// ROM sizes for the non power of two size codes.
var oddROMSizes = map[uint8]int{
	0x52: 1152 * 1024,
	0x53: 1280 * 1024,
	0x54: 1536 * 1024,
}

// RAM sizes indexed by RAM size code.
var ramSizes = []int{0, 2 * 1024, 8 * 1024, 32 * 1024, 128 * 1024, 64 * 1024}

// Header is the information in the cartridge header.
type Header struct {
	Title   string
	Kind    Kind
	ROMSize int
	RAMSize int

	// the checksum in the header and whether it matches the checksum
	// calculated from the header bytes
	Checksum   uint8
	ChecksumOK bool
}

func (h Header) String() string {
	return fmt.Sprintf("%s [%s] ROM=%dKiB RAM=%dKiB", h.Title, h.Kind, h.ROMSize/1024, h.RAMSize/1024)
}

// romSize returns the size of ROM in bytes for the size code.
func romSize(code uint8) (int, error) {
	if code <= 0x08 {
		return (32 * 1024) << code, nil
	}
	if sz, ok := oddROMSizes[code]; ok {
		return sz, nil
	}
	return 0, curated.Errorf(InvalidROMSize, code)
}

// ramSize returns the size of RAM in bytes for the size code.
func ramSize(code uint8) (int, error) {
	if int(code) < len(ramSizes) {
		return ramSizes[code], nil
	}
	return 0, curated.Errorf(InvalidRAMSize, code)
}

// ParseHeader reads the header information from a cartridge image. The
// size of the image is not checked against the header.
func ParseHeader(data []uint8) (Header, error) {
	var h Header
	var err error

	if len(data) <= headerMemtop {
		return h, curated.Errorf(HeaderTruncated, len(data))
	}

	h.Title = strings.TrimRight(string(data[titleOrigin:titleMemtop+1]), "\x00 ")
	h.Kind = Kind(data[kindOffset])

	h.ROMSize, err = romSize(data[romSizeOffset])
	if err != nil {
		return h, err
	}

	h.RAMSize, err = ramSize(data[ramSizeOffset])
	if err != nil {
		return h, err
	}

	var x uint8
	for _, b := range data[titleOrigin:checksumOffset] {
		x = x - b - 1
	}
	h.Checksum = data[checksumOffset]
	h.ChecksumOK = x == h.Checksum

	return h, nil
}
