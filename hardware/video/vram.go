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

// Package video contains the parts of the display hardware that the CPU can
// see. Currently that is only video memory. Pixel generation is the concern
// of a display collaborator that shares the video memory with the CPU.
package video

import (
	"fmt"
)

// VRAMSize is the size of video memory in bytes.
const VRAMSize = 0x2000

// Memory is the capability the address space router requires of video memory.
// The offset is always less than VRAMSize.
//
// A display running on a different goroutine to the CPU would require an
// implementation that synchronises access.
type Memory interface {
	ReadByte(offset uint16) uint8
	WriteByte(offset uint16, data uint8)
}

// VRAM is the 8KiB of video memory in the DMG.
type VRAM struct {
	data [VRAMSize]uint8
}

// NewVRAM is the preferred method of initialisation for the VRAM type.
func NewVRAM() *VRAM {
	return &VRAM{}
}

func (v *VRAM) String() string {
	return fmt.Sprintf("VRAM %d bytes", len(v.data))
}

// ReadByte implements the Memory interface.
func (v *VRAM) ReadByte(offset uint16) uint8 {
	return v.data[offset%VRAMSize]
}

// WriteByte implements the Memory interface.
func (v *VRAM) WriteByte(offset uint16, data uint8) {
	v.data[offset%VRAMSize] = data
}

// Clear sets every byte of video memory to zero.
func (v *VRAM) Clear() {
	clear(v.data[:])
}
