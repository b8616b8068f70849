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

package memorymap

// Area represents the different areas of memory.
type Area int

func (a Area) String() string {
	switch a {
	case Boot:
		return "Boot"
	case CartROM:
		return "Cartridge ROM"
	case VRAM:
		return "VRAM"
	case CartRAM:
		return "Cartridge RAM"
	case WRAM:
		return "WRAM"
	case Timer:
		return "Timer"
	case Interrupts:
		return "Interrupts"
	case Sound:
		return "Sound"
	case BootControl:
		return "Boot control"
	case HRAM:
		return "HRAM"
	}

	return "undefined"
}

// The different memory areas in the DMG.
const (
	Undefined Area = iota
	Boot
	CartROM
	VRAM
	CartRAM
	WRAM
	Timer
	Interrupts
	Sound
	BootControl
	HRAM
)

// The origin and memory top for each area of memory. Checking which area an
// address falls within and forcing the address into the normalised range is
// all handled by the MapAddress() function.
const (
	OriginBoot    = uint16(0x0000)
	MemtopBoot    = uint16(0x00ff)
	OriginCartROM = uint16(0x0000)
	MemtopCartROM = uint16(0x7fff)
	OriginVRAM    = uint16(0x8000)
	MemtopVRAM    = uint16(0x9fff)
	OriginCartRAM = uint16(0xa000)
	MemtopCartRAM = uint16(0xbfff)
	OriginWRAM    = uint16(0xc000)
	MemtopWRAM    = uint16(0xdfff)
	OriginEcho    = uint16(0xe000)
	MemtopEcho    = uint16(0xfdff)
	OriginTimer   = uint16(0xff04)
	MemtopTimer   = uint16(0xff07)
	OriginHRAM    = uint16(0xff80)
	MemtopHRAM    = uint16(0xfffe)
)

// Single address areas.
const (
	AddrInterruptFlag   = uint16(0xff0f)
	AddrSound           = uint16(0xff26)
	AddrBootControl     = uint16(0xff50)
	AddrInterruptEnable = uint16(0xffff)
)

// Memtop is the top most address of memory in the DMG.
const Memtop = uint16(0xffff)

// MapAddress returns the area an address belongs to and the offset of the
// address from the origin of the area. Undefined is returned for addresses
// that do not belong to any area.
//
// Addresses in the boot area are also cartridge ROM addresses. Whether the
// boot image or the cartridge is accessed depends on the state of the boot
// overlay.
//
// For the Interrupts area the offset is 0 for the interrupt flag register and
// 1 for the interrupt enable register.
func MapAddress(address uint16) (uint16, Area) {
	// note that the order of these filters is important
	switch {
	case address <= MemtopBoot:
		return address - OriginBoot, Boot
	case address <= MemtopCartROM:
		return address - OriginCartROM, CartROM
	case address <= MemtopVRAM:
		return address - OriginVRAM, VRAM
	case address <= MemtopCartRAM:
		return address - OriginCartRAM, CartRAM
	case address <= MemtopWRAM:
		return address - OriginWRAM, WRAM
	case address <= MemtopEcho:
		return address - OriginEcho, WRAM
	case address >= OriginTimer && address <= MemtopTimer:
		return address - OriginTimer, Timer
	case address == AddrInterruptFlag:
		return 0, Interrupts
	case address == AddrSound:
		return 0, Sound
	case address == AddrBootControl:
		return 0, BootControl
	case address >= OriginHRAM && address <= MemtopHRAM:
		return address - OriginHRAM, HRAM
	case address == AddrInterruptEnable:
		return 1, Interrupts
	}

	return address, Undefined
}

// IsArea returns true if the address is in the specified area.
func IsArea(address uint16, area Area) bool {
	_, a := MapAddress(address)
	return area == a
}
