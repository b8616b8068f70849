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

package memory

import (
	"fmt"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/hardware/interrupts"
	"github.com/jetsetilly/gopherdmg/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherdmg/hardware/memory/cpubus"
	"github.com/jetsetilly/gopherdmg/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherdmg/hardware/timer"
	"github.com/jetsetilly/gopherdmg/hardware/video"
	"github.com/jetsetilly/gopherdmg/logger"
)

// Sentinal error patterns. Both wrap cpubus.AddressError.
const (
	UnreadableAddress = "memory: %v: cannot read %#04x (%v)"
	UnwritableAddress = "memory: %v: cannot write %#04x (%v)"
)

// sizes of the areas owned by the Memory type.
const (
	wramSize = int(memorymap.MemtopWRAM-memorymap.OriginWRAM) + 1
	hramSize = int(memorymap.MemtopHRAM-memorymap.OriginHRAM) + 1
)

// Memory is the address space router. It implements the cpubus.Memory
// interface.
type Memory struct {
	boot        []uint8
	bootEnabled bool

	vram video.Memory
	cart *cartridge.Cartridge
	tmr  *timer.Timer
	irq  *interrupts.Interrupts

	wram [wramSize]uint8
	hram [hramSize]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type. The
// boot image should be 256 bytes. It is not copied and should not be changed
// for the lifetime of the Memory instance. Addresses beyond the end of a short
// boot image are unreadable while the boot image is mapped.
//
// A nil cartridge is replaced with an ejected cartridge.
func NewMemory(boot []uint8, vram video.Memory, cart *cartridge.Cartridge, tmr *timer.Timer, irq *interrupts.Interrupts) *Memory {
	if cart == nil {
		cart = cartridge.NewCartridge()
	}

	mem := &Memory{
		boot: boot,
		vram: vram,
		cart: cart,
		tmr:  tmr,
		irq:  irq,
	}
	mem.Reset()
	return mem
}

func (mem *Memory) String() string {
	if mem.bootEnabled {
		return fmt.Sprintf("boot image mapped, cartridge: %s", mem.cart)
	}
	return fmt.Sprintf("cartridge: %s", mem.cart)
}

// Reset maps the boot image and clears work RAM and high RAM.
func (mem *Memory) Reset() {
	mem.bootEnabled = true
	clear(mem.wram[:])
	clear(mem.hram[:])
}

// BootEnabled returns true if the boot image is mapped over the start of
// cartridge ROM.
func (mem *Memory) BootEnabled() bool {
	return mem.bootEnabled
}

// Read is an implementation of cpubus.Memory.
func (mem *Memory) Read(address uint16) (uint8, error) {
	offset, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.Boot:
		if mem.bootEnabled {
			if int(offset) >= len(mem.boot) {
				return 0, curated.Errorf(UnreadableAddress, cpubus.AddressError, address, "beyond boot image")
			}
			return mem.boot[offset], nil
		}
		return mem.readCart(address, offset, mem.cart.ReadROM)
	case memorymap.CartROM:
		return mem.readCart(address, offset, mem.cart.ReadROM)
	case memorymap.VRAM:
		return mem.vram.ReadByte(offset), nil
	case memorymap.CartRAM:
		return mem.readCart(address, offset, mem.cart.ReadRAM)
	case memorymap.WRAM:
		return mem.wram[offset], nil
	case memorymap.Timer:
		return mem.tmr.Read(offset), nil
	case memorymap.Interrupts:
		if offset == 0 {
			return mem.irq.ReadFlag(), nil
		}
		return mem.irq.ReadEnable(), nil
	case memorymap.Sound:
		return 0x00, nil
	case memorymap.BootControl:
		return 0xff, nil
	case memorymap.HRAM:
		return mem.hram[offset], nil
	}

	return 0, curated.Errorf(UnreadableAddress, cpubus.AddressError, address, "unmapped")
}

// read from the cartridge, wrapping any error in an UnreadableAddress error
func (mem *Memory) readCart(address uint16, offset uint16, read func(uint16) (uint8, error)) (uint8, error) {
	data, err := read(offset)
	if err != nil {
		return 0, curated.Errorf(UnreadableAddress, cpubus.AddressError, address, err)
	}
	return data, nil
}

// wraps a cartridge error in an UnwritableAddress error
func (mem *Memory) writeCart(address uint16, err error) error {
	if err != nil {
		return curated.Errorf(UnwritableAddress, cpubus.AddressError, address, err)
	}
	return nil
}

// Write is an implementation of cpubus.Memory.
func (mem *Memory) Write(address uint16, data uint8) error {
	offset, area := memorymap.MapAddress(address)

	switch area {
	case memorymap.Boot, memorymap.CartROM:
		// the boot image is read only so writes always go to the
		// cartridge controller
		return mem.writeCart(address, mem.cart.WriteROM(offset, data))
	case memorymap.VRAM:
		mem.vram.WriteByte(offset, data)
		return nil
	case memorymap.CartRAM:
		return mem.writeCart(address, mem.cart.WriteRAM(offset, data))
	case memorymap.WRAM:
		mem.wram[offset] = data
		return nil
	case memorymap.Timer:
		mem.tmr.Write(offset, data)
		return nil
	case memorymap.Interrupts:
		if offset == 0 {
			mem.irq.WriteFlag(data)
		} else {
			mem.irq.WriteEnable(data)
		}
		return nil
	case memorymap.Sound:
		return nil
	case memorymap.BootControl:
		if data != 0 && mem.bootEnabled {
			mem.bootEnabled = false
			logger.Log(logger.Allow, "memory", "boot image unmapped")
		}
		return nil
	case memorymap.HRAM:
		mem.hram[offset] = data
		return nil
	}

	return curated.Errorf(UnwritableAddress, cpubus.AddressError, address, "unmapped")
}

// Read16 reads a 16-bit value. The low byte is read from address and the high
// byte from address+1. The two reads are independent of one another.
func (mem *Memory) Read16(address uint16) (uint16, error) {
	lo, err := mem.Read(address)
	if err != nil {
		return 0, err
	}
	hi, err := mem.Read(address + 1)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// Write16 writes a 16-bit value. The low byte is written to address and the
// high byte to address+1. If the second write fails the first write is not
// undone.
func (mem *Memory) Write16(address uint16, data uint16) error {
	err := mem.Write(address, uint8(data))
	if err != nil {
		return err
	}
	return mem.Write(address+1, uint8(data>>8))
}
