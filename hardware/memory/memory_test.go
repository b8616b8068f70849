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

package memory_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/hardware/interrupts"
	"github.com/jetsetilly/gopherdmg/hardware/memory"
	"github.com/jetsetilly/gopherdmg/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherdmg/hardware/memory/cpubus"
	"github.com/jetsetilly/gopherdmg/hardware/timer"
	"github.com/jetsetilly/gopherdmg/hardware/video"
	"github.com/jetsetilly/gopherdmg/test"
)

type harness struct {
	mem  *memory.Memory
	boot []uint8
	vram *video.VRAM
	cart *cartridge.Cartridge
	tmr  *timer.Timer
	irq  *interrupts.Interrupts
}

func newHarness() *harness {
	h := &harness{
		boot: make([]uint8, 256),
		vram: video.NewVRAM(),
		cart: cartridge.NewCartridge(),
		irq:  interrupts.NewInterrupts(),
	}
	for i := range h.boot {
		h.boot[i] = 0xb0
	}
	h.tmr = timer.NewTimer(h.irq)
	h.mem = memory.NewMemory(h.boot, h.vram, h.cart, h.tmr, h.irq)
	return h
}

// attach a 32KiB cartridge where every byte after the header is the low byte
// of its address
func (h *harness) attach(t *testing.T, ramCode uint8) {
	t.Helper()
	data := make([]uint8, 0x8000)
	for i := 0x150; i < len(data); i++ {
		data[i] = uint8(i)
	}
	data[0x149] = ramCode
	test.DemandSuccess(t, h.cart.Attach("test", data))
}

func TestBootOverlay(t *testing.T) {
	h := newHarness()
	h.attach(t, 0x00)
	test.ExpectSuccess(t, h.mem.BootEnabled())

	v, err := h.mem.Read(0x0000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0xb0))
	v, _ = h.mem.Read(0x00ff)
	test.ExpectEquality(t, v, uint8(0xb0))

	// reads beyond the boot image go to the cartridge
	v, err = h.mem.Read(0x0150)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x50))

	// boot control reads as 0xff. writing zero does nothing
	v, _ = h.mem.Read(0xff50)
	test.ExpectEquality(t, v, uint8(0xff))
	test.ExpectSuccess(t, h.mem.Write(0xff50, 0x00))
	test.ExpectSuccess(t, h.mem.BootEnabled())

	test.ExpectSuccess(t, h.mem.Write(0xff50, 0x01))
	test.ExpectFailure(t, h.mem.BootEnabled())
	v, _ = h.mem.Read(0x0000)
	test.ExpectEquality(t, v, uint8(0x00))

	h.mem.Reset()
	test.ExpectSuccess(t, h.mem.BootEnabled())
}

func TestNoCartridge(t *testing.T) {
	h := newHarness()

	// the boot image is readable without a cartridge
	_, err := h.mem.Read(0x0000)
	test.ExpectSuccess(t, err)

	_, err = h.mem.Read(0x0100)
	test.ExpectSuccess(t, errors.Is(err, cpubus.AddressError))
	test.ExpectSuccess(t, curated.Is(err, memory.UnreadableAddress))
	test.ExpectSuccess(t, curated.Has(err, cartridge.Ejected))

	err = h.mem.Write(0x2000, 0x01)
	test.ExpectSuccess(t, curated.Is(err, memory.UnwritableAddress))
	test.ExpectSuccess(t, curated.Has(err, cartridge.Ejected))

	_, err = h.mem.Read(0xa000)
	test.ExpectSuccess(t, errors.Is(err, cpubus.AddressError))
}

func TestShortBootImage(t *testing.T) {
	irq := interrupts.NewInterrupts()
	mem := memory.NewMemory([]uint8{0x31, 0xfe, 0xff}, video.NewVRAM(), nil, timer.NewTimer(irq), irq)

	v, err := mem.Read(0x0002)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0xff))

	_, err = mem.Read(0x0003)
	test.ExpectSuccess(t, errors.Is(err, cpubus.AddressError))
	test.ExpectSuccess(t, curated.Is(err, memory.UnreadableAddress))

	// the nil cartridge is treated as ejected
	_, err = mem.Read(0x0100)
	test.ExpectSuccess(t, curated.Has(err, cartridge.Ejected))
}

func TestCartridgeRAM(t *testing.T) {
	h := newHarness()
	h.attach(t, 0x02)

	test.ExpectSuccess(t, h.mem.Write(0xbfff, 0x42))
	v, err := h.mem.Read(0xbfff)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x42))

	h = newHarness()
	h.attach(t, 0x00)
	err = h.mem.Write(0xa000, 0x42)
	test.ExpectSuccess(t, errors.Is(err, cpubus.AddressError))
	test.ExpectSuccess(t, curated.Has(err, cartridge.NoRAM))
}

func TestVRAM(t *testing.T) {
	h := newHarness()

	test.ExpectSuccess(t, h.mem.Write(0x8000, 0x11))
	test.ExpectSuccess(t, h.mem.Write(0x9fff, 0x22))
	test.ExpectEquality(t, h.vram.ReadByte(0x0000), uint8(0x11))
	test.ExpectEquality(t, h.vram.ReadByte(0x1fff), uint8(0x22))

	h.vram.WriteByte(0x1000, 0x33)
	v, err := h.mem.Read(0x9000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x33))
}

// the echo area and work RAM are the same storage
func TestEcho(t *testing.T) {
	h := newHarness()

	test.ExpectSuccess(t, h.mem.Write(0xe000, 0x5a))
	v, err := h.mem.Read(0xc000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x5a))

	test.ExpectSuccess(t, h.mem.Write(0xc000, 0xa5))
	v, err = h.mem.Read(0xe000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0xa5))

	// top of echo area is below the top of work RAM
	test.ExpectSuccess(t, h.mem.Write(0xfdff, 0x77))
	v, _ = h.mem.Read(0xddff)
	test.ExpectEquality(t, v, uint8(0x77))
	v, _ = h.mem.Read(0xdfff)
	test.ExpectEquality(t, v, uint8(0x00))

	// echo does not touch video memory
	test.ExpectEquality(t, h.vram.ReadByte(0x0000), uint8(0x00))
}

func TestIllegal(t *testing.T) {
	h := newHarness()

	for _, a := range []uint16{0xfe00, 0xfe9f, 0xfeff, 0xff00, 0xff01, 0xff40, 0xff7f} {
		_, err := h.mem.Read(a)
		test.ExpectSuccess(t, errors.Is(err, cpubus.AddressError), a)
		test.ExpectSuccess(t, curated.Is(err, memory.UnreadableAddress), a)

		err = h.mem.Write(a, 0)
		test.ExpectSuccess(t, errors.Is(err, cpubus.AddressError), a)
		test.ExpectSuccess(t, curated.Is(err, memory.UnwritableAddress), a)
	}

	_, err := h.mem.Read(0xfe00)
	test.ExpectEquality(t, err.Error(), "memory: inaccessible address: cannot read 0xfe00 (unmapped)")
}

func TestRegisters(t *testing.T) {
	h := newHarness()

	// sound on/off is a placeholder
	test.ExpectSuccess(t, h.mem.Write(0xff26, 0x80))
	v, err := h.mem.Read(0xff26)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x00))

	test.ExpectSuccess(t, h.mem.Write(0xff0f, 0x04))
	v, _ = h.mem.Read(0xff0f)
	test.ExpectEquality(t, v, uint8(0xe4))

	test.ExpectSuccess(t, h.mem.Write(0xffff, 0x05))
	v, _ = h.mem.Read(0xffff)
	test.ExpectEquality(t, v, uint8(0x05))
	test.ExpectEquality(t, h.irq.Pending(), uint8(0x04))

	test.ExpectSuccess(t, h.mem.Write(0xff06, 0x80))
	v, _ = h.mem.Read(0xff06)
	test.ExpectEquality(t, v, uint8(0x80))
	v, _ = h.mem.Read(0xff07)
	test.ExpectEquality(t, v, uint8(0xf8))

	for range 64 {
		h.tmr.Step()
	}
	v, _ = h.mem.Read(0xff04)
	test.ExpectEquality(t, v, uint8(0x01))
	test.ExpectSuccess(t, h.mem.Write(0xff04, 0x99))
	v, _ = h.mem.Read(0xff04)
	test.ExpectEquality(t, v, uint8(0x00))
}

func TestHRAM(t *testing.T) {
	h := newHarness()
	test.ExpectSuccess(t, h.mem.Write(0xff80, 0x01))
	test.ExpectSuccess(t, h.mem.Write(0xfffe, 0x02))
	v, _ := h.mem.Read(0xff80)
	test.ExpectEquality(t, v, uint8(0x01))
	v, _ = h.mem.Read(0xfffe)
	test.ExpectEquality(t, v, uint8(0x02))

	h.mem.Reset()
	v, _ = h.mem.Read(0xff80)
	test.ExpectEquality(t, v, uint8(0x00))
}

func TestSixteenBit(t *testing.T) {
	h := newHarness()

	test.ExpectSuccess(t, h.mem.Write16(0xfffc, 0x1234))
	lo, _ := h.mem.Read(0xfffc)
	hi, _ := h.mem.Read(0xfffd)
	test.ExpectEquality(t, lo, uint8(0x34))
	test.ExpectEquality(t, hi, uint8(0x12))

	v, err := h.mem.Read16(0xfffc)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint16(0x1234))

	// the high byte write fails but the low byte write has already happened
	err = h.mem.Write16(0xfdff, 0xabcd)
	test.ExpectSuccess(t, errors.Is(err, cpubus.AddressError))
	lo, _ = h.mem.Read(0xfdff)
	test.ExpectEquality(t, lo, uint8(0xcd))

	// straddling the top of memory wraps to the boot image
	test.ExpectSuccess(t, h.mem.Write(0xffff, 0x01))
	v, err = h.mem.Read16(0xffff)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint16(0xb001))
}
