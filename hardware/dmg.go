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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/hardware/cpu"
	"github.com/jetsetilly/gopherdmg/hardware/interrupts"
	"github.com/jetsetilly/gopherdmg/hardware/memory"
	"github.com/jetsetilly/gopherdmg/hardware/memory/cartridge"
	"github.com/jetsetilly/gopherdmg/hardware/preferences"
	"github.com/jetsetilly/gopherdmg/hardware/timer"
	"github.com/jetsetilly/gopherdmg/hardware/video"
	"github.com/jetsetilly/gopherdmg/logger"
)

// Sentinal error patterns.
const (
	BootImageSize = "dmg: boot image must be %d bytes (%d bytes)"
	Halted        = "dmg: halted: %v"
)

// BootSize is the required size of the boot image.
const BootSize = 256

// ImageSource is the collaborator from which the boot image and cartridge
// images are acquired.
type ImageSource interface {
	BootImage() ([]uint8, error)
	CartridgeImage(id string) ([]uint8, error)
}

// DMG is the root of the emulated hardware.
type DMG struct {
	Prefs *preferences.Preferences

	CPU        *cpu.CPU
	Mem        *memory.Memory
	VRAM       *video.VRAM
	Cart       *cartridge.Cartridge
	Timer      *timer.Timer
	Interrupts *interrupts.Interrupts

	src ImageSource

	// remainder of elapsed time that did not amount to a whole tick. see
	// clocks.DurationToTicks()
	remainder int64

	// base ticks that did not amount to a whole machine cycle
	ticks int64

	// the number of machine cycles since Start()
	Cycles int64

	// the error that halted the emulation
	halted error
}

// NewDMG creates a new DMG and everything associated with the hardware. The
// boot image is acquired from the ImageSource and must be exactly BootSize
// bytes. No cartridge is attached.
//
// The prefs argument can be nil, in which case the default values are used
// and nothing is ever read from or written to disk.
func NewDMG(prefs *preferences.Preferences, src ImageSource) (*DMG, error) {
	boot, err := src.BootImage()
	if err != nil {
		return nil, curated.Errorf("dmg: %v", err)
	}

	if len(boot) != BootSize {
		return nil, curated.Errorf(BootImageSize, BootSize, len(boot))
	}

	dmg := &DMG{
		Prefs:      prefs,
		src:        src,
		VRAM:       video.NewVRAM(),
		Cart:       cartridge.NewCartridge(),
		Interrupts: interrupts.NewInterrupts(),
	}

	dmg.Timer = timer.NewTimer(dmg.Interrupts)

	// the memory keeps its own copy of the boot image
	b := make([]uint8, BootSize)
	copy(b, boot)

	dmg.Mem = memory.NewMemory(b, dmg.VRAM, dmg.Cart, dmg.Timer, dmg.Interrupts)

	dmg.CPU, err = cpu.NewCPU(prefs, dmg.Mem, dmg.Interrupts, dmg.Timer)
	if err != nil {
		return nil, err
	}

	return dmg, nil
}

func (dmg *DMG) String() string {
	return fmt.Sprintf("%s\n%s\n%s", dmg.CPU, dmg.Timer, dmg.Interrupts)
}

// LoadCartridge acquires the cartridge image from the ImageSource and
// attaches it. If an error is returned the existing cartridge is unchanged.
//
// The machine is not restarted. Call Start() after loading a new cartridge.
func (dmg *DMG) LoadCartridge(id string) error {
	data, err := dmg.src.CartridgeImage(id)
	if err != nil {
		return curated.Errorf("dmg: %v", err)
	}

	err = dmg.Cart.Attach(id, data)
	if err != nil {
		return curated.Errorf("dmg: %v", err)
	}

	return nil
}

// Start the emulation from the power-on state. Registers are zeroed, the boot
// image is mapped and RAM is cleared. The attached cartridge is unaffected.
func (dmg *DMG) Start() {
	dmg.CPU.Reset()
	dmg.Mem.Reset()
	dmg.VRAM.Clear()
	dmg.Timer.Reset()
	dmg.Interrupts.Reset()

	dmg.remainder = 0
	dmg.ticks = 0
	dmg.Cycles = 0
	dmg.halted = nil

	if dmg.Cart.IsEjected() {
		logger.Log(logger.Allow, "dmg", "started with no cartridge")
	} else {
		logger.Logf(logger.Allow, "dmg", "started with %s", dmg.Cart.ID)
	}
}

// IsHalted returns the error that halted the emulation. Returns nil if the
// emulation has not been halted.
func (dmg *DMG) IsHalted() error {
	return dmg.halted
}
