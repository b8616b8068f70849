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

// Package interrupts implements the interrupt flag (IF) and interrupt enable
// (IE) registers. Peripherals request an interrupt by setting the
// corresponding bit in IF. The CPU dispatches the lowest numbered interrupt
// that is both requested and enabled.
package interrupts

import (
	"fmt"
	"strings"
)

// Kind of interrupt. The value is the bit number in the IF and IE registers.
type Kind int

// List of interrupt kinds in order of priority.
const (
	VBlank Kind = iota
	LCDStat
	Timer
	Serial
	Joypad
)

// NumKinds is the number of interrupt kinds.
const NumKinds = 5

func (k Kind) String() string {
	switch k {
	case VBlank:
		return "VBlank"
	case LCDStat:
		return "LCDStat"
	case Timer:
		return "Timer"
	case Serial:
		return "Serial"
	case Joypad:
		return "Joypad"
	}
	return "unknown interrupt"
}

// Mask is the bit in the IF and IE registers for the interrupt.
func (k Kind) Mask() uint8 {
	return 1 << k
}

// the bits of IF and IE that are connected to interrupts.
const connected = uint8(0x1f)

// Requester is implemented by anything that can have interrupts requested of
// it. Peripherals should be given a Requester rather than an instance of
// Interrupts.
type Requester interface {
	Request(Kind)
}

// Interrupts is the IF and IE register pair.
type Interrupts struct {
	// only the lower five bits are stored
	flag uint8

	// all eight bits are stored but only the lower five are used
	enable uint8
}

// NewInterrupts is the preferred method of initialisation for the Interrupts
// type.
func NewInterrupts() *Interrupts {
	return &Interrupts{}
}

func (irq *Interrupts) String() string {
	s := strings.Builder{}
	for k := VBlank; k < NumKinds; k++ {
		if k > VBlank {
			s.WriteRune(' ')
		}
		st := "-"
		if irq.flag&k.Mask() != 0 {
			st = "R"
		}
		if irq.enable&k.Mask() != 0 {
			st = fmt.Sprintf("%sE", strings.TrimPrefix(st, "-"))
		}
		s.WriteString(fmt.Sprintf("%s=%s", k, st))
	}
	return s.String()
}

// Reset both registers to zero.
func (irq *Interrupts) Reset() {
	irq.flag = 0
	irq.enable = 0
}

// Request an interrupt. Implements the Requester interface.
func (irq *Interrupts) Request(k Kind) {
	irq.flag |= k.Mask()
}

// Acknowledge clears the request for the interrupt.
func (irq *Interrupts) Acknowledge(k Kind) {
	irq.flag &^= k.Mask()
}

// Pending returns the bits of the interrupts that are both requested and
// enabled.
func (irq *Interrupts) Pending() uint8 {
	return irq.flag & irq.enable & connected
}

// Next returns the highest priority pending interrupt. The bool is false if
// no interrupt is pending.
func (irq *Interrupts) Next() (Kind, bool) {
	p := irq.Pending()
	for k := VBlank; k < NumKinds; k++ {
		if p&k.Mask() != 0 {
			return k, true
		}
	}
	return 0, false
}

// ReadFlag returns the value of the IF register. The upper three bits are
// not connected and always read as one.
func (irq *Interrupts) ReadFlag() uint8 {
	return irq.flag | ^connected
}

// WriteFlag sets the value of the IF register.
func (irq *Interrupts) WriteFlag(data uint8) {
	irq.flag = data & connected
}

// ReadEnable returns the value of the IE register.
func (irq *Interrupts) ReadEnable() uint8 {
	return irq.enable
}

// WriteEnable sets the value of the IE register.
func (irq *Interrupts) WriteEnable(data uint8) {
	irq.enable = data
}
