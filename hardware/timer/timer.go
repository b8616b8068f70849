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

// Package timer implements the DIV, TIMA, TMA and TAC registers.
//
// The timer is driven by a 16-bit counter that advances by four (one
// machine cycle of base clock ticks) every time Step() is called. DIV is the
// upper byte of the counter. TIMA increments on the falling edge of a counter
// bit selected by TAC. When TIMA overflows it is reloaded from TMA and the
// timer interrupt is requested.
package timer

import (
	"fmt"

	"github.com/jetsetilly/gopherdmg/hardware/clocks"
	"github.com/jetsetilly/gopherdmg/hardware/interrupts"
)

// Register offsets from the origin of the timer area.
const (
	DIV  = 0
	TIMA = 1
	TMA  = 2
	TAC  = 3
)

// TAC bits.
const (
	tacEnable = uint8(0x04)
	tacSelect = uint8(0x03)
	tacUnused = uint8(0xf8)
)

// the counter bit whose falling edge increments TIMA for each value of the
// TAC select bits. the frequencies are 4096Hz, 262144Hz, 65536Hz and 16384Hz
var selectBit = [4]uint16{1 << 9, 1 << 3, 1 << 5, 1 << 7}

// Timer implements the timer registers of the DMG.
type Timer struct {
	irq interrupts.Requester

	counter uint16

	tima uint8
	tma  uint8
	tac  uint8
}

// NewTimer is the preferred method of initialisation of the Timer type.
func NewTimer(irq interrupts.Requester) *Timer {
	return &Timer{
		irq: irq,
	}
}

func (tmr *Timer) String() string {
	return fmt.Sprintf("DIV=%#02x TIMA=%#02x TMA=%#02x TAC=%#02x", tmr.DIV(), tmr.tima, tmr.tma, tmr.tac)
}

// Reset all timer registers to zero.
func (tmr *Timer) Reset() {
	tmr.counter = 0
	tmr.tima = 0
	tmr.tma = 0
	tmr.tac = 0
}

// DIV returns the current value of the DIV register.
func (tmr *Timer) DIV() uint8 {
	return uint8(tmr.counter >> 8)
}

// the state of the counter bit selected by TAC, taking the enable bit into
// account
func (tmr *Timer) signal() bool {
	if tmr.tac&tacEnable == 0 {
		return false
	}
	return tmr.counter&selectBit[tmr.tac&tacSelect] != 0
}

// update counter and increment TIMA if the selected bit has a falling edge
func (tmr *Timer) setCounter(counter uint16) {
	before := tmr.signal()
	tmr.counter = counter
	if before && !tmr.signal() {
		tmr.increment()
	}
}

func (tmr *Timer) increment() {
	tmr.tima++
	if tmr.tima == 0 {
		tmr.tima = tmr.tma
		tmr.irq.Request(interrupts.Timer)
	}
}

// Step advances the timer by one machine cycle.
func (tmr *Timer) Step() {
	tmr.setCounter(tmr.counter + clocks.TicksPerCycle)
}

// ResetDIV resets the internal counter and so DIV to zero. This happens when
// DIV is written to and when the CPU executes STOP.
//
// If the selected counter bit was set then the reset is a falling edge and
// TIMA is incremented.
func (tmr *Timer) ResetDIV() {
	tmr.setCounter(0)
}

// Read the timer register at the offset.
func (tmr *Timer) Read(offset uint16) uint8 {
	switch offset {
	case DIV:
		return tmr.DIV()
	case TIMA:
		return tmr.tima
	case TMA:
		return tmr.tma
	case TAC:
		return tmr.tac | tacUnused
	}
	return 0xff
}

// Write the timer register at the offset. Any value written to DIV resets it.
func (tmr *Timer) Write(offset uint16, data uint8) {
	switch offset {
	case DIV:
		tmr.ResetDIV()
	case TIMA:
		tmr.tima = data
	case TMA:
		tmr.tma = data
	case TAC:
		// changing TAC can cause a falling edge in the same way as
		// resetting the counter
		before := tmr.signal()
		tmr.tac = data &^ tacUnused
		if before && !tmr.signal() {
			tmr.increment()
		}
	}
}
