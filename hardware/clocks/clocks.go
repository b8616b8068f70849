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

// Package clocks defines the constant values that define the speed of the
// main clock in the DMG console.
//
// The base clock is derived from a 4.194304MHz crystal. The CPU takes four
// base clock ticks for every machine cycle. Instruction costs elsewhere in
// the emulation are always given in machine cycles.
package clocks

import "time"

// DMG is the frequency of the base clock in Hz.
const DMG = 4194304

// TicksPerCycle is the number of base clock ticks in one machine cycle.
const TicksPerCycle = 4

// CyclesPerSecond is the number of machine cycles in one second of emulated
// time.
const CyclesPerSecond = DMG / TicksPerCycle

// TickPeriod is the length of one base clock tick. The value is rounded to the
// nearest nanosecond so it should not be used for accumulating time. Use
// DurationToTicks() for that.
const TickPeriod = time.Second / DMG

// DurationToTicks converts a duration to a whole number of base clock ticks.
// The remainder is in units of 1/DMG nanoseconds and should be passed to the
// next call to DurationToTicks() so that no time is lost. A duration that is
// not positive is zero ticks and the remainder is returned unchanged.
func DurationToTicks(d time.Duration, remainder int64) (ticks int64, newRemainder int64) {
	if d <= 0 {
		return 0, remainder
	}

	ns := int64(d)
	sec := ns / int64(time.Second)
	sub := ns % int64(time.Second)

	// sub * DMG fits comfortably in an int64 because sub is less than 1e9
	frac := sub*DMG + remainder
	ticks = sec*DMG + frac/int64(time.Second)
	newRemainder = frac % int64(time.Second)

	return ticks, newRemainder
}
