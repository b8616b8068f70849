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
	"time"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/hardware/clocks"
	"github.com/jetsetilly/gopherdmg/logger"
)

// the number of machine cycles in a quantum when there are no preferences.
const defaultQuantum = 1024

// Advance the emulation by the elapsed wall-clock time. Returns the number of
// base clock ticks the elapsed time was converted to.
//
// Time that does not amount to a whole tick, and ticks that do not amount to
// a whole machine cycle, are carried over to the next call. Many small calls
// therefore run the same number of cycles as one large call for the same
// total duration. A duration that is not positive runs nothing.
func (dmg *DMG) Advance(elapsed time.Duration) (int64, error) {
	if dmg.halted != nil {
		return 0, dmg.halted
	}
	if elapsed <= 0 {
		return 0, nil
	}

	var ticks int64
	ticks, dmg.remainder = clocks.DurationToTicks(elapsed, dmg.remainder)

	dmg.ticks += ticks
	cycles := dmg.ticks / clocks.TicksPerCycle
	dmg.ticks %= clocks.TicksPerCycle

	return ticks, dmg.run(cycles)
}

// run the number of machine cycles in quanta.
func (dmg *DMG) run(cycles int64) error {
	for cycles > 0 {
		q := min(cycles, dmg.quantum())
		for range q {
			if err := dmg.cycle(); err != nil {
				return err
			}
		}
		cycles -= q
	}
	return nil
}

// quantum returns the number of machine cycles to run before returning to
// the outer loop of run(). the preference can change at any time.
func (dmg *DMG) quantum() int64 {
	if dmg.Prefs == nil {
		return defaultQuantum
	}
	return int64(dmg.Prefs.Quantum.Get().(int))
}

// cycle advances every part of the hardware by one machine cycle.
func (dmg *DMG) cycle() error {
	if err := dmg.CPU.Cycle(); err != nil {
		return dmg.halt(err)
	}
	dmg.Timer.Step()
	dmg.Cycles++
	return nil
}

func (dmg *DMG) halt(err error) error {
	dmg.halted = curated.Errorf(Halted, err)
	logger.Log(logger.Allow, "dmg", dmg.halted)
	return dmg.halted
}

// Step the emulation by one CPU instruction. Returns the number of machine
// cycles that were run.
//
// If the previous call to Advance() ended part way through an instruction,
// the remaining cycles of that instruction are run before the next
// instruction is executed. The remaining cycles are included in the returned
// value.
func (dmg *DMG) Step() (int, error) {
	if dmg.halted != nil {
		return 0, dmg.halted
	}

	var n int

	for !dmg.CPU.AtBoundary() {
		if err := dmg.cycle(); err != nil {
			return n, err
		}
		n++
	}

	for {
		if err := dmg.cycle(); err != nil {
			return n, err
		}
		n++
		if dmg.CPU.AtBoundary() {
			break
		}
	}

	return n, nil
}
