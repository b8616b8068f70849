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

// Package hardware is the base package for the DMG emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The DMG type is the root of the emulation and contains references to the
// CPU, memory and the peripheral chips. It is created with NewDMG(), which
// requires an ImageSource from which the boot image and cartridge images are
// acquired.
//
//	dmg, err := hardware.NewDMG(prefs, src)
//	if err != nil {
//		return err
//	}
//
//	err = dmg.LoadCartridge("tetris.gb")
//	if err != nil {
//		return err
//	}
//
//	dmg.Start()
//
// The emulation is then driven by wall-clock time with the Advance()
// function. The duration since the previous call is converted to a number of
// machine cycles and the emulation is run for exactly that many cycles. Time
// that does not amount to a whole machine cycle is carried over to the next
// call.
//
// Any error returned by Advance() or Step() is fatal. The DMG will return the
// same error from every subsequent call until Start() is called again.
package hardware
