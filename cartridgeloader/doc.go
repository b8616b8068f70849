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

// Package cartridgeloader is used to acquire the boot image and cartridge
// images from disk or over HTTP.
//
// The Loader type loads a single image and records its hash. The Directory
// type implements the hardware.ImageSource interface. It loads the boot image
// from a fixed path and cartridge images by name from a ROM directory.
//
//	src := cartridgeloader.NewDirectory("dmg_boot.bin", "roms")
//	dmg, err := hardware.NewDMG(prefs, src)
//
// Cartridge names that are URLs or paths to existing files are loaded as
// they are and do not need to be in the ROM directory.
package cartridgeloader
