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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with the Errorf() function, which takes a
// formatting pattern and the placeholder values. The pattern is remembered
// and is what distinguishes one curated error from another:
//
//	err := curated.Errorf("cartridge: unsupported controller (%#02x)", kind)
//
//	if curated.Is(err, "cartridge: unsupported controller (%#02x)") {
//		...
//	}
//
// Packages that return curated errors export the patterns they use as const
// strings. Callers should compare against those rather than repeating the
// pattern text.
//
// The Has() function is similar to Is() but checks every error in the chain.
// A chain is created by using a curated error as one of the values of
// another curated error:
//
//	f := curated.Errorf("dmg: %v", err)
//	curated.Has(f, cartridge.UnsupportedController) // true
//	curated.Is(f, cartridge.UnsupportedController)  // false
//
// Curated errors also implement the multiple-error form of Unwrap() so that
// errors.Is() from the standard library sees any non-curated error in the
// values. This is how sentinel errors such as cpubus.AddressError survive
// being wrapped.
//
// The Error() function normalises the message so that duplicate adjacent
// parts, separated by ": ", are removed. Wrapping a "dmg: " error in another
// "dmg: " error prints "dmg: " only once.
package curated
