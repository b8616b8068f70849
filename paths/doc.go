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

// Package paths contains functions to prepare paths to gopherdmg resources.
//
// The ResourcePath() function prepends the supplied resource with the
// appropriate config directory. For example, the path to the preferences file:
//
//	pth, err := paths.ResourcePath("", "preferences")
//
// If a directory called ".gopherdmg" is present in the current working
// directory then that is the base path. Otherwise the base path is the
// "gopherdmg" directory inside os.UserConfigDir(). On a modern Linux system
// that would be:
//
//	/home/user/.config/gopherdmg/preferences
package paths
