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

// Package modalflag wraps the flag package of the standard library. It adds
// program modes, each of which can have its own set of flags.
//
// Arguments are given with NewArgs() and the first layer is processed with
// Parse(). Flags must be added before Parse() is called.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("run", "summary")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// The mode selected by the first non-flag argument is returned by Mode().
// When the first argument is not a listed mode the first mode in the list is
// selected. Mode comparisons are not case sensitive and modes are always
// reported in upper case.
//
// Each mode can then start a new layer of flags with NewMode() and call
// Parse() again. Path() returns every mode selected so far, separated by a
// slash.
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		seconds := md.AddInt("seconds", 0, "run for seconds")
//		if _, err := md.Parse(); err != nil {
//			return err
//		}
//		run(*seconds, md.RemainingArgs())
//	}
//
// Help is printed to Output automatically when the -help flag is found.
package modalflag
