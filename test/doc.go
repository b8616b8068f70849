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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a failure with t.Errorf() and allow the test
// to continue. The Demand*() functions report with t.Fatalf() and stop the
// test immediately. Use Demand*() when the rest of the test makes no sense
// without the condition holding, for example when the machine under test
// failed to be created.
//
// ExpectSuccess() and ExpectFailure() understand bool and error values. It is
// worth describing how they handle nil because it is not obvious. The nil
// value is considered a success and consequently will cause ExpectFailure()
// to fail and ExpectSuccess() to succeed. This is how error values usually
// work (nil to indicate no error) so we need to interpret nil in this way.
//
// All functions accept optional tags, which are prepended to the failure
// message. Useful when the test is looping over a table of values.
package test
