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

// Package statsview is a wrapper for the github.com/go-echarts/statsview
// package. It is only available when the statsview build tag is present.
//
//	go build -tags statsview
//
// Launch() starts a local HTTP server offering graphs of runtime statistics
// while the emulation runs. The graphs are viewable at:
//
//	localhost:12600/debug/statsview
//
// Without the build tag Available() returns false and Launch() does nothing.
package statsview
