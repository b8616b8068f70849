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

package logger

import (
	"bytes"
	"io"
)

// CSI sequences used by the Colorizer.
const (
	tagPen    = "\033[2;36m"
	errorPen  = "\033[31m"
	normalPen = "\033[0m"
)

// Colorizer applies basic coloring rules to logging output. The tag of each
// entry is dimmed and entries that mention an error are printed in red. It
// should only be used when the output is a real terminal.
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method if initialisation for the Colorizer type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (n int, err error) {
	var b bytes.Buffer

	for _, l := range bytes.SplitAfter(p, []byte("\n")) {
		if len(l) == 0 {
			continue
		}

		tag, detail, ok := bytes.Cut(l, []byte(": "))
		if !ok {
			b.Write(l)
			continue
		}

		b.WriteString(tagPen)
		b.Write(tag)
		b.WriteString(normalPen)
		b.WriteString(": ")

		if bytes.Contains(detail, []byte("error")) || bytes.Contains(detail, []byte("unknown opcode")) {
			b.WriteString(errorPen)
			b.Write(bytes.TrimSuffix(detail, []byte("\n")))
			b.WriteString(normalPen)
			if bytes.HasSuffix(detail, []byte("\n")) {
				b.WriteString("\n")
			}
		} else {
			b.Write(detail)
		}
	}

	_, err = c.out.Write(b.Bytes())
	if err != nil {
		return 0, err
	}

	// the caller is only interested in whether all of p was consumed
	return len(p), nil
}
