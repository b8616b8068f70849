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

package logger_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherdmg/logger"
	"github.com/jetsetilly/gopherdmg/test"
)

func TestWriteAndTail(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	test.ExpectFailure(t, log.Write(w))
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "cpu", "reset")
	log.Log(logger.Allow, "cartridge", "attached")
	test.ExpectSuccess(t, log.Write(w))
	test.ExpectEquality(t, w.String(), "cpu: reset\ncartridge: attached\n")

	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "cartridge: attached\n")

	// more entries than exist is fine
	w.Reset()
	log.Tail(w, 50)
	test.ExpectEquality(t, w.String(), "cpu: reset\ncartridge: attached\n")

	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")

	log.Clear()
	w.Reset()
	test.ExpectFailure(t, log.Write(w))
}

func TestRepeatedEntries(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	for range 3 {
		log.Log(logger.Allow, "memory", "write to rom")
	}
	log.Log(logger.Allow, "memory", "write to vram")

	log.Write(w)
	test.ExpectEquality(t, w.String(), "memory: write to rom (repeat x3)\nmemory: write to vram\n")
}

func TestMaximumEntries(t *testing.T) {
	log := logger.NewLogger(3)
	w := &strings.Builder{}

	for i := range 5 {
		log.Logf(logger.Allow, "tag", "entry %d", i)
	}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: entry 2\ntag: entry 3\ntag: entry 4\n")
}

type stringer struct{}

func (stringer) String() string {
	return "stringer"
}

func TestDetailTypes(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", errors.New("test error"))
	log.Log(logger.Allow, "tag", stringer{})
	log.Log(logger.Allow, "tag", 100)
	log.Logf(logger.Allow, "tag", "wrapped: %v", fmt.Errorf("inner"))
	log.Log(logger.Allow, "tag", "multi\nline")

	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: test error\ntag: stringer\ntag: 100\ntag: wrapped: inner\ntag: multiline\n")
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	allowed := false
	perm := logger.PermissionFunc(func() bool { return allowed })

	log.Log(perm, "trace", "nop")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	allowed = true
	log.Log(perm, "trace", "nop")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "trace: nop\n")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	log.SetEcho(w)
	log.Log(logger.Allow, "tag", "echoed")
	test.ExpectEquality(t, w.String(), "tag: echoed\n")

	log.SetEcho(nil)
	log.Log(logger.Allow, "tag", "not echoed")
	test.ExpectEquality(t, w.String(), "tag: echoed\n")
}

func TestColorizer(t *testing.T) {
	w := &strings.Builder{}
	c := logger.NewColorizer(w)

	n, err := c.Write([]byte("tag: detail\n"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, len("tag: detail\n"))
	test.ExpectEquality(t, w.String(), "\033[2;36mtag\033[0m: detail\n")

	w.Reset()
	c.Write([]byte("dmg: error: halted\n"))
	test.ExpectEquality(t, w.String(), "\033[2;36mdmg\033[0m: \033[31merror: halted\033[0m\n")

	w.Reset()
	c.Write([]byte("no tag\n"))
	test.ExpectEquality(t, w.String(), "no tag\n")
}
