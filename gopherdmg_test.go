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

package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/gopherdmg/hardware"
	"github.com/jetsetilly/gopherdmg/hardware/memory/memorymap"
	"github.com/jetsetilly/gopherdmg/test"
	"github.com/jetsetilly/gopherdmg/version"
)

// prepare a working directory containing a boot image and a cartridge that
// loops forever. preferences are kept in the temporary directory
func prepare(t *testing.T, boot ...uint8) string {
	t.Helper()

	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))

	b := make([]uint8, hardware.BootSize)
	copy(b, boot)
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "boot.bin"), b, 0o600))

	loop := make([]uint8, 0x8000)
	loop[0x100] = 0x18
	loop[0x101] = 0xfe
	copy(loop[0x134:], "LOOP")
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "loop.gb"), loop, 0o600))

	return dir
}

func TestVersionMode(t *testing.T) {
	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch(context.Background(), []string{"VERSION"}, w), exitOK)
	test.ExpectSuccess(t, w.Compare(version.String()+"\n"), w.String())
}

func TestMemmapMode(t *testing.T) {
	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch(context.Background(), []string{"MEMMAP"}, w), exitOK)
	test.ExpectSuccess(t, w.Compare(memorymap.Summary()))
}

func TestListMode(t *testing.T) {
	dir := prepare(t)
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o600))
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "another.dmg"), nil, 0o600))

	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch(context.Background(), []string{"LIST", "-romdir", dir}, w), exitOK)
	test.ExpectSuccess(t, w.Compare("another.dmg\nloop.gb\n"), w.String())

	w.Clear()
	test.ExpectEquality(t, launch(context.Background(), []string{"LIST", "-romdir", filepath.Join(dir, "missing")}, w), exitMode)
}

func TestUnknownMode(t *testing.T) {
	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch(context.Background(), []string{"-nosuchflag"}, w), exitFatal)
}

func TestRun(t *testing.T) {
	dir := prepare(t)

	w := &test.CompareWriter{}
	v := launch(context.Background(), []string{"RUN", "-boot", "boot.bin", "-romdir", dir, "-duration", "100ms", "-memviz", "loop.gb"}, w)
	test.ExpectEquality(t, v, exitOK, w.String())

	dots, err := filepath.Glob(filepath.Join(dir, "memviz_LOOP_*.dot"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(dots), 1)
}

func TestRunCancelled(t *testing.T) {
	dir := prepare(t)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch(ctx, []string{"RUN", "-boot", "boot.bin", "-romdir", dir, "loop.gb"}, w), exitOK, w.String())
}

func TestRunFatal(t *testing.T) {
	// an unknown opcode at the very start of the boot image
	dir := prepare(t, 0xd3)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch(ctx, []string{"RUN", "-boot", "boot.bin", "-romdir", dir, "loop.gb"}, w), exitFatal)
	test.ExpectSuccess(t, strings.Contains(w.String(), "unknown opcode"), w.String())
}

func TestRunArguments(t *testing.T) {
	dir := prepare(t)

	w := &test.CompareWriter{}
	test.ExpectEquality(t, launch(context.Background(), []string{"RUN", "-boot", "boot.bin", "-romdir", dir}, w), exitFatal)

	w.Clear()
	test.ExpectEquality(t, launch(context.Background(), []string{"RUN", "-boot", "missing.bin", "-romdir", dir, "loop.gb"}, w), exitFatal)

	w.Clear()
	test.ExpectEquality(t, launch(context.Background(), []string{"RUN", "-boot", "boot.bin", "-romdir", dir, "missing.gb"}, w), exitFatal)

	// a preference value that fails the quantum check
	w.Clear()
	test.ExpectEquality(t, launch(context.Background(), []string{"RUN", "-boot", "boot.bin", "-romdir", dir, "-prefs", "dmg.quantum::0", "loop.gb"}, w), exitFatal)
}
