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

package preferences_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherdmg/hardware/preferences"
	"github.com/jetsetilly/gopherdmg/prefs"
	"github.com/jetsetilly/gopherdmg/test"
)

func TestDefaults(t *testing.T) {
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Trace.Get().(bool), false)
	test.ExpectEquality(t, p.Quantum.Get().(int), 1024)

	// quantum must be positive
	test.ExpectFailure(t, p.Quantum.Set(0))
	test.ExpectEquality(t, p.Quantum.Get().(int), 1024)
}

func TestLoadFromFile(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")
	data := prefs.WarningBoilerPlate + "\ndmg.quantum :: 64\ndmg.trace :: true\nother.key :: 1\n"
	test.DemandSuccess(t, os.WriteFile(pth, []byte(data), 0o600))

	p, err := preferences.NewPreferencesFromFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Trace.Get().(bool), true)
	test.ExpectEquality(t, p.Quantum.Get().(int), 64)

	test.ExpectSuccess(t, p.Reset())
	test.ExpectEquality(t, p.Quantum.Get().(int), 1024)

	// saving keeps entries belonging to other parts of the program
	test.ExpectSuccess(t, p.Save())
	b, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(b), prefs.WarningBoilerPlate+"\ndmg.quantum :: 1024\ndmg.trace :: false\nother.key :: 1\n")
}
