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

package cartridgeloader_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherdmg/cartridgeloader"
	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/test"
)

func writeFile(t *testing.T, pth string, data []uint8) {
	t.Helper()
	test.DemandSuccess(t, os.WriteFile(pth, data, 0o644))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	pth := filepath.Join(dir, "tetris.gb")
	writeFile(t, pth, []uint8{1, 2, 3, 4})

	cl := cartridgeloader.NewLoader(pth)
	test.ExpectFailure(t, cl.HasLoaded())
	test.ExpectEquality(t, cl.ShortName(), "tetris")

	test.DemandSuccess(t, cl.Load())
	test.ExpectSuccess(t, cl.HasLoaded())
	test.ExpectEquality(t, len(cl.Data), 4)
	test.ExpectEquality(t, cl.Hash, "12dada1fff4d4787ade3333147202c3b443e376f")

	// hash is checked when it is specified before loading
	cl = cartridgeloader.NewLoader(pth)
	cl.Hash = "0000"
	test.ExpectSuccess(t, curated.Is(cl.Load(), cartridgeloader.UnexpectedHash))
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	cl := cartridgeloader.NewLoader(filepath.Join(dir, "missing.gb"))
	test.ExpectFailure(t, cl.Load())

	pth := filepath.Join(dir, "empty.gb")
	writeFile(t, pth, nil)
	cl = cartridgeloader.NewLoader(pth)
	test.ExpectSuccess(t, curated.Is(cl.Load(), cartridgeloader.EmptyImage))

	cl = cartridgeloader.NewLoader("ftp://example.com/tetris.gb")
	test.ExpectSuccess(t, curated.Is(cl.Load(), cartridgeloader.UnsupportedScheme))
}

func TestLoadHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tetris.gb" {
			http.NotFound(w, r)
			return
		}
		w.Write([]uint8{1, 2, 3, 4})
	}))
	defer srv.Close()

	test.ExpectSuccess(t, cartridgeloader.IsURL(srv.URL+"/tetris.gb"))

	cl := cartridgeloader.NewLoader(srv.URL + "/tetris.gb")
	test.DemandSuccess(t, cl.Load())
	test.ExpectEquality(t, len(cl.Data), 4)

	cl = cartridgeloader.NewLoader(srv.URL + "/missing.gb")
	test.ExpectFailure(t, cl.Load())
}

func TestDirectory(t *testing.T) {
	dir := t.TempDir()
	roms := filepath.Join(dir, "roms")
	test.DemandSuccess(t, os.Mkdir(roms, 0o755))

	boot := filepath.Join(dir, "boot.bin")
	writeFile(t, boot, make([]uint8, 256))
	writeFile(t, filepath.Join(roms, "b.gb"), []uint8{0xbb})
	writeFile(t, filepath.Join(roms, "a.GB"), []uint8{0xaa})
	writeFile(t, filepath.Join(roms, "notes.txt"), []uint8{0x00})

	other := filepath.Join(dir, "other.gb")
	writeFile(t, other, []uint8{0xcc})

	src := cartridgeloader.NewDirectory(boot, roms)

	d, err := src.BootImage()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(d), 256)

	d, err = src.CartridgeImage("a.GB")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, d[0], uint8(0xaa))

	// paths to existing files are not looked for in the ROM directory
	d, err = src.CartridgeImage(other)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, d[0], uint8(0xcc))

	_, err = src.CartridgeImage("c.gb")
	test.ExpectFailure(t, err)

	l, err := src.List()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(l), 2)
	test.ExpectEquality(t, l[0], "a.GB")
	test.ExpectEquality(t, l[1], "b.gb")

	_, err = cartridgeloader.NewDirectory("", roms).BootImage()
	test.ExpectFailure(t, err)
}
