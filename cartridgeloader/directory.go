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

package cartridgeloader

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/jetsetilly/gopherdmg/curated"
)

// Directory implements the hardware.ImageSource interface. The boot image is
// loaded from a fixed path and cartridges are loaded from the ROM directory.
type Directory struct {
	BootPath string
	ROMDir   string
}

// NewDirectory is the preferred method of initialisation for the Directory
// type.
func NewDirectory(bootPath string, romDir string) *Directory {
	return &Directory{
		BootPath: bootPath,
		ROMDir:   romDir,
	}
}

// BootImage implements the hardware.ImageSource interface.
func (dir *Directory) BootImage() ([]uint8, error) {
	if dir.BootPath == "" {
		return nil, curated.Errorf("cartridgeloader: no boot image specified")
	}
	cl := NewLoader(dir.BootPath)
	if err := cl.Load(); err != nil {
		return nil, err
	}
	return cl.Data, nil
}

// CartridgeImage implements the hardware.ImageSource interface. The id is
// the name of a file in the ROM directory, the path to an existing file or
// a URL.
func (dir *Directory) CartridgeImage(id string) ([]uint8, error) {
	cl := NewLoader(dir.resolve(id))
	if err := cl.Load(); err != nil {
		return nil, err
	}
	return cl.Data, nil
}

func (dir *Directory) resolve(id string) string {
	if IsURL(id) || dir.ROMDir == "" {
		return id
	}
	if _, err := os.Stat(id); err == nil {
		return id
	}
	return filepath.Join(dir.ROMDir, id)
}

// List returns the names of the cartridge files in the ROM directory, sorted
// alphabetically.
func (dir *Directory) List() ([]string, error) {
	entries, err := os.ReadDir(dir.ROMDir)
	if err != nil {
		return nil, curated.Errorf("cartridgeloader: %v", err)
	}

	var l []string
	for _, e := range entries {
		if !e.IsDir() && IsCartridgeFile(e.Name()) {
			l = append(l, e.Name())
		}
	}
	sort.Strings(l)

	return l, nil
}
