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

package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const baseResourcePath = ".gopherdmg"

// ResourcePath returns the path to the resource file in the sub-directory.
// Either argument can be empty. Directories leading to the file are created if
// they do not exist. The file itself is not touched.
func ResourcePath(subPth string, file string) (string, error) {
	b, err := getBasePath(subPth)
	if err != nil {
		return "", fmt.Errorf("paths: %w", err)
	}
	return filepath.Join(b, file), nil
}

func getBasePath(subPth string) (string, error) {
	base := baseResourcePath

	if _, err := os.Stat(baseResourcePath); err != nil {
		cfg, err := os.UserConfigDir()
		if err == nil {
			base = filepath.Join(cfg, strings.TrimPrefix(baseResourcePath, "."))
		}
	}

	pth := filepath.Join(base, subPth)
	if err := os.MkdirAll(pth, 0o700); err != nil {
		return "", err
	}

	return pth, nil
}

// UniqueFilename returns a filename that is very likely to be unique. The
// name is made from the prepend string, the (optional) cartridge title and a
// timestamp.
func UniqueFilename(prepend string, title string) string {
	n := time.Now()
	timestamp := n.Format("20060102_150405")

	title = strings.Map(func(r rune) rune {
		if r == ' ' || r == os.PathSeparator {
			return '_'
		}
		return r
	}, strings.TrimSpace(title))

	if len(title) > 0 {
		return fmt.Sprintf("%s_%s_%s", prepend, title, timestamp)
	}
	return fmt.Sprintf("%s_%s", prepend, timestamp)
}
