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

package paths_test

import (
	"regexp"
	"testing"

	"github.com/jetsetilly/gopherdmg/paths"
	"github.com/jetsetilly/gopherdmg/test"
)

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("memviz", "TETRIS")
	test.ExpectSuccess(t, regexp.MustCompile(`^memviz_TETRIS_\d{8}_\d{6}$`).MatchString(fn), fn)

	fn = paths.UniqueFilename("memviz", "  ")
	test.ExpectSuccess(t, regexp.MustCompile(`^memviz_\d{8}_\d{6}$`).MatchString(fn), fn)

	fn = paths.UniqueFilename("memviz", "SUPER MARIOLAND")
	test.ExpectSuccess(t, regexp.MustCompile(`^memviz_SUPER_MARIOLAND_\d{8}_\d{6}$`).MatchString(fn), fn)
}
