// This file is part of PCConsole.
//
// PCConsole is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// PCConsole is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with PCConsole.  If not, see <https://www.gnu.org/licenses/>.

package ansi_test

import (
	"testing"

	"github.com/jetsetilly/pcconsole/curated"
	"github.com/jetsetilly/pcconsole/frontend/ansi"
	"github.com/jetsetilly/pcconsole/test"
)

func TestColorBuild(t *testing.T) {
	s, err := ansi.ColorBuild("", "", "", false, false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[m")

	s, err = ansi.ColorBuild("red", "Blue", "bold", true, false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[91;44;1m")

	_, err = ansi.ColorBuild("mauve", "", "", false, false)
	test.ExpectEquality(t, curated.Is(err, ansi.UnknownColor), true)

	_, err = ansi.ColorBuild("", "", "blink", false, false)
	test.ExpectEquality(t, curated.Is(err, ansi.UnknownAttribute), true)
}

func TestAttribute(t *testing.T) {
	// white on black, as used by the console
	test.ExpectEquality(t, ansi.Attribute(0x0f), "\033[97;40m")

	// light grey on blue
	test.ExpectEquality(t, ansi.Attribute(0x17), "\033[37;44m")

	// VGA brown is ANSI yellow. bright background
	test.ExpectEquality(t, ansi.Attribute(0xe6), "\033[33;103m")
}

func TestMoveCursor(t *testing.T) {
	test.ExpectEquality(t, ansi.MoveCursor(0, 0), "\033[1;1H")
	test.ExpectEquality(t, ansi.MoveCursor(79, 24), "\033[25;80H")
}
