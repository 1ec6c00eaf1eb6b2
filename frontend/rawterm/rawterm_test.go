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

package rawterm

import (
	"os"
	"strings"
	"testing"

	"github.com/jetsetilly/pcconsole/curated"
	"github.com/jetsetilly/pcconsole/frontend"
	"github.com/jetsetilly/pcconsole/frontend/ansi"
	"github.com/jetsetilly/pcconsole/hardware/pc"
	"github.com/jetsetilly/pcconsole/keyboard"
	"github.com/jetsetilly/pcconsole/test"
)

func collect(input string) string {
	keys := make(chan byte, len(input))
	_ = readKeys(strings.NewReader(input), keys)
	var s strings.Builder
	for b := range keys {
		s.WriteByte(b)
	}
	return s.String()
}

func TestReadKeys(t *testing.T) {
	test.ExpectEquality(t, collect("echo hi\r"), "echo hi\n")
	test.ExpectEquality(t, collect("ab\x7fc"), "ab\bc")

	// function keys and the other cursor keys are dropped
	test.ExpectEquality(t, collect("a\x1b[Db\x1b[15~c\x1bOPd\x1b[1;5A"), "abcd")

	// up and down are sent as the keys of the same name
	test.ExpectEquality(t, collect("\x1b[Ax\x1bOB"), string([]byte{keyboard.KeyUp, 'x', keyboard.KeyDown}))

	// a lone escape at the end of the input is the escape key
	test.ExpectEquality(t, collect("x\x1b"), "x\x1b")
}

func TestRender(t *testing.T) {
	cells := make([]uint16, pc.Columns*2)
	for i := range cells {
		cells[i] = 0x0f20
	}
	cells[0] = 0x0f41
	cells[1] = 0x1f42

	w := &strings.Builder{}
	render(w, cells, pc.Columns+3)
	s := w.String()

	expected := ansi.HideCursor +
		ansi.MoveCursor(0, 0) + ansi.Attribute(0x0f) + "A" + ansi.Attribute(0x1f) + "B" +
		ansi.Attribute(0x0f) + strings.Repeat(" ", pc.Columns-2) +
		ansi.MoveCursor(0, 1) + strings.Repeat(" ", pc.Columns) +
		ansi.Reset + ansi.MoveCursor(3, 1) + ansi.ShowCursor
	test.ExpectEquality(t, s, expected)
}

func TestNotATerminal(t *testing.T) {
	r, w, err := os.Pipe()
	test.DemandSuccess(t, err)
	defer r.Close()
	defer w.Close()

	trm := NewTerminal(r, w)
	err = trm.Initialise()
	test.ExpectEquality(t, curated.Is(err, frontend.NotATerminal), true)

	// clean up does nothing if the terminal was never put into raw mode
	trm.CleanUp()
}
