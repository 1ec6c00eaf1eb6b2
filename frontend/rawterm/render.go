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
	"io"
	"strings"

	"github.com/jetsetilly/pcconsole/frontend/ansi"
	"github.com/jetsetilly/pcconsole/hardware/pc"
)

// render writes the sequences that draw the cells and position the cursor.
// the colour sequence is only written when the attribute changes
func render(w io.StringWriter, cells []uint16, cursor int) {
	var s strings.Builder

	s.WriteString(ansi.HideCursor)

	attr := -1
	for row := 0; row*pc.Columns < len(cells); row++ {
		s.WriteString(ansi.MoveCursor(0, row))
		for col := 0; col < pc.Columns && row*pc.Columns+col < len(cells); col++ {
			c := cells[row*pc.Columns+col]
			if a := int(c >> 8); a != attr {
				attr = a
				s.WriteString(ansi.Attribute(uint8(a)))
			}
			ch := byte(c)
			if ch < ' ' || ch >= 0x7f {
				ch = ' '
			}
			s.WriteByte(ch)
		}
	}

	s.WriteString(ansi.Reset)
	if cursor >= 0 && cursor < len(cells) {
		s.WriteString(ansi.MoveCursor(cursor%pc.Columns, cursor/pc.Columns))
		s.WriteString(ansi.ShowCursor)
	}

	_, _ = w.WriteString(s.String())
}
