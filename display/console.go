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

package display

import (
	"github.com/jetsetilly/pcconsole/hardware"
	"github.com/jetsetilly/pcconsole/hardware/ports"
)

// Dimensions of the text buffer in characters.
const (
	Width  = 80
	Height = 25
)

// Attribute is the colour attribute used for every cell. White on black.
const Attribute = 0x0f

// Blank is the value of an empty cell.
const Blank = uint16(' ') | Attribute<<8

// Console renders text to the text buffer.
type Console struct {
	hw hardware.Access

	col int
	row int
}

// NewConsole is the preferred method of initialisation for the Console type.
// The text buffer is not cleared.
func NewConsole(hw hardware.Access) *Console {
	return &Console{hw: hw}
}

// Cursor returns the column and row of the cursor.
func (cons *Console) Cursor() (int, int) {
	return cons.col, cons.row
}

// Clear blanks every cell and moves the cursor to the top left.
func (cons *Console) Clear() {
	for i := 0; i < Width*Height; i++ {
		cons.hw.Poke(i, Blank)
	}
	cons.col = 0
	cons.row = 0
	cons.updateCursor()
}

// PutChar renders a single character at the cursor position and advances the
// cursor. The newline and backspace characters move the cursor. Other control
// characters are ignored.
//
// Backspace blanks the cell to the left of the cursor but never moves the
// cursor onto the previous row.
func (cons *Console) PutChar(c byte) {
	switch {
	case c == '\n':
		cons.col = 0
		cons.row++
	case c == '\b':
		if cons.col > 0 {
			cons.col--
			cons.hw.Poke(cons.offset(), Blank)
		}
	case c >= ' ':
		cons.hw.Poke(cons.offset(), uint16(c)|Attribute<<8)
		cons.col++
		if cons.col >= Width {
			cons.col = 0
			cons.row++
		}
	}

	if cons.row >= Height {
		cons.Scroll()
	}
	cons.updateCursor()
}

// Print renders every byte of the string.
func (cons *Console) Print(s string) {
	for i := 0; i < len(s); i++ {
		cons.PutChar(s[i])
	}
}

// Write implements the io.Writer interface. It never fails.
func (cons *Console) Write(p []byte) (int, error) {
	for _, c := range p {
		cons.PutChar(c)
	}
	return len(p), nil
}

// Scroll moves every row up by one and blanks the bottom row. The cursor is
// left on the bottom row if it was below it.
func (cons *Console) Scroll() {
	for i := 0; i < Width*(Height-1); i++ {
		cons.hw.Poke(i, cons.hw.Peek(i+Width))
	}
	for i := Width * (Height - 1); i < Width*Height; i++ {
		cons.hw.Poke(i, Blank)
	}
	if cons.row > Height-1 {
		cons.row = Height - 1
	}
}

func (cons *Console) offset() int {
	return cons.row*Width + cons.col
}

// updateCursor writes the cursor offset to the CRT controller, low byte first
func (cons *Console) updateCursor() {
	pos := uint16(cons.offset())
	cons.hw.Out(ports.CRTCIndex, ports.CursorLocationLow)
	cons.hw.Out(ports.CRTCData, uint8(pos&0xff))
	cons.hw.Out(ports.CRTCIndex, ports.CursorLocationHigh)
	cons.hw.Out(ports.CRTCData, uint8(pos>>8))
}
