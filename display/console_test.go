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

package display_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/pcconsole/display"
	"github.com/jetsetilly/pcconsole/hardware/hwtest"
	"github.com/jetsetilly/pcconsole/hardware/ports"
	"github.com/jetsetilly/pcconsole/test"
)

func expectCursor(t *testing.T, cons *display.Console, col int, row int) {
	t.Helper()
	c, r := cons.Cursor()
	test.ExpectEquality(t, c, col, "column")
	test.ExpectEquality(t, r, row, "row")
}

func blankRow() string {
	return strings.Repeat(" ", display.Width)
}

func TestClear(t *testing.T) {
	hw := hwtest.NewRecorder(t)
	cons := display.NewConsole(hw)

	cons.Print("hello\nworld")
	cons.Clear()
	expectCursor(t, cons, 0, 0)

	for row := 0; row < display.Height; row++ {
		for col := 0; col < display.Width; col++ {
			if !test.ExpectEquality(t, hw.Cell(col, row), display.Blank, col, row) {
				return
			}
		}
	}
}

func TestPrint(t *testing.T) {
	hw := hwtest.NewRecorder(t)
	cons := display.NewConsole(hw)
	cons.Clear()

	cons.Print("hello\nworld")
	expectCursor(t, cons, 5, 1)
	test.ExpectEquality(t, hw.Cell(0, 0), uint16('h')|display.Attribute<<8)
	test.ExpectEquality(t, strings.TrimRight(hw.Row(0), " "), "hello")
	test.ExpectEquality(t, strings.TrimRight(hw.Row(1), " "), "world")
}

func TestControlCharacters(t *testing.T) {
	hw := hwtest.NewRecorder(t)
	cons := display.NewConsole(hw)
	cons.Clear()

	cons.Print("a\tb\x00c\x1b")
	expectCursor(t, cons, 3, 0)
	test.ExpectEquality(t, strings.TrimRight(hw.Row(0), " "), "abc")
}

func TestWrap(t *testing.T) {
	hw := hwtest.NewRecorder(t)
	cons := display.NewConsole(hw)
	cons.Clear()

	cons.Print(strings.Repeat("x", display.Width))
	expectCursor(t, cons, 0, 1)
	cons.PutChar('y')
	expectCursor(t, cons, 1, 1)
	test.ExpectEquality(t, strings.TrimRight(hw.Row(1), " "), "y")
}

func TestBackspace(t *testing.T) {
	hw := hwtest.NewRecorder(t)
	cons := display.NewConsole(hw)
	cons.Clear()

	cons.Print("ab\b")
	expectCursor(t, cons, 1, 0)
	test.ExpectEquality(t, hw.Cell(1, 0), display.Blank)
	test.ExpectEquality(t, strings.TrimRight(hw.Row(0), " "), "a")

	// backspace at the start of a row does not move to the previous row
	cons.Print("\n\b")
	expectCursor(t, cons, 0, 1)
	test.ExpectEquality(t, strings.TrimRight(hw.Row(0), " "), "a")
}

func TestScroll(t *testing.T) {
	hw := hwtest.NewRecorder(t)
	cons := display.NewConsole(hw)
	cons.Clear()

	// fill the screen and one more character. the screen scrolls exactly
	// once and the cursor stays on the bottom row
	const n = display.Width*display.Height + 1
	var s strings.Builder
	for i := 0; i < n; i++ {
		s.WriteByte(byte('A' + (i/display.Width)%26))
	}
	cons.Print(s.String())

	expectCursor(t, cons, 1, display.Height-1)
	test.ExpectEquality(t, hw.Row(0), strings.Repeat("B", display.Width))
	test.ExpectEquality(t, hw.Row(display.Height-2), strings.Repeat("Y", display.Width))
	test.ExpectEquality(t, hw.Row(display.Height-1), "Z"+blankRow()[1:])
}

func TestNewlineOnBottomRow(t *testing.T) {
	hw := hwtest.NewRecorder(t)
	cons := display.NewConsole(hw)
	cons.Clear()

	cons.Print("top")
	for i := 0; i < display.Height-1; i++ {
		cons.PutChar('\n')
	}
	expectCursor(t, cons, 0, display.Height-1)
	test.ExpectEquality(t, strings.TrimRight(hw.Row(0), " "), "top")

	cons.PutChar('\n')
	expectCursor(t, cons, 0, display.Height-1)
	test.ExpectEquality(t, hw.Row(0), blankRow())
}

func TestHardwareCursor(t *testing.T) {
	hw := hwtest.NewRecorder(t)
	cons := display.NewConsole(hw)
	cons.Clear()
	hw.Reset()

	cons.Print("\n\n")
	hw.Reset()
	cons.PutChar('A')

	// offset is 2*80+1 = 161. low byte first
	expected := []hwtest.Write{
		{Port: ports.CRTCIndex, Value: uint16(ports.CursorLocationLow)},
		{Port: ports.CRTCData, Value: 0xa1},
		{Port: ports.CRTCIndex, Value: uint16(ports.CursorLocationHigh)},
		{Port: ports.CRTCData, Value: 0x00},
	}

	w := hw.Writes()
	test.DemandEquality(t, len(w), len(expected))
	for i := range expected {
		test.ExpectEquality(t, w[i], expected[i], i)
	}

	// bottom right of the screen needs the high byte
	cons.Clear()
	cons.Print(strings.Repeat("x", display.Width*(display.Height-1)+display.Width-1))
	hw.Reset()
	cons.PutChar('\b')
	w = hw.WritesTo(ports.CRTCData)
	test.DemandEquality(t, len(w), 2)
	test.ExpectEquality(t, w[0].Value, uint16((display.Width*display.Height-2)&0xff))
	test.ExpectEquality(t, w[1].Value, uint16((display.Width*display.Height-2)>>8))
}

func TestWriter(t *testing.T) {
	hw := hwtest.NewRecorder(t)
	cons := display.NewConsole(hw)
	cons.Clear()

	n, err := cons.Write([]byte("io.Writer"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 9)
	test.ExpectEquality(t, strings.TrimRight(hw.Row(0), " "), "io.Writer")
}
