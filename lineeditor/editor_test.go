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

package lineeditor_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/pcconsole/curated"
	"github.com/jetsetilly/pcconsole/display"
	"github.com/jetsetilly/pcconsole/hardware/hwtest"
	"github.com/jetsetilly/pcconsole/keyboard"
	"github.com/jetsetilly/pcconsole/lineeditor"
	"github.com/jetsetilly/pcconsole/logger"
	"github.com/jetsetilly/pcconsole/prefs"
	"github.com/jetsetilly/pcconsole/test"
)

// echo records everything written to it
type echo struct {
	test.CompareWriter
}

func (e *echo) PutChar(c byte) {
	e.Write([]byte{c})
}

func (e *echo) Print(s string) {
	e.Write([]byte(s))
}

// dispatcher records every dispatched line
type dispatcher struct {
	lines []string
	err   error
}

func (d *dispatcher) Dispatch(line string) error {
	d.lines = append(d.lines, line)
	return d.err
}

func feed(ed *lineeditor.Editor, s string) {
	for i := 0; i < len(s); i++ {
		ed.Feed(s[i])
	}
}

func TestCompleteLine(t *testing.T) {
	out := &echo{}
	disp := &dispatcher{}
	ed := lineeditor.NewEditor(out, disp, nil)

	ed.Prompt()
	feed(ed, "echo hello\n")

	test.DemandEquality(t, len(disp.lines), 1)
	test.ExpectEquality(t, disp.lines[0], "echo hello")
	test.ExpectEquality(t, ed.Len(), 0)
	test.ExpectEquality(t, out.String(), "> echo hello\n> ")
}

func TestPrintableSequences(t *testing.T) {
	disp := &dispatcher{}
	ed := lineeditor.NewEditor(&echo{}, disp, nil)

	var lines []string
	for n := 0; n < lineeditor.Capacity; n += 17 {
		var s strings.Builder
		for i := 0; i < n; i++ {
			s.WriteByte(byte(' ' + (i*7+n)%95))
		}
		lines = append(lines, s.String())
		feed(ed, s.String()+"\n")
	}

	test.DemandEquality(t, len(disp.lines), len(lines))
	for i := range lines {
		test.ExpectEquality(t, disp.lines[i], lines[i], i)
	}
}

func TestBackspace(t *testing.T) {
	out := &echo{}
	disp := &dispatcher{}
	ed := lineeditor.NewEditor(out, disp, nil)

	// backspace on an empty line is not echoed and changes nothing
	ed.Feed('\b')
	test.ExpectEquality(t, ed.Len(), 0)
	test.ExpectEquality(t, out.String(), "")

	feed(ed, "ab\bc")
	test.ExpectEquality(t, ed.Line(), "ac")
	test.ExpectEquality(t, out.String(), "ab\bc")

	feed(ed, "\b\b\b\bx\n")
	test.DemandEquality(t, len(disp.lines), 1)
	test.ExpectEquality(t, disp.lines[0], "x")
}

func TestZeroDropped(t *testing.T) {
	out := &echo{}
	ed := lineeditor.NewEditor(out, &dispatcher{}, nil)

	feed(ed, "a\x00b")
	test.ExpectEquality(t, ed.Line(), "ab")
	test.ExpectEquality(t, out.String(), "ab")
}

func TestTruncation(t *testing.T) {
	out := &echo{}
	disp := &dispatcher{}
	ed := lineeditor.NewEditor(out, disp, nil)

	long := strings.Repeat("x", lineeditor.Capacity+10)
	feed(ed, long)
	test.ExpectEquality(t, ed.Len(), lineeditor.Capacity)

	// the dropped characters are not echoed
	test.ExpectEquality(t, len(out.String()), lineeditor.Capacity)

	// backspace makes room for one more
	feed(ed, "\by\n")
	test.DemandEquality(t, len(disp.lines), 1)
	test.ExpectEquality(t, disp.lines[0], strings.Repeat("x", lineeditor.Capacity-1)+"y")
}

func TestPromptPreference(t *testing.T) {
	out := &echo{}
	var prompt prefs.String
	test.DemandSuccess(t, prompt.Set("$ "))

	ed := lineeditor.NewEditor(out, &dispatcher{}, &prompt)
	ed.Prompt()
	test.DemandSuccess(t, prompt.Set("# "))
	ed.Feed('\n')

	test.ExpectEquality(t, out.String(), "$ \n# ")
}

func TestDispatchErrorLogged(t *testing.T) {
	logger.Clear()
	defer logger.Clear()

	disp := &dispatcher{err: curated.Errorf("bad line: %s", "nonsense")}
	ed := lineeditor.NewEditor(&echo{}, disp, nil)
	feed(ed, "nonsense\n")

	w := &test.CompareWriter{}
	logger.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "lineeditor: bad line: nonsense\n")
}

func TestWithDisplay(t *testing.T) {
	hw := hwtest.NewRecorder(t)
	cons := display.NewConsole(hw)
	cons.Clear()

	disp := &dispatcher{}
	ed := lineeditor.NewEditor(cons, disp, nil)
	ed.Prompt()
	feed(ed, "helo\b\bllo")

	test.ExpectEquality(t, strings.TrimRight(hw.Row(0), " "), "> hello")
	col, _ := cons.Cursor()
	test.ExpectEquality(t, col, 7)
}

func TestHistoryRecall(t *testing.T) {
	out := &echo{}
	disp := &dispatcher{}
	ed := lineeditor.NewEditor(out, disp, nil)

	// nothing to recall yet
	ed.Feed(keyboard.KeyUp)
	ed.Feed(keyboard.KeyDown)
	test.ExpectEquality(t, out.String(), "")

	// empty lines are not remembered
	feed(ed, "echo one\n\necho two\n")
	test.ExpectEquality(t, strings.Join(ed.History(), ","), "echo two,echo one")

	// the current line is erased before the recalled line is echoed
	out.Clear()
	feed(ed, "ab")
	ed.Feed(keyboard.KeyUp)
	test.ExpectEquality(t, ed.Line(), "echo two")
	test.ExpectEquality(t, out.String(), "ab\b\becho two")

	ed.Feed(keyboard.KeyUp)
	test.ExpectEquality(t, ed.Line(), "echo one")

	// the oldest line stays put
	ed.Feed(keyboard.KeyUp)
	test.ExpectEquality(t, ed.Line(), "echo one")

	ed.Feed(keyboard.KeyDown)
	test.ExpectEquality(t, ed.Line(), "echo two")

	// the most recent line stays put
	ed.Feed(keyboard.KeyDown)
	test.ExpectEquality(t, ed.Line(), "echo two")

	// a recalled line can be edited before it is dispatched
	feed(ed, "\b\b\bthree\n")
	test.DemandEquality(t, len(disp.lines), 4)
	test.ExpectEquality(t, disp.lines[3], "echo three")
	test.ExpectEquality(t, strings.Join(ed.History(), ","), "echo three,echo two,echo one")
}

func TestHistoryBrowsingEnds(t *testing.T) {
	ed := lineeditor.NewEditor(&echo{}, &dispatcher{}, nil)
	feed(ed, "a\nb\nc\n")

	ed.Feed(keyboard.KeyUp)
	ed.Feed(keyboard.KeyUp)
	test.ExpectEquality(t, ed.Line(), "b")

	// typing a character ends browsing. the next up starts from the most
	// recent line again
	feed(ed, "x")
	ed.Feed(keyboard.KeyUp)
	test.ExpectEquality(t, ed.Line(), "c")

	// so does completing a line
	ed.Feed(keyboard.KeyUp)
	feed(ed, "\n")
	ed.Feed(keyboard.KeyUp)
	test.ExpectEquality(t, ed.Line(), "b")
}

func TestHistorySize(t *testing.T) {
	ed := lineeditor.NewEditor(&echo{}, &dispatcher{}, nil)
	for i := 0; i < lineeditor.HistorySize+5; i++ {
		feed(ed, string(rune('a'+i))+"\n")
	}

	h := ed.History()
	test.DemandEquality(t, len(h), lineeditor.HistorySize)
	test.ExpectEquality(t, h[0], "o")
	test.ExpectEquality(t, h[lineeditor.HistorySize-1], "f")

	for i := 0; i < lineeditor.HistorySize+5; i++ {
		ed.Feed(keyboard.KeyUp)
	}
	test.ExpectEquality(t, ed.Line(), "f")
}

func TestHistoryWithDisplay(t *testing.T) {
	hw := hwtest.NewRecorder(t)
	cons := display.NewConsole(hw)
	cons.Clear()

	ed := lineeditor.NewEditor(cons, &dispatcher{}, nil)
	ed.Prompt()
	feed(ed, "a long line\nxy")
	ed.Feed(keyboard.KeyUp)
	ed.Feed(keyboard.KeyUp)

	test.ExpectEquality(t, strings.TrimRight(hw.Row(1), " "), "> a long line")
	col, row := cons.Cursor()
	test.ExpectEquality(t, col, 13)
	test.ExpectEquality(t, row, 1)

	// a shorter line leaves no trace of the longer one
	feed(ed, "\nb\n")
	ed.Feed(keyboard.KeyUp)
	ed.Feed(keyboard.KeyUp)
	ed.Feed(keyboard.KeyDown)
	test.ExpectEquality(t, strings.TrimRight(hw.Row(3), " "), "> b")
}
