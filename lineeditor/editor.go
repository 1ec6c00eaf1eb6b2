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

package lineeditor

import (
	"fmt"

	"github.com/jetsetilly/pcconsole/keyboard"
	"github.com/jetsetilly/pcconsole/logger"
)

// Capacity is the maximum number of characters in a line.
const Capacity = 255

// DefaultPrompt is used when no prompt is specified.
const DefaultPrompt = "> "

// Output is where typed characters are echoed.
type Output interface {
	PutChar(c byte)
	Print(s string)
}

// Dispatcher is given every completed line.
type Dispatcher interface {
	Dispatch(line string) error
}

// Editor accumulates characters into a line.
type Editor struct {
	output     Output
	dispatcher Dispatcher
	prompt     fmt.Stringer

	// one more than the capacity leaves room for the terminator
	buffer [Capacity + 1]byte
	length int

	history history
}

type staticPrompt string

func (p staticPrompt) String() string {
	return string(p)
}

// NewEditor is the preferred method of initialisation for the Editor type.
// The prompt is read every time it is printed, so it can change between
// lines. If prompt is nil then DefaultPrompt is used.
func NewEditor(output Output, dispatcher Dispatcher, prompt fmt.Stringer) *Editor {
	if prompt == nil {
		prompt = staticPrompt(DefaultPrompt)
	}
	return &Editor{
		output:     output,
		dispatcher: dispatcher,
		prompt:     prompt,
	}
}

// Prompt prints the prompt.
func (ed *Editor) Prompt() {
	ed.output.Print(ed.prompt.String())
}

// Line returns the characters collected so far.
func (ed *Editor) Line() string {
	return string(ed.buffer[:ed.length])
}

// Len returns the number of characters collected so far.
func (ed *Editor) Len() int {
	return ed.length
}

// History returns the remembered lines, the most recent first.
func (ed *Editor) History() []string {
	h := make([]string, ed.history.count)
	for i := range h {
		h[i] = ed.history.get(i)
	}
	return h
}

// Feed adds a character to the line.
//
// A newline completes the line. It is echoed, the line is dispatched, the
// buffer is emptied and the prompt printed. Backspace removes the last
// character if there is one. A zero character or a character that would
// take the line over capacity is dropped.
//
// keyboard.KeyUp and keyboard.KeyDown replace the line with an older or a
// newer line from the history. The current line is erased from the display
// with backspaces and the recalled line echoed in its place.
func (ed *Editor) Feed(ch byte) {
	switch {
	case ch == '\n':
		ed.output.PutChar('\n')
		ed.buffer[ed.length] = 0
		line := string(ed.buffer[:ed.length])
		ed.length = 0
		ed.history.add(line)

		if err := ed.dispatcher.Dispatch(line); err != nil {
			logger.Log(logger.Allow, "lineeditor", err)
		}

		ed.Prompt()

	case ch == '\b':
		if ed.length > 0 {
			ed.length--
			ed.output.PutChar('\b')
		}

	case ch == keyboard.KeyUp:
		if line, ok := ed.history.older(); ok {
			ed.replace(line)
		}

	case ch == keyboard.KeyDown:
		if line, ok := ed.history.newer(); ok {
			ed.replace(line)
		}

	case ch != 0 && ed.length < Capacity:
		ed.history.browsing = false
		ed.buffer[ed.length] = ch
		ed.length++
		ed.output.PutChar(ch)
	}
}

// replace the line with a line from the history
func (ed *Editor) replace(line string) {
	for ; ed.length > 0; ed.length-- {
		ed.output.PutChar('\b')
	}
	ed.length = copy(ed.buffer[:Capacity], line)
	ed.output.Print(line[:ed.length])
}
