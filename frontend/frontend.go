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

package frontend

import (
	"github.com/jetsetilly/pcconsole/curated"
	"github.com/jetsetilly/pcconsole/hardware/pc"
	"github.com/jetsetilly/pcconsole/keyboard"
)

// Sentinal errors.
const (
	UserQuit      = "frontend: user quit"
	Untypeable    = "frontend: cannot type character (%#02x)"
	KeyboardFull  = "frontend: keyboard queue full"
	NotATerminal  = "frontend: %s is not a terminal"
	FrontendError = "frontend: %v"
)

// Frontend is implemented by every front end.
type Frontend interface {
	// set up the host. for example, putting the terminal into raw mode
	Initialise() error

	// present the machine until it halts or the user quits. if the user
	// quits the error is a UserQuit error and the machine is not halted
	Run(m *pc.Machine) (pc.HaltReason, error)

	// restore the host to its original state
	CleanUp()
}

// Keyboard is the part of the keyboard controller used by Type().
type Keyboard interface {
	Press(code uint8) bool
}

// Scancodes returns the sequence of scancodes that types the character: the
// make code and the break code, wrapped in the codes for the left shift key
// when the character is shifted. keyboard.KeyUp and keyboard.KeyDown are
// typed as the extended cursor keys.
//
// Carriage return is typed as the enter key and delete as the backspace key.
func Scancodes(ch uint8) ([]uint8, error) {
	switch ch {
	case '\r':
		ch = '\n'
	case 0x7f:
		ch = '\b'
	}

	codes, ok := keyboard.Sequence(ch)
	if !ok {
		return nil, curated.Errorf(Untypeable, ch)
	}
	return codes, nil
}

// Type presses the keys that produce the character. Returns a KeyboardFull
// error if the keyboard queue filled before every scancode was pressed.
func Type(kb Keyboard, ch uint8) error {
	codes, err := Scancodes(ch)
	if err != nil {
		return err
	}
	for _, c := range codes {
		if !kb.Press(c) {
			return curated.Errorf(KeyboardFull)
		}
	}
	return nil
}

// Typist types characters into a keyboard, holding on to the scancodes that
// do not fit in the keyboard queue until Flush() is called.
type Typist struct {
	kb      Keyboard
	pending []uint8
}

// NewTypist is the preferred method of initialisation for the Typist type.
func NewTypist(kb Keyboard) *Typist {
	return &Typist{kb: kb}
}

// Type adds the scancodes for the character to the pending list and presses
// as many pending scancodes as the keyboard accepts.
func (tp *Typist) Type(ch uint8) error {
	codes, err := Scancodes(ch)
	if err != nil {
		return err
	}
	tp.pending = append(tp.pending, codes...)
	tp.Flush()
	return nil
}

// Flush presses pending scancodes until the keyboard refuses one. Returns
// true if nothing is left pending.
func (tp *Typist) Flush() bool {
	for len(tp.pending) > 0 {
		if !tp.kb.Press(tp.pending[0]) {
			return false
		}
		tp.pending = tp.pending[1:]
	}
	return true
}

// Pending returns the number of scancodes waiting to be pressed.
func (tp *Typist) Pending() int {
	return len(tp.pending)
}
