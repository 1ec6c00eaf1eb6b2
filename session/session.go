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

package session

import (
	"github.com/google/uuid"
	"github.com/jetsetilly/pcconsole/assert"
	"github.com/jetsetilly/pcconsole/commands"
	"github.com/jetsetilly/pcconsole/display"
	"github.com/jetsetilly/pcconsole/hardware"
	"github.com/jetsetilly/pcconsole/keyboard"
	"github.com/jetsetilly/pcconsole/lineeditor"
	"github.com/jetsetilly/pcconsole/logger"
)

// Session is a running console. Everything the console needs is reached
// through the session.
type Session struct {
	ID uuid.UUID

	Display  *display.Console
	Keyboard *keyboard.Reader
	Editor   *lineeditor.Editor
	Commands *commands.Registry
	Prefs    *Preferences

	// the session is not safe to use from more than one goroutine
	owner assert.SingleGoroutine
}

// NewSession is the preferred method of initialisation for the Session type.
// If prefs is nil then DefaultPreferences() is used. The standard command
// table is used.
func NewSession(hw hardware.Access, prefs *Preferences) (*Session, error) {
	if prefs == nil {
		prefs = DefaultPreferences()
	}

	s := &Session{
		ID:       uuid.New(),
		Display:  display.NewConsole(hw),
		Keyboard: keyboard.NewReader(hw),
		Prefs:    prefs,
	}

	var err error
	s.Commands, err = commands.NewRegistry(&commands.Env{
		Display: s.Display,
		Ports:   hw,
	}, commands.Standard()...)
	if err != nil {
		return nil, err
	}

	s.Editor = lineeditor.NewEditor(s.Display, s.Commands, &prefs.Prompt)

	return s, nil
}

// Boot clears the display, prints the banner if there is one and then the
// first prompt. The goroutine that calls Boot() is the only goroutine that
// can use the session afterwards.
func (s *Session) Boot() {
	s.owner.Check()

	s.Display.Clear()
	if b := s.Prefs.Banner.String(); b != "" {
		s.Display.Print(b)
		s.Display.PutChar('\n')
	}
	s.Editor.Prompt()

	logger.Logf(logger.Allow, "session", "%s booted", s.ID)
}

// Step waits for a key and gives it to the line editor.
func (s *Session) Step() {
	s.owner.Check()
	s.Editor.Feed(s.Keyboard.Read())
}

// Run boots the session and steps forever.
func (s *Session) Run() {
	s.Boot()
	for {
		s.Step()
	}
}
