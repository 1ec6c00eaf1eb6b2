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

// Package tcellterm presents the emulated machine in a full screen terminal
// using tcell. The text buffer is drawn with the colours of its VGA
// attributes and the terminal cursor follows the hardware cursor.
//
// Keys are typed into the keyboard controller as they arrive. Ctrl-C quits.
package tcellterm

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/jetsetilly/pcconsole/curated"
	"github.com/jetsetilly/pcconsole/frontend"
	"github.com/jetsetilly/pcconsole/hardware/pc"
	"github.com/jetsetilly/pcconsole/keyboard"
	"github.com/jetsetilly/pcconsole/logger"
)

// RefreshRate is how often the screen is checked for changes.
const RefreshRate = 20 * time.Millisecond

// VGA palette in attribute order.
var palette = [16]tcell.Color{
	tcell.ColorBlack, tcell.ColorNavy, tcell.ColorGreen, tcell.ColorTeal,
	tcell.ColorMaroon, tcell.ColorPurple, tcell.ColorOlive, tcell.ColorSilver,
	tcell.ColorGray, tcell.ColorBlue, tcell.ColorLime, tcell.ColorAqua,
	tcell.ColorRed, tcell.ColorFuchsia, tcell.ColorYellow, tcell.ColorWhite,
}

// Terminal implements the frontend.Frontend interface.
type Terminal struct {
	screen tcell.Screen

	// what was last drawn. the screen is only redrawn when either changes
	generation uint64
	cursor     int
	drawn      bool
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type. If screen is nil then a screen for the controlling terminal is
// created during Initialise().
func NewTerminal(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Initialise implements the frontend.Frontend interface.
func (trm *Terminal) Initialise() error {
	if trm.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return curated.Errorf(frontend.FrontendError, err)
		}
		trm.screen = s
	}

	if err := trm.screen.Init(); err != nil {
		return curated.Errorf(frontend.FrontendError, err)
	}
	trm.screen.Clear()

	return nil
}

// CleanUp implements the frontend.Frontend interface.
func (trm *Terminal) CleanUp() {
	if trm.screen != nil {
		trm.screen.Fini()
	}
}

// Run implements the frontend.Frontend interface.
func (trm *Terminal) Run(m *pc.Machine) (pc.HaltReason, error) {
	events := make(chan tcell.Event)
	quit := make(chan struct{})
	defer close(quit)
	go trm.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(RefreshRate)
	defer ticker.Stop()

	typist := frontend.NewTypist(m.PS2)
	trm.drawn = false
	trm.draw(m)

	for {
		select {
		case <-m.Halted():
			trm.draw(m)
			return m.Reason(), nil

		case ev, ok := <-events:
			if !ok {
				return pc.Running, curated.Errorf(frontend.UserQuit)
			}

			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC {
					return pc.Running, curated.Errorf(frontend.UserQuit)
				}
				if ch, ok := translate(ev); ok {
					if err := typist.Type(ch); err != nil {
						logger.Log(logger.Allow, "tcell", err)
					}
				}
			case *tcell.EventResize:
				trm.screen.Sync()
				trm.drawn = false
			}

		case <-ticker.C:
			typist.Flush()
			trm.draw(m)
		}
	}
}

// translate a key event to the character typed. returns false if the key
// has no character
func translate(ev *tcell.EventKey) (uint8, bool) {
	switch ev.Key() {
	case tcell.KeyEnter:
		return '\n', true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return '\b', true
	case tcell.KeyTab:
		return '\t', true
	case tcell.KeyEscape:
		return 27, true
	case tcell.KeyUp:
		return keyboard.KeyUp, true
	case tcell.KeyDown:
		return keyboard.KeyDown, true
	case tcell.KeyRune:
		r := ev.Rune()
		if r >= ' ' && r < 0x7f {
			return uint8(r), true
		}
	}
	return 0, false
}

// draw the text buffer and cursor if either has changed since the last draw
func (trm *Terminal) draw(m *pc.Machine) {
	gen := m.Text.Generation()
	cursor := m.CRTC.Cursor()
	if trm.drawn && gen == trm.generation && cursor == trm.cursor {
		return
	}
	trm.drawn = true
	trm.generation = gen
	trm.cursor = cursor

	cells := m.Text.Snapshot()
	for i, c := range cells {
		ch := rune(c & 0xff)
		if ch < ' ' || ch >= 0x7f {
			ch = ' '
		}
		attr := uint8(c >> 8)
		style := tcell.StyleDefault.
			Foreground(palette[attr&0x0f]).
			Background(palette[attr>>4&0x07])
		trm.screen.SetContent(i%pc.Columns, i/pc.Columns, ch, nil, style)
	}

	if cursor >= 0 && cursor < pc.Columns*pc.Rows {
		trm.screen.ShowCursor(cursor%pc.Columns, cursor/pc.Columns)
	} else {
		trm.screen.HideCursor()
	}

	trm.screen.Show()
}
