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

// Package plainterm runs the emulated machine without any interaction. The
// input is typed into the keyboard controller as quickly as the console
// accepts it. When the input is exhausted, and the console is waiting for
// more, the text on the screen is written to the output.
//
// Rows of the screen are written without trailing spaces. Blank rows at the
// bottom of the screen are not written at all.
//
// If the machine is reset the screen is written as it was at the moment of
// the reset, followed by the ResetMarker line. Input that the machine had
// not read by then is lost with the machine and the number of lost
// scancodes is logged.
package plainterm

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jetsetilly/pcconsole/curated"
	"github.com/jetsetilly/pcconsole/frontend"
	"github.com/jetsetilly/pcconsole/hardware/pc"
	"github.com/jetsetilly/pcconsole/logger"
)

// ResetMarker is written after the screen of a machine that was reset.
const ResetMarker = "--- reset ---"

// number of consecutive empty polls of the keyboard before the console is
// considered to be waiting for input
const idlePolls = 2

// Terminal implements the frontend.Frontend interface.
type Terminal struct {
	input  io.Reader
	output io.Writer
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type.
func NewTerminal(input io.Reader, output io.Writer) *Terminal {
	return &Terminal{
		input:  input,
		output: output,
	}
}

// Initialise implements the frontend.Frontend interface.
func (trm *Terminal) Initialise() error {
	return nil
}

// CleanUp implements the frontend.Frontend interface.
func (trm *Terminal) CleanUp() {
}

// Run implements the frontend.Frontend interface. Returns pc.Running if the
// input is exhausted before the machine halts.
func (trm *Terminal) Run(m *pc.Machine) (pc.HaltReason, error) {
	script, err := io.ReadAll(trm.input)
	if err != nil {
		return pc.Running, curated.Errorf(frontend.FrontendError, err)
	}

	typist := frontend.NewTypist(m.PS2)
	for _, b := range script {
		if err := typist.Type(b); err != nil {
			logger.Log(logger.Allow, "plainterm", err)
		}
	}

	ticker := time.NewTicker(time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-m.Halted():
			reason := m.Reason()
			if err := trm.dump(m); err != nil {
				return reason, err
			}
			if reason == pc.HaltReset {
				if lost := typist.Pending() + m.PS2.Pending(); lost > 0 {
					logger.Logf(logger.Allow, "plainterm", "%d scancodes lost with the reset machine", lost)
				}
				if _, err := fmt.Fprintln(trm.output, ResetMarker); err != nil {
					return reason, curated.Errorf(frontend.FrontendError, err)
				}
			}
			return reason, nil
		case <-ticker.C:
			if typist.Flush() && m.Idle(idlePolls) {
				return pc.Running, trm.dump(m)
			}
		}
	}
}

// dump writes the text of the screen to the output
func (trm *Terminal) dump(m *pc.Machine) error {
	cells := m.Text.Snapshot()

	rows := make([]string, 0, pc.Rows)
	for row := 0; row < pc.Rows; row++ {
		var s strings.Builder
		for _, c := range cells[row*pc.Columns : (row+1)*pc.Columns] {
			ch := byte(c)
			if ch < ' ' || ch >= 0x7f {
				ch = ' '
			}
			s.WriteByte(ch)
		}
		rows = append(rows, strings.TrimRight(s.String(), " "))
	}

	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}

	for _, r := range rows {
		if _, err := fmt.Fprintln(trm.output, r); err != nil {
			return curated.Errorf(frontend.FrontendError, err)
		}
	}

	return nil
}
