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

package tcellterm_test

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/jetsetilly/pcconsole/curated"
	"github.com/jetsetilly/pcconsole/frontend"
	"github.com/jetsetilly/pcconsole/frontend/tcellterm"
	"github.com/jetsetilly/pcconsole/hardware"
	"github.com/jetsetilly/pcconsole/hardware/pc"
	"github.com/jetsetilly/pcconsole/session"
	"github.com/jetsetilly/pcconsole/test"
)

type result struct {
	reason pc.HaltReason
	err    error
}

func start(t *testing.T) (tcell.SimulationScreen, *pc.Machine, chan result) {
	t.Helper()

	sim := tcell.NewSimulationScreen("")
	trm := tcellterm.NewTerminal(sim)
	test.DemandSuccess(t, trm.Initialise())
	t.Cleanup(trm.CleanUp)

	m := pc.NewMachine()
	m.Start(func(hw hardware.Access) {
		s, err := session.NewSession(hw, nil)
		if err != nil {
			return
		}
		s.Run()
	})

	done := make(chan result, 1)
	go func() {
		reason, err := trm.Run(m)
		done <- result{reason: reason, err: err}
	}()

	return sim, m, done
}

func inject(sim tcell.SimulationScreen, s string) {
	for _, r := range s {
		if r == '\n' {
			sim.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
		} else {
			sim.InjectKey(tcell.KeyRune, r, tcell.ModNone)
		}
	}
}

func wait(t *testing.T, done chan result) result {
	t.Helper()
	select {
	case r := <-done:
		return r
	case <-time.After(5 * time.Second):
		t.Fatalf("front end did not return")
	}
	return result{}
}

func screenRow(sim tcell.SimulationScreen, row int) string {
	cells, w, _ := sim.GetContents()
	var s strings.Builder
	for col := 0; col < w; col++ {
		c := cells[row*w+col]
		if len(c.Runes) > 0 {
			s.WriteRune(c.Runes[0])
		} else {
			s.WriteByte(' ')
		}
	}
	return strings.TrimRight(s.String(), " ")
}

func TestShutdown(t *testing.T) {
	sim, m, done := start(t)

	inject(sim, "echo Hi There\nshutdown\n")
	r := wait(t, done)
	test.ExpectSuccess(t, r.err)
	test.ExpectEquality(t, r.reason, pc.HaltPowerOff)
	test.ExpectEquality(t, m.Reason(), pc.HaltPowerOff)

	test.ExpectEquality(t, screenRow(sim, 0), "> echo Hi There")
	test.ExpectEquality(t, screenRow(sim, 1), "Hi There")
	test.ExpectEquality(t, screenRow(sim, 2), "> shutdown")

	x, y, visible := sim.GetCursor()
	test.ExpectEquality(t, visible, true)
	test.ExpectEquality(t, x, 0)
	test.ExpectEquality(t, y, 3)
}

func TestBackspace(t *testing.T) {
	sim, _, done := start(t)

	inject(sim, "echo abx")
	sim.InjectKey(tcell.KeyBackspace2, 0, tcell.ModNone)
	inject(sim, "c\nreboot\n")

	r := wait(t, done)
	test.ExpectSuccess(t, r.err)
	test.ExpectEquality(t, r.reason, pc.HaltReset)
	test.ExpectEquality(t, screenRow(sim, 1), "abc")
}

func TestQuit(t *testing.T) {
	sim, m, done := start(t)

	sim.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)
	r := wait(t, done)
	test.ExpectEquality(t, curated.Is(r.err, frontend.UserQuit), true)
	test.ExpectEquality(t, m.Reason(), pc.Running)
	m.Stop(pc.HaltStopped)
}

func TestHistory(t *testing.T) {
	sim, _, done := start(t)

	inject(sim, "echo one\n")
	sim.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	inject(sim, "\nshutdown\n")

	r := wait(t, done)
	test.ExpectSuccess(t, r.err)
	test.ExpectEquality(t, r.reason, pc.HaltPowerOff)
	test.ExpectEquality(t, screenRow(sim, 2), "> echo one")
	test.ExpectEquality(t, screenRow(sim, 3), "one")
}
