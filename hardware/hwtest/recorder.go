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

// Package hwtest provides a recording implementation of hardware.Access for
// use in tests.
//
// The Recorder keeps every port write in order, serves scancodes from a
// queue in place of a keyboard and has its own text buffer. Tests check what
// the code under test did by looking at the writes and the text buffer.
package hwtest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jetsetilly/pcconsole/hardware/ports"
	"github.com/jetsetilly/pcconsole/keyboard"
)

// Dimensions of the text buffer.
const (
	Columns = 80
	Rows    = 25
)

// MaxEmptyPolls is the number of consecutive polls of the keyboard status
// port, with nothing queued, after which the test fails. Code that waits for
// a key that will never come would otherwise hang the test.
const MaxEmptyPolls = 1000

// Write is a single recorded port write.
type Write struct {
	Port  uint16
	Value uint16
	Word  bool
}

func (w Write) String() string {
	if w.Word {
		return fmt.Sprintf("outw %#x, %#x", w.Port, w.Value)
	}
	return fmt.Sprintf("out %#x, 0x%02x", w.Port, w.Value)
}

// Recorder implements the hardware.Access interface.
type Recorder struct {
	tb testing.TB

	writes []Write
	queue  []uint8
	cells  [Columns * Rows]uint16

	emptyPolls int
}

// NewRecorder is the preferred method of initialisation for the Recorder
// type.
func NewRecorder(tb testing.TB) *Recorder {
	return &Recorder{tb: tb}
}

// In implements the hardware.Ports interface.
func (r *Recorder) In(port uint16) uint8 {
	switch port {
	case ports.KeyboardStatus:
		if len(r.queue) > 0 {
			r.emptyPolls = 0
			return ports.StatusOutputFull
		}
		r.emptyPolls++
		if r.emptyPolls > MaxEmptyPolls {
			r.tb.Fatalf("hwtest: keyboard polled %d times with nothing queued", r.emptyPolls)
		}
		return 0x00
	case ports.KeyboardData:
		if len(r.queue) == 0 {
			r.tb.Errorf("hwtest: keyboard data read with nothing queued")
			return 0x00
		}
		c := r.queue[0]
		r.queue = r.queue[1:]
		return c
	}
	return 0xff
}

// Out implements the hardware.Ports interface.
func (r *Recorder) Out(port uint16, data uint8) {
	r.writes = append(r.writes, Write{Port: port, Value: uint16(data)})
}

// OutW implements the hardware.Ports interface.
func (r *Recorder) OutW(port uint16, data uint16) {
	r.writes = append(r.writes, Write{Port: port, Value: data, Word: true})
}

// Peek implements the hardware.TextBuffer interface.
func (r *Recorder) Peek(idx int) uint16 {
	if idx < 0 || idx >= len(r.cells) {
		r.tb.Fatalf("hwtest: peek outside text buffer (%d)", idx)
	}
	return r.cells[idx]
}

// Poke implements the hardware.TextBuffer interface.
func (r *Recorder) Poke(idx int, v uint16) {
	if idx < 0 || idx >= len(r.cells) {
		r.tb.Fatalf("hwtest: poke outside text buffer (%d)", idx)
	}
	r.cells[idx] = v
}

// Writes returns every port write since the last call to Reset().
func (r *Recorder) Writes() []Write {
	return r.writes
}

// WritesTo returns the writes made to the port.
func (r *Recorder) WritesTo(port uint16) []Write {
	var w []Write
	for _, x := range r.writes {
		if x.Port == port {
			w = append(w, x)
		}
	}
	return w
}

// Queue adds scancodes to the keyboard queue.
func (r *Recorder) Queue(codes ...uint8) {
	r.queue = append(r.queue, codes...)
}

// Type queues the make and break codes for every character of the string.
// Shifted characters are wrapped in the codes for the left shift key and
// keyboard.KeyUp and keyboard.KeyDown are queued as extended keys. The test
// fails if a character cannot be typed.
func (r *Recorder) Type(s string) {
	for i := 0; i < len(s); i++ {
		codes, ok := keyboard.Sequence(s[i])
		if !ok {
			r.tb.Fatalf("hwtest: cannot type character %q", s[i])
		}
		r.queue = append(r.queue, codes...)
	}
}

// Pending returns the number of queued scancodes that have not been read.
func (r *Recorder) Pending() int {
	return len(r.queue)
}

// Cell returns the cell at the column and row.
func (r *Recorder) Cell(col, row int) uint16 {
	return r.Peek(row*Columns + col)
}

// Row returns the characters of the row as a string. Trailing spaces are
// kept.
func (r *Recorder) Row(row int) string {
	var s strings.Builder
	for col := 0; col < Columns; col++ {
		s.WriteByte(byte(r.Cell(col, row)))
	}
	return s.String()
}

// Reset forgets the recorded writes and the keyboard queue. The text buffer
// is unchanged.
func (r *Recorder) Reset() {
	r.writes = r.writes[:0]
	r.queue = r.queue[:0]
	r.emptyPolls = 0
}
