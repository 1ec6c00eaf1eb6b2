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

package pc

import (
	"sync"
	"time"

	"github.com/jetsetilly/pcconsole/hardware/ports"
	"github.com/jetsetilly/pcconsole/logger"
)

// QueueSize is the number of scancodes the keyboard controller can hold.
const QueueSize = 16

// PollInterval is the longest time a read of the status register waits for
// a key when there is nothing to read. The guest polls the status register
// in a tight loop and without the wait it would take all of a host CPU.
const PollInterval = 10 * time.Millisecond

// PS2 is the keyboard controller. Scancodes are queued by the front end with
// Press() and taken by the guest through the data port.
type PS2 struct {
	m *Machine

	crit  sync.Mutex
	queue []uint8

	// the last byte read from the data port. reading the data port with an
	// empty queue returns the same byte again
	last uint8

	// number of consecutive status reads that found the queue empty
	empty int

	// signalled by Press()
	ready chan bool
}

func newPS2(m *Machine) *PS2 {
	return &PS2{
		m:     m,
		queue: make([]uint8, 0, QueueSize),
		ready: make(chan bool, 1),
	}
}

// Press queues a scancode. Returns false if the queue is full, in which case
// the scancode is lost.
func (ps *PS2) Press(code uint8) bool {
	ps.crit.Lock()
	defer ps.crit.Unlock()

	if len(ps.queue) >= QueueSize {
		logger.Logf(logger.Allow, "ps2", "queue full: dropped scancode %#02x", code)
		return false
	}

	ps.queue = append(ps.queue, code)
	ps.empty = 0

	select {
	case ps.ready <- true:
	default:
	}

	return true
}

// Pending returns the number of scancodes waiting to be read.
func (ps *PS2) Pending() int {
	ps.crit.Lock()
	defer ps.crit.Unlock()
	return len(ps.queue)
}

func (ps *PS2) idle(n int) bool {
	ps.crit.Lock()
	defer ps.crit.Unlock()
	return len(ps.queue) == 0 && ps.empty >= n
}

func (ps *PS2) status() uint8 {
	ps.crit.Lock()
	defer ps.crit.Unlock()
	if len(ps.queue) > 0 {
		ps.empty = 0
		return ports.StatusOutputFull
	}
	return 0x00
}

func (ps *PS2) read(port uint16) uint8 {
	if port == ports.KeyboardStatus {
		if s := ps.status(); s&ports.StatusOutputFull == ports.StatusOutputFull {
			return s
		}

		t := time.NewTimer(PollInterval)
		defer t.Stop()

		select {
		case <-ps.ready:
		case <-t.C:
		case <-ps.m.halted:
		}

		s := ps.status()
		if s&ports.StatusOutputFull != ports.StatusOutputFull {
			ps.crit.Lock()
			ps.empty++
			ps.crit.Unlock()
		}
		return s
	}

	ps.crit.Lock()
	defer ps.crit.Unlock()

	if len(ps.queue) > 0 {
		ps.last = ps.queue[0]
		ps.queue = ps.queue[1:]
	}
	return ps.last
}

func (ps *PS2) write(port uint16, data uint16, word bool) {
	if port == ports.KeyboardCommand && !word && uint8(data) == ports.CommandReset {
		ps.m.halt(HaltReset)
	}
	logger.Logf(logger.Allow, "ps2", "ignored write to %#04x (%#02x)", port, data)
}
