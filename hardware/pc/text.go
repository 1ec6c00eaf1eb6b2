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
	"sync/atomic"
)

// Dimensions of the text buffer.
const (
	Columns = 80
	Rows    = 25
)

// TextMemory is the colour text buffer.
type TextMemory struct {
	crit  sync.RWMutex
	cells [Columns * Rows]uint16

	// incremented on every change to the buffer
	generation atomic.Uint64
}

func newTextMemory() *TextMemory {
	return &TextMemory{}
}

// Peek returns the cell at the index. Returns zero if the index is outside
// the buffer.
func (tm *TextMemory) Peek(idx int) uint16 {
	if idx < 0 || idx >= len(tm.cells) {
		return 0
	}
	tm.crit.RLock()
	defer tm.crit.RUnlock()
	return tm.cells[idx]
}

// Poke sets the cell at the index. Indexes outside the buffer are ignored.
func (tm *TextMemory) Poke(idx int, v uint16) {
	if idx < 0 || idx >= len(tm.cells) {
		return
	}
	tm.crit.Lock()
	defer tm.crit.Unlock()
	if tm.cells[idx] != v {
		tm.cells[idx] = v
		tm.generation.Add(1)
	}
}

// Snapshot returns a copy of every cell in the buffer.
func (tm *TextMemory) Snapshot() []uint16 {
	tm.crit.RLock()
	defer tm.crit.RUnlock()
	s := make([]uint16, len(tm.cells))
	copy(s, tm.cells[:])
	return s
}

// Generation changes whenever the content of the buffer changes.
func (tm *TextMemory) Generation() uint64 {
	return tm.generation.Load()
}
