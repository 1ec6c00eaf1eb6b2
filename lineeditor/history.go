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

// HistorySize is the number of completed lines remembered.
const HistorySize = 10

// history is a ring of the most recent non-empty lines
type history struct {
	lines [HistorySize]string
	next  int
	count int

	// the line being shown while browsing. zero is the most recent line
	browsing bool
	index    int
}

func (h *history) add(line string) {
	h.browsing = false
	if line == "" {
		return
	}
	h.lines[h.next] = line
	h.next = (h.next + 1) % HistorySize
	if h.count < HistorySize {
		h.count++
	}
}

// get returns the numbered line. zero is the most recent
func (h *history) get(i int) string {
	return h.lines[(h.next-1-i+HistorySize)%HistorySize]
}

// older moves to the next older line. the first call after a line is
// completed selects the most recent line. returns false if there is no
// history
func (h *history) older() (string, bool) {
	if h.count == 0 {
		return "", false
	}
	if !h.browsing {
		h.browsing = true
		h.index = 0
	} else if h.index < h.count-1 {
		h.index++
	}
	return h.get(h.index), true
}

// newer moves to the next newer line. returns false if the most recent line
// is already shown or if the history is not being browsed
func (h *history) newer() (string, bool) {
	if !h.browsing || h.index == 0 {
		return "", false
	}
	h.index--
	return h.get(h.index), true
}
