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

package keyboard

import (
	"github.com/jetsetilly/pcconsole/hardware"
	"github.com/jetsetilly/pcconsole/hardware/ports"
)

// Reader reads characters from the keyboard controller.
type Reader struct {
	ports    hardware.Ports
	shift    bool
	extended bool
}

// NewReader is the preferred method of initialisation for the Reader type.
func NewReader(p hardware.Ports) *Reader {
	return &Reader{ports: p}
}

// Shifted returns true while a shift key is held.
func (kb *Reader) Shifted() bool {
	return kb.shift
}

// Read waits for a key press and returns its character. Key releases are
// discarded. Returns zero for a key press that has no character.
//
// The extended cursor up and down keys are returned as KeyUp and KeyDown.
// Other extended keys return zero.
//
// There is no timeout. Read only returns once a key is pressed.
func (kb *Reader) Read() uint8 {
	for {
		for kb.ports.In(ports.KeyboardStatus)&ports.StatusOutputFull == 0 {
		}

		code := kb.ports.In(ports.KeyboardData)
		if code == Extended {
			kb.extended = true
			continue // for loop
		}

		if kb.extended {
			kb.extended = false
			if code&BreakBit == BreakBit {
				continue // for loop
			}
			switch code {
			case CursorUp:
				return KeyUp
			case CursorDown:
				return KeyDown
			}
			return 0
		}

		switch code {
		case LeftShift, RightShift:
			kb.shift = true
		case LeftShiftUp, RightShiftUp:
			kb.shift = false
		}

		if code&BreakBit == BreakBit {
			continue // for loop
		}

		return Lookup(code, kb.shift)
	}
}
