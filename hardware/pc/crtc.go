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

	"github.com/jetsetilly/pcconsole/hardware/ports"
	"github.com/jetsetilly/pcconsole/logger"
)

// number of registers in the CRT controller
const numCRTCRegisters = 0x19

// CRTC is the CRT controller. Only the cursor location registers have any
// effect but all registers can be written and read back.
type CRTC struct {
	crit  sync.Mutex
	index uint8
	regs  [numCRTCRegisters]uint8
}

func newCRTC() *CRTC {
	return &CRTC{}
}

// Cursor returns the cursor location as an offset into the text buffer.
func (c *CRTC) Cursor() int {
	c.crit.Lock()
	defer c.crit.Unlock()
	return int(c.regs[ports.CursorLocationHigh])<<8 | int(c.regs[ports.CursorLocationLow])
}

func (c *CRTC) read(port uint16) uint8 {
	c.crit.Lock()
	defer c.crit.Unlock()

	if port == ports.CRTCIndex {
		return c.index
	}
	if int(c.index) < len(c.regs) {
		return c.regs[c.index]
	}
	return 0xff
}

func (c *CRTC) write(port uint16, data uint16, word bool) {
	c.crit.Lock()
	defer c.crit.Unlock()

	// a word write to the index port sets the index and then writes the
	// high byte to the selected register
	if port == ports.CRTCIndex {
		c.index = uint8(data)
		if !word {
			return
		}
		data >>= 8
	}

	if int(c.index) >= len(c.regs) {
		logger.Logf(logger.Allow, "crtc", "write to unknown register %#02x", c.index)
		return
	}
	c.regs[c.index] = uint8(data)
}
