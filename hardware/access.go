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

package hardware

// Ports is the I/O port space. There is no way for an access to fail. A read
// from a port that nothing answers returns whatever the bus floats to.
type Ports interface {
	// In reads a byte from the port
	In(port uint16) uint8

	// Out writes a byte to the port
	Out(port uint16, data uint8)

	// OutW writes a 16 bit word to the port
	OutW(port uint16, data uint16)
}

// TextBuffer is the memory mapped character display. Cells are addressed by
// their linear index (row * width + col). The low byte of a cell is the
// character and the high byte is the attribute.
type TextBuffer interface {
	Peek(idx int) uint16
	Poke(idx int, v uint16)
}

// Access is everything the console needs from the machine.
type Access interface {
	Ports
	TextBuffer
}
