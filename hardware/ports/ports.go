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

// Package ports names the I/O ports, registers and magic values used by the
// console.
package ports

// PS/2 keyboard controller.
const (
	// data port. reading it takes the next byte from the controller
	KeyboardData uint16 = 0x60

	// reading gives the status register. writing sends a controller command
	KeyboardStatus  uint16 = 0x64
	KeyboardCommand uint16 = 0x64
)

// Bits of the keyboard controller status register.
const (
	// output buffer full. a byte is waiting on the data port
	StatusOutputFull uint8 = 0x01
)

// Keyboard controller commands.
const (
	// pulse the CPU reset line
	CommandReset uint8 = 0xfe
)

// CRT controller. A register is selected by writing its number to the index
// port and then accessed through the data port.
const (
	CRTCIndex uint16 = 0x3d4
	CRTCData  uint16 = 0x3d5
)

// CRT controller registers.
const (
	CursorLocationHigh uint8 = 0x0e
	CursorLocationLow  uint8 = 0x0f
)

// ACPI power control as found on emulated PCs.
const (
	Power    uint16 = 0x604
	PowerOff uint16 = 0x2000
)

// TextBase is the physical address of the colour text buffer.
const TextBase = 0xb8000
