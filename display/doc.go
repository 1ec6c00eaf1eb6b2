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

// Package display drives the colour text buffer of the PC. The Console type
// keeps track of the cursor, renders characters to the buffer, handles the
// newline and backspace characters and scrolls when the cursor moves past
// the bottom row.
//
// Every change of cursor position is also written to the cursor registers of
// the CRT controller so that the hardware cursor follows the text.
package display
