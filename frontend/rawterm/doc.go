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

// Package rawterm presents the emulated machine on a terminal in raw mode.
// The terminal is driven with ANSI control sequences and the screen is
// redrawn whenever the text buffer or the hardware cursor changes.
//
// Keys are typed into the keyboard controller as they are read from the
// terminal. Escape sequences, such as those sent by the cursor keys, are
// ignored. Ctrl-C quits.
//
// The terminal must be at least 80 columns by 25 rows.
package rawterm
