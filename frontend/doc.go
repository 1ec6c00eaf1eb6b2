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

// Package frontend defines how the emulated machine is presented on the
// host. A front end draws the text buffer, types the user's keys into the
// keyboard controller and returns when the machine halts or the user quits.
//
// The sub-packages implement the Frontend interface:
//
//	tcellterm   full screen terminal using tcell
//	rawterm     raw mode terminal using termios and ANSI sequences
//	plainterm   no interaction. input is read from a file and the final
//	            screen is written out
//
// The Type() function translates a host character to the scancodes of the
// key that produces it.
package frontend
