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

// Package keyboard reads characters from the PS/2 keyboard controller.
//
// The Reader type polls the controller until a scancode is available,
// discards key release (break) codes and translates key press (make) codes
// to ASCII through a US layout table. Scancode set 1 is assumed.
//
// Encode() performs the reverse translation. It is used by front ends to
// type characters into an emulated keyboard controller.
package keyboard
