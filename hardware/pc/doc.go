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

// Package pc emulates as much of a PC as the console needs: a PS/2 keyboard
// controller, the cursor registers of the CRT controller, the ACPI power
// port and the colour text buffer.
//
// The Machine type implements hardware.Access. The console (the guest) is
// started on its own goroutine with the Start() function. Front ends run on
// another goroutine and use the PS2 field to press keys and the Text and
// CRTC fields to draw the screen.
//
// When the guest resets or powers off the machine, the Halted() channel is
// closed and the guest's goroutine is ended with runtime.Goexit(). The front
// end is expected to select on Halted() and to check Reason() afterwards.
package pc
