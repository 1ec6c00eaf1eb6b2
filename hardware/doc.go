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

// Package hardware defines how the console reaches the machine it runs on.
//
// The console needs two things from the machine: the I/O port space and the
// memory mapped text buffer. They are described by the Ports and TextBuffer
// interfaces. Access combines the two and is what the console is given when
// it is created.
//
// The pc sub-package emulates a PC that implements Access. The hwtest
// sub-package records every access so that tests can check exactly what the
// console did to the hardware.
//
// The numbers that identify ports and registers are in the ports
// sub-package.
package hardware
