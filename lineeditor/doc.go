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

// Package lineeditor collects characters into a line of input. Every
// accepted character is echoed to the output. When the line is complete it
// is handed to a Dispatcher and the prompt is printed again.
//
// A line holds at most Capacity characters. Characters typed after that are
// dropped without any indication. Backspace removes the last character.
// There is no history and no way of moving within the line.
package lineeditor
