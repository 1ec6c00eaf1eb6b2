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

// Package logger is the central log repository for PCConsole. Log entries
// are tagged by the component that created them and identical consecutive
// entries are folded into one entry with a repeat count.
//
// Logging is intended for the developer and for post-mortem inspection. It
// is not a replacement for output that the user needs to see. Nothing the
// console prints on its emulated display goes through the logger.
//
// The log is bounded. Once the maximum number of entries has been reached
// the oldest entries are discarded.
package logger
