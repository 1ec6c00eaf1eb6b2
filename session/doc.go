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

// Package session ties the parts of the console together. A Session owns
// the display, the keyboard reader, the line editor and the command registry
// and runs them in a single loop:
//
//	clear the display, print the banner and the prompt
//	forever: read a key and feed it to the line editor
//
// The line editor dispatches completed lines to the command registry.
//
// The session has no state outside of the Session type. Rebooting the
// console is done by creating a new Session.
//
// The prompt and banner are preferences. They are stored in the preferences
// file of the resource directory under the keys console.prompt and
// console.banner.
package session
