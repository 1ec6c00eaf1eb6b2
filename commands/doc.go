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

// Package commands holds the table of named console commands and dispatches
// completed lines of input to them.
//
// A line is dispatched by stripping its leading spaces and splitting it at
// the first space. The part before the space is the command name and
// everything after it is the argument, unchanged. Names are compared exactly
// and in the order the commands were given to NewRegistry(). The first match
// wins.
//
// A command either has a Handler or is an Alias for another command. An
// alias runs the handler of the command it names.
//
// The Standard() table is the set of commands the console normally offers:
//
//	help       list every command with its description
//	clear      clear the screen
//	cls        alias for clear
//	reboot     pulse the reset line through the keyboard controller
//	shutdown   write the power off value to the power port
//	echo       print the argument
package commands
