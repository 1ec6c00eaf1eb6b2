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

// Package modalflag wraps the flag package of the standard library. It adds
// program modes to the ordinary handling of flags, with each mode having its
// own set of flags.
//
// A Modes instance is given the program arguments once with NewArgs(). Flags
// and sub-modes for the top level are then added and Parse() is called:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "SCRIPT", "VERSION")
//	verbose := md.AddBool("log", false, "echo log to stderr")
//	r, err := md.Parse()
//
// The first argument after the flags is compared (case insensitively) to the
// list of sub-modes. If it matches, the mode is selected and the argument is
// consumed. Otherwise the first sub-mode in the list is selected. Mode()
// returns the selected mode and Path() returns every mode selected so far,
// separated by a slash.
//
// The next level is prepared with NewMode(), after which a new set of flags
// and sub-modes can be added and Parse() called again. The arguments that are
// neither flags nor a sub-mode are returned by RemainingArgs().
//
// A -help flag is handled automatically. The help message is written to the
// Output field and Parse() returns ParseHelp.
package modalflag
