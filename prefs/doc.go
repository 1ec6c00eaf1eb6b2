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

// Package prefs facilitates the storage of preferential values on disk.
//
// Values are added to a Disk instance with the Add() function. Each value is
// given a key that is unique to the preferences file. Values are typed. The
// Bool, String and Int types are supported.
//
//	dsk, err := prefs.NewDisk(pth)
//	var prompt prefs.String
//	err = dsk.Add("console.prompt", &prompt)
//	err = dsk.Load()
//
// The file is a plain text file with one "key :: value" pair per line,
// headed by the WarningBoilerPlate line. Keys in the file that have not been
// added to the Disk instance are preserved when the file is saved. This
// means that more than one Disk instance can share the same file.
//
// Values can be overridden from the command line. The string is pushed onto
// the command line stack before the Disk is loaded:
//
//	prefs.PushCommandLineStack("console.prompt::$ ; console.banner::hello")
//
// Values found on the stack take precedence over the values in the file.
//
// The Watch() function reloads the file whenever it changes on disk. All
// value types are safe to read from one goroutine while another goroutine
// is loading.
package prefs
