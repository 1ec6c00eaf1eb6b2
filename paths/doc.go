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

// Package paths contains functions to prepare paths for PCConsole resources.
//
// The ResourcePath() function returns the path to a resource, creating the
// directory part of the path if required:
//
//	pth, err := paths.ResourcePath("", "preferences")
//
// On a Linux system this would be:
//
//	/home/user/.config/pcconsole/preferences
//
// If a directory named ".pcconsole" exists in the current working directory
// then that is used instead. This is useful during development.
package paths
