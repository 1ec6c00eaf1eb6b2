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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with a pattern and a list of values, in the
// same way as fmt.Errorf(). The pattern is kept alongside the values so that
// an error can be identified later by the pattern alone:
//
//	const NoPrefsFile = "prefs: no preferences file (%s)"
//
//	err := curated.Errorf(NoPrefsFile, "/tmp/prefs")
//	if curated.Is(err, NoPrefsFile) {
//		...
//	}
//
// Curated errors can wrap other curated errors by passing them as values.
// The Has() function will search the chain of wrapped errors for a pattern:
//
//	err := curated.Errorf("session: %v", curated.Errorf(NoPrefsFile, pth))
//	curated.Is(err, NoPrefsFile)  // false
//	curated.Has(err, NoPrefsFile) // true
//
// The Error() string of a curated error has adjacent duplicate message parts
// removed. Where the chain is "prefs: prefs: no preferences file" the message
// becomes "prefs: no preferences file".
//
// Patterns should be exported as constants by the package that raises them.
package curated
