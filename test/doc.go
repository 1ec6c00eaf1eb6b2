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

// Package test contains helper functions to remove common boilerplate from
// the test files in the rest of the project.
//
// The Expect functions report a failure and allow the test to continue. The
// Demand functions stop the test immediately.
//
// Nil is considered a success value. ExpectSuccess(t, nil) passes and
// ExpectFailure(t, nil) fails. This follows how errors are normally returned.
//
// The CompareWriter type implements the io.Writer interface and is useful for
// capturing output for later comparison.
package test
