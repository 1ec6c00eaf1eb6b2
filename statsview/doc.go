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

// Package statsview offers runtime statistics over HTTP on a local port. It
// is only available when the program is built with the statsview build tag:
//
//	go build -tags statsview .
//
// After launch the graphs are available at localhost:12680/debug/statsview
// and the standard pprof pages at localhost:12680/debug/pprof/
//
// Without the build tag Available() returns false and Launch() does nothing.
package statsview

// Address of the statistics server.
const Address = "localhost:12680"
