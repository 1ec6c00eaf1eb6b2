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

// Package version reports the version of the running program. The version
// number is set at link time:
//
//	go build -ldflags "-X github.com/jetsetilly/pcconsole/version.number=v0.1.0"
//
// A number that is not a valid semantic version is ignored and the program is
// treated as unreleased.
package version

import (
	"fmt"
	"runtime/debug"

	"github.com/Masterminds/semver/v3"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "PCConsole"

// if number is empty then the project was probably not built using the makefile
var number string

type info struct {
	version  string
	revision string
	semantic *semver.Version
}

var current info

func init() {
	var vcs bool
	var revision string
	var modified bool

	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, v := range bi.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				revision = v.Value
			case "vcs.modified":
				modified = v.Value == "true"
			}
		}
	}

	current = resolve(number, vcs, revision, modified)
}

// resolve the version information from the link time number and the vcs
// settings of the build
func resolve(number string, vcs bool, revision string, modified bool) info {
	var inf info

	if revision == "" {
		inf.revision = "no revision information"
	} else {
		inf.revision = revision
		if modified {
			inf.revision = fmt.Sprintf("%s+dirty", revision)
		}
	}

	if number != "" {
		if v, err := semver.NewVersion(number); err == nil {
			inf.semantic = v
			inf.version = fmt.Sprintf("v%s", v)
			return inf
		}
	}

	if vcs {
		inf.version = "unreleased"
	} else {
		inf.version = "local"
	}

	return inf
}

// Version returns the version string, the revision string and whether this is
// a numbered release. If release is true then the revision information should
// be used sparingly.
//
// The version string is "unreleased" if the program was built without a
// version number and "local" if there is no vcs information either. That
// happens when the program is started with "go run".
func Version() (string, string, bool) {
	return current.version, current.revision, current.semantic != nil
}

// Semantic returns the parsed version number. Returns nil if this is not a
// numbered release.
func Semantic() *semver.Version {
	return current.semantic
}

// Banner returns the application name and version on one line.
func Banner() string {
	return fmt.Sprintf("%s %s", ApplicationName, current.version)
}
