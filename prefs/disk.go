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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/jetsetilly/pcconsole/curated"
)

// DefaultPrefsFile is the name of the preferences file in the resource
// directory.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file while the console is running ***"

// separates the key from the value in the preferences file
const keySep = " :: "

// Sentinal errors.
const (
	NoPrefsFile    = "prefs: no prefs file (%s)"
	UnknownPrefs   = "prefs: unknown preference (%s)"
	DuplicatePrefs = "prefs: duplicate preference (%s)"
	LoadError      = "prefs: load: %v"
	SaveError      = "prefs: save: %v"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	path string

	crit    sync.Mutex
	entries map[string]pref

	// values taken from the command line stack on first load. they take
	// precedence over the values in the file for every subsequent load
	overrides map[string]string
	claimed   bool
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	dsk := &Disk{
		path:      path,
		entries:   make(map[string]pref),
		overrides: make(map[string]string),
	}
	return dsk, nil
}

// Path returns the path of the preferences file.
func (dsk *Disk) Path() string {
	return dsk.path
}

// Add preference value to list of values to store/load from disk.
func (dsk *Disk) Add(key string, p pref) error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	if strings.ContainsAny(key, " \t\n") {
		return curated.Errorf(UnknownPrefs, key)
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicatePrefs, key)
	}
	dsk.entries[key] = p
	return nil
}

// String returns the current preference values in the same format as the
// preferences file, without the boiler plate.
func (dsk *Disk) String() string {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, keySep, dsk.entries[k]))
	}
	return s.String()
}

// Reset all preference values to their zero values. Values from the command
// line are applied afterwards.
func (dsk *Disk) Reset() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	for _, p := range dsk.entries {
		if err := p.Reset(); err != nil {
			return err
		}
	}
	return dsk.applyOverrides()
}

// Load preference values from disk. Keys in the file that have not been
// added to the Disk are ignored.
//
// Returns a NoPrefsFile error if the file does not exist. Command line
// values are still applied in that case.
func (dsk *Disk) Load() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	dsk.claimOverrides()

	vals, err := readFile(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			if err := dsk.applyOverrides(); err != nil {
				return err
			}
			return curated.Errorf(NoPrefsFile, dsk.path)
		}
		return curated.Errorf(LoadError, err)
	}

	for k, v := range vals {
		if p, ok := dsk.entries[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(LoadError, err)
			}
		}
	}

	return dsk.applyOverrides()
}

// Save current preference values to disk. Entries in the existing file that
// have not been added to the Disk are preserved.
func (dsk *Disk) Save() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	vals, err := readFile(dsk.path)
	if err != nil {
		if !os.IsNotExist(err) {
			return curated.Errorf(SaveError, err)
		}
		vals = make(map[string]string)
	}

	for k, p := range dsk.entries {
		vals[k] = p.String()
	}

	keys := make([]string, 0, len(vals))
	for k := range vals {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf(SaveError, err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, keySep, vals[k])
	}

	if err := w.Flush(); err != nil {
		_ = f.Close()
		return curated.Errorf(SaveError, err)
	}
	if err := f.Close(); err != nil {
		return curated.Errorf(SaveError, err)
	}

	return nil
}

// claimOverrides takes the values for the added keys from the command line
// stack. it is only done once for the lifetime of the Disk
func (dsk *Disk) claimOverrides() {
	if dsk.claimed {
		return
	}
	dsk.claimed = true

	for k := range dsk.entries {
		if ok, v := GetCommandLinePref(k); ok {
			dsk.overrides[k] = v
		}
	}
}

func (dsk *Disk) applyOverrides() error {
	for k, v := range dsk.overrides {
		if err := dsk.entries[k].Set(v); err != nil {
			return curated.Errorf(LoadError, err)
		}
	}
	return nil
}

// readFile returns the key/value pairs in the preferences file. the boiler
// plate line and lines without a separator are skipped
func readFile(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	vals := make(map[string]string)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == WarningBoilerPlate {
			continue
		}

		k, v, ok := strings.Cut(line, keySep)
		if !ok {
			continue
		}
		vals[strings.TrimSpace(k)] = v
	}

	return vals, scanner.Err()
}
