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

package session

import (
	"github.com/jetsetilly/pcconsole/curated"
	"github.com/jetsetilly/pcconsole/display"
	"github.com/jetsetilly/pcconsole/paths"
	"github.com/jetsetilly/pcconsole/prefs"
)

// Preferences keys.
const (
	keyPrompt = "console.prompt"
	keyBanner = "console.banner"
)

// Preferences for the console.
type Preferences struct {
	dsk *prefs.Disk

	// printed before every line of input
	Prompt prefs.String

	// printed once when the session boots. nothing is printed if it is empty
	Banner prefs.String
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

// the longest prompt. the rest of the row is for the input line
const maxPromptLen = 16

func (p *Preferences) setDefaults() error {
	p.Prompt.SetMaxLen(maxPromptLen)
	p.Banner.SetMaxLen(display.Width)
	if err := p.Prompt.Set("> "); err != nil {
		return err
	}
	return p.Banner.Set("")
}

// DefaultPreferences returns preferences with their default values. They are
// not connected to a file so Load() and Save() do nothing.
func DefaultPreferences() *Preferences {
	p := &Preferences{}
	_ = p.setDefaults()
	return p
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. If pth is empty then the preferences file in the
// resource directory is used.
//
// The file is loaded before returning. A missing file is not an error.
func NewPreferences(pth string) (*Preferences, error) {
	var err error

	if pth == "" {
		pth, err = paths.ResourcePath("", prefs.DefaultPrefsFile)
		if err != nil {
			return nil, err
		}
	}

	p := &Preferences{}
	err = p.setDefaults()
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add(keyPrompt, &p.Prompt)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add(keyBanner, &p.Banner)
	if err != nil {
		return nil, err
	}

	err = p.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// Path returns the path of the preferences file. Returns the empty string
// for DefaultPreferences().
func (p *Preferences) Path() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.Path()
}

// Load the preferences from disk. A missing file is not an error.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return nil
	}
	err := p.dsk.Load()
	if err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return err
	}
	return nil
}

// Save the preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return nil
	}
	return p.dsk.Save()
}

// Watch reloads the preferences whenever the file changes. The change is
// seen the next time the prompt is printed.
func (p *Preferences) Watch() (*prefs.Watcher, error) {
	if p.dsk == nil {
		return nil, curated.Errorf("session: preferences have no file to watch")
	}
	return p.dsk.Watch(nil)
}
