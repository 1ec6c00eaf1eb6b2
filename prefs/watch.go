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
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/jetsetilly/pcconsole/curated"
	"github.com/jetsetilly/pcconsole/logger"
)

// Watcher reloads a Disk whenever the preferences file changes.
type Watcher struct {
	dsk     *Disk
	watcher *fsnotify.Watcher
	done    chan bool
}

// Watch the preferences file of the Disk. The containing directory is
// watched rather than the file itself because many editors replace the file
// rather than writing to it.
//
// The onReload function is called after every successful reload. It may be
// nil.
func (dsk *Disk) Watch(onReload func()) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, curated.Errorf("prefs: watch: %v", err)
	}

	err = w.Add(filepath.Dir(dsk.path))
	if err != nil {
		_ = w.Close()
		return nil, curated.Errorf("prefs: watch: %v", err)
	}

	wt := &Watcher{
		dsk:     dsk,
		watcher: w,
		done:    make(chan bool),
	}

	go wt.loop(onReload)

	return wt, nil
}

func (wt *Watcher) loop(onReload func()) {
	defer close(wt.done)

	target := filepath.Clean(wt.dsk.path)

	for {
		select {
		case ev, ok := <-wt.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}

			err := wt.dsk.Load()
			if err != nil {
				logger.Logf(logger.Allow, "prefs", "reload: %v", err)
				continue
			}
			logger.Logf(logger.Allow, "prefs", "reloaded %s", target)

			if onReload != nil {
				onReload()
			}

		case err, ok := <-wt.watcher.Errors:
			if !ok {
				return
			}
			logger.Log(logger.Allow, "prefs", err)
		}
	}
}

// Close stops watching the preferences file. It waits for the watching
// goroutine to end.
func (wt *Watcher) Close() error {
	err := wt.watcher.Close()
	<-wt.done
	return err
}
