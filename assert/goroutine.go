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

// Package assert checks conditions that should always hold while the
// program is running. It should only be used for debugging and testing.
package assert

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"
	"sync/atomic"
)

// GoroutineID returns an identifier for the calling goroutine. The result is
// different between goroutines and consistent for any one goroutine.
func GoroutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// SingleGoroutine asserts that its Check() function is only ever called from
// one goroutine. The first goroutine to call Check() becomes the owner. The
// zero value is ready to use.
type SingleGoroutine struct {
	owner atomic.Uint64
}

// Check panics if called from a goroutine other than the owner.
func (s *SingleGoroutine) Check() {
	id := GoroutineID()
	if s.owner.CompareAndSwap(0, id) {
		return
	}
	if o := s.owner.Load(); o != id {
		panic(fmt.Sprintf("assert: goroutine %d used value owned by goroutine %d", id, o))
	}
}

// Release forgets the owner. The next goroutine to call Check() becomes the
// new owner.
func (s *SingleGoroutine) Release() {
	s.owner.Store(0)
}
