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
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/jetsetilly/pcconsole/curated"
)

// ConversionError is returned when a value cannot be converted to the type
// of the preference.
const ConversionError = "prefs: cannot convert %v to %s"

// Value represents the actual Go preference value.
type Value any

// pref is implemented by all the preference types.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// cell holds the current value of a preference of type T and the hook that
// is called after it changes. the zero cell holds the zero value of T.
type cell[T any] struct {
	v    atomic.Pointer[T]
	hook func(value Value) error
}

func (c *cell[T]) load() T {
	if p := c.v.Load(); p != nil {
		return *p
	}
	var zero T
	return zero
}

func (c *cell[T]) store(v T) error {
	c.v.Store(&v)
	if c.hook != nil {
		return c.hook(v)
	}
	return nil
}

// SetHookPost sets the callback function to be called just after the value
// is changed.
func (c *cell[T]) SetHookPost(f func(value Value) error) {
	c.hook = f
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	cell[bool]
}

func (p *Bool) String() string {
	return strconv.FormatBool(p.load())
}

// Set accepts a bool or a string. Any string other than "true" (case
// insensitive) is false.
func (p *Bool) Set(v Value) error {
	switch v := v.(type) {
	case bool:
		return p.store(v)
	case string:
		return p.store(strings.EqualFold(strings.TrimSpace(v), "true"))
	}
	return curated.Errorf(ConversionError, fmt.Sprintf("%T", v), "bool")
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	return p.load()
}

// Reset sets the value to false.
func (p *Bool) Reset() error {
	return p.store(false)
}

// String implements a string type in the prefs system.
type String struct {
	cell[string]
	maxLen int
}

func (p *String) String() string {
	return p.load()
}

// SetMaxLen limits the length of the string. Zero or less means no limit.
// The current value is cropped if necessary.
func (p *String) SetMaxLen(max int) {
	p.maxLen = max
	s := p.crop(p.load())
	p.v.Store(&s)
}

func (p *String) crop(s string) string {
	if p.maxLen > 0 && len(s) > p.maxLen {
		return s[:p.maxLen]
	}
	return s
}

// Set accepts any value. Non-strings are formatted with the %v verb.
func (p *String) Set(v Value) error {
	return p.store(p.crop(fmt.Sprintf("%v", v)))
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	return p.load()
}

// Reset sets the value to the empty string.
func (p *String) Reset() error {
	return p.store("")
}

// Int implements an integer type in the prefs system.
type Int struct {
	cell[int]
}

func (p *Int) String() string {
	return strconv.Itoa(p.load())
}

// Set accepts an int or a string in any base understood by
// strconv.ParseInt(), eg. "0x10". The value is unchanged on error.
func (p *Int) Set(v Value) error {
	switch v := v.(type) {
	case int:
		return p.store(v)
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 0, 0)
		if err != nil {
			return curated.Errorf(ConversionError, strconv.Quote(v), "int")
		}
		return p.store(int(n))
	}
	return curated.Errorf(ConversionError, fmt.Sprintf("%T", v), "int")
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	return p.load()
}

// Reset sets the value to zero.
func (p *Int) Reset() error {
	return p.store(0)
}
