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

package commands

import (
	"strings"

	"github.com/jetsetilly/pcconsole/curated"
	"github.com/jetsetilly/pcconsole/hardware"
)

// Sentinal errors.
const (
	UnknownCommand   = "commands: unknown command (%s)"
	DuplicateCommand = "commands: duplicate command (%s)"
	UnknownAlias     = "commands: %s is an alias for an unknown command (%s)"
	InvalidCommand   = "commands: invalid command (%s): %s"
)

// Display is the part of the display used by commands.
type Display interface {
	Print(s string)
	Clear()
}

// Env is given to every handler. It is everything a command can touch.
type Env struct {
	Display Display
	Ports   hardware.Ports

	// the registry running the command. NewRegistry() sets this in its own
	// copy of the Env
	Registry *Registry
}

// Handler is the function run by a command. The argument is the text after
// the first space of the line, which may be empty.
type Handler func(env *Env, arg string)

// Command is a single entry in the registry. Exactly one of Handler and Alias
// must be set.
type Command struct {
	Name        string
	Description string
	Handler     Handler

	// the name of the command whose handler is run in place of this one
	Alias string
}

// Registry is an ordered table of commands.
type Registry struct {
	env      *Env
	commands []Command
}

// NewRegistry creates a registry from the commands. The order of the
// commands is kept. The registry runs its commands with a copy of env whose
// Registry field is the new registry. The caller's env is not changed, so
// one Env can be used to create more than one registry.
//
// Returns an error if a name is used twice, if an alias names a command that
// is not in the list, or if a command is malformed.
func NewRegistry(env *Env, cmds ...Command) (*Registry, error) {
	names := make(map[string]Command, len(cmds))

	for _, c := range cmds {
		if c.Name == "" {
			return nil, curated.Errorf(InvalidCommand, c.Name, "empty name")
		}
		if strings.ContainsRune(c.Name, ' ') {
			return nil, curated.Errorf(InvalidCommand, c.Name, "name contains a space")
		}
		if c.Handler == nil && c.Alias == "" {
			return nil, curated.Errorf(InvalidCommand, c.Name, "no handler or alias")
		}
		if c.Handler != nil && c.Alias != "" {
			return nil, curated.Errorf(InvalidCommand, c.Name, "both handler and alias")
		}
		if _, ok := names[c.Name]; ok {
			return nil, curated.Errorf(DuplicateCommand, c.Name)
		}
		names[c.Name] = c
	}

	// an alias must name a command with a handler. aliases of aliases are
	// not allowed
	for _, c := range cmds {
		if c.Alias == "" {
			continue
		}
		if t, ok := names[c.Alias]; !ok || t.Handler == nil {
			return nil, curated.Errorf(UnknownAlias, c.Name, c.Alias)
		}
	}

	e := *env
	reg := &Registry{
		env:      &e,
		commands: append([]Command(nil), cmds...),
	}
	e.Registry = reg

	return reg, nil
}

// Names returns the name of every command in order.
func (reg *Registry) Names() []string {
	n := make([]string, len(reg.commands))
	for i, c := range reg.commands {
		n[i] = c.Name
	}
	return n
}

// Env returns the environment the registry's commands are run with.
func (reg *Registry) Env() *Env {
	return reg.env
}

// Commands returns a copy of the command table.
func (reg *Registry) Commands() []Command {
	return append([]Command(nil), reg.commands...)
}

// Lookup returns the command with the name. An alias is returned as it is,
// it is not resolved.
func (reg *Registry) Lookup(name string) (Command, bool) {
	for _, c := range reg.commands {
		if c.Name == name {
			return c, true
		}
	}
	return Command{}, false
}

// resolve returns the handler for the command, following the alias if there
// is one
func (reg *Registry) resolve(c Command) Handler {
	if c.Alias == "" {
		return c.Handler
	}
	t, _ := reg.Lookup(c.Alias)
	return t.Handler
}

// Dispatch runs the command named by the line. An empty line, or a line of
// only spaces, does nothing.
//
// An unknown command prints a diagnostic to the display and returns an
// UnknownCommand error. The error does not need any further action.
func (reg *Registry) Dispatch(line string) error {
	line = strings.TrimLeft(line, " ")
	if line == "" {
		return nil
	}

	name, arg, _ := strings.Cut(line, " ")

	c, ok := reg.Lookup(name)
	if !ok {
		reg.env.Display.Print("Unknown command: " + line + "\n")
		return curated.Errorf(UnknownCommand, line)
	}

	reg.resolve(c)(reg.env, arg)

	return nil
}
