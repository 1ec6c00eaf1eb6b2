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

import "github.com/jetsetilly/pcconsole/hardware/ports"

// Names of the standard commands.
const (
	cmdHelp     = "help"
	cmdClear    = "clear"
	cmdCls      = "cls"
	cmdReboot   = "reboot"
	cmdShutdown = "shutdown"
	cmdEcho     = "echo"
)

var help = map[string]string{
	cmdHelp:     "show this help",
	cmdClear:    "clear the screen",
	cmdCls:      "alias for clear",
	cmdReboot:   "restart the system",
	cmdShutdown: "power off the system",
	cmdEcho:     "print text",
}

// Standard returns the standard command table.
func Standard() []Command {
	return []Command{
		{Name: cmdHelp, Description: help[cmdHelp], Handler: Help},
		{Name: cmdClear, Description: help[cmdClear], Handler: Clear},
		{Name: cmdCls, Description: help[cmdCls], Alias: cmdClear},
		{Name: cmdReboot, Description: help[cmdReboot], Handler: Reboot},
		{Name: cmdShutdown, Description: help[cmdShutdown], Handler: Shutdown},
		{Name: cmdEcho, Description: help[cmdEcho], Handler: Echo},
	}
}

// Help prints the name and description of every command in the registry.
func Help(env *Env, _ string) {
	for _, c := range env.Registry.Commands() {
		env.Display.Print(c.Name + " - " + c.Description + "\n")
	}
}

// Clear clears the display.
func Clear(env *Env, _ string) {
	env.Display.Clear()
}

// Reboot pulses the reset line through the keyboard controller.
func Reboot(env *Env, _ string) {
	env.Ports.Out(ports.KeyboardCommand, ports.CommandReset)
}

// Shutdown writes the power off value to the power port.
func Shutdown(env *Env, _ string) {
	env.Ports.OutW(ports.Power, ports.PowerOff)
}

// Echo prints the argument followed by a newline.
func Echo(env *Env, arg string) {
	env.Display.Print(arg + "\n")
}
