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

package pc

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/jetsetilly/pcconsole/hardware"
	"github.com/jetsetilly/pcconsole/hardware/ports"
	"github.com/jetsetilly/pcconsole/logger"
)

// HaltReason indicates why the machine stopped.
type HaltReason int

// List of valid HaltReason values.
const (
	Running HaltReason = iota

	// the guest pulsed the reset line through the keyboard controller
	HaltReset

	// the guest wrote the power off value to the power port
	HaltPowerOff

	// the guest function returned
	HaltReturned

	// the machine was stopped from outside, usually because the user quit
	HaltStopped
)

func (r HaltReason) String() string {
	switch r {
	case Running:
		return "running"
	case HaltReset:
		return "reset"
	case HaltPowerOff:
		return "power off"
	case HaltReturned:
		return "guest returned"
	case HaltStopped:
		return "stopped"
	}
	return fmt.Sprintf("unknown halt reason (%d)", int(r))
}

// a device answers for one or more ports on the bus
type device interface {
	read(port uint16) uint8
	write(port uint16, data uint16, word bool)
}

// Machine is the emulated PC.
type Machine struct {
	PS2   *PS2
	CRTC  *CRTC
	Text  *TextMemory
	power *power

	bus map[uint16]device

	haltOnce sync.Once
	halted   chan bool
	crit     sync.Mutex
	reason   HaltReason
}

// NewMachine is the preferred method of initialisation for the Machine type.
func NewMachine() *Machine {
	m := &Machine{
		halted: make(chan bool),
	}

	m.PS2 = newPS2(m)
	m.CRTC = newCRTC()
	m.Text = newTextMemory()
	m.power = &power{m: m}

	m.bus = map[uint16]device{
		ports.KeyboardData:   m.PS2,
		ports.KeyboardStatus: m.PS2,
		ports.CRTCIndex:      m.CRTC,
		ports.CRTCData:       m.CRTC,
		ports.Power:          m.power,
	}

	return m
}

// Start runs the guest on a new goroutine. The guest is given the machine
// as its hardware.
func (m *Machine) Start(guest func(hw hardware.Access)) {
	go func() {
		guest(m)
		m.Stop(HaltReturned)
	}()
}

// Halted returns a channel that is closed when the machine halts.
func (m *Machine) Halted() <-chan bool {
	return m.halted
}

// Reason returns why the machine halted. Returns Running if the machine has
// not halted.
func (m *Machine) Reason() HaltReason {
	m.crit.Lock()
	defer m.crit.Unlock()
	return m.reason
}

// Stop halts the machine with the reason. Only the first reason is kept.
// Unlike a halt caused by the guest, Stop() returns to the caller. The guest
// goroutine ends the next time it touches a port.
func (m *Machine) Stop(reason HaltReason) {
	m.haltOnce.Do(func() {
		m.crit.Lock()
		m.reason = reason
		m.crit.Unlock()
		close(m.halted)
		logger.Logf(logger.Allow, "pc", "halted: %s", reason)
	})
}

// halt is called by a device on behalf of the guest. it does not return
func (m *Machine) halt(reason HaltReason) {
	m.Stop(reason)
	runtime.Goexit()
}

func (m *Machine) isHalted() bool {
	select {
	case <-m.halted:
		return true
	default:
		return false
	}
}

// In implements the hardware.Ports interface.
func (m *Machine) In(port uint16) uint8 {
	if m.isHalted() {
		runtime.Goexit()
	}
	if d, ok := m.bus[port]; ok {
		return d.read(port)
	}
	return 0xff
}

// Out implements the hardware.Ports interface.
func (m *Machine) Out(port uint16, data uint8) {
	if m.isHalted() {
		runtime.Goexit()
	}
	if d, ok := m.bus[port]; ok {
		d.write(port, uint16(data), false)
		return
	}
	logger.Logf(logger.Allow, "pc", "write to unmapped port %#04x (%#02x)", port, data)
}

// OutW implements the hardware.Ports interface.
func (m *Machine) OutW(port uint16, data uint16) {
	if m.isHalted() {
		runtime.Goexit()
	}
	if d, ok := m.bus[port]; ok {
		d.write(port, data, true)
		return
	}
	logger.Logf(logger.Allow, "pc", "word write to unmapped port %#04x (%#04x)", port, data)
}

// Peek implements the hardware.TextBuffer interface.
func (m *Machine) Peek(idx int) uint16 {
	return m.Text.Peek(idx)
}

// Poke implements the hardware.TextBuffer interface.
func (m *Machine) Poke(idx int, v uint16) {
	m.Text.Poke(idx, v)
}

// Idle returns true if the last n polls of the keyboard status found nothing
// to read. The guest is then waiting for a key.
func (m *Machine) Idle(n int) bool {
	return m.PS2.idle(n)
}

// power is the ACPI power port
type power struct {
	m *Machine
}

func (p *power) read(_ uint16) uint8 {
	return 0x00
}

func (p *power) write(_ uint16, data uint16, word bool) {
	if word && data == ports.PowerOff {
		p.m.halt(HaltPowerOff)
	}
	logger.Logf(logger.Allow, "pc", "ignored power port value %#04x", data)
}
