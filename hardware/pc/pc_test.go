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

package pc_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/pcconsole/hardware"
	"github.com/jetsetilly/pcconsole/hardware/pc"
	"github.com/jetsetilly/pcconsole/hardware/ports"
	"github.com/jetsetilly/pcconsole/test"
)

func waitHalt(t *testing.T, m *pc.Machine) {
	t.Helper()
	select {
	case <-m.Halted():
	case <-time.After(2 * time.Second):
		t.Fatalf("machine did not halt")
	}
}

func TestUnmappedPort(t *testing.T) {
	m := pc.NewMachine()
	test.ExpectEquality(t, m.In(0x80), uint8(0xff))
	m.Out(0x80, 0x01)
	m.OutW(0x80, 0x0102)
	test.ExpectEquality(t, m.Reason(), pc.Running)
}

func TestKeyboardController(t *testing.T) {
	m := pc.NewMachine()

	test.ExpectEquality(t, m.In(ports.KeyboardStatus)&ports.StatusOutputFull, uint8(0))
	test.ExpectEquality(t, m.Idle(1), true)

	test.ExpectSuccess(t, m.PS2.Press(0x1e))
	test.ExpectSuccess(t, m.PS2.Press(0x9e))
	test.ExpectEquality(t, m.Idle(1), false)

	test.ExpectEquality(t, m.In(ports.KeyboardStatus)&ports.StatusOutputFull, ports.StatusOutputFull)
	test.ExpectEquality(t, m.In(ports.KeyboardData), uint8(0x1e))
	test.ExpectEquality(t, m.In(ports.KeyboardData), uint8(0x9e))
	test.ExpectEquality(t, m.PS2.Pending(), 0)

	// reading the data port with nothing queued repeats the last byte
	test.ExpectEquality(t, m.In(ports.KeyboardData), uint8(0x9e))
}

func TestKeyboardQueueFull(t *testing.T) {
	m := pc.NewMachine()
	for i := 0; i < pc.QueueSize; i++ {
		test.ExpectSuccess(t, m.PS2.Press(uint8(i)))
	}
	test.ExpectFailure(t, m.PS2.Press(0xff))
	test.ExpectEquality(t, m.PS2.Pending(), pc.QueueSize)
	test.ExpectEquality(t, m.In(ports.KeyboardData), uint8(0))
}

func TestStatusWaitsForKey(t *testing.T) {
	m := pc.NewMachine()

	got := make(chan uint8)
	m.Start(func(hw hardware.Access) {
		for hw.In(ports.KeyboardStatus)&ports.StatusOutputFull == 0 {
		}
		got <- hw.In(ports.KeyboardData)
	})

	time.Sleep(3 * pc.PollInterval)
	test.ExpectEquality(t, m.Idle(2), true)
	m.PS2.Press(0x1c)

	select {
	case c := <-got:
		test.ExpectEquality(t, c, uint8(0x1c))
	case <-time.After(2 * time.Second):
		t.Fatalf("guest did not read scancode")
	}

	waitHalt(t, m)
	test.ExpectEquality(t, m.Reason(), pc.HaltReturned)
}

func TestCRTC(t *testing.T) {
	m := pc.NewMachine()

	m.Out(ports.CRTCIndex, ports.CursorLocationLow)
	m.Out(ports.CRTCData, 0xd0)
	m.Out(ports.CRTCIndex, ports.CursorLocationHigh)
	m.Out(ports.CRTCData, 0x07)
	test.ExpectEquality(t, m.CRTC.Cursor(), 0x07d0)

	m.Out(ports.CRTCIndex, ports.CursorLocationLow)
	test.ExpectEquality(t, m.In(ports.CRTCIndex), ports.CursorLocationLow)
	test.ExpectEquality(t, m.In(ports.CRTCData), uint8(0xd0))

	// word write sets the index and the register in one go
	m.OutW(ports.CRTCIndex, 0x010f)
	test.ExpectEquality(t, m.CRTC.Cursor(), 0x0701)
}

func TestTextMemory(t *testing.T) {
	m := pc.NewMachine()

	g := m.Text.Generation()
	m.Poke(0, 0x0f41)
	m.Poke(pc.Columns*pc.Rows, 0x0f42)
	m.Poke(-1, 0x0f42)
	test.ExpectEquality(t, m.Peek(0), uint16(0x0f41))
	test.ExpectEquality(t, m.Peek(pc.Columns*pc.Rows), uint16(0))
	test.ExpectInequality(t, m.Text.Generation(), g)

	s := m.Text.Snapshot()
	test.ExpectEquality(t, len(s), pc.Columns*pc.Rows)
	test.ExpectEquality(t, s[0], uint16(0x0f41))

	// changing the snapshot does not change the memory
	s[0] = 0
	test.ExpectEquality(t, m.Peek(0), uint16(0x0f41))

	// writing the same value is not a change
	g = m.Text.Generation()
	m.Poke(0, 0x0f41)
	test.ExpectEquality(t, m.Text.Generation(), g)
}

func TestReset(t *testing.T) {
	m := pc.NewMachine()

	continued := make(chan bool, 1)
	m.Start(func(hw hardware.Access) {
		hw.Out(ports.KeyboardCommand, ports.CommandReset)
		continued <- true
	})

	waitHalt(t, m)
	test.ExpectEquality(t, m.Reason(), pc.HaltReset)

	select {
	case <-continued:
		t.Errorf("guest continued after reset")
	default:
	}
}

func TestPowerOff(t *testing.T) {
	m := pc.NewMachine()

	continued := make(chan bool, 1)
	m.Start(func(hw hardware.Access) {
		// a byte write of the low byte is not enough
		hw.Out(ports.Power, 0x00)
		hw.OutW(ports.Power, ports.PowerOff)
		continued <- true
	})

	waitHalt(t, m)
	test.ExpectEquality(t, m.Reason(), pc.HaltPowerOff)

	select {
	case <-continued:
		t.Errorf("guest continued after power off")
	default:
	}
}

func TestStop(t *testing.T) {
	m := pc.NewMachine()

	ended := make(chan bool)
	m.Start(func(hw hardware.Access) {
		defer close(ended)
		for {
			hw.In(ports.KeyboardStatus)
		}
	})

	m.Stop(pc.HaltStopped)
	m.Stop(pc.HaltReset)
	waitHalt(t, m)
	test.ExpectEquality(t, m.Reason(), pc.HaltStopped)

	select {
	case <-ended:
	case <-time.After(2 * time.Second):
		t.Fatalf("guest was not ended by stop")
	}
}
