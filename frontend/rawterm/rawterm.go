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

package rawterm

import (
	"bufio"
	"io"
	"os"
	"time"

	"github.com/jetsetilly/pcconsole/curated"
	"github.com/jetsetilly/pcconsole/frontend"
	"github.com/jetsetilly/pcconsole/frontend/ansi"
	"github.com/jetsetilly/pcconsole/hardware/pc"
	"github.com/jetsetilly/pcconsole/keyboard"
	"github.com/jetsetilly/pcconsole/logger"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// RefreshRate is how often the screen is checked for changes.
const RefreshRate = 20 * time.Millisecond

// ASCII codes with special meaning
const (
	keyInterrupt = 3
	keyEsc       = 27
	keyDelete    = 127
)

// Terminal implements the frontend.Frontend interface.
type Terminal struct {
	input  *os.File
	output *bufio.Writer

	canAttr unix.Termios
	rawAttr unix.Termios
	isRaw   bool

	// bytes read from the input. the reading goroutine is started on the
	// first call to Run() and lives until the program ends
	keys chan byte

	// what was last drawn. the screen is only redrawn when either changes
	generation uint64
	cursor     int
	drawn      bool
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type.
func NewTerminal(input *os.File, output io.Writer) *Terminal {
	return &Terminal{
		input:  input,
		output: bufio.NewWriter(output),
	}
}

// Initialise implements the frontend.Frontend interface. The input must be
// a terminal.
func (trm *Terminal) Initialise() error {
	if !term.IsTerminal(int(trm.input.Fd())) {
		return curated.Errorf(frontend.NotATerminal, trm.input.Name())
	}

	if err := termios.Tcgetattr(trm.input.Fd(), &trm.canAttr); err != nil {
		return curated.Errorf(frontend.FrontendError, err)
	}
	trm.rawAttr = trm.canAttr
	termios.Cfmakeraw(&trm.rawAttr)

	if err := termios.Tcsetattr(trm.input.Fd(), termios.TCSAFLUSH, &trm.rawAttr); err != nil {
		return curated.Errorf(frontend.FrontendError, err)
	}
	trm.isRaw = true

	trm.output.WriteString(ansi.Reset + ansi.ClearScreen)
	return trm.output.Flush()
}

// CleanUp implements the frontend.Frontend interface. The terminal is
// returned to the mode it was in before Initialise().
func (trm *Terminal) CleanUp() {
	if !trm.isRaw {
		return
	}
	trm.output.WriteString(ansi.Reset + ansi.ShowCursor + ansi.MoveCursor(0, pc.Rows) + "\r\n")
	_ = trm.output.Flush()

	if err := termios.Tcsetattr(trm.input.Fd(), termios.TCSANOW, &trm.canAttr); err != nil {
		logger.Log(logger.Allow, "rawterm", err)
	}
	trm.isRaw = false
}

// Run implements the frontend.Frontend interface.
func (trm *Terminal) Run(m *pc.Machine) (pc.HaltReason, error) {
	if trm.keys == nil {
		trm.keys = make(chan byte, 64)
		go func() {
			if err := readKeys(trm.input, trm.keys); err != nil {
				logger.Log(logger.Allow, "rawterm", err)
			}
		}()
	}

	ticker := time.NewTicker(RefreshRate)
	defer ticker.Stop()

	typist := frontend.NewTypist(m.PS2)
	trm.drawn = false
	trm.draw(m)

	for {
		select {
		case <-m.Halted():
			trm.draw(m)
			return m.Reason(), nil

		case b, ok := <-trm.keys:
			if !ok || b == keyInterrupt {
				return pc.Running, curated.Errorf(frontend.UserQuit)
			}
			if err := typist.Type(b); err != nil {
				logger.Log(logger.Allow, "rawterm", err)
			}

		case <-ticker.C:
			typist.Flush()
			trm.draw(m)
		}
	}
}

func (trm *Terminal) draw(m *pc.Machine) {
	gen := m.Text.Generation()
	cursor := m.CRTC.Cursor()
	if trm.drawn && gen == trm.generation && cursor == trm.cursor {
		return
	}
	trm.drawn = true
	trm.generation = gen
	trm.cursor = cursor

	render(trm.output, m.Text.Snapshot(), cursor)
	if err := trm.output.Flush(); err != nil {
		logger.Log(logger.Allow, "rawterm", err)
	}
}

// readKeys reads bytes from the reader and sends them to the channel. The
// channel is closed when the reader ends. The escape sequences for the up
// and down cursor keys are sent as keyboard.KeyUp and keyboard.KeyDown,
// other escape sequences are dropped. Carriage return is sent as newline
// and delete as backspace.
func readKeys(r io.Reader, keys chan<- byte) error {
	defer close(keys)

	br := bufio.NewReader(r)
	for {
		b, err := br.ReadByte()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		switch b {
		case '\r':
			b = '\n'
		case keyDelete:
			b = '\b'
		case keyEsc:
			// a lone escape is the escape key. an escape followed
			// immediately by more bytes is the start of a sequence
			if br.Buffered() > 0 {
				key, err := readSequence(br)
				if err != nil {
					return err
				}
				if key == 0 {
					continue // for loop
				}
				b = key
			}
		}

		keys <- b
	}
}

// readSequence consumes the rest of an escape sequence. the escape byte has
// already been read. returns the key for the cursor up and down sequences
// and zero for everything else
func readSequence(br *bufio.Reader) (uint8, error) {
	b, err := br.ReadByte()
	if err != nil {
		return 0, err
	}

	// two byte sequences (eg. alt+key) and SS3 sequences
	if b != '[' {
		if b == 'O' && br.Buffered() > 0 {
			b, err = br.ReadByte()
			return cursorKey(b), err
		}
		return 0, nil
	}

	// CSI sequences end with a byte in the range 0x40 to 0x7e. the cursor
	// keys have no parameters
	params := false
	for {
		b, err = br.ReadByte()
		if err != nil {
			return 0, err
		}
		if b >= 0x40 && b <= 0x7e {
			if params {
				return 0, nil
			}
			return cursorKey(b), nil
		}
		params = true
	}
}

func cursorKey(final byte) uint8 {
	switch final {
	case 'A':
		return keyboard.KeyUp
	case 'B':
		return keyboard.KeyDown
	}
	return 0
}
