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

package keyboard

// Scancodes with a meaning beyond the character they produce.
const (
	Escape       uint8 = 0x01
	Backspace    uint8 = 0x0e
	Tab          uint8 = 0x0f
	Enter        uint8 = 0x1c
	LeftShift    uint8 = 0x2a
	RightShift   uint8 = 0x36
	Space        uint8 = 0x39
	LeftShiftUp  uint8 = LeftShift | BreakBit
	RightShiftUp uint8 = RightShift | BreakBit
)

// BreakBit is set in the scancode sent when a key is released.
const BreakBit uint8 = 0x80

// Extended is sent before the make and break codes of the keys added to the
// original keyboard layout, such as the cursor keys.
const Extended uint8 = 0xe0

// Make codes that follow the Extended prefix.
const (
	CursorUp   uint8 = 0x48
	CursorDown uint8 = 0x50
)

// Characters returned by Reader.Read() for keys that have no ASCII
// character but are still of interest to the line editor. They are outside
// the ASCII range.
const (
	KeyUp   uint8 = 0x80
	KeyDown uint8 = 0x81
)

// make codes to ASCII. a zero entry means the key has no character
var scancodeMap = [128]uint8{
	0, 27, '1', '2', '3', '4', '5', '6', '7', '8', '9', '0', '-', '=', '\b',
	'\t', 'q', 'w', 'e', 'r', 't', 'y', 'u', 'i', 'o', 'p', '[', ']', '\n',
	0, 'a', 's', 'd', 'f', 'g', 'h', 'j', 'k', 'l', ';', '\'', '`',
	0, '\\', 'z', 'x', 'c', 'v', 'b', 'n', 'm', ',', '.', '/', 0,
	'*', 0, ' ',
}

// used in place of scancodeMap while a shift key is held
var shiftedMap = [128]uint8{
	0, 27, '!', '@', '#', '$', '%', '^', '&', '*', '(', ')', '_', '+', '\b',
	'\t', 'Q', 'W', 'E', 'R', 'T', 'Y', 'U', 'I', 'O', 'P', '{', '}', '\n',
	0, 'A', 'S', 'D', 'F', 'G', 'H', 'J', 'K', 'L', ':', '"', '~',
	0, '|', 'Z', 'X', 'C', 'V', 'B', 'N', 'M', '<', '>', '?', 0,
	'*', 0, ' ',
}

// Lookup returns the character for the make code. Returns zero if the key
// has no character or if code is a break code.
func Lookup(code uint8, shifted bool) uint8 {
	if code&BreakBit == BreakBit {
		return 0
	}
	if shifted {
		return shiftedMap[code]
	}
	return scancodeMap[code]
}

// Encode returns the make code that produces the character and whether a
// shift key must be held. The ok value is false if no key produces the
// character. KeyUp and KeyDown are not encoded, use Sequence() for those.
func Encode(ch uint8) (code uint8, shifted bool, ok bool) {
	if ch == 0 {
		return 0, false, false
	}
	for i, c := range scancodeMap {
		if c == ch {
			return uint8(i), false, true
		}
	}
	for i, c := range shiftedMap {
		if c == ch {
			return uint8(i), true, true
		}
	}
	return 0, false, false
}

// Sequence returns the scancodes sent when the key for the character is
// pressed and released. Shifted characters are wrapped in the codes for the
// left shift key. KeyUp and KeyDown are sent with the Extended prefix.
func Sequence(ch uint8) ([]uint8, bool) {
	switch ch {
	case KeyUp:
		return []uint8{Extended, CursorUp, Extended, CursorUp | BreakBit}, true
	case KeyDown:
		return []uint8{Extended, CursorDown, Extended, CursorDown | BreakBit}, true
	}

	code, shifted, ok := Encode(ch)
	if !ok {
		return nil, false
	}

	codes := make([]uint8, 0, 4)
	if shifted {
		codes = append(codes, LeftShift)
	}
	codes = append(codes, code, code|BreakBit)
	if shifted {
		codes = append(codes, LeftShiftUp)
	}
	return codes, true
}
