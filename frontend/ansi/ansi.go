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

// Package ansi builds ANSI control sequences for drawing the text buffer on
// a terminal. The colour attribute of a VGA text cell is translated to the
// nearest ANSI colours with Attribute().
package ansi

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/pcconsole/curated"
)

// Sentinal errors.
const (
	UnknownColor     = "ansi: unknown color (%s)"
	UnknownAttribute = "ansi: unknown attribute (%s)"
)

// ansi colour numbers
var colors = map[string]int{
	"BLACK":   0,
	"RED":     1,
	"GREEN":   2,
	"YELLOW":  3,
	"BLUE":    4,
	"MAGENTA": 5,
	"CYAN":    6,
	"WHITE":   7,
	"NORMAL":  9,
}

// ansi targets. the colour number is added to the target
const (
	targetPen         = 30
	targetPaper       = 40
	targetBrightPen   = 90
	targetBrightPaper = 100
)

var attributes = map[string]int{
	"BOLD":      1,
	"UNDERLINE": 4,
	"INVERSE":   7,
	"STRIKE":    9,
}

// ColorBuild creates the SGR sequence for the pen and paper colours and the
// text attribute. Any of the strings may be empty. Names are case
// insensitive.
func ColorBuild(pen, paper, attribute string, brightPen, brightPaper bool) (string, error) {
	var params []string

	if pen != "" {
		c, ok := colors[strings.ToUpper(pen)]
		if !ok {
			return "", curated.Errorf(UnknownColor, pen)
		}
		t := targetPen
		if brightPen {
			t = targetBrightPen
		}
		params = append(params, fmt.Sprintf("%d", t+c))
	}

	if paper != "" {
		c, ok := colors[strings.ToUpper(paper)]
		if !ok {
			return "", curated.Errorf(UnknownColor, paper)
		}
		t := targetPaper
		if brightPaper {
			t = targetBrightPaper
		}
		params = append(params, fmt.Sprintf("%d", t+c))
	}

	if attribute != "" && strings.ToUpper(attribute) != "NORMAL" {
		a, ok := attributes[strings.ToUpper(attribute)]
		if !ok {
			return "", curated.Errorf(UnknownAttribute, attribute)
		}
		params = append(params, fmt.Sprintf("%d", a))
	}

	return fmt.Sprintf("\033[%sm", strings.Join(params, ";")), nil
}

// VGA colours in attribute order. The bright versions use the same name.
var VGAColors = [8]string{
	"black", "blue", "green", "cyan", "red", "magenta", "yellow", "white",
}

// Attribute returns the SGR sequence for a VGA text attribute. The low
// nibble is the foreground colour and the high nibble the background. Bit 3
// of each nibble selects the bright version of the colour.
func Attribute(attr uint8) string {
	fg := attr & 0x0f
	bg := attr >> 4 & 0x0f
	s, _ := ColorBuild(VGAColors[fg&0x07], VGAColors[bg&0x07], "", fg&0x08 == 0x08, bg&0x08 == 0x08)
	return s
}

// Reset is the SGR sequence that returns to the default pen and paper.
const Reset = "\033[0m"

// ClearScreen is the CSI sequence to clear the whole screen.
const ClearScreen = "\033[2J"

// ClearLine is the CSI sequence to clear the entire of the current line.
const ClearLine = "\033[2K"

// HideCursor and ShowCursor change the visibility of the terminal cursor.
const (
	HideCursor = "\033[?25l"
	ShowCursor = "\033[?25h"
)

// MoveCursor returns the CSI sequence to move the cursor to the column and
// row. Both are counted from zero.
func MoveCursor(col, row int) string {
	return fmt.Sprintf("\033[%d;%dH", row+1, col+1)
}
