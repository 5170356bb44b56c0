//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package editor

import (
	"github.com/mattn/go-runewidth"

	gott "jot/types"
)

// A row of text in the editor
type Row struct {
	Text   []rune
	Colors []gott.Color
}

// Tabs are kept as tabs; they are expanded when the row is drawn.
func NewRow(text string) *Row {
	r := &Row{}
	r.setText([]rune(text))
	return r
}

func (r *Row) setText(text []rune) {
	r.Text = text
	r.Colors = make([]gott.Color, len(r.Text))
	for j := range r.Colors {
		r.Colors[j] = gott.ColorWhite
	}
}

func (r *Row) String() string {
	return string(r.Text)
}

func (r *Row) Length() int {
	return len(r.Text)
}

// returns the number of screen cells taken by the first col characters
func (r *Row) DisplayColumn(col int, tabStop int) int {
	cells := 0
	for i, c := range r.Text {
		if i >= col {
			break
		}
		cells += cellWidth(c, cells, tabStop)
	}
	if col > len(r.Text) {
		cells += col - len(r.Text)
	}
	return cells
}

// cellWidth is the number of cells c takes when drawn at cell position at.
func cellWidth(c rune, at int, tabStop int) int {
	if c == '\t' {
		return tabStop - at%tabStop
	}
	if w := runewidth.RuneWidth(c); w > 0 {
		return w
	}
	return 1
}

func (r *Row) InsertChar(col int, c rune) {
	r.InsertText(col, []rune{c})
}

func (r *Row) InsertText(col int, text []rune) {
	col = clipToRange(col, 0, len(r.Text))
	line := make([]rune, 0, len(r.Text)+len(text))
	line = append(line, r.Text[0:col]...)
	line = append(line, text...)
	line = append(line, r.Text[col:]...)
	r.setText(line)
}

// delete character at col and return the deleted character
func (r *Row) DeleteChar(col int) rune {
	if len(r.Text) == 0 {
		return 0
	}
	if col > len(r.Text)-1 {
		col = len(r.Text) - 1
	}
	c := r.Text[col]
	r.setText(append(r.Text[0:col:col], r.Text[col+1:]...))
	return c
}

// splits row at col, return a new row containing the remaining text.
func (r *Row) Split(col int) *Row {
	if col < len(r.Text) {
		after := string(r.Text[col:])
		r.setText(r.Text[0:col:col])
		return NewRow(after)
	}
	return NewRow("")
}

// joins rows by appending the passed-in row to the current row
func (r *Row) Join(other *Row) {
	line := make([]rune, 0, len(r.Text)+len(other.Text))
	line = append(line, r.Text...)
	r.setText(append(line, other.Text...))
}

// returns the text after a specified column
func (r *Row) TextAfter(col int) string {
	if col < len(r.Text) {
		return string(r.Text[col:])
	}
	return ""
}

// returns the text before a specified column
func (r *Row) TextBefore(col int) string {
	return string(r.Text[0:clipToRange(col, 0, len(r.Text))])
}

func clipToRange(i, min, max int) int {
	if i > max {
		i = max
	}
	if i < min {
		i = min
	}
	return i
}
