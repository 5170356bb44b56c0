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
	"strings"

	gott "jot/types"
)

// A Buffer represents a note being edited
type Buffer struct {
	number      int
	name        string
	rows        []*Row
	fileName    string
	highlighted bool
	readOnly    bool
	cursor      gott.Point       // saved cursor while another buffer is selected
	offset      gott.Size        // saved display offset
	undo        []gott.Operation // inverses of the operations performed on this buffer
}

func NewBuffer() *Buffer {
	b := &Buffer{}
	b.rows = make([]*Row, 0)
	return b
}

func (b *Buffer) GetIndex() int {
	return b.number
}

func (b *Buffer) GetName() string {
	return b.name
}

func (b *Buffer) GetFileName() string {
	return b.fileName
}

func (b *Buffer) GetReadOnly() bool {
	return b.readOnly
}

func (b *Buffer) SetFileName(name string) {
	b.fileName = name
	b.name = name
}

func (b *Buffer) SetNameAndReadOnly(name string, readOnly bool) {
	b.name = name
	b.readOnly = readOnly
}

func (b *Buffer) LoadBytes(bytes []byte) {
	s := string(bytes)
	lines := strings.Split(s, "\n")
	b.rows = make([]*Row, 0, len(lines))
	for _, line := range lines {
		b.rows = append(b.rows, NewRow(line))
	}
	b.highlighted = false
}

func (b *Buffer) Bytes() []byte {
	var s strings.Builder
	for i, row := range b.rows {
		if i > 0 {
			s.WriteString("\n")
		}
		s.WriteString(row.String())
	}
	return []byte(s.String())
}

func (b *Buffer) GetRowCount() int {
	return len(b.rows)
}

func (b *Buffer) GetRowLength(i int) int {
	if i >= 0 && i < len(b.rows) {
		return b.rows[i].Length()
	}
	return 0
}

// RowText returns the text of a row, or "" for rows past the end.
func (b *Buffer) RowText(row int) string {
	if row >= 0 && row < len(b.rows) {
		return b.rows[row].String()
	}
	return ""
}

func (b *Buffer) TextAfter(row, col int) string {
	if row >= 0 && row < len(b.rows) {
		return b.rows[row].TextAfter(col)
	}
	return ""
}

func (b *Buffer) TextBefore(row, col int) string {
	if row >= 0 && row < len(b.rows) {
		return b.rows[row].TextBefore(col)
	}
	return ""
}

func (b *Buffer) InsertCharacter(row, col int, c rune) {
	b.highlighted = false
	if row < len(b.rows) {
		b.rows[row].InsertChar(col, c)
	}
}

// InsertText inserts text at row and col, splitting rows at newlines.
// It returns the position just after the inserted text.
func (b *Buffer) InsertText(row, col int, text string) gott.Point {
	b.highlighted = false
	for row >= len(b.rows) {
		b.rows = append(b.rows, NewRow(""))
	}
	col = clipToRange(col, 0, b.rows[row].Length())
	lines := strings.Split(text, "\n")
	tail := b.rows[row].Split(col)
	b.rows[row].InsertText(col, []rune(lines[0]))
	end := gott.Point{Row: row, Col: col + len([]rune(lines[0]))}
	for _, line := range lines[1:] {
		end.Row++
		b.insertRow(end.Row, NewRow(line))
		end.Col = len([]rune(line))
	}
	b.rows[end.Row].Join(tail)
	return end
}

func (b *Buffer) insertRow(i int, r *Row) {
	b.rows = append(b.rows, nil)
	copy(b.rows[i+1:], b.rows[i:])
	b.rows[i] = r
}

func (b *Buffer) DeleteRow(row int) {
	b.highlighted = false
	if row < len(b.rows) {
		b.rows = append(b.rows[0:row], b.rows[row+1:]...)
	}
}

// DeleteCharacters deletes count characters at row and col. When joinLines
// is set, deleting past the end of a row joins the next row to it and counts
// as deleting one character, a newline.
func (b *Buffer) DeleteCharacters(row int, col int, count int, joinLines bool) string {
	b.highlighted = false
	var deletedText strings.Builder
	if row >= b.GetRowCount() {
		return ""
	}
	for i := 0; i < count; i++ {
		if col < b.rows[row].Length() {
			c := b.rows[row].DeleteChar(col)
			deletedText.WriteRune(c)
		} else if joinLines && row < b.GetRowCount()-1 {
			// join next row to current row
			nextRow := b.rows[row+1]
			b.rows[row].Join(nextRow)
			// remove next row
			b.DeleteRow(row + 1)
			deletedText.WriteString("\n")
		}
	}
	return deletedText.String()
}

// draw text in an area defined by origin and size with a specified offset into the buffer
func (b *Buffer) Render(display gott.Display, origin gott.Point, size gott.Size, offset gott.Size, tabStop int) {
	if !b.highlighted {
		NewListHighlighter().Highlight(b)
		b.highlighted = true
	}
	for i := 0; i < size.Rows; i++ {
		y := origin.Row + i
		if i+offset.Rows >= len(b.rows) {
			display.SetCell(origin.Col, y, '~', gott.ColorWhite)
			continue
		}
		row := b.rows[i+offset.Rows]
		cells := 0
		for j, c := range row.Text {
			w := cellWidth(c, cells, tabStop)
			x := cells - offset.Cols
			cells += w
			if x < 0 {
				continue
			}
			if x+w > size.Cols {
				break
			}
			if c == '\t' {
				for k := 0; k < w; k++ {
					display.SetCell(origin.Col+x+k, y, ' ', row.Colors[j])
				}
			} else {
				display.SetCell(origin.Col+x, y, c, row.Colors[j])
			}
		}
	}
}
