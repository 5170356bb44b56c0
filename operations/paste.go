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
package operations

import (
	"strings"

	gott "jot/types"
)

// Paste inserts the pasteboard after the cursor, or on a new row below the
// cursor row when the pasteboard holds whole rows.
type Paste struct {
	operation
}

func (op *Paste) Perform(e gott.Editor, multiplier int) gott.Operation {
	e.RefreshPasteBoard()
	text := e.GetPasteText()
	if text == "" {
		return nil
	}
	mode := e.GetPasteMode()

	op.init(e, multiplier)

	text = strings.Repeat(text, op.Multiplier)
	b := e.GetBuffer()
	rows := b.GetRowCount()
	at := op.Cursor
	if mode == gott.PasteNewLine {
		at = gott.Point{Row: op.Cursor.Row + 1}
		switch {
		case rows == 0:
			at = gott.Point{}
			text = strings.TrimSuffix(text, "\n")
		case at.Row >= rows:
			at = gott.Point{Row: rows - 1, Col: b.GetRowLength(rows - 1)}
			text = "\n" + strings.TrimSuffix(text, "\n")
		}
	} else if b.GetRowLength(at.Row) > 0 {
		at.Col++
	}
	_, end := e.ReplaceText(at, 0, text)
	if mode == gott.PasteNewLine {
		e.SetCursor(gott.Point{Row: clipToRange(op.Cursor.Row+1, 0, b.GetRowCount()-1)})
	} else {
		e.SetCursor(gott.Point{Row: end.Row, Col: clipToRange(end.Col-1, 0, end.Col)})
	}

	inverse := &Replace{At: at, Count: runeCount(text)}
	inverse.copyForUndo(&op.operation)
	return inverse
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
