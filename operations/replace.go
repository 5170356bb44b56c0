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

// Replace deletes Count characters at At, counting row breaks as one
// character each, and inserts Text in their place. With AtCursor, At is
// taken from the cursor each time the operation is performed. The cursor
// stays where it is unless Advance moves it past the inserted text.
type Replace struct {
	operation
	At       gott.Point
	AtCursor bool
	Advance  bool
	Count    int
	Text     string
}

func (op *Replace) Perform(e gott.Editor, multiplier int) gott.Operation {
	op.init(e, multiplier)
	if op.AtCursor && !op.Undo {
		op.At = op.Cursor
	}
	deleted, end := e.ReplaceText(op.At, op.Count, op.Text)
	if op.Advance && !op.Undo {
		e.SetCursor(end)
	} else {
		e.SetCursor(op.Cursor)
	}
	inverse := &Replace{
		At:    op.At,
		Count: runeCount(op.Text),
		Text:  deleted,
	}
	inverse.copyForUndo(&op.operation)
	return inverse
}

// ReplaceCharacters returns a Replace that overwrites count characters at
// the cursor with c, stopping at the end of the row.
func ReplaceCharacters(e gott.Editor, c rune, count int) *Replace {
	cursor := e.GetCursor()
	available := e.GetBuffer().GetRowLength(cursor.Row) - cursor.Col
	if count > available {
		count = available
	}
	if count < 0 {
		count = 0
	}
	return &Replace{
		AtCursor: true,
		Count:    count,
		Text:     strings.Repeat(string(c), count),
	}
}
