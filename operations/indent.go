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
	"log"

	"jot/lists"
	gott "jot/types"
)

// Indent indents or outdents Multiplier rows starting at the cursor row.
// With AtCursor, a single row that is not a list item is indented at the
// cursor instead of at the start of the row.
type Indent struct {
	operation
	Increase bool
	AtCursor bool
}

func (op *Indent) Perform(e gott.Editor, multiplier int) gott.Operation {
	op.init(e, multiplier)
	first, sel := e.IndentSelection(op.Multiplier, op.AtCursor)
	edits := lists.Indent(sel, op.Increase)
	log.Printf("Indenting %d row(s) at row %d (increase=%t)", len(edits), first, op.Increase)

	cursor := op.Cursor
	inverses := make([]gott.Operation, 0, len(edits))
	for i, edit := range edits {
		if edit.Empty() {
			continue
		}
		at := gott.Point{Row: first + i, Col: edit.Start}
		deleted, _ := e.ReplaceText(at, edit.End-edit.Start, edit.Text)
		if at.Row == cursor.Row && cursor.Col >= edit.Start {
			cursor.Col += edit.Delta()
			if cursor.Col < edit.Start {
				cursor.Col = edit.Start
			}
		}
		inverse := &Replace{At: at, Count: runeCount(edit.Text), Text: deleted}
		inverse.copyForUndo(&op.operation)
		inverses = append([]gott.Operation{inverse}, inverses...)
	}
	e.SetCursor(cursor)
	if len(inverses) == 0 {
		return nil
	}
	inverse := &Sequence{Operations: inverses}
	inverse.copyForUndo(&op.operation)
	inverse.Multiplier = 1
	return inverse
}
