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

	gott "jot/types"
)

// DeleteCharacter deletes characters at the cursor. As an inverse, it also
// deletes row breaks and can remove the row that it empties.
type DeleteCharacter struct {
	operation
	FinallyDeleteRow bool
}

func (op *DeleteCharacter) Perform(e gott.Editor, multiplier int) gott.Operation {
	op.init(e, multiplier)
	log.Printf("Deleting %d character(s) at row %d", op.Multiplier, op.Cursor.Row)
	deletedText := e.DeleteCharactersAtCursor(op.Multiplier, op.Undo, op.FinallyDeleteRow)
	if deletedText == "" {
		return nil
	}
	inverse := &Insert{
		Position: gott.InsertAtCursor,
		Text:     deletedText,
	}
	inverse.copyForUndo(&op.operation)
	inverse.Multiplier = 1
	return inverse
}

// DeleteRow deletes rows starting at the cursor row and puts them on the pasteboard.
type DeleteRow struct {
	operation
}

func (op *DeleteRow) Perform(e gott.Editor, multiplier int) gott.Operation {
	op.init(e, multiplier)
	log.Printf("Deleting %d row(s) at row %d", op.Multiplier, op.Cursor.Row)
	b := e.GetBuffer()
	if op.Cursor.Row >= b.GetRowCount() {
		return nil
	}
	deletedText := e.DeleteRowsAtCursor(op.Multiplier)
	e.SetPasteBoard(deletedText+"\n", gott.PasteNewLine)

	inverse := &Insert{Position: gott.InsertAtCursor}
	inverse.copyForUndo(&op.operation)
	inverse.Multiplier = 1
	rows := b.GetRowCount()
	switch {
	case rows == 0:
		inverse.Cursor = gott.Point{}
		inverse.Text = deletedText
	case op.Cursor.Row < rows:
		inverse.Cursor.Col = 0
		inverse.Text = deletedText + "\n"
	default:
		// the last rows were deleted, so restore them after the new last row
		inverse.Cursor = gott.Point{Row: rows - 1, Col: b.GetRowLength(rows - 1)}
		inverse.Text = "\n" + deletedText
	}
	return inverse
}
