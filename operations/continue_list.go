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
	"jot/lists"
	gott "jot/types"
)

// ContinueList applies a list edit to the cursor row, either starting the
// next item of a list or ending it, and leaves the cursor after the
// inserted text.
type ContinueList struct {
	operation
	Edit lists.Edit
}

func (op *ContinueList) Perform(e gott.Editor, multiplier int) gott.Operation {
	op.init(e, multiplier)
	at := gott.Point{Row: op.Cursor.Row, Col: op.Edit.Start}
	deleted, end := e.ReplaceText(at, op.Edit.End-op.Edit.Start, op.Edit.Text)
	e.SetCursor(end)
	if op.Edit.Scroll {
		e.Scroll()
	}
	inverse := &Replace{
		At:    at,
		Count: runeCount(op.Edit.Text),
		Text:  deleted,
	}
	inverse.copyForUndo(&op.operation)
	return inverse
}
