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
	gott "jot/types"
)

// JoinLine joins the cursor row with the rows below it.
type JoinLine struct {
	operation
}

func (op *JoinLine) Perform(e gott.Editor, multiplier int) gott.Operation {
	op.init(e, multiplier)
	cursors := e.JoinRow(op.Multiplier)
	if len(cursors) == 0 {
		return nil
	}
	// rows are split again from the last join to the first
	operations := make([]gott.Operation, 0, len(cursors))
	for i := len(cursors) - 1; i >= 0; i-- {
		split := &Replace{At: cursors[i], Text: "\n"}
		split.Undo = true
		split.Cursor = op.Cursor
		operations = append(operations, split)
	}
	inverse := &Sequence{
		Operations: operations,
	}
	inverse.copyForUndo(&op.operation)
	inverse.Multiplier = 1
	return inverse
}
