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

package lists

import (
	"strings"
	"unicode/utf8"
)

// Indent units.
const (
	ListIndent = "  "
	TextIndent = "\t"
)

// A Selection is the set of whole lines touched by a cursor or selection.
type Selection struct {
	Lines  []string // line texts, top to bottom
	Column int      // cursor column, or selection start column, on Lines[0]
}

// IndentUnit returns the whitespace added or removed for one level of
// indentation on line.
func IndentUnit(line string) string {
	if IsListItem(line) {
		return ListIndent
	}
	return TextIndent
}

// Indent computes one edit per line of sel that indents (increase) or
// outdents it by one unit. Lines that are left alone get an empty edit.
//
// A single line that is not a list item is indented at sel.Column, so Tab
// in the middle of text inserts a tab there; list items and lines of a
// multi-line selection are indented at column 0. Blank lines in a
// multi-line selection are skipped.
func Indent(sel Selection, increase bool) []Edit {
	edits := make([]Edit, len(sel.Lines))
	multiLine := len(sel.Lines) > 1
	for i, line := range sel.Lines {
		if multiLine && strings.TrimSpace(line) == "" {
			continue
		}
		listItem := IsListItem(line)
		unit := IndentUnit(line)
		switch {
		case !increase:
			if strings.HasPrefix(line, unit) {
				edits[i] = Edit{Start: 0, End: utf8.RuneCountInString(unit)}
			}
		case multiLine || listItem:
			edits[i] = Edit{Text: unit}
		default:
			col := clip(sel.Column, 0, utf8.RuneCountInString(line))
			edits[i] = Edit{Start: col, End: col, Text: unit}
		}
	}
	return edits
}
