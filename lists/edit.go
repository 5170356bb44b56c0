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
	"unicode/utf8"
)

// An Edit replaces the runes [Start, End) of a line with Text.
// Text may contain newlines, in which case applying the edit splits the line.
type Edit struct {
	Start  int
	End    int
	Text   string
	Scroll bool // keep the cursor visible after applying the edit
}

// Empty reports whether applying e would leave the line unchanged.
func (e Edit) Empty() bool {
	return e.Start == e.End && e.Text == ""
}

// Apply returns line with e applied.
func (e Edit) Apply(line string) string {
	runes := []rune(line)
	start := clip(e.Start, 0, len(runes))
	end := clip(e.End, start, len(runes))
	return string(runes[:start]) + e.Text + string(runes[end:])
}

// Delta is the change in rune count that applying e causes.
func (e Edit) Delta() int {
	return utf8.RuneCountInString(e.Text) - (e.End - e.Start)
}

func clip(i, min, max int) int {
	if i > max {
		i = max
	}
	if i < min {
		i = min
	}
	return i
}
