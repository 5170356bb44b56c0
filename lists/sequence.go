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
	"math"
	"strconv"
)

// Step returns the index one after (direction > 0) or one before
// (direction < 0) index in an ordered list. Numbers start at 1 and
// letters run from a to z in either case; stepping past either end
// reports false.
func Step(index string, direction int) (string, bool) {
	if index == "" || direction == 0 {
		return "", false
	}
	if direction > 0 {
		direction = 1
	} else {
		direction = -1
	}
	if isDigits(index) {
		n, err := strconv.ParseInt(index, 10, 64)
		if err != nil || n == math.MaxInt64 && direction > 0 {
			return "", false
		}
		n += int64(direction)
		if n < 1 {
			return "", false
		}
		return strconv.FormatInt(n, 10), true
	}
	if len(index) != 1 || !isLetter(index[0]) {
		return "", false
	}
	c := index[0]
	switch {
	case direction > 0 && (c == 'z' || c == 'Z'):
		return "", false
	case direction < 0 && (c == 'a' || c == 'A'):
		return "", false
	case direction > 0:
		return string(rune(c + 1)), true
	default:
		return string(rune(c - 1)), true
	}
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
