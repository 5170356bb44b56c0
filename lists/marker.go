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
	"regexp"
	"strings"
)

// A bullet token and the text that starts the next item after it.
type bulletToken struct {
	Token        string
	Continuation string
}

// Order matters: "- " is a prefix of both checkbox tokens.
var bulletTokens = []bulletToken{
	{Token: "- [ ] ", Continuation: "- [ ] "},
	{Token: "- [x] ", Continuation: "- [ ] "},
	{Token: "- ", Continuation: "- "},
	{Token: "+ ", Continuation: "+ "},
	{Token: "* ", Continuation: "* "},
}

var (
	bulletPattern  = compileBulletPattern()
	orderedPattern = regexp.MustCompile(`^(\s*)([a-zA-Z]|[0-9]+)([.)])( +)`)
)

func compileBulletPattern() *regexp.Regexp {
	quoted := make([]string, 0, len(bulletTokens))
	for _, t := range bulletTokens {
		quoted = append(quoted, regexp.QuoteMeta(t.Token))
	}
	return regexp.MustCompile(`^(\s*)(` + strings.Join(quoted, "|") + `)`)
}

// Bullet is a bullet marker found at the start of a line.
type Bullet struct {
	Spacing string // leading whitespace
	Token   string // one of the bullet tokens, e.g. "- [x] "
}

// String returns the marker as it appears in the line.
func (b Bullet) String() string {
	return b.Spacing + b.Token
}

// Continuation returns the token that starts the item after b.
// Checked and unchecked boxes both continue as an unchecked box.
func (b Bullet) Continuation() string {
	for _, t := range bulletTokens {
		if t.Token == b.Token {
			return t.Continuation
		}
	}
	return b.Token
}

// Checked reports whether b is a ticked checkbox.
func (b Bullet) Checked() bool {
	return b.Token == "- [x] "
}

// Ordered is a numbered or lettered marker found at the start of a line.
type Ordered struct {
	Spacing   string // leading whitespace
	Index     string // digits or a single letter
	Delimiter string // "." or ")"
	Trailing  string // the run of spaces after the delimiter
}

// String returns the marker as it appears in the line.
func (o Ordered) String() string {
	return o.Spacing + o.Index + o.Delimiter + o.Trailing
}

// withIndex formats a marker with the same spacing and delimiter as o,
// followed by a single space.
func (o Ordered) withIndex(index string) string {
	return o.Spacing + index + o.Delimiter + " "
}

// MatchBullet reports the bullet marker at the start of line, if any.
func MatchBullet(line string) (Bullet, bool) {
	m := bulletPattern.FindStringSubmatch(line)
	if m == nil {
		return Bullet{}, false
	}
	return Bullet{Spacing: m[1], Token: m[2]}, true
}

// MatchOrdered reports the ordered marker at the start of line, if any.
func MatchOrdered(line string) (Ordered, bool) {
	m := orderedPattern.FindStringSubmatch(line)
	if m == nil {
		return Ordered{}, false
	}
	return Ordered{Spacing: m[1], Index: m[2], Delimiter: m[3], Trailing: m[4]}, true
}

// IsListItem reports whether line starts with a bullet or ordered marker.
func IsListItem(line string) bool {
	if _, ok := MatchBullet(line); ok {
		return true
	}
	_, ok := MatchOrdered(line)
	return ok
}
