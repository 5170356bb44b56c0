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

// Context is the text surrounding the cursor when Enter is pressed.
type Context struct {
	Before string // the cursor's line, up to the cursor
	After  string // the cursor's line, from the cursor to the end of the line
	Above  string // the line above the cursor's line; empty on the first line
}

// Options adjust how lists are continued.
// The zero value continues lists the way Newline does.
type Options struct {
	// GuardOrdered declines to continue an ordered list when the text after
	// the cursor is already an ordered list item. Bullets are always guarded.
	GuardOrdered bool
}

// Newline continues a list with the zero Options.
func Newline(ctx Context) (Edit, bool) {
	return Options{}.Newline(ctx)
}

// Newline computes the edit for pressing Enter with the cursor at the end of
// ctx.Before. It reports false when the line is not a list item, or when the
// list should not be continued and a plain newline is wanted.
//
// Pressing Enter on an item that holds only its marker ends the list, as
// long as the line above holds the item before it; a lone marker with no
// predecessor is continued instead.
func (o Options) Newline(ctx Context) (Edit, bool) {
	if b, ok := MatchBullet(ctx.Before); ok {
		return o.continueBullet(ctx, b)
	}
	if m, ok := MatchOrdered(ctx.Before); ok {
		return o.continueOrdered(ctx, m)
	}
	return Edit{}, false
}

func (o Options) continueBullet(ctx Context, b Bullet) (Edit, bool) {
	marker := b.String()
	if isTerminal(ctx.Before, marker, ctx.Above, marker, true) {
		return endList(ctx), true
	}
	// Enter in front of an item that is already on this line, which usually
	// means rejoined list lines are being split apart again.
	if _, ok := MatchBullet(ctx.After); ok {
		return Edit{}, false
	}
	return insertAtCursor(ctx, "\n"+b.Spacing+b.Continuation()), true
}

func (o Options) continueOrdered(ctx Context, m Ordered) (Edit, bool) {
	var previous string
	index, hasPrevious := Step(m.Index, -1)
	if hasPrevious {
		previous = m.withIndex(index)
	}
	if isTerminal(ctx.Before, m.Spacing+m.Index+m.Delimiter, ctx.Above, previous, hasPrevious) {
		return endList(ctx), true
	}
	if o.GuardOrdered {
		if _, ok := MatchOrdered(ctx.After); ok {
			return Edit{}, false
		}
	}
	next, ok := Step(m.Index, 1)
	if !ok {
		return Edit{}, false
	}
	return insertAtCursor(ctx, "\n"+m.withIndex(next)), true
}

// isTerminal reports whether line holds nothing but marker and the line
// above it holds the previous item of the same list.
func isTerminal(line, marker, above, previous string, hasPrevious bool) bool {
	if strings.TrimSpace(line) != strings.TrimSpace(marker) {
		return false
	}
	if !hasPrevious {
		return false
	}
	return strings.HasPrefix(above, previous)
}

// endList replaces the marker-only line with a bare line break.
func endList(ctx Context) Edit {
	return Edit{Start: 0, End: utf8.RuneCountInString(ctx.Before), Text: "\n", Scroll: true}
}

func insertAtCursor(ctx Context, text string) Edit {
	col := utf8.RuneCountInString(ctx.Before)
	return Edit{Start: col, End: col, Text: text, Scroll: true}
}
