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
package editor

import (
	"jot/lists"
	gott "jot/types"
)

const (
	colorText     gott.Color = 0xff
	colorBullet   gott.Color = 0x71
	colorIndex    gott.Color = 0x83
	colorFinished gott.Color = 0xf8
)

// The ListHighlighter colors list markers and dims finished tasks.
type ListHighlighter struct{}

func NewListHighlighter() *ListHighlighter {
	return &ListHighlighter{}
}

func (h *ListHighlighter) Highlight(b *Buffer) {
	for _, r := range b.rows {
		h.highlightRow(r)
	}
}

func (h *ListHighlighter) highlightRow(r *Row) {
	colors := r.Colors
	for j := range colors {
		colors[j] = colorText
	}
	line := r.String()

	if bullet, ok := lists.MatchBullet(line); ok {
		start := len([]rune(bullet.Spacing))
		if bullet.Checked() {
			paint(colors, start, len(colors), colorFinished)
			return
		}
		paint(colors, start, start+len([]rune(bullet.Token)), colorBullet)
	} else if ordered, ok := lists.MatchOrdered(line); ok {
		start := len([]rune(ordered.Spacing))
		paint(colors, start, start+len([]rune(ordered.Index+ordered.Delimiter)), colorIndex)
	}
}

func paint(colors []gott.Color, start, end int, color gott.Color) {
	for k := start; k < end && k < len(colors); k++ {
		colors[k] = color
	}
}
