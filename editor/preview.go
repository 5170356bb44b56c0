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
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/x/ansi"
)

const previewName = "*preview*"

// RenderMarkdown formats markdown as plain text wrapped at width.
func RenderMarkdown(source []byte, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(styles.NoTTYStyle),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("creating renderer: %w", err)
	}
	out, err := r.RenderBytes(source)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	// the renderer pads lines to the wrap width
	lines := strings.Split(ansi.Strip(string(out)), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Trim(strings.Join(lines, "\n"), "\n"), nil
}

// Preview renders the current buffer into the read-only preview buffer and
// selects it. A width of zero uses the preview-width setting.
func (e *Editor) Preview(width int) error {
	if width <= 0 {
		width = e.settings.PreviewWidth
	}
	text, err := RenderMarkdown(e.Bytes(), width)
	if err != nil {
		return err
	}
	preview := e.findBuffer(previewName)
	if preview == nil {
		preview = e.newBuffer()
		preview.SetNameAndReadOnly(previewName, true)
	}
	preview.LoadBytes([]byte(text))
	preview.cursor = e.Cursor
	preview.offset = e.Offset
	e.selectBuffer(preview)
	e.KeepCursorInRow()
	return nil
}
