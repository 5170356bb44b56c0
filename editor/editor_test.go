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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	gott "jot/types"
)

const source = "testdata/notes.md"

type fakeClipboard struct {
	text string
}

func (c *fakeClipboard) ReadAll() (string, error) {
	return c.text, nil
}

func (c *fakeClipboard) WriteAll(text string) error {
	c.text = text
	return nil
}

func setup(t *testing.T) (*Editor, *fakeClipboard) {
	e := NewEditor()
	clipboard := &fakeClipboard{}
	e.SetClipboard(clipboard)
	if err := e.ReadFile(source); err != nil {
		t.Fatalf("Read failed: %+v", err)
	}
	return e, clipboard
}

func TestReadWriteInvariance(t *testing.T) {
	e, _ := setup(t)
	path := filepath.Join(t.TempDir(), "notes.md")
	if err := e.WriteFile(path); err != nil {
		t.Fatalf("Write failed: %+v", err)
	}
	expected, _ := os.ReadFile(source)
	written, _ := os.ReadFile(path)
	if string(written) != string(expected) {
		t.Errorf("Unexpected file after write: '%s'", written)
	}
}

func TestWriteWithoutName(t *testing.T) {
	e := NewEditor()
	if err := e.WriteFile(""); err == nil {
		t.Errorf("Expected an error writing an unnamed buffer")
	}
}

func TestReplaceText(t *testing.T) {
	e, _ := setup(t)
	deleted, end := e.ReplaceText(gott.Point{Row: 4, Col: 2}, 9, "cheese\n- ham")
	if deleted != "milk\n- eg" {
		t.Errorf("Unexpected deleted text: '%s'", deleted)
	}
	if end.Row != 5 || end.Col != 5 {
		t.Errorf("Unexpected end of replacement: %+v", end)
	}
	if text := e.Buffer.TextAfter(4, 0); text != "- cheese" {
		t.Errorf("Unexpected row after replacement: '%s'", text)
	}
	if text := e.Buffer.TextAfter(5, 0); text != "- hamgs" {
		t.Errorf("Unexpected row after replacement: '%s'", text)
	}
}

func TestListContext(t *testing.T) {
	e, _ := setup(t)
	e.Cursor = gott.Point{Row: 12, Col: 7}
	ctx := e.ListContext()
	if ctx.Before != "2. call" || ctx.After != " the plumber" || ctx.Above != "1. clean the garage" {
		t.Errorf("Unexpected list context: %+v", ctx)
	}
	e.Cursor = gott.Point{Row: 0, Col: 2}
	if ctx := e.ListContext(); ctx.Above != "" {
		t.Errorf("Unexpected text above the first row: '%s'", ctx.Above)
	}
}

func TestOrderedGuard(t *testing.T) {
	e, _ := setup(t)
	e.Buffer.LoadBytes([]byte("1. one 2. two"))
	e.Cursor = gott.Point{Row: 0, Col: 7}
	if _, ok := e.ListNewline(); !ok {
		t.Errorf("Expected the list to continue without the ordered guard")
	}
	settings := e.GetSettings()
	settings.GuardOrderedLists = true
	e.SetSettings(settings)
	if edit, ok := e.ListNewline(); ok {
		t.Errorf("Unexpected list edit with the ordered guard: %+v", edit)
	}
}

func TestIndentSelection(t *testing.T) {
	e, _ := setup(t)
	count := e.Buffer.GetRowCount()
	e.Cursor = gott.Point{Row: count - 2, Col: 4}
	first, sel := e.IndentSelection(5, true)
	if first != count-2 || len(sel.Lines) != 2 || sel.Column != 4 {
		t.Errorf("Unexpected selection at row %d: %+v", first, sel)
	}
	_, sel = e.IndentSelection(1, false)
	if sel.Column != 0 {
		t.Errorf("Unexpected selection column: %d", sel.Column)
	}
}

func TestCursorCell(t *testing.T) {
	e, _ := setup(t)
	row := e.Buffer.GetRowCount() - 2
	// "Some plain text" is 15 characters, followed by a tab
	e.Cursor = gott.Point{Row: row, Col: 16}
	if cell := e.GetCursorCell(); cell.Col != 16 {
		t.Errorf("Unexpected cursor cell after a tab: %+v", cell)
	}
	e.Buffer.LoadBytes([]byte("- 日本語のメモ"))
	e.Cursor = gott.Point{Row: 0, Col: 4}
	if cell := e.GetCursorCell(); cell.Col != 2+runewidth.StringWidth("日本") {
		t.Errorf("Unexpected cursor cell after wide characters: %+v", cell)
	}
}

func TestScroll(t *testing.T) {
	e, _ := setup(t)
	e.SetSize(gott.Size{Rows: 5, Cols: 10})
	e.Cursor = gott.Point{Row: 12, Col: 15}
	e.Scroll()
	if e.Offset.Rows != 8 || e.Offset.Cols != 6 {
		t.Errorf("Unexpected offset after scrolling: %+v", e.Offset)
	}
	e.Cursor = gott.Point{Row: 2, Col: 0}
	e.Scroll()
	if e.Offset.Rows != 2 || e.Offset.Cols != 0 {
		t.Errorf("Unexpected offset after scrolling back: %+v", e.Offset)
	}
}

func TestSearch(t *testing.T) {
	e, _ := setup(t)
	e.PerformSearch("draft")
	if e.Cursor.Row != 18 || e.Cursor.Col != 9 {
		t.Errorf("Unexpected cursor after search: %+v", e.Cursor)
	}
	e.PerformSearch("draft")
	if e.Cursor.Row != 19 || e.Cursor.Col != 10 {
		t.Errorf("Unexpected cursor after repeated search: %+v", e.Cursor)
	}
	// wraps around to the top
	e.PerformSearch("Groceries")
	if e.Cursor.Row != 0 || e.Cursor.Col != 2 {
		t.Errorf("Unexpected cursor after wrapping search: %+v", e.Cursor)
	}
}

func TestBuffers(t *testing.T) {
	e, _ := setup(t)
	if err := e.ReadFile(source); err != nil {
		t.Fatalf("Read failed: %+v", err)
	}
	if index := e.GetBuffer().GetIndex(); index != 2 {
		t.Errorf("Unexpected buffer index for second file: %d", index)
	}
	e.Cursor = gott.Point{Row: 3, Col: 1}
	if err := e.SelectBuffer(1); err != nil {
		t.Errorf("Unexpected error selecting a buffer: %+v", err)
	}
	if err := e.SelectBuffer(7); err == nil {
		t.Errorf("Expected an error selecting a missing buffer")
	}
	if err := e.SelectBuffer(2); err != nil {
		t.Errorf("Unexpected error selecting a buffer: %+v", err)
	}
	if e.Cursor.Row != 3 || e.Cursor.Col != 1 {
		t.Errorf("Unexpected cursor after returning to a buffer: %+v", e.Cursor)
	}
	e.ListBuffers()
	if !e.GetBuffer().GetReadOnly() || e.GetBuffer().GetIndex() != 0 {
		t.Errorf("Expected buffer list in the output buffer")
	}
	listing := string(e.Bytes())
	for _, name := range []string{"*output*", source} {
		if !strings.Contains(listing, name) {
			t.Errorf("Buffer list is missing '%s': '%s'", name, listing)
		}
	}
}

func TestUndoIsPerBuffer(t *testing.T) {
	e, _ := setup(t)
	e.Buffer.undo = append(e.Buffer.undo, nil)
	e.Output("hello")
	if len(e.Buffer.undo) != 0 {
		t.Errorf("Unexpected undo stack in the output buffer: %d", len(e.Buffer.undo))
	}
}

func TestYankToClipboard(t *testing.T) {
	e, clipboard := setup(t)
	e.Cursor = gott.Point{Row: 4, Col: 0}
	e.YankRow(2)
	if clipboard.text != "- milk\n- eggs\n" {
		t.Errorf("Unexpected clipboard text after yank: '%s'", clipboard.text)
	}
	clipboard.text = "from elsewhere"
	e.RefreshPasteBoard()
	if e.GetPasteText() != "from elsewhere" || e.GetPasteMode() != gott.PasteAtCursor {
		t.Errorf("Unexpected pasteboard after refresh: '%s' (%d)", e.GetPasteText(), e.GetPasteMode())
	}
	settings := e.GetSettings()
	settings.SystemClipboard = false
	e.SetSettings(settings)
	e.YankRow(1)
	if clipboard.text != "from elsewhere" {
		t.Errorf("Clipboard changed with the system clipboard off: '%s'", clipboard.text)
	}
}

func TestHighlight(t *testing.T) {
	e, _ := setup(t)
	NewListHighlighter().Highlight(e.Buffer)
	rows := e.Buffer.rows
	if c := rows[0].Colors[3]; c != colorText {
		t.Errorf("Unexpected heading color: %x", c)
	}
	if c := rows[4].Colors[0]; c != colorBullet {
		t.Errorf("Unexpected bullet color: %x", c)
	}
	if c := rows[4].Colors[3]; c != colorText {
		t.Errorf("Unexpected item text color: %x", c)
	}
	if c := rows[11].Colors[1]; c != colorIndex {
		t.Errorf("Unexpected index color: %x", c)
	}
	if c := rows[15].Colors[10]; c != colorFinished {
		t.Errorf("Unexpected finished task color: %x", c)
	}
	if c := rows[16].Colors[10]; c != colorText {
		t.Errorf("Unexpected open task color: %x", c)
	}
}

func TestPreview(t *testing.T) {
	e, _ := setup(t)
	if err := e.Preview(40); err != nil {
		t.Fatalf("Preview failed: %+v", err)
	}
	b := e.GetBuffer()
	if b.GetName() != previewName || !b.GetReadOnly() {
		t.Errorf("Unexpected preview buffer: %s", b.GetName())
	}
	text := string(e.Bytes())
	if strings.Contains(text, "\x1b") {
		t.Errorf("Unexpected escape sequence in preview")
	}
	for _, s := range []string{"Groceries", "milk", "call the plumber"} {
		if !strings.Contains(text, s) {
			t.Errorf("Preview is missing '%s'", s)
		}
	}
	// previewing again reuses the preview buffer
	if err := e.SelectBuffer(1); err != nil {
		t.Fatalf("Unexpected error selecting a buffer: %+v", err)
	}
	count := len(e.buffers)
	if err := e.Preview(0); err != nil {
		t.Fatalf("Preview failed: %+v", err)
	}
	if len(e.buffers) != count {
		t.Errorf("Unexpected buffer count after second preview: %d", len(e.buffers))
	}
}

func TestRenderMarkdownWraps(t *testing.T) {
	paragraph := strings.Repeat("all work and no play makes a dull note ", 10)
	text, err := RenderMarkdown([]byte(paragraph), 30)
	if err != nil {
		t.Fatalf("Render failed: %+v", err)
	}
	for _, line := range strings.Split(text, "\n") {
		if runewidth.StringWidth(line) > 30 {
			t.Errorf("Unexpected long line: '%s'", line)
		}
	}
}

func TestOpenMissingFile(t *testing.T) {
	e, _ := setup(t)
	path := filepath.Join(t.TempDir(), "new.md")
	if err := e.OpenFile(path); err != nil {
		t.Fatalf("Open failed: %+v", err)
	}
	if e.GetBuffer().GetFileName() != path || e.GetBuffer().GetIndex() != 2 {
		t.Errorf("Unexpected buffer for a new file: %s", e.GetBuffer().GetName())
	}
	if err := e.OpenFile(t.TempDir()); err == nil {
		t.Errorf("Expected an error opening a directory")
	}
}
