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
package commander

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"jot/editor"
	gott "jot/types"
)

func setup(t *testing.T, text string) (*editor.Editor, *Commander) {
	e := editor.NewEditor()
	e.SetClipboard(nil)
	path := filepath.Join(t.TempDir(), "note.md")
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		t.Fatalf("Write failed: %+v", err)
	}
	if err := e.ReadFile(path); err != nil {
		t.Fatalf("Read failed: %+v", err)
	}
	return e, NewCommander(e)
}

// typeKeys sends keystrokes to the commander. Newlines, tabs, spaces and
// escapes are sent as their keys.
func typeKeys(t *testing.T, c *Commander, keys string) {
	for _, ch := range keys {
		event := &gott.Event{Type: gott.EventKey}
		switch ch {
		case '\n':
			event.Key = gott.KeyEnter
		case '\t':
			event.Key = gott.KeyTab
		case ' ':
			event.Key = gott.KeySpace
		case 0x1b:
			event.Key = gott.KeyEsc
		default:
			event.Ch = ch
		}
		if err := c.ProcessEvent(event); err != nil {
			t.Errorf("Unexpected error for key '%c': %+v", ch, err)
		}
	}
}

func sendKey(t *testing.T, c *Commander, key gott.Key) {
	if err := c.ProcessEvent(&gott.Event{Type: gott.EventKey, Key: key}); err != nil {
		t.Errorf("Unexpected error for key %d: %+v", key, err)
	}
}

func TestTypeList(t *testing.T) {
	e, c := setup(t, "- one")
	typeKeys(t, c, "A\ntwo\n\n\x1b")
	expected := "- one\n- two\n\n"
	if text := string(e.Bytes()); text != expected {
		t.Errorf("Unexpected text after typing: '%s'", text)
	}
	if c.GetMode() != gott.ModeEdit {
		t.Errorf("Unexpected mode after escape: %d", c.GetMode())
	}
	typeKeys(t, c, strings.Repeat("u", 10))
	if text := string(e.Bytes()); text != "- one" {
		t.Errorf("Unexpected text after undo: '%s'", text)
	}
}

func TestTypeOrderedList(t *testing.T) {
	e, c := setup(t, "a) first")
	typeKeys(t, c, "A\nsecond\nthird\x1b")
	expected := "a) first\nb) second\nc) third"
	if text := string(e.Bytes()); text != expected {
		t.Errorf("Unexpected text after typing: '%s'", text)
	}
}

func TestTypePlainText(t *testing.T) {
	e, c := setup(t, "hello")
	typeKeys(t, c, "A\nworld\x1b")
	if text := string(e.Bytes()); text != "hello\nworld" {
		t.Errorf("Unexpected text after typing: '%s'", text)
	}
}

func TestTypeWithoutContinuation(t *testing.T) {
	e, c := setup(t, "- one")
	typeKeys(t, c, ":set list-continuation off\n")
	typeKeys(t, c, "A\ntwo\x1b")
	if text := string(e.Bytes()); text != "- one\ntwo" {
		t.Errorf("Unexpected text after typing: '%s'", text)
	}
}

func TestTabInInsertMode(t *testing.T) {
	e, c := setup(t, "- one\n- two")
	typeKeys(t, c, "jA\t\x1b")
	if text := string(e.Bytes()); text != "- one\n  - two" {
		t.Errorf("Unexpected text after tab: '%s'", text)
	}
	typeKeys(t, c, "A")
	sendKey(t, c, gott.KeyCtrlD)
	typeKeys(t, c, "!\x1b")
	if text := string(e.Bytes()); text != "- one\n- two!" {
		t.Errorf("Unexpected text after outdent: '%s'", text)
	}
	typeKeys(t, c, strings.Repeat("u", 10))
	if text := string(e.Bytes()); text != "- one\n- two" {
		t.Errorf("Unexpected text after undo: '%s'", text)
	}
}

func TestTabInText(t *testing.T) {
	e, c := setup(t, "ab")
	typeKeys(t, c, "a")
	sendKey(t, c, gott.KeyCtrlT)
	typeKeys(t, c, "\x1b")
	if text := string(e.Bytes()); text != "a\tb" {
		t.Errorf("Unexpected text after tab: '%s'", text)
	}
}

func TestShiftRows(t *testing.T) {
	e, c := setup(t, "a\nb\nc")
	typeKeys(t, c, "2>>")
	if text := string(e.Bytes()); text != "\ta\n\tb\nc" {
		t.Errorf("Unexpected text after indent: '%s'", text)
	}
	typeKeys(t, c, "<<")
	if text := string(e.Bytes()); text != "a\n\tb\nc" {
		t.Errorf("Unexpected text after outdent: '%s'", text)
	}
	typeKeys(t, c, "uu")
	if text := string(e.Bytes()); text != "a\nb\nc" {
		t.Errorf("Unexpected text after undo: '%s'", text)
	}
}

func TestDeleteAndPaste(t *testing.T) {
	e, c := setup(t, "one\ntwo\nthree")
	typeKeys(t, c, "ddp")
	if text := string(e.Bytes()); text != "two\none\nthree" {
		t.Errorf("Unexpected text after delete and paste: '%s'", text)
	}
	typeKeys(t, c, "yyjp")
	if text := string(e.Bytes()); text != "two\none\nthree\none" {
		t.Errorf("Unexpected text after yank and paste: '%s'", text)
	}
}

func TestReplaceCharacter(t *testing.T) {
	e, c := setup(t, "- [ ] task")
	typeKeys(t, c, "lllrx")
	if text := string(e.Bytes()); text != "- [x] task" {
		t.Errorf("Unexpected text after replace: '%s'", text)
	}
}

func TestCommands(t *testing.T) {
	e, c := setup(t, "one\ntwo\nthree")
	typeKeys(t, c, ":3\n")
	if cursor := e.GetCursor(); cursor.Row != 2 {
		t.Errorf("Unexpected cursor after :3: %+v", cursor)
	}
	typeKeys(t, c, ":1\n:$\n")
	if cursor := e.GetCursor(); cursor.Row != 2 {
		t.Errorf("Unexpected cursor after :$: %+v", cursor)
	}
	typeKeys(t, c, ":set tab-stop 4\n")
	if tabStop := e.GetSettings().TabStop; tabStop != 4 {
		t.Errorf("Unexpected tab stop: %d", tabStop)
	}
	typeKeys(t, c, ":set tab-stop\n")
	if message := c.GetMessage(); message != "tab-stop=4" {
		t.Errorf("Unexpected message: '%s'", message)
	}
	typeKeys(t, c, ":set colour blue\n")
	if message := c.GetMessage(); !strings.Contains(message, "unknown setting") {
		t.Errorf("Unexpected message: '%s'", message)
	}
	typeKeys(t, c, ":bogus\n")
	if message := c.GetMessage(); message != "unknown command: bogus" {
		t.Errorf("Unexpected message: '%s'", message)
	}
	path := filepath.Join(t.TempDir(), "copy.md")
	typeKeys(t, c, ":w "+path+"\n")
	if written, err := os.ReadFile(path); err != nil || string(written) != "one\ntwo\nthree" {
		t.Errorf("Unexpected file after write: '%s' (%v)", written, err)
	}
	typeKeys(t, c, ":wq\n")
	if c.IsRunning() {
		t.Errorf("Expected the commander to stop after :wq")
	}
}

func TestSaveSettings(t *testing.T) {
	e, c := setup(t, "")
	path := filepath.Join(t.TempDir(), "jot", "settings.yaml")
	c.SetSettingsPath(path)
	typeKeys(t, c, ":set preview-width 60\n:save-settings\n")
	if message := c.GetMessage(); message != "" {
		t.Errorf("Unexpected message: '%s'", message)
	}
	saved, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Read failed: %+v", err)
	}
	if !strings.Contains(string(saved), "preview-width: 60") {
		t.Errorf("Unexpected settings file: '%s'", saved)
	}
	if e.GetSettings().PreviewWidth != 60 {
		t.Errorf("Unexpected preview width: %d", e.GetSettings().PreviewWidth)
	}
}

func TestReadOnlyBuffers(t *testing.T) {
	e, c := setup(t, "# Notes\n\n- one\n- two\n")
	typeKeys(t, c, ":preview\n")
	if !e.GetBuffer().GetReadOnly() {
		t.Fatalf("Expected a read-only preview buffer")
	}
	before := string(e.Bytes())
	typeKeys(t, c, "x")
	if message := c.GetMessage(); !strings.Contains(message, "read-only") {
		t.Errorf("Unexpected message: '%s'", message)
	}
	if after := string(e.Bytes()); after != before {
		t.Errorf("Read-only buffer changed: '%s'", after)
	}
	typeKeys(t, c, ":buffer 1\n")
	if e.GetBuffer().GetReadOnly() {
		t.Errorf("Expected the note buffer after :buffer 1")
	}
	typeKeys(t, c, ":buffers\n")
	if e.GetBuffer().GetIndex() != 0 {
		t.Errorf("Expected the output buffer after :buffers")
	}
}

func TestLisp(t *testing.T) {
	e, c := setup(t, "- one")
	if result := c.ParseEval("(cursor-row)"); result != "1" {
		t.Errorf("Unexpected cursor row: '%s'", result)
	}
	c.ParseEval("(list-continuation #f)")
	if e.GetSettings().ListContinuation {
		t.Errorf("Expected list continuation to be off")
	}
	c.ParseEval("(list-continuation #t)")
	c.ParseEval(`(set-option "guard-ordered-lists" "on")`)
	if !e.GetSettings().GuardOrderedLists {
		t.Errorf("Expected the ordered guard to be on")
	}
	if result := c.ParseEval(`(set-option "colour" "blue")`); !strings.HasPrefix(result, "ERR") {
		t.Errorf("Unexpected result for an unknown setting: '%s'", result)
	}
	e.MoveToEndOfLine()
	e.Cursor.Col++
	c.ParseEval("(continue-list)")
	c.ParseEval(`(insert-text "two")`)
	c.ParseEval("(indent)")
	if text := string(e.Bytes()); text != "- one\n  - two" {
		t.Errorf("Unexpected text after lisp edits: '%s'", text)
	}
	if result := c.ParseEval("(line-text 1)"); !strings.Contains(result, "- one") {
		t.Errorf("Unexpected line text: '%s'", result)
	}
	c.ParseEval("(outdent 2)")
	if text := string(e.Bytes()); text != "- one\n- two" {
		t.Errorf("Unexpected text after outdent: '%s'", text)
	}
}

func TestLispMode(t *testing.T) {
	_, c := setup(t, "- one\n- two")
	typeKeys(t, c, "(goto-line 2)\n")
	if c.GetMode() != gott.ModeEdit {
		t.Errorf("Unexpected mode after lisp: %d", c.GetMode())
	}
	if message := c.GetMessage(); message != "2" {
		t.Errorf("Unexpected message after lisp: '%s'", message)
	}
}

func TestEvalFile(t *testing.T) {
	e, c := setup(t, "# Tasks\n")
	dir := t.TempDir()
	script := filepath.Join(dir, "tasks.lisp")
	out := filepath.Join(dir, "tasks.md")
	source := `(goto-line 2)
(insert-text "1. write")
(continue-list)
(insert-text "test")
(write-file "` + out + `")
(cursor-row)
`
	if err := os.WriteFile(script, []byte(source), 0644); err != nil {
		t.Fatalf("Write failed: %+v", err)
	}
	result, err := c.ParseEvalFile(script)
	if err != nil {
		t.Fatalf("Eval failed: %+v", err)
	}
	if result != "3" {
		t.Errorf("Unexpected result: '%s'", result)
	}
	written, _ := os.ReadFile(out)
	if string(written) != "# Tasks\n1. write\n2. test" {
		t.Errorf("Unexpected file after script: '%s'", written)
	}
	if text := string(e.Bytes()); text != string(written) {
		t.Errorf("Unexpected buffer after script: '%s'", text)
	}
}

func TestLoadRC(t *testing.T) {
	e, c := setup(t, "")
	if err := c.LoadRC(filepath.Join(t.TempDir(), "missing.lisp")); err != nil {
		t.Errorf("Unexpected error for a missing rc file: %+v", err)
	}
	rc := filepath.Join(t.TempDir(), "init.lisp")
	os.WriteFile(rc, []byte(`(set-option "tab-stop" 2)`), 0644)
	if err := c.LoadRC(rc); err != nil {
		t.Errorf("Unexpected error loading rc file: %+v", err)
	}
	if e.GetSettings().TabStop != 2 {
		t.Errorf("Unexpected tab stop after rc file: %d", e.GetSettings().TabStop)
	}
	if e.GetBuffer().GetIndex() != 1 {
		t.Errorf("Unexpected buffer after rc file: %d", e.GetBuffer().GetIndex())
	}
}
