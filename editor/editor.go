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
	"errors"
	"fmt"
	"os"
	"strings"

	"jot/config"
	"jot/lists"
	gott "jot/types"
)

// The Editor manages the editing of text in a set of Buffers.
type Editor struct {
	Cursor    gott.Point           // cursor position
	Offset    gott.Size            // display offset
	Buffer    *Buffer              // active buffer being edited
	buffers   []*Buffer            // all buffers; buffer 0 holds command output
	size      gott.Size            // size of editing area
	settings  config.Settings      // user preferences
	clipboard Clipboard            // system clipboard, mirrored by the pasteboard
	pasteText string               // used to cut/copy and paste
	pasteMode int                  // how to paste the string on the pasteboard
	previous  gott.Operation       // last operation performed, available to repeat
	insert    gott.InsertOperation // when in insert mode, the current insert operation
}

func NewEditor() *Editor {
	e := &Editor{
		settings:  config.Default(),
		clipboard: systemClipboard{},
	}
	output := e.newBuffer()
	output.SetNameAndReadOnly("*output*", true)
	e.Buffer = e.newBuffer()
	e.Buffer.SetNameAndReadOnly("*scratch*", false)
	return e
}

func (e *Editor) newBuffer() *Buffer {
	b := NewBuffer()
	b.number = len(e.buffers)
	e.buffers = append(e.buffers, b)
	return b
}

func (e *Editor) GetSettings() config.Settings {
	return e.settings
}

func (e *Editor) SetSettings(s config.Settings) {
	e.settings = s
}

func (e *Editor) SetClipboard(c Clipboard) {
	e.clipboard = c
}

// ReadFile reads a file into the current buffer, or into a new buffer if the
// current one already holds a file or any text.
func (e *Editor) ReadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	e.selectUnusedBuffer()
	e.Buffer.LoadBytes(b)
	e.Buffer.SetFileName(path)
	return nil
}

// OpenFile reads a file, or starts an empty buffer that will be written to
// path if the file does not exist yet.
func (e *Editor) OpenFile(path string) error {
	err := e.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		e.selectUnusedBuffer()
		e.Buffer.SetFileName(path)
		return nil
	}
	return err
}

// selectUnusedBuffer keeps the current buffer if it is an empty scratch
// buffer and otherwise selects a new one.
func (e *Editor) selectUnusedBuffer() {
	if e.Buffer.GetFileName() != "" || len(e.Buffer.Bytes()) > 0 || e.Buffer.GetReadOnly() {
		e.selectBuffer(e.newBuffer())
	}
	e.Cursor = gott.Point{}
	e.Offset = gott.Size{}
}

func (e *Editor) Bytes() []byte {
	return e.Buffer.Bytes()
}

func (e *Editor) WriteFile(path string) error {
	if path == "" {
		return fmt.Errorf("no file name for buffer %d", e.Buffer.GetIndex())
	}
	if err := os.WriteFile(path, e.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if e.Buffer.GetFileName() == "" {
		e.Buffer.SetFileName(path)
	}
	return nil
}

func (e *Editor) Perform(op gott.Operation, multiplier int) {
	// perform the operation
	inverse := op.Perform(e, multiplier)
	// save the operation for repeats
	e.previous = op
	// save the inverse of the operation for undo
	if inverse != nil {
		e.Buffer.undo = append(e.Buffer.undo, inverse)
	}
}

func (e *Editor) Repeat() {
	if e.previous != nil {
		inverse := e.previous.Perform(e, 0)
		if inverse != nil {
			e.Buffer.undo = append(e.Buffer.undo, inverse)
		}
	}
}

func (e *Editor) PerformUndo() {
	b := e.Buffer
	if len(b.undo) > 0 {
		last := len(b.undo) - 1
		undo := b.undo[last]
		b.undo = b.undo[0:last]
		undo.Perform(e, 0)
	}
}

func (e *Editor) PerformSearch(text string) {
	if e.Buffer.GetRowCount() == 0 || text == "" {
		return
	}
	row := e.Cursor.Row
	col := e.Cursor.Col + 1
	for {
		var s string
		if col < e.Buffer.GetRowLength(row) {
			s = e.Buffer.TextAfter(row, col)
		} else {
			s = ""
		}
		i := strings.Index(s, text)
		if i != -1 {
			// found it
			e.Cursor.Row = row
			e.Cursor.Col = col + len([]rune(s[:i]))
			return
		}
		col = 0
		row = row + 1
		if row == e.Buffer.GetRowCount() {
			row = 0
		}
		if row == e.Cursor.Row {
			// the rest of the cursor row, before the cursor
			s = e.Buffer.TextBefore(row, e.Cursor.Col)
			if i := strings.Index(s, text); i != -1 {
				e.Cursor.Col = len([]rune(s[:i]))
			}
			return
		}
	}
}

// GetCursorCell returns the screen cell of the cursor, relative to the
// start of the buffer.
func (e *Editor) GetCursorCell() gott.Point {
	cell := gott.Point{Row: e.Cursor.Row, Col: e.Cursor.Col}
	if e.Cursor.Row < e.Buffer.GetRowCount() {
		cell.Col = e.Buffer.rows[e.Cursor.Row].DisplayColumn(e.Cursor.Col, e.settings.TabStop)
	}
	return cell
}

func (e *Editor) Scroll() {
	cell := e.GetCursorCell()
	if cell.Row < e.Offset.Rows {
		e.Offset.Rows = cell.Row
	}
	if cell.Row-e.Offset.Rows >= e.size.Rows {
		e.Offset.Rows = cell.Row - e.size.Rows + 1
	}
	if cell.Col < e.Offset.Cols {
		e.Offset.Cols = cell.Col
	}
	if cell.Col-e.Offset.Cols >= e.size.Cols {
		e.Offset.Cols = cell.Col - e.size.Cols + 1
	}
}

func (e *Editor) MoveCursor(direction int, multiplier int) {
	for i := 0; i < multiplier; i++ {
		e.moveCursor(direction)
	}
}

func (e *Editor) moveCursor(direction int) {
	switch direction {
	case gott.MoveLeft:
		if e.Cursor.Col > 0 {
			e.Cursor.Col--
		}
	case gott.MoveRight:
		if e.Cursor.Row < e.Buffer.GetRowCount() {
			rowLength := e.Buffer.GetRowLength(e.Cursor.Row)
			if e.Cursor.Col < rowLength-1 {
				e.Cursor.Col++
			}
		}
	case gott.MoveUp:
		if e.Cursor.Row > 0 {
			e.Cursor.Row--
		}
	case gott.MoveDown:
		if e.Cursor.Row < e.Buffer.GetRowCount()-1 {
			e.Cursor.Row++
		}
	}
	// don't go past the end of the current line
	if e.Cursor.Row < e.Buffer.GetRowCount() {
		rowLength := e.Buffer.GetRowLength(e.Cursor.Row)
		if e.Cursor.Col > rowLength-1 {
			e.Cursor.Col = rowLength - 1
			if e.Cursor.Col < 0 {
				e.Cursor.Col = 0
			}
		}
	}
}

// These editor primitives will make changes in insert mode and associate them with to the current operation.

func (e *Editor) InsertChar(c rune) {
	if e.insert != nil {
		e.insert.AddCharacter(c)
	}
	if c == '\n' {
		e.InsertRow()
		e.Cursor.Row++
		e.Cursor.Col = 0
		return
	}
	// if the cursor is past the nmber of rows, add a row
	for e.Cursor.Row >= e.Buffer.GetRowCount() {
		e.AppendBlankRow()
	}
	e.Buffer.InsertCharacter(e.Cursor.Row, e.Cursor.Col, c)
	e.Cursor.Col += 1
}

func (e *Editor) InsertRow() {
	if e.Cursor.Row >= e.Buffer.GetRowCount() {
		// we should never get here
		e.AppendBlankRow()
	} else {
		newRow := e.Buffer.rows[e.Cursor.Row].Split(e.Cursor.Col)
		e.Buffer.insertRow(e.Cursor.Row+1, newRow)
		e.Buffer.highlighted = false
	}
}

func (e *Editor) BackspaceChar() rune {
	if e.Buffer.GetRowCount() == 0 {
		return rune(0)
	}
	if e.insert == nil || e.insert.Length() == 0 {
		return rune(0)
	}
	e.insert.DeleteCharacter()
	if e.Cursor.Col > 0 {
		c := e.Buffer.rows[e.Cursor.Row].DeleteChar(e.Cursor.Col - 1)
		e.Buffer.highlighted = false
		e.Cursor.Col--
		return c
	} else if e.Cursor.Row > 0 {
		// remove the current row and join it with the previous one
		col := e.Buffer.GetRowLength(e.Cursor.Row - 1)
		e.Buffer.DeleteCharacters(e.Cursor.Row-1, col, 1, true)
		e.Cursor.Row--
		e.Cursor.Col = col
		return rune('\n')
	}
	return rune(0)
}

func (e *Editor) YankRow(multiplier int) {
	if e.Buffer.GetRowCount() == 0 {
		return
	}
	var pasteText strings.Builder
	for i := 0; i < multiplier; i++ {
		position := e.Cursor.Row + i
		if position < e.Buffer.GetRowCount() {
			pasteText.WriteString(e.Buffer.RowText(position) + "\n")
		}
	}
	e.SetPasteBoard(pasteText.String(), gott.PasteNewLine)
}

func (e *Editor) KeepCursorInRow() {
	if e.Buffer.GetRowCount() == 0 {
		e.Cursor.Col = 0
	} else {
		if e.Cursor.Row >= e.Buffer.GetRowCount() {
			e.Cursor.Row = e.Buffer.GetRowCount() - 1
		}
		if e.Cursor.Row < 0 {
			e.Cursor.Row = 0
		}
		lastIndexInRow := e.Buffer.rows[e.Cursor.Row].Length() - 1
		if e.Cursor.Col > lastIndexInRow {
			e.Cursor.Col = lastIndexInRow
		}
		if e.Cursor.Col < 0 {
			e.Cursor.Col = 0
		}
	}
}

func (e *Editor) AppendBlankRow() {
	e.Buffer.rows = append(e.Buffer.rows, NewRow(""))
}

func (e *Editor) InsertLineAboveCursor() {
	e.Buffer.insertRow(e.Cursor.Row, NewRow(""))
	e.Cursor.Col = 0
}

func (e *Editor) InsertLineBelowCursor() {
	if e.Cursor.Row >= e.Buffer.GetRowCount() {
		e.AppendBlankRow()
	}
	e.Buffer.insertRow(e.Cursor.Row+1, NewRow(""))
	e.Cursor.Row += 1
	e.Cursor.Col = 0
}

func (e *Editor) MoveCursorToStartOfLine() {
	e.Cursor.Col = 0
}

func (e *Editor) MoveCursorToStartOfLineBelowCursor() {
	e.Cursor.Col = 0
	e.Cursor.Row += 1
}

// editable

func (e *Editor) GetCursor() gott.Point {
	return e.Cursor
}

func (e *Editor) SetCursor(cursor gott.Point) {
	e.Cursor = cursor
}

func (e *Editor) DeleteRowsAtCursor(multiplier int) string {
	deletedText := ""
	for i := 0; i < multiplier; i++ {
		row := e.Cursor.Row
		if row < e.Buffer.GetRowCount() {
			if i > 0 {
				deletedText += "\n"
			}
			deletedText += e.Buffer.RowText(row)
			e.Buffer.DeleteRow(row)
		} else {
			break
		}
	}
	e.Cursor.Row = clipToRange(e.Cursor.Row, 0, e.Buffer.GetRowCount()-1)
	return deletedText
}

func (e *Editor) SetPasteBoard(text string, mode int) {
	e.pasteText = text
	e.pasteMode = mode
	if e.settings.SystemClipboard {
		e.writeClipboard(text)
	}
}

func (e *Editor) DeleteCharactersAtCursor(multiplier int, undo bool, finallyDeleteRow bool) string {
	if e.Cursor.Row >= e.Buffer.GetRowCount() {
		return ""
	}
	deletedText := e.Buffer.DeleteCharacters(e.Cursor.Row, e.Cursor.Col, multiplier, undo)
	if e.Cursor.Col > e.Buffer.rows[e.Cursor.Row].Length()-1 {
		e.Cursor.Col--
	}
	if e.Cursor.Col < 0 {
		e.Cursor.Col = 0
	}
	if finallyDeleteRow && e.Buffer.GetRowCount() > 0 {
		e.Buffer.DeleteRow(e.Cursor.Row)
	}
	return deletedText
}

// JoinRow joins the cursor row with the rows below it and returns the
// positions where the row breaks were removed.
func (e *Editor) JoinRow(multiplier int) []gott.Point {
	cursors := make([]gott.Point, 0)
	row := e.Cursor.Row
	for i := 0; i < multiplier; i++ {
		if row >= e.Buffer.GetRowCount()-1 {
			break
		}
		cursor := gott.Point{Row: row, Col: e.Buffer.GetRowLength(row)}
		e.Buffer.DeleteCharacters(row, cursor.Col, 1, true)
		cursors = append(cursors, cursor)
	}
	return cursors
}

func (e *Editor) InsertText(text string, position int) (gott.Point, int) {
	if e.Buffer.GetRowCount() == 0 {
		e.AppendBlankRow()
	}
	switch position {
	case gott.InsertAtCursor:
		break
	case gott.InsertAfterCursor:
		e.Cursor.Col++
		e.Cursor.Col = clipToRange(e.Cursor.Col, 0, e.Buffer.rows[e.Cursor.Row].Length())
	case gott.InsertAtStartOfLine:
		e.Cursor.Col = 0
	case gott.InsertAfterEndOfLine:
		e.Cursor.Col = e.Buffer.rows[e.Cursor.Row].Length()
	case gott.InsertAtNewLineBelowCursor:
		e.InsertLineBelowCursor()
	case gott.InsertAtNewLineAboveCursor:
		e.InsertLineAboveCursor()
	}
	var mode int
	if text != "" {
		r := e.Cursor.Row
		c := e.Cursor.Col
		for _, c := range text {
			e.InsertChar(c)
		}
		e.Cursor.Row = r
		e.Cursor.Col = c
		mode = gott.ModeEdit
	} else {
		mode = gott.ModeInsert
	}
	return e.Cursor, mode
}

// ReplaceText deletes count characters at a position, counting row breaks
// as one character each, and inserts text in their place. It returns the
// deleted text and the position just after the inserted text. The cursor
// is not moved.
func (e *Editor) ReplaceText(at gott.Point, count int, text string) (string, gott.Point) {
	deleted := e.Buffer.DeleteCharacters(at.Row, at.Col, count, true)
	end := e.Buffer.InsertText(at.Row, at.Col, text)
	return deleted, end
}

// ListContext returns the text around the cursor that decides how Enter
// continues a list.
func (e *Editor) ListContext() lists.Context {
	row := e.Cursor.Row
	ctx := lists.Context{
		Before: e.Buffer.TextBefore(row, e.Cursor.Col),
		After:  e.Buffer.TextAfter(row, e.Cursor.Col),
	}
	if row > 0 {
		ctx.Above = e.Buffer.RowText(row - 1)
	}
	return ctx
}

// ListNewline returns the edit that continues or ends the list at the
// cursor, if Enter should do anything other than break the line.
func (e *Editor) ListNewline() (lists.Edit, bool) {
	if !e.settings.ListContinuation || e.Buffer.GetReadOnly() {
		return lists.Edit{}, false
	}
	return e.settings.ListOptions().Newline(e.ListContext())
}

// IndentSelection returns the first row and the lines of a selection of
// rows starting at the cursor row. With atCursor, the selection column is
// the cursor column; otherwise it is the start of the row.
func (e *Editor) IndentSelection(rows int, atCursor bool) (int, lists.Selection) {
	first := e.Cursor.Row
	rows = clipToRange(rows, 1, e.Buffer.GetRowCount()-first)
	sel := lists.Selection{Lines: make([]string, 0, rows)}
	for i := 0; i < rows; i++ {
		sel.Lines = append(sel.Lines, e.Buffer.RowText(first+i))
	}
	if atCursor {
		sel.Column = e.Cursor.Col
	}
	return first, sel
}

func (e *Editor) SetInsertOperation(insert gott.InsertOperation) {
	e.insert = insert
}

func (e *Editor) GetPasteMode() int {
	return e.pasteMode
}

func (e *Editor) GetPasteText() string {
	return e.pasteText
}

func (e *Editor) PageUp(multiplier int) {
	// move to the top of the screen
	e.Cursor.Row = e.Offset.Rows
	// move up by a page
	e.MoveCursor(gott.MoveUp, e.size.Rows*multiplier)
}

func (e *Editor) PageDown(multiplier int) {
	// move to the bottom of the screen
	e.Cursor.Row = clipToRange(e.Offset.Rows+e.size.Rows-1, 0, e.Buffer.GetRowCount()-1)
	// move down by a page
	e.MoveCursor(gott.MoveDown, e.size.Rows*multiplier)
}

func (e *Editor) SetSize(s gott.Size) {
	e.size = s
}

func (e *Editor) CloseInsert() {
	if e.insert != nil {
		e.insert.Close()
		e.insert = nil
	}
}

func (e *Editor) MoveToBeginningOfLine() {
	e.Cursor.Col = 0
}

func (e *Editor) MoveToEndOfLine() {
	e.Cursor.Col = 0
	if e.Cursor.Row < e.Buffer.GetRowCount() {
		e.Cursor.Col = e.Buffer.GetRowLength(e.Cursor.Row) - 1
		if e.Cursor.Col < 0 {
			e.Cursor.Col = 0
		}
	}
}

func (e *Editor) GetBuffer() gott.Buffer {
	return e.Buffer
}

func (e *Editor) GetOffset() gott.Size {
	return e.Offset
}

// buffers

func (e *Editor) selectBuffer(b *Buffer) {
	e.Buffer.cursor = e.Cursor
	e.Buffer.offset = e.Offset
	e.Buffer = b
	e.Cursor = b.cursor
	e.Offset = b.offset
}

func (e *Editor) SelectBuffer(number int) error {
	if number < 0 || number >= len(e.buffers) {
		return fmt.Errorf("no buffer %d", number)
	}
	e.selectBuffer(e.buffers[number])
	return nil
}

func (e *Editor) findBuffer(name string) *Buffer {
	for _, b := range e.buffers {
		if b.GetName() == name {
			return b
		}
	}
	return nil
}

// ListBuffers shows a list of buffers in the output buffer.
func (e *Editor) ListBuffers() {
	var s strings.Builder
	for i, b := range e.buffers {
		if i > 0 {
			s.WriteString("\n")
		}
		fmt.Fprintf(&s, " [%d] %s", b.GetIndex(), b.GetName())
		if b.GetReadOnly() {
			s.WriteString(" (read-only)")
		}
	}
	e.Output(s.String())
}

// Output replaces the contents of the output buffer and selects it.
func (e *Editor) Output(text string) {
	output := e.buffers[0]
	output.LoadBytes([]byte(text))
	output.cursor = gott.Point{}
	output.offset = gott.Size{}
	e.selectBuffer(output)
}
