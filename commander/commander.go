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
	"fmt"
	"log"
	"strconv"
	"strings"

	"jot/operations"
	gott "jot/types"
)

// The Commander converts user input into commands for the Editor.
type Commander struct {
	editor       gott.Editor
	mode         int    // editor mode
	debug        bool   // debug mode displays information about events (key codes, etc)
	editKeys     string // edit key sequences in progress
	command      string // command as it is being typed on the command line
	searchText   string // text for searches as it is being typed
	lispText     string // lisp command as it is being typed
	message      string // status message
	multiplier   string // multiplier string as it is being entered
	settingsPath string // where :save-settings writes
}

var _ gott.Commander = (*Commander)(nil)

// NewCommander creates a commander for an editor. Lisp primitives are bound
// to the most recently created commander.
func NewCommander(e gott.Editor) *Commander {
	c := &Commander{editor: e, mode: gott.ModeEdit}
	c.bindPrimitives()
	return c
}

func (c *Commander) GetMode() int {
	return c.mode
}

func (c *Commander) SetMode(m int) {
	c.mode = m
}

func (c *Commander) SetSettingsPath(path string) {
	c.settingsPath = path
}

func (c *Commander) IsRunning() bool {
	return c.mode != gott.ModeQuit
}

func (c *Commander) ProcessEvent(event *gott.Event) error {
	if c.debug {
		c.message = fmt.Sprintf("event=%+v", event)
	}
	switch event.Type {
	case gott.EventKey:
		return c.ProcessKey(event)
	case gott.EventResize:
		return c.ProcessResize(event)
	default:
		return nil
	}
}

func (c *Commander) ProcessResize(event *gott.Event) error {
	return nil
}

// perform runs an editing operation unless the current buffer is read-only.
func (c *Commander) perform(op gott.Operation, multiplier int) bool {
	e := c.editor
	if e.GetBuffer().GetReadOnly() {
		c.message = fmt.Sprintf("%s is read-only", e.GetBuffer().GetName())
		return false
	}
	e.Perform(op, multiplier)
	return true
}

func (c *Commander) ProcessKeyEditMode(event *gott.Event) error {
	e := c.editor

	key := event.Key
	ch := event.Ch

	// multikey commands have highest precedence
	if len(c.editKeys) > 0 {
		switch c.editKeys {
		case "d":
			switch ch {
			case 'd':
				c.perform(&operations.DeleteRow{}, c.Multiplier())
			}
		case "r":
			if key == gott.KeySpace {
				ch = ' '
			}
			if ch != 0 {
				c.perform(operations.ReplaceCharacters(e, ch, c.Multiplier()), 1)
			}
		case "y":
			switch ch {
			case 'y':
				e.YankRow(c.Multiplier())
			}
		case ">":
			switch ch {
			case '>':
				c.perform(&operations.Indent{Increase: true}, c.Multiplier())
			}
		case "<":
			switch ch {
			case '<':
				c.perform(&operations.Indent{Increase: false}, c.Multiplier())
			}
		}
		c.editKeys = ""
		return nil
	}
	if key != 0 {
		switch key {
		case gott.KeyEsc:
			c.multiplier = ""
		case gott.KeyCtrlB, gott.KeyPgup:
			e.PageUp(c.Multiplier())
		case gott.KeyCtrlF, gott.KeyPgdn:
			e.PageDown(c.Multiplier())
		case gott.KeyCtrlA, gott.KeyHome:
			e.MoveToBeginningOfLine()
		case gott.KeyCtrlE, gott.KeyEnd:
			e.MoveToEndOfLine()
		case gott.KeyArrowUp:
			e.MoveCursor(gott.MoveUp, c.Multiplier())
		case gott.KeyArrowDown:
			e.MoveCursor(gott.MoveDown, c.Multiplier())
		case gott.KeyArrowLeft:
			e.MoveCursor(gott.MoveLeft, c.Multiplier())
		case gott.KeyArrowRight:
			e.MoveCursor(gott.MoveRight, c.Multiplier())
		}
	}
	if ch != 0 {
		switch ch {
		//
		// command multipliers are saved when operations are created
		//
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			if ch == '0' && c.multiplier == "" {
				e.MoveToBeginningOfLine()
			} else {
				c.multiplier += string(ch)
			}
		//
		// commands go to the message bar
		//
		case ':':
			c.mode = gott.ModeCommand
			c.command = ""
		//
		// search queries go to the message bar
		//
		case '/':
			c.mode = gott.ModeSearch
			c.searchText = ""
		case 'n': // repeat the last search
			e.PerformSearch(c.searchText)
		//
		// lisp commands go to the message bar
		//
		case '(':
			c.mode = gott.ModeLisp
			c.lispText = "("
		//
		// cursor movement isn't logged
		//
		case 'h':
			e.MoveCursor(gott.MoveLeft, c.Multiplier())
		case 'j':
			e.MoveCursor(gott.MoveDown, c.Multiplier())
		case 'k':
			e.MoveCursor(gott.MoveUp, c.Multiplier())
		case 'l':
			e.MoveCursor(gott.MoveRight, c.Multiplier())
		case '$':
			e.MoveToEndOfLine()
		//
		// "performed" operations are saved for undo and repetition
		//
		case 'i':
			c.perform(&operations.Insert{Position: gott.InsertAtCursor, Commander: c}, c.Multiplier())
		case 'a':
			c.perform(&operations.Insert{Position: gott.InsertAfterCursor, Commander: c}, c.Multiplier())
		case 'I':
			c.perform(&operations.Insert{Position: gott.InsertAtStartOfLine, Commander: c}, c.Multiplier())
		case 'A':
			c.perform(&operations.Insert{Position: gott.InsertAfterEndOfLine, Commander: c}, c.Multiplier())
		case 'o':
			c.perform(&operations.Insert{Position: gott.InsertAtNewLineBelowCursor, Commander: c}, c.Multiplier())
		case 'O':
			c.perform(&operations.Insert{Position: gott.InsertAtNewLineAboveCursor, Commander: c}, c.Multiplier())
		case 'x':
			c.perform(&operations.DeleteCharacter{}, c.Multiplier())
		case 'J':
			c.perform(&operations.JoinLine{}, c.Multiplier())
		case 'p': // PasteText
			c.perform(&operations.Paste{}, c.Multiplier())
		//
		// a few keys open multi-key commands
		//
		case 'd', 'y', 'r', '>', '<':
			c.editKeys = string(ch)
		//
		// undo
		//
		case 'u':
			e.PerformUndo()
		//
		// repeat
		//
		case '.':
			if !e.GetBuffer().GetReadOnly() {
				e.Repeat()
			}
		}
	}
	return nil
}

func (c *Commander) ProcessKeyInsertMode(event *gott.Event) error {
	e := c.editor

	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case gott.KeyEsc: // end an insert operation.
			e.CloseInsert()
			c.mode = gott.ModeEdit
			e.KeepCursorInRow()
		case gott.KeyBackspace2:
			e.BackspaceChar()
		case gott.KeyTab, gott.KeyCtrlT:
			c.performInInsertMode(&operations.Indent{Increase: true, AtCursor: true})
		case gott.KeyCtrlD:
			c.performInInsertMode(&operations.Indent{Increase: false, AtCursor: true})
		case gott.KeyEnter:
			if edit, ok := e.ListNewline(); ok {
				c.performInInsertMode(&operations.ContinueList{Edit: edit})
			} else {
				e.InsertChar('\n')
			}
		case gott.KeySpace:
			e.InsertChar(' ')
		}
	}
	if ch != 0 {
		e.InsertChar(ch)
	}
	return nil
}

// performInInsertMode closes the current insert, performs op as a separate
// undoable step, and opens a new insert at the cursor.
func (c *Commander) performInInsertMode(op gott.Operation) {
	e := c.editor
	e.CloseInsert()
	e.Perform(op, 1)
	e.Perform(&operations.Insert{Position: gott.InsertAtCursor, Commander: c}, 1)
}

func (c *Commander) ProcessKeyCommandMode(event *gott.Event) error {
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case gott.KeyEsc:
			c.mode = gott.ModeEdit
		case gott.KeyEnter:
			c.PerformCommand()
		case gott.KeyBackspace2:
			c.command = dropLast(c.command)
		case gott.KeySpace:
			c.command += " "
		}
	}
	if ch != 0 {
		c.command = c.command + string(ch)
	}
	return nil
}

func (c *Commander) ProcessKeySearchMode(event *gott.Event) error {
	e := c.editor

	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case gott.KeyEsc:
			c.mode = gott.ModeEdit
		case gott.KeyEnter:
			e.PerformSearch(c.searchText)
			c.mode = gott.ModeEdit
		case gott.KeyBackspace2:
			c.searchText = dropLast(c.searchText)
		case gott.KeySpace:
			c.searchText += " "
		}
	}
	if ch != 0 {
		c.searchText = c.searchText + string(ch)
	}
	return nil
}

func (c *Commander) ProcessKeyLispMode(event *gott.Event) error {
	key := event.Key
	ch := event.Ch
	if key != 0 {
		switch key {
		case gott.KeyEsc:
			c.mode = gott.ModeEdit
		case gott.KeyEnter:
			c.mode = gott.ModeEdit
			c.message = c.ParseEval(c.lispText)
		case gott.KeyBackspace2:
			c.lispText = dropLast(c.lispText)
		case gott.KeySpace:
			c.lispText += " "
		}
	}
	if ch != 0 {
		c.lispText = c.lispText + string(ch)
	}
	return nil
}

func (c *Commander) ProcessKey(event *gott.Event) error {
	var err error
	switch c.mode {
	case gott.ModeEdit:
		err = c.ProcessKeyEditMode(event)
	case gott.ModeInsert:
		err = c.ProcessKeyInsertMode(event)
	case gott.ModeCommand:
		err = c.ProcessKeyCommandMode(event)
	case gott.ModeSearch:
		err = c.ProcessKeySearchMode(event)
	case gott.ModeLisp:
		err = c.ProcessKeyLispMode(event)
	}
	return err
}

func (c *Commander) PerformCommand() {
	e := c.editor

	c.mode = gott.ModeEdit
	c.message = ""
	parts := strings.Fields(c.command)
	c.command = ""
	if len(parts) == 0 {
		return
	}

	if i, err := strconv.Atoi(parts[0]); err == nil {
		c.gotoLine(i)
		return
	}
	switch parts[0] {
	case "q":
		c.mode = gott.ModeQuit
	case "r":
		if len(parts) == 2 {
			c.report(e.ReadFile(parts[1]))
		}
	case "debug":
		if len(parts) == 2 {
			if parts[1] == "on" {
				c.debug = true
			} else if parts[1] == "off" {
				c.debug = false
			}
		}
	case "w", "wq":
		filename := e.GetBuffer().GetFileName()
		if len(parts) == 2 {
			filename = parts[1]
		}
		err := e.WriteFile(filename)
		c.report(err)
		if err == nil && parts[0] == "wq" {
			c.mode = gott.ModeQuit
		}
	case "$":
		c.gotoLine(e.GetBuffer().GetRowCount())
	case "buffer":
		if len(parts) > 1 {
			number, err := strconv.Atoi(parts[1])
			if err == nil {
				err = e.SelectBuffer(number)
			}
			c.report(err)
		}
	case "buffers":
		e.ListBuffers()
	case "eval":
		output := c.ParseEval(string(e.Bytes()))
		e.Output(output)
	case "preview":
		width := 0
		if len(parts) > 1 {
			var err error
			if width, err = strconv.Atoi(parts[1]); err != nil {
				c.report(err)
				return
			}
		}
		c.report(e.Preview(width))
	case "set":
		c.set(parts[1:])
	case "save-settings":
		if c.settingsPath == "" {
			c.message = "no settings file"
			return
		}
		c.report(e.GetSettings().Save(c.settingsPath))
	default:
		c.message = fmt.Sprintf("unknown command: %s", parts[0])
	}
}

// set shows all settings, shows one setting, or changes one setting.
func (c *Commander) set(args []string) {
	e := c.editor
	settings := e.GetSettings()
	switch len(args) {
	case 0:
		e.Output(settings.String())
	case 1:
		value, err := settings.Get(args[0])
		if err != nil {
			c.report(err)
			return
		}
		c.message = args[0] + "=" + value
	default:
		if err := settings.Set(args[0], strings.Join(args[1:], " ")); err != nil {
			c.report(err)
			return
		}
		e.SetSettings(settings)
	}
}

// gotoLine moves the cursor to the start of a line, numbered from 1.
func (c *Commander) gotoLine(line int) {
	e := c.editor
	newRow := line - 1
	if newRow > e.GetBuffer().GetRowCount()-1 {
		newRow = e.GetBuffer().GetRowCount() - 1
	}
	if newRow < 0 {
		newRow = 0
	}
	e.SetCursor(gott.Point{Row: newRow, Col: 0})
}

func (c *Commander) report(err error) {
	if err != nil {
		log.Printf("%s", err)
		c.message = err.Error()
	}
}

func (c *Commander) Multiplier() int {
	if c.multiplier == "" {
		return 1
	}
	i, err := strconv.ParseInt(c.multiplier, 10, 64)
	c.multiplier = ""
	if err != nil || i < 1 {
		return 1
	}
	return int(i)
}

func (c *Commander) GetSearchText() string {
	return c.searchText
}

func (c *Commander) GetLispText() string {
	return c.lispText
}

func (c *Commander) GetCommand() string {
	return c.command
}

func (c *Commander) GetMessage() string {
	return c.message
}

func dropLast(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	return string(runes[:len(runes)-1])
}

