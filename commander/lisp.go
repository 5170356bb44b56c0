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
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/steelseries/golisp"

	"jot/operations"
)

func (c *Commander) bindPrimitives() {
	golisp.MakePrimitiveFunction("list-continuation", "0|1", c.listContinuationImpl)
	golisp.MakePrimitiveFunction("indent", "0|1", c.indentImpl(true))
	golisp.MakePrimitiveFunction("outdent", "0|1", c.indentImpl(false))
	golisp.MakePrimitiveFunction("continue-list", "0", c.continueListImpl)
	golisp.MakePrimitiveFunction("set-option", "2", c.setOptionImpl)
	golisp.MakePrimitiveFunction("insert-text", "1", c.insertTextImpl)
	golisp.MakePrimitiveFunction("cursor-row", "0", c.cursorRowImpl)
	golisp.MakePrimitiveFunction("line-text", "0|1", c.lineTextImpl)
	golisp.MakePrimitiveFunction("goto-line", "1", c.gotoLineImpl)
	golisp.MakePrimitiveFunction("end-of-line", "0", c.endOfLineImpl)
	golisp.MakePrimitiveFunction("write-file", "0|1", c.writeFileImpl)
}

// intArg reads a numeric argument; the reader makes integers, but floats
// are accepted too.
func intArg(d *golisp.Data, name string) (int, error) {
	switch {
	case golisp.IntegerP(d):
		return int(golisp.IntegerValue(d)), nil
	case golisp.FloatP(d):
		return int(golisp.FloatValue(d)), nil
	}
	return 0, fmt.Errorf("%s requires a number argument", name)
}

// textArg reads an argument as a string, printing it if it is not one.
func textArg(d *golisp.Data) string {
	if golisp.StringP(d) {
		return golisp.StringValue(d)
	}
	return golisp.String(d)
}

func (c *Commander) editable(name string) error {
	if c.editor.GetBuffer().GetReadOnly() {
		return fmt.Errorf("%s: %s is read-only", name, c.editor.GetBuffer().GetName())
	}
	return nil
}

// (list-continuation) returns whether Enter continues lists;
// (list-continuation flag) turns it on or off.
func (c *Commander) listContinuationImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	e := c.editor
	settings := e.GetSettings()
	if golisp.Length(args) == 1 {
		settings.ListContinuation = golisp.BooleanValue(golisp.Car(args))
		e.SetSettings(settings)
	}
	return golisp.BooleanWithValue(settings.ListContinuation), nil
}

// (indent [rows]) and (outdent [rows]) shift rows starting at the cursor row.
func (c *Commander) indentImpl(increase bool) func(*golisp.Data, *golisp.SymbolTableFrame) (*golisp.Data, error) {
	name := "outdent"
	if increase {
		name = "indent"
	}
	return func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
		if err := c.editable(name); err != nil {
			return nil, err
		}
		rows := 1
		if golisp.Length(args) == 1 {
			var err error
			if rows, err = intArg(golisp.Car(args), name); err != nil {
				return nil, err
			}
		}
		if rows < 1 {
			return nil, fmt.Errorf("%s requires a positive row count", name)
		}
		c.editor.Perform(&operations.Indent{Increase: increase}, rows)
		return golisp.IntegerWithValue(int64(c.editor.GetCursor().Col)), nil
	}
}

// (continue-list) presses Enter at the cursor. It returns true when a list
// was continued or ended and false when a plain line break was inserted.
func (c *Commander) continueListImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if err := c.editable("continue-list"); err != nil {
		return nil, err
	}
	e := c.editor
	if edit, ok := e.ListNewline(); ok {
		e.Perform(&operations.ContinueList{Edit: edit}, 1)
		return golisp.BooleanWithValue(true), nil
	}
	e.Perform(&operations.Replace{AtCursor: true, Advance: true, Text: "\n"}, 1)
	return golisp.BooleanWithValue(false), nil
}

// (set-option name value) changes a setting and returns its new value.
func (c *Commander) setOptionImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	e := c.editor
	name := textArg(golisp.Car(args))
	value := golisp.Cadr(args)
	var text string
	switch {
	case golisp.IntegerP(value):
		text = strconv.FormatInt(golisp.IntegerValue(value), 10)
	case golisp.StringP(value):
		text = golisp.StringValue(value)
	default:
		text = strconv.FormatBool(golisp.BooleanValue(value))
	}
	settings := e.GetSettings()
	if err := settings.Set(name, text); err != nil {
		return nil, err
	}
	e.SetSettings(settings)
	current, _ := settings.Get(name)
	return golisp.StringWithValue(current), nil
}

// (insert-text text) inserts text at the cursor and moves past it. Row
// breaks in text are inserted as they are, without continuing lists.
func (c *Commander) insertTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if err := c.editable("insert-text"); err != nil {
		return nil, err
	}
	c.editor.Perform(&operations.Replace{AtCursor: true, Advance: true, Text: textArg(golisp.Car(args))}, 1)
	return nil, nil
}

// (cursor-row) returns the cursor line, numbered from 1.
func (c *Commander) cursorRowImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	return golisp.IntegerWithValue(int64(c.editor.GetCursor().Row + 1)), nil
}

// (line-text [line]) returns the text of a line, numbered from 1, or of
// the cursor line.
func (c *Commander) lineTextImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	b := c.editor.GetBuffer()
	row := c.editor.GetCursor().Row
	if golisp.Length(args) == 1 {
		line, err := intArg(golisp.Car(args), "line-text")
		if err != nil {
			return nil, err
		}
		row = line - 1
	}
	if row < 0 || row >= b.GetRowCount() {
		return nil, fmt.Errorf("line-text: no line %d", row+1)
	}
	return golisp.StringWithValue(b.TextAfter(row, 0)), nil
}

// (goto-line line) moves the cursor to the start of a line.
func (c *Commander) gotoLineImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	line, err := intArg(golisp.Car(args), "goto-line")
	if err != nil {
		return nil, err
	}
	c.gotoLine(line)
	return golisp.IntegerWithValue(int64(c.editor.GetCursor().Row + 1)), nil
}

// (end-of-line) moves the cursor past the last character of its line.
func (c *Commander) endOfLineImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	e := c.editor
	cursor := e.GetCursor()
	cursor.Col = e.GetBuffer().GetRowLength(cursor.Row)
	e.SetCursor(cursor)
	return golisp.IntegerWithValue(int64(cursor.Col)), nil
}

// (write-file [name]) saves the current buffer.
func (c *Commander) writeFileImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	e := c.editor
	filename := e.GetBuffer().GetFileName()
	if golisp.Length(args) == 1 {
		filename = textArg(golisp.Car(args))
	}
	if err := e.WriteFile(filename); err != nil {
		return nil, err
	}
	return golisp.StringWithValue(filename), nil
}

// ParseEval evaluates lisp source and returns the printed result or error.
func (c *Commander) ParseEval(source string) string {
	value, err := golisp.ParseAndEval(source)
	if err != nil {
		log.Printf("ERR %+v", err)
		return "ERR " + err.Error()
	}
	log.Printf("SEXPR %+v", golisp.String(value))
	return golisp.String(value)
}

// ParseEvalFile evaluates every expression in a lisp file and returns the
// printed value of the last one.
func (c *Commander) ParseEvalFile(path string) (string, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading script: %w", err)
	}
	value, err := golisp.ParseAndEval("(begin\n" + string(source) + "\n)")
	if err != nil {
		return "", fmt.Errorf("evaluating %s: %w", path, err)
	}
	return golisp.String(value), nil
}

// LoadRC evaluates the startup file if there is one.
func (c *Commander) LoadRC(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	log.Printf("Loading %s", path)
	output, err := c.ParseEvalFile(path)
	if err != nil {
		return err
	}
	log.Printf("Loaded %s: %s", path, output)
	return nil
}
