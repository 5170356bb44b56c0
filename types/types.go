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
package types

import (
	"jot/config"
	"jot/lists"
)

// Editor modes
const (
	ModeEdit    = 0
	ModeInsert  = 1
	ModeCommand = 2
	ModeSearch  = 3
	ModeLisp    = 4
	ModeQuit    = 9999
)

// Move directions
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

// Insert positions
const (
	InsertAtCursor             = 0
	InsertAfterCursor          = 1
	InsertAtStartOfLine        = 2
	InsertAfterEndOfLine       = 3
	InsertAtNewLineBelowCursor = 4
	InsertAtNewLineAboveCursor = 5
)

// Paste modes
const (
	PasteAtCursor = 0
	PasteNewLine  = 1
)

// Event types
const (
	EventKey    = 0
	EventResize = 1
	EventOther  = 2
)

type Key int

// Keys that arrive without a printable character.
const (
	KeyUnsupported Key = iota
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyBackspace2
	KeyCtrlA
	KeyCtrlB
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlT
	KeyCtrlU
	KeyEnd
	KeyEnter
	KeyEsc
	KeyHome
	KeyPgdn
	KeyPgup
	KeySpace
	KeyTab
)

type Event struct {
	Type int
	Key  Key
	Ch   rune
}

type Color uint16

const (
	ColorWhite Color = 0xff
	ColorBlack Color = 0x00
)

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

// A Display is anything that can draw colored cells.
type Display interface {
	SetCell(col int, row int, c rune, color Color)
	SetCellReversed(col int, row int, c rune, color Color)
}

type Editor interface {
	GetCursor() Point
	SetCursor(cursor Point)
	SetSize(size Size)
	GetOffset() Size
	GetBuffer() Buffer
	GetSettings() config.Settings
	SetSettings(s config.Settings)

	MoveCursorToStartOfLine()
	MoveCursorToStartOfLineBelowCursor()

	DeleteRowsAtCursor(multiplier int) string
	DeleteCharactersAtCursor(multiplier int, undo bool, finallyDeleteRow bool) string
	JoinRow(multiplier int) []Point
	InsertChar(c rune)
	InsertText(text string, position int) (Point, int)
	ReplaceText(at Point, count int, text string) (string, Point)

	ListNewline() (lists.Edit, bool)
	IndentSelection(rows int, atCursor bool) (int, lists.Selection)

	SetPasteBoard(text string, mode int)
	GetPasteMode() int
	GetPasteText() string
	RefreshPasteBoard()
	SetInsertOperation(insert InsertOperation)

	Scroll()
	GetCursorCell() Point

	Perform(op Operation, multiplier int)
	YankRow(multiplier int)
	PageUp(multiplier int)
	PageDown(multiplier int)

	MoveToBeginningOfLine()
	MoveToEndOfLine()
	MoveCursor(direction int, multiplier int)
	PerformSearch(text string)
	PerformUndo()
	Repeat()
	CloseInsert()
	KeepCursorInRow()
	BackspaceChar() rune
	ReadFile(path string) error
	WriteFile(path string) error
	Bytes() []byte

	SelectBuffer(number int) error
	ListBuffers()
	Output(text string)
	Preview(width int) error
}

type Buffer interface {
	GetIndex() int
	GetName() string
	GetFileName() string
	GetReadOnly() bool
	GetRowCount() int
	GetRowLength(row int) int
	TextAfter(row, col int) string
	LoadBytes(bytes []byte)
	Render(display Display, origin Point, size Size, offset Size, tabStop int)
}

type Operation interface {
	Perform(e Editor, multiplier int) Operation // performs the operation and returns its inverse
}

type InsertOperation interface {
	Operation
	AddCharacter(c rune)
	DeleteCharacter()
	Close()
	Length() int
}

type Commander interface {
	SetMode(int)
	GetMode() int
	GetSearchText() string
	GetLispText() string
	GetCommand() string
	GetMessage() string
}
