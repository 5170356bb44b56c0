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
package screen

import (
	"fmt"
	"log"

	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	gott "jot/types"
)

// The Screen draws the state of an Editor.
type Screen struct {
	size gott.Size // screen size
}

func NewScreen() *Screen {
	// Open the terminal.
	err := termbox.Init()
	if err != nil {
		log.Output(1, err.Error())
		return nil
	}
	termbox.SetOutputMode(termbox.Output256)
	return &Screen{}
}

func (s *Screen) Close() {
	termbox.Close()
}

func (s *Screen) Render(e gott.Editor, c gott.Commander) {
	termbox.Clear(termbox.ColorWhite, termbox.ColorBlack)
	var screenSize gott.Size
	screenSize.Cols, screenSize.Rows = termbox.Size()
	s.size = screenSize

	editSize := screenSize
	editSize.Rows -= 2
	e.SetSize(editSize)

	e.Scroll()
	s.RenderInfoBar(e, c)
	s.RenderMessageBar(e, c)
	bufferOrigin := gott.Point{Row: 0, Col: 0}
	e.GetBuffer().Render(s, bufferOrigin, editSize, e.GetOffset(), e.GetSettings().TabStop)
	cell := e.GetCursorCell()
	termbox.SetCursor(cell.Col-e.GetOffset().Cols, cell.Row-e.GetOffset().Rows)
	termbox.Flush()
}

func (s *Screen) SetCell(j int, i int, c rune, color gott.Color) {
	termbox.SetCell(j, i, c, termbox.Attribute(color), 0x01)
}

func (s *Screen) SetCellReversed(j int, i int, c rune, color gott.Color) {
	termbox.SetCell(j, i, c, termbox.Attribute(color), termbox.ColorWhite)
}

func modeName(mode int) string {
	switch mode {
	case gott.ModeEdit:
		return "edit"
	case gott.ModeInsert:
		return "insert"
	case gott.ModeCommand:
		return "command"
	case gott.ModeSearch:
		return "search"
	case gott.ModeLisp:
		return "lisp"
	default:
		return "quit"
	}
}

func (s *Screen) RenderInfoBar(e gott.Editor, c gott.Commander) {
	b := e.GetBuffer()
	finalText := fmt.Sprintf(" %s %d/%d ", modeName(c.GetMode()), e.GetCursor().Row+1, b.GetRowCount())
	text := fmt.Sprintf(" jot [%d] %s", b.GetIndex(), b.GetName())
	if b.GetReadOnly() {
		text += " (read-only)"
	}
	text = runewidth.Truncate(text, s.size.Cols-len(finalText), "")
	text = runewidth.FillRight(text, s.size.Cols-len(finalText)) + finalText
	s.drawText(text, s.size.Rows-2, true)
}

func (s *Screen) RenderMessageBar(e gott.Editor, c gott.Commander) {
	var line string
	switch c.GetMode() {
	case gott.ModeCommand:
		line += ":" + c.GetCommand()
	case gott.ModeSearch:
		line += "/" + c.GetSearchText()
	case gott.ModeLisp:
		line += c.GetLispText()
	default:
		line += c.GetMessage()
	}
	s.drawText(runewidth.Truncate(line, s.size.Cols, ""), s.size.Rows-1, false)
}

// drawText draws a line of text, advancing by the cell width of each rune.
func (s *Screen) drawText(text string, row int, reversed bool) {
	x := 0
	for _, ch := range text {
		if reversed {
			s.SetCellReversed(x, row, ch, gott.ColorBlack)
		} else {
			s.SetCell(x, row, ch, gott.ColorWhite)
		}
		x += runewidth.RuneWidth(ch)
	}
}

func (s *Screen) GetNextEvent() *gott.Event {
	event := termbox.PollEvent()
	if event.Type == termbox.EventResize {
		termbox.Flush()
	}
	return convertEvent(event)
}

func convertEvent(event termbox.Event) *gott.Event {
	e := &gott.Event{Ch: event.Ch}
	switch event.Type {
	case termbox.EventKey:
		e.Type = gott.EventKey
		e.Key = key(event.Key)
	case termbox.EventResize:
		e.Type = gott.EventResize
	default:
		e.Type = gott.EventOther
	}
	return e
}

func key(k termbox.Key) gott.Key {
	switch k {
	case termbox.KeyArrowDown:
		return gott.KeyArrowDown
	case termbox.KeyArrowLeft:
		return gott.KeyArrowLeft
	case termbox.KeyArrowRight:
		return gott.KeyArrowRight
	case termbox.KeyArrowUp:
		return gott.KeyArrowUp
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		return gott.KeyBackspace2
	case termbox.KeyCtrlA:
		return gott.KeyCtrlA
	case termbox.KeyCtrlB:
		return gott.KeyCtrlB
	case termbox.KeyCtrlD:
		return gott.KeyCtrlD
	case termbox.KeyCtrlE:
		return gott.KeyCtrlE
	case termbox.KeyCtrlF:
		return gott.KeyCtrlF
	case termbox.KeyCtrlT:
		return gott.KeyCtrlT
	case termbox.KeyCtrlU:
		return gott.KeyCtrlU
	case termbox.KeyEnd:
		return gott.KeyEnd
	case termbox.KeyEnter:
		return gott.KeyEnter
	case termbox.KeyEsc:
		return gott.KeyEsc
	case termbox.KeyHome:
		return gott.KeyHome
	case termbox.KeyPgdn:
		return gott.KeyPgdn
	case termbox.KeyPgup:
		return gott.KeyPgup
	case termbox.KeySpace:
		return gott.KeySpace
	case termbox.KeyTab:
		return gott.KeyTab
	default:
		return gott.KeyUnsupported
	}
}
