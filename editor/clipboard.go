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
	"log"
	"strings"

	"github.com/atotto/clipboard"

	gott "jot/types"
)

var errNoClipboard = errors.New("no system clipboard available")

// A Clipboard holds text shared with other programs.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// systemClipboard uses the desktop clipboard (pbcopy, xclip, xsel or wl-copy).
type systemClipboard struct{}

func (systemClipboard) ReadAll() (string, error) {
	if clipboard.Unsupported {
		return "", errNoClipboard
	}
	return clipboard.ReadAll()
}

func (systemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errNoClipboard
	}
	return clipboard.WriteAll(text)
}

func (e *Editor) writeClipboard(text string) {
	if e.clipboard == nil {
		return
	}
	if err := e.clipboard.WriteAll(text); err != nil {
		log.Printf("Clipboard write failed: %v", err)
	}
}

// RefreshPasteBoard replaces the pasteboard with the clipboard contents
// when they differ, so that text copied elsewhere can be pasted.
func (e *Editor) RefreshPasteBoard() {
	if !e.settings.SystemClipboard || e.clipboard == nil {
		return
	}
	text, err := e.clipboard.ReadAll()
	if err != nil {
		log.Printf("Clipboard read failed: %v", err)
		return
	}
	if text == "" || text == e.pasteText {
		return
	}
	e.pasteText = text
	if strings.HasSuffix(text, "\n") {
		e.pasteMode = gott.PasteNewLine
	} else {
		e.pasteMode = gott.PasteAtCursor
	}
}
