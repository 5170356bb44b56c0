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

package lists

import (
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// typist appends keystrokes to the end of a document.
type typist struct {
	lines []string
}

func (ty *typist) typeText(s string) {
	if len(ty.lines) == 0 {
		ty.lines = []string{""}
	}
	ty.lines[len(ty.lines)-1] += s
}

func (ty *typist) enter() {
	last := len(ty.lines) - 1
	ctx := Context{Before: ty.lines[last]}
	if last > 0 {
		ctx.Above = ty.lines[last-1]
	}
	edit, ok := Newline(ctx)
	if !ok {
		edit = Edit{Start: len([]rune(ctx.Before)), End: len([]rune(ctx.Before)), Text: "\n"}
	}
	replaced := strings.Split(edit.Apply(ty.lines[last]), "\n")
	ty.lines = append(ty.lines[:last], replaced...)
}

func (ty *typist) String() string {
	return strings.Join(ty.lines, "\n")
}

// parseLists returns the top-level markdown lists in source.
func parseLists(t *testing.T, source string) []*ast.List {
	doc := goldmark.New().Parser().Parse(text.NewReader([]byte(source)))
	found := make([]*ast.List, 0)
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if list, ok := n.(*ast.List); ok && entering {
			found = append(found, list)
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("Walk failed: %+v", err)
	}
	return found
}

func TestContinuedBulletsParseAsOneList(t *testing.T) {
	ty := &typist{}
	ty.typeText("- apples")
	ty.enter()
	ty.typeText("pears")
	ty.enter()
	ty.typeText("plums")
	if s := ty.String(); s != "- apples\n- pears\n- plums" {
		t.Fatalf("Unexpected text: '%s'", s)
	}
	found := parseLists(t, ty.String())
	if len(found) != 1 {
		t.Fatalf("Unexpected list count: %d", len(found))
	}
	if found[0].IsOrdered() || found[0].ChildCount() != 3 {
		t.Errorf("Unexpected list: ordered=%t items=%d", found[0].IsOrdered(), found[0].ChildCount())
	}
}

func TestEndedListIsFollowedByParagraph(t *testing.T) {
	ty := &typist{}
	ty.typeText("1. one")
	ty.enter()
	ty.typeText("two")
	ty.enter()
	// Enter on the empty third item ends the list
	ty.enter()
	ty.typeText("After the list.")
	if s := ty.String(); s != "1. one\n2. two\n\nAfter the list." {
		t.Fatalf("Unexpected text: '%s'", s)
	}
	found := parseLists(t, ty.String())
	if len(found) != 1 {
		t.Fatalf("Unexpected list count: %d", len(found))
	}
	if !found[0].IsOrdered() || found[0].Start != 1 || found[0].ChildCount() != 2 {
		t.Errorf("Unexpected list: ordered=%t start=%d items=%d",
			found[0].IsOrdered(), found[0].Start, found[0].ChildCount())
	}
}

func TestLoneMarkerStartsList(t *testing.T) {
	ty := &typist{}
	ty.typeText("1. ")
	ty.enter()
	if s := ty.String(); s != "1. \n2. " {
		t.Errorf("Unexpected text: '%s'", s)
	}
}
