// Copyright 2026 The mdstream Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package htmlview_test

import (
	"strings"
	"testing"

	"mdstream.dev/go/mdstream"
	"mdstream.dev/go/mdstream/htmlview"
)

func render(t *testing.T, input string) string {
	t.Helper()
	red := mdstream.NewReducer()
	view := htmlview.NewRenderer()
	red.Subscribe(view.Apply)
	red.PushString(input)
	red.Close()
	return view.String()
}

func TestParagraph(t *testing.T) {
	got := render(t, "Hello world\n")
	if !strings.Contains(got, "<p>") || !strings.Contains(got, "Hello world") || !strings.Contains(got, "</p>") {
		t.Errorf("render = %q, want a <p> wrapping the text", got)
	}
}

func TestHeadingLevel(t *testing.T) {
	got := render(t, "## Section\n")
	if !strings.Contains(got, "<h2>Section</h2>") {
		t.Errorf("render = %q, want <h2>Section</h2>", got)
	}
}

func TestEscaping(t *testing.T) {
	got := render(t, "a < b & c\n")
	if strings.Contains(got, "a < b") {
		t.Errorf("render = %q, did not escape '<'", got)
	}
	if !strings.Contains(got, "&lt;") || !strings.Contains(got, "&amp;") {
		t.Errorf("render = %q, want escaped entities", got)
	}
}

func TestListItems(t *testing.T) {
	got := render(t, "- one\n- two\n")
	if !strings.Contains(got, "<li>one</li>") || !strings.Contains(got, "<li>two</li>") {
		t.Errorf("render = %q, want two <li> fragments", got)
	}
}

func TestOrderedListItemValue(t *testing.T) {
	got := render(t, "5. five\n")
	if !strings.Contains(got, `value="5"`) {
		t.Errorf("render = %q, want value=\"5\" on the <li>", got)
	}
}

func TestPatchReplacesInPlace(t *testing.T) {
	red := mdstream.NewReducer()
	view := htmlview.NewRenderer()
	red.Subscribe(view.Apply)

	red.PushString("- first")
	mid := view.String()
	if !strings.Contains(mid, "first") {
		t.Fatalf("mid-stream render = %q, want partial item text", mid)
	}

	red.PushString(" item\n")
	red.Close()
	final := view.String()
	if !strings.Contains(final, "<li>first item</li>") {
		t.Errorf("final render = %q, want completed list item", final)
	}
	if strings.Count(final, "<li>") != 1 {
		t.Errorf("final render = %q, want exactly one <li> (patched in place, not appended)", final)
	}
}

func TestCodeBlockRendersInPre(t *testing.T) {
	red := mdstream.NewReducer()
	view := htmlview.NewRenderer()
	red.Subscribe(view.Apply)

	red.PushString("```go\nfunc f() {}\n```")
	red.Close()

	got := view.String()
	if !strings.Contains(got, "<pre") {
		t.Errorf("render = %q, want a <pre> wrapping the code", got)
	}
	if !strings.Contains(got, "func") {
		t.Errorf("render = %q, lost source text", got)
	}
}
