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

// Package highlight renders fenced code block content as syntax
// highlighted text, for the terminal ([ANSI]) and for the HTML view
// ([HTML]). It is a pure function over a (code, language) pair: it
// never looks at a Reducer or a Block directly, matching the "out of
// scope" contract the core reducer draws around syntax highlighting.
package highlight

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// defaultStyleName is the bundled chroma style used for both renderers
// until overridden with [SetStyle]. It's dark-background-friendly,
// matching the terminal UI's default theme.
const defaultStyleName = "monokai"

var styleName = defaultStyleName

// SetStyle changes the chroma style used by subsequent ANSI and HTML
// calls, for callers (the reference CLI's configuration) that let a
// user pick a different syntax theme. An unrecognized name leaves the
// previous style in place rather than erroring, matching this
// package's best-effort posture toward bad input.
func SetStyle(name string) {
	if _, ok := styles.Registry[name]; !ok {
		return
	}
	styleName = name
}

func lexerFor(lang string) chroma.Lexer {
	var lexer chroma.Lexer
	if lang != "" {
		lexer = lexers.Get(lang)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}

func styleFor() *chroma.Style {
	if style := styles.Get(styleName); style != nil {
		return style
	}
	return styles.Fallback
}

// ANSI renders code as ANSI-escaped text for terminal display. An
// unrecognized or empty lang falls back to a plain-text lexer rather
// than erroring: the caller may be rendering a code fence whose
// language hasn't streamed in yet.
func ANSI(code, lang string) (string, error) {
	lexer := lexerFor(lang)
	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code, nil
	}

	var buf strings.Builder
	if err := formatters.TTY16m.Format(&buf, styleFor(), iterator); err != nil {
		return code, nil
	}
	return buf.String(), nil
}

// HTML renders code as an HTML fragment (chroma's own <pre><code>
// wrapper, with inline per-token styles) for embedding in the HTML
// view. An unrecognized or empty lang falls back to plain text.
func HTML(code, lang string) (string, error) {
	lexer := lexerFor(lang)
	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return escapeFallback(code), nil
	}

	formatter := chromahtml.New(chromahtml.WithClasses(false), chromahtml.Standalone(false))
	var buf strings.Builder
	if err := formatter.Format(&buf, styleFor(), iterator); err != nil {
		return escapeFallback(code), nil
	}
	return buf.String(), nil
}

func escapeFallback(code string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return "<pre><code>" + r.Replace(code) + "</code></pre>"
}
