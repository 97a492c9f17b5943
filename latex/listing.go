// listing.go -
// Copyright (C) 2016  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package latex

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/grencez/tex2web/latex/scanner"
)

func envCode(conv *converter, cur *scanner.Cursor, eol bool) error {
	cur.Expect("\n")
	code, err := cur.ReadUntil("\\end{code}")
	if err != nil {
		return cur.Wrap(ErrUnterminatedEnvironment,
			"\\begin{code} without \\end{code}")
	}
	if n := code.Len(); n > 0 && code.Bytes()[n-1] == '\n' {
		code = code.Overlay(0, n-1)
	}

	conv.openPre()
	err = conv.escape(&conv.out.Buffer, code, false)
	conv.closePre()
	return err
}

func cmdCodeInputListing(conv *converter, cur *scanner.Cursor, eol bool) error {
	arg, err := readArg(cur)
	if err != nil {
		return err
	}
	fileName := strings.TrimSpace(arg.String())
	path, err := conv.resolve(arg, fileName)
	if err != nil {
		return err
	}
	data, err := conv.files.ReadFile(path)
	if err != nil {
		return arg.Wrap(err, "cannot read \""+fileName+"\"")
	}
	data = bytes.TrimSuffix(data, []byte("\n"))

	conv.openPre()
	if conv.opts.Highlight {
		if lexer := lexers.Match(filepath.Base(path)); lexer != nil {
			err = highlight(&conv.out.Buffer, lexer, string(data), conv.opts.HighlightStyle)
			conv.closePre()
			return err
		}
	}
	err = conv.escape(&conv.out.Buffer, scanner.New(data, path), false)
	conv.closePre()
	return err
}

// openPre starts a preformatted block.  The block is crammed to the
// preceding text if it directly follows a paragraph.
func (conv *converter) openPre() {
	cram := conv.inParagraph || conv.cram
	conv.closeParagraph()
	conv.out.WriteString("\n<pre")
	if cram {
		conv.out.WriteString(` class="cram"`)
	}
	conv.out.WriteString("><code>")
}

func (conv *converter) closePre() {
	conv.out.WriteString("</code></pre>")
	conv.cram = true
}

const defaultHighlightStyle = "github"

func highlightFormatter() *chromahtml.Formatter {
	return chromahtml.New(
		chromahtml.WithClasses(true),
		chromahtml.PreventSurroundingPre(true),
	)
}

func highlightStyle(name string) *chroma.Style {
	if name == "" {
		name = defaultHighlightStyle
	}
	style := styles.Get(name)
	if style == nil {
		style = styles.Fallback
	}
	return style
}

func highlight(dst *bytes.Buffer, lexer chroma.Lexer, code, style string) error {
	it, err := chroma.Coalesce(lexer).Tokenise(nil, code)
	if err != nil {
		return err
	}
	return highlightFormatter().Format(dst, highlightStyle(style), it)
}

// highlightCSS returns the style sheet rules for highlighted listings.
func highlightCSS(style string) (string, error) {
	buf := &bytes.Buffer{}
	err := highlightFormatter().WriteCSS(buf, highlightStyle(style))
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
