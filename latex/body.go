// body.go -
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
	"github.com/grencez/tex2web/latex/scanner"
)

const bodyDelims = "\n\\%$-"

const noBreakSpace = "&nbsp;"

// parseBody converts the document body, or a part of it, to HTML.
// Parsing stops at the end of the input window or after
// \end{document}.
func (conv *converter) parseBody(cur *scanner.Cursor) error {
	for !conv.endDocument && !cur.EOF() {
		text, match := cur.ScanUntil(bodyDelims)
		err := conv.writeText(text, match)
		if err != nil {
			return err
		}
		eol := conv.eol
		conv.eol = false

		switch match {
		case '\n':
			conv.eol = true
		case '%':
			conv.eol = true
			cur.SkipLine()
		case '\\':
			err = conv.dispatch(cur, eol)
		case '$':
			err = conv.parseMath(cur, eol)
		case '-':
			conv.startText(eol && text.EOF())
			switch {
			case cur.Expect("--"):
				conv.out.WriteString("&mdash;")
			case cur.Expect("-"):
				conv.out.WriteString("&ndash;")
			default:
				conv.out.WriteByte('-')
			}
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// writeText emits a run of plain text.  A line which contains only
// white space ends the current paragraph.
func (conv *converter) writeText(text *scanner.Cursor, match byte) error {
	if isBlank(text.Bytes()) {
		if match == '\n' && conv.eol {
			conv.closeParagraph()
			conv.cram = false
			return nil
		}
		if text.EOF() || !conv.inParagraph {
			return nil
		}
	}
	conv.startText(conv.eol)
	conv.eol = false
	return conv.escape(&conv.out.Buffer, text, true)
}

func (conv *converter) parseMath(cur *scanner.Cursor, eol bool) error {
	term := "$"
	if cur.Expect("$") {
		term = "$$"
	}
	formula, err := cur.ReadUntil(term)
	if err != nil {
		return cur.Wrap(ErrUnterminatedMath, "no closing "+term)
	}
	conv.startText(eol)
	conv.out.WriteString("<i>")
	err = conv.escape(&conv.out.Buffer, formula, false)
	conv.out.WriteString("</i>")
	return err
}

// parseInline converts material which must stay inside the current
// block, like the argument of \textbf or a table cell.
func (conv *converter) parseInline(cur *scanner.Cursor) error {
	inParagraph := conv.inParagraph
	conv.inParagraph = true
	conv.eol = false
	conv.inline++
	err := conv.parseBody(cur)
	conv.inline--
	conv.inParagraph = inParagraph
	conv.eol = false
	return err
}

// renderInline is like parseInline, but returns the HTML instead of
// writing it to the output.
func (conv *converter) renderInline(cur *scanner.Cursor) (string, error) {
	saved := conv.out
	conv.out = &writer{}
	err := conv.parseInline(cur)
	res := conv.out.String()
	conv.out = saved
	return res, err
}

func isBlank(text []byte) bool {
	for _, c := range text {
		if c != ' ' && c != '\t' && c != '\r' && c != '\n' {
			return false
		}
	}
	return true
}
