// escape.go -
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

	"github.com/grencez/tex2web/latex/scanner"
)

const escapeDelims = "\\\"&<>"

var entities = map[byte]string{
	'"': "&quot;",
	'&': "&amp;",
	'<': "&lt;",
	'>': "&gt;",
}

// escape copies the text from cur to dst, replacing characters which
// are special in HTML by entities.  If expand is true, backslash
// sequences are replaced by the corresponding macro bodies.
// Otherwise backslashes are copied literally, as needed for program
// code.
func (conv *converter) escape(dst *bytes.Buffer, cur *scanner.Cursor, expand bool) error {
	for !cur.EOF() {
		text, match := cur.ScanUntil(escapeDelims)
		dst.Write(text.Bytes())
		switch {
		case match == 0:
			// end of input
		case match != '\\':
			dst.WriteString(entities[match])
		case !expand:
			dst.WriteByte('\\')
		default:
			err := conv.escapeSequence(dst, cur)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (conv *converter) escapeSequence(dst *bytes.Buffer, cur *scanner.Cursor) error {
	name := readName(cur)
	if name != "" {
		return conv.expandMacro(dst, cur, name)
	}

	next, ok := cur.Peek()
	switch {
	case !ok:
		conv.warn(cur, "backslash at end of text")
	case next == '\\':
		// a manual line break inside plain text
		cur.Skip(1)
		dst.WriteByte('\n')
	case next == '_' || next == '%' || next == '$' || next == '#' ||
		next == '{' || next == '}':
		cur.Skip(1)
		dst.WriteByte(next)
	case next == '&':
		cur.Skip(1)
		dst.WriteString("&amp;")
	case next == ' ':
		cur.Skip(1)
		dst.WriteString(noBreakSpace)
	default:
		conv.warn(cur, "unrecognized escape \\%c", next)
	}
	return nil
}
