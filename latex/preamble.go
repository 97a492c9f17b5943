// preamble.go -
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

// parsePreamble reads everything up to \begin{document}.  Only the
// document metadata and macro definitions are used; all other
// preamble commands are ignored.
func (conv *converter) parsePreamble(cur *scanner.Cursor) error {
	for {
		_, match := cur.ScanUntil("\\%")
		switch match {
		case 0:
			return cur.Wrap(ErrNoDocument, "no document body")
		case '%':
			cur.SkipLine()
			continue
		}

		var err error
		switch name := readName(cur); name {
		case "begin":
			mark := cur.Mark()
			arg, err := readArg(cur)
			if err == nil && arg.String() == "document" {
				cur.SkipSpace()
				return nil
			}
			cur.Reset(mark)
		case "title":
			conv.doc.Title, err = conv.readField(cur)
		case "author":
			conv.doc.Author, err = conv.readField(cur)
		case "date":
			conv.doc.Date, err = conv.readField(cur)
		case "newcommand", "renewcommand":
			err = cmdNewcommand(conv, cur, false)
		}
		if err != nil {
			return err
		}
	}
}

// readField reads the argument of a metadata command like \title and
// returns it in escaped form.
func (conv *converter) readField(cur *scanner.Cursor) (string, error) {
	arg, err := readArg(cur)
	if err != nil {
		return "", err
	}
	buf := &bytes.Buffer{}
	err = conv.escape(buf, arg.TrimSpace(), true)
	return buf.String(), err
}
