// env.go -
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

import "github.com/grencez/tex2web/latex/scanner"

func listEnv(tag string) command {
	return funcCommand(func(conv *converter, cur *scanner.Cursor, eol bool) error {
		conv.openList(tag)
		return nil
	})
}

func endListEnv(tag string) command {
	return funcCommand(func(conv *converter, cur *scanner.Cursor, eol bool) error {
		n := len(conv.lists)
		if n == 0 {
			conv.warn(cur, "list closed but not open")
			return nil
		}
		if open := conv.lists[n-1]; open != tag {
			conv.warn(cur, "<%s> list closed as <%s>", open, tag)
			tag = open
		}
		conv.closeList(tag)
		return nil
	})
}

func cmdItem(conv *converter, cur *scanner.Cursor, eol bool) error {
	if len(conv.lists) == 0 {
		conv.warn(cur, "\\item outside of a list")
		return nil
	}
	label, err := readOptional(cur)
	if err != nil {
		return err
	}
	conv.openItem()
	if label != nil {
		conv.out.WriteString("<b>")
		err = conv.parseInline(label)
		conv.out.WriteString("</b> ")
	}
	cur.SkipSpace()
	return err
}

// alignEnv converts environments like "center" into a <div> with the
// environment name as its class.
func alignEnv(name string) command {
	return funcCommand(func(conv *converter, cur *scanner.Cursor, eol bool) error {
		body, err := cur.ReadUntil("\\end{" + name + "}")
		if err != nil {
			return cur.Wrap(ErrUnterminatedEnvironment,
				"\\begin{"+name+"} without \\end{"+name+"}")
		}
		conv.closeParagraph()
		conv.out.WriteString("\n<div class=\"" + name + "\">")
		conv.eol = true
		err = conv.parseBody(body)
		conv.closeParagraph()
		conv.out.WriteString("\n</div>")
		return err
	})
}

func endDocument(conv *converter, cur *scanner.Cursor, eol bool) error {
	conv.closeParagraph()
	conv.endDocument = true
	return nil
}
