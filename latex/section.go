// section.go -
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
	"strconv"
	"strings"

	"github.com/grencez/tex2web/latex/scanner"
)

// sectionCommand returns the command for a heading at the given level,
// 1 for \section and 2 for \subsection.
func sectionCommand(level int) command {
	return funcCommand(func(conv *converter, cur *scanner.Cursor, eol bool) error {
		numbered := !cur.Expect("*")
		arg, err := readArg(cur)
		if err != nil {
			return err
		}
		conv.closeParagraph()

		var prefix string
		if numbered {
			conv.section.Inc(level)
			prefix = conv.section.Label() + " "
		}

		conv.headingID = ""
		conv.inHeading = true
		title, err := conv.renderInline(arg)
		conv.inHeading = false
		if err != nil {
			return err
		}

		id := conv.headingID
		if id == "" {
			label, ok, err := readFollowingLabel(cur)
			if err != nil {
				return err
			}
			switch {
			case ok:
				id = conv.addLabel(cur, label)
			case numbered:
				id = xRefNormalise("sec:"+conv.section.String(), conv.ids)
			}
		}

		tag := "h" + strconv.Itoa(level+2)
		conv.out.WriteString("\n<" + tag)
		if id != "" {
			conv.out.WriteString(` id="` + id + `"`)
		}
		conv.out.WriteString(">" + prefix + title + "</" + tag + ">")
		if numbered {
			conv.toc.Add(level, id, prefix+title)
		}
		return nil
	})
}

// readFollowingLabel consumes a \label command which follows a heading,
// possibly after white space.  Otherwise the cursor is left unchanged.
func readFollowingLabel(cur *scanner.Cursor) (string, bool, error) {
	mark := cur.Mark()
	cur.SkipSpace()
	if !cur.Expect("\\") || readName(cur) != "label" {
		cur.Reset(mark)
		return "", false, nil
	}
	arg, err := readArg(cur)
	if err != nil {
		return "", false, err
	}
	return strings.TrimSpace(arg.String()), true, nil
}

func cmdTableOfContents(conv *converter, cur *scanner.Cursor, eol bool) error {
	if conv.out != conv.body {
		conv.warn(cur, "\\tableofcontents ignored inside inline text")
		return nil
	}
	conv.closeParagraph()
	conv.showTOC = true
	conv.body.Defer(conv.toc.Bytes)
	return nil
}

func cmdLabel(conv *converter, cur *scanner.Cursor, eol bool) error {
	arg, err := readArg(cur)
	if err != nil {
		return err
	}
	id := conv.addLabel(cur, strings.TrimSpace(arg.String()))
	if conv.inHeading {
		// a label inside the heading text names the heading
		if conv.headingID == "" {
			conv.headingID = id
		} else {
			conv.warn(cur, "several labels in one heading")
		}
		return nil
	}
	conv.out.WriteString(`<a id="` + id + `"></a>`)
	return nil
}

func cmdRef(conv *converter, cur *scanner.Cursor, eol bool) error {
	arg, err := readArg(cur)
	if err != nil {
		return err
	}
	label := strings.TrimSpace(arg.String())
	conv.startText(eol)

	if html, ok := conv.refHTML(label); ok || conv.out != conv.body {
		if !ok {
			conv.warn(cur, "undefined label %q", label)
		}
		conv.out.WriteString(html)
		return nil
	}

	// The label may be defined further down.
	loc := location(cur)
	conv.body.Defer(func() []byte {
		html, ok := conv.refHTML(label)
		if !ok {
			conv.report(Diagnostic{
				Severity: SeverityWarning,
				Message:  "undefined label " + strconv.Quote(label),
				Location: loc,
			})
		}
		return []byte(html)
	})
	return nil
}
