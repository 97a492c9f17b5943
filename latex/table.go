// table.go -
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
	"strings"

	"github.com/grencez/tex2web/latex/scanner"
)

type column struct {
	align       string
	left, right bool
}

func (col column) class() string {
	var classes []string
	if col.left {
		classes = append(classes, "lborder")
	}
	if col.right {
		classes = append(classes, "rborder")
	}
	return strings.Join(append(classes, col.align), " ")
}

var alignments = map[byte]string{
	'l': "left",
	'c': "center",
	'r': "right",
}

// parseColSpec converts a tabular column specification like "|l|c|r|"
// into the list of columns.  Unsupported characters are returned in
// `bad`.
func parseColSpec(spec string) (cols []column, bad string) {
	border := false
	for i := 0; i < len(spec); i++ {
		c := spec[i]
		switch {
		case c == '|':
			if len(cols) > 0 && !border {
				cols[len(cols)-1].right = true
			}
			border = true
		case alignments[c] != "":
			if len(cols) > 0 && border {
				// a border between two columns belongs to the right one
				cols[len(cols)-1].right = false
			}
			cols = append(cols, column{align: alignments[c], left: border})
			border = false
		case c == ' ' || c == '\t' || c == '\n':
			// ignored
		case c == '{':
			end := strings.IndexByte(spec[i:], '}')
			if end < 0 {
				end = len(spec) - i - 1
			}
			bad += spec[i : i+end+1]
			i += end
		default:
			bad += string(c)
		}
	}
	return cols, bad
}

type tableRow struct {
	cells       []*scanner.Cursor
	top, bottom bool
}

// splitRows splits the body of a tabular environment into rows.
func splitRows(body *scanner.Cursor) []*tableRow {
	var rows []*tableRow
	for _, seg := range splitTop(body, "\\\\") {
		top := false
		for {
			seg.SkipSpace()
			if !seg.Expect("\\hline") {
				break
			}
			top = true
		}
		if isBlank(seg.Bytes()) {
			if top && len(rows) > 0 {
				rows[len(rows)-1].bottom = true
			}
			continue
		}
		rows = append(rows, &tableRow{
			cells: splitTop(seg, "&"),
			top:   top,
		})
	}
	return rows
}

// splitTop splits the unread input of cur at each occurrence of sep
// outside of braces.  Characters after a backslash are skipped, except
// where they form part of sep.
func splitTop(cur *scanner.Cursor, sep string) []*scanner.Cursor {
	data := cur.Bytes()
	var res []*scanner.Cursor
	start, depth := 0, 0
	for i := 0; i < len(data); i++ {
		if depth == 0 && bytes.HasPrefix(data[i:], []byte(sep)) {
			res = append(res, cur.Overlay(start, i))
			i += len(sep) - 1
			start = i + 1
			continue
		}
		switch data[i] {
		case '\\':
			i++
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		}
	}
	return append(res, cur.Overlay(start, len(data)))
}

func envTabular(conv *converter, cur *scanner.Cursor, eol bool) error {
	cur.SkipSpace()
	if !cur.Expect("{") {
		return cur.Wrap(ErrMissingColumnSpec, "tabular without column specification")
	}
	spec, err := readBalanced(cur, '{', '}')
	if err != nil {
		return err
	}
	body, err := cur.ReadUntil("\\end{tabular}")
	if err != nil {
		return cur.Wrap(ErrUnterminatedEnvironment,
			"\\begin{tabular} without \\end{tabular}")
	}

	cols, bad := parseColSpec(spec.String())
	if bad != "" {
		conv.warn(spec, "unsupported column specification %q", bad)
	}
	rows := splitRows(body)

	conv.closeParagraph()
	conv.out.WriteString("\n<table>")
	for _, row := range rows {
		var classes []string
		if row.top {
			classes = append(classes, "tborder")
		}
		if row.bottom {
			classes = append(classes, "bborder")
		}
		conv.out.WriteString("\n<tr")
		if classes != nil {
			conv.out.WriteString(` class="` + strings.Join(classes, " ") + `"`)
		}
		conv.out.WriteString(">")

		for j, cell := range row.cells {
			col := column{align: "left"}
			if j < len(cols) {
				col = cols[j]
			} else if j == len(cols) {
				conv.warn(cell, "table row has more cells than columns")
			}
			conv.out.WriteString(`<td class="` + col.class() + `">`)
			err = conv.parseInline(cell.TrimSpace())
			if err != nil {
				return err
			}
			conv.out.WriteString("</td>")
		}
		conv.out.WriteString("</tr>")
	}
	conv.out.WriteString("\n</table>")
	conv.cram = false
	return nil
}
