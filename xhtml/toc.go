// toc.go -
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

package xhtml

import "bytes"

// TOC renders a table of contents incrementally, as nested <ol>
// lists.  The list markup is written as entries are added, so that
// the rendered text is always available via .Bytes(); only the
// closing tags are missing until .Close() is called.
type TOC struct {
	buf     bytes.Buffer
	level   int
	entries int
}

// Add appends an entry at the given level (1 for sections, 2 for
// subsections, ...) to the table of contents.  The title must be
// HTML.
func (toc *TOC) Add(level int, id, title string) {
	if level <= 0 {
		panic("invalid TOC level")
	}

	switch {
	case level > toc.level:
		for l := toc.level; l < level; l++ {
			switch {
			case l == 0:
				toc.buf.WriteString("\n<ol class=\"toc\">")
			case l == toc.level:
				toc.buf.WriteString("\n<ol>")
			default:
				toc.buf.WriteString("\n<li>\n<ol>")
			}
		}
	case level < toc.level:
		for l := toc.level; l > level; l-- {
			toc.buf.WriteString("</li>\n</ol>")
		}
		toc.buf.WriteString("</li>")
	default:
		toc.buf.WriteString("</li>")
	}

	toc.buf.WriteString("\n<li><a href=\"#")
	toc.buf.WriteString(id)
	toc.buf.WriteString("\">")
	toc.buf.WriteString(title)
	toc.buf.WriteString("</a>")

	toc.level = level
	toc.entries++
}

// Close writes the closing tags for all open lists.
func (toc *TOC) Close() {
	for ; toc.level > 0; toc.level-- {
		toc.buf.WriteString("</li>\n</ol>")
	}
}

// Bytes returns the rendered table of contents.
func (toc *TOC) Bytes() []byte {
	return toc.buf.Bytes()
}

// Empty checks whether no entries have been added.
func (toc *TOC) Empty() bool {
	return toc.entries == 0
}
