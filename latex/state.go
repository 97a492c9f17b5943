// state.go -
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

import "github.com/grencez/tex2web/xhtml"

// state records where in the document structure the converter
// currently is.  It is shared by all nested invocations of the
// command dispatcher.
type state struct {
	// eol is set when the last character read was a newline.
	eol bool

	inParagraph bool
	endDocument bool

	// cram is set if the next block should be rendered without
	// vertical space above.
	cram bool

	// lists holds the HTML tags of all open lists, innermost last.
	lists        []string
	listItemOpen bool

	// inline counts the nested inline contexts, like table cells and
	// headings, in which no paragraphs may be started or ended.
	inline int

	section xhtml.SecNo

	// inHeading is set while the text of a heading is rendered.
	// headingID receives the id of a \label found there.
	inHeading bool
	headingID string

	showTOC bool
}

// openParagraph starts a new paragraph, unless one is open already.
// The return value indicates whether a paragraph was started.
func (conv *converter) openParagraph() bool {
	if conv.inParagraph || conv.inline > 0 {
		return false
	}
	conv.out.WriteString("\n<p")
	if conv.cram {
		conv.out.WriteString(` class="cram"`)
	}
	conv.out.WriteString(">")
	conv.inParagraph = true
	conv.eol = false
	conv.cram = true
	return true
}

// closeParagraph ends the current paragraph.  Inside lists and inline
// contexts this does nothing.
func (conv *converter) closeParagraph() {
	if !conv.inParagraph || len(conv.lists) > 0 || conv.inline > 0 {
		return
	}
	conv.out.WriteString("</p>")
	conv.inParagraph = false
	conv.cram = false
}

// startText prepares the output for inline material.  If eol is set,
// the material started a new input line, and the line break is kept
// in the output.
func (conv *converter) startText(eol bool) {
	opened := conv.openParagraph()
	if eol && !opened && conv.inParagraph {
		conv.out.WriteByte('\n')
	}
}

func (conv *converter) openList(tag string) {
	cram := conv.inParagraph && len(conv.lists) == 0
	if cram {
		conv.closeParagraph()
	}
	conv.inParagraph = true
	conv.lists = append(conv.lists, tag)
	conv.out.WriteString("\n<" + tag)
	if cram {
		conv.out.WriteString(` class="cram"`)
	}
	conv.out.WriteString(">")
	conv.listItemOpen = false
}

func (conv *converter) openItem() {
	if conv.listItemOpen {
		conv.out.WriteString("</li>")
	}
	conv.out.WriteString("\n<li>")
	conv.listItemOpen = true
}

func (conv *converter) closeList(tag string) {
	if conv.listItemOpen {
		conv.out.WriteString("</li>")
	}
	conv.lists = conv.lists[:len(conv.lists)-1]
	conv.out.WriteString("\n</" + tag + ">")
	if len(conv.lists) > 0 {
		conv.out.WriteString("</li>")
	} else {
		conv.inParagraph = false
	}
	conv.listItemOpen = false
}
