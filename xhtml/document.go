// document.go -
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

import (
	"io"

	"github.com/google/uuid"
)

const baseNameSpaceURL = "https://github.com/grencez/tex2web/"

// Document holds the information needed to wrap a converted body
// into a complete XHTML document.  Title, Author and Date must
// already be HTML escaped.
type Document struct {
	UUID uuid.UUID

	Title  string
	Author string
	Date   string

	// Stylesheet, if set, is the URL of an external stylesheet.  The
	// inline <style> block is omitted in this case.  Unlike the other
	// fields, the URL is plain text and is escaped on output.
	Stylesheet string

	// ExtraCSS is appended to the inline stylesheet.
	ExtraCSS string
}

// NewDocument returns a new document.  The identifier is used to
// derive a stable UUID for the document, and should normally be the
// name of the input file.
func NewDocument(identifier string) *Document {
	nameSpace := uuid.NewSHA1(uuid.NameSpaceURL, []byte(baseNameSpaceURL))
	return &Document{
		UUID: uuid.NewSHA1(nameSpace, []byte(identifier)),
	}
}

// WriteHead writes everything up to and including the title block.
func (doc *Document) WriteHead(w io.Writer) error {
	return doc.writeTemplates(w, []string{"head.xhtml"})
}

// WriteFoot writes the closing tags of the document.
func (doc *Document) WriteFoot(w io.Writer) error {
	return doc.writeTemplates(w, []string{"foot.xhtml"})
}

// WriteStylesheet writes the text of the default stylesheet, as it
// would be inlined into the document head.
func (doc *Document) WriteStylesheet(w io.Writer) error {
	return doc.writeTemplates(w, []string{"stylesheet.css"})
}
