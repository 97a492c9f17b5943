// convert.go -
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
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/grencez/tex2web/latex/cache"
	"github.com/grencez/tex2web/latex/scanner"
	"github.com/grencez/tex2web/xhtml"
)

// Definition is a macro definition given outside the document.
type Definition struct {
	Name string
	Body string
}

// Options control the conversion.
type Options struct {
	// SearchPath lists the directories searched by \input and
	// \codeinputlisting, after the directory of the including file.
	SearchPath []string

	// Stylesheet, if non-empty, is the URL of an external stylesheet
	// which replaces the inline style block.
	Stylesheet string

	// Macros are defined before the preamble is read, in order.
	Macros []Definition

	// Highlight enables syntax highlighting for \codeinputlisting.
	Highlight bool

	// HighlightStyle names the chroma style used for highlighting.
	HighlightStyle string

	// Logger, if set, receives every diagnostic as it is reported.
	Logger *log.Logger

	// Files caches the contents of included files.  A new cache is
	// used if this is nil.
	Files *cache.Cache
}

type converter struct {
	state

	opts   *Options
	doc    *xhtml.Document
	macros *MacroTable
	files  *cache.Cache

	body *writer
	out  *writer
	toc  xhtml.TOC

	labels map[string]*xRef
	ids    map[string]bool

	// inputs is the stack of files currently being read, as absolute
	// paths.  The main input file is at the bottom.
	inputs []string

	diag Diagnostics
}

func newConverter(opts *Options) *converter {
	if opts == nil {
		opts = &Options{}
	}
	files := opts.Files
	if files == nil {
		files = cache.NewCache()
	}
	body := &writer{}
	return &converter{
		state: state{
			eol: true,
		},
		opts:   opts,
		macros: NewMacroTable(),
		files:  files,
		body:   body,
		out:    body,
		labels: make(map[string]*xRef),
		ids:    make(map[string]bool),
	}
}

// Convert reads a LaTeX document from src and writes the corresponding
// HTML document to dst.  The argument `name` identifies the input in
// diagnostics and determines the directory used for relative \input
// paths.  All diagnostics found are returned, whether or not the
// conversion succeeds.
//
// If the input is malformed, the HTML written up to the point of the
// error is still completed into a document and written to dst, and
// the error is returned.
func Convert(dst io.Writer, src []byte, name string, opts *Options) (Diagnostics, error) {
	conv := newConverter(opts)
	err := conv.convert(dst, src, name)
	return conv.diag, err
}

// ConvertFile is like Convert, but reads the input from the named
// file.
func ConvertFile(dst io.Writer, fileName string, opts *Options) (Diagnostics, error) {
	src, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}
	return Convert(dst, src, fileName, opts)
}

func (conv *converter) convert(dst io.Writer, src []byte, name string) (err error) {
	conv.doc = xhtml.NewDocument(name)
	conv.doc.Stylesheet = conv.opts.Stylesheet
	if conv.opts.Highlight {
		conv.doc.ExtraCSS, err = highlightCSS(conv.opts.HighlightStyle)
		if err != nil {
			return err
		}
	}

	for _, def := range conv.opts.Macros {
		body := scanner.New([]byte(def.Body), "definition of \\"+def.Name)
		err = conv.defineMacro(def.Name, body)
		if err != nil {
			return err
		}
	}

	abs, err := filepath.Abs(name)
	if err != nil {
		abs = name
	}
	conv.inputs = append(conv.inputs, abs)

	cur := scanner.New(src, name)
	err = conv.parsePreamble(cur)
	if err == nil {
		err = conv.parseBody(cur)
	}
	if err == nil && !conv.endDocument {
		err = cur.Wrap(ErrNoEndDocument, "document ends early")
	}
	if err != nil {
		conv.reportError(err)
	}

	conv.finish()
	e2 := conv.writeDocument(dst)
	if err == nil {
		err = e2
	}
	return err
}

func (conv *converter) reportError(err error) {
	d := Diagnostic{
		Severity: SeverityError,
		Message:  err.Error(),
	}
	var pErr *scanner.ParseError
	if errors.As(err, &pErr) {
		d.Message = pErr.Message
		if pErr.Err != nil {
			d.Message += ": " + pErr.Err.Error()
		}
		name, line := pErr.Location()
		d.Location = name + ":" + strconv.Itoa(line)
	}
	conv.report(d)
}

// finish closes all HTML elements which are still open at the end of
// the input.
func (conv *converter) finish() {
	conv.out = conv.body
	for len(conv.lists) > 0 {
		conv.closeList(conv.lists[len(conv.lists)-1])
	}
	conv.closeParagraph()
	conv.toc.Close()
	if conv.showTOC && conv.toc.Empty() {
		conv.report(Diagnostic{
			Severity: SeverityWarning,
			Message:  "table of contents has no entries",
		})
	}
}

func (conv *converter) writeDocument(dst io.Writer) error {
	err := conv.doc.WriteHead(dst)
	if err != nil {
		return err
	}
	err = conv.body.Assemble(dst)
	if err != nil {
		return err
	}
	return conv.doc.WriteFoot(dst)
}

// WriteStylesheet writes the default stylesheet to w.  If opts enables
// highlighting, the rules for highlighted listings are included.
func WriteStylesheet(w io.Writer, opts *Options) error {
	doc := xhtml.NewDocument("")
	if opts != nil && opts.Highlight {
		css, err := highlightCSS(opts.HighlightStyle)
		if err != nil {
			return err
		}
		doc.ExtraCSS = css
	}
	return doc.WriteStylesheet(w)
}
