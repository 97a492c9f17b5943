// writer.go -
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
	"io"
)

// writer is an output buffer.  Text which is only known at the end of
// the conversion, like the table of contents or forward references,
// is registered with .Defer() and inserted by .Assemble().
type writer struct {
	bytes.Buffer
	splices []splice
}

type splice struct {
	at   int
	fill func() []byte
}

// Defer registers fill to be called at the end of the conversion.
// The result is inserted at the current end of the buffer.
func (w *writer) Defer(fill func() []byte) {
	w.splices = append(w.splices, splice{at: w.Len(), fill: fill})
}

// Assemble writes the buffer contents, with all deferred text
// inserted, to out.
func (w *writer) Assemble(out io.Writer) error {
	data := w.Bytes()
	pos := 0
	for _, s := range w.splices {
		if _, err := out.Write(data[pos:s.at]); err != nil {
			return err
		}
		if _, err := out.Write(s.fill()); err != nil {
			return err
		}
		pos = s.at
	}
	_, err := out.Write(data[pos:])
	return err
}
