// driver.go -
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
	"bytes"
	"io"
	"os"

	"github.com/google/renameio"
)

// Destination receives the output of a conversion.  Writes are
// collected until .Close() is called.
type Destination interface {
	io.Writer
	Close() error
}

// StreamDestination writes output directly to an io.Writer, for
// example os.Stdout.
type StreamDestination struct {
	io.Writer
}

// Close implements the Destination interface.
func (StreamDestination) Close() error { return nil }

// FileDestination collects the output in memory and replaces the
// named file atomically on .Close().
type FileDestination struct {
	Path string
	Perm os.FileMode

	buf bytes.Buffer
}

// NewFileDestination returns a destination writing to the named file.
func NewFileDestination(path string) *FileDestination {
	return &FileDestination{
		Path: path,
		Perm: 0644,
	}
}

func (dst *FileDestination) Write(p []byte) (int, error) {
	return dst.buf.Write(p)
}

// Close writes the collected output to the file.
func (dst *FileDestination) Close() error {
	return renameio.WriteFile(dst.Path, dst.buf.Bytes(), dst.Perm)
}
