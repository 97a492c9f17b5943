// error.go -
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

package scanner

import (
	"fmt"
	"strconv"
	"strings"
)

// Wrap returns an error object which includes the given message
// together with human-readable information about the current input
// position.  If err is non-nil, it is wrapped by the result, so that
// errors.Is() can be used to classify it.
func (cur *Cursor) Wrap(err error, message string) *ParseError {
	res := &ParseError{
		Message: message,
		Err:     err,
	}
	for src := cur; src != nil; src = src.parent {
		rest := src.buf[src.pos:]
		var context string
		if len(rest) > 20 {
			context = string(rest[:17]) + "..."
		} else {
			context = string(rest)
		}
		res.stack = append(res.stack, stackFrame{
			Name:    src.name,
			Line:    src.Line(),
			Context: context,
		})
	}
	return res
}

type stackFrame struct {
	Name    string
	Line    int
	Context string
}

// ParseError describes a problem in the input, together with the
// position where it was detected and the chain of files which
// included this position.
type ParseError struct {
	Message string
	Err     error
	stack   []stackFrame
}

func (err *ParseError) Error() string {
	res := []string{err.Message}
	if err.Err != nil {
		res = append(res, ": ", err.Err.Error())
	}
	for i, frame := range err.stack {
		if i > 0 {
			res = append(res, ", included from")
		}
		res = append(res, "\n    ",
			frame.Name, ", line ", strconv.Itoa(frame.Line))
		if frame.Context != "" {
			res = append(res, fmt.Sprintf(", before %q", frame.Context))
		}
	}
	return strings.Join(res, "")
}

func (err *ParseError) Unwrap() error {
	return err.Err
}

// Location returns the name and line number of the innermost input
// position.
func (err *ParseError) Location() (string, int) {
	if len(err.stack) == 0 {
		return "", 0
	}
	return err.stack[0].Name, err.stack[0].Line
}
