// diag.go -
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
	"fmt"
	"strconv"

	"github.com/grencez/tex2web/latex/scanner"
)

// Severity classifies diagnostics.
type Severity int

// The severities used for diagnostics.
const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "severity " + strconv.Itoa(int(s))
	}
}

// Diagnostic is a message about a problem in the input.
type Diagnostic struct {
	Severity Severity
	Message  string
	Location string
}

func (d Diagnostic) String() string {
	if d.Location == "" {
		return d.Severity.String() + ": " + d.Message
	}
	return d.Location + ": " + d.Severity.String() + ": " + d.Message
}

// Diagnostics is the list of all diagnostics reported during a
// conversion, in the order they were found.
type Diagnostics []Diagnostic

// Warnings returns the messages of all warnings.
func (ds Diagnostics) Warnings() []string {
	var res []string
	for _, d := range ds {
		if d.Severity == SeverityWarning {
			res = append(res, d.Message)
		}
	}
	return res
}

func location(cur *scanner.Cursor) string {
	return cur.Name() + ":" + strconv.Itoa(cur.Line())
}

func (conv *converter) report(d Diagnostic) {
	conv.diag = append(conv.diag, d)
	if conv.opts.Logger != nil {
		conv.opts.Logger.Println(d)
	}
}

func (conv *converter) warn(cur *scanner.Cursor, format string, args ...interface{}) {
	conv.report(Diagnostic{
		Severity: SeverityWarning,
		Message:  fmt.Sprintf(format, args...),
		Location: location(cur),
	})
}
