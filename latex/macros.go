// macros.go -
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

	"github.com/grencez/tex2web/latex/scanner"
)

// MacroTable maps user-defined macro names (without the leading
// backslash) to their replacement text.  The replacement text is
// stored in escaped form, so that using a macro only requires copying
// bytes.
type MacroTable struct {
	defs map[string]string
}

// NewMacroTable returns an empty macro table.
func NewMacroTable() *MacroTable {
	return &MacroTable{
		defs: make(map[string]string),
	}
}

// Define adds a macro to the table, replacing any previous definition
// of the same name.  The body must already be escaped.
func (mt *MacroTable) Define(name, body string) {
	mt.defs[name] = body
}

// Lookup returns the escaped replacement text for a macro.
func (mt *MacroTable) Lookup(name string) (string, bool) {
	body, ok := mt.defs[name]
	return body, ok
}

// defineMacro escapes body, using the macros defined so far, and
// stores the result under name.
func (conv *converter) defineMacro(name string, body *scanner.Cursor) error {
	buf := &bytes.Buffer{}
	err := conv.escape(buf, body, true)
	if err != nil {
		return err
	}
	conv.macros.Define(name, buf.String())
	return nil
}

// expandMacro writes the replacement text of the named macro to dst.
// A brace-delimited argument directly after the macro name is
// discarded.
func (conv *converter) expandMacro(dst *bytes.Buffer, cur *scanner.Cursor, name string) error {
	if body, ok := conv.macros.Lookup(name); ok {
		dst.WriteString(body)
	} else {
		conv.warn(cur, "unrecognized macro \\%s", name)
	}
	if cur.Expect("{") {
		_, err := readBalanced(cur, '{', '}')
		if err != nil {
			return err
		}
	}
	return nil
}
