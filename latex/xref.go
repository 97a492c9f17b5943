// xref.go -
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
	"strconv"

	"github.com/grencez/tex2web/latex/scanner"
)

// xRef is a cross-reference target defined by \label.
type xRef struct {
	Label string
	ID    string
	Name  string
}

// xRefNormalise turns a label into a valid and unused HTML id.
func xRefNormalise(label string, used map[string]bool) string {
	var chars []byte
	hyphenSeen := false
	for i := 0; i < len(label); i++ {
		c := label[i]
		if !(isLetter(c) || isDigit(c) || c == '_' || c == ':' || c == '.') {
			c = '-'
		}
		if c == '-' && hyphenSeen {
			continue
		}
		if len(chars) == 0 && !isLetter(c) {
			chars = append(chars, 'x')
		}
		chars = append(chars, c)
		hyphenSeen = c == '-'
	}
	base := string(chars)
	if base == "" {
		base = "x"
	}

	res := base
	for sfx := 2; used[res]; sfx++ {
		res = base + strconv.Itoa(sfx)
	}
	used[res] = true
	return res
}

// addLabel binds a label to the current section number.  The returned
// id is used for the HTML anchor.
func (conv *converter) addLabel(cur *scanner.Cursor, label string) string {
	if old, ok := conv.labels[label]; ok {
		conv.warn(cur, "label %q redefined", label)
		return old.ID
	}
	xr := &xRef{
		Label: label,
		ID:    xRefNormalise(label, conv.ids),
		Name:  conv.section.String(),
	}
	conv.labels[label] = xr
	return xr.ID
}

// refHTML returns the link text for a reference to label, or ok=false
// if the label has not been defined.
func (conv *converter) refHTML(label string) (string, bool) {
	xr, ok := conv.labels[label]
	if !ok {
		return "??", false
	}
	name := xr.Name
	if name == "" {
		name = xr.Label
	}
	return `<a href="#` + xr.ID + `">` + name + "</a>", true
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// readName consumes a command name, which is a non-empty run of
// letters.  If the input does not start with a letter, the empty
// string is returned and nothing is consumed.
func readName(cur *scanner.Cursor) string {
	rest := cur.Bytes()
	n := 0
	for n < len(rest) && isLetter(rest[n]) {
		n++
	}
	cur.Skip(n)
	return string(rest[:n])
}

// readBalanced consumes input up to the closing delimiter which
// matches an already consumed opening delimiter.  Backslash escapes
// are skipped.  On failure the cursor is unchanged.
func readBalanced(cur *scanner.Cursor, open, close byte) (*scanner.Cursor, error) {
	rest := cur.Bytes()
	depth := 0
	for i := 0; i < len(rest); i++ {
		switch rest[i] {
		case '\\':
			i++
		case open:
			depth++
		case close:
			if depth == 0 {
				arg := cur.Overlay(0, i)
				cur.Skip(i + 1)
				return arg, nil
			}
			depth--
		}
	}
	return nil, cur.Wrap(ErrUnterminatedArgument,
		"no matching "+strconv.QuoteRune(rune(close)))
}
