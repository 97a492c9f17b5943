// scanner.go -
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
	"bytes"
	"errors"
	"strings"
)

// ErrUnterminated is wrapped by the errors returned from .ReadUntil()
// when the terminator does not occur in the remaining input.
var ErrUnterminated = errors.New("unterminated token")

// Cursor is a read position inside a window of a byte buffer.  The
// buffer is borrowed, never copied: overlays created by .Overlay(),
// .ScanUntil() and .ReadUntil() refer to sub-ranges of the same
// buffer, and reads on an overlay cannot see past the end of its
// window.
type Cursor struct {
	name   string
	buf    []byte
	start  int
	end    int
	pos    int
	parent *Cursor
}

// New returns a cursor covering all of data.  The argument `name` is
// used to identify the buffer in error messages.
func New(data []byte, name string) *Cursor {
	return &Cursor{
		name: name,
		buf:  data,
		end:  len(data),
	}
}

// Include returns a cursor over data which reports the current
// position of cur as its "included from" location in errors.
func (cur *Cursor) Include(data []byte, name string) *Cursor {
	res := New(data, name)
	res.parent = cur
	return res
}

// Name returns the name of the underlying buffer.
func (cur *Cursor) Name() string {
	return cur.name
}

// Len returns the number of unread bytes in the window.
func (cur *Cursor) Len() int {
	return cur.end - cur.pos
}

// EOF checks whether all of the window has been read.
func (cur *Cursor) EOF() bool {
	return cur.pos >= cur.end
}

// Bytes returns the unread part of the window.  The returned slice
// aliases the underlying buffer and must not be modified.
func (cur *Cursor) Bytes() []byte {
	return cur.buf[cur.pos:cur.end]
}

func (cur *Cursor) String() string {
	return string(cur.Bytes())
}

// Peek returns the next byte without consuming it.
func (cur *Cursor) Peek() (byte, bool) {
	if cur.pos >= cur.end {
		return 0, false
	}
	return cur.buf[cur.pos], true
}

// Skip advances the cursor by n bytes.
func (cur *Cursor) Skip(n int) {
	if n < 0 || cur.pos+n > cur.end {
		panic("invalid skip amount")
	}
	cur.pos += n
}

// Mark returns the current position, for use with .Reset().
func (cur *Cursor) Mark() int {
	return cur.pos
}

// Reset moves the cursor back to a position obtained from .Mark().
func (cur *Cursor) Reset(mark int) {
	if mark < cur.start || mark > cur.end {
		panic("invalid cursor mark")
	}
	cur.pos = mark
}

// Overlay returns a new cursor for the range [start, end) of the
// unread part of the window.
func (cur *Cursor) Overlay(start, end int) *Cursor {
	if start < 0 || start > end || cur.pos+end > cur.end {
		panic("overlay out of range")
	}
	return &Cursor{
		name:   cur.name,
		buf:    cur.buf,
		start:  cur.pos + start,
		end:    cur.pos + end,
		pos:    cur.pos + start,
		parent: cur.parent,
	}
}

// ScanUntil consumes input up to the first byte which occurs in
// delims.  The text before the delimiter is returned as an overlay.
// The delimiter itself is consumed and returned as `match`; if the
// window ends before a delimiter is seen, match is 0.
func (cur *Cursor) ScanUntil(delims string) (text *Cursor, match byte) {
	rest := cur.Bytes()
	idx := bytes.IndexAny(rest, delims)
	if idx < 0 {
		text = cur.Overlay(0, len(rest))
		cur.pos = cur.end
		return text, 0
	}
	text = cur.Overlay(0, idx)
	match = rest[idx]
	cur.pos += idx + 1
	return text, match
}

// Expect consumes the literal s if the unread input starts with s.
// Otherwise the cursor is left unchanged.
func (cur *Cursor) Expect(s string) bool {
	if !bytes.HasPrefix(cur.Bytes(), []byte(s)) {
		return false
	}
	cur.pos += len(s)
	return true
}

// ReadUntil consumes input up to and including the first occurrence
// of term and returns the text before term as an overlay.  If term
// does not occur, the cursor is unchanged and an error wrapping
// ErrUnterminated is returned.
func (cur *Cursor) ReadUntil(term string) (*Cursor, error) {
	idx := bytes.Index(cur.Bytes(), []byte(term))
	if idx < 0 {
		return nil, cur.Wrap(ErrUnterminated, "missing "+quote(term))
	}
	text := cur.Overlay(0, idx)
	cur.pos += idx + len(term)
	return text, nil
}

// SkipLine consumes the rest of the current line, including the
// newline character.
func (cur *Cursor) SkipLine() {
	idx := bytes.IndexByte(cur.Bytes(), '\n')
	if idx < 0 {
		cur.pos = cur.end
		return
	}
	cur.pos += idx + 1
}

// SkipSpace consumes spaces, tabs and newlines.  The return value
// gives the number of newlines seen.
func (cur *Cursor) SkipSpace() int {
	nl := 0
	for cur.pos < cur.end && isSpace(cur.buf[cur.pos]) {
		if cur.buf[cur.pos] == '\n' {
			nl++
		}
		cur.pos++
	}
	return nl
}

// TrimSpace returns an overlay of the unread input without leading
// and trailing white space.
func (cur *Cursor) TrimSpace() *Cursor {
	rest := cur.Bytes()
	a := 0
	for a < len(rest) && isSpace(rest[a]) {
		a++
	}
	b := len(rest)
	for b > a && isSpace(rest[b-1]) {
		b--
	}
	return cur.Overlay(a, b)
}

// Line returns the 1-based line number of the current position
// within the underlying buffer.
func (cur *Cursor) Line() int {
	return bytes.Count(cur.buf[:cur.pos], []byte{'\n'}) + 1
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func quote(s string) string {
	return "\"" + strings.ReplaceAll(s, "\n", "\\n") + "\""
}
