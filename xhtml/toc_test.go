// toc_test.go -
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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTOCNesting(t *testing.T) {
	toc := &TOC{}
	assert.True(t, toc.Empty())
	toc.Add(1, "sec:1", "1. A")
	toc.Add(2, "sec:1.1", "1.1. x")
	toc.Add(2, "sec:1.2", "1.2. y")
	toc.Add(1, "sec:2", "2. B")
	toc.Close()

	expected := strings.Join([]string{
		"",
		`<ol class="toc">`,
		`<li><a href="#sec:1">1. A</a>`,
		`<ol>`,
		`<li><a href="#sec:1.1">1.1. x</a></li>`,
		`<li><a href="#sec:1.2">1.2. y</a></li>`,
		`</ol></li>`,
		`<li><a href="#sec:2">2. B</a></li>`,
		`</ol>`,
	}, "\n")
	assert.Equal(t, expected, string(toc.Bytes()))
	assert.False(t, toc.Empty())
}

func TestTOCBalanced(t *testing.T) {
	// subsection before the first section, and a close from level 2
	toc := &TOC{}
	toc.Add(2, "a", "0.1. a")
	toc.Add(1, "b", "1. b")
	toc.Add(2, "c", "1.1. c")
	toc.Close()

	out := string(toc.Bytes())
	assert.Equal(t, strings.Count(out, "<ol"), strings.Count(out, "</ol>"))
	assert.Equal(t, strings.Count(out, "<li>"), strings.Count(out, "</li>"))
	assert.True(t, strings.HasSuffix(out, "</li>\n</ol></li>\n</ol>"))
}
