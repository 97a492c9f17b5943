// listing_test.go -
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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeInputListing(t *testing.T) {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "prog.go")
	require.NoError(t, os.WriteFile(fileName, []byte("package main // a<b\n"), 0o644))
	in := "\\codeinputlisting{" + fileName + "}"

	out, _, err := render(t, in, nil)
	require.NoError(t, err)
	assert.Equal(t, "\n<pre><code>package main // a&lt;b</code></pre>", out)

	out, _, err = render(t, in, &Options{Highlight: true})
	require.NoError(t, err)
	assert.Contains(t, out, "<span class=")
	assert.Contains(t, out, "a&lt;b")
	assert.NotContains(t, out, "<pre class=\"chroma\"")

	_, _, err = render(t, "\\codeinputlisting{missing.c}", nil)
	assert.True(t, errors.Is(err, ErrFileNotFound), "wrong error %v", err)
}

func TestHighlightCSS(t *testing.T) {
	css, err := highlightCSS("")
	require.NoError(t, err)
	assert.Contains(t, css, ".chroma")
}
