// cache_test.go -
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

package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "chapter.tex")
	require.NoError(t, os.WriteFile(fileName, []byte("first"), 0o644))

	c := NewCache()
	data, err := c.ReadFile(fileName)
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))

	// later reads are served from memory
	require.NoError(t, os.WriteFile(fileName, []byte("second"), 0o644))
	data, err = c.ReadFile(fileName)
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))
	assert.Equal(t, 1, c.hits)
	assert.Equal(t, 1, c.misses)

	_, err = c.ReadFile(filepath.Join(dir, "missing.tex"))
	assert.True(t, os.IsNotExist(err))
}

func TestSharedContents(t *testing.T) {
	dir := t.TempDir()
	body := []byte("\\section{Licence}\nsame text in every part\n")
	for _, name := range []string{"a.tex", "b.tex"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), body, 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.tex"), []byte("other"), 0o644))

	c := NewCache()
	a, err := c.ReadFile(filepath.Join(dir, "a.tex"))
	require.NoError(t, err)
	b, err := c.ReadFile(filepath.Join(dir, "b.tex"))
	require.NoError(t, err)
	_, err = c.ReadFile(filepath.Join(dir, "c.tex"))
	require.NoError(t, err)

	assert.Equal(t, string(body), string(b))
	assert.True(t, &a[0] == &b[0], "identical files stored twice")

	s := c.Stats()
	assert.Equal(t, 3, s.Files)
	assert.Equal(t, 2, s.Contents)
	assert.Equal(t, int64(len(body)+5), s.Bytes)
	assert.Equal(t, int64(len(body)), s.Shared)
	assert.Equal(t, 3, s.Misses)
	assert.Contains(t, s.String(), "3 files, 47 B in 2 distinct (42 B shared)")
}

func TestFormatSize(t *testing.T) {
	testCases := []struct {
		n   int64
		out string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{2048, "2.0 KiB"},
		{3 << 20, "3.0 MiB"},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.out, formatSize(testCase.n))
	}
}
