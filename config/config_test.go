// config_test.go -
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

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grencez/tex2web/latex"
)

func writeFile(t *testing.T, fileName, contents string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(fileName), 0o755))
	require.NoError(t, os.WriteFile(fileName, []byte(contents), 0o644))
}

func TestParseDefine(t *testing.T) {
	testCases := []struct {
		in   string
		def  latex.Definition
		fail bool
	}{
		{"ver=1.0", latex.Definition{Name: "ver", Body: "1.0"}, false},
		{"\\eq=a=b", latex.Definition{Name: "eq", Body: "a=b"}, false},
		{"empty", latex.Definition{Name: "empty"}, false},
		{"=x", latex.Definition{}, true},
		{"a1=x", latex.Definition{}, true},
	}
	for _, testCase := range testCases {
		def, err := ParseDefine(testCase.in)
		if testCase.fail {
			assert.True(t, errors.Is(err, ErrInvalidDefine), testCase.in)
			continue
		}
		require.NoError(t, err, testCase.in)
		assert.Equal(t, testCase.def, def, testCase.in)
	}
}

func TestLoadMacroFile(t *testing.T) {
	dir := t.TempDir()
	fileName := filepath.Join(dir, "macros.yaml")
	writeFile(t, fileName, "zeta: last letter\nalpha: '\\textbf{A}'\n\\mid: \"|\"\n")

	defs, err := LoadMacroFile(fileName)
	require.NoError(t, err)
	assert.Equal(t, []latex.Definition{
		{Name: "zeta", Body: "last letter"},
		{Name: "alpha", Body: "\\textbf{A}"},
		{Name: "mid", Body: "|"},
	}, defs)

	writeFile(t, fileName, "- a\n- b\n")
	_, err = LoadMacroFile(fileName)
	assert.True(t, errors.Is(err, ErrInvalidDefine))

	writeFile(t, fileName, "ok: x\nbad:\n  nested: y\n")
	_, err = LoadMacroFile(fileName)
	assert.True(t, errors.Is(err, ErrInvalidDefine))

	writeFile(t, fileName, "")
	defs, err = LoadMacroFile(fileName)
	require.NoError(t, err)
	assert.Empty(t, defs)
}

func TestExpandSearchPaths(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "parts", "a", "x.tex"), "")
	writeFile(t, filepath.Join(dir, "parts", "b", "y.tex"), "")

	paths, err := ExpandSearchPaths([]string{
		"plain",
		filepath.Join(dir, "parts", "*"),
		filepath.Join(dir, "parts", "*", "*.tex"),
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"plain",
		filepath.Join(dir, "parts", "a"),
		filepath.Join(dir, "parts", "b"),
	}, paths)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "tex2web.yaml")
	writeFile(t, configFile, `stylesheet: from-file.css
include:
  - inc
define:
  - ver=1.0
highlight: true
`)
	t.Setenv("TEX2WEB_STYLESHEET", "from-env.css")
	t.Setenv("TEX2WEB_CSS_ONLY", "true")

	s, err := Load(NewViper(), configFile)
	require.NoError(t, err)
	assert.Equal(t, "from-env.css", s.Stylesheet)
	assert.True(t, s.CSSOnly)
	assert.True(t, s.Highlight)
	assert.Equal(t, "github", s.HighlightStyle)
	assert.Equal(t, []string{"inc"}, s.Include)

	opts, err := s.Options()
	require.NoError(t, err)
	assert.Equal(t, []string{"inc"}, opts.SearchPath)
	assert.Equal(t, []latex.Definition{{Name: "ver", Body: "1.0"}}, opts.Macros)
	assert.NotNil(t, opts.Files)

	_, err = Load(NewViper(), filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
