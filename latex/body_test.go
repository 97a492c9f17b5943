// body_test.go -
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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grencez/tex2web/latex/scanner"
	"github.com/grencez/tex2web/xhtml"
)

// render converts a fragment of a document body.
func render(t *testing.T, body string, opts *Options) (string, *converter, error) {
	t.Helper()
	conv := newConverter(opts)
	conv.doc = xhtml.NewDocument("test.tex")
	conv.inputs = []string{"test.tex"}
	err := conv.parseBody(scanner.New([]byte(body), "test.tex"))
	conv.finish()
	buf := &bytes.Buffer{}
	require.NoError(t, conv.body.Assemble(buf))
	return buf.String(), conv, err
}

func TestBody(t *testing.T) {
	testCases := []struct {
		in, out string
	}{
		{"Hello \\textbf{world}.", "\n<p>Hello <b>world</b>.</p>"},
		{"one\ntwo\n\nthree", "\n<p>one\ntwo</p>\n<p>three</p>"},
		{"one\n   \nthree", "\n<p>one</p>\n<p>three</p>"},
		{"a < b & \"c\" > d", "\n<p>a &lt; b &amp; &quot;c&quot; &gt; d</p>"},
		{"50\\% \\& \\_ \\{\\}", "\n<p>50% &amp; _ {}</p>"},
		{"a -- b --- c - d", "\n<p>a &ndash; b &mdash; c - d</p>"},
		{"x% comment\ny", "\n<p>x\ny</p>"},
		{"line\\\\next", "\n<p>line<br/>next</p>"},
		{"a\\ b", "\n<p>a&nbsp;b</p>"},
		{"$a<b$", "\n<p><i>a&lt;b</i></p>"},
		{"$$\\sum x$$", "\n<p><i>\\sum x</i></p>"},
		{"\\textit{a \\textbf{b} c}", "\n<p><i>a <b>b</b> c</i></p>"},
		{"\\emph{e}\\underline{u}", "\n<p><em>e</em><span class=\"underline\">u</span></p>"},
		{"\\texttt{a<b}", "\n<p><span class=\"texttt\">a&lt;b</span></p>"},
		{"\\ilcode{f(\\n)}", "\n<p><code>f(\\n)</code></p>"},
		{"\\ilflag{-v} \\ilfile{x.c}", "\n<p><b>-v</b> <i>x.c</i></p>"},
		{"\\expten{5}", "\n<p>&times;10<sup>5</sup></p>"},
		{"\\quicksec{Note} text", "\n<p><b>Note.</b> text</p>"},
		{"\\href{http://x.org/?a=1&b=2}{X}", "\n<p><a href=\"http://x.org/?a=1&amp;b=2\">X</a></p>"},
		{"\\url{http://x.org/}", "\n<p><a href=\"http://x.org/\">http://x.org/</a></p>"},
		{"\\caturl{http://x.org/}{page}", "\n<p><a href=\"http://x.org/page\">page</a></p>"},
		{"\\includegraphics[width=3cm]{fig.png}", "\n<p><img src=\"fig.png\" alt=\"\"/></p>"},
		{"\\begin{center}\nmiddle\n\\end{center}", "\n<div class=\"center\">\n<p>middle</p>\n</div>"},
	}
	for i, testCase := range testCases {
		out, _, err := render(t, testCase.in, nil)
		require.NoError(t, err, "test %d", i)
		assert.Equal(t, testCase.out, out, "test %d: %q", i, testCase.in)
	}
}

func TestLists(t *testing.T) {
	in := `Intro text
\begin{itemize}
\item one
\item two
\end{itemize}
After`
	out, _, err := render(t, in, nil)
	require.NoError(t, err)
	assert.Equal(t, "\n<p>Intro text</p>\n<ul class=\"cram\">\n<li>one</li>\n<li>two</li>\n</ul>\n<p>After</p>", out)

	in = `\begin{itemize}
\item a
\begin{enumerate}
\item b
\end{enumerate}
\item c
\end{itemize}`
	out, _, err = render(t, in, nil)
	require.NoError(t, err)
	assert.Equal(t, "\n<ul>\n<li>a\n<ol>\n<li>b</li>\n</ol></li>\n<li>c</li>\n</ul>", out)

	out, _, err = render(t, "\\begin{itemize}\n\\item[a] \\textbf{x} one\n\\end{itemize}", nil)
	require.NoError(t, err)
	assert.Equal(t, "\n<ul>\n<li><b>a</b> <b>x</b> one</li>\n</ul>", out)
}

func TestUnclosedList(t *testing.T) {
	out, _, err := render(t, "\\begin{enumerate}\n\\item x", nil)
	require.NoError(t, err)
	assert.Equal(t, "\n<ol>\n<li>x</li>\n</ol>", out)
}

func TestCodeBlock(t *testing.T) {
	in := "Text\n\\begin{code}\nif (a < b) \\x\n\\end{code}\nMore"
	out, _, err := render(t, in, nil)
	require.NoError(t, err)
	assert.Equal(t, "\n<p>Text</p>\n<pre class=\"cram\"><code>if (a &lt; b) \\x</code></pre>\n<p class=\"cram\">More</p>", out)
}

func TestMacros(t *testing.T) {
	in := `\newcommand{\a}{x<}\newcommand\b{\a\a}%
\b{} and \b`
	out, conv, err := render(t, in, nil)
	require.NoError(t, err)
	assert.Equal(t, "\n<p>x&lt;x&lt; and x&lt;x&lt;</p>", out)
	body, ok := conv.macros.Lookup("b")
	assert.True(t, ok)
	assert.Equal(t, "x&lt;x&lt;", body)

	out, conv, err = render(t, "\\renewcommand{\\v}{2}\\newcommand{\\f}[1]{z}\\v\\f", nil)
	require.NoError(t, err)
	assert.Equal(t, "\n<p>2z</p>", out)
	assert.Equal(t, []string{"macro \\f: arguments are not supported"}, conv.diag.Warnings())

	opts := &Options{Macros: []Definition{{Name: "ver", Body: "1.0"}}}
	conv = newConverter(opts)
	for _, def := range opts.Macros {
		require.NoError(t, conv.defineMacro(def.Name, scanner.New([]byte(def.Body), "def")))
	}
	body, ok = conv.macros.Lookup("ver")
	assert.True(t, ok)
	assert.Equal(t, "1.0", body)
}

func TestUnknownMacro(t *testing.T) {
	out, conv, err := render(t, "a \\undefined{arg} b", nil)
	require.NoError(t, err)
	assert.Equal(t, "\n<p>a  b</p>", out)
	require.Len(t, conv.diag, 1)
	assert.Equal(t, SeverityWarning, conv.diag[0].Severity)
	assert.Equal(t, "unrecognized macro \\undefined", conv.diag[0].Message)
	assert.Equal(t, "test.tex:1", conv.diag[0].Location)

	_, conv, err = render(t, "\n\\begin{foo}x\\end{foo}", nil)
	require.NoError(t, err)
	require.Len(t, conv.diag, 2)
	assert.Equal(t, "test.tex:2", conv.diag[0].Location)
}

func TestInvalidMacroName(t *testing.T) {
	_, _, err := render(t, "\\newcommand{x}{y}", nil)
	assert.True(t, errors.Is(err, ErrInvalidMacroName))
}

func TestUnterminated(t *testing.T) {
	testCases := []struct {
		in  string
		err error
	}{
		{"\\textbf{no close", ErrUnterminatedArgument},
		{"\\textbf", ErrMissingArgument},
		{"a $x", ErrUnterminatedMath},
		{"\\begin{code}\nx", ErrUnterminatedEnvironment},
		{"\\begin{center}", ErrUnterminatedEnvironment},
		{"\\begin{tabular}\na\\end{tabular}", ErrMissingColumnSpec},
		{"\\begin{tabular}{l}\na", ErrUnterminatedEnvironment},
		{"\\newcommand{\\x}{oops", ErrUnterminatedArgument},
	}
	for i, testCase := range testCases {
		_, _, err := render(t, testCase.in, nil)
		require.Error(t, err, "test %d", i)
		assert.True(t, errors.Is(err, testCase.err), "test %d: %v", i, err)
		_, ok := err.(*scanner.ParseError)
		assert.True(t, ok, "test %d: wrong error type %T", i, err)
	}

	out, _, _ := render(t, "\\textbf{no close", nil)
	assert.Equal(t, "", out)
}
