// commands.go -
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
	"github.com/grencez/tex2web/latex/scanner"
)

// command is the action associated with a LaTeX command or
// environment.  The flag eol tells whether the command started a new
// input line.
type command interface {
	run(conv *converter, cur *scanner.Cursor, eol bool) error
}

type funcCommand func(conv *converter, cur *scanner.Cursor, eol bool) error

func (fn funcCommand) run(conv *converter, cur *scanner.Cursor, eol bool) error {
	return fn(conv, cur, eol)
}

type argMode int

const (
	argParse argMode = iota
	argEscape
	argVerbatim
)

// cTag wraps its argument in HTML tags.
type cTag struct {
	open, close string
	mode        argMode
}

func (tag cTag) run(conv *converter, cur *scanner.Cursor, eol bool) error {
	arg, err := readArg(cur)
	if err != nil {
		return err
	}
	conv.startText(eol)
	conv.out.WriteString(tag.open)
	switch tag.mode {
	case argParse:
		err = conv.parseInline(arg)
	case argEscape:
		err = conv.escape(&conv.out.Buffer, arg, true)
	case argVerbatim:
		err = conv.escape(&conv.out.Buffer, arg, false)
	}
	conv.out.WriteString(tag.close)
	return err
}

func span(class string) cTag {
	return cTag{`<span class="` + class + `">`, "</span>", argEscape}
}

// cSubst replaces a command by a fixed string.
type cSubst string

func (s cSubst) run(conv *converter, cur *scanner.Cursor, eol bool) error {
	conv.startText(eol)
	conv.out.WriteString(string(s))
	return nil
}

// cIgnore discards a command together with its arguments.
type cIgnore struct{}

func (cIgnore) run(conv *converter, cur *scanner.Cursor, eol bool) error {
	for {
		mark := cur.Mark()
		cur.SkipSpace()
		var err error
		switch {
		case cur.Expect("["):
			_, err = readBalanced(cur, '[', ']')
		case cur.Expect("{"):
			_, err = readBalanced(cur, '{', '}')
		default:
			cur.Reset(mark)
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func nop(conv *converter, cur *scanner.Cursor, eol bool) error {
	return nil
}

var (
	commands map[string]command
	symbols  map[byte]command
	beginEnv map[string]command
	endEnv   map[string]command
)

func init() {
	commands = map[string]command{
		"textit":    cTag{"<i>", "</i>", argParse},
		"textbf":    cTag{"<b>", "</b>", argParse},
		"emph":      cTag{"<em>", "</em>", argParse},
		"underline": cTag{`<span class="underline">`, "</span>", argParse},
		"texttt":    span("texttt"),
		"ttvbl":     span("ttvbl"),
		"ilcode":    cTag{"<code>", "</code>", argVerbatim},
		"ilflag":    cTag{"<b>", "</b>", argEscape},
		"ilsym":     cTag{"<b>", "</b>", argEscape},
		"ilname":    cTag{"<b>", "</b>", argEscape},
		"ilkey":     cTag{"<b>", "</b>", argEscape},
		"ilfile":    cTag{"<i>", "</i>", argEscape},
		"illit":     cTag{"<i>", "</i>", argEscape},
		"expten":    cTag{"&times;10<sup>", "</sup>", argEscape},
		"quicksec":  funcCommand(cmdQuicksec),

		"item": funcCommand(cmdItem),

		"section":         sectionCommand(1),
		"subsection":      sectionCommand(2),
		"tableofcontents": funcCommand(cmdTableOfContents),
		"label":           funcCommand(cmdLabel),
		"ref":             funcCommand(cmdRef),

		"href":            funcCommand(cmdHref),
		"texthref":        funcCommand(cmdHref),
		"url":             funcCommand(cmdURL),
		"caturl":          funcCommand(cmdCatURL),
		"includegraphics": funcCommand(cmdIncludeGraphics),

		"input":            funcCommand(cmdInput),
		"include":          funcCommand(cmdInput),
		"codeinputlisting": funcCommand(cmdCodeInputListing),

		"newcommand":   funcCommand(cmdNewcommand),
		"renewcommand": funcCommand(cmdNewcommand),

		"maketitle":     cIgnore{},
		"documentclass": cIgnore{},
		"usepackage":    cIgnore{},
	}

	symbols = map[byte]command{
		'\\': funcCommand(cmdLineBreak),
		' ':  cSubst(noBreakSpace),
		'%':  cSubst("%"),
		'&':  cSubst("&amp;"),
		'_':  cSubst("_"),
		'$':  cSubst("$"),
		'#':  cSubst("#"),
		'{':  cSubst("{"),
		'}':  cSubst("}"),
	}

	beginEnv = map[string]command{
		"document":   funcCommand(nop),
		"itemize":    listEnv("ul"),
		"itemize*":   listEnv("ul"),
		"enumerate":  listEnv("ol"),
		"enumerate*": listEnv("ol"),
		"code":       funcCommand(envCode),
		"flushleft":  alignEnv("flushleft"),
		"center":     alignEnv("center"),
		"flushright": alignEnv("flushright"),
		"tabular":    funcCommand(envTabular),
	}
	endEnv = map[string]command{
		"document":   funcCommand(endDocument),
		"itemize":    endListEnv("ul"),
		"itemize*":   endListEnv("ul"),
		"enumerate":  endListEnv("ol"),
		"enumerate*": endListEnv("ol"),
	}
}

// dispatch handles the command following a backslash.
func (conv *converter) dispatch(cur *scanner.Cursor, eol bool) error {
	name := readName(cur)
	if name == "" {
		next, ok := cur.Peek()
		if !ok {
			conv.warn(cur, "backslash at end of input")
			return nil
		}
		cur.Skip(1)
		cmd, ok := symbols[next]
		if !ok {
			conv.warn(cur, "unrecognized control symbol \\%c", next)
			return nil
		}
		return cmd.run(conv, cur, eol)
	}

	if name == "begin" || name == "end" {
		arg, err := readArg(cur)
		if err != nil {
			return err
		}
		envName := arg.String()
		table := beginEnv
		if name == "end" {
			table = endEnv
		}
		cmd, ok := table[envName]
		if !ok {
			conv.warn(cur, "unrecognized environment in \\%s{%s}", name, envName)
			return nil
		}
		return cmd.run(conv, cur, eol)
	}

	if cmd, ok := commands[name]; ok {
		return cmd.run(conv, cur, eol)
	}
	if _, ok := conv.macros.Lookup(name); ok {
		conv.startText(eol)
	}
	return conv.expandMacro(&conv.out.Buffer, cur, name)
}

// readArg reads a mandatory, brace-delimited argument.
func readArg(cur *scanner.Cursor) (*scanner.Cursor, error) {
	mark := cur.Mark()
	cur.SkipSpace()
	if !cur.Expect("{") {
		cur.Reset(mark)
		return nil, cur.Wrap(ErrMissingArgument, "expected '{'")
	}
	return readBalanced(cur, '{', '}')
}

// readOptional reads an optional argument in square brackets.  If
// there is none, nil is returned.
func readOptional(cur *scanner.Cursor) (*scanner.Cursor, error) {
	if !cur.Expect("[") {
		return nil, nil
	}
	return readBalanced(cur, '[', ']')
}

func cmdLineBreak(conv *converter, cur *scanner.Cursor, eol bool) error {
	_, err := readOptional(cur)
	if err != nil {
		return err
	}
	conv.startText(eol)
	conv.out.WriteString("<br/>")
	return nil
}

func cmdQuicksec(conv *converter, cur *scanner.Cursor, eol bool) error {
	arg, err := readArg(cur)
	if err != nil {
		return err
	}
	conv.closeParagraph()
	conv.openParagraph()
	conv.out.WriteString("<b>")
	err = conv.escape(&conv.out.Buffer, arg, true)
	conv.out.WriteString(".</b>")
	return err
}

func cmdHref(conv *converter, cur *scanner.Cursor, eol bool) error {
	url, err := readArg(cur)
	if err != nil {
		return err
	}
	text, err := readArg(cur)
	if err != nil {
		return err
	}
	return conv.writeLink(url.String(), text, eol)
}

func cmdURL(conv *converter, cur *scanner.Cursor, eol bool) error {
	url, err := readArg(cur)
	if err != nil {
		return err
	}
	return conv.writeLink(url.String(), url, eol)
}

func cmdCatURL(conv *converter, cur *scanner.Cursor, eol bool) error {
	prefix, err := readArg(cur)
	if err != nil {
		return err
	}
	text, err := readArg(cur)
	if err != nil {
		return err
	}
	return conv.writeLink(prefix.String()+text.String(), text, eol)
}

func (conv *converter) writeLink(url string, text *scanner.Cursor, eol bool) error {
	conv.startText(eol)
	conv.out.WriteString(`<a href="`)
	err := conv.escape(&conv.out.Buffer, scanner.New([]byte(url), "url"), false)
	if err != nil {
		return err
	}
	conv.out.WriteString(`">`)
	err = conv.escape(&conv.out.Buffer, text, true)
	conv.out.WriteString("</a>")
	return err
}

func cmdIncludeGraphics(conv *converter, cur *scanner.Cursor, eol bool) error {
	_, err := readOptional(cur)
	if err != nil {
		return err
	}
	url, err := readArg(cur)
	if err != nil {
		return err
	}
	conv.startText(eol)
	conv.out.WriteString(`<img src="`)
	err = conv.escape(&conv.out.Buffer, url, false)
	conv.out.WriteString(`" alt=""/>`)
	return err
}

func cmdNewcommand(conv *converter, cur *scanner.Cursor, eol bool) error {
	var name string
	cur.SkipSpace()
	if cur.Expect("\\") {
		name = readName(cur)
	} else {
		arg, err := readArg(cur)
		if err != nil {
			return err
		}
		arg = arg.TrimSpace()
		if arg.Expect("\\") {
			name = readName(arg)
		}
		if !arg.EOF() {
			name = ""
		}
	}
	if name == "" {
		return cur.Wrap(ErrInvalidMacroName, "cannot define macro")
	}

	nArgs, err := readOptional(cur)
	if err != nil {
		return err
	}
	if nArgs != nil {
		conv.warn(cur, "macro \\%s: arguments are not supported", name)
	}

	body, err := readArg(cur)
	if err != nil {
		return err
	}
	return conv.defineMacro(name, body)
}
