// main.go -
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

package main

import (
	"errors"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/grencez/tex2web/config"
	"github.com/grencez/tex2web/latex"
	"github.com/grencez/tex2web/xhtml"
)

const stdinName = "<stdin>"

// errReported marks failures which have already been logged as
// diagnostics.
var errReported = errors.New("conversion failed")

// flagKeys maps configuration keys to the flags which set them.
var flagKeys = map[string]string{
	"input":           "input",
	"output":          "output",
	"include":         "include",
	"stylesheet":      "stylesheet",
	"define":          "define",
	"macro-files":     "macros",
	"css-only":        "css-only",
	"highlight":       "highlight",
	"highlight-style": "highlight-style",
	"verbose":         "verbose",
}

func main() {
	err := newRootCommand().Execute()
	if err != nil {
		if !errors.Is(err, errReported) {
			log.Println(err)
		}
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	v := config.NewViper()
	var configFile string

	cmd := &cobra.Command{
		Use:   "tex2web [input.tex]",
		Short: "Convert a LaTeX document to XHTML",
		Long: `tex2web converts documents written in a subset of LaTeX into a
single self-contained XHTML file.

Examples:
  tex2web -x notes.tex -o notes.html
  tex2web -I 'chapters/**' --highlight < book.tex > book.html
  tex2web --css-only -o style.css`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load(v, configFile)
			if err != nil {
				return err
			}
			if len(args) > 0 {
				settings.Input = args[0]
			}
			return run(settings, cmd.InOrStdin())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "", "read settings from this YAML file")
	addFlags(flags)
	for key, name := range flagKeys {
		err := v.BindPFlag(key, flags.Lookup(name))
		if err != nil {
			panic(err)
		}
	}

	return cmd
}

func addFlags(flags *pflag.FlagSet) {
	flags.StringP("input", "x", "", "input file (default: standard input)")
	flags.StringP("output", "o", "", "output file (default: standard output)")
	flags.StringArrayP("include", "I", nil, "search directory for \\input, may be a glob pattern")
	flags.String("stylesheet", "", "link to this stylesheet instead of embedding one")
	flags.StringArrayP("define", "D", nil, "define a macro, as NAME=BODY")
	flags.StringSlice("macros", nil, "read macro definitions from a YAML file")
	flags.Bool("css-only", false, "only write the default stylesheet")
	flags.Bool("highlight", false, "syntax highlight \\codeinputlisting files")
	flags.String("highlight-style", "", "colour scheme for highlighting")
	flags.BoolP("verbose", "v", false, "log progress information")
}

func run(settings *config.Settings, stdin io.Reader) (err error) {
	opts, err := settings.Options()
	if err != nil {
		return err
	}
	opts.Logger = log.New(os.Stderr, "", 0)

	var dst xhtml.Destination
	if settings.Output == "" || settings.Output == "-" {
		dst = xhtml.StreamDestination{Writer: os.Stdout}
	} else {
		dst = xhtml.NewFileDestination(settings.Output)
	}
	defer func() {
		e2 := dst.Close()
		if err == nil {
			err = e2
		}
	}()

	if settings.CSSOnly {
		return latex.WriteStylesheet(dst, opts)
	}

	name := settings.Input
	var src []byte
	if name == "" || name == "-" {
		name = stdinName
		if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			log.Println("reading LaTeX from the terminal, end with Ctrl-D")
		}
		src, err = io.ReadAll(stdin)
	} else {
		if settings.Verbose {
			log.Println("reading", name)
		}
		src, err = os.ReadFile(name)
	}
	if err != nil {
		return err
	}

	diag, err := latex.Convert(dst, src, name, opts)
	if settings.Verbose {
		log.Printf("%d diagnostics, %d macro definitions given", len(diag), len(opts.Macros))
		log.Println("file cache:", opts.Files.Stats())
		if settings.Output != "" {
			log.Println("writing", settings.Output)
		}
	}
	if err != nil {
		return errReported
	}
	return nil
}
