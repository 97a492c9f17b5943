// template.go -
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
	"io"
	"path"
	"sort"
	"strings"
	"text/template"
)

// Apart from the stylesheet URL, the values substituted into these
// templates are already HTML escaped, so text/template is used rather
// than html/template.
var templateFiles = map[string]string{
	"head.xhtml": `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML-Print 1.0//EN" "http://www.w3.org/MarkUp/DTD/xhtml-print10.dtd">
<html xmlns="http://www.w3.org/1999/xhtml">
<head>
<meta http-equiv='Content-Type' content='text/html;charset=utf-8'/>
<meta name="identifier" content="urn:uuid:{{.Doc.UUID}}"/>
{{- if .Doc.Stylesheet}}
<link rel="stylesheet" type="text/css" href="{{html .Doc.Stylesheet}}"/>
{{- else}}
<style type="text/css">
{{template "book.css" .}}</style>
{{- end}}
<title>{{.Doc.Title}}</title>
</head>
<body>
{{template "title-block" .}}`,

	"foot.xhtml": `
</body>
</html>
`,

	"stylesheet.css": `{{template "book.css" .}}`,

	"parts/css": `{{define "book.css"}}pre {
  padding-left: 3em;
  white-space: pre-wrap;
  display: block;
}
pre.cram {
  margin-top: -1em;
}
ol.cram {
  margin-top: -1em;
}
ul.cram {
  margin-top: -1em;
}
p.cram {
  margin-top: -0.5em;
}
span.underline { text-decoration: underline; }
span.texttt,span.ttvbl {
  font-family:"Courier New", Monospace;
}
pre,code {
  background-color: #E2E2E2;
}
div.title,div.center {
  text-align: center;
}
div.flushleft {
  text-align: left;
}
div.flushright {
  text-align: right;
}
table {
  border-collapse: collapse;
}
td {
  padding: 0.1em 0.5em;
}
td.left { text-align: left; }
td.center { text-align: center; }
td.right { text-align: right; }
td.lborder { border-left: 1px solid black; }
td.rborder { border-right: 1px solid black; }
tr.tborder > td { border-top: 1px solid black; }
tr.bborder > td { border-bottom: 1px solid black; }
{{with .Doc.ExtraCSS}}{{.}}{{end}}{{end}}`,

	"parts/title": `{{define "title-block"}}<div class="title">
<h1>{{.Doc.Title}}</h1>
<h3>{{.Doc.Author}}</h3>
<h3>{{.Doc.Date}}</h3>
</div>{{end}}`,
}

func loadTemplates(names []string) (*template.Template, error) {
	var res *template.Template

	var parts []string
	for key := range templateFiles {
		if strings.HasPrefix(key, "parts/") {
			parts = append(parts, key)
		}
	}
	sort.Strings(parts)
	names = append(names, parts...)

	for _, name := range names {
		var tmpl *template.Template
		baseName := path.Base(name)
		if res == nil {
			tmpl = template.New(baseName)
			res = tmpl
		} else {
			tmpl = res.New(baseName)
		}
		_, err := tmpl.Parse(templateFiles[name])
		if err != nil {
			return nil, err
		}
	}

	return res, nil
}

func (doc *Document) writeTemplates(w io.Writer, tmplFiles []string) error {
	tmpl, err := loadTemplates(tmplFiles)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, map[string]interface{}{
		"Doc": doc,
	})
}
