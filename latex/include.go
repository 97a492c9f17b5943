// include.go -
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
	"os"
	"path/filepath"
	"strings"

	"github.com/grencez/tex2web/latex/scanner"
)

// resolve finds the file fileName, first in the directory of the file
// currently being read and then in each directory of the search path.
// The result is an absolute path.
func (conv *converter) resolve(cur *scanner.Cursor, fileName string) (string, error) {
	var candidates []string
	if filepath.IsAbs(fileName) {
		candidates = append(candidates, fileName)
	} else {
		current := conv.inputs[len(conv.inputs)-1]
		candidates = append(candidates, filepath.Join(filepath.Dir(current), fileName))
		for _, dir := range conv.opts.SearchPath {
			candidates = append(candidates, filepath.Join(dir, fileName))
		}
	}

	for _, path := range candidates {
		fi, err := os.Stat(path)
		if err != nil || !fi.Mode().IsRegular() {
			continue
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return "", err
		}
		return abs, nil
	}
	return "", cur.Wrap(ErrFileNotFound,
		"cannot find \""+fileName+"\" requested by "+cur.Name())
}

func cmdInput(conv *converter, cur *scanner.Cursor, eol bool) error {
	arg, err := readArg(cur)
	if err != nil {
		return err
	}
	fileName := strings.TrimSpace(arg.String())
	if !strings.HasSuffix(fileName, ".tex") {
		fileName += ".tex"
	}
	path, err := conv.resolve(arg, fileName)
	if err != nil {
		return err
	}
	for _, open := range conv.inputs {
		if open == path {
			return arg.Wrap(ErrIncludeCycle,
				"\""+fileName+"\" is already being read")
		}
	}
	data, err := conv.files.ReadFile(path)
	if err != nil {
		return arg.Wrap(err, "cannot read \""+fileName+"\"")
	}

	conv.inputs = append(conv.inputs, path)
	err = conv.parseBody(cur.Include(data, path))
	conv.inputs = conv.inputs[:len(conv.inputs)-1]
	return err
}
