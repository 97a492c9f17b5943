// macros.go -
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
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/grencez/tex2web/latex"
)

// ErrInvalidDefine is returned for macro definitions which cannot be
// used.
var ErrInvalidDefine = errors.New("invalid macro definition")

// ParseDefine parses a definition of the form NAME=BODY.  A missing
// "=BODY" part defines NAME as the empty string.
func ParseDefine(arg string) (latex.Definition, error) {
	name, body, _ := strings.Cut(arg, "=")
	name = strings.TrimPrefix(name, "\\")
	if !validName(name) {
		return latex.Definition{}, fmt.Errorf("%w %q", ErrInvalidDefine, arg)
	}
	return latex.Definition{Name: name, Body: body}, nil
}

// LoadMacroFile reads macro definitions from a YAML file which
// contains a single mapping from macro names to bodies.  The order of
// the file is kept.
func LoadMacroFile(fileName string) ([]latex.Definition, error) {
	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	if len(root.Content) == 0 {
		return nil, nil
	}
	mapping := root.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%s: %w: expected a mapping", fileName, ErrInvalidDefine)
	}

	var res []latex.Definition
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key, value := mapping.Content[i], mapping.Content[i+1]
		name := strings.TrimPrefix(key.Value, "\\")
		if key.Kind != yaml.ScalarNode || !validName(name) {
			return nil, fmt.Errorf("%s:%d: %w %q",
				fileName, key.Line, ErrInvalidDefine, key.Value)
		}
		if value.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%s:%d: %w: body of %q is not a string",
				fileName, value.Line, ErrInvalidDefine, name)
		}
		res = append(res, latex.Definition{Name: name, Body: value.Value})
	}
	return res, nil
}

func validName(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		c := name[i]
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z') {
			return false
		}
	}
	return true
}
