// paths.go -
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
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ExpandSearchPaths expands glob patterns like "chapters/**" in the
// list of include directories.  Entries without glob characters are
// kept as they are, even if the directory does not exist; matches of
// patterns which are not directories are dropped.
func ExpandSearchPaths(patterns []string) ([]string, error) {
	var res []string
	for _, pattern := range patterns {
		if !strings.ContainsAny(pattern, "*?[{") {
			res = append(res, pattern)
			continue
		}
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, err
		}
		for _, match := range matches {
			fi, err := os.Stat(match)
			if err != nil || !fi.IsDir() {
				continue
			}
			res = append(res, match)
		}
	}
	return res, nil
}
