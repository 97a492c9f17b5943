// stats.go -
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

import "fmt"

// Stats summarises the contents of a cache.
type Stats struct {
	Files    int   // distinct file names read
	Contents int   // distinct file contents stored
	Bytes    int64 // size of the stored contents
	Shared   int64 // bytes not stored again because of duplicate files
	Hits     int
	Misses   int
}

// Stats returns the current cache statistics.
func (c *Cache) Stats() Stats {
	s := Stats{
		Files:    len(c.paths),
		Contents: len(c.blobs),
		Hits:     c.hits,
		Misses:   c.misses,
	}
	for _, d := range c.paths {
		s.Shared += int64(len(c.blobs[d]))
	}
	for _, data := range c.blobs {
		s.Bytes += int64(len(data))
	}
	s.Shared -= s.Bytes
	return s
}

func (s Stats) String() string {
	res := fmt.Sprintf("%d files, %s", s.Files, formatSize(s.Bytes))
	if s.Contents < s.Files {
		res += fmt.Sprintf(" in %d distinct (%s shared)",
			s.Contents, formatSize(s.Shared))
	}
	return res + fmt.Sprintf(", %d hits, %d misses", s.Hits, s.Misses)
}

// formatSize formats a byte count using binary prefixes.
func formatSize(n int64) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}
	val := float64(n)
	var unit string
	for _, unit = range []string{"KiB", "MiB", "GiB", "TiB"} {
		val /= 1024
		if val < 1024 {
			break
		}
	}
	return fmt.Sprintf("%.1f %s", val, unit)
}
