// cache.go -
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

	"golang.org/x/crypto/sha3"
)

// Cache keeps the contents of source files in memory, so that a file
// which is included or listed several times during one conversion is
// read from disk only once.  Contents are stored under a SHAKE128
// digest, so that files with identical contents share one copy.
type Cache struct {
	paths map[string]digest
	blobs map[digest][]byte

	hits   int
	misses int
}

type digest [16]byte

func contentDigest(data []byte) digest {
	var d digest
	sha3.ShakeSum128(d[:], data)
	return d
}

// NewCache creates a new, empty cache.
func NewCache() *Cache {
	return &Cache{
		paths: make(map[string]digest),
		blobs: make(map[digest][]byte),
	}
}

// ReadFile returns the contents of the named file, reading it from
// disk if it is not yet in the cache.  The returned slice may be
// shared with other files and must not be modified.
func (c *Cache) ReadFile(fileName string) ([]byte, error) {
	key, err := filepath.Abs(fileName)
	if err != nil {
		return nil, err
	}
	if d, ok := c.paths[key]; ok {
		c.hits++
		return c.blobs[d], nil
	}

	data, err := os.ReadFile(key)
	if err != nil {
		return nil, err
	}
	c.misses++
	d := contentDigest(data)
	if stored, ok := c.blobs[d]; ok {
		data = stored
	} else {
		c.blobs[d] = data
	}
	c.paths[key] = d
	return data, nil
}
