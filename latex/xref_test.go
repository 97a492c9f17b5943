// xref_test.go -
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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXRefNormalise(t *testing.T) {
	used := make(map[string]bool)
	testCases := []struct {
		in, out string
	}{
		{"sec:intro", "sec:intro"},
		{"sec:intro", "sec:intro2"},
		{"sec:intro", "sec:intro3"},
		{"two  words", "two-words"},
		{"1st", "x1st"},
		{"", "x"},
		{"é", "x-"},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.out, xRefNormalise(testCase.in, used), testCase.in)
	}
}
