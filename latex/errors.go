// errors.go -
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

import "errors"

// Errors for unterminated or malformed constructs.  These abort the
// conversion.
var (
	ErrMissingArgument         = errors.New("missing argument")
	ErrUnterminatedArgument    = errors.New("unterminated argument")
	ErrUnterminatedMath        = errors.New("maths not terminated")
	ErrUnterminatedEnvironment = errors.New("environment not terminated")
	ErrMissingColumnSpec       = errors.New("missing column specification")
	ErrInvalidMacroName        = errors.New("invalid macro name")
	ErrNoDocument              = errors.New("no \\begin{document} found")
	ErrNoEndDocument           = errors.New("no \\end{document} found")
)

// Errors for files which cannot be used.
var (
	ErrFileNotFound = errors.New("file not found")
	ErrIncludeCycle = errors.New("file includes itself")
)
