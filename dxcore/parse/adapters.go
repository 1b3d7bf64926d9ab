/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package parse

import (
	"fmt"
	"strings"
	"unicode/utf8"

	dxerrors "dirpx.dev/dxparse/dxcore/errors"
)

// Trim strips leading and trailing white space, as defined by Unicode, and
// hands the rest to e.
func Trim[R any](e Element[R]) Element[R] {
	return ElementFunc[R](func(s string) (R, bool) {
		return e.Parse(strings.TrimSpace(s))
	})
}

// CSVStrict splits on ',' and parses every cell with e. Cells are not
// trimmed, and quoting is not supported: every comma separates.
func CSVStrict[R any](e Element[R]) Element[[]R] {
	return Separated(e, ',')
}

// CSV is CSVStrict(Trim(e)).
func CSV[R any](e Element[R]) Element[[]R] {
	return CSVStrict(Trim(e))
}

// Separated splits on sep and parses every piece with e.
//
// The result has one value per piece. Splitting the empty string yields one
// empty piece, which e may or may not accept. If any piece fails the whole
// element fails.
func Separated[R any](e Element[R], sep rune) Element[[]R] {
	return ElementFunc[[]R](func(s string) ([]R, bool) {
		return splitAll(s, string(sep), e.Parse)
	})
}

// Matrix is a row-major flat slice with a fixed row width.
type Matrix[R any] struct {
	Data  []R
	Width int
}

// Height returns the number of rows.
func (m Matrix[R]) Height() int {
	if m.Width == 0 {
		return 0
	}
	return len(m.Data) / m.Width
}

// Row returns row y as a subslice of Data.
func (m Matrix[R]) Row(y int) []R {
	return m.Data[y*m.Width : (y+1)*m.Width]
}

// Separated2D splits on lsep into rows and each row on sep into cells, and
// parses every cell with e.
//
// The first row fixes the width. A later row with a different number of
// cells is a usage error: Separated2D panics with a *errors.ValidationError.
// A cell that does not parse fails the element before the width of its row
// is checked. The empty string yields an empty Matrix without calling e.
func Separated2D[R any](e Element[R], sep, lsep rune) Element[Matrix[R]] {
	return ElementFunc[Matrix[R]](func(s string) (Matrix[R], bool) {
		if s == "" {
			return Matrix[R]{}, true
		}

		var (
			data  []R
			width = -1
		)
		for y, row := range strings.Split(s, string(lsep)) {
			cells, ok := splitAll(row, string(sep), e.Parse)
			if !ok {
				return Matrix[R]{}, false
			}
			if width < 0 {
				width = len(cells)
			} else if len(cells) != width {
				panic(&dxerrors.ValidationError{
					Type:   "Separated2D",
					Field:  "Width",
					Reason: fmt.Sprintf("row %d has %d cells, want %d", y, len(cells), width),
					Value:  row,
				})
			}
			data = append(data, cells...)
		}

		return Matrix[R]{Data: data, Width: width}, true
	})
}

// Chars accepts exactly n bytes that are also exactly n runes, and returns
// them as a slice of length n.
func Chars(n int) Element[[]rune] {
	return ElementFunc[[]rune](func(s string) ([]rune, bool) {
		if len(s) != n || !utf8.ValidString(s) || utf8.RuneCountInString(s) != n {
			return nil, false
		}
		return []rune(s), true
	})
}

func splitAll[R any](s, sep string, f func(string) (R, bool)) ([]R, bool) {
	pieces := strings.Split(s, sep)
	out := make([]R, 0, len(pieces))
	for _, p := range pieces {
		v, ok := f(p)
		if !ok {
			return nil, false
		}
		out = append(out, v)
	}
	return out, true
}
