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

import "strings"

// Helpers for the functional shape. Each returns a plain function suitable
// for UntilFunc and RestFunc; the functions passed in may be closures with
// state of their own.

// FromAdaptor exposes an Element as a plain function.
func FromAdaptor[R any](e Element[R]) func(string) (R, bool) {
	return e.Parse
}

// Passthrough returns s unchanged. The result shares memory with s.
func Passthrough(s string) (string, bool) {
	return s, true
}

// SeparatedF splits on sep and maps every piece through f. All pieces must
// match. When sep is empty the input is split after each UTF-8 sequence.
func SeparatedF[T any](sep string, f func(string) (T, bool)) func(string) ([]T, bool) {
	return func(s string) ([]T, bool) {
		return splitAll(s, sep, f)
	}
}

// ByteMapping maps every rune of the input through f. The empty input
// yields an empty slice.
func ByteMapping[T any](f func(rune) (T, bool)) func(string) ([]T, bool) {
	return func(s string) ([]T, bool) {
		out := make([]T, 0, len(s))
		for _, r := range s {
			v, ok := f(r)
			if !ok {
				return nil, false
			}
			out = append(out, v)
		}
		return out, true
	}
}

// ByteMapping2D splits the input into rows on sep and maps every rune of
// every row through f.
//
// Unlike Separated2D, rows of different widths are a mismatch, not a usage
// error: the function reports false.
func ByteMapping2D[T any](sep string, f func(rune) (T, bool)) func(string) (Matrix[T], bool) {
	row := ByteMapping(f)
	return func(s string) (Matrix[T], bool) {
		var (
			data  []T
			width = -1
		)
		for _, line := range strings.Split(s, sep) {
			cells, ok := row(line)
			if !ok {
				return Matrix[T]{}, false
			}
			if width < 0 {
				width = len(cells)
			} else if len(cells) != width {
				return Matrix[T]{}, false
			}
			data = append(data, cells...)
		}
		return Matrix[T]{Data: data, Width: width}, true
	}
}

// FixedSize splits on sep and maps the first n pieces through f.
//
// Pieces after the n-th are ignored without being inspected. Fewer than n
// pieces is a mismatch, and so is any n below one.
func FixedSize[T any](n int, sep string, f func(string) (T, bool)) func(string) ([]T, bool) {
	return func(s string) ([]T, bool) {
		if n <= 0 {
			return nil, false
		}
		pieces := strings.SplitN(s, sep, n+1)
		if len(pieces) < n {
			return nil, false
		}
		out := make([]T, n)
		for i := range n {
			v, ok := f(pieces[i])
			if !ok {
				return nil, false
			}
			out[i] = v
		}
		return out, true
	}
}
