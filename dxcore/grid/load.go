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

package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"dirpx.dev/dxparse/dxcore/errors"
	"github.com/spf13/afero"
)

// Loaders read one row per line. The first line fixes the width, measured
// in runes or in pieces; a later line of another width is a usage error and
// panics with a *errors.ValidationError. Loaders return an error only when
// the underlying reader fails. Lines are split as bufio.ScanLines does, so
// CRLF input loads like LF input.
//
// Loaders taking a *bufio.Scanner inherit its buffer limit; LoadReader and
// LoadFile accept lines up to MaxLineSize bytes.

// MaxLineSize is the longest line LoadReader accepts.
const MaxLineSize = 16 << 20

// builder accumulates rows of equal width.
type builder[T any] struct {
	width  int
	height int
	data   []T
}

func (b *builder[T]) add(line string, cells []T) {
	if b.height == 0 {
		b.width = len(cells)
	} else if len(cells) != b.width {
		panic(&errors.ValidationError{
			Type:   "Grid",
			Field:  "Width",
			Reason: fmt.Sprintf("line %d has width %d, want %d", b.height+1, len(cells), b.width),
			Value:  line,
		})
	}
	b.data = append(b.data, cells...)
	b.height++
}

func (b *builder[T]) grid() *Grid[T] {
	return &Grid[T]{width: b.width, height: b.height, data: b.data}
}

func mapRunes[T any](line string, f func(rune) T) []T {
	cells := make([]T, 0, utf8.RuneCountInString(line))
	for _, r := range line {
		cells = append(cells, f(r))
	}
	return cells
}

// Load reads every remaining line of sc and maps each rune through f.
func Load[T any](sc *bufio.Scanner, f func(rune) T) (*Grid[T], error) {
	return LoadWhile(sc, f, func(string) bool { return true })
}

// LoadWhile is Load that stops at the first line for which check reports
// false. That line is consumed and dropped, so a blank separator line ends
// one grid and the next call starts on the following block:
//
//	for {
//	    g, err := grid.LoadWhile(sc, f, func(l string) bool { return l != "" })
//	    ...
//	}
func LoadWhile[T any](sc *bufio.Scanner, f func(rune) T, check func(string) bool) (*Grid[T], error) {
	var b builder[T]
	for sc.Scan() {
		line := sc.Text()
		if !check(line) {
			break
		}
		b.add(line, mapRunes(line, f))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: reading lines: %w", err)
	}
	return b.grid(), nil
}

// LoadSplitWhile is LoadWhile for rows of delimited values: each line is
// split on sep, empty pieces are dropped, and every piece is mapped through
// f. Runs of separators, such as the spaces aligning a number table, are
// therefore harmless.
func LoadSplitWhile[T any](sc *bufio.Scanner, sep rune, f func(string) T, check func(string) bool) (*Grid[T], error) {
	var b builder[T]
	for sc.Scan() {
		line := sc.Text()
		if !check(line) {
			break
		}
		var cells []T
		for piece := range strings.SplitSeq(line, string(sep)) {
			if piece != "" {
				cells = append(cells, f(piece))
			}
		}
		b.add(line, cells)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: reading lines: %w", err)
	}
	return b.grid(), nil
}

// FromLines builds a grid from lines already in memory.
func FromLines[T any](lines []string, f func(rune) T) *Grid[T] {
	var b builder[T]
	for _, line := range lines {
		b.add(line, mapRunes(line, f))
	}
	return b.grid()
}

// LoadReader reads r to the end, one row per line.
func LoadReader[T any](r io.Reader, f func(rune) T) (*Grid[T], error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	return Load(sc, f)
}

// LoadFile reads the file at path from fs, one row per line.
func LoadFile[T any](fs afero.Fs, path string, f func(rune) T) (*Grid[T], error) {
	file, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("grid: %w", err)
	}
	defer file.Close()

	return LoadReader(file, f)
}
