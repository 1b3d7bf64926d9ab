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

// Package grid provides a rectangular, row-major two-dimensional buffer with
// bounds-checked coordinate helpers.
//
// A Grid is usually built from puzzle-style text, one line per row:
//
//	g, err := grid.LoadReader(r, func(c rune) bool { return c == '#' })
//
// or from the Matrix produced by parse.Separated2D and parse.ByteMapping2D.
// Coordinates are Pos{X, Y} with X the column and Y the row; every accessor
// reports out-of-range positions instead of panicking.
package grid

import (
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"dirpx.dev/dxparse/dxcore/errors"
	"dirpx.dev/dxparse/dxcore/model"
	"dirpx.dev/dxparse/dxcore/parse"
	"gopkg.in/yaml.v3"
)

// Pos is a cell coordinate. X is the column, Y the row.
type Pos struct {
	X, Y int
}

// Add returns p moved by d.
func (p Pos) Add(d Pos) Pos {
	return Pos{p.X + d.X, p.Y + d.Y}
}

// String returns "(x,y)".
func (p Pos) String() string {
	return "(" + strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y) + ")"
}

// Grid is a rectangular buffer of width*height cells stored row by row.
//
// The zero value is an empty grid. Methods with pointer receivers that only
// read are safe for concurrent use; Set, Ptr and All hand out write access.
type Grid[T any] struct {
	width  int
	height int
	data   []T
}

var _ model.Model = (*Grid[rune])(nil)

// New returns a w by h grid with every cell set to def. Negative dimensions
// panic with a *errors.ValidationError.
func New[T any](w, h int, def T) *Grid[T] {
	if w < 0 || h < 0 {
		panic(&errors.ValidationError{
			Type:   "Grid",
			Reason: fmt.Sprintf("negative dimensions %dx%d", w, h),
		})
	}
	data := make([]T, w*h)
	for i := range data {
		data[i] = def
	}
	return &Grid[T]{width: w, height: h, data: data}
}

// FromSlice wraps data as a grid of width w; the grid takes ownership of
// data. len(data) must be a multiple of w, otherwise FromSlice panics with a
// *errors.ValidationError. A width of zero is only valid with empty data.
func FromSlice[T any](w int, data []T) *Grid[T] {
	if w < 0 || (w == 0 && len(data) != 0) || (w > 0 && len(data)%w != 0) {
		panic(&errors.ValidationError{
			Type:   "Grid",
			Field:  "Width",
			Reason: fmt.Sprintf("%d cells do not fill rows of width %d", len(data), w),
		})
	}
	h := 0
	if w > 0 {
		h = len(data) / w
	}
	return &Grid[T]{width: w, height: h, data: data}
}

// FromMatrix wraps the result of a two-dimensional parse.
func FromMatrix[T any](m parse.Matrix[T]) *Grid[T] {
	return FromSlice(m.Width, m.Data)
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// Dims returns width and height.
func (g *Grid[T]) Dims() (int, int) { return g.width, g.height }

// Len returns the number of cells.
func (g *Grid[T]) Len() int { return len(g.data) }

// Data returns the row-major backing slice. It is shared with the grid.
func (g *Grid[T]) Data() []T { return g.data }

// Contains reports whether p lies inside the grid.
func (g *Grid[T]) Contains(p Pos) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.width && p.Y < g.height
}

// PosToIdx returns the index of p in Data.
func (g *Grid[T]) PosToIdx(p Pos) (int, bool) {
	if !g.Contains(p) {
		return 0, false
	}
	return p.Y*g.width + p.X, true
}

// IdxToPos is the inverse of PosToIdx. The index is not checked.
func (g *Grid[T]) IdxToPos(i int) Pos {
	if g.width == 0 {
		return Pos{}
	}
	return Pos{X: i % g.width, Y: i / g.width}
}

// Offset returns p moved by (dx, dy) if the result is inside the grid.
func (g *Grid[T]) Offset(p Pos, dx, dy int) (Pos, bool) {
	q := Pos{p.X + dx, p.Y + dy}
	return q, g.Contains(q)
}

// WrapX maps the column of p into [0, width), wrapping around in both
// directions. The row is left alone.
func (g *Grid[T]) WrapX(p Pos) Pos {
	if g.width == 0 {
		return p
	}
	x := p.X % g.width
	if x < 0 {
		x += g.width
	}
	return Pos{X: x, Y: p.Y}
}

// Get returns the cell at p.
func (g *Grid[T]) Get(p Pos) (T, bool) {
	i, ok := g.PosToIdx(p)
	if !ok {
		var zero T
		return zero, false
	}
	return g.data[i], true
}

// Ptr returns a pointer to the cell at p, or nil when p is outside.
func (g *Grid[T]) Ptr(p Pos) *T {
	i, ok := g.PosToIdx(p)
	if !ok {
		return nil
	}
	return &g.data[i]
}

// Set stores v at p and reports whether p was inside.
func (g *Grid[T]) Set(p Pos, v T) bool {
	i, ok := g.PosToIdx(p)
	if ok {
		g.data[i] = v
	}
	return ok
}

// At returns the cell at index i of Data. It panics when i is out of range.
func (g *Grid[T]) At(i int) T { return g.data[i] }

// Neighbours returns the in-bounds orthogonal neighbours of p in the order
// left, right, up, down.
func (g *Grid[T]) Neighbours(p Pos) []Pos {
	return g.Adjacent(p, VonNeumann)
}

// NeighboursDiag returns the in-bounds neighbours of p including diagonals:
// left, right, up, down, up-left, down-right, up-right, down-left.
func (g *Grid[T]) NeighboursDiag(p Pos) []Pos {
	return g.Adjacent(p, Moore)
}

// Adjacent returns the in-bounds neighbours of p for n.
func (g *Grid[T]) Adjacent(p Pos, n Neighbourhood) []Pos {
	offsets := n.Offsets()
	out := make([]Pos, 0, len(offsets))
	for _, d := range offsets {
		if q := p.Add(d); g.Contains(q) {
			out = append(out, q)
		}
	}
	return out
}

// Rows yields every row as a subslice of Data, top to bottom.
func (g *Grid[T]) Rows() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for y := range g.height {
			if !yield(y, g.data[y*g.width:(y+1)*g.width]) {
				return
			}
		}
	}
}

// All yields every position with a pointer to its cell, row by row.
func (g *Grid[T]) All() iter.Seq2[Pos, *T] {
	return func(yield func(Pos, *T) bool) {
		for i := range g.data {
			if !yield(g.IdxToPos(i), &g.data[i]) {
				return
			}
		}
	}
}

// Render returns the grid as text, one line per row, each cell rendered by f.
func (g *Grid[T]) Render(f func(T) string) string {
	var sb strings.Builder
	for _, row := range g.Rows() {
		for _, c := range row {
			sb.WriteString(f(c))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Print writes the grid to w, one line per row, each cell drawn as f(cell).
func (g *Grid[T]) Print(w io.Writer, f func(T) rune) error {
	_, err := io.WriteString(w, g.Render(func(c T) string { return string(f(c)) }))
	return err
}

// String renders the grid one line per row: runes and strings as is,
// booleans as '#' and '.', anything else with fmt.
func (g *Grid[T]) String() string {
	return g.Render(func(c T) string {
		switch v := any(c).(type) {
		case rune:
			return string(v)
		case string:
			return v
		case bool:
			if v {
				return "#"
			}
			return "."
		default:
			return fmt.Sprint(v)
		}
	})
}

// Redacted returns the dimensions only.
func (g *Grid[T]) Redacted() string {
	return fmt.Sprintf("Grid{width: %d, height: %d}", g.width, g.height)
}

// TypeName returns "Grid".
func (g *Grid[T]) TypeName() string { return "Grid" }

// IsZero reports whether the grid has no cells and no dimensions.
func (g *Grid[T]) IsZero() bool {
	return g.width == 0 && g.height == 0 && len(g.data) == 0
}

// Validate checks that the dimensions are non-negative and match the
// length of the backing slice.
func (g *Grid[T]) Validate() error {
	if g.width < 0 || g.height < 0 {
		return &errors.ValidationError{
			Type:   "Grid",
			Reason: fmt.Sprintf("negative dimensions %dx%d", g.width, g.height),
		}
	}
	if !g.fits() {
		return &errors.ValidationError{
			Type:   "Grid",
			Field:  "Data",
			Reason: fmt.Sprintf("%d cells, want %d*%d", len(g.data), g.width, g.height),
		}
	}
	return nil
}

// fits reports whether len(data) is width*height without computing the
// product, which can overflow for decoded dimensions.
func (g *Grid[T]) fits() bool {
	n := len(g.data)
	if g.width == 0 || g.height == 0 {
		return n == 0
	}
	return n%g.width == 0 && n/g.width == g.height
}

// wire is the serialized form of a grid.
type wire[T any] struct {
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
	Data   []T `json:"data" yaml:"data"`
}

// MarshalJSON encodes the grid as {"width", "height", "data"}.
func (g *Grid[T]) MarshalJSON() ([]byte, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(wire[T]{Width: g.width, Height: g.height, Data: g.data})
}

// UnmarshalJSON decodes and validates the form written by MarshalJSON.
func (g *Grid[T]) UnmarshalJSON(data []byte) error {
	var w wire[T]
	if err := json.Unmarshal(data, &w); err != nil {
		return &errors.UnmarshalError{Type: "Grid", Data: data, Reason: err.Error()}
	}
	return g.assign(w)
}

// MarshalYAML encodes the grid as a mapping with width, height and data.
func (g *Grid[T]) MarshalYAML() (any, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return wire[T]{Width: g.width, Height: g.height, Data: g.data}, nil
}

// UnmarshalYAML decodes and validates the form written by MarshalYAML.
func (g *Grid[T]) UnmarshalYAML(node *yaml.Node) error {
	var w wire[T]
	if err := node.Decode(&w); err != nil {
		return &errors.UnmarshalError{Type: "Grid", Reason: err.Error()}
	}
	return g.assign(w)
}

func (g *Grid[T]) assign(w wire[T]) error {
	next := Grid[T]{width: w.Width, height: w.Height, data: w.Data}
	if err := next.Validate(); err != nil {
		return err
	}
	*g = next
	return nil
}
