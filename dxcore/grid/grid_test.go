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

package grid_test

import (
	"encoding/json"
	"strings"
	"testing"

	dxerrors "dirpx.dev/dxparse/dxcore/errors"
	"dirpx.dev/dxparse/dxcore/grid"
	"dirpx.dev/dxparse/dxcore/model"
	"dirpx.dev/dxparse/dxcore/parse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identity(r rune) rune { return r }

// sample is
//
//	abc
//	def
func sample() *grid.Grid[rune] {
	return grid.FromLines([]string{"abc", "def"}, identity)
}

func TestNew(t *testing.T) {
	g := grid.New(3, 2, '.')
	w, h := g.Dims()
	assert.Equal(t, 3, w)
	assert.Equal(t, 2, h)
	assert.Equal(t, 6, g.Len())
	assert.Equal(t, "...\n...\n", g.String())

	assert.Panics(t, func() { grid.New(-1, 2, 0) })
}

func TestFromSlice(t *testing.T) {
	g := grid.FromSlice(2, []int{1, 2, 3, 4, 5, 6})
	assert.Equal(t, 2, g.Width())
	assert.Equal(t, 3, g.Height())

	empty := grid.FromSlice[int](0, nil)
	assert.True(t, empty.IsZero())

	defer func() {
		err, ok := recover().(*dxerrors.ValidationError)
		require.True(t, ok, "FromSlice() should panic with *ValidationError")
		assert.Equal(t, "Width", err.Field)
	}()
	grid.FromSlice(4, []int{1, 2, 3, 4, 5, 6})
}

func TestFromMatrix(t *testing.T) {
	m, ok := parse.Separated2D(parse.Trim(parse.U32), '.', ';').Parse("0. 0;1.1;2.2")
	require.True(t, ok)

	g := grid.FromMatrix(m)
	assert.Equal(t, 2, g.Width())
	assert.Equal(t, 3, g.Height())

	v, ok := g.Get(grid.Pos{X: 1, Y: 2})
	assert.True(t, ok)
	assert.Equal(t, uint32(2), v)
}

func TestAccessors(t *testing.T) {
	g := sample()

	v, ok := g.Get(grid.Pos{X: 2, Y: 1})
	assert.True(t, ok)
	assert.Equal(t, 'f', v)

	_, ok = g.Get(grid.Pos{X: 3, Y: 0})
	assert.False(t, ok)
	_, ok = g.Get(grid.Pos{X: -1, Y: 0})
	assert.False(t, ok)

	assert.Nil(t, g.Ptr(grid.Pos{X: 0, Y: 2}))
	*g.Ptr(grid.Pos{X: 0, Y: 0}) = 'A'
	assert.True(t, g.Set(grid.Pos{X: 1, Y: 1}, 'E'))
	assert.False(t, g.Set(grid.Pos{X: 1, Y: 5}, 'x'))
	assert.Equal(t, "Abc\ndEf\n", g.String())

	assert.Equal(t, 'c', g.At(2))
	assert.Equal(t, []rune("AbcdEf"), g.Data())
}

func TestCoordinates(t *testing.T) {
	g := sample()

	idx, ok := g.PosToIdx(grid.Pos{X: 1, Y: 1})
	assert.True(t, ok)
	assert.Equal(t, 4, idx)
	assert.Equal(t, grid.Pos{X: 1, Y: 1}, g.IdxToPos(4))

	_, ok = g.PosToIdx(grid.Pos{X: 0, Y: 2})
	assert.False(t, ok)

	p, ok := g.Offset(grid.Pos{X: 2, Y: 0}, -2, 1)
	assert.True(t, ok)
	assert.Equal(t, grid.Pos{X: 0, Y: 1}, p)

	_, ok = g.Offset(grid.Pos{X: 0, Y: 0}, -1, 0)
	assert.False(t, ok)

	assert.Equal(t, grid.Pos{X: 1, Y: 0}, g.WrapX(grid.Pos{X: 4, Y: 0}))
	assert.Equal(t, grid.Pos{X: 2, Y: 1}, g.WrapX(grid.Pos{X: -1, Y: 1}))
}

func TestNeighbours(t *testing.T) {
	g := grid.New(3, 3, 0)
	center := grid.Pos{X: 1, Y: 1}

	assert.Equal(t, []grid.Pos{{0, 1}, {2, 1}, {1, 0}, {1, 2}}, g.Neighbours(center))
	assert.Equal(t,
		[]grid.Pos{{0, 1}, {2, 1}, {1, 0}, {1, 2}, {0, 0}, {2, 2}, {2, 0}, {0, 2}},
		g.NeighboursDiag(center))

	corner := grid.Pos{X: 0, Y: 0}
	assert.Equal(t, []grid.Pos{{1, 0}, {0, 1}}, g.Neighbours(corner))
	assert.Equal(t, []grid.Pos{{1, 0}, {0, 1}, {1, 1}}, g.Adjacent(corner, grid.Moore))
	assert.Empty(t, g.Adjacent(corner, grid.Neighbourhood(9)))
}

func TestRows(t *testing.T) {
	var rows []string
	for y, row := range sample().Rows() {
		rows = append(rows, string(rune('0'+y))+":"+string(row))
	}
	assert.Equal(t, []string{"0:abc", "1:def"}, rows)

	for y := range sample().Rows() {
		assert.Equal(t, 0, y)
		break
	}
}

func TestAll(t *testing.T) {
	g := grid.New(2, 2, 0)
	for p, cell := range g.All() {
		*cell = p.X + 10*p.Y
	}
	assert.Equal(t, []int{0, 1, 10, 11}, g.Data())
}

func TestPrint(t *testing.T) {
	g := grid.FromLines([]string{"#.", ".#"}, func(r rune) bool { return r == '#' })

	var sb strings.Builder
	require.NoError(t, g.Print(&sb, func(b bool) rune {
		if b {
			return 'X'
		}
		return ' '
	}))
	assert.Equal(t, "X \n X\n", sb.String())
	assert.Equal(t, "#.\n.#\n", g.String())
}

func TestModel(t *testing.T) {
	g := sample()
	assert.Equal(t, "Grid", g.TypeName())
	assert.Equal(t, "Grid{width: 3, height: 2}", g.Redacted())
	assert.False(t, g.IsZero())
	assert.NoError(t, g.Validate())

	var zero grid.Grid[int]
	assert.True(t, zero.IsZero())
	assert.NoError(t, zero.Validate())
}

func TestJSON(t *testing.T) {
	g := grid.FromSlice(2, []int{1, 2, 3, 4})

	data, err := model.ToJSON(g)
	require.NoError(t, err)
	assert.JSONEq(t, `{"width":2,"height":2,"data":[1,2,3,4]}`, string(data))

	back := &grid.Grid[int]{}
	require.NoError(t, json.Unmarshal(data, back))
	assert.Equal(t, g.Data(), back.Data())
	assert.Equal(t, 2, back.Height())

	err = json.Unmarshal([]byte(`{"width":2,"height":2,"data":[1,2,3]}`), back)
	var verr *dxerrors.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, 2, back.Height(), "failed decode must not modify the grid")

	err = json.Unmarshal([]byte(`{"width":"x"}`), back)
	var uerr *dxerrors.UnmarshalError
	assert.ErrorAs(t, err, &uerr)
}

func TestUnmarshal_DimensionsOverflow(t *testing.T) {
	tests := []struct {
		name   string
		decode func(g **grid.Grid[int]) error
	}{
		{
			name: "json",
			decode: func(g **grid.Grid[int]) error {
				return model.FromJSON([]byte(`{"width":4611686018427387904,"height":4,"data":[]}`), g)
			},
		},
		{
			name: "yaml",
			decode: func(g **grid.Grid[int]) error {
				return model.FromYAML([]byte("width: 4611686018427387904\nheight: 4\ndata: []\n"), g)
			},
		},
		{
			name: "json_wrapping_to_len",
			decode: func(g **grid.Grid[int]) error {
				return model.FromJSON([]byte(`{"width":4611686018427387905,"height":4,"data":[1,2,3,4]}`), g)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &grid.Grid[int]{}
			err := tt.decode(&g)
			var verr *dxerrors.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "Data", verr.Field)

			assert.True(t, g.IsZero(), "failed decode must not modify the grid")
			_, ok := g.Get(grid.Pos{})
			assert.False(t, ok)
		})
	}

	valid := &grid.Grid[int]{}
	require.NoError(t, model.FromJSON([]byte(`{"width":0,"height":3,"data":[]}`), &valid))
	assert.False(t, valid.Contains(grid.Pos{}))
}

func TestYAML(t *testing.T) {
	g := grid.FromSlice(3, []string{"a", "b", "c"})

	data, err := model.ToYAML(g)
	require.NoError(t, err)

	back := &grid.Grid[string]{}
	require.NoError(t, model.FromYAML(data, &back))
	assert.Equal(t, []string{"a", "b", "c"}, back.Data())
	assert.Equal(t, 1, back.Height())

	bad := &grid.Grid[string]{}
	assert.Error(t, model.FromYAML([]byte("width: 2\nheight: 2\ndata: [a]\n"), &bad))
}
