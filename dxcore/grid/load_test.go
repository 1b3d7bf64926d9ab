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
	"bufio"
	"strconv"
	"strings"
	"testing"

	dxerrors "dirpx.dev/dxparse/dxcore/errors"
	"dirpx.dev/dxparse/dxcore/grid"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wall(r rune) bool { return r == '#' }

func nonEmpty(line string) bool { return line != "" }

func TestLoadReader(t *testing.T) {
	g, err := grid.LoadReader(strings.NewReader("#..\n.#.\n..#\n"), wall)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, []bool{true, false, false, false, true, false, false, false, true}, g.Data())
}

func TestLoad_WidthInRunes(t *testing.T) {
	g, err := grid.Load(bufio.NewScanner(strings.NewReader("é.\n.é")), identity)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Width())
	assert.Equal(t, "é.\n.é\n", g.String())
}

func TestLoad_EmptyInput(t *testing.T) {
	g, err := grid.LoadReader(strings.NewReader(""), wall)
	require.NoError(t, err)
	assert.True(t, g.IsZero())
}

func TestLoad_RaggedPanics(t *testing.T) {
	defer func() {
		err, ok := recover().(*dxerrors.ValidationError)
		require.True(t, ok, "Load() should panic with *ValidationError")
		assert.Equal(t, "Grid", err.Type)
		assert.Contains(t, err.Reason, "line 2 has width 2, want 3")
	}()
	_, _ = grid.LoadReader(strings.NewReader("abc\nde\n"), identity)
}

func TestLoadWhile_Blocks(t *testing.T) {
	sc := bufio.NewScanner(strings.NewReader("#.\n.#\n\n###\n...\n###\n"))

	first, err := grid.LoadWhile(sc, wall, nonEmpty)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Width())
	assert.Equal(t, 2, first.Height())

	second, err := grid.LoadWhile(sc, wall, nonEmpty)
	require.NoError(t, err)
	assert.Equal(t, 3, second.Width())
	assert.Equal(t, 3, second.Height())

	third, err := grid.LoadWhile(sc, wall, nonEmpty)
	require.NoError(t, err)
	assert.True(t, third.IsZero())
}

func TestLoadSplitWhile(t *testing.T) {
	input := "22 13 17\n 8  2 23\n\n1 2\n"
	sc := bufio.NewScanner(strings.NewReader(input))
	atoi := func(s string) int {
		n, _ := strconv.Atoi(s)
		return n
	}

	g, err := grid.LoadSplitWhile(sc, ' ', atoi, nonEmpty)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, []int{22, 13, 17, 8, 2, 23}, g.Data())

	assert.True(t, sc.Scan(), "the line after the separator must still be readable")
	assert.Equal(t, "1 2", sc.Text())
}

func TestLoad_CRLF(t *testing.T) {
	sc := bufio.NewScanner(strings.NewReader("#.\r\n.#\r\n\r\n1 2\r\n"))

	g, err := grid.LoadWhile(sc, wall, nonEmpty)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Width())
	assert.Equal(t, 2, g.Height())

	n, err := grid.LoadSplitWhile(sc, ' ', func(s string) string { return s }, nonEmpty)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, n.Data())
}

func TestLoadReader_LongLine(t *testing.T) {
	line := strings.Repeat("#", 100*1024)
	g, err := grid.LoadReader(strings.NewReader(line+"\n"+line+"\n"), wall)
	require.NoError(t, err)
	assert.Equal(t, len(line), g.Width())
	assert.Equal(t, 2, g.Height())
}

func TestLoadFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/maps/a.txt", []byte("ab\ncd\n"), 0o644))

	g, err := grid.LoadFile(fs, "/maps/a.txt", identity)
	require.NoError(t, err)
	assert.Equal(t, "ab\ncd\n", g.String())

	_, err = grid.LoadFile(fs, "/maps/missing.txt", identity)
	assert.Error(t, err)
}
