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

package template

import (
	"fmt"
	"maps"
	"slices"
	"unicode/utf8"

	"dirpx.dev/dxparse/dxcore/errors"
	"dirpx.dev/dxparse/dxcore/model/semver"
	"dirpx.dev/dxparse/dxcore/parse"
	"github.com/alecthomas/participle/v2/lexer"
)

// Char is the value produced by the char element. It is a distinct type so
// that Format can tell a character from an i32.
type Char rune

func (c Char) String() string { return string(rune(c)) }

func box[R any](e parse.Element[R]) parse.Element[any] {
	return parse.ElementFunc[any](func(s string) (any, bool) {
		v, ok := e.Parse(s)
		if !ok {
			return nil, false
		}
		return v, true
	})
}

var scalars = map[string]parse.Element[any]{
	"u8":      box(parse.U8),
	"u16":     box(parse.U16),
	"u32":     box(parse.U32),
	"u64":     box(parse.U64),
	"usize":   box(parse.Uint),
	"i8":      box(parse.I8),
	"i16":     box(parse.I16),
	"i32":     box(parse.I32),
	"i64":     box(parse.I64),
	"isize":   box(parse.Int),
	"f32":     box(parse.F32),
	"f64":     box(parse.F64),
	"bool":    box(parse.Bool),
	"String":  box(parse.String),
	"PassStr": box(parse.PassStr),
	"semver":  box(parse.Text[semver.Version]()),
	"char": parse.ElementFunc[any](func(s string) (any, bool) {
		r, ok := parse.Char.Parse(s)
		if !ok {
			return nil, false
		}
		return Char(r), true
	}),
}

// Names returns the element names a template may use, sorted.
func Names() []string {
	names := slices.Collect(maps.Keys(scalars))
	names = append(names,
		"Trim", "Csv", "CsvStrict", "CsvStict",
		"Separated", "Seperated", "Separated2d", "Seperated2d", "Chars")
	slices.Sort(names)
	return names
}

func compileError(pos lexer.Position, format string, args ...any) error {
	return &errors.ValidationError{
		Type:   "Template",
		Field:  pos.String(),
		Reason: fmt.Sprintf(format, args...),
	}
}

func compileElem(e *elemNode) (parse.Element[any], error) {
	if elem, ok := scalars[e.Name]; ok {
		if len(e.Args) != 0 {
			return nil, compileError(e.Pos, "%s takes no arguments", e.Name)
		}
		return elem, nil
	}

	switch e.Name {
	case "Trim":
		inner, err := e.signature("E")
		if err != nil {
			return nil, err
		}
		return parse.Trim(inner), nil

	case "Csv":
		inner, err := e.signature("E")
		if err != nil {
			return nil, err
		}
		return box(parse.CSV(inner)), nil

	case "CsvStrict", "CsvStict":
		inner, err := e.signature("E")
		if err != nil {
			return nil, err
		}
		return box(parse.CSVStrict(inner)), nil

	case "Separated", "Seperated":
		inner, err := e.signature("E", "C")
		if err != nil {
			return nil, err
		}
		return box(parse.Separated(inner, e.char(1))), nil

	case "Separated2d", "Seperated2d":
		inner, err := e.signature("E", "C", "C")
		if err != nil {
			return nil, err
		}
		return box(parse.Separated2D(inner, e.char(1), e.char(2))), nil

	case "Chars":
		if _, err := e.signature("N"); err != nil {
			return nil, err
		}
		return box(parse.Chars(*e.Args[0].Int)), nil
	}

	return nil, compileError(e.Pos, "unknown element %q", e.Name)
}

// signature checks the arguments of e against kinds, where E is an element,
// C a single character and N a count. It compiles and returns the element
// argument, if any.
func (e *elemNode) signature(kinds ...string) (parse.Element[any], error) {
	if len(e.Args) != len(kinds) {
		return nil, compileError(e.Pos, "%s takes %d arguments, got %d", e.Name, len(kinds), len(e.Args))
	}

	var inner parse.Element[any]
	for i, kind := range kinds {
		arg := e.Args[i]
		switch kind {
		case "E":
			if arg.Elem == nil {
				return nil, compileError(arg.Pos, "%s argument %d must be an element", e.Name, i+1)
			}
			elem, err := compileElem(arg.Elem)
			if err != nil {
				return nil, err
			}
			inner = elem
		case "C":
			if arg.Char == nil || utf8.RuneCountInString(*arg.Char) != 1 {
				return nil, compileError(arg.Pos, "%s argument %d must be a character", e.Name, i+1)
			}
		case "N":
			if arg.Int == nil {
				return nil, compileError(arg.Pos, "%s argument %d must be a count", e.Name, i+1)
			}
		}
	}
	return inner, nil
}

func (e *elemNode) char(i int) rune {
	r, _ := utf8.DecodeRuneInString(*e.Args[i].Char)
	return r
}
