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

// Package template compiles parse templates written as text, so that the
// step engine of package parse can be driven from configuration files and
// the command line.
//
// A template is a comma-separated list of string literals and elements:
//
//	"move ", u8, " from ", u8, " to ", u8, ""
//
// A leading literal is the prefix. After it, every element is followed by
// the literal that terminates it; the empty literal consumes the rest of the
// input. Elements are the scalar names (u8 through u64, usize, i8 through
// i64, isize, f32, f64, bool, char, String, PassStr, semver) and the
// adapters Trim<E>, Csv<E>, CsvStrict<E>, Separated<E, 'c'>,
// Separated2d<E, 'c', 'r'> and Chars<N>.
//
// Results are dynamically typed: one value per element, holding the Go type
// the element produces (uint8, Char, string, semver.Version, []any,
// parse.Matrix[any], []rune). Use Format to render them.
package template

import (
	"fmt"

	"dirpx.dev/dxparse/dxcore/errors"
	"dirpx.dev/dxparse/dxcore/parse"
	"dirpx.dev/rxmerr"
)

// Template is a compiled template. It is immutable and safe for concurrent
// use.
type Template struct {
	src    string
	prefix string
	steps  []parse.Step[any]
}

// Compile parses src and resolves its elements. Syntax errors are reported
// by the parser; all other problems in src are collected and returned
// together.
func Compile(src string) (*Template, error) {
	node, err := grammar.ParseString("template", src)
	if err != nil {
		return nil, fmt.Errorf("template: %w", err)
	}

	t := &Template{src: src}
	items := node.Items
	if len(items) > 0 && items[0].Literal != nil {
		t.prefix = *items[0].Literal
		items = items[1:]
	}

	c := rxmerr.NewCollector()
	for i := 0; i < len(items); i++ {
		item := items[i]
		if item.Elem == nil {
			c.Append(compileError(item.Pos, "literal %q does not follow an element", *item.Literal))
			continue
		}

		elem, err := compileElem(item.Elem)
		if err != nil {
			c.Append(err)
		}
		if i+1 == len(items) || items[i+1].Literal == nil {
			c.Append(compileError(item.Pos, "element %s has no terminator", item.Elem.Name))
			continue
		}
		i++
		if err == nil {
			t.steps = append(t.steps, parse.Until(elem, *items[i].Literal))
		}
	}

	if err := c.Err(); err != nil {
		return nil, err
	}
	if len(t.steps) == 0 {
		return nil, compileError(node.Items[0].Pos, "template has no elements")
	}
	return t, nil
}

// MustCompile is Compile that panics on error. It is intended for
// package-level templates.
func MustCompile(src string) *Template {
	t, err := Compile(src)
	if err != nil {
		panic(err)
	}
	return t
}

// String returns the source the template was compiled from.
func (t *Template) String() string { return t.src }

// Prefix returns the literal the input must start with.
func (t *Template) Prefix() string { return t.prefix }

// Len returns the number of values a successful run produces.
func (t *Template) Len() int { return len(t.steps) }

// Run matches input and returns one value per element. Text after the last
// terminator is ignored. When input does not match, Run returns a
// *errors.ParseError and no values.
//
// A Separated2d element panics with a *errors.ValidationError when the rows
// of its input disagree on their width.
func (t *Template) Run(input string) ([]any, error) {
	values, _, err := t.RunRest(input)
	return values, err
}

// RunRest is Run that also returns the unconsumed remainder.
func (t *Template) RunRest(input string) ([]any, string, error) {
	cur := parse.NewCursor(input)
	cur.Expect(t.prefix)

	values := make([]any, len(t.steps))
	for i, step := range t.steps {
		values[i] = parse.Take(cur, step)
	}
	if !cur.OK() {
		return nil, "", &errors.ParseError{Type: "Template", Value: input}
	}
	return values, cur.Rest(), nil
}
