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

// Step pairs an element with the terminator that ends its input.
// An empty Term means "everything that remains".
type Step[R any] struct {
	Elem Element[R]
	Term string
}

// Until returns the step that parses up to the leftmost occurrence of term.
func Until[R any](e Element[R], term string) Step[R] {
	return Step[R]{Elem: e, Term: term}
}

// UntilFunc is Until for a plain function.
func UntilFunc[R any](f func(string) (R, bool), term string) Step[R] {
	return Step[R]{Elem: ElementFunc[R](f), Term: term}
}

// Rest returns the step that parses the whole remainder.
func Rest[R any](e Element[R]) Step[R] {
	return Step[R]{Elem: e}
}

// RestFunc is Rest for a plain function.
func RestFunc[R any](f func(string) (R, bool)) Step[R] {
	return Step[R]{Elem: ElementFunc[R](f)}
}

// Cursor is the state of one parse: the unconsumed suffix of the input and
// whether every step so far matched.
//
// A Cursor only moves forward. Once a step fails the cursor stays failed,
// later steps are skipped and return zero values.
type Cursor struct {
	rest   string
	failed bool
}

// NewCursor returns a cursor positioned at the start of input.
func NewCursor(input string) *Cursor {
	return &Cursor{rest: input}
}

// Expect consumes prefix, or fails the cursor if the remainder does not
// start with it. The empty prefix always matches.
func (c *Cursor) Expect(prefix string) bool {
	if c.failed {
		return false
	}
	rest, ok := strings.CutPrefix(c.rest, prefix)
	if !ok {
		c.Fail()
		return false
	}
	c.rest = rest
	return true
}

// Rest returns the unconsumed remainder. It is empty after a step with an
// empty terminator and after a failure.
func (c *Cursor) Rest() string {
	return c.rest
}

// OK reports whether every step so far matched.
func (c *Cursor) OK() bool {
	return !c.failed
}

// Fail marks the cursor as failed and drops the remainder.
func (c *Cursor) Fail() {
	c.failed = true
	c.rest = ""
}

// Take applies one step at the cursor.
//
// With an empty terminator the whole remainder goes to the element and
// nothing remains. Otherwise the remainder is cut at the leftmost occurrence
// of the terminator; the front, possibly empty, goes to the element and the
// cursor moves past the terminator. A missing terminator or a rejecting
// element fails the cursor. A failed cursor does not call the element.
func Take[R any](c *Cursor, s Step[R]) R {
	var zero R
	if c.failed {
		return zero
	}

	var front string
	if s.Term == "" {
		front, c.rest = c.rest, ""
	} else {
		before, after, found := strings.Cut(c.rest, s.Term)
		if !found {
			c.Fail()
			return zero
		}
		front, c.rest = before, after
	}

	v, ok := s.Elem.Parse(front)
	if !ok {
		c.Fail()
		return zero
	}
	return v
}
