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

// Package errors provides the error values shared by the dxparse packages.
//
// Parsing in dxparse has exactly one data failure: the input did not match.
// The combinator layer reports it as a false ok flag; layers that return
// errors (runtime templates, enum parsing, suites) report it as a
// *ParseError, which always satisfies errors.Is(err, ErrNoMatch).
//
// The remaining types carry failures that are not about the shape of the
// parsed text:
//
//   - MarshalError
//     Returned when an invalid enum-like value is encoded.
//
//   - UnmarshalError
//     Returned when JSON or YAML data cannot be decoded into a model type.
//
//   - ValidationError
//     Returned by Validate methods, and used as the panic value for usage
//     errors: a two-dimensional template or grid loader that receives rows
//     of different widths.
//
// All messages start with "dxparse:" and have a stable format.
package errors

import (
	stderrors "errors"
	"strconv"
)

// ErrNoMatch is the sentinel matched by every *ParseError.
var ErrNoMatch = stderrors.New("dxparse: no match")

// ParseError is returned when a text does not match what a parser expects.
//
// Type names what was being parsed (for example "Template" or
// "Neighbourhood") and Value holds the rejected input. No position is
// recorded; a parse either matches as a whole or it does not.
type ParseError struct {
	// Type is the logical name of the thing being parsed.
	Type string

	// Value is the input that did not match.
	Value string
}

// Error implements the error interface for ParseError.
//
// The message format is:
//
//	"dxparse: {quoted Value} does not match {Type}"
func (e *ParseError) Error() string {
	return "dxparse: " + strconv.Quote(e.Value) + " does not match " + e.Type
}

// Is reports whether target is ErrNoMatch.
func (e *ParseError) Is(target error) bool {
	return target == ErrNoMatch
}

// MarshalError is returned when marshaling a typed value fails because it is
// outside the set of valid constants. In most cases it indicates a
// programming error, such as an enum value produced by a numeric cast.
type MarshalError struct {
	// Type is the logical name of the type being marshaled.
	Type string

	// Value is the underlying numeric representation that could not be
	// marshaled.
	Value int
}

// Error implements the error interface for MarshalError.
//
// The message format is:
//
//	"dxparse: cannot marshal invalid {Type} value: {Value}"
func (e *MarshalError) Error() string {
	return "dxparse: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError is returned when unmarshaling data into a typed value fails.
//
// Data holds the raw payload when one is available. It is not part of the
// message; callers MAY log it separately.
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled into.
	Type string

	// Data is the raw input that failed to unmarshal.
	Data []byte

	// Reason is a short, human-readable explanation of the failure.
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// The message format is:
//
//	"dxparse: cannot unmarshal {Type}: {Reason}"
func (e *UnmarshalError) Error() string {
	return "dxparse: cannot unmarshal " + e.Type + ": " + e.Reason
}

// ValidationError is returned when a value violates a constraint of its
// type, and is the panic value of usage errors.
//
// Usage errors are raised where the caller's template or loader contract is
// broken rather than the data: Separated2D and the grid loaders panic with a
// *ValidationError when rows disagree on their width.
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the offending field. May be empty.
	Field string

	// Reason is a short, human-readable explanation.
	Reason string

	// Value optionally contains the invalid value.
	Value any
}

// Error implements the error interface for ValidationError.
//
// The message format is:
//
//	"dxparse: invalid {Type}.{Field}: {Reason}" (when Field is specified)
//	"dxparse: invalid {Type}: {Reason}" (when Field is empty)
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "dxparse: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "dxparse: invalid " + e.Type + ": " + e.Reason
}
