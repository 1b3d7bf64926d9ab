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

// Package parse provides type-directed string parsing combinators.
//
// A parse is described by a template: an optional prefix literal followed by
// steps, each pairing an Element with the terminator literal that ends its
// input. The template is matched left to right against one input string and
// produces one typed value per step:
//
//	a, b, c, ok := parse.Parse3("test 12, 11,10; rest", "test ",
//	    parse.Until(parse.CSV(parse.U32), "; "),
//	    parse.Until(parse.PassStr, " "),
//	    parse.Rest(parse.String))
//
// # Elements
//
// An Element turns one substring into a value or reports that it did not
// match. Scalar lifts every Go scalar kind through strconv, Text lifts every
// encoding.TextUnmarshaler, and the adapters (Trim, CSVStrict, CSV,
// Separated, Separated2D, Chars) compose other elements.
//
// # Steps
//
// A step with a non-empty terminator splits the remainder at the leftmost
// occurrence of the terminator, hands the front to its element and continues
// after the terminator. A step with an empty terminator hands the whole
// remainder to its element and leaves nothing. Terminators are literal
// strings; nothing is escaped.
//
// # Failure
//
// There is one failure: the input did not match. A missing prefix, a missing
// terminator and an element rejecting its substring all end the parse
// immediately, and every value returned next to a false ok is the zero value.
//
// Two situations are usage errors rather than mismatches and panic with a
// *errors.ValidationError: Separated2D rows of different widths, and grid
// loaders fed lines of different widths.
//
// # Shapes
//
// Parse1 through Parse8 return the values and ok. ParseF1 through ParseF8
// also return the unconsumed remainder, so a template need not consume the
// whole input. Both families are generated by internal/gentemplate.
//
// # Aliasing
//
// PassStr and Passthrough return substrings of the input without copying.
// Such results share memory with the input; String returns an owned copy.
// Everything in this package is pure and safe for concurrent use.
package parse

//go:generate go run ../../internal/gentemplate -n 8 -o template_gen.go
