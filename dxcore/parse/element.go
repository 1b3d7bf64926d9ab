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

import (
	"encoding"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Element parses one substring into a value of type R.
//
// Parse MUST be pure: the same input always yields the same result and no
// state is kept between calls. A false result means "did not match"; the
// accompanying value is then the zero value of R.
type Element[R any] interface {
	Parse(s string) (R, bool)
}

// ElementFunc adapts an ordinary function to the Element interface.
//
// Closures that capture mutable state satisfy the interface too, but then
// the purity requirement is the caller's concern.
type ElementFunc[R any] func(s string) (R, bool)

// Parse calls f(s).
func (f ElementFunc[R]) Parse(s string) (R, bool) {
	return f(s)
}

// Scalars is the set of kinds Scalar and FromStr know how to parse.
// Named types over these kinds are included.
type Scalars interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64 |
		~bool |
		~string
}

// Scalar returns the Element that parses T with FromStr.
func Scalar[T Scalars]() Element[T] {
	return ElementFunc[T](FromStr[T])
}

// FromStr parses s as a T using the strconv function for T's kind and
// exact bit size.
//
// Integers are decimal, with an optional sign for signed kinds only, and
// must fit T. Floats accept everything strconv.ParseFloat does. Booleans
// accept what strconv.ParseBool does. Strings are copied. No whitespace is
// trimmed; wrap the element in Trim for that.
func FromStr[T Scalars](s string) (T, bool) {
	var v T
	rv := reflect.ValueOf(&v).Elem()

	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, rv.Type().Bits())
		if err != nil {
			return v, false
		}
		rv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 10, rv.Type().Bits())
		if err != nil {
			return v, false
		}
		rv.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, rv.Type().Bits())
		if err != nil {
			return v, false
		}
		rv.SetFloat(f)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return v, false
		}
		rv.SetBool(b)
	case reflect.String:
		rv.SetString(strings.Clone(s))
	default:
		return v, false
	}

	return v, true
}

// Text returns an Element for any T whose pointer implements
// encoding.TextUnmarshaler:
//
//	parse.Text[semver.Version]()
//	parse.Text[netip.Addr]()
//
// The substring is handed to UnmarshalText unchanged.
func Text[T any, PT interface {
	*T
	encoding.TextUnmarshaler
}]() Element[T] {
	return ElementFunc[T](func(s string) (T, bool) {
		var v T
		if err := PT(&v).UnmarshalText([]byte(s)); err != nil {
			var zero T
			return zero, false
		}
		return v, true
	})
}

// Predeclared scalar elements.
var (
	U8   = Scalar[uint8]()
	U16  = Scalar[uint16]()
	U32  = Scalar[uint32]()
	U64  = Scalar[uint64]()
	Uint = Scalar[uint]()

	I8  = Scalar[int8]()
	I16 = Scalar[int16]()
	I32 = Scalar[int32]()
	I64 = Scalar[int64]()
	Int = Scalar[int]()

	F32 = Scalar[float32]()
	F64 = Scalar[float64]()

	Bool = Scalar[bool]()
)

// Char accepts exactly one valid UTF-8 encoded rune.
var Char Element[rune] = ElementFunc[rune](parseChar)

// String accepts any substring and returns a copy of it.
var String Element[string] = ElementFunc[string](func(s string) (string, bool) {
	return strings.Clone(s), true
})

// PassStr accepts any substring and returns it as is. The result shares
// memory with the input.
var PassStr Element[string] = ElementFunc[string](Passthrough)

func parseChar(s string) (rune, bool) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) || (r == utf8.RuneError && size == 1) {
		return 0, false
	}
	return r, true
}
