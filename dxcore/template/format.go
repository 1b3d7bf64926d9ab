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
	"strconv"
	"strings"

	"dirpx.dev/dxparse/dxcore/parse"
	"github.com/samber/lo"
)

// Format renders a value produced by Run.
//
//	Char            h
//	[]rune          abc
//	[]any           [1 2 3]
//	Matrix[any]     [0 0 1 1]/2
//	everything else fmt.Sprint
func Format(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case []rune:
		return string(v)
	case []any:
		return "[" + formatAll(v) + "]"
	case parse.Matrix[any]:
		return "[" + formatAll(v.Data) + "]/" + strconv.Itoa(v.Width)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// FormatAll renders every value of a run.
func FormatAll(values []any) []string {
	return lo.Map(values, func(v any, _ int) string { return Format(v) })
}

func formatAll(values []any) string {
	return strings.Join(FormatAll(values), " ")
}
