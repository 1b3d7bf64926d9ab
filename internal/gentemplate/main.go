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

// Command gentemplate writes the arity-specialised entry points of package
// parse: Parse1..ParseN and ParseF1..ParseFN.
//
// Every generated function unrolls its steps into straight-line calls to
// Take sharing one Cursor, so a template costs no allocation beyond what its
// elements allocate.
//
// Usage (from dxcore/parse):
//
//	go run ../../internal/gentemplate -n 8 -o template_gen.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"strings"
	"text/template"
)

const header = `/*
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
`

var tmpl = template.Must(template.New("gen").Parse(`
// Code generated by gentemplate; DO NOT EDIT.

package parse
{{range .}}
// Parse{{.N}} matches input against prefix and {{.Count}}, and returns
// {{if eq .N 1}}the value{{else}}one value per step{{end}}. The empty prefix matches anything. Text left after
// the last step is ignored.
func Parse{{.N}}[{{.TypeParams}} any](input, prefix string, {{.Params}}) ({{.Results}}, bool) {
	cur := NewCursor(input)
	cur.Expect(prefix)
{{- range .Steps}}
	{{.Var}} := Take(cur, {{.Arg}})
{{- end}}
	if !cur.OK() {
		return {{.Zeros}}, false
	}
	return {{.Vars}}, true
}

// ParseF{{.N}} is like Parse{{.N}} and also returns the unconsumed remainder.
func ParseF{{.N}}[{{.TypeParams}} any](input, prefix string, {{.Params}}) ({{.Results}}, string, bool) {
	cur := NewCursor(input)
	cur.Expect(prefix)
{{- range .Steps}}
	{{.Var}} := Take(cur, {{.Arg}})
{{- end}}
	if !cur.OK() {
		return {{.Zeros}}, "", false
	}
	return {{.Vars}}, cur.Rest(), true
}
{{end}}`))

type step struct {
	Type string
	Var  string
	Arg  string
}

type arity struct {
	N     int
	Steps []step
}

func (a arity) Count() string {
	if a.N == 1 {
		return "one step"
	}
	return fmt.Sprintf("%d steps", a.N)
}

func (a arity) join(f func(step) string) string {
	parts := make([]string, len(a.Steps))
	for i, s := range a.Steps {
		parts[i] = f(s)
	}
	return strings.Join(parts, ", ")
}

func (a arity) TypeParams() string { return a.join(func(s step) string { return s.Type }) }
func (a arity) Results() string    { return a.TypeParams() }
func (a arity) Vars() string       { return a.join(func(s step) string { return s.Var }) }
func (a arity) Zeros() string      { return a.join(func(s step) string { return "*new(" + s.Type + ")" }) }

func (a arity) Params() string {
	return a.join(func(s step) string { return s.Arg + " Step[" + s.Type + "]" })
}

func arities(n int) []arity {
	out := make([]arity, n)
	for i := range n {
		a := arity{N: i + 1}
		for j := 0; j <= i; j++ {
			a.Steps = append(a.Steps, step{
				Type: string(rune('A' + j)),
				Var:  string(rune('a' + j)),
				Arg:  fmt.Sprintf("s%d", j+1),
			})
		}
		out[i] = a
	}
	return out
}

func main() {
	n := flag.Int("n", 8, "highest arity to generate")
	out := flag.String("o", "template_gen.go", "output file")
	flag.Parse()

	if *n < 1 || *n > 26 {
		log.Fatalf("gentemplate: -n must be between 1 and 26, got %d", *n)
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	if err := tmpl.Execute(&buf, arities(*n)); err != nil {
		log.Fatalf("gentemplate: %v", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("gentemplate: formatting generated code: %v", err)
	}

	if err := os.WriteFile(*out, src, 0o644); err != nil {
		log.Fatalf("gentemplate: %v", err)
	}
}
