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

// Package suite loads and runs files of template expectations:
//
//	name: coordinates
//	cases:
//	  - name: move
//	    template: '"move ", u8, " to ", u8, ""'
//	    input: move 1 to 2
//	    want: ["1", "2"]
//	  - name: overflow
//	    template: 'u8, ""'
//	    input: "256"
//	    match: false
package suite

import (
	stderrors "errors"
	"fmt"
	"slices"

	"dirpx.dev/dxparse/dxcore/errors"
	"dirpx.dev/dxparse/dxcore/model"
	"dirpx.dev/dxparse/dxcore/template"
	"github.com/samber/lo"
	"github.com/sourcegraph/conc/iter"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Suite is a named list of cases.
type Suite struct {
	Name  string
	Cases []*Case
}

// file is the on-disk layout. Cases are decoded without validation so that
// Parse can report every invalid case at once.
type file struct {
	Name  string `yaml:"name"`
	Cases []struct {
		Name     string   `yaml:"name"`
		Template string   `yaml:"template"`
		Input    string   `yaml:"input"`
		Want     []string `yaml:"want"`
		Match    *bool    `yaml:"match"`
	} `yaml:"cases"`
}

// Parse decodes a suite and validates all of its cases.
func Parse(data []byte) (*Suite, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, &errors.UnmarshalError{Type: "Suite", Data: data, Reason: err.Error()}
	}

	s := &Suite{Name: f.Name}
	for _, c := range f.Cases {
		s.Cases = append(s.Cases, &Case{
			Name:     c.Name,
			Template: template.Spec(c.Template),
			Input:    c.Input,
			Want:     c.Want,
			Match:    c.Match,
		})
	}
	if err := model.ValidateAll(s.Cases); err != nil {
		return nil, fmt.Errorf("suite %q: %w", s.Name, err)
	}
	return s, nil
}

// Load reads and parses the suite at path.
func Load(fs afero.Fs, path string) (*Suite, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("suite: %w", err)
	}
	return Parse(data)
}

// Result is the outcome of one case.
type Result struct {
	Case *Case

	// Got holds the formatted values of a successful run.
	Got []string

	// Err is the compile or match error, if any. A case that expects no
	// match passes with a non-nil Err.
	Err error

	Passed bool
}

// Run runs every case of s concurrently and returns the results in case
// order.
func (s *Suite) Run() []Result {
	return iter.Map(s.Cases, func(c **Case) Result {
		return (*c).Run()
	})
}

// Run compiles and runs a single case.
func (c *Case) Run() Result {
	r := Result{Case: c}

	tmpl, err := c.Template.Compile()
	if err != nil {
		r.Err = err
		return r
	}

	values, err := Run(tmpl, c.Input)
	if err != nil {
		r.Err = err
		r.Passed = !c.ExpectMatch() && stderrors.Is(err, errors.ErrNoMatch)
		return r
	}

	r.Got = template.FormatAll(values)
	r.Passed = c.ExpectMatch() && (c.Want == nil || slices.Equal(r.Got, c.Want))
	return r
}

// Run is Template.Run that reports a ragged matrix as an error instead of
// panicking, so that one bad input does not abort a batch.
func Run(tmpl *template.Template, input string) (values []any, err error) {
	defer func() {
		if v := recover(); v != nil {
			verr, ok := v.(*errors.ValidationError)
			if !ok {
				panic(v)
			}
			values, err = nil, verr
		}
	}()
	return tmpl.Run(input)
}

// Failed returns the results that did not pass.
func Failed(results []Result) []Result {
	return lo.Filter(results, func(r Result, _ int) bool { return !r.Passed })
}
