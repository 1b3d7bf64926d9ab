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

package model_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"dirpx.dev/dxparse/dxcore/model"
	"gopkg.in/yaml.v3"
)

// caseModel is a minimal Model: a named template case.
type caseModel struct {
	Name     string `json:"name" yaml:"name"`
	Template string `json:"template" yaml:"template"`
}

func (c caseModel) Validate() error {
	if c.Name == "" {
		return errors.New("name required")
	}
	if c.Template == "" {
		return errors.New("template required")
	}
	return nil
}

func (c caseModel) TypeName() string { return "Case" }

func (c caseModel) IsZero() bool { return c.Name == "" && c.Template == "" }

func (c caseModel) Redacted() string { return "Case{" + c.Name + "}" }

func (c caseModel) String() string { return "Case{" + c.Name + ": " + c.Template + "}" }

func (c caseModel) MarshalJSON() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	type alias caseModel
	return json.Marshal((alias)(c))
}

func (c *caseModel) UnmarshalJSON(data []byte) error {
	type alias caseModel
	if err := json.Unmarshal(data, (*alias)(c)); err != nil {
		return err
	}
	return c.Validate()
}

func (c caseModel) MarshalYAML() (interface{}, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	type alias caseModel
	return (alias)(c), nil
}

func (c *caseModel) UnmarshalYAML(node *yaml.Node) error {
	type alias caseModel
	if err := node.Decode((*alias)(c)); err != nil {
		return err
	}
	return c.Validate()
}

var _ model.Model = (*caseModel)(nil)

func TestValidateAll(t *testing.T) {
	tests := []struct {
		name      string
		models    []*caseModel
		wantErr   bool
		wantParts []string
	}{
		{
			name:   "empty slice",
			models: nil,
		},
		{
			name: "all valid",
			models: []*caseModel{
				{Name: "a", Template: `u8, ""`},
				{Name: "b", Template: `Csv<u32>, ""`},
			},
		},
		{
			name: "every failure reported",
			models: []*caseModel{
				{Name: "a", Template: `u8, ""`},
				{Template: `u8, ""`},
				{Name: "c"},
			},
			wantErr:   true,
			wantParts: []string{"model[1] (Case): name required", "model[2] (Case): template required"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := model.ValidateAll(tt.models)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateAll() error = %v, wantErr %v", err, tt.wantErr)
			}
			for _, part := range tt.wantParts {
				if !strings.Contains(err.Error(), part) {
					t.Errorf("ValidateAll() error = %q, want it to contain %q", err.Error(), part)
				}
			}
		})
	}
}

func TestMustValidate(t *testing.T) {
	t.Run("valid returns the value", func(t *testing.T) {
		m := &caseModel{Name: "a", Template: `u8, ""`}
		if got := model.MustValidate(m); got != m {
			t.Errorf("MustValidate() = %v, want %v", got, m)
		}
	})

	t.Run("invalid panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("MustValidate() did not panic")
			}
		}()
		model.MustValidate(&caseModel{})
	})
}

func TestJSON_RoundTrip(t *testing.T) {
	m := &caseModel{Name: "demo", Template: `"test ", u8, ""`}

	data, err := model.ToJSON(m)
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	got := &caseModel{}
	if err := model.FromJSON(data, &got); err != nil {
		t.Fatalf("FromJSON() error = %v", err)
	}
	if *got != *m {
		t.Errorf("FromJSON(ToJSON(m)) = %v, want %v", got, m)
	}
}

func TestYAML_RoundTrip(t *testing.T) {
	m := &caseModel{Name: "demo", Template: `Csv<u32>, ";"`}

	data, err := model.ToYAML(m)
	if err != nil {
		t.Fatalf("ToYAML() error = %v", err)
	}

	got := &caseModel{}
	if err := model.FromYAML(data, &got); err != nil {
		t.Fatalf("FromYAML() error = %v", err)
	}
	if *got != *m {
		t.Errorf("FromYAML(ToYAML(m)) = %v, want %v", got, m)
	}
}

func TestToJSON_Invalid(t *testing.T) {
	if _, err := model.ToJSON(&caseModel{}); err == nil {
		t.Error("ToJSON(invalid) error = nil, want error")
	}
	if _, err := model.ToYAML(&caseModel{}); err == nil {
		t.Error("ToYAML(invalid) error = nil, want error")
	}
}

func TestFromYAML_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax error", "name: [unclosed"},
		{"missing template", "name: a\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := &caseModel{}
			if err := model.FromYAML([]byte(tt.data), &got); err == nil {
				t.Errorf("FromYAML(%q) error = nil, want error", tt.data)
			}
		})
	}
}
