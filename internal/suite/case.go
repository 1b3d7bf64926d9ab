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

package suite

import (
	"encoding/json"
	"fmt"

	"dirpx.dev/dxparse/dxcore/errors"
	"dirpx.dev/dxparse/dxcore/model"
	"dirpx.dev/dxparse/dxcore/template"
	"gopkg.in/yaml.v3"
)

// Case is one expectation: running Template on Input either yields Want,
// rendered with template.Format, or, when Match is false, does not match.
type Case struct {
	Name     string        `json:"name" yaml:"name"`
	Template template.Spec `json:"template" yaml:"template"`
	Input    string        `json:"input" yaml:"input"`
	Want     []string      `json:"want,omitempty" yaml:"want,omitempty"`
	Match    *bool         `json:"match,omitempty" yaml:"match,omitempty"`
}

var _ model.Model = (*Case)(nil)

// ExpectMatch reports whether the case expects the input to match. It
// defaults to true.
func (c *Case) ExpectMatch() bool {
	return c.Match == nil || *c.Match
}

// Validate implements model.Validatable.
func (c *Case) Validate() error {
	if c.Name == "" {
		return &errors.ValidationError{Type: c.TypeName(), Field: "Name", Reason: "required"}
	}
	if err := c.Template.Validate(); err != nil {
		return fmt.Errorf("case %q: %w", c.Name, err)
	}
	if !c.ExpectMatch() && len(c.Want) > 0 {
		return &errors.ValidationError{
			Type:   c.TypeName(),
			Field:  "Want",
			Reason: fmt.Sprintf("case %q expects no match but lists values", c.Name),
		}
	}
	return nil
}

// TypeName implements model.Identifiable.
func (c *Case) TypeName() string { return "Case" }

// IsZero implements model.ZeroCheckable.
func (c *Case) IsZero() bool {
	return c.Name == "" && c.Template == "" && c.Input == "" && c.Want == nil && c.Match == nil
}

// Redacted implements model.Loggable.
func (c *Case) Redacted() string { return "Case{" + c.Name + "}" }

// String implements model.Loggable.
func (c *Case) String() string {
	return fmt.Sprintf("Case{%s: %s <- %q}", c.Name, c.Template, c.Input)
}

// MarshalJSON implements json.Marshaler.
func (c *Case) MarshalJSON() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	type alias Case
	return json.Marshal((*alias)(c))
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *Case) UnmarshalJSON(data []byte) error {
	type alias Case
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	v := Case(a)
	if err := v.Validate(); err != nil {
		return err
	}
	*c = v
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c *Case) MarshalYAML() (any, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	type alias Case
	return (*alias)(c), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Case) UnmarshalYAML(node *yaml.Node) error {
	type alias Case
	var a alias
	if err := node.Decode(&a); err != nil {
		return err
	}
	v := Case(a)
	if err := v.Validate(); err != nil {
		return err
	}
	*c = v
	return nil
}
