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
	"encoding/json"
	"fmt"

	"dirpx.dev/dxparse/dxcore/errors"
	"dirpx.dev/dxparse/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Spec is template source as it appears in configuration. A Spec is valid
// when it compiles.
type Spec string

var _ model.Model = (*Spec)(nil)

// Compile compiles s.
func (s Spec) Compile() (*Template, error) {
	return Compile(string(s))
}

// Validate implements model.Validatable.
func (s Spec) Validate() error {
	if s == "" {
		return &errors.ValidationError{Type: s.TypeName(), Reason: "empty template"}
	}
	if _, err := s.Compile(); err != nil {
		return fmt.Errorf("template %q: %w", string(s), err)
	}
	return nil
}

// String implements model.Loggable.
func (s Spec) String() string { return string(s) }

// Redacted implements model.Loggable. Templates carry no secrets.
func (s Spec) Redacted() string { return string(s) }

// TypeName implements model.Identifiable.
func (s Spec) TypeName() string { return "Spec" }

// IsZero implements model.ZeroCheckable.
func (s Spec) IsZero() bool { return s == "" }

// MarshalJSON implements json.Marshaler.
func (s Spec) MarshalJSON() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(string(s))
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Spec) UnmarshalJSON(data []byte) error {
	var src string
	if err := json.Unmarshal(data, &src); err != nil {
		return &errors.UnmarshalError{Type: "Spec", Data: data, Reason: "expected JSON string"}
	}
	return s.assign(Spec(src))
}

// MarshalYAML implements yaml.Marshaler.
func (s Spec) MarshalYAML() (any, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return string(s), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Spec) UnmarshalYAML(node *yaml.Node) error {
	var src string
	if err := node.Decode(&src); err != nil {
		return &errors.UnmarshalError{Type: "Spec", Data: []byte(node.Value), Reason: "expected YAML string"}
	}
	return s.assign(Spec(src))
}

func (s *Spec) assign(v Spec) error {
	if err := v.Validate(); err != nil {
		return err
	}
	*s = v
	return nil
}
