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

// Package model defines the contract shared by the dxparse value types that
// travel outside of a single parse: grids, neighbourhood kinds, versions and
// runtime template specs.
//
// Parsed values themselves are plain Go values and carry no contract. The
// types in this package's scope are the ones that are loaded from or written
// to configuration (YAML suites, JSON dumps from the CLI), so they validate
// themselves, serialize in both formats, and render safely for logs.
//
// Unless explicitly documented otherwise, implementations are immutable value
// types and are safe for concurrent reads.
package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Model is the root interface combining all contracts required for dxparse
// value types. Types implementing Model can be used with the generic helpers
// in this package (ValidateAll, ToJSON, ToYAML, FromJSON, FromYAML,
// MustValidate).
//
// Example implementation:
//
//	type Width int
//
//	func (w Width) Validate() error {
//	    if w < 0 {
//	        return errors.New("width must be non-negative")
//	    }
//	    return nil
//	}
//
//	func (w Width) TypeName() string { return "Width" }
//	func (w Width) IsZero() bool     { return w == 0 }
//	func (w Width) Redacted() string { return w.String() }
//	func (w Width) String() string   { return strconv.Itoa(int(w)) }
//	// ... MarshalJSON, UnmarshalJSON, MarshalYAML, UnmarshalYAML
//
//	var _ Model = (*Width)(nil)
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable is implemented by types that check their own invariants.
//
// Validate MUST be deterministic, MUST NOT mutate the receiver and MUST NOT
// have side effects. It returns nil if and only if the value is usable.
// Callers SHOULD invoke it right after decoding external input.
type Validatable interface {
	Validate() error
}

// Serializable is implemented by types that round-trip through JSON and
// YAML. Marshal methods MUST validate before encoding; unmarshal methods MUST
// validate after decoding and report invalid input with an error.
//
// Implementations use the "type alias" pattern to avoid recursing into their
// own marshal methods:
//
//	func (m MyModel) MarshalJSON() ([]byte, error) {
//	    if err := m.Validate(); err != nil {
//	        return nil, err
//	    }
//	    type alias MyModel
//	    return json.Marshal((alias)(m))
//	}
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable is implemented by types with a human-readable rendering.
//
// Redacted is what goes into logs. It MAY abbreviate large values (a grid
// logs its dimensions, not its cells). String is the full rendering for
// debugging and tests.
type Loggable interface {
	Redacted() string
	String() string
}

// Identifiable is implemented by types that report a constant, CamelCase
// type name without package prefix, used in error messages.
type Identifiable interface {
	TypeName() string
}

// ZeroCheckable is implemented by types that can report whether they hold
// their empty value.
type ZeroCheckable interface {
	IsZero() bool
}
