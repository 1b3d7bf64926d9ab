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

package grid

import (
	"encoding/json"
	"slices"

	"dirpx.dev/dxparse/dxcore/errors"
	"dirpx.dev/dxparse/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Neighbourhood selects which cells count as adjacent to a position.
//
// Neighbourhood is a closed enum: only the declared constants are valid.
// Values built by numeric casts are rejected by Validate and by every
// marshal method.
//
// Canonical text forms are "von-neumann" and "moore". ParseNeighbourhood
// also accepts a few common aliases; see its documentation.
type Neighbourhood int

const (
	// VonNeumann is the four orthogonal neighbours: left, right, up, down.
	// It is the zero value.
	VonNeumann Neighbourhood = iota

	// Moore adds the four diagonal neighbours to VonNeumann.
	Moore
)

var _ model.Model = (*Neighbourhood)(nil)

// Canonical string forms of Neighbourhood values.
const (
	VonNeumannStr = "von-neumann"
	MooreStr      = "moore"
)

// orthogonal and diagonal are the neighbour offsets in reporting order.
var (
	orthogonal = [...]Pos{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonal   = [...]Pos{{-1, -1}, {1, 1}, {1, -1}, {-1, 1}}
)

// Offsets returns the relative positions of the neighbours, orthogonal ones
// first. Invalid values have no offsets.
func (n Neighbourhood) Offsets() []Pos {
	switch n {
	case VonNeumann:
		return slices.Clone(orthogonal[:])
	case Moore:
		return slices.Concat(orthogonal[:], diagonal[:])
	default:
		return nil
	}
}

// String returns the canonical form, or "unknown" for invalid values.
func (n Neighbourhood) String() string {
	switch n {
	case VonNeumann:
		return VonNeumannStr
	case Moore:
		return MooreStr
	default:
		return "unknown"
	}
}

// ParseNeighbourhood converts a string to a Neighbourhood.
//
// Accepted forms:
//
//	VonNeumann: "von-neumann", "VonNeumann", "von_neumann", "4", "orthogonal"
//	Moore:      "moore", "Moore", "8", "diagonal"
//
// Any other input yields VonNeumann and a *errors.ParseError.
func ParseNeighbourhood(s string) (Neighbourhood, error) {
	switch s {
	case VonNeumannStr, "VonNeumann", "von_neumann", "4", "orthogonal":
		return VonNeumann, nil
	case MooreStr, "Moore", "8", "diagonal":
		return Moore, nil
	default:
		return VonNeumann, &errors.ParseError{Type: "Neighbourhood", Value: s}
	}
}

// Valid reports whether n is one of the declared constants.
func (n Neighbourhood) Valid() bool {
	return n == VonNeumann || n == Moore
}

// Validate returns a *errors.MarshalError when n is not a declared constant.
func (n Neighbourhood) Validate() error {
	if !n.Valid() {
		return &errors.MarshalError{Type: "Neighbourhood", Value: int(n)}
	}
	return nil
}

// TypeName returns "Neighbourhood".
func (n Neighbourhood) TypeName() string { return "Neighbourhood" }

// Redacted returns the same as String.
func (n Neighbourhood) Redacted() string { return n.String() }

// IsZero reports whether n is VonNeumann.
func (n Neighbourhood) IsZero() bool { return n == VonNeumann }

// MarshalText implements encoding.TextMarshaler.
func (n Neighbourhood) MarshalText() ([]byte, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}
	return []byte(n.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It is also what makes
// Neighbourhood usable as a command line flag value and as parse.Text.
func (n *Neighbourhood) UnmarshalText(text []byte) error {
	parsed, err := ParseNeighbourhood(string(text))
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}

// MarshalJSON encodes n as its canonical string.
func (n Neighbourhood) MarshalJSON() ([]byte, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(n.String())
}

// UnmarshalJSON accepts a string in any form ParseNeighbourhood accepts, or
// the numbers 4 and 8.
func (n *Neighbourhood) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Neighbourhood", Data: data, Reason: "empty data"}
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &errors.UnmarshalError{Type: "Neighbourhood", Data: data, Reason: err.Error()}
		}
		return n.UnmarshalText([]byte(s))
	}

	var count int
	if err := json.Unmarshal(data, &count); err != nil {
		return &errors.UnmarshalError{Type: "Neighbourhood", Data: data, Reason: err.Error()}
	}
	switch count {
	case 4:
		*n = VonNeumann
	case 8:
		*n = Moore
	default:
		return &errors.UnmarshalError{Type: "Neighbourhood", Data: data, Reason: "neighbour count must be 4 or 8"}
	}
	return nil
}

// MarshalYAML encodes n as its canonical string.
func (n Neighbourhood) MarshalYAML() (any, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}
	return n.String(), nil
}

// UnmarshalYAML accepts a scalar in any form ParseNeighbourhood accepts.
func (n *Neighbourhood) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "Neighbourhood", Data: []byte(node.Value), Reason: err.Error()}
	}
	return n.UnmarshalText([]byte(s))
}

// Set implements pflag.Value so Neighbourhood can back a command line flag.
func (n *Neighbourhood) Set(s string) error {
	return n.UnmarshalText([]byte(s))
}

// Type implements pflag.Value.
func (n *Neighbourhood) Type() string { return "neighbourhood" }
