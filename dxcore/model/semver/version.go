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

// Package semver provides a semantic version value that parses from text.
//
// Version implements encoding.TextUnmarshaler, so it is accepted by
// parse.Text and can appear as a field of any template:
//
//	name, v, ok := parse.Parse2("tool v1.4.0-rc.1", "",
//	    parse.Until(parse.PassStr, " "),
//	    parse.Rest(parse.Text[semver.Version]()))
package semver

import (
	"cmp"
	"encoding/json"
	"fmt"
	"strings"

	dxerrors "dirpx.dev/dxparse/dxcore/errors"
	"dirpx.dev/dxparse/dxcore/model"
	bsemver "github.com/blang/semver/v4"
	"gopkg.in/yaml.v3"
)

// Version is a Semantic Versioning 2.0.0 version:
// Major.Minor.Patch[-Prerelease][+Metadata].
//
// Parsing and precedence are delegated to github.com/blang/semver/v4. The
// zero value is 0.0.0.
type Version struct {
	Major uint64
	Minor uint64
	Patch uint64

	// Prerelease holds the dot-separated identifiers after '-', e.g. "rc.1".
	Prerelease string

	// Metadata holds the dot-separated build identifiers after '+'. It does
	// not take part in precedence.
	Metadata string
}

var _ model.Model = (*Version)(nil)

// ParseVersion parses s as a semantic version. One leading "v" is tolerated.
//
//	ParseVersion("v2.0.0-rc.1+build.5") -> Version{2, 0, 0, "rc.1", "build.5"}
//
// On error the returned Version is the zero value and the error wraps a
// *errors.ParseError.
func ParseVersion(s string) (Version, error) {
	bv, err := bsemver.Parse(strings.TrimPrefix(s, "v"))
	if err != nil {
		return Version{}, fmt.Errorf("%w: %v", &dxerrors.ParseError{Type: "Version", Value: s}, err)
	}
	return fromBlang(bv), nil
}

// MustParseVersion is like ParseVersion but panics on error.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

func fromBlang(bv bsemver.Version) Version {
	pre := make([]string, len(bv.Pre))
	for i, p := range bv.Pre {
		pre[i] = p.String()
	}
	return Version{
		Major:      bv.Major,
		Minor:      bv.Minor,
		Patch:      bv.Patch,
		Prerelease: strings.Join(pre, "."),
		Metadata:   strings.Join(bv.Build, "."),
	}
}

func (v Version) toBlang() (bsemver.Version, error) {
	return bsemver.Parse(v.String())
}

// String returns the canonical form without a "v" prefix.
func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Prerelease != "" {
		s += "-" + v.Prerelease
	}
	if v.Metadata != "" {
		s += "+" + v.Metadata
	}
	return s
}

// Redacted returns the same as String; versions carry nothing sensitive.
func (v Version) Redacted() string { return v.String() }

// TypeName returns "Version".
func (v Version) TypeName() string { return "Version" }

// IsZero reports whether v is exactly 0.0.0 with no prerelease or metadata.
func (v Version) IsZero() bool { return v == Version{} }

// Validate checks that the prerelease and metadata identifiers are
// well-formed.
func (v Version) Validate() error {
	if _, err := v.toBlang(); err != nil {
		return &dxerrors.ValidationError{Type: "Version", Reason: err.Error(), Value: v.String()}
	}
	return nil
}

// Compare returns -1, 0 or +1 following SemVer precedence. Metadata is
// ignored. Invalid identifiers fall back to comparing the numeric core and
// then the raw prerelease strings.
func (v Version) Compare(other Version) int {
	a, errA := v.toBlang()
	b, errB := other.toBlang()
	if errA == nil && errB == nil {
		return a.Compare(b)
	}
	return cmp.Or(
		cmp.Compare(v.Major, other.Major),
		cmp.Compare(v.Minor, other.Minor),
		cmp.Compare(v.Patch, other.Patch),
		cmp.Compare(v.Prerelease, other.Prerelease),
	)
}

// Less reports whether v has lower precedence than other.
func (v Version) Less(other Version) bool { return v.Compare(other) < 0 }

// MarshalText implements encoding.TextMarshaler.
func (v Version) MarshalText() ([]byte, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := ParseVersion(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalJSON encodes v as a JSON string.
func (v Version) MarshalJSON() ([]byte, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(v.String())
}

// UnmarshalJSON decodes a JSON string, with or without a "v" prefix.
func (v *Version) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &dxerrors.UnmarshalError{Type: "Version", Data: data, Reason: err.Error()}
	}
	return v.UnmarshalText([]byte(s))
}

// MarshalYAML encodes v as a YAML scalar string.
func (v Version) MarshalYAML() (interface{}, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return v.String(), nil
}

// UnmarshalYAML decodes a YAML scalar string.
func (v *Version) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return &dxerrors.UnmarshalError{Type: "Version", Reason: err.Error()}
	}
	return v.UnmarshalText([]byte(s))
}
