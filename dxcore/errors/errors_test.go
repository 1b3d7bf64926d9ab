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

package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			"template",
			&ParseError{Type: "Template", Value: "oops 12"},
			`dxparse: "oops 12" does not match Template`,
		},
		{
			"neighbourhood",
			&ParseError{Type: "Neighbourhood", Value: "hex"},
			`dxparse: "hex" does not match Neighbourhood`,
		},
		{
			"empty value",
			&ParseError{Type: "Template", Value: ""},
			`dxparse: "" does not match Template`,
		},
		{
			"control characters are quoted",
			&ParseError{Type: "Template", Value: "a\nb"},
			`dxparse: "a\nb" does not match Template`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ParseError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseError_Is(t *testing.T) {
	err := fmt.Errorf("case 3: %w", &ParseError{Type: "Template", Value: "x"})
	if !stderrors.Is(err, ErrNoMatch) {
		t.Errorf("errors.Is(%v, ErrNoMatch) = false, want true", err)
	}
	if stderrors.Is(&ValidationError{Type: "Grid", Reason: "bad"}, ErrNoMatch) {
		t.Errorf("errors.Is(ValidationError, ErrNoMatch) = true, want false")
	}
}

func TestMarshalError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *MarshalError
		want string
	}{
		{
			"positive value",
			&MarshalError{Type: "Neighbourhood", Value: 99},
			"dxparse: cannot marshal invalid Neighbourhood value: 99",
		},
		{
			"negative value",
			&MarshalError{Type: "Neighbourhood", Value: -1},
			"dxparse: cannot marshal invalid Neighbourhood value: -1",
		},
		{
			"value 42 should be decimal not unicode",
			&MarshalError{Type: "Test", Value: 42},
			"dxparse: cannot marshal invalid Test value: 42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("MarshalError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnmarshalError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *UnmarshalError
		want string
	}{
		{
			"empty data",
			&UnmarshalError{Type: "Neighbourhood", Data: []byte{}, Reason: "empty data"},
			"dxparse: cannot unmarshal Neighbourhood: empty data",
		},
		{
			"json syntax error",
			&UnmarshalError{Type: "Grid", Data: []byte(`{broken`), Reason: "unexpected end of JSON input"},
			"dxparse: cannot unmarshal Grid: unexpected end of JSON input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("UnmarshalError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{
			"with field",
			&ValidationError{Type: "Grid", Field: "Width", Reason: "row 2 has 3 cells, want 4"},
			"dxparse: invalid Grid.Width: row 2 has 3 cells, want 4",
		},
		{
			"without field",
			&ValidationError{Type: "Template", Reason: "no steps"},
			"dxparse: invalid Template: no steps",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ValidationError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrors_Implements_Error_Interface(t *testing.T) {
	var _ error = (*ParseError)(nil)
	var _ error = (*MarshalError)(nil)
	var _ error = (*UnmarshalError)(nil)
	var _ error = (*ValidationError)(nil)
}
