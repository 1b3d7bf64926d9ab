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

package template_test

import (
	"encoding/json"
	"testing"

	dxerrors "dirpx.dev/dxparse/dxcore/errors"
	"dirpx.dev/dxparse/dxcore/model"
	"dirpx.dev/dxparse/dxcore/parse"
	"dirpx.dev/dxparse/dxcore/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSpec_Validate(t *testing.T) {
	assert.NoError(t, template.Spec(`u8, ""`).Validate())

	var verr *dxerrors.ValidationError
	assert.ErrorAs(t, template.Spec("").Validate(), &verr)
	assert.Error(t, template.Spec(`u8`).Validate())
}

func TestSpec_Model(t *testing.T) {
	s := template.Spec(`"x", u8, ""`)
	assert.Equal(t, "Spec", s.TypeName())
	assert.Equal(t, `"x", u8, ""`, s.String())
	assert.Equal(t, s.String(), s.Redacted())
	assert.False(t, s.IsZero())
	assert.True(t, template.Spec("").IsZero())

	tmpl, err := s.Compile()
	require.NoError(t, err)
	assert.Equal(t, 1, tmpl.Len())
}

func TestSpec_JSON(t *testing.T) {
	s := template.Spec(`u8, ""`)

	data, err := model.ToJSON(&s)
	require.NoError(t, err)
	assert.JSONEq(t, `"u8, \"\""`, string(data))

	back := new(template.Spec)
	require.NoError(t, model.FromJSON(data, &back))
	assert.Equal(t, s, *back)

	kept := template.Spec("kept")
	assert.Error(t, json.Unmarshal([]byte(`"u8"`), &kept))
	assert.Equal(t, template.Spec("kept"), kept, "failed decode must not modify the receiver")

	var uerr *dxerrors.UnmarshalError
	assert.ErrorAs(t, json.Unmarshal([]byte(`42`), &kept), &uerr)

	_, err = json.Marshal(template.Spec("u8"))
	assert.Error(t, err)
}

func TestSpec_YAML(t *testing.T) {
	type config struct {
		Template template.Spec `yaml:"template"`
	}

	var c config
	require.NoError(t, yaml.Unmarshal([]byte("template: 'Csv<u8>, \"\"'\n"), &c))
	assert.Equal(t, template.Spec(`Csv<u8>, ""`), c.Template)

	out, err := yaml.Marshal(c)
	require.NoError(t, err)
	var again config
	require.NoError(t, yaml.Unmarshal(out, &again))
	assert.Equal(t, c, again)

	assert.Error(t, yaml.Unmarshal([]byte("template: 'nope, \"\"'\n"), &c))
	assert.Error(t, yaml.Unmarshal([]byte("template: [1, 2]\n"), &c))
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want string
	}{
		{"string", "abc", "abc"},
		{"char", template.Char('é'), "é"},
		{"runes", []rune("xyz"), "xyz"},
		{"int", int32(-4), "-4"},
		{"float", 1.5, "1.5"},
		{"list", []any{uint8(1), template.Char('a'), "b"}, "[1 a b]"},
		{"nested", []any{[]any{1, 2}, []any{}}, "[[1 2] []]"},
		{"matrix", parse.Matrix[any]{Data: []any{1, 2, 3, 4}, Width: 2}, "[1 2 3 4]/2"},
		{"empty_matrix", parse.Matrix[any]{}, "[]/0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, template.Format(tt.v))
		})
	}
}
