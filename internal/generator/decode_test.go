package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDecodeFragmentEmpty(t *testing.T) {
	for _, fragment := range []string{"", "   ", "\n\t\n"} {
		p := DecodeFragment(fragment)
		assert.Equal(t, PayloadEmpty, p.State, "fragment %q", fragment)
		assert.Nil(t, p.Value)
	}
}

func TestDecodeFragmentYAML(t *testing.T) {
	p := DecodeFragment("/ping:\n  get:\n    responses:\n      '200':\n        description: ok\n")
	require.Equal(t, PayloadDecoded, p.State)
	want := map[string]any{
		"/ping": map[string]any{
			"get": map[string]any{
				"responses": map[string]any{
					"200": map[string]any{"description": "ok"},
				},
			},
		},
	}
	assert.Equal(t, want, p.Value)
}

func TestDecodeFragmentJSON(t *testing.T) {
	p := DecodeFragment(`{"User": {"type": "object", "required": ["name"]}}`)
	require.Equal(t, PayloadDecoded, p.State)
	want := map[string]any{
		"User": map[string]any{
			"type":     "object",
			"required": []any{"name"},
		},
	}
	assert.Equal(t, want, p.Value)
}

func TestDecodeFragmentRoundTrip(t *testing.T) {
	value := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name": map[string]any{"type": "string"},
			"tags": []any{"a", "b"},
		},
		"required": []any{"name"},
	}
	serialized, err := yaml.Marshal(value)
	require.NoError(t, err)

	p := DecodeFragment(string(serialized))
	require.Equal(t, PayloadDecoded, p.State)
	assert.Equal(t, value, p.Value)
}

func TestDecodeFragmentNonStringYAMLKeys(t *testing.T) {
	// Unquoted response codes are the common way to write status keys in
	// YAML. They decode as integers and must keep their entries under the
	// key's textual form.
	p := DecodeFragment("/ping:\n  get:\n    responses:\n      200:\n        description: ok\n")
	require.Equal(t, PayloadDecoded, p.State)
	want := map[string]any{
		"/ping": map[string]any{
			"get": map[string]any{
				"responses": map[string]any{
					"200": map[string]any{"description": "ok"},
				},
			},
		},
	}
	assert.Equal(t, want, p.Value)

	p = DecodeFragment("true: yes-branch\nnull: none\n1.5: fraction\n")
	require.Equal(t, PayloadDecoded, p.State)
	assert.Equal(t, map[string]any{
		"true": "yes-branch",
		"null": "none",
		"1.5":  "fraction",
	}, p.Value)
}

func TestDecodeFragmentFailed(t *testing.T) {
	p := DecodeFragment("{ unterminated")
	assert.Equal(t, PayloadFailed, p.State)
	assert.Nil(t, p.Value)
}
