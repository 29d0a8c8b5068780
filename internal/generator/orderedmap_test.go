package generator

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestOrderedMapSort(t *testing.T) {
	m := NewOrderedMap()
	m.Set("Zebra", 1)
	m.Set("apple", 2)
	m.Set("Banana", 3)
	m.Sort()
	assert.Equal(t, []string{"apple", "Banana", "Zebra"}, m.Keys())
}

func TestOrderedMapSetKeepsFirstPosition(t *testing.T) {
	m := NewOrderedMap()
	m.Set("b", 1)
	m.Set("a", 2)
	m.Set("b", 3)
	assert.Equal(t, []string{"b", "a"}, m.Keys())
	v, ok := m.Get("b")
	require.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestOrderedMapMarshalJSONPreservesOrder(t *testing.T) {
	m := NewOrderedMap()
	m.Set("zeta", "1")
	m.Set("Alpha", "2")
	m.Sort()

	out, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"Alpha":"2","zeta":"1"}`, string(out))
}

func TestOrderedMapMarshalYAMLPreservesOrder(t *testing.T) {
	m := NewOrderedMap()
	m.Set("zeta", "1")
	m.Set("Alpha", "2")
	m.Sort()

	out, err := yaml.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, "Alpha: \"2\"\nzeta: \"1\"\n", string(out))
}
