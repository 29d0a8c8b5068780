package generator

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pathBlock(payload map[string]any) Block {
	return Block{Kind: KindPath, Payload: Payload{State: PayloadDecoded, Value: payload}}
}

func definitionBlock(payload map[string]any) Block {
	return Block{Kind: KindDefinition, Payload: Payload{State: PayloadDecoded, Value: payload}}
}

func TestBuildDocumentEmpty(t *testing.T) {
	doc, err := BuildDocument(nil, Options{})
	require.NoError(t, err)

	assert.Equal(t, SwaggerVersion, doc.Swagger)
	assert.Nil(t, doc.Paths)
	assert.Nil(t, doc.Definitions)
	assert.Nil(t, doc.Tags)

	out, err := doc.JSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"swagger": "2.0"}`, string(out))
}

func TestBuildDocumentPathDeepMerge(t *testing.T) {
	blocks := []Block{
		pathBlock(map[string]any{"/users": map[string]any{
			"get": map[string]any{"responses": map[string]any{"200": map[string]any{"description": "ok"}}},
		}}),
		pathBlock(map[string]any{"/users": map[string]any{
			"post": map[string]any{"responses": map[string]any{"201": map[string]any{"description": "created"}}},
		}}),
	}
	doc, err := BuildDocument(blocks, Options{})
	require.NoError(t, err)
	require.NotNil(t, doc.Paths)

	entry, ok := doc.Paths.Get("/users")
	require.True(t, ok)
	item, ok := entry.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, item, "get")
	assert.Contains(t, item, "post")
}

func TestBuildDocumentPathScalarAndArrayOverwrite(t *testing.T) {
	blocks := []Block{
		pathBlock(map[string]any{"/users": map[string]any{
			"get": map[string]any{"summary": "old", "tags": []any{"a"}},
		}}),
		pathBlock(map[string]any{"/users": map[string]any{
			"get": map[string]any{"summary": "new", "tags": []any{"b", "c"}},
		}}),
	}
	doc, err := BuildDocument(blocks, Options{})
	require.NoError(t, err)

	entry, _ := doc.Paths.Get("/users")
	get := entry.(map[string]any)["get"].(map[string]any)
	assert.Equal(t, "new", get["summary"])
	assert.Equal(t, []any{"b", "c"}, get["tags"])
}

func TestBuildDocumentDefinitionOverwrite(t *testing.T) {
	blocks := []Block{
		definitionBlock(map[string]any{"User": map[string]any{
			"type":       "object",
			"properties": map[string]any{"name": map[string]any{"type": "string"}},
		}}),
		definitionBlock(map[string]any{"User": map[string]any{"type": "string"}}),
	}
	doc, err := BuildDocument(blocks, Options{})
	require.NoError(t, err)

	value, ok := doc.Definitions.Get("User")
	require.True(t, ok)
	// Full replacement, not a field-by-field merge.
	assert.Equal(t, map[string]any{"type": "string"}, value)
}

func TestBuildDocumentKeyOrdering(t *testing.T) {
	blocks := []Block{
		definitionBlock(map[string]any{"Zebra": map[string]any{"type": "string"}}),
		definitionBlock(map[string]any{"apple": map[string]any{"type": "string"}}),
		definitionBlock(map[string]any{"Banana": map[string]any{"type": "string"}}),
	}
	doc, err := BuildDocument(blocks, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "Banana", "Zebra"}, doc.Definitions.Keys())
}

func TestBuildDocumentSkipsNonContributingBlocks(t *testing.T) {
	blocks := []Block{
		{Kind: KindPath, Payload: Payload{State: PayloadFailed}},
		{Kind: KindDefinition, Payload: Payload{State: PayloadEmpty}},
		{Kind: "model", Payload: Payload{State: PayloadDecoded, Value: map[string]any{"M": map[string]any{}}}},
		{Kind: KindPath, Payload: Payload{State: PayloadDecoded, Value: "not a mapping"}},
		pathBlock(map[string]any{"/ping": map[string]any{"get": map[string]any{}}}),
	}
	doc, err := BuildDocument(blocks, Options{})
	require.NoError(t, err)

	require.NotNil(t, doc.Paths)
	assert.Equal(t, []string{"/ping"}, doc.Paths.Keys())
	assert.Nil(t, doc.Definitions)
}

func TestBuildDocumentTrimsKeys(t *testing.T) {
	blocks := []Block{
		pathBlock(map[string]any{" /users ": map[string]any{"get": map[string]any{}}}),
		pathBlock(map[string]any{"/users": map[string]any{"post": map[string]any{}}}),
	}
	doc, err := BuildDocument(blocks, Options{})
	require.NoError(t, err)

	entry, ok := doc.Paths.Get("/users")
	require.True(t, ok)
	item := entry.(map[string]any)
	assert.Contains(t, item, "get")
	assert.Contains(t, item, "post")
}

func TestBuildDocumentMetadata(t *testing.T) {
	opts := Options{
		Info:         map[string]any{"title": "Ping API", "version": "1.0.0"},
		Host:         "api.example.com",
		BasePath:     "/v1",
		Schemes:      SchemeList{" HTTPS ", "", "http"},
		ExternalDocs: map[string]any{"url": "https://example.com/docs"},
	}
	doc, err := BuildDocument(nil, opts)
	require.NoError(t, err)

	assert.Equal(t, "api.example.com", doc.Host)
	assert.Equal(t, "/v1", doc.BasePath)
	assert.Equal(t, []string{"https", "http"}, doc.Schemes)
	assert.Equal(t, "Ping API", doc.Info["title"])
	assert.Equal(t, "https://example.com/docs", doc.ExternalDocs["url"])
}

func TestBuildDocumentInvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"bad scheme", Options{Schemes: SchemeList{"gopher"}}},
		{"basePath without slash", Options{BasePath: "v1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildDocument(nil, tt.opts)
			assert.Error(t, err)
		})
	}
}

func TestBuildDocumentTagsPresence(t *testing.T) {
	// Nil map: key omitted.
	doc, err := BuildDocument(nil, Options{})
	require.NoError(t, err)
	out, err := doc.JSON()
	require.NoError(t, err)
	assert.NotContains(t, string(out), `"tags"`)

	// Empty map: empty array.
	doc, err = BuildDocument(nil, Options{Tags: map[string]string{}})
	require.NoError(t, err)
	out, err = doc.JSON()
	require.NoError(t, err)
	assert.Contains(t, string(out), `"tags": []`)

	// Populated map: sorted case-insensitively by name.
	doc, err = BuildDocument(nil, Options{Tags: map[string]string{
		"Zoo":   "zoo ops",
		"admin": "admin ops",
		"Beta":  "beta ops",
	}})
	require.NoError(t, err)
	require.NotNil(t, doc.Tags)
	names := make([]string, 0, len(*doc.Tags))
	for _, tag := range *doc.Tags {
		names = append(names, tag.Name)
	}
	assert.Equal(t, []string{"admin", "Beta", "Zoo"}, names)
}

func TestBuildDocumentNoNullFields(t *testing.T) {
	doc, err := BuildDocument([]Block{
		pathBlock(map[string]any{"/ping": map[string]any{"get": map[string]any{}}}),
	}, Options{})
	require.NoError(t, err)

	out, err := doc.JSON()
	require.NoError(t, err)
	assert.NotContains(t, string(out), "null")

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	for key, value := range decoded {
		assert.NotNil(t, value, "key %q serialized as null", key)
	}
}

func TestBuildDocumentDoesNotAliasBlockPayloads(t *testing.T) {
	payload := map[string]any{"/ping": map[string]any{"get": map[string]any{"summary": "ping"}}}
	doc, err := BuildDocument([]Block{pathBlock(payload)}, Options{})
	require.NoError(t, err)

	payload["/ping"].(map[string]any)["get"].(map[string]any)["summary"] = "mutated"

	entry, _ := doc.Paths.Get("/ping")
	get := entry.(map[string]any)["get"].(map[string]any)
	assert.Equal(t, "ping", get["summary"])
}
