package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchema_JSONSchema(t *testing.T) {
	doc := testSchema().JSONSchema()

	assert.Equal(t, "object", doc["type"])
	assert.Equal(t, false, doc["additionalProperties"])
	assert.Equal(t, []string{"flag", "items"}, doc["required"])

	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok)

	flag, ok := props["flag"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "boolean", flag["type"])
	assert.Equal(t, "A flag.", flag["description"])

	items, ok := props["items"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "array", items["type"])

	item, ok := items["items"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, false, item["additionalProperties"])
	assert.Equal(t, []string{"id", "score"}, item["required"])
}

func TestSchema_NilAndString(t *testing.T) {
	var s *Schema
	assert.Nil(t, s.JSONSchema())

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(testSchema().String()), &decoded))
	assert.Equal(t, "object", decoded["type"])
}

func TestToGeminiSchema(t *testing.T) {
	out := toGeminiSchema(testSchema())

	assert.Equal(t, "OBJECT", out["type"])
	assert.Equal(t, []string{"flag", "items"}, out["required"])
	assert.NotContains(t, out, "additionalProperties")

	props, ok := out["properties"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"type": "BOOLEAN", "description": "A flag."}, props["flag"])

	items, ok := props["items"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ARRAY", items["type"])

	item, ok := items["items"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "OBJECT", item["type"])
	itemProps, ok := item["properties"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"type": "INTEGER"}, itemProps["score"])
}
