package llm

import "encoding/json"

// Type is a schema value type.
type Type string

// Schema value types.
const (
	TypeObject  Type = "object"
	TypeArray   Type = "array"
	TypeString  Type = "string"
	TypeNumber  Type = "number"
	TypeInteger Type = "integer"
	TypeBoolean Type = "boolean"
)

// Schema describes the JSON document a model must return. It is a small
// subset of JSON Schema that every supported provider understands.
type Schema struct {
	Properties  map[string]*Schema
	Items       *Schema
	Type        Type
	Description string
	Required    []string
}

// JSONSchema renders s as a standard JSON Schema document. Objects are closed
// (additionalProperties false) so strict providers accept it.
func (s *Schema) JSONSchema() map[string]any {
	if s == nil {
		return nil
	}

	out := map[string]any{
		"type": string(s.Type),
	}
	if s.Description != "" {
		out["description"] = s.Description
	}

	switch s.Type {
	case TypeObject:
		props := make(map[string]any, len(s.Properties))
		for name, prop := range s.Properties {
			props[name] = prop.JSONSchema()
		}
		out["properties"] = props
		out["additionalProperties"] = false
		if len(s.Required) > 0 {
			out["required"] = s.Required
		}
	case TypeArray:
		if s.Items != nil {
			out["items"] = s.Items.JSONSchema()
		}
	}

	return out
}

// String returns the indented JSON Schema text, for prompts.
func (s *Schema) String() string {
	data, err := json.MarshalIndent(s.JSONSchema(), "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}
