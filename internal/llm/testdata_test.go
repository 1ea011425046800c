package llm

// testSchema is a small closed object used across provider tests.
func testSchema() *Schema {
	return &Schema{
		Type: TypeObject,
		Properties: map[string]*Schema{
			"flag": {Type: TypeBoolean, Description: "A flag."},
			"items": {
				Type: TypeArray,
				Items: &Schema{
					Type: TypeObject,
					Properties: map[string]*Schema{
						"id":    {Type: TypeString},
						"score": {Type: TypeInteger},
					},
					Required: []string{"id", "score"},
				},
			},
		},
		Required: []string{"flag", "items"},
	}
}
