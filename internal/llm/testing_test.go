package llm

// ingredientsSchema mirrors the shape the menu drafter requests.
func ingredientsSchema() *Schema {
	return &Schema{
		Name:        "test-ingredients",
		Description: "Ingredient list",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"ingredients": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string", "maxLength": 60},
					"minItems": 1,
					"maxItems": 15,
				},
				"category": map[string]any{"type": "string", "enum": []any{"sandwiches", "salads"}},
			},
			"required":             []any{"ingredients"},
			"additionalProperties": false,
		},
	}
}
