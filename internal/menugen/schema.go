package menugen

import "github.com/abhisek/menuquiz/internal/llm"

// Limits shared by the schema and StructuralValidator.
const (
	MaxIngredients      = 15
	MaxIngredientLength = 60
)

// IngredientsSchema is the structured output requested from the model.
var IngredientsSchema = &llm.Schema{
	Name:        "menu-ingredients",
	Description: "The ingredient list of one deli menu item, in build order",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"ingredients": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":        "string",
					"maxLength":   MaxIngredientLength,
					"description": "One ingredient in Title Case, e.g. \"Smoked Turkey\"",
				},
				"minItems":    1,
				"maxItems":    MaxIngredients,
				"description": "Ingredients in the order they are assembled",
			},
		},
		"required":             []any{"ingredients"},
		"additionalProperties": false,
	},
}
