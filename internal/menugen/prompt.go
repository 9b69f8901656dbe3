package menugen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You write ingredient lists for a deli menu trivia game.

Rules:
- List the ingredients of the named menu item in the order they are assembled.
- Use short Title Case names ("Smoked Turkey", "Swiss Cheese"). No quantities, prices or preparation steps.
- Name each ingredient once. Do not repeat the menu item's own name.
- Keep the list between 1 and 15 ingredients.
- Match the style of the example items from the same category.`

// buildUserMessage renders the prompt for one item. rejected, when set, is
// the reason the previous attempt was refused.
func buildUserMessage(input Input, cfg Config, rejected string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Menu item: %s\n", input.Item)
	fmt.Fprintf(&b, "Category: %s\n", input.Category)
	if input.Subcategory != "" {
		fmt.Fprintf(&b, "Subcategory: %s\n", input.Subcategory)
	}
	if input.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", input.Description)
	}

	b.WriteString("\nExamples from this category:\n")
	b.WriteString(buildExamples(input.Examples, cfg.MaxExamples))

	if rejected != "" {
		b.WriteString("\n\nYour previous answer was rejected: ")
		b.WriteString(rejected)
	}
	return b.String()
}

func buildExamples(examples []Example, limit int) string {
	if len(examples) == 0 {
		return "None"
	}
	if limit > 0 && len(examples) > limit {
		examples = examples[:limit]
	}

	var b strings.Builder
	for _, e := range examples {
		fmt.Fprintf(&b, "- %s: %s\n", e.Item, strings.Join(e.Ingredients, ", "))
	}
	return strings.TrimRight(b.String(), "\n")
}
