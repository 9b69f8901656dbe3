// Package menugen drafts ingredient lists for new menu items with an LLM
// and merges them into dataset files.
package menugen

import "context"

// Input describes the item to draft.
type Input struct {
	Item        string
	Category    string
	Subcategory string

	// Description is optional free text, e.g. "house special with pickles".
	Description string

	// Examples are existing items shown to the model for style.
	Examples []Example
}

// Example is an existing item and its ingredients.
type Example struct {
	Item        string
	Ingredients []string
}

// Draft is a validated ingredient list ready to merge.
type Draft struct {
	Item        string   `json:"item"`
	Category    string   `json:"category"`
	Subcategory string   `json:"subcategory,omitempty"`
	Ingredients []string `json:"ingredients"`
}

// Drafter produces ingredient lists.
type Drafter interface {
	Draft(ctx context.Context, input Input) (*Draft, error)
}
