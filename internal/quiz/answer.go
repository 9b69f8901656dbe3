package quiz

import "strings"

// Matches compares a player's guess with the true ingredient.
//
// Normalization rules:
// - Whitespace is trimmed on both sides
// - Comparison is case-insensitive
// - An empty guess never matches
func Matches(guess, ingredient string) bool {
	guess = strings.TrimSpace(guess)
	if guess == "" {
		return false
	}
	return strings.EqualFold(guess, strings.TrimSpace(ingredient))
}
