package menugen

import (
	"fmt"
	"strings"
)

// Validator checks a draft before it is returned.
type Validator interface {
	Name() string
	Validate(d *Draft) *ValidationError
}

// ValidationError describes why a draft was rejected.
type ValidationError struct {
	Validator string
	Message   string
	// Retryable is true when asking the model again may fix it.
	Retryable bool
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// StructuralValidator enforces the dataset's shape rules on one list:
// non-empty, bounded length, no blanks and no case-insensitive duplicates.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(d *Draft) *ValidationError {
	fail := func(format string, args ...any) *ValidationError {
		return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf(format, args...), Retryable: true}
	}

	if len(d.Ingredients) == 0 {
		return fail("ingredient list is empty")
	}
	if len(d.Ingredients) > MaxIngredients {
		return fail("%d ingredients exceeds the limit of %d", len(d.Ingredients), MaxIngredients)
	}

	seen := make(map[string]bool, len(d.Ingredients))
	for i, ing := range d.Ingredients {
		if strings.TrimSpace(ing) == "" {
			return fail("ingredient %d is blank", i+1)
		}
		if n := len([]rune(ing)); n > MaxIngredientLength {
			return fail("ingredient %q is %d characters, limit is %d", ing, n, MaxIngredientLength)
		}
		key := strings.ToLower(ing)
		if seen[key] {
			return fail("ingredient %q is listed twice", ing)
		}
		seen[key] = true
	}
	return nil
}

// NotItemNameValidator rejects lists that just repeat the item's name,
// which would make the question trivial.
type NotItemNameValidator struct{}

func (v *NotItemNameValidator) Name() string { return "not-item-name" }

func (v *NotItemNameValidator) Validate(d *Draft) *ValidationError {
	for _, ing := range d.Ingredients {
		if strings.EqualFold(strings.TrimSpace(ing), strings.TrimSpace(d.Item)) {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("ingredient %q repeats the item name", ing),
				Retryable: true,
			}
		}
	}
	return nil
}
