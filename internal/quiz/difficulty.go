package quiz

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultDifficulty is selected when a session starts.
const DefaultDifficulty = "medium"

// Difficulty is a named profile controlling freebies, hints and payout.
type Difficulty struct {
	Name string `json:"name"`

	// HintsAllowed is the number of hint requests per question.
	HintsAllowed int `json:"hints_allowed"`

	// PrefillCount is how many guessable ingredients are revealed up front.
	PrefillCount int `json:"prefill_count"`

	// ScoreValue is the payout for a question answered fully correctly.
	ScoreValue float64 `json:"score_value"`
}

// Validate checks the profile's numeric bounds.
func (d Difficulty) Validate() error {
	switch {
	case strings.TrimSpace(d.Name) == "":
		return errors.New("difficulty name is required")
	case d.HintsAllowed < 0:
		return fmt.Errorf("difficulty %q: hints allowed must be >= 0, got %d", d.Name, d.HintsAllowed)
	case d.PrefillCount < 0:
		return fmt.Errorf("difficulty %q: prefill count must be >= 0, got %d", d.Name, d.PrefillCount)
	case d.ScoreValue <= 0:
		return fmt.Errorf("difficulty %q: score value must be > 0, got %g", d.Name, d.ScoreValue)
	}
	return nil
}

// Difficulties is an ordered set of profiles, easiest first.
type Difficulties []Difficulty

// DefaultDifficulties returns the built-in easy, medium and hard profiles.
func DefaultDifficulties() Difficulties {
	return Difficulties{
		{Name: "easy", HintsAllowed: 3, PrefillCount: 2, ScoreValue: 10},
		{Name: "medium", HintsAllowed: 2, PrefillCount: 1, ScoreValue: 20},
		{Name: "hard", HintsAllowed: 1, PrefillCount: 0, ScoreValue: 30},
	}
}

// Get returns the profile with the given name.
func (ds Difficulties) Get(name string) (Difficulty, bool) {
	for _, d := range ds {
		if d.Name == name {
			return d, true
		}
	}
	return Difficulty{}, false
}

// Names returns profile names in order.
func (ds Difficulties) Names() []string {
	names := make([]string, len(ds))
	for i, d := range ds {
		names[i] = d.Name
	}
	return names
}

// With returns a copy where d replaces the profile of the same name, or is
// appended if no such profile exists.
func (ds Difficulties) With(d Difficulty) Difficulties {
	out := make(Difficulties, 0, len(ds)+1)
	replaced := false
	for _, cur := range ds {
		if cur.Name == d.Name {
			out = append(out, d)
			replaced = true
			continue
		}
		out = append(out, cur)
	}
	if !replaced {
		out = append(out, d)
	}
	return out
}
