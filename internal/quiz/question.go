package quiz

import (
	"errors"
	"fmt"

	"github.com/abhisek/menuquiz/internal/menu"
)

var (
	// ErrSubmitted is returned when a submitted question is modified.
	ErrSubmitted = errors.New("question already submitted")

	// ErrSlotOutOfRange is returned for an ingredient index outside the item.
	ErrSlotOutOfRange = errors.New("ingredient index out of range")

	// ErrSlotRevealed is returned when guessing into a revealed slot.
	ErrSlotRevealed = errors.New("ingredient already revealed")
)

// Reveal records why an ingredient slot is showing its true value.
type Reveal int

const (
	RevealNone    Reveal = iota // still hidden
	RevealAuto                  // in the auto-reveal set
	RevealPrefill               // difficulty freebie at creation
	RevealHint                  // uncovered by a hint
	RevealAnswer                // shown after submit
)

var revealNames = [...]string{"none", "auto", "prefill", "hint", "answer"}

func (r Reveal) String() string {
	if r < 0 || int(r) >= len(revealNames) {
		return fmt.Sprintf("Reveal(%d)", int(r))
	}
	return revealNames[r]
}

// MarshalText encodes the reveal kind by name.
func (r Reveal) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// given reports whether the slot was filled before the player answered.
func (r Reveal) given() bool {
	return r == RevealAuto || r == RevealPrefill || r == RevealHint
}

// Status is the per-ingredient verdict after submit.
type Status int

const (
	StatusNeutral Status = iota
	StatusCorrect
	StatusWrong
)

func (s Status) String() string {
	switch s {
	case StatusCorrect:
		return "correct"
	case StatusWrong:
		return "wrong"
	default:
		return "neutral"
	}
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Question is one round: an item, its partially revealed ingredients and
// the player's guesses. It lives until the round ends.
type Question struct {
	Item       menu.Item
	Difficulty Difficulty

	// Blanks holds the true ingredient where revealed, "" where hidden.
	Blanks  []string
	Reveals []Reveal

	// Guesses is index-aligned with Item.Ingredients. Entries for revealed
	// slots are ignored by scoring.
	Guesses []string

	HintsUsed int

	// Statuses is all neutral until Submitted.
	Statuses  []Status
	Submitted bool
}

// Len returns the number of ingredient slots.
func (q *Question) Len() int {
	return len(q.Item.Ingredients)
}

// Revealed reports whether slot i currently shows its ingredient.
func (q *Question) Revealed(i int) bool {
	return q.Reveals[i] != RevealNone
}

// HintsRemaining returns how many hint requests are left.
func (q *Question) HintsRemaining() int {
	if n := q.Difficulty.HintsAllowed - q.HintsUsed; n > 0 {
		return n
	}
	return 0
}

// CanHint reports whether a hint request would be accepted.
func (q *Question) CanHint() bool {
	return !q.Submitted && q.HintsRemaining() > 0
}

// SetGuess records the player's text for a hidden slot.
func (q *Question) SetGuess(i int, text string) error {
	if q.Submitted {
		return ErrSubmitted
	}
	if i < 0 || i >= q.Len() {
		return fmt.Errorf("%w: %d", ErrSlotOutOfRange, i)
	}
	if q.Revealed(i) {
		return fmt.Errorf("%w: %d", ErrSlotRevealed, i)
	}
	q.Guesses[i] = text
	return nil
}

// Result is the outcome of scoring a question.
type Result struct {
	Statuses []Status `json:"statuses"`

	// Correct counts guessable slots the player got right.
	Correct int `json:"correct"`

	// Guessable counts slots the player had to type. May be zero.
	Guessable int `json:"guessable"`

	HintsUsed int     `json:"hints_used"`
	Raw       float64 `json:"raw"`
	Earned    int     `json:"earned"`
}

// Perfect reports whether every guessable slot was correct.
func (r Result) Perfect() bool {
	return r.Correct == r.Guessable
}
