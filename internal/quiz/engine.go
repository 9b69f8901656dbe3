// Package quiz implements question generation, hints and scoring for the
// menu ingredient game. All randomness comes from an injected source.
package quiz

import (
	"math"
	"math/rand/v2"
	"strings"

	"github.com/abhisek/menuquiz/internal/menu"
)

// Config holds engine-wide rules.
type Config struct {
	// AutoReveal lists ingredients that are always shown.
	AutoReveal AutoRevealSet

	// HintPenalty is subtracted from the raw score per hint used.
	HintPenalty float64

	// RevealsPerHint caps how many slots a single hint uncovers.
	RevealsPerHint int
}

// DefaultConfig returns the standard game rules.
func DefaultConfig() Config {
	return Config{
		AutoReveal:     DefaultAutoReveal(),
		HintPenalty:    5,
		RevealsPerHint: 2,
	}
}

// Engine generates, hints and scores questions.
// It is not safe for concurrent use.
type Engine struct {
	cfg Config
	rng *rand.Rand
}

// NewEngine creates an engine. A nil rng is replaced by a randomly seeded one.
func NewEngine(cfg Config, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if cfg.AutoReveal == nil {
		cfg.AutoReveal = AutoRevealSet{}
	}
	if cfg.RevealsPerHint <= 0 {
		cfg.RevealsPerHint = 2
	}
	if cfg.HintPenalty < 0 {
		cfg.HintPenalty = 0
	}
	return &Engine{cfg: cfg, rng: rng}
}

// Config returns the rules the engine was built with.
func (e *Engine) Config() Config {
	return e.cfg
}

// NewQuestion builds a question for item: auto-reveal ingredients are shown,
// then up to d.PrefillCount other slots are filled at random.
func (e *Engine) NewQuestion(item menu.Item, d Difficulty) *Question {
	n := len(item.Ingredients)
	q := &Question{
		Item:       item,
		Difficulty: d,
		Blanks:     make([]string, n),
		Reveals:    make([]Reveal, n),
		Guesses:    make([]string, n),
		Statuses:   make([]Status, n),
	}

	for i, ing := range item.Ingredients {
		if e.cfg.AutoReveal.Contains(ing) {
			q.Blanks[i] = ing
			q.Reveals[i] = RevealAuto
		}
	}

	eligible := q.hidden(func(int) bool { return true })
	for _, i := range e.pick(eligible, d.PrefillCount) {
		q.Blanks[i] = item.Ingredients[i]
		q.Reveals[i] = RevealPrefill
	}

	return q
}

// Hint reveals up to RevealsPerHint hidden, unguessed slots and consumes
// one hint, even if nothing was left to reveal. It returns ok=false and
// changes nothing when the allowance is spent or the question is submitted.
func (e *Engine) Hint(q *Question) (revealed []int, ok bool) {
	if !q.CanHint() {
		return nil, false
	}

	eligible := q.hidden(func(i int) bool {
		return strings.TrimSpace(q.Guesses[i]) == ""
	})
	revealed = e.pick(eligible, e.cfg.RevealsPerHint)
	for _, i := range revealed {
		q.Blanks[i] = q.Item.Ingredients[i]
		q.Reveals[i] = RevealHint
	}
	q.HintsUsed++
	return revealed, true
}

// Score computes the result for q without modifying it.
func (e *Engine) Score(q *Question) Result {
	r := Result{
		Statuses:  make([]Status, q.Len()),
		HintsUsed: q.HintsUsed,
	}

	for i, ing := range q.Item.Ingredients {
		if q.Reveals[i].given() {
			r.Statuses[i] = StatusCorrect
			continue
		}
		r.Guessable++
		if Matches(q.Guesses[i], ing) {
			r.Statuses[i] = StatusCorrect
			r.Correct++
		} else {
			r.Statuses[i] = StatusWrong
		}
	}

	total := max(r.Guessable, 1)
	r.Raw = float64(r.Correct) / float64(total) * q.Difficulty.ScoreValue
	r.Earned = max(roundHalfUp(r.Raw-float64(q.HintsUsed)*e.cfg.HintPenalty), 0)
	return r
}

// Submit scores q, reveals every slot and records the statuses.
// Submitting again returns the same result.
func (e *Engine) Submit(q *Question) Result {
	r := e.Score(q)
	for i, ing := range q.Item.Ingredients {
		if q.Reveals[i] == RevealNone {
			q.Reveals[i] = RevealAnswer
		}
		q.Blanks[i] = ing
	}
	copy(q.Statuses, r.Statuses)
	q.Submitted = true
	return r
}

// hidden returns the indices with no reveal that also satisfy keep.
func (q *Question) hidden(keep func(int) bool) []int {
	var idx []int
	for i, r := range q.Reveals {
		if r == RevealNone && keep(i) {
			idx = append(idx, i)
		}
	}
	return idx
}

// pick returns up to n distinct elements of idx chosen uniformly at random.
func (e *Engine) pick(idx []int, n int) []int {
	if n <= 0 || len(idx) == 0 {
		return nil
	}
	e.rng.Shuffle(len(idx), func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })
	return idx[:min(n, len(idx))]
}

// roundHalfUp rounds to the nearest integer, halves toward +Inf.
func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
