package game

import (
	"github.com/abhisek/menuquiz/internal/menu"
	"github.com/abhisek/menuquiz/internal/quiz"
)

// Phase is the controller's top-level state.
type Phase string

const (
	PhaseStart Phase = "start" // choosing difficulty and categories
	PhaseQuiz  Phase = "quiz"  // answering rounds
	PhaseEnd   Phase = "end"   // all rounds played
)

// State is everything a session mutates between actions.
type State struct {
	// ID identifies the session; regenerated on restart.
	ID string

	Phase Phase

	// Difficulty is the selected profile name. Kept across restarts.
	Difficulty string

	// Selected holds chosen category names in dataset order.
	Selected []string

	// Order is the shuffled item sequence built on start.
	Order []menu.Item

	// Round indexes into Order.
	Round int

	// Score is the cumulative points earned. Never negative.
	Score int

	// Question is the active round, nil outside the quiz phase.
	Question *quiz.Question

	// LastResult is set after the active question is submitted.
	LastResult *quiz.Result

	// History has one entry per submitted round.
	History []RoundResult

	// Toast is the short feedback line for the last submit.
	Toast string
}

// RoundResult is the per-round record kept for the end summary.
type RoundResult struct {
	Item        string `json:"item"`
	Category    string `json:"category"`
	Difficulty  string `json:"difficulty"`
	Correct     int    `json:"correct"`
	Guessable   int    `json:"guessable"`
	HintsUsed   int    `json:"hints_used"`
	Earned      int    `json:"earned"`
	Perfect     bool   `json:"perfect"`
	Ingredients int    `json:"ingredients"`
}

func newRoundResult(q *quiz.Question, r quiz.Result) RoundResult {
	return RoundResult{
		Item:        q.Item.Name,
		Category:    q.Item.Category,
		Difficulty:  q.Difficulty.Name,
		Correct:     r.Correct,
		Guessable:   r.Guessable,
		HintsUsed:   r.HintsUsed,
		Earned:      r.Earned,
		Perfect:     r.Perfect(),
		Ingredients: q.Len(),
	}
}
