package game

import (
	"math"

	"github.com/abhisek/menuquiz/internal/quiz"
)

// View is the read-only projection adapters render. Hidden ingredients are
// never included.
type View struct {
	SessionID    string           `json:"session_id"`
	Phase        Phase            `json:"phase"`
	Score        int              `json:"score"`
	Difficulty   string           `json:"difficulty"`
	Difficulties []DifficultyView `json:"difficulties"`
	Categories   []CategoryView   `json:"categories"`
	CanStart     bool             `json:"can_start"`
	Round        *RoundView       `json:"round,omitempty"`
	Summary      *Summary         `json:"summary,omitempty"`
}

// DifficultyView is one selectable profile.
type DifficultyView struct {
	quiz.Difficulty
	Selected bool `json:"selected"`
}

// CategoryView is one selectable category.
type CategoryView struct {
	Name     string `json:"name"`
	Items    int    `json:"items"`
	Selected bool   `json:"selected"`
}

// RoundView describes the active question.
type RoundView struct {
	Number      int    `json:"number"` // 1-based
	Total       int    `json:"total"`
	Progress    int    `json:"progress"` // percent
	Item        string `json:"item"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory,omitempty"`

	Slots []SlotView `json:"slots"`

	HintsUsed      int  `json:"hints_used"`
	HintsAllowed   int  `json:"hints_allowed"`
	HintsRemaining int  `json:"hints_remaining"`
	CanHint        bool `json:"can_hint"`

	Submitted bool         `json:"submitted"`
	Result    *quiz.Result `json:"result,omitempty"`
	Toast     string       `json:"toast,omitempty"`
}

// SlotView is one ingredient position.
type SlotView struct {
	Index int `json:"index"`

	// Text is the true ingredient when revealed, empty while hidden.
	Text   string      `json:"text"`
	Reveal quiz.Reveal `json:"reveal"`
	Guess  string      `json:"guess"`
	Status quiz.Status `json:"status"`

	// Editable is true for hidden slots of an unsubmitted question.
	Editable bool `json:"editable"`
}

// View projects the current state.
func (c *Controller) View() View {
	s := c.state
	v := View{
		SessionID:  s.ID,
		Phase:      s.Phase,
		Score:      s.Score,
		Difficulty: s.Difficulty,
		CanStart:   c.CanStart(),
	}

	for _, d := range c.difficulties {
		v.Difficulties = append(v.Difficulties, DifficultyView{
			Difficulty: d,
			Selected:   d.Name == s.Difficulty,
		})
	}
	for _, name := range c.dataset.Categories() {
		v.Categories = append(v.Categories, CategoryView{
			Name:     name,
			Items:    len(c.dataset.Items(name)),
			Selected: c.Selected(name),
		})
	}

	if s.Phase == PhaseQuiz && s.Question != nil {
		v.Round = c.roundView()
	}
	if s.Phase == PhaseEnd {
		sum := BuildSummary(s.History)
		v.Summary = &sum
	}
	return v
}

func (c *Controller) roundView() *RoundView {
	s := c.state
	q := s.Question
	total := len(s.Order)

	rv := &RoundView{
		Number:         s.Round + 1,
		Total:          total,
		Progress:       int(math.Round(float64(s.Round+1) / float64(total) * 100)),
		Item:           q.Item.Name,
		Category:       q.Item.Category,
		Subcategory:    q.Item.Subcategory,
		HintsUsed:      q.HintsUsed,
		HintsAllowed:   q.Difficulty.HintsAllowed,
		HintsRemaining: q.HintsRemaining(),
		CanHint:        q.CanHint(),
		Submitted:      q.Submitted,
		Toast:          s.Toast,
	}
	if s.LastResult != nil {
		r := *s.LastResult
		rv.Result = &r
	}

	rv.Slots = make([]SlotView, q.Len())
	for i := range rv.Slots {
		rv.Slots[i] = SlotView{
			Index:    i,
			Text:     q.Blanks[i],
			Reveal:   q.Reveals[i],
			Guess:    q.Guesses[i],
			Status:   q.Statuses[i],
			Editable: !q.Submitted && !q.Revealed(i),
		}
	}
	return rv
}
