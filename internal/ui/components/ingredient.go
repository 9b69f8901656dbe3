package components

import (
	"fmt"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/menuquiz/internal/game"
	"github.com/abhisek/menuquiz/internal/quiz"
	"github.com/abhisek/menuquiz/internal/ui/theme"
)

// IngredientInput is one ingredient slot: an editable text input while
// hidden, a fixed label once revealed.
type IngredientInput struct {
	Model textinput.Model
	Slot  game.SlotView
}

// NewIngredientInput creates an input for the given slot.
func NewIngredientInput(slot game.SlotView) IngredientInput {
	ti := textinput.New()
	ti.Placeholder = fmt.Sprintf("ingredient %d", slot.Index+1)
	ti.CharLimit = 40
	ti.SetValue(slot.Guess)
	return IngredientInput{Model: ti, Slot: slot}
}

// Editable reports whether the slot accepts typing.
func (in IngredientInput) Editable() bool {
	return in.Slot.Editable
}

// Focus gives the input keyboard focus.
func (in *IngredientInput) Focus() tea.Cmd {
	return in.Model.Focus()
}

// Blur removes keyboard focus.
func (in *IngredientInput) Blur() {
	in.Model.Blur()
}

// Update forwards messages to the text input when editable.
func (in IngredientInput) Update(msg tea.Msg) (IngredientInput, tea.Cmd) {
	if !in.Slot.Editable {
		return in, nil
	}
	var cmd tea.Cmd
	in.Model, cmd = in.Model.Update(msg)
	return in, cmd
}

// Value returns the typed text.
func (in IngredientInput) Value() string {
	return in.Model.Value()
}

// View renders the slot. After submit a wrong slot shows the player's
// answer beside the correct ingredient.
func (in IngredientInput) View() string {
	num := lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%2d. ", in.Slot.Index+1))

	switch in.Slot.Status {
	case quiz.StatusCorrect:
		return num + theme.Correct.Render("✓ "+in.Slot.Text) + revealTag(in.Slot.Reveal)
	case quiz.StatusWrong:
		answer := in.Slot.Guess
		if answer == "" {
			answer = "(blank)"
		}
		return num + theme.Incorrect.Render("✗ "+answer) +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("  correct: ") +
			theme.Body.Render(in.Slot.Text)
	}

	if in.Slot.Editable {
		return num + in.Model.View()
	}
	return num + revealStyle(in.Slot.Reveal).Render(in.Slot.Text) + revealTag(in.Slot.Reveal)
}

func revealStyle(r quiz.Reveal) lipgloss.Style {
	if r == quiz.RevealHint {
		return lipgloss.NewStyle().Foreground(theme.Hinted)
	}
	return theme.Revealed
}

func revealTag(r quiz.Reveal) string {
	var tag string
	switch r {
	case quiz.RevealAuto:
		tag = "protein"
	case quiz.RevealPrefill:
		tag = "freebie"
	case quiz.RevealHint:
		tag = "hint"
	default:
		return ""
	}
	return theme.Hint.Render("  (" + tag + ")")
}
