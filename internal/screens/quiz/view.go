package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/menuquiz/internal/ui/components"
	"github.com/abhisek/menuquiz/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.confirmQuit {
		return renderQuitConfirm(width, height)
	}
	if s.round == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("No active round."))
	}

	r := s.round
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(components.NewProgressBar(fmt.Sprintf("Round %d of %d", r.Number, r.Total), r.Progress, cw).View())
	b.WriteString("\n\n")

	var body strings.Builder
	body.WriteString(theme.Title.Render(r.Item))
	body.WriteString("\n")
	where := r.Category
	if r.Subcategory != "" {
		where += " › " + r.Subcategory
	}
	body.WriteString(theme.Subtitle.Render(where))
	body.WriteString("\n\n")
	body.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("Name the %d ingredients:", len(r.Slots))))
	body.WriteString("\n\n")

	for _, in := range s.inputs {
		body.WriteString(in.View())
		body.WriteString("\n")
	}
	body.WriteString("\n")

	hintLabel := fmt.Sprintf("Hint (%d/%d)", r.HintsUsed, r.HintsAllowed)
	body.WriteString(components.NewButton(hintLabel, r.CanHint, false).View())
	body.WriteString("  ")
	body.WriteString(components.NewButton("Submit", !r.Submitted, !r.Submitted).View())

	b.WriteString(components.Card(body.String(), cw))
	b.WriteString("\n\n")

	switch {
	case r.Submitted:
		style := theme.Incorrect
		if r.Result != nil && r.Result.Perfect() {
			style = theme.Correct
		}
		b.WriteString(style.Bold(true).Render(r.Toast))
		b.WriteString("\n")
		next := "Press Enter for the next item"
		if r.Number == r.Total {
			next = "Press Enter to see your results"
		}
		b.WriteString(theme.Hint.Render(next))
	case s.flash != "":
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Hinted).Render(s.flash))
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func hintFlash(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return "Hint: " + strings.Join(names, ", ")
}

func renderQuitConfirm(width, height int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Quit this game?"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Your score will be lost."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Render("[Y] Quit    [N] Keep going"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}
