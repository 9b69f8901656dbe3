package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/menuquiz/internal/ui/theme"
)

// ChecklistOption is one checkbox row.
type ChecklistOption struct {
	Label   string
	Detail  string
	Checked bool
}

// Checklist is a vertical list of checkboxes with a cursor. Toggling is
// left to the owner, which reads Cursor on space/enter.
type Checklist struct {
	Options []ChecklistOption
	Cursor  int
	Focused bool
}

// NewChecklist creates a checklist with the cursor on the first row.
func NewChecklist(options []ChecklistOption) Checklist {
	return Checklist{Options: options}
}

// Update moves the cursor. It reports false when the cursor would leave
// the list so the owner can move focus elsewhere.
func (c Checklist) Update(msg tea.Msg) (Checklist, bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, true
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor == 0 {
			return c, false
		}
		c.Cursor--
	case "down", "j":
		if c.Cursor >= len(c.Options)-1 {
			return c, false
		}
		c.Cursor++
	}
	return c, true
}

// View renders the checklist.
func (c Checklist) View() string {
	var s string
	for i, opt := range c.Options {
		box := "[ ]"
		if opt.Checked {
			box = "[x]"
		}

		prefix := "  "
		style := theme.Unselected
		if c.Focused && i == c.Cursor {
			prefix = "▸ "
			style = theme.Selected
		}

		line := style.Render(fmt.Sprintf("%s%s %s", prefix, box, opt.Label))
		if opt.Detail != "" {
			line += lipgloss.NewStyle().Foreground(theme.TextDim).Render("  " + opt.Detail)
		}
		s += line + "\n"
	}
	return s
}
