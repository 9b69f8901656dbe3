package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/menuquiz/internal/ui/theme"
)

// MenuItem is one action on a menu such as the results screen's
// Retry / Main Menu / Quit.
type MenuItem struct {
	Label string
	// Shortcut activates the item directly, e.g. "r". Optional.
	Shortcut string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical list of actions with one highlighted.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu highlights the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items, Selected: -1}
	m.step(1)
	if m.Selected < 0 {
		m.Selected = 0
	}
	return m
}

// step moves the highlight to the next enabled item in direction dir,
// staying put when there is none.
func (m *Menu) step(dir int) {
	for i := m.Selected + dir; i >= 0 && i < len(m.Items); i += dir {
		if !m.Items[i].Disabled {
			m.Selected = i
			return
		}
	}
}

// Update moves the highlight, and runs an item on enter or its shortcut.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		m.step(-1)
	case "down", "j":
		m.step(1)
	case "enter":
		return m, m.activate(m.Selected)
	default:
		for i, item := range m.Items {
			if item.Shortcut == key && !item.Disabled {
				m.Selected = i
				return m, m.activate(i)
			}
		}
	}
	return m, nil
}

func (m Menu) activate(i int) tea.Cmd {
	if i < 0 || i >= len(m.Items) {
		return nil
	}
	item := m.Items[i]
	if item.Action == nil || item.Disabled {
		return nil
	}
	return item.Action()
}

// View renders the menu.
func (m Menu) View() string {
	lines := make([]string, len(m.Items))
	for i, item := range m.Items {
		label := item.Label
		if item.Shortcut != "" {
			label += lipgloss.NewStyle().Foreground(theme.TextDim).Render("  (" + item.Shortcut + ")")
		}
		switch {
		case item.Disabled:
			lines[i] = lipgloss.NewStyle().Foreground(theme.Border).Render("    " + item.Label)
		case i == m.Selected:
			lines[i] = theme.Selected.Render("  ▸ ") + theme.Selected.Render(label)
		default:
			lines[i] = theme.Unselected.Render("    ") + theme.Unselected.Render(label)
		}
	}
	return strings.Join(lines, "\n")
}
