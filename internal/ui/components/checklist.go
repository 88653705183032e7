package components

import (
	"charm.land/lipgloss/v2"

	"github.com/edcenter/mocktest/internal/ui/theme"
)

// Checklist is a vertical list of toggleable items.
type Checklist struct {
	Items    []string
	Checked  map[int]bool
	Selected int
}

// NewChecklist creates a checklist with nothing checked.
func NewChecklist(items []string) Checklist {
	return Checklist{Items: items, Checked: make(map[int]bool)}
}

// Up moves the selection up.
func (c Checklist) Up() Checklist {
	if c.Selected > 0 {
		c.Selected--
	}
	return c
}

// Down moves the selection down.
func (c Checklist) Down() Checklist {
	if c.Selected < len(c.Items)-1 {
		c.Selected++
	}
	return c
}

// Toggle flips the selected item.
func (c Checklist) Toggle() Checklist {
	if c.Selected >= 0 && c.Selected < len(c.Items) {
		c.Checked[c.Selected] = !c.Checked[c.Selected]
	}
	return c
}

// Values returns the checked items in list order.
func (c Checklist) Values() []string {
	var out []string
	for i, item := range c.Items {
		if c.Checked[i] {
			out = append(out, item)
		}
	}
	return out
}

// View renders the checklist.
func (c Checklist) View() string {
	var s string
	for i, item := range c.Items {
		box := "[ ] "
		if c.Checked[i] {
			box = "[x] "
		}
		if i == c.Selected {
			s += lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Render("▸ "+box+item) + "\n"
		} else {
			s += lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("  "+box+item) + "\n"
		}
	}
	return s
}
