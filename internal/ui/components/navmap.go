package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/edcenter/mocktest/internal/ui/theme"
)

// NavCell is one question in the navigation map.
type NavCell struct {
	Answered bool
	Marked   bool
	Current  bool
}

// NavMap renders question numbers in rows of perRow. Answered questions
// are teal, marked ones amber, the current one is bracketed.
func NavMap(cells []NavCell, perRow int) string {
	perRow = max(perRow, 1)
	var b strings.Builder
	for i, c := range cells {
		label := fmt.Sprintf("%2d", i+1)
		if c.Current {
			label = "[" + label + "]"
		} else {
			label = " " + label + " "
		}

		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		switch {
		case c.Marked:
			style = theme.Marked
		case c.Answered:
			style = lipgloss.NewStyle().Foreground(theme.Secondary)
		}
		if c.Current {
			style = style.Bold(true).Underline(true)
		}
		b.WriteString(style.Render(label))

		if (i+1)%perRow == 0 && i != len(cells)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// NavLegend explains the navigation map colors.
func NavLegend() string {
	return lipgloss.NewStyle().Foreground(theme.Secondary).Render("■ answered") + "  " +
		theme.Marked.Render("■ marked") + "  " +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("■ open")
}
