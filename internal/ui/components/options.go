package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/edcenter/mocktest/internal/question"
	"github.com/edcenter/mocktest/internal/ui/theme"
)

// OptionList renders the four options of an exam question. Cursor is the
// highlighted row and Chosen the recorded answer, -1 when unanswered.
// The correct option is never known here.
type OptionList struct {
	Options [question.OptionCount]string
	Cursor  int
	Chosen  int
}

// Up moves the cursor up one row.
func (o OptionList) Up() OptionList {
	if o.Cursor > 0 {
		o.Cursor--
	}
	return o
}

// Down moves the cursor down one row.
func (o OptionList) Down() OptionList {
	if o.Cursor < question.OptionCount-1 {
		o.Cursor++
	}
	return o
}

// View renders the options one per line, wrapped to width.
func (o OptionList) View(width int) string {
	var b strings.Builder
	for i, opt := range o.Options {
		cursor := "  "
		if i == o.Cursor {
			cursor = "▸ "
		}
		mark := "○"
		if i == o.Chosen {
			mark = "●"
		}
		line := fmt.Sprintf("%s%s %s)  %s", cursor, mark, question.OptionLabel(i), opt)

		style := lipgloss.NewStyle().Foreground(theme.Text).Width(width)
		switch {
		case i == o.Cursor:
			style = style.Foreground(theme.Primary).Bold(true)
		case i == o.Chosen:
			style = style.Foreground(theme.Secondary)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
