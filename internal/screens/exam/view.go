package exam

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	engine "github.com/edcenter/mocktest/internal/exam"
	"github.com/edcenter/mocktest/internal/ui/components"
	"github.com/edcenter/mocktest/internal/ui/layout"
	"github.com/edcenter/mocktest/internal/ui/theme"
)

const navPanelWidth = 26

func (s *ExamScreen) View(width, height int) string {
	switch {
	case s.prompt != nil:
		return renderFallbackPrompt(width, s.prompt.Cause)
	case s.errMsg != "":
		return renderError(width, s.errMsg)
	case s.confirmQuit:
		return renderConfirm(width, "Leave this exam?", "Your answers will be discarded.")
	case s.confirmFinish:
		return renderConfirm(width, "Finish the exam now?",
			fmt.Sprintf("%d of %d questions answered.", s.snap.Answered, s.snap.Total))
	}

	switch s.snap.Status {
	case engine.StatusGeneratingQuestions:
		return s.renderWaiting(width, fmt.Sprintf("Preparing %d questions on %s",
			s.criteria.Count, strings.Join(s.snap.Criteria.Subjects, ", ")))
	case engine.StatusInProgress:
		return s.renderQuestion(width)
	case engine.StatusGrading, engine.StatusFinished:
		return s.renderWaiting(width, "Grading your answers")
	}
	return s.renderWaiting(width, "Starting")
}

func (s *ExamScreen) renderWaiting(width int, label string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n" + s.spinner.View() + " " + label + "...")
}

func (s *ExamScreen) renderQuestion(width int) string {
	q := s.snap.Question
	compact := layout.IsCompactWidth(width)

	mainWidth := width - 4
	if !compact {
		mainWidth -= navPanelWidth + 2
	}

	var b strings.Builder

	info := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("  %s", q.Subject))
	meta := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %s · %s", q.Difficulty, q.Cognitive))
	b.WriteString(info + meta)
	if q.Marked {
		b.WriteString("  " + theme.Marked.Render("⚑ marked for review"))
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(mainWidth, 0))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(mainWidth).
		PaddingLeft(2).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Stem))
	b.WriteString("\n\n")
	b.WriteString(s.options.View(mainWidth))

	main := b.String()
	nav := s.renderNav()
	if compact {
		return main + "\n" + lipgloss.NewStyle().PaddingLeft(2).Render(nav)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, main, "  ", nav)
}

func (s *ExamScreen) renderNav() string {
	cells := make([]components.NavCell, len(s.snap.Navigation))
	for i, n := range s.snap.Navigation {
		cells[i] = components.NavCell{Answered: n.Answered, Marked: n.Marked, Current: n.Current}
	}

	var b strings.Builder
	b.WriteString(components.NavMap(cells, 5))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).
		Render(fmt.Sprintf("Answered %d/%d", s.snap.Answered, s.snap.Total)))
	if s.snap.Marked > 0 {
		b.WriteString("\n" + theme.Marked.Render(fmt.Sprintf("Marked %d", s.snap.Marked)))
	}
	b.WriteString("\n\n" + components.NavLegend())

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Render(b.String())
}

func renderFallbackPrompt(width int, cause error) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
		Foreground(theme.Accent).Bold(true).
		Render("Could not generate fresh questions"))
	b.WriteString("\n")
	if cause != nil {
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(cause.Error()))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
		Foreground(theme.Text).
		Render("Use questions from the built-in question bank instead?"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
		Foreground(theme.Success).Render("[Y] Yes, use the bank"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
		Foreground(theme.Primary).Render("[N] No, go back"))
	return b.String()
}

func renderConfirm(width int, title, detail string) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
		Foreground(theme.Text).Bold(true).Render(title))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
		Foreground(theme.TextDim).Render(detail))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
		Foreground(theme.Success).Render("[Y] Yes"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).
		Foreground(theme.Primary).Render("[N] No"))
	return b.String()
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  %s\n\n  Press R to try again or Esc to go back.", errMsg))
}
