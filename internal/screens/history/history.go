package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edcenter/mocktest/internal/router"
	"github.com/edcenter/mocktest/internal/screen"
	"github.com/edcenter/mocktest/internal/store"
	"github.com/edcenter/mocktest/internal/ui/components"
	"github.com/edcenter/mocktest/internal/ui/layout"
	"github.com/edcenter/mocktest/internal/ui/theme"
)

const pageSize = 50

// Lister reads stored attempts.
type Lister interface {
	List(ctx context.Context, limit int) ([]store.ExamAttempt, error)
}

type historyLoadedMsg struct {
	Attempts []store.ExamAttempt
	Err      error
}

// HistoryScreen displays past exam attempts.
type HistoryScreen struct {
	lister   Lister
	attempts []store.ExamAttempt
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(lister Lister) *HistoryScreen {
	return &HistoryScreen{
		lister:   lister,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		attempts, err := s.lister.List(context.Background(), pageSize)
		return historyLoadedMsg{Attempts: attempts, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.attempts = msg.Attempts
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.attempts)-1 {
				s.selected++
			}
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.attempts) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No exams yet.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, a := range s.attempts {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%s  %-28s  %2d/%-2d  %3.0f%%  %s",
			prefix,
			a.Timestamp.Format("Jan 02 15:04"),
			truncate(strings.Join(a.Subjects, ", "), 28),
			a.CorrectAnswers, a.TotalQuestions, a.Percent,
			layout.FormatClock(a.ElapsedSecs))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, details(a)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func details(a store.ExamAttempt) string {
	var b strings.Builder
	meta := fmt.Sprintf("grade %s · %s · %s · questions from %s · %s",
		a.GradeLevel, a.System, a.Variant, a.QuestionSource, a.FinishReason)
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(meta))
	for _, t := range a.BySubject {
		frac := 0.0
		if t.Total > 0 {
			frac = float64(t.Correct) / float64(t.Total)
		}
		bar := components.NewProgressBar(t.Subject, frac, true, 50)
		bar.LabelWidth = 14
		bar.Fill = components.ScoreColor(frac)
		b.WriteString("\n" + bar.View())
	}
	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
