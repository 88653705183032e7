// Package result shows a finished exam: score, breakdown bars, feedback
// and the per-question review list.
package result

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	engine "github.com/edcenter/mocktest/internal/exam"
	"github.com/edcenter/mocktest/internal/question"
	"github.com/edcenter/mocktest/internal/router"
	"github.com/edcenter/mocktest/internal/scoring"
	"github.com/edcenter/mocktest/internal/screen"
	"github.com/edcenter/mocktest/internal/ui/components"
	"github.com/edcenter/mocktest/internal/ui/layout"
	"github.com/edcenter/mocktest/internal/ui/theme"
)

type tab int

const (
	tabSummary tab = iota
	tabReview
)

// ResultScreen displays the outcome of one exam.
type ResultScreen struct {
	snap   engine.Snapshot
	tab    tab
	offset int // first review item shown
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a ResultScreen for a finished snapshot.
func New(snap engine.Snapshot) *ResultScreen {
	return &ResultScreen{snap: snap}
}

func (s *ResultScreen) Init() tea.Cmd { return nil }

func (s *ResultScreen) Title() string {
	if s.tab == tabReview {
		return "Review"
	}
	return "Result"
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	if s.tab == tabReview {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Scroll"},
			{Key: "Tab", Description: "Summary"},
			{Key: "Esc", Description: "Done"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Review answers"},
		{Key: "Esc", Description: "Done"},
	}
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "tab":
		if s.tab == tabSummary {
			s.tab = tabReview
		} else {
			s.tab = tabSummary
		}
	case "up", "k":
		if s.offset > 0 {
			s.offset--
		}
	case "down", "j":
		if s.snap.Result != nil && s.offset < len(s.snap.Result.Review)-1 {
			s.offset++
		}
	case "esc", "enter", "q":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *ResultScreen) View(width, height int) string {
	res := s.snap.Result
	if res == nil {
		return ""
	}
	if s.tab == tabReview {
		return s.renderReview(res.Review, width, height)
	}
	return s.renderSummary(res, width)
}

func (s *ResultScreen) renderSummary(res *engine.Result, width int) string {
	b := res.Breakdown
	cw := min(width-8, 70)

	var out strings.Builder
	out.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).
		Render("Exam complete")))
	out.WriteString("\n\n")

	score := fmt.Sprintf("%d / %d correct   %.0f%%", b.TotalCorrect, b.TotalQuestions, b.Percent())
	out.WriteString(centered(width, lipgloss.NewStyle().Foreground(components.ScoreColor(b.Percent()/100)).Bold(true).
		Render(score)))
	out.WriteString("\n")
	out.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("Time used %s · %s", layout.FormatClock(res.ElapsedSeconds), finishLabel(res.FinishReason)))))
	out.WriteString("\n\n")

	section := func(title string, rows []row) {
		out.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.TextDim).Render(title)))
		out.WriteString("\n")
		for _, r := range rows {
			bar := components.NewProgressBar(r.label, r.tally.Percent()/100, true, cw-10)
			bar.LabelWidth = 14
			bar.Fill = components.ScoreColor(r.tally.Percent() / 100)
			line := bar.View() + lipgloss.NewStyle().Foreground(theme.TextDim).
				Render(fmt.Sprintf("  %d/%d", r.tally.Correct, r.tally.Total))
			out.WriteString(centered(width, line))
			out.WriteString("\n")
		}
		out.WriteString("\n")
	}
	section("By subject", subjectRows(b))
	section("By difficulty", difficultyRows(b))
	section("By cognitive level", cognitiveRows(b))

	out.WriteString(centered(width, lipgloss.NewStyle().Width(cw).Foreground(theme.Text).
		Render(res.Narrative)))
	out.WriteString("\n\n")
	for _, tip := range res.Tips {
		out.WriteString(centered(width, lipgloss.NewStyle().Width(cw).Foreground(theme.Secondary).
			Render("• "+tip)))
		out.WriteString("\n")
	}
	if res.FeedbackSource == engine.FeedbackFallback {
		out.WriteString("\n")
		out.WriteString(centered(width, theme.Hint.Render("Feedback written offline")))
	}
	return out.String()
}

func (s *ResultScreen) renderReview(items []scoring.ReviewItem, width, height int) string {
	cw := min(width-8, 90)
	var out strings.Builder
	used := 0
	for i := s.offset; i < len(items); i++ {
		block := reviewBlock(i, items[i], cw)
		h := lipgloss.Height(block) + 1
		if used > 0 && used+h > height {
			break
		}
		out.WriteString(centered(width, block))
		out.WriteString("\n")
		used += h
	}
	return out.String()
}

func reviewBlock(i int, item scoring.ReviewItem, width int) string {
	var b strings.Builder

	verdict := theme.Correct.Render("✓ correct")
	switch {
	case !item.Answered():
		verdict = lipgloss.NewStyle().Foreground(theme.TextDim).Render("– not answered")
	case !item.Correct:
		verdict = theme.Incorrect.Render("✗ incorrect")
	}
	b.WriteString(fmt.Sprintf("%d. ", i+1))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Render(item.Subject))
	b.WriteString("  " + verdict + "\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(item.Stem))
	b.WriteString("\n")

	if item.Answered() && !item.Correct {
		b.WriteString(theme.Incorrect.Render(fmt.Sprintf("Your answer: %s) %s",
			question.OptionLabel(item.ChosenIndex), item.ChosenText)))
		b.WriteString("\n")
	}
	b.WriteString(theme.Correct.Render(fmt.Sprintf("Answer: %s) %s",
		question.OptionLabel(item.CorrectIndex), item.CorrectText)))
	if item.Explanation != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(item.Explanation))
	}

	return lipgloss.NewStyle().
		Width(width).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1).
		Render(b.String())
}

type row struct {
	label string
	tally scoring.Tally
}

func subjectRows(b scoring.Breakdown) []row {
	var rows []row
	for _, s := range b.Subjects() {
		rows = append(rows, row{s, b.BySubject[s]})
	}
	return rows
}

func difficultyRows(b scoring.Breakdown) []row {
	var rows []row
	for _, d := range b.Difficulties() {
		rows = append(rows, row{string(d), b.ByDifficulty[d]})
	}
	return rows
}

func cognitiveRows(b scoring.Breakdown) []row {
	var rows []row
	for _, c := range b.CognitiveLevels() {
		rows = append(rows, row{string(c), b.ByCognitive[c]})
	}
	return rows
}

func finishLabel(r engine.FinishReason) string {
	switch r {
	case engine.FinishTimer:
		return "time ran out"
	case engine.FinishAdvance:
		return "finished after the last question"
	default:
		return "finished early"
	}
}

func centered(width int, s string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, s)
}
