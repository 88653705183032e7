// Package setup is the exam selection screen.
package setup

import (
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/edcenter/mocktest/internal/question"
	"github.com/edcenter/mocktest/internal/router"
	"github.com/edcenter/mocktest/internal/screen"
	"github.com/edcenter/mocktest/internal/ui/components"
	"github.com/edcenter/mocktest/internal/ui/layout"
	"github.com/edcenter/mocktest/internal/ui/theme"
)

const (
	minCount  = 1
	maxCount  = 100
	countStep = 5
)

type field int

const (
	fieldSubjects field = iota
	fieldCount
	fieldGrade
	fieldVariant
	fieldSystem
	numFields
)

var (
	variants = []question.Variant{question.VariantStandard, question.VariantChallenge, question.VariantRevision}
	systems  = []question.System{question.SystemCBSE, question.SystemICSE, question.SystemStateBoard, question.SystemInternational}
)

// ExamFactory builds the exam screen for the chosen criteria.
type ExamFactory func(question.Criteria) screen.Screen

// SetupScreen lets the student choose what to be examined on.
type SetupScreen struct {
	subjects components.Checklist
	grade    components.TextInput
	count    int
	variant  int
	system   int
	focus    field
	errMsg   string

	newExam    ExamFactory
	newHistory func() screen.Screen
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates a SetupScreen listing subjects, preselecting those in
// defaults. newHistory may be nil.
func New(subjects []string, defaults question.Criteria, newExam ExamFactory, newHistory func() screen.Screen) *SetupScreen {
	list := components.NewChecklist(subjects)
	for i, s := range subjects {
		if defaults.HasSubject(s) {
			list.Checked[i] = true
		}
	}

	grade := components.NewTextInput("grade", defaults.GradeLevel, true, 2)
	grade.Blur()

	return &SetupScreen{
		subjects:   list,
		grade:      grade,
		count:      min(max(defaults.Count, minCount), maxCount),
		variant:    max(slices.Index(variants, defaults.Variant), 0),
		system:     max(slices.Index(systems, defaults.System), 0),
		newExam:    newExam,
		newHistory: newHistory,
	}
}

func (s *SetupScreen) Init() tea.Cmd { return nil }

func (s *SetupScreen) Title() string { return "New exam" }

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
	}
	switch s.focus {
	case fieldSubjects:
		hints = append(hints, layout.KeyHint{Key: "↑↓", Description: "Move"}, layout.KeyHint{Key: "Space", Description: "Toggle"})
	case fieldGrade:
		hints = append(hints, layout.KeyHint{Key: "0-9", Description: "Grade"})
	default:
		hints = append(hints, layout.KeyHint{Key: "←→", Description: "Change"})
	}
	hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Start"})
	if s.newHistory != nil && s.focus != fieldGrade {
		hints = append(hints, layout.KeyHint{Key: "H", Description: "History"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

// Criteria returns the current selection.
func (s *SetupScreen) Criteria() question.Criteria {
	return question.Criteria{
		Subjects:   s.subjects.Values(),
		Count:      s.count,
		GradeLevel: strings.TrimSpace(s.grade.Value()),
		System:     systems[s.system],
		Variant:    variants[s.variant],
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		if s.focus == fieldGrade {
			var cmd tea.Cmd
			s.grade, cmd = s.grade.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	switch kmsg.String() {
	case "tab":
		return s, s.moveFocus(1)
	case "shift+tab":
		return s, s.moveFocus(-1)
	case "enter":
		return s, s.start()
	}

	switch s.focus {
	case fieldSubjects:
		switch kmsg.String() {
		case "up", "k":
			s.subjects = s.subjects.Up()
		case "down", "j":
			s.subjects = s.subjects.Down()
		case "space", "x":
			s.subjects = s.subjects.Toggle()
			s.errMsg = ""
		case "h":
			return s, s.history()
		}
	case fieldGrade:
		var cmd tea.Cmd
		s.grade, cmd = s.grade.Update(kmsg)
		return s, cmd
	default:
		switch kmsg.String() {
		case "left":
			s.adjust(-1)
		case "right":
			s.adjust(1)
		case "h":
			return s, s.history()
		}
	}
	return s, nil
}

func (s *SetupScreen) moveFocus(delta int) tea.Cmd {
	s.focus = (s.focus + field(delta) + numFields) % numFields
	if s.focus == fieldGrade {
		return s.grade.Focus()
	}
	s.grade.Blur()
	return nil
}

func (s *SetupScreen) adjust(delta int) {
	switch s.focus {
	case fieldCount:
		// Steps of five above five, single steps below.
		step := countStep
		if s.count < countStep || (delta < 0 && s.count <= countStep) {
			step = 1
		}
		s.count = min(max(s.count+delta*step, minCount), maxCount)
	case fieldVariant:
		s.variant = (s.variant + delta + len(variants)) % len(variants)
	case fieldSystem:
		s.system = (s.system + delta + len(systems)) % len(systems)
	}
}

func (s *SetupScreen) start() tea.Cmd {
	c := s.Criteria()
	if err := c.Normalize().Validate(); err != nil {
		s.errMsg = err.Error()
		return nil
	}
	next := s.newExam(c)
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func (s *SetupScreen) history() tea.Cmd {
	if s.newHistory == nil {
		return nil
	}
	next := s.newHistory()
	return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func (s *SetupScreen) View(width, height int) string {
	label := func(f field, text string) string {
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if s.focus == f {
			style = theme.Selected
		}
		return style.Render(text)
	}
	value := func(f field, text string) string {
		if s.focus == f {
			return theme.Selected.Render("◂ " + text + " ▸")
		}
		return theme.Body.Render(text)
	}

	var b strings.Builder
	b.WriteString(label(fieldSubjects, "Subjects"))
	b.WriteString("\n")
	if len(s.subjects.Items) == 0 {
		b.WriteString(theme.Hint.Render("  No subjects in the question bank"))
		b.WriteString("\n")
	} else {
		b.WriteString(s.subjects.View())
	}
	b.WriteString("\n")
	b.WriteString(label(fieldCount, "Questions  ") + value(fieldCount, fmt.Sprint(s.count)))
	b.WriteString("\n\n")
	b.WriteString(label(fieldGrade, "Grade      ") + s.grade.View())
	b.WriteString("\n\n")
	b.WriteString(label(fieldVariant, "Style      ") + value(fieldVariant, string(variants[s.variant])))
	b.WriteString("\n\n")
	b.WriteString(label(fieldSystem, "Board      ") + value(fieldSystem, strings.ToUpper(string(systems[s.system]))))

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}

	card := theme.Card.Width(min(width-4, 60)).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
