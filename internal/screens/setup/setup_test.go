package setup

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/edcenter/mocktest/internal/question"
	"github.com/edcenter/mocktest/internal/router"
	"github.com/edcenter/mocktest/internal/screen"
)

type stubScreen struct{ criteria question.Criteria }

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "" }
func (s *stubScreen) Title() string                           { return "stub" }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newTestSetup(defaults question.Criteria) *SetupScreen {
	return New([]string{"Biology", "Chemistry", "Physics"}, defaults,
		func(c question.Criteria) screen.Screen { return &stubScreen{criteria: c} },
		func() screen.Screen { return &stubScreen{} })
}

func TestSetup_Defaults(t *testing.T) {
	s := newTestSetup(question.Criteria{
		Subjects:   []string{"physics"},
		Count:      20,
		GradeLevel: "10",
		Variant:    question.VariantRevision,
		System:     question.SystemICSE,
	})
	c := s.Criteria()
	if len(c.Subjects) != 1 || c.Subjects[0] != "Physics" {
		t.Errorf("Subjects = %v, want [Physics]", c.Subjects)
	}
	if c.Count != 20 || c.GradeLevel != "10" {
		t.Errorf("Count/Grade = %d/%q", c.Count, c.GradeLevel)
	}
	if c.Variant != question.VariantRevision || c.System != question.SystemICSE {
		t.Errorf("Variant/System = %s/%s", c.Variant, c.System)
	}
}

func TestSetup_StartRequiresSubject(t *testing.T) {
	s := newTestSetup(question.Criteria{Count: 10})
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("expected no exam without subjects")
	}
	if !strings.Contains(s.View(100, 30), question.ErrNoSubjects.Error()) {
		t.Error("expected error in view")
	}

	s.Update(specialKey(tea.KeySpace))
	s.Update(specialKey(tea.KeyDown))
	s.Update(specialKey(tea.KeyDown))
	s.Update(keyPress('x'))
	_, cmd = s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected push command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	got := push.Screen.(*stubScreen).criteria
	if strings.Join(got.Subjects, ",") != "Biology,Physics" {
		t.Errorf("Subjects = %v", got.Subjects)
	}
}

func TestSetup_AdjustFields(t *testing.T) {
	s := newTestSetup(question.Criteria{Count: 10})

	s.Update(specialKey(tea.KeyTab)) // count
	s.Update(specialKey(tea.KeyRight))
	if s.count != 15 {
		t.Errorf("count = %d, want 15", s.count)
	}
	s.Update(specialKey(tea.KeyLeft))
	s.Update(specialKey(tea.KeyLeft))
	s.Update(specialKey(tea.KeyLeft))
	if s.count != 4 {
		t.Errorf("count = %d, want 4", s.count)
	}

	s.Update(specialKey(tea.KeyTab)) // grade
	s.Update(specialKey(tea.KeyTab)) // variant
	s.Update(specialKey(tea.KeyRight))
	if got := s.Criteria().Variant; got != question.VariantChallenge {
		t.Errorf("Variant = %s, want challenge", got)
	}

	s.Update(specialKey(tea.KeyTab)) // system
	s.Update(specialKey(tea.KeyLeft))
	if got := s.Criteria().System; got != question.SystemInternational {
		t.Errorf("System = %s, want international", got)
	}
}

func TestSetup_History(t *testing.T) {
	s := newTestSetup(question.Criteria{Count: 5})
	_, cmd := s.Update(keyPress('h'))
	if cmd == nil {
		t.Fatal("expected history push")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Error("expected PushScreenMsg")
	}
}
