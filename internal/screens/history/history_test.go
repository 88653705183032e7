package history

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/edcenter/mocktest/internal/store"
)

type fakeLister struct {
	attempts []store.ExamAttempt
	err      error
}

func (f fakeLister) List(context.Context, int) ([]store.ExamAttempt, error) {
	return f.attempts, f.err
}

func load(s *HistoryScreen) {
	s.Update(s.Init()())
}

func TestHistoryScreen_Empty(t *testing.T) {
	s := New(fakeLister{})
	if !strings.Contains(s.View(100, 30), "Loading") {
		t.Error("expected loading state before data arrives")
	}
	load(s)
	if !strings.Contains(s.View(100, 30), "No exams yet") {
		t.Error("expected empty state")
	}
}

func TestHistoryScreen_Error(t *testing.T) {
	s := New(fakeLister{err: errors.New("db locked")})
	load(s)
	if !strings.Contains(s.View(100, 30), "db locked") {
		t.Error("expected error in view")
	}
}

func TestHistoryScreen_ListAndExpand(t *testing.T) {
	attempts := []store.ExamAttempt{
		{Timestamp: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC), ExamAttemptData: store.ExamAttemptData{
			Subjects: []string{"Physics"}, TotalQuestions: 10, CorrectAnswers: 7, Percent: 70,
			GradeLevel: "10", System: "cbse", Variant: "standard", QuestionSource: "generator", FinishReason: "manual",
			BySubject: []store.SubjectTally{{Subject: "Physics", Correct: 7, Total: 10}},
		}},
		{Timestamp: time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC), ExamAttemptData: store.ExamAttemptData{
			Subjects: []string{"Chemistry"}, TotalQuestions: 5, CorrectAnswers: 5, Percent: 100,
		}},
	}
	s := New(fakeLister{attempts: attempts})
	load(s)

	view := s.View(120, 30)
	if !strings.Contains(view, "Mar 01 10:00") || !strings.Contains(view, " 7/10") {
		t.Errorf("unexpected list:\n%s", view)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !strings.Contains(s.View(120, 30), "questions from generator") {
		t.Error("expected details for the first attempt")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.selected != 1 {
		t.Errorf("selected = %d, want 1", s.selected)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("Physics, Chemistry", 8); got != "Physics…" {
		t.Errorf("truncate = %q", got)
	}
}
