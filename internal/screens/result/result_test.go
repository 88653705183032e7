package result

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	engine "github.com/edcenter/mocktest/internal/exam"
	"github.com/edcenter/mocktest/internal/question"
	"github.com/edcenter/mocktest/internal/router"
	"github.com/edcenter/mocktest/internal/scoring"
)

func testSnapshot() engine.Snapshot {
	qs := []question.Question{
		{ID: "q1", Subject: "Physics", Difficulty: question.DifficultyBasic, Cognitive: question.CognitiveRemember,
			Stem: "Unit of force?", Options: [4]string{"newton", "joule", "watt", "volt"}, CorrectIndex: 0},
		{ID: "q2", Subject: "Chemistry", Difficulty: question.DifficultyAdvanced, Cognitive: question.CognitiveAnalyze,
			Stem: "pH of pure water?", Options: [4]string{"1", "7", "10", "14"}, CorrectIndex: 1,
			Explanation: "Neutral at 25 °C."},
	}
	answers := scoring.AnswerMap{"q1": 0, "q2": 3}
	return engine.Snapshot{
		Status: engine.StatusFinished,
		Result: &engine.Result{
			Breakdown:      scoring.Score(qs, answers),
			Review:         scoring.BuildReview(qs, answers),
			Narrative:      "A solid attempt.",
			Tips:           []string{"Revise acids and bases."},
			FeedbackSource: engine.FeedbackFallback,
			FinishReason:   engine.FinishTimer,
			ElapsedSeconds: 600,
		},
	}
}

func TestResultScreen_Summary(t *testing.T) {
	s := New(testSnapshot())
	view := s.View(100, 40)
	for _, want := range []string{"1 / 2 correct", "50%", "Physics", "Chemistry", "advanced", "A solid attempt.", "Revise acids", "time ran out"} {
		if !strings.Contains(view, want) {
			t.Errorf("summary missing %q", want)
		}
	}
}

func TestResultScreen_Review(t *testing.T) {
	s := New(testSnapshot())
	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	if s.Title() != "Review" {
		t.Fatalf("Title = %q, want Review", s.Title())
	}
	view := s.View(100, 40)
	for _, want := range []string{"Unit of force?", "Your answer: D) 14", "Answer: B) 7", "Neutral at 25"} {
		if !strings.Contains(view, want) {
			t.Errorf("review missing %q", want)
		}
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if strings.Contains(s.View(100, 40), "Unit of force?") {
		t.Error("expected first item scrolled away")
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.offset != 1 {
		t.Errorf("offset = %d, want clamped at 1", s.offset)
	}
}

func TestResultScreen_Esc(t *testing.T) {
	s := New(testSnapshot())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command on Esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}
