package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not checked here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}

	first, err := s.seq.Reserve(ctx, 3)
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}
	if first != 6 {
		t.Errorf("reserve first = %d, want 6", first)
	}
	next, err := s.seq.Next(ctx)
	if err != nil {
		t.Fatalf("next after reserve: %v", err)
	}
	if next != 9 {
		t.Errorf("next after reserve = %d, want 9", next)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"llm_request_events", "exam_attempt_events", "exam_answer_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
	}
}

func TestLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "question-gen", InputTokens: 100, OutputTokens: 400, LatencyMs: 1200, Success: true, RequestBody: "[user]\nPhysics"},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "feedback", InputTokens: 50, OutputTokens: 80, LatencyMs: 400, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "question-gen", InputTokens: 120, OutputTokens: 0, LatencyMs: 800, ErrorMessage: "rate limited"},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].ErrorMessage != "rate limited" {
		t.Errorf("newest event = %+v, want the failed request", got[0])
	}
	if got[0].Sequence <= got[1].Sequence {
		t.Errorf("events not newest first: %d then %d", got[0].Sequence, got[1].Sequence)
	}

	oldest := got[1].Sequence - 1
	after, err := repo.QueryLLMEvents(ctx, QueryOpts{After: oldest})
	if err != nil {
		t.Fatalf("query after: %v", err)
	}
	if len(after) != 2 {
		t.Errorf("after %d: len = %d, want 2", oldest, len(after))
	}

	feedbackOnly, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "feedback"})
	if err != nil {
		t.Fatalf("query by purpose: %v", err)
	}
	if len(feedbackOnly) != 1 || feedbackOnly[0].Purpose != "feedback" {
		t.Errorf("purpose filter = %+v, want the single feedback event", feedbackOnly)
	}

	one, err := repo.GetLLMEvent(ctx, got[1].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if one == nil || one.Purpose != "feedback" {
		t.Fatalf("get = %+v, want feedback event", one)
	}

	missing, err := repo.GetLLMEvent(ctx, 9999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Errorf("get missing = %+v, want nil", missing)
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("usage rows = %d, want 2", len(byPurpose))
	}
	gen := byPurpose[1]
	if gen.Purpose != "question-gen" || gen.Calls != 2 || gen.InputTokens != 220 || gen.AvgLatencyMs != 1000 {
		t.Errorf("question-gen usage = %+v", gen)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 1 || byModel[0].Calls != 3 || byModel[0].OutputTokens != 480 {
		t.Errorf("model usage = %+v", byModel)
	}
}

func TestExamAttempts(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	attempt := ExamAttemptData{
		SessionID:      "sess-1",
		Subjects:       []string{"Chemistry", "Physics"},
		GradeLevel:     "10",
		System:         "cbse",
		Variant:        "standard",
		QuestionSource: "fallback",
		TotalQuestions: 2,
		CorrectAnswers: 1,
		Answered:       1,
		Percent:        50,
		FinishReason:   "timer",
		FeedbackSource: "fallback",
		BudgetSecs:     600,
		ElapsedSecs:    600,
		BySubject: []SubjectTally{
			{Subject: "Chemistry", Correct: 0, Total: 1},
			{Subject: "Physics", Correct: 1, Total: 1},
		},
		Answers: []ExamAnswerData{
			{QuestionID: "phy-1", Subject: "Physics", Difficulty: "basic", Cognitive: "remember", Stem: "Unit of force?", ChosenIndex: 1, CorrectIndex: 1, Correct: true},
			{QuestionID: "chem-1", Subject: "Chemistry", Difficulty: "basic", Cognitive: "remember", Stem: "Symbol of sodium?", ChosenIndex: -1, CorrectIndex: 2, MarkedForReview: true},
		},
	}
	if err := repo.AppendExamAttempt(ctx, attempt); err != nil {
		t.Fatalf("append attempt: %v", err)
	}
	second := attempt
	second.SessionID = "sess-2"
	second.Answers = nil
	if err := repo.AppendExamAttempt(ctx, second); err != nil {
		t.Fatalf("append second attempt: %v", err)
	}

	got, err := repo.QueryExamAttempts(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query attempts: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].SessionID != "sess-2" {
		t.Errorf("newest attempt = %q, want sess-2", got[0].SessionID)
	}
	first := got[1]
	if first.Percent != 50 || first.FinishReason != "timer" || len(first.Subjects) != 2 {
		t.Errorf("attempt = %+v", first.ExamAttemptData)
	}
	if len(first.BySubject) != 2 || first.BySubject[1].Subject != "Physics" {
		t.Errorf("by subject = %+v", first.BySubject)
	}

	answers, err := repo.ExamAnswers(ctx, "sess-1")
	if err != nil {
		t.Fatalf("answers: %v", err)
	}
	if len(answers) != 2 {
		t.Fatalf("answers len = %d, want 2", len(answers))
	}
	if answers[0].QuestionID != "phy-1" || answers[1].ChosenIndex != -1 || !answers[1].MarkedForReview {
		t.Errorf("answers = %+v", answers)
	}
}

func TestDefaultDBPath(t *testing.T) {
	dir := t.TempDir()

	t.Setenv("MOCKTEST_DB", filepath.Join(dir, "custom", "exam.db"))
	p, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if p != filepath.Join(dir, "custom", "exam.db") {
		t.Errorf("path = %q", p)
	}
	if _, err := os.Stat(filepath.Join(dir, "custom")); err != nil {
		t.Errorf("parent dir not created: %v", err)
	}

	t.Setenv("MOCKTEST_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)
	p, err = DefaultDBPath()
	if err != nil {
		t.Fatalf("DefaultDBPath: %v", err)
	}
	if p != filepath.Join(dir, "mocktest", "mocktest.db") {
		t.Errorf("path = %q", p)
	}
}
