// Package history records finished exams in the event store and reads
// them back for the history views.
package history

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/edcenter/mocktest/internal/exam"
	"github.com/edcenter/mocktest/internal/question"
	"github.com/edcenter/mocktest/internal/scoring"
	"github.com/edcenter/mocktest/internal/store"
)

// Repo is the part of store.EventRepo the recorder needs.
type Repo interface {
	AppendExamAttempt(ctx context.Context, data store.ExamAttemptData) error
	QueryExamAttempts(ctx context.Context, opts store.QueryOpts) ([]store.ExamAttempt, error)
	ExamAnswers(ctx context.Context, sessionID string) ([]store.ExamAnswerData, error)
}

// Recorder persists finished sessions.
type Recorder struct {
	repo    Repo
	logger  *slog.Logger
	timeout time.Duration
}

// NewRecorder returns a Recorder writing to repo.
func NewRecorder(repo Repo, logger *slog.Logger) *Recorder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recorder{repo: repo, logger: logger, timeout: 5 * time.Second}
}

// OnFinish matches exam.WithOnFinish. Failures are logged, never returned:
// losing a history row must not affect the session.
func (r *Recorder) OnFinish(s exam.Snapshot) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	if err := r.Record(ctx, s); err != nil {
		r.logger.Warn("could not record exam attempt", "session", s.SessionID, "error", err)
	}
}

// Record stores a finished snapshot.
func (r *Recorder) Record(ctx context.Context, s exam.Snapshot) error {
	data, err := AttemptFromSnapshot(s)
	if err != nil {
		return err
	}
	if err := r.repo.AppendExamAttempt(ctx, data); err != nil {
		return fmt.Errorf("append exam attempt: %w", err)
	}
	r.logger.Debug("exam attempt recorded", "session", s.SessionID, "answers", len(data.Answers))
	return nil
}

// List returns up to limit attempts, newest first. limit 0 means all.
func (r *Recorder) List(ctx context.Context, limit int) ([]store.ExamAttempt, error) {
	return r.repo.QueryExamAttempts(ctx, store.QueryOpts{Limit: limit})
}

// Answers returns the per-question record of one attempt.
func (r *Recorder) Answers(ctx context.Context, sessionID string) ([]store.ExamAnswerData, error) {
	return r.repo.ExamAnswers(ctx, sessionID)
}

// AttemptFromSnapshot converts a finished snapshot to its stored form.
func AttemptFromSnapshot(s exam.Snapshot) (store.ExamAttemptData, error) {
	if s.Status != exam.StatusFinished || s.Result == nil {
		return store.ExamAttemptData{}, fmt.Errorf("session %q is %s, not finished", s.SessionID, s.Status)
	}
	res := s.Result
	b := res.Breakdown

	data := store.ExamAttemptData{
		SessionID:      s.SessionID,
		Subjects:       s.Criteria.Subjects,
		GradeLevel:     s.Criteria.GradeLevel,
		System:         string(s.Criteria.System),
		Variant:        string(s.Criteria.Variant),
		QuestionSource: string(s.Source),
		TotalQuestions: b.TotalQuestions,
		CorrectAnswers: b.TotalCorrect,
		Percent:        b.Percent(),
		FinishReason:   string(res.FinishReason),
		FeedbackSource: string(res.FeedbackSource),
		BudgetSecs:     s.BudgetSeconds,
		ElapsedSecs:    res.ElapsedSeconds,
	}
	for _, subj := range b.Subjects() {
		t := b.BySubject[subj]
		data.BySubject = append(data.BySubject, store.SubjectTally{Subject: subj, Correct: t.Correct, Total: t.Total})
	}

	byID := make(map[string]question.Question, len(s.Questions))
	for _, q := range s.Questions {
		byID[q.ID] = q
	}
	marked := make(map[string]bool, len(s.MarkedIDs))
	for _, id := range s.MarkedIDs {
		marked[id] = true
	}

	for _, item := range res.Review {
		if item.ChosenIndex != scoring.Unanswered {
			data.Answered++
		}
		q := byID[item.QuestionID]
		data.Answers = append(data.Answers, store.ExamAnswerData{
			QuestionID:      item.QuestionID,
			Subject:         item.Subject,
			Difficulty:      string(q.Difficulty),
			Cognitive:       string(q.Cognitive),
			Stem:            item.Stem,
			ChosenIndex:     item.ChosenIndex,
			CorrectIndex:    item.CorrectIndex,
			Correct:         item.Correct,
			MarkedForReview: marked[item.QuestionID],
		})
	}
	return data, nil
}
