package store

import (
	"context"
	"fmt"

	"github.com/edcenter/mocktest/ent"
	"github.com/edcenter/mocktest/ent/examanswerevent"
	"github.com/edcenter/mocktest/ent/examattemptevent"
	"github.com/edcenter/mocktest/ent/predicate"
	entschema "github.com/edcenter/mocktest/ent/schema"
)

// AppendExamAttempt writes the attempt row and one answer row per question
// in a single transaction. Sequence numbers are reserved up front so the
// counter never runs inside the write transaction.
func (r *eventRepo) AppendExamAttempt(ctx context.Context, data ExamAttemptData) error {
	first, err := r.seq.Reserve(ctx, len(data.Answers)+1)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	bySubject := make([]entschema.SubjectTally, 0, len(data.BySubject))
	for _, t := range data.BySubject {
		bySubject = append(bySubject, entschema.SubjectTally{
			Subject: t.Subject,
			Correct: t.Correct,
			Total:   t.Total,
		})
	}
	subjects := data.Subjects
	if subjects == nil {
		subjects = []string{}
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin exam attempt: %w", err)
	}

	_, err = tx.ExamAttemptEvent.Create().
		SetSequence(first).
		SetSessionID(data.SessionID).
		SetSubjects(subjects).
		SetGradeLevel(data.GradeLevel).
		SetSystem(data.System).
		SetVariant(data.Variant).
		SetQuestionSource(data.QuestionSource).
		SetTotalQuestions(data.TotalQuestions).
		SetCorrectAnswers(data.CorrectAnswers).
		SetAnswered(data.Answered).
		SetPercent(data.Percent).
		SetFinishReason(data.FinishReason).
		SetFeedbackSource(data.FeedbackSource).
		SetBudgetSecs(data.BudgetSecs).
		SetElapsedSecs(data.ElapsedSecs).
		SetBySubject(bySubject).
		Save(ctx)
	if err != nil {
		return rollback(tx, fmt.Errorf("save exam attempt event: %w", err))
	}

	if len(data.Answers) > 0 {
		builders := make([]*ent.ExamAnswerEventCreate, len(data.Answers))
		for i, a := range data.Answers {
			builders[i] = tx.ExamAnswerEvent.Create().
				SetSequence(first + int64(i) + 1).
				SetSessionID(data.SessionID).
				SetQuestionID(a.QuestionID).
				SetSubject(a.Subject).
				SetDifficulty(a.Difficulty).
				SetCognitive(a.Cognitive).
				SetStem(a.Stem).
				SetChosenIndex(a.ChosenIndex).
				SetCorrectIndex(a.CorrectIndex).
				SetCorrect(a.Correct).
				SetMarkedForReview(a.MarkedForReview)
		}
		if _, err := tx.ExamAnswerEvent.CreateBulk(builders...).Save(ctx); err != nil {
			return rollback(tx, fmt.Errorf("save exam answer events: %w", err))
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit exam attempt: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryExamAttempts(ctx context.Context, opts QueryOpts) ([]ExamAttempt, error) {
	var preds []predicate.ExamAttemptEvent
	if opts.After > 0 {
		preds = append(preds, examattemptevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		preds = append(preds, examattemptevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		preds = append(preds, examattemptevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		preds = append(preds, examattemptevent.TimestampLTE(opts.To))
	}

	q := r.client.ExamAttemptEvent.Query().
		Where(preds...).
		Order(ent.Desc(examattemptevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query exam attempts: %w", err)
	}

	attempts := make([]ExamAttempt, len(rows))
	for i, row := range rows {
		var bySubject []SubjectTally
		for _, t := range row.BySubject {
			bySubject = append(bySubject, SubjectTally{Subject: t.Subject, Correct: t.Correct, Total: t.Total})
		}
		attempts[i] = ExamAttempt{
			ID:        row.ID,
			Sequence:  row.Sequence,
			Timestamp: row.Timestamp,
			ExamAttemptData: ExamAttemptData{
				SessionID:      row.SessionID,
				Subjects:       row.Subjects,
				GradeLevel:     row.GradeLevel,
				System:         row.System,
				Variant:        row.Variant,
				QuestionSource: row.QuestionSource,
				TotalQuestions: row.TotalQuestions,
				CorrectAnswers: row.CorrectAnswers,
				Answered:       row.Answered,
				Percent:        row.Percent,
				FinishReason:   row.FinishReason,
				FeedbackSource: row.FeedbackSource,
				BudgetSecs:     row.BudgetSecs,
				ElapsedSecs:    row.ElapsedSecs,
				BySubject:      bySubject,
			},
		}
	}
	return attempts, nil
}

func (r *eventRepo) ExamAnswers(ctx context.Context, sessionID string) ([]ExamAnswerData, error) {
	rows, err := r.client.ExamAnswerEvent.Query().
		Where(examanswerevent.SessionID(sessionID)).
		Order(ent.Asc(examanswerevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query exam answers: %w", err)
	}

	answers := make([]ExamAnswerData, len(rows))
	for i, row := range rows {
		answers[i] = ExamAnswerData{
			QuestionID:      row.QuestionID,
			Subject:         row.Subject,
			Difficulty:      row.Difficulty,
			Cognitive:       row.Cognitive,
			Stem:            row.Stem,
			ChosenIndex:     row.ChosenIndex,
			CorrectIndex:    row.CorrectIndex,
			Correct:         row.Correct,
			MarkedForReview: row.MarkedForReview,
		}
	}
	return answers, nil
}

func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return fmt.Errorf("%w (rollback: %v)", err, rerr)
	}
	return err
}
