package exam

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edcenter/mocktest/internal/feedback"
	"github.com/edcenter/mocktest/internal/question"
	"github.com/edcenter/mocktest/internal/scoring"
)

const (
	waitFor = 2 * time.Second
	pollAt  = 5 * time.Millisecond
)

type generatorFunc func(context.Context, question.Criteria) ([]question.Question, error)

func (f generatorFunc) Generate(ctx context.Context, c question.Criteria) ([]question.Question, error) {
	return f(ctx, c)
}

type composerFunc func(context.Context, scoring.Breakdown, string) (feedback.Feedback, error)

func (f composerFunc) Compose(ctx context.Context, b scoring.Breakdown, grade string) (feedback.Feedback, error) {
	return f(ctx, b, grade)
}

func fixed(qs []question.Question) generatorFunc {
	return func(context.Context, question.Criteria) ([]question.Question, error) {
		return qs, nil
	}
}

type manualTicker struct {
	ch chan time.Time
}

func newManualTicker() *manualTicker {
	return &manualTicker{ch: make(chan time.Time)}
}

func (m *manualTicker) C() <-chan time.Time { return m.ch }
func (m *manualTicker) Stop()               {}

func (m *manualTicker) tick(t *testing.T, n int) {
	t.Helper()
	for range n {
		select {
		case m.ch <- time.Now():
		case <-time.After(waitFor):
			t.Fatal("ticker not read")
		}
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newController(t *testing.T, gen generatorFunc, composer feedback.Composer, opts ...Option) *Controller {
	t.Helper()
	opts = append([]Option{
		WithLogger(quietLogger()),
		WithRand(seeded()),
	}, opts...)
	c := New(gen, fakeBank{qs: makeQuestions("Physics", 6)}, composer, opts...)
	t.Cleanup(c.Close)
	return c
}

func waitStatus(t *testing.T, c *Controller, want Status) Snapshot {
	t.Helper()
	require.Eventually(t, func() bool {
		return c.Snapshot().Status == want
	}, waitFor, pollAt, "status never reached %s", want)
	return c.Snapshot()
}

func TestController_FullSession(t *testing.T) {
	ctx := context.Background()
	qs := makeQuestions("Physics", 4)
	finished := make(chan Snapshot, 1)
	composer := composerFunc(func(_ context.Context, b scoring.Breakdown, grade string) (feedback.Feedback, error) {
		return feedback.Feedback{Narrative: "Good work.", Tips: []string{"Revise optics."}}, nil
	})

	c := newController(t, fixed(qs), composer,
		WithBudget(time.Hour),
		WithOnFinish(func(s Snapshot) { finished <- s }))

	assert.Equal(t, StatusNotStarted, c.Snapshot().Status)
	require.NoError(t, c.Start(ctx, criteria(4, "Physics")))

	s := waitStatus(t, c, StatusInProgress)
	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 3600, s.RemainingSeconds)
	assert.NotEmpty(t, s.SessionID)

	require.NoError(t, c.Answer(ctx, qs[0].ID, qs[0].CorrectIndex))
	require.NoError(t, c.Answer(ctx, qs[1].ID, (qs[1].CorrectIndex+1)%question.OptionCount))
	require.NoError(t, c.ToggleReview(ctx, qs[2].ID))
	require.NoError(t, c.Advance(ctx))
	require.NoError(t, c.Back(ctx))
	require.NoError(t, c.Navigate(ctx, 3))

	s = c.Snapshot()
	assert.Equal(t, 2, s.Answered)
	assert.Equal(t, 1, s.Marked)
	assert.Equal(t, 3, s.Current)

	require.NoError(t, c.FinishNow(ctx))
	s = waitStatus(t, c, StatusFinished)
	require.NotNil(t, s.Result)
	assert.Equal(t, 1, s.Result.Breakdown.TotalCorrect)
	assert.Equal(t, 4, s.Result.Breakdown.TotalQuestions)
	assert.Equal(t, FeedbackComposer, s.Result.FeedbackSource)
	assert.Equal(t, "Good work.", s.Result.Narrative)

	select {
	case got := <-finished:
		assert.Equal(t, s.SessionID, got.SessionID)
		assert.Equal(t, []string{qs[2].ID}, got.MarkedIDs)
	case <-time.After(waitFor):
		t.Fatal("finish hook not called")
	}
}

func TestController_StartRejections(t *testing.T) {
	ctx := context.Background()
	block := make(chan struct{})
	t.Cleanup(func() { close(block) })
	gen := generatorFunc(func(ctx context.Context, _ question.Criteria) ([]question.Question, error) {
		<-block
		return nil, ctx.Err()
	})
	c := newController(t, gen, nil)

	assert.ErrorIs(t, c.Start(ctx, criteria(3)), ErrNoSubjects)
	assert.ErrorIs(t, c.Start(ctx, criteria(-1, "Physics")), ErrInvalidCount)
	assert.Equal(t, StatusNotStarted, c.Snapshot().Status)

	require.NoError(t, c.Start(ctx, criteria(3, "Physics")))
	assert.Equal(t, StatusGeneratingQuestions, c.Snapshot().Status)
	assert.NoError(t, c.Start(ctx, criteria(3, "History")), "start while generating is ignored")
	s := c.Snapshot()
	assert.Equal(t, StatusGeneratingQuestions, s.Status)
	assert.NoError(t, s.Err)
}

func TestController_TimerExpiry(t *testing.T) {
	ctx := context.Background()
	qs := makeQuestions("Physics", 10)
	tk := newManualTicker()
	c := newController(t, fixed(qs), nil,
		WithBudget(3*time.Second),
		WithTicker(func() Ticker { return tk }))

	require.NoError(t, c.Start(ctx, criteria(10, "Physics")))
	waitStatus(t, c, StatusInProgress)
	for _, q := range qs[:3] {
		require.NoError(t, c.Answer(ctx, q.ID, q.CorrectIndex))
	}

	tk.tick(t, 1)
	require.Eventually(t, func() bool {
		return c.Snapshot().RemainingSeconds == 2
	}, waitFor, pollAt)

	tk.tick(t, 2)
	s := waitStatus(t, c, StatusFinished)
	assert.Equal(t, 0, s.RemainingSeconds)
	assert.Equal(t, FinishTimer, s.Result.FinishReason)
	assert.Equal(t, 3, s.Result.Breakdown.TotalCorrect)
	assert.Equal(t, 10, s.Result.Breakdown.TotalQuestions)
	assert.Equal(t, FeedbackFallback, s.Result.FeedbackSource)
	assert.NotEmpty(t, s.Result.Narrative)
}

func TestController_FallbackAccepted(t *testing.T) {
	ctx := context.Background()
	var cause error
	gen := generatorFunc(func(context.Context, question.Criteria) ([]question.Question, error) {
		return nil, errors.New("provider unavailable")
	})
	c := newController(t, gen, nil,
		WithFallbackConfirm(func(_ context.Context, err error) bool {
			cause = err
			return true
		}))

	require.NoError(t, c.Start(ctx, criteria(10, "Physics")))
	s := waitStatus(t, c, StatusInProgress)
	assert.Equal(t, SourceFallback, s.Source)
	assert.Equal(t, 6, s.Total)
	assert.EqualError(t, cause, "provider unavailable")
}

func TestController_FallbackDeclined(t *testing.T) {
	ctx := context.Background()
	gen := generatorFunc(func(context.Context, question.Criteria) ([]question.Question, error) {
		return nil, errors.New("provider unavailable")
	})
	c := newController(t, gen, nil,
		WithFallbackConfirm(func(context.Context, error) bool { return false }))

	require.NoError(t, c.Start(ctx, criteria(3, "Physics")))
	require.Eventually(t, func() bool {
		return c.Snapshot().LastError != ""
	}, waitFor, pollAt)

	s := c.Snapshot()
	assert.Equal(t, StatusNotStarted, s.Status)
	assert.ErrorIs(t, s.Err, ErrNoQuestionsAvailable)
	assert.ErrorIs(t, s.Err, ErrFallbackDeclined)
}

func TestController_RestartDropsLateGeneration(t *testing.T) {
	ctx := context.Background()
	release := make(chan struct{})
	returned := make(chan struct{})
	gen := generatorFunc(func(context.Context, question.Criteria) ([]question.Question, error) {
		// Ignores cancellation so the late result is still delivered.
		<-release
		defer close(returned)
		return makeQuestions("Physics", 3), nil
	})
	c := newController(t, gen, nil)

	require.NoError(t, c.Start(ctx, criteria(3, "Physics")))
	require.NoError(t, c.Restart(ctx))
	assert.Equal(t, StatusNotStarted, c.Snapshot().Status)

	close(release)
	<-returned
	assert.Never(t, func() bool {
		return c.Snapshot().Status != StatusNotStarted
	}, 100*time.Millisecond, pollAt)
}

func TestController_RestartCancelsGeneration(t *testing.T) {
	ctx := context.Background()
	cancelled := make(chan struct{})
	gen := generatorFunc(func(ctx context.Context, _ question.Criteria) ([]question.Question, error) {
		<-ctx.Done()
		close(cancelled)
		return nil, ctx.Err()
	})
	c := newController(t, gen, nil)

	require.NoError(t, c.Start(ctx, criteria(3, "Physics")))
	require.NoError(t, c.Restart(ctx))

	select {
	case <-cancelled:
	case <-time.After(waitFor):
		t.Fatal("generation context was not cancelled")
	}
	assert.Equal(t, StatusNotStarted, c.Snapshot().Status)
}

func TestController_ComposerFailureUsesFallback(t *testing.T) {
	ctx := context.Background()
	composer := composerFunc(func(context.Context, scoring.Breakdown, string) (feedback.Feedback, error) {
		return feedback.Feedback{}, errors.New("rate limited")
	})
	c := newController(t, fixed(makeQuestions("Physics", 2)), composer)

	require.NoError(t, c.Start(ctx, criteria(2, "Physics")))
	waitStatus(t, c, StatusInProgress)
	require.NoError(t, c.FinishNow(ctx))

	s := waitStatus(t, c, StatusFinished)
	assert.Equal(t, FeedbackFallback, s.Result.FeedbackSource)
	assert.NotEmpty(t, s.Result.Tips)
}

func TestController_Observer(t *testing.T) {
	ctx := context.Background()
	seen := make(chan Status, 16)
	c := newController(t, fixed(makeQuestions("Physics", 2)), nil,
		WithObserver(func(s Snapshot) {
			select {
			case seen <- s.Status:
			default:
			}
		}))

	require.NoError(t, c.Start(ctx, criteria(2, "Physics")))

	var got []Status
	timeout := time.After(waitFor)
	for !slices.Contains(got, StatusInProgress) {
		select {
		case st := <-seen:
			got = append(got, st)
		case <-timeout:
			t.Fatalf("observer saw %v", got)
		}
	}
	assert.Equal(t, []Status{StatusNotStarted, StatusGeneratingQuestions, StatusInProgress}, got)
}

func TestController_Closed(t *testing.T) {
	c := New(fixed(nil), fakeBank{}, nil, WithLogger(quietLogger()))
	c.Close()
	c.Close()

	assert.ErrorIs(t, c.Start(context.Background(), criteria(1, "Physics")), ErrClosed)
	assert.ErrorIs(t, c.FinishNow(context.Background()), ErrClosed)
	assert.Equal(t, StatusNotStarted, c.Snapshot().Status)
}
