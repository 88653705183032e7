package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edcenter/mocktest/internal/exam"
	"github.com/edcenter/mocktest/internal/question"
)

type staticGenerator []question.Question

func (g staticGenerator) Generate(context.Context, question.Criteria) ([]question.Question, error) {
	return g, nil
}

type emptyBank struct{}

func (emptyBank) Lookup([]string) []question.Question { return nil }

func questions(n int) []question.Question {
	qs := make([]question.Question, n)
	for i := range qs {
		qs[i] = question.Question{
			ID:           fmt.Sprintf("q%d", i+1),
			Subject:      "Physics",
			Difficulty:   question.DifficultyBasic,
			Cognitive:    question.CognitiveApply,
			Stem:         "What is the SI unit of force?",
			Options:      [question.OptionCount]string{"newton", "joule", "watt", "pascal"},
			CorrectIndex: 0,
		}
	}
	return qs
}

func newTestServer(t *testing.T, opts ...Option) (*Server, *httptest.Server) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := New(func() *exam.Controller {
		return exam.New(staticGenerator(questions(3)), emptyBank{}, nil,
			exam.WithLogger(logger), exam.WithBudget(time.Hour))
	}, logger, opts...)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(func() {
		ts.Close()
		srv.Close()
	})
	return srv, ts
}

type session struct {
	ID               string `json:"id"`
	Status           string `json:"status"`
	Total            int    `json:"total"`
	Answered         int    `json:"answered"`
	Current          int    `json:"current"`
	RemainingSeconds int    `json:"remaining_seconds"`
	Question         *struct {
		ID      string    `json:"id"`
		Options [4]string `json:"options"`
		Chosen  int       `json:"chosen"`
	} `json:"question"`
	Result *struct {
		Breakdown struct {
			TotalCorrect   int `json:"total_correct"`
			TotalQuestions int `json:"total_questions"`
		} `json:"breakdown"`
		Narrative    string `json:"narrative"`
		FinishReason string `json:"finish_reason"`
	} `json:"result"`
	Error string `json:"error"`
}

func do(t *testing.T, method, url, body string) (int, session) {
	t.Helper()
	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var s session
	if resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&s))
	}
	return resp.StatusCode, s
}

func TestSessionLifecycle(t *testing.T) {
	srv, ts := newTestServer(t)

	code, s := do(t, http.MethodPost, ts.URL+"/sessions", "")
	require.Equal(t, http.StatusCreated, code)
	require.NotEmpty(t, s.ID)
	assert.Equal(t, "not_started", s.Status)
	base := ts.URL + "/sessions/" + s.ID

	code, s = do(t, http.MethodPost, base+"/start", `{"subjects":["Physics"],"count":3,"grade_level":"8"}`)
	require.Equal(t, http.StatusOK, code, s.Error)

	require.Eventually(t, func() bool {
		_, s = do(t, http.MethodGet, base, "")
		return s.Status == "in_progress"
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 3600, s.RemainingSeconds)
	require.NotNil(t, s.Question)
	assert.Equal(t, -1, s.Question.Chosen)

	code, s = do(t, http.MethodPost, base+"/answer", `{"question_id":"q1","index":0}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 1, s.Answered)

	code, _ = do(t, http.MethodPost, base+"/review", `{"question_id":"q2"}`)
	assert.Equal(t, http.StatusOK, code)

	code, s = do(t, http.MethodPost, base+"/navigate", `{"index":2}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 2, s.Current)

	_, s = do(t, http.MethodPost, base+"/back", "")
	assert.Equal(t, 1, s.Current)
	_, s = do(t, http.MethodPost, base+"/advance", "")
	assert.Equal(t, 2, s.Current)

	code, _ = do(t, http.MethodPost, base+"/finish", "")
	require.Equal(t, http.StatusOK, code)
	require.Eventually(t, func() bool {
		_, s = do(t, http.MethodGet, base, "")
		return s.Status == "finished"
	}, 2*time.Second, 10*time.Millisecond)
	require.NotNil(t, s.Result)
	assert.Equal(t, 1, s.Result.Breakdown.TotalCorrect)
	assert.Equal(t, 3, s.Result.Breakdown.TotalQuestions)
	assert.Equal(t, "manual", s.Result.FinishReason)
	assert.NotEmpty(t, s.Result.Narrative)

	code, s = do(t, http.MethodPost, base+"/restart", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "not_started", s.Status)

	code, _ = do(t, http.MethodDelete, base, "")
	assert.Equal(t, http.StatusNoContent, code)
	assert.Zero(t, srv.Len())

	code, _ = do(t, http.MethodGet, base, "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestStartErrors(t *testing.T) {
	_, ts := newTestServer(t)
	_, s := do(t, http.MethodPost, ts.URL+"/sessions", "")
	base := ts.URL + "/sessions/" + s.ID

	tests := []struct {
		name string
		body string
		want int
	}{
		{"no subjects", `{"subjects":[],"count":3}`, http.StatusBadRequest},
		{"bad count", `{"subjects":["Physics"],"count":0}`, http.StatusBadRequest},
		{"bad variant", `{"subjects":["Physics"],"count":3,"variant":"hard"}`, http.StatusBadRequest},
		{"unknown field", `{"subject":"Physics"}`, http.StatusBadRequest},
		{"malformed", `{`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, s := do(t, http.MethodPost, base+"/start", tt.body)
			assert.Equal(t, tt.want, code)
			assert.NotEmpty(t, s.Error)
		})
	}

	code, first := do(t, http.MethodPost, base+"/start", `{"subjects":["Physics"],"count":3}`)
	require.Equal(t, http.StatusOK, code)

	// A second start is ignored: the running exam is returned untouched.
	code, s = do(t, http.MethodPost, base+"/start", `{"subjects":["History"],"count":5}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Empty(t, s.Error)
	assert.Equal(t, first.Status, s.Status)
	assert.NotEqual(t, "not_started", s.Status)
}

func TestCommandValidation(t *testing.T) {
	_, ts := newTestServer(t)
	_, s := do(t, http.MethodPost, ts.URL+"/sessions", "")
	base := ts.URL + "/sessions/" + s.ID

	code, _ := do(t, http.MethodPost, base+"/answer", `{"question_id":"q1"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	code, _ = do(t, http.MethodPost, base+"/review", `{}`)
	assert.Equal(t, http.StatusBadRequest, code)
	code, _ = do(t, http.MethodPost, base+"/navigate", `{}`)
	assert.Equal(t, http.StatusBadRequest, code)

	// Commands outside an exam are accepted and change nothing.
	code, s = do(t, http.MethodPost, base+"/advance", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "not_started", s.Status)
}

func TestUnknownSession(t *testing.T) {
	_, ts := newTestServer(t)
	for _, path := range []string{"/sessions/nope/finish", "/sessions/nope/restart"} {
		code, s := do(t, http.MethodPost, ts.URL+path, "")
		assert.Equal(t, http.StatusNotFound, code)
		assert.Contains(t, s.Error, "not found")
	}
	code, _ := do(t, http.MethodDelete, ts.URL+"/sessions/nope", "")
	assert.Equal(t, http.StatusNotFound, code)
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestIdleSessionsExpire(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	srv, ts := newTestServer(t, WithIdleTimeout(2*time.Hour), withClock(clock.Now))

	_, active := do(t, http.MethodPost, ts.URL+"/sessions", "")
	_, abandoned := do(t, http.MethodPost, ts.URL+"/sessions", "")
	require.Equal(t, 2, srv.Len())

	clock.Advance(90 * time.Minute)
	code, _ := do(t, http.MethodGet, ts.URL+"/sessions/"+active.ID, "")
	require.Equal(t, http.StatusOK, code)

	clock.Advance(45 * time.Minute)
	assert.Equal(t, 1, srv.Reap())
	assert.Equal(t, 1, srv.Len())

	code, _ = do(t, http.MethodGet, ts.URL+"/sessions/"+abandoned.ID, "")
	assert.Equal(t, http.StatusNotFound, code)
	code, _ = do(t, http.MethodGet, ts.URL+"/sessions/"+active.ID, "")
	assert.Equal(t, http.StatusOK, code)
}

func TestIdleTimeoutDisabled(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	srv, ts := newTestServer(t, WithIdleTimeout(0), withClock(clock.Now))

	do(t, http.MethodPost, ts.URL+"/sessions", "")
	clock.Advance(48 * time.Hour)
	assert.Zero(t, srv.Reap())
	assert.Equal(t, 1, srv.Len())

	done := make(chan struct{})
	go func() {
		srv.Run(context.Background())
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run should return at once when reaping is disabled")
	}
}

func TestMaxSessions(t *testing.T) {
	clock := &fakeClock{now: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)}
	srv, ts := newTestServer(t, WithMaxSessions(1), WithIdleTimeout(time.Hour), withClock(clock.Now))

	code, first := do(t, http.MethodPost, ts.URL+"/sessions", "")
	require.Equal(t, http.StatusCreated, code)

	code, s := do(t, http.MethodPost, ts.URL+"/sessions", "")
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Contains(t, s.Error, "too many")

	// A full registry makes room by dropping idle sessions first.
	clock.Advance(2 * time.Hour)
	code, second := do(t, http.MethodPost, ts.URL+"/sessions", "")
	require.Equal(t, http.StatusCreated, code)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 1, srv.Len())

	code, _ = do(t, http.MethodGet, ts.URL+"/sessions/"+first.ID, "")
	assert.Equal(t, http.StatusNotFound, code)
}
