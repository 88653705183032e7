package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/edcenter/mocktest/internal/store"
)

type recordedEvents struct {
	events []store.LLMRequestEventData
	err    error
}

func (r *recordedEvents) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.events = append(r.events, data)
	return r.err
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWithLogging_RecordsSuccess(t *testing.T) {
	rec := &recordedEvents{}
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"questions":[]}`),
		Usage:   Usage{InputTokens: 120, OutputTokens: 30},
	})
	p := WithLogging(mock, "mock", rec, quietLogger())

	ctx := WithPurpose(context.Background(), PurposeQuestionGen)
	req := Request{
		System:   "You are an exam paper setter.",
		Messages: []Message{{Role: RoleUser, Content: "Physics, 5 questions"}},
	}
	if _, err := p.Generate(ctx, req); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if len(rec.events) != 1 {
		t.Fatalf("recorded %d events, want 1", len(rec.events))
	}
	ev := rec.events[0]
	if ev.Purpose != PurposeQuestionGen {
		t.Errorf("Purpose = %q, want %q", ev.Purpose, PurposeQuestionGen)
	}
	if !ev.Success {
		t.Error("Success = false, want true")
	}
	if ev.InputTokens != 120 || ev.OutputTokens != 30 {
		t.Errorf("tokens = %d/%d, want 120/30", ev.InputTokens, ev.OutputTokens)
	}
	if !strings.Contains(ev.RequestBody, "[system]") || !strings.Contains(ev.RequestBody, "Physics, 5 questions") {
		t.Errorf("RequestBody = %q, missing system or user message", ev.RequestBody)
	}
	if ev.ResponseBody != `{"questions":[]}` {
		t.Errorf("ResponseBody = %q", ev.ResponseBody)
	}
}

func TestWithLogging_RecordsFailure(t *testing.T) {
	rec := &recordedEvents{}
	mock := NewMockProvider(MockResponse{Err: errors.New("boom")})
	p := WithLogging(mock, "mock", rec, quietLogger())

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("Generate() error = nil, want boom")
	}
	if len(rec.events) != 1 {
		t.Fatalf("recorded %d events, want 1", len(rec.events))
	}
	if rec.events[0].Success || rec.events[0].ErrorMessage != "boom" {
		t.Errorf("event = %+v, want failed with boom", rec.events[0])
	}
}

func TestWithLogging_RecorderErrorDoesNotFailRequest(t *testing.T) {
	rec := &recordedEvents{err: errors.New("disk full")}
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, "mock", rec, quietLogger())

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("Generate() error = %v, want nil", err)
	}
}

func TestWithLogging_NilRecorder(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, "mock", nil, nil)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
}
