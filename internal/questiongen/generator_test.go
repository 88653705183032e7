package questiongen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/edcenter/mocktest/internal/llm"
	"github.com/edcenter/mocktest/internal/question"
)

func physicsChemistry(count int) question.Criteria {
	return question.Criteria{
		Subjects:   []string{"Physics", "Chemistry"},
		Count:      count,
		GradeLevel: "10",
	}
}

func item(id, subject string, correct int) string {
	return fmt.Sprintf(`{"id":%q,"subject":%q,"difficulty":"basic","cognitive_level":"remember",
		"stem":"Question %s?","options":["a %s","b %s","c %s","d %s"],"correct_index":%d,"explanation":"Because."}`,
		id, subject, id, id, id, id, id, correct)
}

func batch(items ...string) json.RawMessage {
	return json.RawMessage(`{"questions":[` + strings.Join(items, ",") + `]}`)
}

func TestGenerate_ValidBatch(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: batch(item("p1", "Physics", 1), item("c1", "chemistry", 2)),
	})
	gen := New(mock, DefaultConfig(), nil)

	qs, err := gen.Generate(context.Background(), physicsChemistry(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("len = %d, want 2", len(qs))
	}
	if qs[0].ID != "p1" || qs[1].ID != "c1" {
		t.Errorf("ids = %q, %q; want p1, c1", qs[0].ID, qs[1].ID)
	}
	if qs[1].Subject != "Chemistry" {
		t.Errorf("subject = %q, want the requested spelling Chemistry", qs[1].Subject)
	}
	if qs[1].CorrectIndex != 2 || qs[1].Options[3] != "d c1" {
		t.Errorf("question = %+v", qs[1])
	}

	req := mock.Calls[0]
	if req.Schema != ExamSchema {
		t.Error("expected ExamSchema on the request")
	}
	if !strings.Contains(req.Messages[0].Content, "- Physics: 1") {
		t.Errorf("prompt missing subject split:\n%s", req.Messages[0].Content)
	}
}

func TestGenerate_TruncatesToCount(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: batch(item("a", "Physics", 0), item("b", "Physics", 1), item("c", "Physics", 2)),
	})
	gen := New(mock, DefaultConfig(), nil)

	qs, err := gen.Generate(context.Background(), physicsChemistry(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("len = %d, want 2", len(qs))
	}
}

func TestGenerate_RenumbersDuplicateIDs(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: batch(item("x", "Physics", 0), item("x", "Physics", 1), item("", "Physics", 2)),
	})
	gen := New(mock, DefaultConfig(), nil)

	qs, err := gen.Generate(context.Background(), physicsChemistry(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, q := range qs {
		want := fmt.Sprintf("q%d", i+1)
		if q.ID != want {
			t.Errorf("qs[%d].ID = %q, want %q", i, q.ID, want)
		}
	}
}

func TestGenerate_ReasksOnValidationFailure(t *testing.T) {
	bad := `{"id":"p1","subject":"Physics","difficulty":"basic","cognitive_level":"remember",
		"stem":"Unit of force?","options":["newton","joule","watt"],"correct_index":0,"explanation":""}`
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: batch(bad)},
		llm.MockResponse{Content: batch(item("p1", "Physics", 0))},
	)
	gen := New(mock, DefaultConfig(), nil)

	qs, err := gen.Generate(context.Background(), physicsChemistry(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("len = %d, want 1", len(qs))
	}
	if mock.CallCount() != 2 {
		t.Fatalf("calls = %d, want 2", mock.CallCount())
	}
	retry := mock.Calls[1].Messages[0].Content
	if !strings.Contains(retry, "want 4 options, got 3") {
		t.Errorf("re-ask prompt missing rejection reason:\n%s", retry)
	}
}

func TestGenerate_ValidationFailureAfterMaxAttempts(t *testing.T) {
	offSubject := item("h1", "History", 0)
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: batch(offSubject)},
		llm.MockResponse{Content: batch(offSubject)},
	)
	gen := New(mock, DefaultConfig(), nil)

	_, err := gen.Generate(context.Background(), physicsChemistry(1))
	var verr *question.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Validator != "subject" {
		t.Errorf("validator = %q, want subject", verr.Validator)
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want 2", mock.CallCount())
	}
}

func TestGenerate_TruncatedBatchDoublesBudget(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`{"questions":[`), StopReason: llm.StopMaxTokens},
		llm.MockResponse{Content: batch(item("p1", "Physics", 0))},
	)
	gen := New(mock, DefaultConfig(), nil)

	qs, err := gen.Generate(context.Background(), question.Criteria{Subjects: []string{"Physics"}, Count: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("len = %d, want 1", len(qs))
	}
	if len(mock.Calls) != 2 {
		t.Fatalf("calls = %d, want 2", len(mock.Calls))
	}
	if got, want := mock.Calls[1].MaxTokens, 2*mock.Calls[0].MaxTokens; got != want {
		t.Errorf("second MaxTokens = %d, want %d", got, want)
	}
}

func TestGenerate_EmptyBatch(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"questions":[]}`)})
	cfg := DefaultConfig()
	cfg.MaxAttempts = 1
	gen := New(mock, cfg, nil)

	_, err := gen.Generate(context.Background(), physicsChemistry(3))
	var verr *question.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestGenerate_ProviderErrorIsNotReasked(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("503")}})
	gen := New(mock, DefaultConfig(), nil)

	_, err := gen.Generate(context.Background(), physicsChemistry(2))
	var unavail *llm.ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1", mock.CallCount())
	}
}

func TestGenerate_RejectsBadCriteria(t *testing.T) {
	mock := llm.NewMockProvider()
	gen := New(mock, DefaultConfig(), nil)

	_, err := gen.Generate(context.Background(), question.Criteria{Count: 3})
	if !errors.Is(err, question.ErrNoSubjects) {
		t.Fatalf("err = %v, want ErrNoSubjects", err)
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider called %d times for invalid criteria", mock.CallCount())
	}
}

func TestGenerate_SetsPurpose(t *testing.T) {
	var seen string
	p := purposeProbe{fn: func(ctx context.Context) { seen = llm.PurposeFrom(ctx) }}
	gen := New(p, DefaultConfig(), nil)

	_, _ = gen.Generate(context.Background(), physicsChemistry(1))
	if seen != llm.PurposeQuestionGen {
		t.Errorf("purpose = %q, want %q", seen, llm.PurposeQuestionGen)
	}
}

type purposeProbe struct {
	fn func(context.Context)
}

func (p purposeProbe) Generate(ctx context.Context, _ llm.Request) (*llm.Response, error) {
	p.fn(ctx)
	return nil, errors.New("probe")
}

func (purposeProbe) ModelID() string { return "probe" }

func TestUnavailable(t *testing.T) {
	_, err := Unavailable{}.Generate(context.Background(), physicsChemistry(1))
	if !errors.Is(err, llm.ErrNotConfigured) {
		t.Fatalf("err = %v, want ErrNotConfigured", err)
	}
}
