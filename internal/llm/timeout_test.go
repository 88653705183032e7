package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

type slowProvider struct{}

func (slowProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (slowProvider) ModelID() string { return "slow" }

func TestWithTimeout_CancelsSlowCall(t *testing.T) {
	p := WithTimeout(slowProvider{}, 10*time.Millisecond)

	start := time.Now()
	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Generate() error = %v, want DeadlineExceeded", err)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("Generate took %s, want it bounded by the timeout", elapsed)
	}
	if p.ModelID() != "slow" {
		t.Fatalf("ModelID() = %q, want slow", p.ModelID())
	}
}

func TestWithTimeout_NonPositiveIsPassthrough(t *testing.T) {
	mock := NewMockProvider()
	if got := WithTimeout(mock, 0); got != Provider(mock) {
		t.Fatal("WithTimeout(p, 0) should return p unchanged")
	}
}
