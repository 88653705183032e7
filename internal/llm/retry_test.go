package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastRetry() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

var (
	questionBatch = json.RawMessage(`{"questions":[{"id":"q1","subject":"Physics"}]}`)
	unavailable   = MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("503")}}
	malformed     = MockResponse{Err: &ErrInvalidResponse{Content: json.RawMessage(`{"questions":`), Err: errors.New("unexpected EOF")}}
	batchReply    = MockResponse{Content: questionBatch}
)

func TestRetry(t *testing.T) {
	tests := []struct {
		name      string
		script    []MockResponse
		wantErr   any
		wantCalls int
	}{
		{
			name:      "first attempt succeeds",
			script:    []MockResponse{batchReply},
			wantCalls: 1,
		},
		{
			name:      "provider outage then batch",
			script:    []MockResponse{unavailable, unavailable, batchReply},
			wantCalls: 3,
		},
		{
			name:      "rate limit honours retry-after",
			script:    []MockResponse{{Err: &ErrRateLimit{RetryAfter: time.Millisecond, Err: errors.New("429")}}, batchReply},
			wantCalls: 2,
		},
		{
			name:      "outage outlasts attempts",
			script:    []MockResponse{unavailable, unavailable, unavailable, batchReply},
			wantErr:   new(*ErrProviderUnavailable),
			wantCalls: 3,
		},
		{
			name:      "truncated batch is not retried",
			script:    []MockResponse{{Err: &ErrMaxTokensExceeded{Content: json.RawMessage(`{"questions":[`)}}, batchReply},
			wantErr:   new(*ErrMaxTokensExceeded),
			wantCalls: 1,
		},
		{
			name:      "malformed output retried once",
			script:    []MockResponse{malformed, malformed, batchReply},
			wantErr:   new(*ErrInvalidResponse),
			wantCalls: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.script...)
			p := WithRetry(mock, fastRetry())

			resp, err := p.Generate(WithPurpose(context.Background(), PurposeQuestionGen), Request{})
			assert.Equal(t, tt.wantCalls, mock.CallCount())
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorAs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.JSONEq(t, string(questionBatch), string(resp.Content))
		})
	}
}

func TestRetry_StopsWhenCancelled(t *testing.T) {
	mock := NewMockProvider(unavailable, batchReply)
	p := WithRetry(mock, RetryConfig{MaxAttempts: 3, InitialWait: time.Hour, MaxWait: time.Hour, Multiplier: 2})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Generate(ctx, Request{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, mock.Remaining())
}

func TestRetry_ModelID(t *testing.T) {
	assert.Equal(t, "mock", WithRetry(NewMockProvider(), fastRetry()).ModelID())
}

func TestMock_TruncatedStructuredOutput(t *testing.T) {
	schema := &Schema{Name: "batch", Definition: map[string]any{"type": "object"}}
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"questions":[`), StopReason: StopMaxTokens},
		MockResponse{Content: json.RawMessage(`partial narrative`), StopReason: StopMaxTokens},
	)

	_, err := mock.Generate(context.Background(), Request{Schema: schema})
	var truncated *ErrMaxTokensExceeded
	require.ErrorAs(t, err, &truncated)
	assert.Equal(t, `{"questions":[`, string(truncated.Content))

	resp, err := mock.Generate(context.Background(), Request{})
	require.NoError(t, err)
	assert.Equal(t, StopMaxTokens, resp.StopReason)
}
