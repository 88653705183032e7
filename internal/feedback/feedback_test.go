package feedback

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edcenter/mocktest/internal/llm"
	"github.com/edcenter/mocktest/internal/question"
	"github.com/edcenter/mocktest/internal/scoring"
)

func breakdown(correct, total int) scoring.Breakdown {
	return scoring.Breakdown{
		TotalCorrect:   correct,
		TotalQuestions: total,
		BySubject:      map[string]scoring.Tally{"Physics": {Correct: correct, Total: total}},
		ByCognitive:    map[question.CognitiveLevel]scoring.Tally{question.CognitiveApply: {Correct: correct, Total: total}},
		ByDifficulty:   map[question.Difficulty]scoring.Tally{question.DifficultyBasic: {Correct: correct, Total: total}},
	}
}

func TestBandFor(t *testing.T) {
	tests := []struct {
		percent float64
		want    Band
	}{
		{100, BandPerfect},
		{99.9, BandStrong},
		{80, BandStrong},
		{79.9, BandFair},
		{60, BandFair},
		{59.9, BandWeak},
		{0, BandWeak},
	}
	for _, tt := range tests {
		if got := BandFor(tt.percent); got != tt.want {
			t.Errorf("BandFor(%v) = %q, want %q", tt.percent, got, tt.want)
		}
	}
}

func TestFallback_English(t *testing.T) {
	f := DefaultFallback()

	perfect := f.For(breakdown(5, 5))
	assert.Contains(t, perfect.Narrative, "Outstanding")
	assert.Contains(t, perfect.Narrative, "You answered 5 of 5 questions correctly.")
	require.Len(t, perfect.Tips, 1)
	assert.Contains(t, perfect.Tips[0], "challenge")

	weak := f.For(breakdown(1, 5))
	assert.Contains(t, weak.Narrative, "tough")
	require.Len(t, weak.Tips, 1)

	single := f.For(breakdown(1, 1))
	assert.Contains(t, single.Narrative, "1 of 1 question correctly.")
}

func TestFallback_Deterministic(t *testing.T) {
	f := DefaultFallback()
	b := breakdown(7, 10)
	assert.Equal(t, f.For(b), f.For(b))
}

func TestFallback_NamesWeakestSubject(t *testing.T) {
	b := scoring.Breakdown{
		TotalCorrect:   3,
		TotalQuestions: 4,
		BySubject: map[string]scoring.Tally{
			"Chemistry": {Correct: 1, Total: 2},
			"Physics":   {Correct: 2, Total: 2},
		},
	}
	fb := DefaultFallback().For(b)
	assert.Contains(t, fb.Narrative, "Start your revision with Chemistry.")
}

func TestFallback_Hindi(t *testing.T) {
	f, err := NewFallback("hi", nil)
	require.NoError(t, err)

	fb := f.For(breakdown(4, 5))
	assert.Contains(t, fb.Narrative, "बहुत अच्छा")
	assert.Contains(t, fb.Narrative, "5 में से 4")
	require.Len(t, fb.Tips, 1)
}

func TestFallback_UnknownLanguageUsesEnglish(t *testing.T) {
	f, err := NewFallback("fr", nil)
	require.NoError(t, err)

	fb := f.For(breakdown(3, 5))
	assert.Contains(t, fb.Narrative, "A fair attempt.")
}

func TestNewFallback_BadTag(t *testing.T) {
	_, err := NewFallback("not a tag!", nil)
	assert.Error(t, err)
}

func TestLanguages(t *testing.T) {
	var tags []string
	for _, tag := range Languages() {
		tags = append(tags, tag.String())
	}
	assert.ElementsMatch(t, []string{"en", "hi"}, tags)
}

func TestLLMComposer(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"narrative":"  Good grasp of mechanics. ","tips":["Practice numericals."," ","Review units.","a","b","c","d"]}`),
	})
	c := NewComposer(mock, DefaultComposerConfig())

	fb, err := c.Compose(context.Background(), breakdown(4, 5), "10")
	require.NoError(t, err)
	assert.Equal(t, "Good grasp of mechanics.", fb.Narrative)
	assert.Len(t, fb.Tips, maxTips)
	assert.Equal(t, "Practice numericals.", fb.Tips[0])

	req := mock.Calls[0]
	assert.Equal(t, FeedbackSchema, req.Schema)
	msg := req.Messages[0].Content
	assert.Contains(t, msg, "Grade: 10")
	assert.Contains(t, msg, "- Physics: strong")
	assert.NotContains(t, msg, "80")
}

func TestLLMComposer_EmptyNarrative(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"narrative":"   ","tips":["x"]}`)})
	c := NewComposer(mock, DefaultComposerConfig())

	_, err := c.Compose(context.Background(), breakdown(1, 2), "")
	assert.ErrorIs(t, err, ErrEmptyNarrative)
}

func TestLLMComposer_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("boom")})
	c := NewComposer(mock, DefaultComposerConfig())

	_, err := c.Compose(context.Background(), breakdown(1, 2), "")
	assert.Error(t, err)
}

func TestLLMComposer_Language(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"narrative":"ठीक","tips":[]}`)})
	cfg := DefaultComposerConfig()
	cfg.Language = "hi"
	c := NewComposer(mock, cfg)

	_, err := c.Compose(context.Background(), breakdown(1, 2), "")
	require.NoError(t, err)
	assert.True(t, strings.Contains(mock.Calls[0].Messages[0].Content, `"hi"`))
}

func TestUnavailable(t *testing.T) {
	_, err := Unavailable{}.Compose(context.Background(), breakdown(1, 1), "")
	assert.ErrorIs(t, err, llm.ErrNotConfigured)
}
