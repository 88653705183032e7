package questiongen

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/edcenter/mocktest/internal/llm"
	"github.com/edcenter/mocktest/internal/question"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
	logger   *slog.Logger
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config, logger *slog.Logger) *LLMGenerator {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &LLMGenerator{provider: provider, config: cfg, logger: logger}
}

// batchOutput is the raw LLM response before validation.
type batchOutput struct {
	Questions []itemOutput `json:"questions"`
}

type itemOutput struct {
	ID           string   `json:"id"`
	Subject      string   `json:"subject"`
	Difficulty   string   `json:"difficulty"`
	Cognitive    string   `json:"cognitive_level"`
	Stem         string   `json:"stem"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation"`
}

// Generate asks the model for a full batch. A batch that fails validation
// is re-requested with the failure reason, and a batch cut off by the
// token limit is re-requested with twice the budget, until MaxAttempts
// is reached.
func (g *LLMGenerator) Generate(ctx context.Context, c question.Criteria) ([]question.Question, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeQuestionGen)
	c = c.Normalize()
	if err := c.Validate(); err != nil {
		return nil, err
	}

	var rejected string
	maxTokens := g.config.maxTokensFor(c.Count)
	for attempt := 1; ; attempt++ {
		qs, err := g.generateOnce(ctx, c, rejected, maxTokens)
		if err == nil {
			return qs, nil
		}
		if attempt >= g.config.MaxAttempts {
			return nil, err
		}

		var verr *question.ValidationError
		var truncated *llm.ErrMaxTokensExceeded
		switch {
		case errors.As(err, &verr):
			g.logger.Warn("generated batch rejected, asking again",
				"attempt", attempt, "validator", verr.Validator, "question", verr.QuestionID, "reason", verr.Message)
			rejected = verr.Error()
		case errors.As(err, &truncated):
			maxTokens *= 2
			g.logger.Warn("generated batch truncated, asking again",
				"attempt", attempt, "max_tokens", maxTokens)
		default:
			return nil, err
		}
	}
}

func (g *LLMGenerator) generateOnce(ctx context.Context, c question.Criteria, rejected string, maxTokens int) ([]question.Question, error) {
	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(c, rejected)},
		},
		Schema:      ExamSchema,
		MaxTokens:   maxTokens,
		Temperature: temperatureFor(c.Variant, g.config.Temperature),
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw batchOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, &question.ValidationError{
			Validator: "decode",
			Message:   fmt.Sprintf("response is not a question batch: %v", err),
			Retryable: true,
		}
	}

	items := raw.Questions
	if len(items) > c.Count {
		items = items[:c.Count]
	}

	qs := make([]question.Question, 0, len(items))
	for i, item := range items {
		q, verr := toQuestion(item, c)
		if verr != nil {
			verr.QuestionID = cmp.Or(item.ID, "#"+strconv.Itoa(i+1))
			return nil, verr
		}
		qs = append(qs, q)
	}
	assignIDs(qs)

	if err := question.ValidateSet(qs, c, g.config.Validators...); err != nil {
		return nil, err
	}
	return qs, nil
}

func toQuestion(item itemOutput, c question.Criteria) (question.Question, *question.ValidationError) {
	if len(item.Options) != question.OptionCount {
		return question.Question{}, &question.ValidationError{
			Validator: "structural",
			Message:   fmt.Sprintf("want %d options, got %d", question.OptionCount, len(item.Options)),
			Retryable: true,
		}
	}
	difficulty, err := question.ParseDifficulty(item.Difficulty)
	if err != nil {
		return question.Question{}, &question.ValidationError{Validator: "structural", Message: err.Error(), Retryable: true}
	}
	cognitive, err := question.ParseCognitive(item.Cognitive)
	if err != nil {
		return question.Question{}, &question.ValidationError{Validator: "structural", Message: err.Error(), Retryable: true}
	}

	q := question.Question{
		ID:           item.ID,
		Subject:      c.CanonicalSubject(item.Subject),
		Difficulty:   difficulty,
		Cognitive:    cognitive,
		Stem:         item.Stem,
		CorrectIndex: item.CorrectIndex,
		Explanation:  item.Explanation,
	}
	copy(q.Options[:], item.Options)
	return q, nil
}

// assignIDs renumbers the batch q1..qN when any id is missing or repeated.
func assignIDs(qs []question.Question) {
	seen := make(map[string]bool, len(qs))
	ok := true
	for _, q := range qs {
		if q.ID == "" || seen[q.ID] {
			ok = false
			break
		}
		seen[q.ID] = true
	}
	if ok {
		return
	}
	for i := range qs {
		qs[i].ID = "q" + strconv.Itoa(i+1)
	}
}

