package feedback

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/edcenter/mocktest/internal/llm"
	"github.com/edcenter/mocktest/internal/scoring"
)

// maxTips caps how many tips are kept from a model response.
const maxTips = 5

// FeedbackSchema defines the JSON schema for composed feedback.
var FeedbackSchema = &llm.Schema{
	Name:        "exam-feedback",
	Description: "Encouraging narrative and study tips for a finished mock test",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"narrative": map[string]any{
				"type":        "string",
				"description": "Two to four sentences addressed to the student",
			},
			"tips": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "One to five concrete, actionable study tips",
			},
		},
		"required":             []any{"narrative", "tips"},
		"additionalProperties": false,
	},
}

const composerPrompt = `You are a supportive school teacher reviewing a student's mock test results.

Rules:
- Write a short narrative (2-4 sentences) addressed directly to the student.
- Do not quote scores, counts or percentages. The student already sees them.
- Name the strongest and weakest areas from the data and say what to do about them.
- Give between 1 and 5 concrete study tips, each a single sentence.
- Keep the tone encouraging and age-appropriate.`

// ComposerConfig controls the LLMComposer.
type ComposerConfig struct {
	MaxTokens   int
	Temperature float64

	// Language is the BCP 47 tag the feedback is written in.
	Language string
}

// DefaultComposerConfig returns recommended defaults.
func DefaultComposerConfig() ComposerConfig {
	return ComposerConfig{
		MaxTokens:   800,
		Temperature: 0.6,
		Language:    "en",
	}
}

// LLMComposer implements Composer using the LLM provider.
type LLMComposer struct {
	provider llm.Provider
	config   ComposerConfig
}

// NewComposer creates an LLMComposer.
func NewComposer(provider llm.Provider, cfg ComposerConfig) *LLMComposer {
	return &LLMComposer{provider: provider, config: cfg}
}

type composerOutput struct {
	Narrative string   `json:"narrative"`
	Tips      []string `json:"tips"`
}

func (c *LLMComposer) Compose(ctx context.Context, b scoring.Breakdown, gradeLevel string) (Feedback, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeFeedback)

	req := llm.Request{
		System: composerPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildComposerMessage(b, gradeLevel, c.config.Language)},
		},
		Schema:      FeedbackSchema,
		MaxTokens:   c.config.MaxTokens,
		Temperature: c.config.Temperature,
	}

	resp, err := c.provider.Generate(ctx, req)
	if err != nil {
		return Feedback{}, fmt.Errorf("LLM feedback failed: %w", err)
	}

	var raw composerOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return Feedback{}, fmt.Errorf("failed to parse feedback response: %w", err)
	}

	fb := Feedback{Narrative: strings.TrimSpace(raw.Narrative)}
	if fb.Narrative == "" {
		return Feedback{}, ErrEmptyNarrative
	}
	for _, tip := range raw.Tips {
		if tip = strings.TrimSpace(tip); tip != "" && len(fb.Tips) < maxTips {
			fb.Tips = append(fb.Tips, tip)
		}
	}
	return fb, nil
}

// buildComposerMessage renders the breakdown as relative performance per
// dimension so the model can rank areas without copying numbers.
func buildComposerMessage(b scoring.Breakdown, gradeLevel, lang string) string {
	var sb strings.Builder

	if gradeLevel != "" {
		fmt.Fprintf(&sb, "Grade: %s\n", gradeLevel)
	}
	fmt.Fprintf(&sb, "Overall: %s\n", level(b.Percent()))

	sb.WriteString("\nBy subject:\n")
	for _, s := range b.Subjects() {
		fmt.Fprintf(&sb, "- %s: %s\n", s, level(b.BySubject[s].Percent()))
	}
	sb.WriteString("\nBy cognitive level:\n")
	for _, l := range b.CognitiveLevels() {
		fmt.Fprintf(&sb, "- %s: %s\n", l, level(b.ByCognitive[l].Percent()))
	}
	sb.WriteString("\nBy difficulty:\n")
	for _, d := range b.Difficulties() {
		fmt.Fprintf(&sb, "- %s: %s\n", d, level(b.ByDifficulty[d].Percent()))
	}

	if lang != "" && lang != "en" {
		fmt.Fprintf(&sb, "\nWrite the narrative and tips in the language with BCP 47 tag %q.\n", lang)
	}
	return sb.String()
}

func level(percent float64) string {
	switch BandFor(percent) {
	case BandPerfect:
		return "excellent"
	case BandStrong:
		return "strong"
	case BandFair:
		return "mixed"
	default:
		return "weak"
	}
}
