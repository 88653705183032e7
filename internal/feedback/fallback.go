package feedback

import (
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/edcenter/mocktest/internal/scoring"
)

//go:embed locales/*.json
var localeFS embed.FS

// Band is the coarse performance level picked by percentage thresholds.
type Band string

const (
	BandPerfect Band = "perfect" // 100%
	BandStrong  Band = "strong"  // at least 80%
	BandFair    Band = "fair"    // at least 60%
	BandWeak    Band = "weak"
)

// BandFor returns the band for an overall percentage.
func BandFor(percent float64) Band {
	switch {
	case percent >= 100:
		return BandPerfect
	case percent >= 80:
		return BandStrong
	case percent >= 60:
		return BandFair
	default:
		return BandWeak
	}
}

var bandMessages = map[Band]struct{ narrative, tip string }{
	BandPerfect: {"NarrativePerfect", "TipPerfect"},
	BandStrong:  {"NarrativeStrong", "TipStrong"},
	BandFair:    {"NarrativeFair", "TipFair"},
	BandWeak:    {"NarrativeWeak", "TipWeak"},
}

// Fallback builds deterministic feedback from templates in one language.
type Fallback struct {
	localizer *i18n.Localizer
	logger    *slog.Logger
}

var (
	bundleOnce sync.Once
	bundle     *i18n.Bundle
	bundleErr  error
)

func loadBundle() (*i18n.Bundle, error) {
	bundleOnce.Do(func() {
		b := i18n.NewBundle(language.English)
		b.RegisterUnmarshalFunc("json", json.Unmarshal)

		entries, err := localeFS.ReadDir("locales")
		if err != nil {
			bundleErr = fmt.Errorf("read locales dir: %w", err)
			return
		}
		for _, e := range entries {
			data, err := localeFS.ReadFile("locales/" + e.Name())
			if err != nil {
				bundleErr = fmt.Errorf("read locale file %s: %w", e.Name(), err)
				return
			}
			if _, err := b.ParseMessageFileBytes(data, e.Name()); err != nil {
				bundleErr = fmt.Errorf("parse locale file %s: %w", e.Name(), err)
				return
			}
		}
		bundle = b
	})
	return bundle, bundleErr
}

// Languages returns the tags with an embedded translation.
func Languages() []language.Tag {
	b, err := loadBundle()
	if err != nil {
		return nil
	}
	return b.LanguageTags()
}

// NewFallback returns a Fallback for lang, e.g. "en" or "hi". Messages
// missing in lang fall back to English.
func NewFallback(lang string, logger *slog.Logger) (*Fallback, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("parse language %q: %w", lang, err)
	}
	b, err := loadBundle()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Fallback{
		localizer: i18n.NewLocalizer(b, tag.String(), "en"),
		logger:    logger,
	}, nil
}

// DefaultFallback returns the English Fallback. It panics if the embedded
// locale files are broken.
func DefaultFallback() *Fallback {
	f, err := NewFallback("en", nil)
	if err != nil {
		panic(err)
	}
	return f
}

// For returns the templated feedback for b: a narrative chosen by the
// overall percentage and exactly one tip.
func (f *Fallback) For(b scoring.Breakdown) Feedback {
	msgs := bandMessages[BandFor(b.Percent())]

	narrative := f.t(msgs.narrative, nil)
	narrative += " " + f.tp("ScoreLine", b.TotalQuestions, map[string]any{
		"Correct": b.TotalCorrect,
		"Count":   b.TotalQuestions,
	})

	if weakest := b.Weakest(); weakest != "" && len(b.BySubject) > 1 && b.TotalCorrect < b.TotalQuestions {
		narrative += " " + f.t("WeakestSubject", map[string]any{"Subject": weakest})
	}

	return Feedback{
		Narrative: narrative,
		Tips:      []string{f.t(msgs.tip, nil)},
	}
}

func (f *Fallback) t(id string, data map[string]any) string {
	return f.localize(&i18n.LocalizeConfig{MessageID: id, TemplateData: data})
}

func (f *Fallback) tp(id string, count int, data map[string]any) string {
	return f.localize(&i18n.LocalizeConfig{MessageID: id, PluralCount: count, TemplateData: data})
}

func (f *Fallback) localize(cfg *i18n.LocalizeConfig) string {
	s, err := f.localizer.Localize(cfg)
	if err != nil {
		f.logger.Warn("missing translation", "id", cfg.MessageID, "error", err)
		return cfg.MessageID
	}
	return s
}
