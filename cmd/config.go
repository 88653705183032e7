package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/edcenter/mocktest/internal/feedback"
	"github.com/edcenter/mocktest/internal/llm"
	"github.com/edcenter/mocktest/internal/question"
	"github.com/edcenter/mocktest/internal/questionbank"
	"github.com/edcenter/mocktest/internal/questiongen"
	"github.com/edcenter/mocktest/internal/store"
)

// viperForCmd binds a command's flags, MOCKTEST_* environment variables
// and an optional mocktest.yaml to a fresh viper instance.
func viperForCmd(cmd *cobra.Command) *viper.Viper {
	v := viper.New()
	_ = v.BindPFlags(cmd.Flags())

	v.SetEnvPrefix("MOCKTEST")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("mocktest")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/mocktest")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			slog.Warn("error reading config file", "error", err)
		}
	}

	return v
}

// setupLogging installs the default slog handler. It writes to w, which
// is stderr for plain commands and a log file for the TUI.
func setupLogging(v *viper.Viper, w io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(v.GetString("log-level")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	switch strings.ToLower(v.GetString("log-format")) {
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		h = slog.NewTextHandler(w, opts)
	}
	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger
}

// openLogFile opens the TUI log file, defaulting to
// $XDG_STATE_HOME/mocktest/mocktest.log.
func openLogFile(v *viper.Viper) (*os.File, error) {
	path := v.GetString("log-file")
	if path == "" {
		stateHome := os.Getenv("XDG_STATE_HOME")
		if stateHome == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("resolve home dir: %w", err)
			}
			stateHome = filepath.Join(home, ".local", "state")
		}
		path = filepath.Join(stateHome, "mocktest", "mocktest.log")
	}
	if err := store.EnsureDir(path); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

// openStore opens the database named by --db, MOCKTEST_DB or the
// default XDG path.
func openStore(v *viper.Viper) (*store.Store, error) {
	path := v.GetString("db")
	if path != "" {
		if err := store.EnsureDir(path); err != nil {
			return nil, err
		}
	} else {
		p, err := store.DefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
		path = p
	}
	s, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// llmConfig builds the provider configuration from viper keys and falls
// back to the vendor API key variables when no provider is named.
func llmConfig(v *viper.Viper) (llm.Config, bool) {
	cfg := llm.DefaultConfig()
	cfg.Provider = strings.ToLower(v.GetString("llm-provider"))

	setIf := func(dst *string, key string) {
		if s := v.GetString(key); s != "" {
			*dst = s
		}
	}
	setIf(&cfg.Anthropic.APIKey, "anthropic-api-key")
	setIf(&cfg.Anthropic.Model, "anthropic-model")
	setIf(&cfg.Anthropic.BaseURL, "anthropic-base-url")
	setIf(&cfg.OpenAI.APIKey, "openai-api-key")
	setIf(&cfg.OpenAI.Model, "openai-model")
	setIf(&cfg.OpenAI.BaseURL, "openai-base-url")
	setIf(&cfg.Gemini.APIKey, "gemini-api-key")
	setIf(&cfg.Gemini.Model, "gemini-model")
	setIf(&cfg.OpenRouter.APIKey, "openrouter-api-key")
	setIf(&cfg.OpenRouter.Model, "openrouter-model")
	if d := v.GetDuration("llm-timeout"); d > 0 {
		cfg.Timeout = d
	}

	return cfg.Discover()
}

// loadBank returns the built-in bank, merged with --bank when given.
func loadBank(v *viper.Viper) (*questionbank.Bank, error) {
	bank := questionbank.Default()
	path := v.GetString("bank")
	if path == "" {
		return bank, nil
	}
	extra, err := questionbank.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load question bank %s: %w", path, err)
	}
	return bank.Merge(extra)
}

// services are the exam dependencies shared by every host.
type services struct {
	generator questiongen.Generator
	composer  feedback.Composer
	fallback  *feedback.Fallback
	bank      *questionbank.Bank
}

// buildServices wires the generator and composer to an LLM provider when
// one is configured. Without a provider exams run entirely offline.
func buildServices(ctx context.Context, v *viper.Viper, events llm.EventRecorder, logger *slog.Logger) (services, error) {
	bank, err := loadBank(v)
	if err != nil {
		return services{}, err
	}
	lang := v.GetString("lang")
	if lang == "" {
		lang = "en"
	}
	fb, err := feedback.NewFallback(lang, logger)
	if err != nil {
		return services{}, err
	}

	svc := services{
		generator: questiongen.Unavailable{},
		composer:  feedback.Unavailable{},
		fallback:  fb,
		bank:      bank,
	}

	cfg, ok := llmConfig(v)
	if !ok {
		logger.Info("no LLM provider configured, using the question bank")
		return svc, nil
	}
	provider, err := llm.NewProvider(ctx, cfg, events, logger)
	if errors.Is(err, llm.ErrNotConfigured) {
		logger.Info("LLM disabled, using the question bank")
		return svc, nil
	}
	if err != nil {
		return services{}, fmt.Errorf("LLM provider: %w", err)
	}

	composerCfg := feedback.DefaultComposerConfig()
	composerCfg.Language = lang
	svc.generator = questiongen.New(provider, questiongen.DefaultConfig(), logger)
	svc.composer = feedback.NewComposer(provider, composerCfg)
	logger.Info("LLM provider ready", "provider", cfg.Provider)
	return svc, nil
}

func addExamFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringSlice("subjects", nil, "Subjects to be examined on; skips the setup screen")
	f.Int("count", 10, "Number of questions")
	f.String("grade", "", "Grade level, e.g. 10")
	f.String("system", "cbse", "Curriculum system (cbse, icse, state, international)")
	f.String("variant", "standard", "Exam variant (standard, challenge, revision)")
	f.String("log-file", "", "Log file (default $XDG_STATE_HOME/mocktest/mocktest.log)")
}

// criteriaFrom reads exam criteria from viper. Subjects may be empty,
// in which case the TUI asks for them.
func criteriaFrom(v *viper.Viper) (question.Criteria, error) {
	sys, err := question.ParseSystem(v.GetString("system"))
	if err != nil {
		return question.Criteria{}, err
	}
	variant, err := question.ParseVariant(v.GetString("variant"))
	if err != nil {
		return question.Criteria{}, err
	}
	c := question.Criteria{
		Subjects:   v.GetStringSlice("subjects"),
		Count:      v.GetInt("count"),
		GradeLevel: v.GetString("grade"),
		System:     sys,
		Variant:    variant,
	}.Normalize()
	if len(c.Subjects) > 0 {
		if err := c.Validate(); err != nil {
			return question.Criteria{}, err
		}
	}
	return c, nil
}
