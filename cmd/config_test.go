package cmd

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edcenter/mocktest/internal/llm"
	"github.com/edcenter/mocktest/internal/question"
)

func TestCriteriaFrom(t *testing.T) {
	v := viper.New()
	v.Set("subjects", []string{" physics", "Chemistry", "PHYSICS"})
	v.Set("count", 20)
	v.Set("grade", "10")
	v.Set("system", "ICSE")
	v.Set("variant", "challenge")

	c, err := criteriaFrom(v)
	require.NoError(t, err)
	assert.Equal(t, []string{"Chemistry", "physics"}, c.Subjects)
	assert.Equal(t, 20, c.Count)
	assert.Equal(t, question.SystemICSE, c.System)
	assert.Equal(t, question.VariantChallenge, c.Variant)
}

func TestCriteriaFrom_NoSubjectsIsAllowed(t *testing.T) {
	v := viper.New()
	v.Set("count", 0)

	c, err := criteriaFrom(v)
	require.NoError(t, err)
	assert.Empty(t, c.Subjects)
	assert.Equal(t, question.SystemCBSE, c.System)
}

func TestCriteriaFrom_Invalid(t *testing.T) {
	v := viper.New()
	v.Set("subjects", []string{"Physics"})
	v.Set("count", 0)
	_, err := criteriaFrom(v)
	assert.ErrorIs(t, err, question.ErrInvalidCount)

	v.Set("count", 5)
	v.Set("variant", "speedrun")
	_, err = criteriaFrom(v)
	assert.Error(t, err)
}

func TestLLMConfig(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("OPENROUTER_API_KEY", "")

	v := viper.New()
	_, ok := llmConfig(v)
	assert.False(t, ok, "no provider and no key")

	v.Set("llm-provider", "OpenAI")
	v.Set("openai-api-key", "sk-test")
	v.Set("openai-model", "gpt-4o")
	v.Set("llm-timeout", 2*time.Minute)

	cfg, ok := llmConfig(v)
	require.True(t, ok)
	assert.Equal(t, llm.ProviderOpenAI, cfg.Provider)
	assert.Equal(t, "sk-test", cfg.OpenAI.APIKey)
	assert.Equal(t, "gpt-4o", cfg.OpenAI.Model)
	assert.Equal(t, 2*time.Minute, cfg.Timeout)
	assert.Equal(t, "claude-haiku", cfg.Anthropic.Model, "unset keys keep defaults")
}

func TestLLMConfig_DiscoversKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "g-key")

	cfg, ok := llmConfig(viper.New())
	require.True(t, ok)
	assert.Equal(t, llm.ProviderGemini, cfg.Provider)
	assert.Equal(t, "g-key", cfg.Gemini.APIKey)
}

func TestLoadBank(t *testing.T) {
	bank, err := loadBank(viper.New())
	require.NoError(t, err)
	assert.NotEmpty(t, bank.Subjects())

	v := viper.New()
	v.Set("bank", "testdata/does-not-exist.yaml")
	_, err = loadBank(v)
	assert.Error(t, err)
}
