package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mocktest",
	Short: "Timed mock exams in the terminal",
	Long: `mocktest builds a timed multiple-choice exam for the subjects you pick,
scores it when you finish or the clock runs out, and explains the result.

Questions come from an LLM when one is configured and from the built-in
question bank otherwise.`,
	SilenceUsage: true,
	RunE:         runTake,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("db", "", "Path to SQLite database file (default $XDG_DATA_HOME/mocktest/mocktest.db)")
	pf.String("log-level", "info", "Log level (debug, info, warn, error)")
	pf.String("log-format", "text", "Log format (text, json)")

	pf.String("llm-provider", "", "LLM provider (anthropic, openai, gemini, openrouter, mock, none); empty auto-detects from API key variables")
	pf.String("anthropic-api-key", "", "Anthropic API key")
	pf.String("anthropic-model", "", "Anthropic model")
	pf.String("anthropic-base-url", "", "Anthropic API base URL")
	pf.String("openai-api-key", "", "OpenAI API key")
	pf.String("openai-model", "", "OpenAI model")
	pf.String("openai-base-url", "", "OpenAI-compatible API base URL")
	pf.String("gemini-api-key", "", "Gemini API key")
	pf.String("gemini-model", "", "Gemini model")
	pf.String("openrouter-api-key", "", "OpenRouter API key")
	pf.String("openrouter-model", "", "OpenRouter model")
	pf.Duration("llm-timeout", 0, "Bound on a single LLM call including retries (default 90s)")

	pf.String("bank", "", "Extra question bank YAML file merged into the built-in bank")
	pf.String("lang", "en", "Language of the offline feedback (en, hi)")
	pf.Duration("budget", 0, "Exam time budget (default 30m)")

	addExamFlags(rootCmd)

	rootCmd.AddCommand(takeCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}
