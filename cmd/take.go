package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edcenter/mocktest/internal/app"
	"github.com/edcenter/mocktest/internal/history"
)

var takeCmd = &cobra.Command{
	Use:   "take",
	Short: "Take a timed exam in the terminal",
	Example: `  mocktest take
  mocktest take --subjects physics,chemistry --count 20 --grade 10 --budget 45m`,
	RunE: runTake,
}

func init() {
	addExamFlags(takeCmd)
}

// runTake opens the store, builds the exam services and launches the TUI.
// Logs go to a file since the terminal belongs to the UI.
func runTake(cmd *cobra.Command, _ []string) error {
	v := viperForCmd(cmd)

	logFile, err := openLogFile(v)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	logger := setupLogging(v, logFile)

	criteria, err := criteriaFrom(v)
	if err != nil {
		return err
	}

	st, err := openStore(v)
	if err != nil {
		return err
	}
	defer st.Close()
	repo := st.EventRepo()

	ctx := cmd.Context()
	svc, err := buildServices(ctx, v, repo, logger)
	if err != nil {
		return err
	}

	return app.Run(ctx, app.Options{
		Generator: svc.generator,
		Composer:  svc.composer,
		Bank:      svc.bank,
		Fallback:  svc.fallback,
		History:   history.NewRecorder(repo, logger),
		Budget:    v.GetDuration("budget"),
		Criteria:  criteria,
		Logger:    logger,
	})
}
