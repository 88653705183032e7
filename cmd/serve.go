package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/edcenter/mocktest/internal/exam"
	"github.com/edcenter/mocktest/internal/history"
	"github.com/edcenter/mocktest/internal/httpapi"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve exam sessions over HTTP",
	Long: `Expose the exam engine as a JSON API. Each session is an in-memory
controller; finished exams are recorded in the history database.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "Listen address")
	serveCmd.Flags().Duration("idle-timeout", httpapi.DefaultIdleTimeout, "Close sessions with no requests for this long (0 disables)")
	serveCmd.Flags().Int("max-sessions", httpapi.DefaultMaxSessions, "Maximum number of live sessions (0 for no limit)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	v := viperForCmd(cmd)
	logger := setupLogging(v, os.Stderr)

	st, err := openStore(v)
	if err != nil {
		return err
	}
	defer st.Close()
	repo := st.EventRepo()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, err := buildServices(ctx, v, repo, logger)
	if err != nil {
		return err
	}
	recorder := history.NewRecorder(repo, logger)
	budget := v.GetDuration("budget")

	newController := func() *exam.Controller {
		opts := []exam.Option{
			exam.WithLogger(logger),
			exam.WithFeedbackFallback(svc.fallback),
			exam.WithOnFinish(recorder.OnFinish),
		}
		if budget > 0 {
			opts = append(opts, exam.WithBudget(budget))
		}
		return exam.New(svc.generator, svc.bank, svc.composer, opts...)
	}

	api := httpapi.New(newController, logger,
		httpapi.WithIdleTimeout(v.GetDuration("idle-timeout")),
		httpapi.WithMaxSessions(v.GetInt("max-sessions")),
	)
	defer api.Close()
	go api.Run(ctx)

	srv := &http.Server{
		Addr:              v.GetString("addr"),
		Handler:           api.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("starting server", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down", "sessions", api.Len())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
