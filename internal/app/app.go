package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	engine "github.com/edcenter/mocktest/internal/exam"
	"github.com/edcenter/mocktest/internal/feedback"
	"github.com/edcenter/mocktest/internal/history"
	"github.com/edcenter/mocktest/internal/question"
	"github.com/edcenter/mocktest/internal/questionbank"
	"github.com/edcenter/mocktest/internal/questiongen"
	"github.com/edcenter/mocktest/internal/router"
	"github.com/edcenter/mocktest/internal/screen"
	"github.com/edcenter/mocktest/internal/screens/exam"
	historyscreen "github.com/edcenter/mocktest/internal/screens/history"
	"github.com/edcenter/mocktest/internal/screens/result"
	"github.com/edcenter/mocktest/internal/screens/setup"
	"github.com/edcenter/mocktest/internal/ui/layout"
)

// Options configures the terminal app.
type Options struct {
	Generator questiongen.Generator
	Composer  feedback.Composer
	Bank      *questionbank.Bank
	Fallback  *feedback.Fallback

	// History persists finished exams. Optional.
	History *history.Recorder

	Budget time.Duration

	// Criteria pre-fills the setup screen. When it names subjects the
	// exam starts right away.
	Criteria question.Criteria

	Logger *slog.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

func newAppModel(initial screen.Screen) AppModel {
	return AppModel{router: router.New(initial)}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case router.PopScreenMsg:
		if m.router.Depth() <= 1 {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title, status := "", ""
	var hints []layout.KeyHint
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.HeaderStatus()
		}
		if hp, ok := active.(screen.KeyHintProvider); ok {
			hints = hp.KeyHints()
		}
	}
	hints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})

	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(hints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program and blocks until the user quits.
func Run(ctx context.Context, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	b := newBridge()
	ctrlOpts := []engine.Option{
		engine.WithLogger(logger),
		engine.WithObserver(b.observe),
		engine.WithFallbackConfirm(b.confirm),
	}
	if opts.Budget > 0 {
		ctrlOpts = append(ctrlOpts, engine.WithBudget(opts.Budget))
	}
	if opts.Fallback != nil {
		ctrlOpts = append(ctrlOpts, engine.WithFeedbackFallback(opts.Fallback))
	}
	if opts.History != nil {
		ctrlOpts = append(ctrlOpts, engine.WithOnFinish(opts.History.OnFinish))
	}

	var bank engine.Bank
	if opts.Bank != nil {
		bank = opts.Bank
	}
	ctrl := engine.New(opts.Generator, bank, opts.Composer, ctrlOpts...)
	defer ctrl.Close()

	p := tea.NewProgram(newAppModel(initialScreen(ctrl, opts)), tea.WithContext(ctx))
	b.p = p

	pumpCtx, stop := context.WithCancel(ctx)
	defer stop()
	go b.pump(pumpCtx)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

func initialScreen(ctrl *engine.Controller, opts Options) screen.Screen {
	newResult := func(s engine.Snapshot) screen.Screen { return result.New(s) }
	newExam := func(c question.Criteria) screen.Screen {
		// A finished or abandoned session has to be cleared before the
		// next Start is accepted.
		if ctrl.Snapshot().Status != engine.StatusNotStarted {
			_ = ctrl.Restart(context.Background())
		}
		return exam.New(ctrl, c, newResult)
	}

	if len(opts.Criteria.Subjects) > 0 {
		return newExam(opts.Criteria)
	}

	var subjects []string
	if opts.Bank != nil {
		subjects = opts.Bank.Subjects()
	}
	var newHistory func() screen.Screen
	if opts.History != nil {
		newHistory = func() screen.Screen { return historyscreen.New(opts.History) }
	}
	return setup.New(subjects, opts.Criteria, newExam, newHistory)
}
