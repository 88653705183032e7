// Package exam is the screen a student takes an exam on. It renders the
// controller's snapshots and turns key presses into controller commands.
package exam

import (
	"context"
	"errors"
	"fmt"

	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	engine "github.com/edcenter/mocktest/internal/exam"
	"github.com/edcenter/mocktest/internal/question"
	"github.com/edcenter/mocktest/internal/router"
	"github.com/edcenter/mocktest/internal/screen"
	"github.com/edcenter/mocktest/internal/ui/components"
	"github.com/edcenter/mocktest/internal/ui/layout"
	"github.com/edcenter/mocktest/internal/ui/theme"
)

// Controller is the part of *engine.Controller the screen drives.
type Controller interface {
	Snapshot() engine.Snapshot
	Start(ctx context.Context, c question.Criteria) error
	Answer(ctx context.Context, questionID string, idx int) error
	ToggleReview(ctx context.Context, questionID string) error
	Navigate(ctx context.Context, i int) error
	Advance(ctx context.Context) error
	Back(ctx context.Context) error
	FinishNow(ctx context.Context) error
	Restart(ctx context.Context) error
}

// ResultFactory builds the screen shown once the exam is finished.
type ResultFactory func(engine.Snapshot) screen.Screen

// ExamScreen implements screen.Screen for a running exam.
type ExamScreen struct {
	ctrl      Controller
	criteria  question.Criteria
	newResult ResultFactory

	snap    engine.Snapshot
	options components.OptionList
	shownID string // question the option cursor belongs to
	spinner spinner.Model

	prompt        *FallbackPromptMsg
	confirmFinish bool
	confirmQuit   bool
	errMsg        string
	done          bool
}

var _ screen.Screen = (*ExamScreen)(nil)
var _ screen.KeyHintProvider = (*ExamScreen)(nil)
var _ screen.StatusProvider = (*ExamScreen)(nil)

// New creates an ExamScreen that starts an exam for criteria on Init.
func New(ctrl Controller, criteria question.Criteria, newResult ResultFactory) *ExamScreen {
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = theme.Selected
	return &ExamScreen{
		ctrl:      ctrl,
		criteria:  criteria,
		newResult: newResult,
		snap:      ctrl.Snapshot(),
		options:   components.OptionList{Chosen: -1},
		spinner:   sp,
	}
}

func (s *ExamScreen) Init() tea.Cmd {
	return tea.Batch(s.start(), s.spinner.Tick)
}

func (s *ExamScreen) Title() string {
	if s.snap.Total == 0 {
		return "Exam"
	}
	return fmt.Sprintf("Question %d of %d", s.snap.Current+1, s.snap.Total)
}

func (s *ExamScreen) HeaderStatus() string {
	switch s.snap.Status {
	case engine.StatusInProgress, engine.StatusGrading, engine.StatusFinished:
		return layout.RenderClock(s.snap.RemainingSeconds)
	}
	return ""
}

func (s *ExamScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.prompt != nil, s.confirmFinish, s.confirmQuit:
		return []layout.KeyHint{hint(keys.Yes), hint(keys.No)}
	case s.errMsg != "":
		return []layout.KeyHint{hint(keys.Retry), {Key: "Esc", Description: "Back"}}
	case s.snap.Status == engine.StatusInProgress:
		return []layout.KeyHint{
			hint(keys.Up), {Key: "A-D", Description: "Pick"}, hint(keys.Choose),
			hint(keys.Prev), hint(keys.Next), hint(keys.Mark),
			hint(keys.Open), hint(keys.Marked), hint(keys.Finish),
		}
	}
	return []layout.KeyHint{hint(keys.Quit)}
}

func hint(b key.Binding) layout.KeyHint {
	h := b.Help()
	return layout.KeyHint{Key: h.Key, Description: h.Desc}
}

func (s *ExamScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case SnapshotMsg:
		return s, s.apply(msg.Snapshot)

	case FallbackPromptMsg:
		s.prompt = &msg
		return s, nil

	case commandErrMsg:
		s.errMsg = msg.Err.Error()
		return s, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyPressMsg:
		return s, s.handleKey(msg)
	}
	return s, nil
}

// start asks the controller for a new exam.
func (s *ExamScreen) start() tea.Cmd {
	s.errMsg = ""
	if err := s.ctrl.Start(context.Background(), s.criteria); err != nil {
		return func() tea.Msg { return commandErrMsg{Err: err} }
	}
	return s.refresh()
}

// do runs a controller command and picks up the state it produced.
func (s *ExamScreen) do(fn func(ctx context.Context) error) tea.Cmd {
	if err := fn(context.Background()); err != nil {
		s.errMsg = err.Error()
		return nil
	}
	return s.refresh()
}

func (s *ExamScreen) refresh() tea.Cmd {
	return s.apply(s.ctrl.Snapshot())
}

// apply takes in a snapshot. Pushed snapshots can arrive after the
// screen has already read a newer one, so older ones are skipped.
func (s *ExamScreen) apply(snap engine.Snapshot) tea.Cmd {
	if snap.Seq < s.snap.Seq {
		return nil
	}
	s.snap = snap

	if snap.Status == engine.StatusNotStarted && snap.Err != nil {
		s.errMsg = userMessage(snap.Err)
	}

	if q := snap.Question; q != nil {
		if q.ID != s.shownID {
			s.shownID = q.ID
			s.options.Cursor = max(q.Chosen, 0)
		}
		s.options.Options = q.Options
		s.options.Chosen = q.Chosen
	}

	if snap.Status == engine.StatusFinished && !s.done && s.newResult != nil {
		s.done = true
		next := s.newResult(snap)
		return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}
	return nil
}

func userMessage(err error) string {
	if errors.Is(err, engine.ErrFallbackDeclined) {
		return "Question generation failed and the question bank was declined."
	}
	if errors.Is(err, engine.ErrNoQuestionsAvailable) {
		return "No questions are available for the selected subjects."
	}
	return err.Error()
}

func (s *ExamScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case s.prompt != nil:
		return s.answerPrompt(msg)
	case s.confirmQuit:
		return s.handleQuitConfirm(msg)
	case s.confirmFinish:
		return s.handleFinishConfirm(msg)
	case s.errMsg != "":
		if key.Matches(msg, keys.Retry) {
			return s.start()
		}
		if key.Matches(msg, keys.Quit) {
			return pop
		}
		return nil
	}

	if key.Matches(msg, keys.Quit) {
		s.confirmQuit = true
		return nil
	}
	if s.snap.Status != engine.StatusInProgress || s.snap.Question == nil {
		return nil
	}

	q := s.snap.Question
	switch {
	case key.Matches(msg, keys.Up):
		s.options = s.options.Up()
	case key.Matches(msg, keys.Down):
		s.options = s.options.Down()
	case key.Matches(msg, keys.Choose):
		return s.answer(q.ID, s.options.Cursor)
	case key.Matches(msg, keys.Next):
		return s.do(s.ctrl.Advance)
	case key.Matches(msg, keys.Prev):
		return s.do(s.ctrl.Back)
	case key.Matches(msg, keys.Mark):
		return s.do(func(ctx context.Context) error { return s.ctrl.ToggleReview(ctx, q.ID) })
	case key.Matches(msg, keys.Open):
		return s.jump(func(n engine.NavItem) bool { return !n.Answered })
	case key.Matches(msg, keys.Marked):
		return s.jump(func(n engine.NavItem) bool { return n.Marked })
	case key.Matches(msg, keys.Finish):
		s.confirmFinish = true
	default:
		for i, b := range keys.Options {
			if key.Matches(msg, b) {
				s.options.Cursor = i
				return s.answer(q.ID, i)
			}
		}
	}
	return nil
}

func (s *ExamScreen) answer(questionID string, idx int) tea.Cmd {
	return s.do(func(ctx context.Context) error { return s.ctrl.Answer(ctx, questionID, idx) })
}

// jump navigates to the next question after the current one that
// matches, wrapping around.
func (s *ExamScreen) jump(match func(engine.NavItem) bool) tea.Cmd {
	nav := s.snap.Navigation
	for step := 1; step <= len(nav); step++ {
		i := (s.snap.Current + step) % len(nav)
		if match(nav[i]) {
			return s.do(func(ctx context.Context) error { return s.ctrl.Navigate(ctx, i) })
		}
	}
	return nil
}

func (s *ExamScreen) answerPrompt(msg tea.KeyPressMsg) tea.Cmd {
	var accept bool
	switch {
	case key.Matches(msg, keys.Yes):
		accept = true
	case key.Matches(msg, keys.No):
	default:
		return nil
	}
	s.prompt.Reply <- accept
	s.prompt = nil
	return nil
}

func (s *ExamScreen) handleFinishConfirm(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Yes):
		s.confirmFinish = false
		return s.do(s.ctrl.FinishNow)
	case key.Matches(msg, keys.No):
		s.confirmFinish = false
	}
	return nil
}

func (s *ExamScreen) handleQuitConfirm(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Yes):
		s.confirmQuit = false
		if err := s.ctrl.Restart(context.Background()); err != nil {
			s.errMsg = err.Error()
			return nil
		}
		return pop
	case key.Matches(msg, keys.No):
		s.confirmQuit = false
	}
	return nil
}

func pop() tea.Msg { return router.PopScreenMsg{} }
