package exam

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/edcenter/mocktest/internal/feedback"
	"github.com/edcenter/mocktest/internal/question"
	"github.com/edcenter/mocktest/internal/questiongen"
)

// ErrClosed is returned by commands sent to a closed Controller.
var ErrClosed = errors.New("exam controller is closed")

// DefaultBudget is the exam time budget when none is configured.
const DefaultBudget = 30 * time.Minute

// FallbackConfirm decides whether the question bank may replace a failed
// generation. It may block, e.g. on a user prompt; ctx is cancelled when
// the session restarts.
type FallbackConfirm func(ctx context.Context, cause error) bool

// AlwaysAccept is the default FallbackConfirm.
func AlwaysAccept(context.Context, error) bool { return true }

// Ticker delivers clock ticks. *time.Ticker is adapted by NewTicker.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type stdTicker struct{ t *time.Ticker }

func (s stdTicker) C() <-chan time.Time { return s.t.C }
func (s stdTicker) Stop()               { s.t.Stop() }

// NewTicker returns a one-second wall-clock Ticker.
func NewTicker() Ticker {
	return stdTicker{t: time.NewTicker(time.Second)}
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithBudget sets the exam time budget. Defaults to DefaultBudget.
func WithBudget(d time.Duration) Option {
	return func(c *Controller) { c.budget = d }
}

// WithRand sets the random source used to shuffle fallback questions.
func WithRand(r *rand.Rand) Option {
	return func(c *Controller) { c.rng = r }
}

// WithTicker sets the tick source. The function is called once per
// InProgress phase.
func WithTicker(newTicker func() Ticker) Option {
	return func(c *Controller) { c.newTicker = newTicker }
}

// WithFallbackConfirm sets the fallback port. Defaults to AlwaysAccept.
func WithFallbackConfirm(fn FallbackConfirm) Option {
	return func(c *Controller) { c.confirm = fn }
}

// WithFeedbackFallback sets the templates used when the composer fails.
// Defaults to feedback.DefaultFallback().
func WithFeedbackFallback(fb *feedback.Fallback) Option {
	return func(c *Controller) { c.fallback = fb }
}

// WithOnFinish registers a hook called with the snapshot of every
// finished session. It runs on its own goroutine.
func WithOnFinish(fn func(Snapshot)) Option {
	return func(c *Controller) { c.onFinish = fn }
}

// WithObserver registers a function called with every published snapshot.
// It runs on the controller goroutine and must not block or call back
// into the Controller.
func WithObserver(fn func(Snapshot)) Option {
	return func(c *Controller) { c.observer = fn }
}

type envelope struct {
	ev    Event
	reply chan error
}

// Controller runs one exam session. All state changes happen on a single
// goroutine that applies events to a Machine in arrival order; generator
// and composer calls run on their own goroutines and report back as
// events tagged with the epoch they were started for.
type Controller struct {
	gen      questiongen.Generator
	composer feedback.Composer
	bank     Bank

	logger    *slog.Logger
	budget    time.Duration
	rng       *rand.Rand
	newTicker func() Ticker
	confirm   FallbackConfirm
	fallback  *feedback.Fallback
	onFinish  func(Snapshot)
	observer  func(Snapshot)

	machine *Machine
	events  chan envelope
	done    chan struct{}
	stopped chan struct{}
	once    sync.Once
	snap    atomic.Pointer[Snapshot]
	seq     uint64

	// Owned by the run goroutine.
	epoch       Epoch
	epochCtx    context.Context
	epochCancel context.CancelFunc
	timerCancel context.CancelFunc
}

// New starts a Controller. composer may be nil, in which case every
// result uses the fallback feedback. Call Close to stop it.
func New(gen questiongen.Generator, bank Bank, composer feedback.Composer, opts ...Option) *Controller {
	c := &Controller{
		gen:       gen,
		composer:  composer,
		bank:      bank,
		logger:    slog.Default(),
		budget:    DefaultBudget,
		newTicker: NewTicker,
		confirm:   AlwaysAccept,
		events:    make(chan envelope),
		done:      make(chan struct{}),
		stopped:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.composer == nil {
		c.composer = feedback.Unavailable{}
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if c.fallback == nil {
		c.fallback = feedback.DefaultFallback()
	}

	c.machine = NewMachine(c.budget, bank, c.rng, c.fallback)
	c.epochCtx, c.epochCancel = context.WithCancel(context.Background())
	c.publish()

	go c.run()
	return c
}

// Snapshot returns the latest published state. It never blocks.
func (c *Controller) Snapshot() Snapshot {
	return *c.snap.Load()
}

// Start begins a session. Invalid criteria are rejected synchronously with
// ErrNoSubjects or ErrInvalidCount. A Start while a session is running or
// finished is ignored like any other inapplicable command. Otherwise the
// session moves to GeneratingQuestions and the outcome shows up in later
// snapshots.
func (c *Controller) Start(ctx context.Context, criteria question.Criteria) error {
	return c.send(ctx, StartEvent{SessionID: uuid.NewString(), Criteria: criteria})
}

// Answer records idx as the answer to questionID.
func (c *Controller) Answer(ctx context.Context, questionID string, idx int) error {
	return c.send(ctx, AnswerEvent{QuestionID: questionID, Index: idx})
}

// ToggleReview flips the review mark on questionID.
func (c *Controller) ToggleReview(ctx context.Context, questionID string) error {
	return c.send(ctx, ToggleReviewEvent{QuestionID: questionID})
}

// Navigate jumps to question i. Out-of-range indexes are ignored.
func (c *Controller) Navigate(ctx context.Context, i int) error {
	return c.send(ctx, NavigateEvent{Index: i})
}

// Advance moves to the next question, or grades the exam from the last one.
func (c *Controller) Advance(ctx context.Context) error {
	return c.send(ctx, AdvanceEvent{})
}

// Back moves to the previous question.
func (c *Controller) Back(ctx context.Context) error {
	return c.send(ctx, BackEvent{})
}

// FinishNow grades the exam immediately.
func (c *Controller) FinishNow(ctx context.Context) error {
	return c.send(ctx, FinishNowEvent{})
}

// Restart discards the session from any state. In-flight generator and
// composer results for the old session are dropped when they arrive.
func (c *Controller) Restart(ctx context.Context) error {
	return c.send(ctx, RestartEvent{})
}

// Close stops the controller and cancels in-flight work.
func (c *Controller) Close() {
	c.once.Do(func() { close(c.done) })
	<-c.stopped
}

// send delivers a command and waits until it has been applied.
func (c *Controller) send(ctx context.Context, ev Event) error {
	reply := make(chan error, 1)
	select {
	case c.events <- envelope{ev: ev, reply: reply}:
	case <-c.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-reply:
		return err
	case <-c.done:
		return ErrClosed
	}
}

// post delivers an internal event without waiting for it to be applied.
func (c *Controller) post(ev Event) {
	select {
	case c.events <- envelope{ev: ev}:
	case <-c.done:
	}
}

func (c *Controller) run() {
	defer close(c.stopped)
	defer func() {
		c.stopTimer()
		c.epochCancel()
	}()

	for {
		select {
		case <-c.done:
			return
		case env := <-c.events:
			effects := c.machine.Apply(env.ev)
			c.syncEpoch()
			c.publish()
			err := c.perform(env.ev, effects)
			if env.reply != nil {
				env.reply <- err
			}
		}
	}
}

// syncEpoch cancels the previous session's work when the epoch moves.
func (c *Controller) syncEpoch() {
	if e := c.machine.Epoch(); e != c.epoch {
		c.stopTimer()
		c.epochCancel()
		c.epoch = e
		c.epochCtx, c.epochCancel = context.WithCancel(context.Background())
	}
}

func (c *Controller) publish() {
	c.seq++
	s := c.machine.Snapshot()
	s.Seq = c.seq
	c.snap.Store(&s)
	if c.observer != nil {
		c.observer(s)
	}
}

func (c *Controller) perform(ev Event, effects []Effect) error {
	var rejected error
	for _, eff := range effects {
		switch eff := eff.(type) {
		case GenerateEffect:
			go c.generate(c.epochCtx, eff)
		case ConfirmFallbackEffect:
			c.logger.Warn("question generation failed, offering question bank",
				"epoch", eff.Epoch, "error", eff.Cause)
			go c.confirmFallback(c.epochCtx, eff)
		case StartTimerEffect:
			c.startTimer(eff.Epoch)
		case StopTimerEffect:
			c.stopTimer()
		case ComposeEffect:
			go c.compose(c.epochCtx, eff)
		case FinishedEffect:
			s := c.Snapshot()
			c.logger.Info("exam finished",
				"session", s.SessionID, "reason", s.Result.FinishReason,
				"correct", s.Result.Breakdown.TotalCorrect, "total", s.Result.Breakdown.TotalQuestions,
				"feedback", s.Result.FeedbackSource)
			if c.onFinish != nil {
				go c.onFinish(s)
			}
		case FailedEffect:
			c.logger.Warn("could not start exam", "epoch", eff.Epoch, "error", eff.Err)
		case RejectEffect:
			c.logger.Debug("command rejected", "event", eventName(ev), "error", eff.Err)
			rejected = eff.Err
		case IgnoreEffect:
			if eff.Stale {
				c.logger.Debug("dropping stale event", "event", eventName(eff.Event), "reason", eff.Reason)
			} else {
				c.logger.Debug("ignoring event", "event", eventName(eff.Event), "reason", eff.Reason)
			}
		}
	}
	return rejected
}

func (c *Controller) generate(ctx context.Context, eff GenerateEffect) {
	qs, err := c.gen.Generate(ctx, eff.Criteria)
	c.post(GeneratedEvent{Epoch: eff.Epoch, Questions: qs, Err: err})
}

func (c *Controller) confirmFallback(ctx context.Context, eff ConfirmFallbackEffect) {
	ok := c.confirm(ctx, eff.Cause)
	c.post(FallbackDecisionEvent{Epoch: eff.Epoch, Accepted: ok})
}

func (c *Controller) compose(ctx context.Context, eff ComposeEffect) {
	fb, err := c.composer.Compose(ctx, eff.Breakdown, eff.GradeLevel)
	if err != nil {
		c.logger.Warn("feedback composer failed, using templates", "epoch", eff.Epoch, "error", err)
	}
	c.post(ComposedEvent{Epoch: eff.Epoch, Feedback: fb, Err: err})
}

func (c *Controller) startTimer(epoch Epoch) {
	c.stopTimer()
	ctx, cancel := context.WithCancel(c.epochCtx)
	c.timerCancel = cancel
	t := c.newTicker()

	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C():
				c.post(TickEvent{Epoch: epoch})
			}
		}
	}()
}

func (c *Controller) stopTimer() {
	if c.timerCancel != nil {
		c.timerCancel()
		c.timerCancel = nil
	}
}

func eventName(ev Event) string {
	return fmt.Sprintf("%T", ev)
}
