package exam

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	engine "github.com/edcenter/mocktest/internal/exam"
	"github.com/edcenter/mocktest/internal/question"
	"github.com/edcenter/mocktest/internal/router"
	"github.com/edcenter/mocktest/internal/screen"
)

// fakeController records commands and serves a fixed snapshot.
type fakeController struct {
	snap  engine.Snapshot
	calls []string
	err   error
}

func (f *fakeController) Snapshot() engine.Snapshot { return f.snap }

func (f *fakeController) record(call string) error {
	f.calls = append(f.calls, call)
	return f.err
}

func (f *fakeController) Start(_ context.Context, c question.Criteria) error {
	return f.record("start:" + strings.Join(c.Subjects, ","))
}
func (f *fakeController) Answer(_ context.Context, id string, idx int) error {
	return f.record("answer:" + id + ":" + question.OptionLabel(idx))
}
func (f *fakeController) ToggleReview(_ context.Context, id string) error {
	return f.record("review:" + id)
}
func (f *fakeController) Navigate(_ context.Context, i int) error {
	return f.record("navigate:" + string(rune('0'+i)))
}
func (f *fakeController) Advance(context.Context) error   { return f.record("advance") }
func (f *fakeController) Back(context.Context) error      { return f.record("back") }
func (f *fakeController) FinishNow(context.Context) error { return f.record("finish") }
func (f *fakeController) Restart(context.Context) error   { return f.record("restart") }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func inProgress(seq uint64) engine.Snapshot {
	return engine.Snapshot{
		Seq:              seq,
		Status:           engine.StatusInProgress,
		Total:            3,
		Current:          0,
		RemainingSeconds: 600,
		Question: &engine.QuestionView{
			ID:      "q1",
			Subject: "Physics",
			Stem:    "Which quantity is a vector?",
			Options: [question.OptionCount]string{"mass", "speed", "velocity", "energy"},
			Chosen:  -1,
		},
		Navigation: []engine.NavItem{
			{QuestionID: "q1", Answered: true, Current: true},
			{QuestionID: "q2"},
			{QuestionID: "q3", Marked: true},
		},
	}
}

func newTestScreen() (*ExamScreen, *fakeController) {
	ctrl := &fakeController{snap: inProgress(1)}
	s := New(ctrl, question.Criteria{Subjects: []string{"Physics"}, Count: 3}, nil)
	s.Init()
	return s, ctrl
}

func TestExamScreen_StartsOnInit(t *testing.T) {
	_, ctrl := newTestScreen()
	if len(ctrl.calls) != 1 || ctrl.calls[0] != "start:Physics" {
		t.Errorf("calls = %v, want [start:Physics]", ctrl.calls)
	}
}

func TestExamScreen_Commands(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyPressMsg
		want string
	}{
		{"letter answers", []tea.KeyPressMsg{keyPress('c')}, "answer:q1:C"},
		{"cursor answers", []tea.KeyPressMsg{specialKey(tea.KeyDown), specialKey(tea.KeyEnter)}, "answer:q1:B"},
		{"mark", []tea.KeyPressMsg{keyPress('m')}, "review:q1"},
		{"next", []tea.KeyPressMsg{specialKey(tea.KeyRight)}, "advance"},
		{"prev", []tea.KeyPressMsg{specialKey(tea.KeyLeft)}, "back"},
		{"next unanswered", []tea.KeyPressMsg{keyPress('u')}, "navigate:1"},
		{"next marked", []tea.KeyPressMsg{keyPress('r')}, "navigate:2"},
		{"finish confirmed", []tea.KeyPressMsg{keyPress('f'), keyPress('y')}, "finish"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ctrl := newTestScreen()
			for _, k := range tt.keys {
				s.Update(k)
			}
			last := ctrl.calls[len(ctrl.calls)-1]
			if last != tt.want {
				t.Errorf("last call = %q, want %q (all: %v)", last, tt.want, ctrl.calls)
			}
		})
	}
}

func TestExamScreen_FinishDeclined(t *testing.T) {
	s, ctrl := newTestScreen()
	s.Update(keyPress('f'))
	if !strings.Contains(s.View(100, 30), "Finish the exam now?") {
		t.Error("expected finish confirmation")
	}
	s.Update(keyPress('n'))
	if len(ctrl.calls) != 1 {
		t.Errorf("calls = %v, want only start", ctrl.calls)
	}
}

func TestExamScreen_QuitRestartsAndPops(t *testing.T) {
	s, ctrl := newTestScreen()
	s.Update(specialKey(tea.KeyEscape))
	_, cmd := s.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
	if ctrl.calls[len(ctrl.calls)-1] != "restart" {
		t.Errorf("calls = %v, want restart last", ctrl.calls)
	}
}

func TestExamScreen_IgnoresOlderSnapshots(t *testing.T) {
	s, _ := newTestScreen()
	newer := inProgress(5)
	newer.Current = 2
	s.Update(SnapshotMsg{Snapshot: newer})

	older := inProgress(3)
	s.Update(SnapshotMsg{Snapshot: older})
	if s.snap.Current != 2 {
		t.Errorf("Current = %d, want the newer snapshot kept", s.snap.Current)
	}
}

func TestExamScreen_FinishedReplacesWithResult(t *testing.T) {
	ctrl := &fakeController{snap: inProgress(1)}
	var got engine.Snapshot
	s := New(ctrl, question.Criteria{Subjects: []string{"Physics"}, Count: 3}, func(snap engine.Snapshot) screen.Screen {
		got = snap
		return New(ctrl, question.Criteria{}, nil)
	})

	finished := engine.Snapshot{Seq: 9, Status: engine.StatusFinished, SessionID: "s1", Result: &engine.Result{}}
	_, cmd := s.Update(SnapshotMsg{Snapshot: finished})
	if cmd == nil {
		t.Fatal("expected replace command")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg")
	}
	if got.SessionID != "s1" {
		t.Errorf("result built from %q, want s1", got.SessionID)
	}

	// A repeated finished snapshot does not replace twice.
	_, cmd = s.Update(SnapshotMsg{Snapshot: finished})
	if cmd != nil {
		t.Error("expected no second replace")
	}
}

func TestExamScreen_FallbackPrompt(t *testing.T) {
	s, _ := newTestScreen()
	reply := make(chan bool, 1)
	s.Update(FallbackPromptMsg{Cause: errors.New("rate limited"), Reply: reply})

	view := s.View(100, 30)
	if !strings.Contains(view, "rate limited") || !strings.Contains(view, "question bank") {
		t.Errorf("unexpected prompt view:\n%s", view)
	}

	s.Update(keyPress('x'))
	if len(reply) != 0 {
		t.Fatal("unrelated key must not answer the prompt")
	}
	s.Update(keyPress('y'))
	if ok := <-reply; !ok {
		t.Error("expected acceptance")
	}
	if s.prompt != nil {
		t.Error("prompt should be cleared")
	}
}

func TestExamScreen_StartErrorAndRetry(t *testing.T) {
	s, ctrl := newTestScreen()
	s.Update(SnapshotMsg{Snapshot: engine.Snapshot{
		Seq:    7,
		Status: engine.StatusNotStarted,
		Err:    engine.ErrNoQuestionsAvailable,
	}})
	if !strings.Contains(s.View(100, 30), "No questions are available") {
		t.Error("expected error message")
	}

	s.Update(keyPress('r'))
	if ctrl.calls[len(ctrl.calls)-1] != "start:Physics" {
		t.Errorf("calls = %v, want a second start", ctrl.calls)
	}
	if s.errMsg != "" {
		t.Error("retry should clear the error")
	}
}

func TestExamScreen_View(t *testing.T) {
	s, _ := newTestScreen()
	view := s.View(120, 30)
	for _, want := range []string{"Which quantity is a vector?", "velocity", "Answered"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if s.Title() != "Question 1 of 3" {
		t.Errorf("Title = %q", s.Title())
	}
	if !strings.Contains(s.HeaderStatus(), "10:00") {
		t.Errorf("HeaderStatus = %q", s.HeaderStatus())
	}
}
