package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edcenter/mocktest/internal/screen"
)

type fakeScreen struct {
	name    string
	inits   int
	seen    []tea.Msg
	replace screen.Screen
}

func (s *fakeScreen) Init() tea.Cmd {
	s.inits++
	return nil
}

func (s *fakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.seen = append(s.seen, msg)
	if s.replace != nil {
		return s.replace, nil
	}
	return s, nil
}

func (s *fakeScreen) View(int, int) string { return s.name }
func (s *fakeScreen) Title() string        { return s.name }

type tickMsg struct{}

func TestRouter_ExamFlow(t *testing.T) {
	setup := &fakeScreen{name: "setup"}
	exam := &fakeScreen{name: "exam"}
	result := &fakeScreen{name: "result"}
	r := New(setup)

	r.Update(PushScreenMsg{Screen: exam})
	require.Equal(t, 2, r.Depth())
	assert.Equal(t, "exam", r.View(80, 24))
	assert.Equal(t, 1, exam.inits)

	r.Update(ReplaceScreenMsg{Screen: result})
	require.Equal(t, 2, r.Depth())
	assert.Equal(t, "result", r.Active().Title())
	assert.Equal(t, 1, result.inits)

	r.Update(PopScreenMsg{})
	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, "setup", r.Active().Title())
	assert.Zero(t, setup.inits, "popping back does not re-init the screen below")
}

func TestRouter_PopKeepsRoot(t *testing.T) {
	r := New(&fakeScreen{name: "exam"})
	r.Pop()
	r.Pop()
	assert.Equal(t, 1, r.Depth())
	assert.Equal(t, "exam", r.View(0, 0))
}

func TestRouter_ForwardsToActiveOnly(t *testing.T) {
	setup := &fakeScreen{name: "setup"}
	exam := &fakeScreen{name: "exam"}
	r := New(setup)
	r.Push(exam)

	r.Update(tickMsg{})

	assert.Empty(t, setup.seen)
	require.Len(t, exam.seen, 1)
	assert.IsType(t, tickMsg{}, exam.seen[0])
}

func TestRouter_ScreenCanSwapItself(t *testing.T) {
	next := &fakeScreen{name: "result"}
	r := New(&fakeScreen{name: "exam", replace: next})

	r.Update(tickMsg{})

	assert.Equal(t, "result", r.Active().Title())
	assert.Zero(t, next.inits, "a screen returned from Update is not re-initialised")
}
