package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	engine "github.com/edcenter/mocktest/internal/exam"
	"github.com/edcenter/mocktest/internal/question"
	"github.com/edcenter/mocktest/internal/questionbank"
	"github.com/edcenter/mocktest/internal/questiongen"
	"github.com/edcenter/mocktest/internal/router"
	"github.com/edcenter/mocktest/internal/screen"
	"github.com/edcenter/mocktest/internal/screens/exam"
	"github.com/edcenter/mocktest/internal/screens/setup"
)

type stubScreen struct{ title, status string }

func (s *stubScreen) Init() tea.Cmd                            { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "body" }
func (s *stubScreen) Title() string                           { return s.title }
func (s *stubScreen) HeaderStatus() string                    { return s.status }

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestAppModel_PopAtRootQuits(t *testing.T) {
	m := newAppModel(&stubScreen{title: "root"})
	_, cmd := m.Update(router.PopScreenMsg{})
	assert.True(t, isQuit(cmd))
}

func TestAppModel_PopAboveRoot(t *testing.T) {
	m := newAppModel(&stubScreen{title: "root"})
	m.router.Push(&stubScreen{title: "child"})

	_, cmd := m.Update(router.PopScreenMsg{})
	assert.False(t, isQuit(cmd))
	assert.Equal(t, "root", m.router.Active().Title())
}

func TestAppModel_CtrlCQuits(t *testing.T) {
	m := newAppModel(&stubScreen{title: "root"})
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	assert.True(t, isQuit(cmd))
}

func TestInitialScreen(t *testing.T) {
	bank := questionbank.Default()
	ctrl := engine.New(questiongen.Unavailable{}, bank, nil)
	t.Cleanup(ctrl.Close)

	s := initialScreen(ctrl, Options{Bank: bank})
	_, ok := s.(*setup.SetupScreen)
	assert.True(t, ok, "expected setup screen without subjects")

	s = initialScreen(ctrl, Options{Bank: bank, Criteria: question.Criteria{Subjects: []string{"Physics"}, Count: 5}})
	_, ok = s.(*exam.ExamScreen)
	assert.True(t, ok, "expected exam screen when subjects are given")
}

func TestBridge_ObserveKeepsLatest(t *testing.T) {
	b := newBridge()
	b.observe(engine.Snapshot{Seq: 1})
	b.observe(engine.Snapshot{Seq: 2})
	b.observe(engine.Snapshot{Seq: 3})

	require.Len(t, b.latest, 1)
	assert.Equal(t, uint64(3), (<-b.latest).Seq)
}
