package exam

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountdown(t *testing.T) {
	var c Countdown
	c.Reset(3)
	assert.Equal(t, 3, c.Remaining())
	assert.Equal(t, 0, c.Elapsed())

	assert.False(t, c.Tick())
	assert.False(t, c.Tick())
	assert.True(t, c.Tick())
	assert.True(t, c.Expired())
	assert.Equal(t, 0, c.Remaining())
	assert.Equal(t, 3, c.Elapsed())

	// Expiry fires once and the clock never goes negative.
	assert.False(t, c.Tick())
	assert.Equal(t, 0, c.Remaining())

	c.Reset(1)
	assert.False(t, c.Expired())
	assert.True(t, c.Tick())
}

func TestCountdown_ZeroBudget(t *testing.T) {
	var c Countdown
	c.Reset(-5)
	assert.Equal(t, 0, c.Budget())
	assert.True(t, c.Tick())
	assert.False(t, c.Tick())
}

func TestLedger(t *testing.T) {
	l := NewLedger()
	_, ok := l.Choice("q1")
	assert.False(t, ok)

	l.Set("q1", 0)
	idx, ok := l.Choice("q1")
	assert.True(t, ok)
	assert.Equal(t, 0, idx)

	l.Set("q1", 2)
	idx, _ = l.Choice("q1")
	assert.Equal(t, 2, idx)
	assert.Equal(t, 1, l.Len())
}

func TestReviewSet(t *testing.T) {
	r := NewReviewSet()
	assert.True(t, r.Toggle("q2"))
	assert.True(t, r.Toggle("q1"))
	assert.Equal(t, []string{"q1", "q2"}, r.IDs())

	assert.False(t, r.Toggle("q2"))
	assert.False(t, r.Has("q2"))
	assert.Equal(t, 1, r.Len())
}

func TestStatusText(t *testing.T) {
	b, err := StatusGeneratingQuestions.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "generating_questions", string(b))
	assert.Equal(t, "in_progress", StatusInProgress.String())
}
