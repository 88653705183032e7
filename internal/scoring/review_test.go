package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReview_ExamOrder(t *testing.T) {
	qs := sampleExam()
	items := BuildReview(qs, AnswerMap{"q5": 0, "q1": 2})

	require.Len(t, items, len(qs))
	for i, item := range items {
		assert.Equal(t, qs[i].ID, item.QuestionID, "item %d out of order", i)
		assert.Equal(t, qs[i].Stem, item.Stem)
		assert.Equal(t, qs[i].CorrectOption(), item.CorrectText)
	}
}

func TestBuildReview_AnsweredAndUnanswered(t *testing.T) {
	qs := sampleExam()
	items := BuildReview(qs, AnswerMap{"q1": 0, "q2": 3})

	// q1 answered correctly.
	assert.True(t, items[0].Answered())
	assert.True(t, items[0].Correct)
	assert.Equal(t, "A-q1", items[0].ChosenText)

	// q2 answered wrongly.
	assert.True(t, items[1].Answered())
	assert.False(t, items[1].Correct)
	assert.Equal(t, 3, items[1].ChosenIndex)
	assert.Equal(t, "D-q2", items[1].ChosenText)
	assert.Equal(t, "B-q2", items[1].CorrectText)

	// q3 never answered: explicit marker, never option 0.
	assert.False(t, items[2].Answered())
	assert.Equal(t, Unanswered, items[2].ChosenIndex)
	assert.Empty(t, items[2].ChosenText)
	assert.False(t, items[2].Correct)
}

func TestBuildReview_NilAnswers(t *testing.T) {
	items := BuildReview(sampleExam(), nil)
	for _, item := range items {
		assert.False(t, item.Answered())
	}
}
