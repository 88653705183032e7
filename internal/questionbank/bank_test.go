package questionbank

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edcenter/mocktest/internal/question"
)

const smallCatalog = `
questions:
  - id: p1
    subject: Physics
    difficulty: basic
    cognitive_level: remember
    stem: Unit of force?
    options: [Joule, Newton, Watt, Pascal]
    correct_index: 1
  - id: c1
    subject: Chemistry
    difficulty: intermediate
    cognitive_level: apply
    stem: Moles in 36 g of water?
    options: ["1", "2", "3", "4"]
    correct_index: 1
  - id: p2
    subject: physics
    difficulty: advanced
    cognitive_level: analyze
    stem: Force when distance halves?
    options: [Half, Double, Four times, Quarter]
    correct_index: 2
`

func TestDefaultCatalogLoads(t *testing.T) {
	b := Default()
	require.NotNil(t, b)
	assert.Greater(t, b.Len(), 20)

	for _, s := range b.Subjects() {
		assert.Greater(t, b.Count(s), 0, "subject %s has no questions", s)
	}

	// Every embedded question passes the full structural chain.
	all := b.Lookup(b.Subjects())
	require.Len(t, all, b.Len())
	err := question.ValidateSet(all, question.Criteria{Subjects: b.Subjects()}, question.DefaultValidators()...)
	assert.NoError(t, err)
}

func TestLookup(t *testing.T) {
	b, err := Load(strings.NewReader(smallCatalog))
	require.NoError(t, err)

	t.Run("filters by subject case-insensitively", func(t *testing.T) {
		got := b.Lookup([]string{"PHYSICS"})
		require.Len(t, got, 2)
		assert.Equal(t, "p1", got[0].ID)
		assert.Equal(t, "p2", got[1].ID)
	})

	t.Run("multiple subjects keep catalog order", func(t *testing.T) {
		got := b.Lookup([]string{"Physics", "Chemistry", "physics"})
		ids := make([]string, len(got))
		for i, q := range got {
			ids[i] = q.ID
		}
		assert.Equal(t, []string{"p1", "c1", "p2"}, ids)
	})

	t.Run("unknown subject is empty", func(t *testing.T) {
		assert.Empty(t, b.Lookup([]string{"Astrology"}))
	})

	t.Run("results are copies", func(t *testing.T) {
		got := b.Lookup([]string{"Chemistry"})
		got[0].Stem = "mutated"
		assert.Equal(t, "Moles in 36 g of water?", b.Lookup([]string{"Chemistry"})[0].Stem)
	})
}

func TestSubjects(t *testing.T) {
	b, err := Load(strings.NewReader(smallCatalog))
	require.NoError(t, err)
	assert.Equal(t, []string{"Chemistry", "Physics"}, b.Subjects())
	assert.Equal(t, 2, b.Count("physics"))
}

func TestLoadRejectsBadEntries(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "three options",
			yaml: "questions:\n  - {id: x, subject: A, difficulty: basic, cognitive_level: apply, stem: s, options: [a, b, c], correct_index: 0}\n",
			want: "want 4 options",
		},
		{
			name: "bad difficulty",
			yaml: "questions:\n  - {id: x, subject: A, difficulty: easy, cognitive_level: apply, stem: s, options: [a, b, c, d], correct_index: 0}\n",
			want: "unknown difficulty",
		},
		{
			name: "index out of range",
			yaml: "questions:\n  - {id: x, subject: A, difficulty: basic, cognitive_level: apply, stem: s, options: [a, b, c, d], correct_index: 4}\n",
			want: "out of range",
		},
		{
			name: "duplicate ids",
			yaml: "questions:\n  - {id: x, subject: A, difficulty: basic, cognitive_level: apply, stem: s, options: [a, b, c, d], correct_index: 0}\n  - {id: x, subject: A, difficulty: basic, cognitive_level: apply, stem: t, options: [a, b, c, d], correct_index: 1}\n",
			want: "duplicate question id",
		},
		{
			name: "unknown field",
			yaml: "questions:\n  - {id: x, topic: A}\n",
			want: "decode catalog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestMerge(t *testing.T) {
	a, err := Load(strings.NewReader(smallCatalog))
	require.NoError(t, err)

	extra, err := New([]question.Question{{
		ID:           "b1",
		Subject:      "Biology",
		Difficulty:   question.DifficultyBasic,
		Cognitive:    question.CognitiveRemember,
		Stem:         "Powerhouse of the cell?",
		Options:      [question.OptionCount]string{"Nucleus", "Ribosome", "Mitochondrion", "Golgi body"},
		CorrectIndex: 2,
	}})
	require.NoError(t, err)

	merged, err := a.Merge(extra)
	require.NoError(t, err)
	assert.Equal(t, 4, merged.Len())
	assert.Len(t, merged.Lookup([]string{"biology"}), 1)

	_, err = merged.Merge(extra)
	assert.Error(t, err, "merging the same ids twice must fail")
}

func TestEmptyCatalog(t *testing.T) {
	b, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, b.Len())
	assert.Empty(t, b.Lookup([]string{"Physics"}))
}
