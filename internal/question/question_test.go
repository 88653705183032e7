package question

import (
	"errors"
	"strings"
	"testing"
)

func validQuestion() Question {
	return Question{
		ID:           "q1",
		Subject:      "Physics",
		Difficulty:   DifficultyBasic,
		Cognitive:    CognitiveRemember,
		Stem:         "What is the SI unit of force?",
		Options:      [OptionCount]string{"Joule", "Newton", "Watt", "Pascal"},
		CorrectIndex: 1,
	}
}

func physics() Criteria {
	return Criteria{Subjects: []string{"Physics"}, Count: 5}
}

func TestStructural_ValidQuestion(t *testing.T) {
	v := &StructuralValidator{}
	q := validQuestion()
	if err := v.Validate(&q, physics()); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestStructural_Failures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(q *Question)
		want   string
	}{
		{"empty stem", func(q *Question) { q.Stem = "  " }, "stem is empty"},
		{"long stem", func(q *Question) { q.Stem = strings.Repeat("a", maxStemLen+1) }, "stem exceeds"},
		{"empty subject", func(q *Question) { q.Subject = "" }, "subject is empty"},
		{"empty option", func(q *Question) { q.Options[2] = "" }, "option C is empty"},
		{"index too high", func(q *Question) { q.CorrectIndex = 4 }, "out of range"},
		{"negative index", func(q *Question) { q.CorrectIndex = -1 }, "out of range"},
		{"bad difficulty", func(q *Question) { q.Difficulty = "easy" }, "unknown difficulty"},
		{"bad cognitive", func(q *Question) { q.Cognitive = "memorize" }, "unknown cognitive level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion()
			tt.mutate(&q)
			err := (&StructuralValidator{}).Validate(&q, physics())
			if err == nil {
				t.Fatal("expected validation error")
			}
			if err.Validator != "structural" {
				t.Errorf("Validator = %q, want %q", err.Validator, "structural")
			}
			if !strings.Contains(err.Message, tt.want) {
				t.Errorf("Message = %q, want it to contain %q", err.Message, tt.want)
			}
			if !err.Retryable {
				t.Error("expected retryable")
			}
		})
	}
}

func TestSubjectValidator(t *testing.T) {
	v := &SubjectValidator{}
	q := validQuestion()

	if err := v.Validate(&q, Criteria{Subjects: []string{"physics", "Chemistry"}}); err != nil {
		t.Errorf("case-insensitive subject match failed: %v", err)
	}
	if err := v.Validate(&q, Criteria{Subjects: []string{"Biology"}}); err == nil {
		t.Error("expected error for unrequested subject")
	}
}

func TestCriteriaCanonicalSubject(t *testing.T) {
	c := Criteria{Subjects: []string{"Physics", "Social Science"}}
	tests := []struct {
		in, want string
	}{
		{"Physics", "Physics"},
		{"physics", "Physics"},
		{"  PHYSICS ", "Physics"},
		{"social science", "Social Science"},
		{"Biology", "Biology"},
	}
	for _, tt := range tests {
		if got := c.CanonicalSubject(tt.in); got != tt.want {
			t.Errorf("CanonicalSubject(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDistinctOptionsValidator(t *testing.T) {
	v := &DistinctOptionsValidator{}
	q := validQuestion()
	if err := v.Validate(&q, physics()); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}

	q.Options[3] = " newton "
	err := v.Validate(&q, physics())
	if err == nil {
		t.Fatal("expected duplicate option error")
	}
	if !strings.Contains(err.Message, "B and D") {
		t.Errorf("Message = %q, want mention of B and D", err.Message)
	}
}

func TestValidateSet(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		err := ValidateSet(nil, physics(), DefaultValidators()...)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected *ValidationError, got %T", err)
		}
		if verr.Validator != "set" {
			t.Errorf("Validator = %q, want set", verr.Validator)
		}
	})

	t.Run("duplicate ids", func(t *testing.T) {
		qs := []Question{validQuestion(), validQuestion()}
		err := ValidateSet(qs, physics(), DefaultValidators()...)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected *ValidationError, got %v", err)
		}
		if verr.QuestionID != "q1" {
			t.Errorf("QuestionID = %q, want q1", verr.QuestionID)
		}
	})

	t.Run("missing id", func(t *testing.T) {
		q := validQuestion()
		q.ID = ""
		if err := ValidateSet([]Question{q}, physics()); err == nil {
			t.Fatal("expected error for missing id")
		}
	})

	t.Run("validator failure carries question id", func(t *testing.T) {
		a := validQuestion()
		b := validQuestion()
		b.ID = "q2"
		b.CorrectIndex = 7
		err := ValidateSet([]Question{a, b}, physics(), &StructuralValidator{})
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected *ValidationError, got %v", err)
		}
		if verr.QuestionID != "q2" {
			t.Errorf("QuestionID = %q, want q2", verr.QuestionID)
		}
	})

	t.Run("valid", func(t *testing.T) {
		a := validQuestion()
		b := validQuestion()
		b.ID = "q2"
		if err := ValidateSet([]Question{a, b}, physics(), DefaultValidators()...); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCriteriaNormalize(t *testing.T) {
	c := Criteria{Subjects: []string{" Physics", "chemistry", "physics", "", "Biology "}}.Normalize()

	want := []string{"Biology", "chemistry", "Physics"}
	if len(c.Subjects) != len(want) {
		t.Fatalf("Subjects = %v, want %v", c.Subjects, want)
	}
	for i := range want {
		if c.Subjects[i] != want[i] {
			t.Errorf("Subjects[%d] = %q, want %q", i, c.Subjects[i], want[i])
		}
	}
	if c.System != SystemCBSE {
		t.Errorf("System = %q, want default %q", c.System, SystemCBSE)
	}
	if c.Variant != VariantStandard {
		t.Errorf("Variant = %q, want default %q", c.Variant, VariantStandard)
	}
}

func TestParsers(t *testing.T) {
	if d, err := ParseDifficulty(" Advanced "); err != nil || d != DifficultyAdvanced {
		t.Errorf("ParseDifficulty = %q, %v", d, err)
	}
	if _, err := ParseDifficulty("impossible"); err == nil {
		t.Error("expected error for unknown difficulty")
	}
	if c, err := ParseCognitive("ANALYZE"); err != nil || c != CognitiveAnalyze {
		t.Errorf("ParseCognitive = %q, %v", c, err)
	}
	if s, err := ParseSystem(""); err != nil || s != SystemCBSE {
		t.Errorf("ParseSystem(\"\") = %q, %v", s, err)
	}
	if _, err := ParseSystem("sat"); err == nil {
		t.Error("expected error for unknown system")
	}
	if v, err := ParseVariant("challenge"); err != nil || v != VariantChallenge {
		t.Errorf("ParseVariant = %q, %v", v, err)
	}
}

func TestOptionLabel(t *testing.T) {
	if got := OptionLabel(0); got != "A" {
		t.Errorf("OptionLabel(0) = %q, want A", got)
	}
	if got := OptionLabel(3); got != "D" {
		t.Errorf("OptionLabel(3) = %q, want D", got)
	}
	if got := OptionLabel(4); got != "?" {
		t.Errorf("OptionLabel(4) = %q, want ?", got)
	}
	q := validQuestion()
	if got := q.CorrectOption(); got != "Newton" {
		t.Errorf("CorrectOption = %q, want Newton", got)
	}
}

func TestCriteriaValidate(t *testing.T) {
	tests := []struct {
		name string
		c    Criteria
		want error
	}{
		{"ok", Criteria{Subjects: []string{"Physics"}, Count: 5}, nil},
		{"no subjects", Criteria{Subjects: []string{"  "}, Count: 5}, ErrNoSubjects},
		{"zero count", Criteria{Subjects: []string{"Physics"}}, ErrInvalidCount},
		{"negative count", Criteria{Subjects: []string{"Physics"}, Count: -2}, ErrInvalidCount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.c.Normalize().Validate()
			if tt.want == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}

	bad := Criteria{Subjects: []string{"Physics"}, Count: 1, System: "sat"}
	if err := bad.Validate(); err == nil {
		t.Error("expected error for unknown system")
	}
}
