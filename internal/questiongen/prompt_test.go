package questiongen

import (
	"strings"
	"testing"

	"github.com/edcenter/mocktest/internal/question"
)

func TestSubjectSplit(t *testing.T) {
	tests := []struct {
		count, n int
		want     []int
	}{
		{10, 3, []int{4, 3, 3}},
		{2, 3, []int{1, 1, 0}},
		{6, 2, []int{3, 3}},
		{5, 0, nil},
	}
	for _, tt := range tests {
		got := subjectSplit(tt.count, tt.n)
		if len(got) != len(tt.want) {
			t.Fatalf("subjectSplit(%d, %d) = %v, want %v", tt.count, tt.n, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("subjectSplit(%d, %d) = %v, want %v", tt.count, tt.n, got, tt.want)
				break
			}
		}
	}
}

func TestDifficultyMix_SumsToCount(t *testing.T) {
	for _, v := range []question.Variant{question.VariantStandard, question.VariantChallenge, question.VariantRevision} {
		for count := 1; count <= 40; count++ {
			mix := difficultyMix(count, v)
			sum := 0
			for _, n := range mix {
				if n < 0 {
					t.Fatalf("negative share for %s/%d: %v", v, count, mix)
				}
				sum += n
			}
			if sum != count {
				t.Errorf("difficultyMix(%d, %s) sums to %d", count, v, sum)
			}
		}
	}
}

func TestDifficultyMix_VariantSkew(t *testing.T) {
	challenge := difficultyMix(10, question.VariantChallenge)
	revision := difficultyMix(10, question.VariantRevision)
	if challenge[question.DifficultyAdvanced] <= revision[question.DifficultyAdvanced] {
		t.Errorf("challenge advanced = %d, revision advanced = %d", challenge[question.DifficultyAdvanced], revision[question.DifficultyAdvanced])
	}
}

func TestTemperatureFor(t *testing.T) {
	if got := temperatureFor(question.VariantChallenge, 0.95); got != 1 {
		t.Errorf("challenge clamp = %v, want 1", got)
	}
	if got := temperatureFor(question.VariantRevision, 0.1); got != 0 {
		t.Errorf("revision clamp = %v, want 0", got)
	}
	if got := temperatureFor(question.VariantStandard, 0.7); got != 0.7 {
		t.Errorf("standard = %v, want 0.7", got)
	}
}

func TestBuildUserMessage(t *testing.T) {
	c := question.Criteria{
		Subjects:   []string{"Biology", "History"},
		Count:      5,
		GradeLevel: "9",
		System:     question.SystemICSE,
		Variant:    question.VariantRevision,
	}
	msg := buildUserMessage(c, "")

	for _, want := range []string{"Curriculum: ICSE", "Grade: 9", "- Biology: 3", "- History: 2", "quick revision"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
	if strings.Contains(msg, "rejected") {
		t.Error("first attempt should not mention a rejection")
	}

	retry := buildUserMessage(c, "options B and D are identical")
	if !strings.Contains(retry, "options B and D are identical") {
		t.Errorf("retry message missing reason:\n%s", retry)
	}
}
