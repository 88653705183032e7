package questiongen

import (
	"fmt"
	"strings"

	"github.com/edcenter/mocktest/internal/question"
)

const systemPrompt = `You are an experienced school examiner setting a timed multiple-choice mock test.

Rules:
- Write exactly the number of questions requested, distributed across subjects as instructed.
- Every question has exactly 4 options and exactly one correct option. Distractors should reflect common misconceptions, not absurd values.
- Spell each subject exactly as it appears in the request.
- Keep stems self-contained and answerable without diagrams or external material.
- Match the grade level and curriculum board. Do not use content from higher grades.
- Tag each question with its difficulty and the Bloom's taxonomy level it targets. Spread cognitive levels; do not make every question "remember".
- Vary the position of the correct option.
- Give each question a short id unique within the batch.
- Do not repeat questions within the batch.`

// buildUserMessage constructs the user message from the criteria. rejected,
// when non-empty, explains why the previous batch was discarded.
func buildUserMessage(c question.Criteria, rejected string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Curriculum: %s\n", systemLabel(c.System))
	if c.GradeLevel != "" {
		fmt.Fprintf(&b, "Grade: %s\n", c.GradeLevel)
	}
	fmt.Fprintf(&b, "Exam type: %s\n", c.Variant)
	fmt.Fprintf(&b, "Number of questions: %d\n", c.Count)

	b.WriteString("\nQuestions per subject:\n")
	for i, n := range subjectSplit(c.Count, len(c.Subjects)) {
		fmt.Fprintf(&b, "- %s: %d\n", c.Subjects[i], n)
	}

	b.WriteString("\nDifficulty mix:\n")
	mix := difficultyMix(c.Count, c.Variant)
	for _, d := range question.Difficulties {
		fmt.Fprintf(&b, "- %s: %d\n", d, mix[d])
	}

	if emphasis := variantEmphasis(c.Variant); emphasis != "" {
		b.WriteString("\n")
		b.WriteString(emphasis)
		b.WriteString("\n")
	}

	if rejected != "" {
		b.WriteString("\nYour previous batch was rejected: ")
		b.WriteString(rejected)
		b.WriteString("\nFix this and return a complete new batch.\n")
	}

	return b.String()
}

func systemLabel(s question.System) string {
	switch s {
	case question.SystemICSE:
		return "ICSE"
	case question.SystemStateBoard:
		return "State Board"
	case question.SystemInternational:
		return "International (IB / Cambridge)"
	default:
		return "CBSE"
	}
}

func variantEmphasis(v question.Variant) string {
	switch v {
	case question.VariantChallenge:
		return "Emphasis: multi-step reasoning and application. Prefer analyze and evaluate questions."
	case question.VariantRevision:
		return "Emphasis: core definitions and frequently examined facts for quick revision."
	default:
		return ""
	}
}

// subjectSplit spreads count over n subjects as evenly as possible, giving
// the remainder to the first subjects.
func subjectSplit(count, n int) []int {
	if n == 0 {
		return nil
	}
	split := make([]int, n)
	for i := range split {
		split[i] = count / n
		if i < count%n {
			split[i]++
		}
	}
	return split
}

// difficultyMix returns how many questions of each difficulty to ask for.
// Shares are in percent; rounding leftovers go to intermediate.
func difficultyMix(count int, v question.Variant) map[question.Difficulty]int {
	shares := map[question.Difficulty]int{
		question.DifficultyBasic:        40,
		question.DifficultyIntermediate: 40,
		question.DifficultyAdvanced:     20,
	}
	switch v {
	case question.VariantChallenge:
		shares[question.DifficultyBasic] = 20
		shares[question.DifficultyAdvanced] = 40
	case question.VariantRevision:
		shares[question.DifficultyBasic] = 60
		shares[question.DifficultyIntermediate] = 30
		shares[question.DifficultyAdvanced] = 10
	}

	mix := make(map[question.Difficulty]int, len(shares))
	assigned := 0
	for d, pct := range shares {
		mix[d] = count * pct / 100
		assigned += mix[d]
	}
	mix[question.DifficultyIntermediate] += count - assigned
	return mix
}

// temperatureFor adjusts the base temperature for the exam variant.
func temperatureFor(v question.Variant, base float64) float64 {
	switch v {
	case question.VariantChallenge:
		base += 0.1
	case question.VariantRevision:
		base -= 0.2
	}
	return min(max(base, 0), 1)
}
