// Package questionbank holds the static, read-only catalog of questions
// used when live generation is unavailable.
package questionbank

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/edcenter/mocktest/internal/question"
)

//go:embed catalog/questions.yaml
var defaultCatalog []byte

// Bank is an immutable question catalog indexed by subject.
// It is safe for concurrent use.
type Bank struct {
	questions []question.Question
	bySubject map[string][]int // normalized subject -> indexes into questions
}

// catalogFile is the on-disk YAML layout.
type catalogFile struct {
	Questions []catalogEntry `yaml:"questions"`
}

type catalogEntry struct {
	ID           string   `yaml:"id"`
	Subject      string   `yaml:"subject"`
	Difficulty   string   `yaml:"difficulty"`
	Cognitive    string   `yaml:"cognitive_level"`
	Stem         string   `yaml:"stem"`
	Options      []string `yaml:"options"`
	CorrectIndex int      `yaml:"correct_index"`
	Explanation  string   `yaml:"explanation"`
}

var (
	defaultOnce sync.Once
	defaultBank *Bank
)

// Default returns the bank built from the embedded catalog.
// It panics if the embedded catalog is malformed, which is a build defect.
func Default() *Bank {
	defaultOnce.Do(func() {
		b, err := Load(bytes.NewReader(defaultCatalog))
		if err != nil {
			panic(fmt.Sprintf("questionbank: embedded catalog: %v", err))
		}
		defaultBank = b
	})
	return defaultBank
}

// Load decodes a YAML catalog and validates every entry.
func Load(r io.Reader) (*Bank, error) {
	var f catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if err == io.EOF {
			return New(nil)
		}
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	qs := make([]question.Question, 0, len(f.Questions))
	for i, e := range f.Questions {
		q, err := e.toQuestion()
		if err != nil {
			return nil, fmt.Errorf("entry %d (%s): %w", i+1, e.ID, err)
		}
		qs = append(qs, q)
	}
	return New(qs)
}

// LoadFile reads a YAML catalog from path.
func LoadFile(path string) (*Bank, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// New builds a bank from qs. Ids must be unique and every question must
// pass structural validation.
func New(qs []question.Question) (*Bank, error) {
	b := &Bank{
		questions: slices.Clone(qs),
		bySubject: make(map[string][]int),
	}
	seen := make(map[string]bool, len(qs))
	v := &question.StructuralValidator{}
	for i := range b.questions {
		q := &b.questions[i]
		if q.ID == "" {
			return nil, fmt.Errorf("question at position %d has no id", i+1)
		}
		if seen[q.ID] {
			return nil, fmt.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true
		if verr := v.Validate(q, question.Criteria{}); verr != nil {
			verr.QuestionID = q.ID
			return nil, verr
		}
		key := question.NormalizeSubject(q.Subject)
		b.bySubject[key] = append(b.bySubject[key], i)
	}
	return b, nil
}

// Merge returns a new bank containing b's questions followed by other's.
func (b *Bank) Merge(other *Bank) (*Bank, error) {
	if other == nil {
		return b, nil
	}
	all := make([]question.Question, 0, len(b.questions)+len(other.questions))
	all = append(all, b.questions...)
	all = append(all, other.questions...)
	return New(all)
}

// Lookup returns copies of every question whose subject is in subjects,
// compared case-insensitively, in catalog order.
func (b *Bank) Lookup(subjects []string) []question.Question {
	var idx []int
	seen := make(map[string]bool, len(subjects))
	for _, s := range subjects {
		key := question.NormalizeSubject(s)
		if seen[key] {
			continue
		}
		seen[key] = true
		idx = append(idx, b.bySubject[key]...)
	}
	slices.Sort(idx)

	out := make([]question.Question, len(idx))
	for i, j := range idx {
		out[i] = b.questions[j]
	}
	return out
}

// Subjects returns the distinct subject labels in the bank, sorted.
func (b *Bank) Subjects() []string {
	out := make([]string, 0, len(b.bySubject))
	for _, idx := range b.bySubject {
		out = append(out, b.questions[idx[0]].Subject)
	}
	slices.SortFunc(out, func(a, c string) int {
		return strings.Compare(question.NormalizeSubject(a), question.NormalizeSubject(c))
	})
	return out
}

// Count returns the number of questions available for subject.
func (b *Bank) Count(subject string) int {
	return len(b.bySubject[question.NormalizeSubject(subject)])
}

// Len returns the total number of questions.
func (b *Bank) Len() int {
	return len(b.questions)
}

func (e catalogEntry) toQuestion() (question.Question, error) {
	if len(e.Options) != question.OptionCount {
		return question.Question{}, fmt.Errorf("want %d options, got %d", question.OptionCount, len(e.Options))
	}
	d, err := question.ParseDifficulty(e.Difficulty)
	if err != nil {
		return question.Question{}, err
	}
	c, err := question.ParseCognitive(e.Cognitive)
	if err != nil {
		return question.Question{}, err
	}
	q := question.Question{
		ID:           strings.TrimSpace(e.ID),
		Subject:      strings.TrimSpace(e.Subject),
		Difficulty:   d,
		Cognitive:    c,
		Stem:         strings.TrimSpace(e.Stem),
		CorrectIndex: e.CorrectIndex,
		Explanation:  strings.TrimSpace(e.Explanation),
	}
	copy(q.Options[:], e.Options)
	return q, nil
}
