package exam

import "slices"

// Ledger holds at most one chosen option per question id. A later answer
// replaces the earlier one. It implements scoring.Answers.
type Ledger struct {
	choices map[string]int
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{choices: make(map[string]int)}
}

// Set records idx as the answer for questionID.
func (l *Ledger) Set(questionID string, idx int) {
	l.choices[questionID] = idx
}

// Choice returns the recorded option and whether one exists. Absence is
// distinct from option 0.
func (l *Ledger) Choice(questionID string) (int, bool) {
	idx, ok := l.choices[questionID]
	return idx, ok
}

// Len is the number of answered questions.
func (l *Ledger) Len() int {
	return len(l.choices)
}

// ReviewSet is the set of questions marked for review.
type ReviewSet struct {
	ids map[string]struct{}
}

// NewReviewSet returns an empty set.
func NewReviewSet() *ReviewSet {
	return &ReviewSet{ids: make(map[string]struct{})}
}

// Toggle flips membership and reports whether questionID is now marked.
func (r *ReviewSet) Toggle(questionID string) bool {
	if _, ok := r.ids[questionID]; ok {
		delete(r.ids, questionID)
		return false
	}
	r.ids[questionID] = struct{}{}
	return true
}

// Has reports whether questionID is marked.
func (r *ReviewSet) Has(questionID string) bool {
	_, ok := r.ids[questionID]
	return ok
}

// Len is the number of marked questions.
func (r *ReviewSet) Len() int {
	return len(r.ids)
}

// IDs returns the marked ids, sorted.
func (r *ReviewSet) IDs() []string {
	ids := make([]string, 0, len(r.ids))
	for id := range r.ids {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
