package scoring

import "github.com/edcenter/mocktest/internal/question"

// ReviewItem is one row of the post-exam review list.
type ReviewItem struct {
	QuestionID string `json:"question_id"`
	Subject    string `json:"subject"`
	Stem       string `json:"stem"`

	// ChosenIndex is the option the student picked, or Unanswered.
	ChosenIndex int    `json:"chosen_index"`
	ChosenText  string `json:"chosen_text,omitempty"`

	CorrectIndex int    `json:"correct_index"`
	CorrectText  string `json:"correct_text"`
	Correct      bool   `json:"correct"`

	Explanation string `json:"explanation,omitempty"`
}

// Answered reports whether the student picked any option.
func (r ReviewItem) Answered() bool {
	return r.ChosenIndex != Unanswered
}

// BuildReview returns one item per question, in exam order.
func BuildReview(qs []question.Question, answers Answers) []ReviewItem {
	items := make([]ReviewItem, 0, len(qs))
	for _, q := range qs {
		item := ReviewItem{
			QuestionID:   q.ID,
			Subject:      q.Subject,
			Stem:         q.Stem,
			ChosenIndex:  Unanswered,
			CorrectIndex: q.CorrectIndex,
			CorrectText:  q.CorrectOption(),
			Explanation:  q.Explanation,
		}
		if answers != nil {
			if idx, ok := answers.Choice(q.ID); ok && question.ValidOption(idx) {
				item.ChosenIndex = idx
				item.ChosenText = q.Options[idx]
				item.Correct = idx == q.CorrectIndex
			}
		}
		items = append(items, item)
	}
	return items
}
