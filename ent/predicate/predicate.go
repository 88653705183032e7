// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// ExamAnswerEvent is the predicate function for examanswerevent builders.
type ExamAnswerEvent func(*sql.Selector)

// ExamAttemptEvent is the predicate function for examattemptevent builders.
type ExamAttemptEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)
