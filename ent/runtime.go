// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/edcenter/mocktest/ent/examanswerevent"
	"github.com/edcenter/mocktest/ent/examattemptevent"
	"github.com/edcenter/mocktest/ent/llmrequestevent"
	"github.com/edcenter/mocktest/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	examanswereventMixin := schema.ExamAnswerEvent{}.Mixin()
	examanswereventMixinFields0 := examanswereventMixin[0].Fields()
	_ = examanswereventMixinFields0
	examanswereventFields := schema.ExamAnswerEvent{}.Fields()
	_ = examanswereventFields
	// examanswereventDescTimestamp is the schema descriptor for timestamp field.
	examanswereventDescTimestamp := examanswereventMixinFields0[1].Descriptor()
	// examanswerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	examanswerevent.DefaultTimestamp = examanswereventDescTimestamp.Default.(func() time.Time)
	// examanswereventDescSessionID is the schema descriptor for session_id field.
	examanswereventDescSessionID := examanswereventFields[0].Descriptor()
	// examanswerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	examanswerevent.SessionIDValidator = examanswereventDescSessionID.Validators[0].(func(string) error)
	// examanswereventDescQuestionID is the schema descriptor for question_id field.
	examanswereventDescQuestionID := examanswereventFields[1].Descriptor()
	// examanswerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	examanswerevent.QuestionIDValidator = examanswereventDescQuestionID.Validators[0].(func(string) error)
	// examanswereventDescSubject is the schema descriptor for subject field.
	examanswereventDescSubject := examanswereventFields[2].Descriptor()
	// examanswerevent.SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	examanswerevent.SubjectValidator = examanswereventDescSubject.Validators[0].(func(string) error)
	// examanswereventDescDifficulty is the schema descriptor for difficulty field.
	examanswereventDescDifficulty := examanswereventFields[3].Descriptor()
	// examanswerevent.DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	examanswerevent.DifficultyValidator = examanswereventDescDifficulty.Validators[0].(func(string) error)
	// examanswereventDescCognitive is the schema descriptor for cognitive field.
	examanswereventDescCognitive := examanswereventFields[4].Descriptor()
	// examanswerevent.CognitiveValidator is a validator for the "cognitive" field. It is called by the builders before save.
	examanswerevent.CognitiveValidator = examanswereventDescCognitive.Validators[0].(func(string) error)
	// examanswereventDescStem is the schema descriptor for stem field.
	examanswereventDescStem := examanswereventFields[5].Descriptor()
	// examanswerevent.StemValidator is a validator for the "stem" field. It is called by the builders before save.
	examanswerevent.StemValidator = examanswereventDescStem.Validators[0].(func(string) error)
	// examanswereventDescMarkedForReview is the schema descriptor for marked_for_review field.
	examanswereventDescMarkedForReview := examanswereventFields[9].Descriptor()
	// examanswerevent.DefaultMarkedForReview holds the default value on creation for the marked_for_review field.
	examanswerevent.DefaultMarkedForReview = examanswereventDescMarkedForReview.Default.(bool)
	examattempteventMixin := schema.ExamAttemptEvent{}.Mixin()
	examattempteventMixinFields0 := examattempteventMixin[0].Fields()
	_ = examattempteventMixinFields0
	examattempteventFields := schema.ExamAttemptEvent{}.Fields()
	_ = examattempteventFields
	// examattempteventDescTimestamp is the schema descriptor for timestamp field.
	examattempteventDescTimestamp := examattempteventMixinFields0[1].Descriptor()
	// examattemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	examattemptevent.DefaultTimestamp = examattempteventDescTimestamp.Default.(func() time.Time)
	// examattempteventDescSessionID is the schema descriptor for session_id field.
	examattempteventDescSessionID := examattempteventFields[0].Descriptor()
	// examattemptevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	examattemptevent.SessionIDValidator = examattempteventDescSessionID.Validators[0].(func(string) error)
	// examattempteventDescGradeLevel is the schema descriptor for grade_level field.
	examattempteventDescGradeLevel := examattempteventFields[2].Descriptor()
	// examattemptevent.DefaultGradeLevel holds the default value on creation for the grade_level field.
	examattemptevent.DefaultGradeLevel = examattempteventDescGradeLevel.Default.(string)
	// examattempteventDescSystem is the schema descriptor for system field.
	examattempteventDescSystem := examattempteventFields[3].Descriptor()
	// examattemptevent.DefaultSystem holds the default value on creation for the system field.
	examattemptevent.DefaultSystem = examattempteventDescSystem.Default.(string)
	// examattempteventDescVariant is the schema descriptor for variant field.
	examattempteventDescVariant := examattempteventFields[4].Descriptor()
	// examattemptevent.DefaultVariant holds the default value on creation for the variant field.
	examattemptevent.DefaultVariant = examattempteventDescVariant.Default.(string)
	// examattempteventDescQuestionSource is the schema descriptor for question_source field.
	examattempteventDescQuestionSource := examattempteventFields[5].Descriptor()
	// examattemptevent.QuestionSourceValidator is a validator for the "question_source" field. It is called by the builders before save.
	examattemptevent.QuestionSourceValidator = examattempteventDescQuestionSource.Validators[0].(func(string) error)
	// examattempteventDescAnswered is the schema descriptor for answered field.
	examattempteventDescAnswered := examattempteventFields[8].Descriptor()
	// examattemptevent.DefaultAnswered holds the default value on creation for the answered field.
	examattemptevent.DefaultAnswered = examattempteventDescAnswered.Default.(int)
	// examattempteventDescFinishReason is the schema descriptor for finish_reason field.
	examattempteventDescFinishReason := examattempteventFields[10].Descriptor()
	// examattemptevent.FinishReasonValidator is a validator for the "finish_reason" field. It is called by the builders before save.
	examattemptevent.FinishReasonValidator = examattempteventDescFinishReason.Validators[0].(func(string) error)
	// examattempteventDescFeedbackSource is the schema descriptor for feedback_source field.
	examattempteventDescFeedbackSource := examattempteventFields[11].Descriptor()
	// examattemptevent.FeedbackSourceValidator is a validator for the "feedback_source" field. It is called by the builders before save.
	examattemptevent.FeedbackSourceValidator = examattempteventDescFeedbackSource.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
}
