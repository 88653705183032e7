package exam

import (
	engine "github.com/edcenter/mocktest/internal/exam"
)

// SnapshotMsg carries a state published by the controller.
type SnapshotMsg struct {
	Snapshot engine.Snapshot
}

// FallbackPromptMsg asks the student whether the built-in question bank
// may replace a failed generation. Exactly one value must be sent on Reply.
type FallbackPromptMsg struct {
	Cause error
	Reply chan<- bool
}

// commandErrMsg reports a rejected controller command.
type commandErrMsg struct {
	Err error
}
