// Package tui implements the terminal user interface using Bubble Tea.
package tui

import "github.com/mandator-dev/mandator/internal/quiz"

// ============================================================================
// Async Result Messages
// ============================================================================

// QuestionsGeneratedMsg carries the outcome of question generation.
// Generation ties the message to the session run that requested it so
// late arrivals after a reset can be dropped.
type QuestionsGeneratedMsg struct {
	Generation int
	Questions  []string
	Err        error
}

// EvaluationDoneMsg carries the outcome of answer evaluation.
type EvaluationDoneMsg struct {
	Generation int
	Results    []quiz.MatchResult
	Err        error
}

// ============================================================================
// Utility Messages
// ============================================================================

// ErrorMsg is a generic error message for unrecoverable errors.
type ErrorMsg struct {
	Err error
}
