// Package commands provides Bubble Tea command constructors for async work.
package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mandator-dev/mandator/internal/party"
	"github.com/mandator-dev/mandator/internal/quiz"
	"github.com/mandator-dev/mandator/internal/tui"
)

// GenerateQuestions returns a command that asks the question source for a
// fresh question set. The returned message carries the session generation
// that requested it.
func GenerateQuestions(src quiz.QuestionSource, election party.ElectionInfo, generation int) tea.Cmd {
	return func() tea.Msg {
		questions, err := src.GenerateQuestions(context.Background(), election)
		return tui.QuestionsGeneratedMsg{Generation: generation, Questions: questions, Err: err}
	}
}

// Evaluate returns a command that scores the answers captured in req against
// the party roster.
func Evaluate(eval quiz.Evaluator, req *quiz.EvaluationRequest, parties []party.Party, election party.ElectionInfo) tea.Cmd {
	return func() tea.Msg {
		results, err := eval.EvaluateAnswers(context.Background(), req.Answers, parties, election)
		return tui.EvaluationDoneMsg{Generation: req.Generation, Results: results, Err: err}
	}
}
