package tui

import (
	"github.com/mandator-dev/mandator/internal/config"
	"github.com/mandator-dev/mandator/internal/history"
	"github.com/mandator-dev/mandator/internal/log"
	"github.com/mandator-dev/mandator/internal/party"
	"github.com/mandator-dev/mandator/internal/quiz"
)

// Model holds application-wide state shared across views.
type Model struct {
	Cfg       *config.Config
	Session   *quiz.Session
	History   *history.Store
	Source    quiz.QuestionSource
	Evaluator quiz.Evaluator
	Roster    *party.Roster
	Logger    *log.Logger

	// Terminal dimensions
	Width  int
	Height int

	// CtrlCPending is true after a first Ctrl+C, awaiting confirmation.
	CtrlCPending bool
}

// NewModel creates a Model with sensible defaults before the first
// WindowSizeMsg arrives.
func NewModel(cfg *config.Config, session *quiz.Session, store *history.Store, source quiz.QuestionSource, evaluator quiz.Evaluator, roster *party.Roster, logger *log.Logger) *Model {
	return &Model{
		Cfg:       cfg,
		Session:   session,
		History:   store,
		Source:    source,
		Evaluator: evaluator,
		Roster:    roster,
		Logger:    logger,
		Width:     80,
		Height:    24,
	}
}

// CtrlCResetMsg clears the Ctrl+C confirmation after its timeout.
type CtrlCResetMsg struct{}
