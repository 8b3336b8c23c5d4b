package quiz

import (
	"github.com/mandator-dev/mandator/internal/log"
)

// State is the current phase of a quiz session.
type State int

const (
	StateWelcome State = iota
	StateGeneratingQuestions
	StateAnswering
	StateEvaluating
	StateResults
	StateHistory
	StateError
)

// DefaultMinAnswers is the number of answered questions required before an
// evaluation may run.
const DefaultMinAnswers = 30

// EvaluationRequest describes an evaluation the caller must now run
// asynchronously. Generation ties the eventual completion back to the
// session attempt that requested it.
type EvaluationRequest struct {
	Generation int
	Answers    []Answer
}

// ResultSaver persists a completed evaluation. Implementations swallow
// storage failures: losing history is tolerable, losing the result is not.
type ResultSaver interface {
	SaveResult(results []PartyResult, answers []Answer)
}

// Session is the quiz state machine. It is synchronous and single-owner:
// the two asynchronous boundaries (question generation and evaluation) are
// driven from outside via Start/RequestEvaluation, which hand out the
// current generation, and ApplyQuestions/ApplyResults, which discard
// completions whose generation no longer matches.
type Session struct {
	state      State
	generation int

	questions []Question
	ledger    *Ledger
	cursor    int
	results   []PartyResult
	errMsg    string

	selectedHistory int

	minAnswers int
	enricher   *Enricher
	saver      ResultSaver
	logger     *log.Logger
}

// NewSession creates a Session in the welcome state.
func NewSession(minAnswers int, enricher *Enricher, saver ResultSaver, logger *log.Logger) *Session {
	if minAnswers <= 0 {
		minAnswers = DefaultMinAnswers
	}
	return &Session{
		state:           StateWelcome,
		ledger:          NewLedger(),
		selectedHistory: -1,
		minAnswers:      minAnswers,
		enricher:        enricher,
		saver:           saver,
		logger:          logger,
	}
}

// State returns the current session state.
func (s *Session) State() State { return s.state }

// Generation returns the current session generation. Completions carrying
// an older generation are discarded.
func (s *Session) Generation() int { return s.generation }

// MinAnswers returns the evaluation threshold.
func (s *Session) MinAnswers() int { return s.minAnswers }

// Questions returns the session's question list.
func (s *Session) Questions() []Question { return s.questions }

// Cursor returns the index of the currently displayed question.
func (s *Session) Cursor() int { return s.cursor }

// Current returns the currently displayed question.
func (s *Session) Current() (Question, bool) {
	if s.cursor < 0 || s.cursor >= len(s.questions) {
		return Question{}, false
	}
	return s.questions[s.cursor], true
}

// CurrentAnswer returns the ledger entry for the displayed question, if any.
func (s *Session) CurrentAnswer() (Answer, bool) {
	q, ok := s.Current()
	if !ok {
		return Answer{}, false
	}
	return s.ledger.Get(q.ID)
}

// AnsweredCount returns the number of questions with a choice made.
func (s *Session) AnsweredCount() int { return s.ledger.AnsweredCount() }

// Results returns the enriched results of the last evaluation.
func (s *Session) Results() []PartyResult { return s.results }

// ErrorMessage returns the message carried by the error state.
func (s *Session) ErrorMessage() string { return s.errMsg }

// Start begins a new quiz: WELCOME -> GENERATING_QUESTIONS. The returned
// generation must be attached to the asynchronous question fetch so its
// completion can be matched in ApplyQuestions. Returns ok=false if the
// session is not on the welcome screen.
func (s *Session) Start() (int, bool) {
	if s.state != StateWelcome {
		return 0, false
	}
	s.state = StateGeneratingQuestions
	_ = s.logger.Append(log.LogEvent{Event: log.EventQuizStarted, Generation: s.generation})
	return s.generation, true
}

// ApplyQuestions delivers the question source's completion. Stale
// completions (wrong generation, or the session already moved on) are
// dropped silently.
func (s *Session) ApplyQuestions(gen int, texts []string, err error) {
	if gen != s.generation || s.state != StateGeneratingQuestions {
		_ = s.logger.Append(log.LogEvent{Event: log.EventStaleResultDropped, Generation: gen})
		return
	}

	if err != nil {
		s.errMsg = err.Error()
		s.state = StateError
		_ = s.logger.Append(log.LogEvent{Event: log.EventQuestionsFailed, Generation: gen, Error: err.Error()})
		return
	}

	s.questions = make([]Question, len(texts))
	for i, text := range texts {
		s.questions[i] = Question{ID: i, Text: text}
	}
	s.cursor = 0
	s.state = StateAnswering
	_ = s.logger.Append(log.LogEvent{Event: log.EventQuestionsGenerated, Generation: gen, Questions: len(texts)})
}

// Answer records a choice for the displayed question and moves forward one
// question unless already at the last. The returned request is non-nil when
// the answer tripped auto-evaluation.
func (s *Session) Answer(choice Choice) *EvaluationRequest {
	q, ok := s.Current()
	if s.state != StateAnswering || !ok {
		return nil
	}
	s.ledger.SetChoice(q, choice)
	if s.cursor < len(s.questions)-1 {
		s.cursor++
	}
	return s.maybeEvaluate()
}

// ToggleImportant flips the importance flag on the displayed question
// without moving the cursor.
func (s *Session) ToggleImportant() *EvaluationRequest {
	q, ok := s.Current()
	if s.state != StateAnswering || !ok {
		return nil
	}
	s.ledger.ToggleImportant(q)
	return s.maybeEvaluate()
}

// SetReason replaces the reason text on the displayed question's entry.
// A question without an entry yet is left untouched.
func (s *Session) SetReason(text string) *EvaluationRequest {
	q, ok := s.Current()
	if s.state != StateAnswering || !ok {
		return nil
	}
	s.ledger.SetReason(q.ID, text)
	return s.maybeEvaluate()
}

// Prev moves the cursor back one question, clamped at the first.
func (s *Session) Prev() {
	if s.state == StateAnswering && s.cursor > 0 {
		s.cursor--
	}
}

// Next moves the cursor forward one question, clamped at the last.
func (s *Session) Next() {
	if s.state == StateAnswering && s.cursor < len(s.questions)-1 {
		s.cursor++
	}
}

// RequestEvaluation starts an evaluation on the user's explicit request.
// Below the answer threshold the request is refused (nil), not an error.
func (s *Session) RequestEvaluation() *EvaluationRequest {
	if s.state != StateAnswering || s.ledger.AnsweredCount() < s.minAnswers {
		return nil
	}
	return s.beginEvaluation()
}

// maybeEvaluate re-checks the auto-evaluation condition after a ledger
// mutation: still answering, last question answered, threshold met. The
// check is level-triggered; it cannot re-fire because a hit moves the
// session out of the answering state.
func (s *Session) maybeEvaluate() *EvaluationRequest {
	if s.state != StateAnswering || len(s.questions) == 0 {
		return nil
	}
	last, ok := s.ledger.Get(s.questions[len(s.questions)-1].ID)
	if !ok || !last.Answered() {
		return nil
	}
	if s.ledger.AnsweredCount() < s.minAnswers {
		return nil
	}
	return s.beginEvaluation()
}

func (s *Session) beginEvaluation() *EvaluationRequest {
	answers := s.ledger.ExportAnswered()
	s.state = StateEvaluating
	_ = s.logger.Append(log.LogEvent{Event: log.EventEvaluationStarted, Generation: s.generation, Answered: len(answers)})
	return &EvaluationRequest{Generation: s.generation, Answers: answers}
}

// ApplyResults delivers the evaluator's completion. On success the matches
// are enriched, shown, and appended to history. Stale completions are
// dropped silently.
func (s *Session) ApplyResults(gen int, matches []MatchResult, err error) {
	if gen != s.generation || s.state != StateEvaluating {
		_ = s.logger.Append(log.LogEvent{Event: log.EventStaleResultDropped, Generation: gen})
		return
	}

	if err != nil {
		s.errMsg = err.Error()
		s.state = StateError
		_ = s.logger.Append(log.LogEvent{Event: log.EventEvaluationFailed, Generation: gen, Error: err.Error()})
		return
	}

	s.results = s.enricher.Enrich(matches)
	s.state = StateResults
	_ = s.logger.Append(log.LogEvent{Event: log.EventEvaluationComplete, Generation: gen, Results: len(s.results)})

	if s.saver != nil {
		s.saver.SaveResult(s.results, s.ledger.ExportAnswered())
	}
}

// OpenShared short-circuits the welcome screen into the results view for a
// decoded share token. Shared results are displayed, not saved to history.
func (s *Session) OpenShared(matches []MatchResult) bool {
	if s.state != StateWelcome {
		return false
	}
	s.results = s.enricher.Enrich(matches)
	s.state = StateResults
	_ = s.logger.Append(log.LogEvent{Event: log.EventShareTokenOpened, Results: len(s.results)})
	return true
}

// ViewHistory switches WELCOME -> HISTORY without touching quiz state.
func (s *Session) ViewHistory() bool {
	if s.state != StateWelcome {
		return false
	}
	s.state = StateHistory
	return true
}

// Back leaves the history view: a selected item first, then back to the
// welcome screen.
func (s *Session) Back() {
	if s.state != StateHistory {
		return
	}
	if s.selectedHistory >= 0 {
		s.selectedHistory = -1
		return
	}
	s.state = StateWelcome
}

// SelectHistory marks the history item at index i as being viewed.
func (s *Session) SelectHistory(i int) {
	if s.state == StateHistory {
		s.selectedHistory = i
	}
}

// SelectedHistory returns the index of the viewed history item, -1 if none.
func (s *Session) SelectedHistory() int { return s.selectedHistory }

// Reset clears everything and returns to the welcome screen. The
// generation bump makes any in-flight completion stale.
func (s *Session) Reset() {
	s.generation++
	s.questions = nil
	s.ledger = NewLedger()
	s.cursor = 0
	s.results = nil
	s.errMsg = ""
	s.selectedHistory = -1
	s.state = StateWelcome
	_ = s.logger.Append(log.LogEvent{Event: log.EventSessionReset, Generation: s.generation})
}
