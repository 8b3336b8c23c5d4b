// Package app provides the main TUI application that wires all views together.
package app

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mandator-dev/mandator/internal/log"
	"github.com/mandator-dev/mandator/internal/quiz"
	"github.com/mandator-dev/mandator/internal/share"
	"github.com/mandator-dev/mandator/internal/tui"
	"github.com/mandator-dev/mandator/internal/tui/commands"
	"github.com/mandator-dev/mandator/internal/tui/views"
)

// App is the main TUI application that wires all views together. The quiz
// session is the single source of truth for the application phase; views
// only render it and translate key presses into messages.
type App struct {
	model *tui.Model

	// View models
	welcomeView   views.WelcomeModel
	answeringView views.AnsweringModel
	resultsView   views.ResultsModel
	historyView   views.HistoryModel
	errorView     views.ErrorModel

	spinner spinner.Model
}

// New creates a new App. A non-empty shareToken is decoded and opened as the
// initial screen; an invalid token is logged and ignored.
func New(model *tui.Model, shareToken string) *App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED"))

	a := &App{
		model:   model,
		spinner: sp,
	}

	if shareToken != "" {
		if matches, ok := share.Decode(shareToken); ok {
			model.Session.OpenShared(matches)
		} else {
			_ = model.Logger.Append(log.LogEvent{Event: log.EventShareTokenInvalid})
		}
	}

	switch model.Session.State() {
	case quiz.StateResults:
		a.resultsView = a.newResultsView(model.Session.Results(), false)
	default:
		a.welcomeView = views.NewWelcomeModel(model.Cfg.Election, model.History.Len() > 0, model.Width, model.Height)
	}

	return a
}

// Init returns the initial command for the TUI.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the application state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.model.Width = msg.Width
		a.model.Height = msg.Height
		return a, a.routeToActiveView(msg)

	case tea.KeyMsg:
		if msg.String() == tui.KeyCtrlC {
			if a.model.CtrlCPending {
				return a, tea.Quit
			}
			a.model.CtrlCPending = true
			return a, tea.Tick(time.Second, func(time.Time) tea.Msg {
				return tui.CtrlCResetMsg{}
			})
		}
		a.model.CtrlCPending = false

	case tui.CtrlCResetMsg:
		a.model.CtrlCPending = false
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		if a.loading() {
			return a, cmd
		}
		return a, nil

	// ------------------------------------------------------------------
	// Welcome
	// ------------------------------------------------------------------
	case views.StartQuizMsg:
		if gen, ok := a.model.Session.Start(); ok {
			return a, tea.Batch(
				a.spinner.Tick,
				commands.GenerateQuestions(a.model.Source, a.model.Cfg.Election, gen),
			)
		}
		return a, nil

	case views.OpenHistoryMsg:
		if a.model.Session.ViewHistory() {
			a.historyView = views.NewHistoryModel(a.model.History.Items(), a.model.Width, a.model.Height)
		}
		return a, nil

	// ------------------------------------------------------------------
	// Question generation
	// ------------------------------------------------------------------
	case tui.QuestionsGeneratedMsg:
		a.model.Session.ApplyQuestions(msg.Generation, msg.Questions, msg.Err)
		switch a.model.Session.State() {
		case quiz.StateAnswering:
			a.answeringView = views.NewAnsweringModel(a.model.Session, a.model.Width, a.model.Height)
		case quiz.StateError:
			a.errorView = views.NewErrorModel(a.model.Session.ErrorMessage(), a.model.Width, a.model.Height)
		}
		return a, nil

	// ------------------------------------------------------------------
	// Answering
	// ------------------------------------------------------------------
	case views.AnswerChosenMsg:
		req := a.model.Session.Answer(msg.Choice)
		a.answeringView = a.answeringView.Sync()
		return a, a.startEvaluation(req)

	case views.ToggleImportantMsg:
		req := a.model.Session.ToggleImportant()
		a.answeringView = a.answeringView.Sync()
		return a, a.startEvaluation(req)

	case views.ReasonChangedMsg:
		req := a.model.Session.SetReason(msg.Text)
		return a, a.startEvaluation(req)

	case views.PrevQuestionMsg:
		a.model.Session.Prev()
		a.answeringView = a.answeringView.Sync()
		return a, nil

	case views.NextQuestionMsg:
		a.model.Session.Next()
		a.answeringView = a.answeringView.Sync()
		return a, nil

	case views.EvaluateNowMsg:
		return a, a.startEvaluation(a.model.Session.RequestEvaluation())

	// ------------------------------------------------------------------
	// Evaluation
	// ------------------------------------------------------------------
	case tui.EvaluationDoneMsg:
		a.model.Session.ApplyResults(msg.Generation, msg.Results, msg.Err)
		switch a.model.Session.State() {
		case quiz.StateResults:
			a.resultsView = a.newResultsView(a.model.Session.Results(), false)
		case quiz.StateError:
			a.errorView = views.NewErrorModel(a.model.Session.ErrorMessage(), a.model.Width, a.model.Height)
		}
		return a, nil

	// ------------------------------------------------------------------
	// History
	// ------------------------------------------------------------------
	case views.OpenHistoryItemMsg:
		if item, ok := a.model.History.At(msg.Index); ok {
			a.model.Session.SelectHistory(msg.Index)
			a.resultsView = a.newResultsView(item.Results, true)
		}
		return a, nil

	case views.BackMsg:
		a.model.Session.Back()
		if a.model.Session.State() == quiz.StateWelcome {
			a.welcomeView = views.NewWelcomeModel(a.model.Cfg.Election, a.model.History.Len() > 0, a.model.Width, a.model.Height)
		}
		return a, nil

	case views.ResetQuizMsg:
		a.model.Session.Reset()
		a.welcomeView = views.NewWelcomeModel(a.model.Cfg.Election, a.model.History.Len() > 0, a.model.Width, a.model.Height)
		return a, nil
	}

	return a, a.routeToActiveView(msg)
}

// routeToActiveView forwards a message to the view owning the current state.
func (a *App) routeToActiveView(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.model.Session.State() {
	case quiz.StateWelcome:
		a.welcomeView, cmd = a.welcomeView.Update(msg)
	case quiz.StateAnswering:
		a.answeringView, cmd = a.answeringView.Update(msg)
	case quiz.StateResults:
		a.resultsView, cmd = a.resultsView.Update(msg)
	case quiz.StateHistory:
		if a.model.Session.SelectedHistory() >= 0 {
			a.resultsView, cmd = a.resultsView.Update(msg)
		} else {
			a.historyView, cmd = a.historyView.Update(msg)
		}
	case quiz.StateError:
		a.errorView, cmd = a.errorView.Update(msg)
	}
	return cmd
}

// startEvaluation kicks off the asynchronous evaluation for a non-nil
// request.
func (a *App) startEvaluation(req *quiz.EvaluationRequest) tea.Cmd {
	if req == nil {
		return nil
	}
	return tea.Batch(
		a.spinner.Tick,
		commands.Evaluate(a.model.Evaluator, req, a.model.Roster.Parties(), a.model.Cfg.Election),
	)
}

// newResultsView builds a results view with a share token for the given
// result set. Encoding failures just drop the share option.
func (a *App) newResultsView(results []quiz.PartyResult, fromHistory bool) views.ResultsModel {
	token, err := share.Encode(results)
	if err != nil {
		token = ""
	}
	return views.NewResultsModel(results, token, fromHistory, a.model.Width, a.model.Height)
}

// loading reports whether a background phase is running.
func (a *App) loading() bool {
	state := a.model.Session.State()
	return state == quiz.StateGeneratingQuestions || state == quiz.StateEvaluating
}

// View renders the current application state.
func (a *App) View() string {
	var content string

	switch a.model.Session.State() {
	case quiz.StateWelcome:
		content = a.welcomeView.View()
	case quiz.StateGeneratingQuestions:
		content = a.loadingView("Generuji otázky...")
	case quiz.StateAnswering:
		content = a.answeringView.View()
	case quiz.StateEvaluating:
		content = a.loadingView("Vyhodnocuji vaše odpovědi...")
	case quiz.StateResults:
		content = a.resultsView.View()
	case quiz.StateHistory:
		if a.model.Session.SelectedHistory() >= 0 {
			content = a.resultsView.View()
		} else {
			content = a.historyView.View()
		}
	case quiz.StateError:
		content = a.errorView.View()
	}

	if a.model.CtrlCPending {
		content += "\n" + tui.WarningStyle.Render("Press Ctrl+C again to exit")
	}

	return content
}

// loadingView renders a centered spinner panel for the background phases.
func (a *App) loadingView(label string) string {
	var b strings.Builder
	b.WriteString(a.spinner.View())
	b.WriteString(" ")
	b.WriteString(label)
	b.WriteString("\n\n")
	b.WriteString(tui.DimStyle.Render("Ctrl+C: Exit"))

	boxed := tui.BoxStyle.
		Width(a.model.Width - 4).
		Render(b.String())

	padding := (a.model.Height - lipgloss.Height(boxed)) / 3
	if padding > 0 {
		boxed = strings.Repeat("\n", padding) + boxed
	}
	return boxed
}
