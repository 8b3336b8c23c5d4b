package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mandator-dev/mandator/internal/quiz"
	"github.com/mandator-dev/mandator/internal/tui"
)

// ============================================================================
// Message Types
// ============================================================================

// AnswerChosenMsg is sent when the user picks yes or no for the displayed
// question.
type AnswerChosenMsg struct {
	Choice quiz.Choice
}

// ToggleImportantMsg is sent when the user flips the importance flag.
type ToggleImportantMsg struct{}

// ReasonChangedMsg carries an edit to the reason text of the displayed
// question.
type ReasonChangedMsg struct {
	Text string
}

// PrevQuestionMsg is sent when the user navigates back one question.
type PrevQuestionMsg struct{}

// NextQuestionMsg is sent when the user skips forward one question.
type NextQuestionMsg struct{}

// EvaluateNowMsg is sent when the user explicitly requests evaluation.
type EvaluateNowMsg struct{}

// ============================================================================
// AnsweringModel
// ============================================================================

// AnsweringModel is the view model for the question-answering screen. It
// renders from the live session; all mutations go up as messages.
type AnsweringModel struct {
	session *quiz.Session
	reason  textarea.Model
	width   int
	height  int
}

// NewAnsweringModel creates a new AnsweringModel bound to the session.
func NewAnsweringModel(session *quiz.Session, width, height int) AnsweringModel {
	ta := textarea.New()
	ta.Placeholder = "Proč je to pro vás důležité?"
	ta.CharLimit = 500
	ta.SetWidth(width - 12)
	ta.SetHeight(3)

	m := AnsweringModel{
		session: session,
		reason:  ta,
		width:   width,
		height:  height,
	}
	m.syncReason()
	return m
}

// syncReason loads the displayed question's stored reason into the textarea.
// Called whenever the cursor may have moved.
func (m *AnsweringModel) syncReason() {
	text := ""
	if a, ok := m.session.CurrentAnswer(); ok {
		text = a.Reason
	}
	m.reason.SetValue(text)
}

// Sync refreshes the view after the session mutated outside this view's
// own key handling.
func (m AnsweringModel) Sync() AnsweringModel {
	if !m.reason.Focused() {
		m.syncReason()
	}
	return m
}

// Update handles messages for the answering view.
func (m AnsweringModel) Update(msg tea.Msg) (AnsweringModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// While the reason textarea is focused, keys belong to it.
		if m.reason.Focused() {
			switch msg.String() {
			case tui.KeyEsc, tui.KeyTab:
				m.reason.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			before := m.reason.Value()
			m.reason, cmd = m.reason.Update(msg)
			if after := m.reason.Value(); after != before {
				text := after
				return m, tea.Batch(cmd, func() tea.Msg {
					return ReasonChangedMsg{Text: text}
				})
			}
			return m, cmd
		}

		switch msg.String() {
		case "a", "y":
			return m, func() tea.Msg { return AnswerChosenMsg{Choice: quiz.ChoiceYes} }
		case "n":
			return m, func() tea.Msg { return AnswerChosenMsg{Choice: quiz.ChoiceNo} }
		case "i", tui.KeySpace:
			return m, func() tea.Msg { return ToggleImportantMsg{} }
		case tui.KeyLeft:
			return m, func() tea.Msg { return PrevQuestionMsg{} }
		case tui.KeyRight:
			return m, func() tea.Msg { return NextQuestionMsg{} }
		case "e":
			if m.session.AnsweredCount() >= m.session.MinAnswers() {
				return m, func() tea.Msg { return EvaluateNowMsg{} }
			}
		case tui.KeyTab:
			if a, ok := m.session.CurrentAnswer(); ok && a.IsImportant {
				m.reason.Focus()
				return m, textarea.Blink
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.reason.SetWidth(msg.Width - 12)
	}

	return m, nil
}

// View renders the answering view.
func (m AnsweringModel) View() string {
	q, ok := m.session.Current()
	if !ok {
		return ""
	}

	total := len(m.session.Questions())
	answered := m.session.AnsweredCount()

	var b strings.Builder

	header := tui.TitleStyle.Render(fmt.Sprintf("Otázka %d/%d", m.session.Cursor()+1, total))
	b.WriteString(header)
	b.WriteString("  ")
	b.WriteString(progressBar(answered, total, 24))
	b.WriteString(tui.DimStyle.Render(fmt.Sprintf("  %d zodpovězeno", answered)))
	b.WriteString("\n\n")

	b.WriteString(q.Text)
	b.WriteString("\n\n")

	b.WriteString(m.answerLine())
	b.WriteString("\n")

	if a, ok := m.session.CurrentAnswer(); ok && a.IsImportant {
		b.WriteString("\n")
		b.WriteString(tui.WarningStyle.Render(tui.MarkImportant + " Důležité téma"))
		b.WriteString("\n")
		b.WriteString(m.reason.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.footer(answered))

	boxed := tui.BoxStyle.
		Width(m.width - 4).
		Render(b.String())

	return centerVertically(boxed, m.height)
}

// answerLine renders the yes/no state of the displayed question.
func (m AnsweringModel) answerLine() string {
	a, ok := m.session.CurrentAnswer()
	switch {
	case ok && a.Choice == quiz.ChoiceYes:
		return tui.MarkYes + " Ano"
	case ok && a.Choice == quiz.ChoiceNo:
		return tui.MarkNo + " Ne"
	default:
		return tui.MarkSkipped + tui.DimStyle.Render(" bez odpovědi")
	}
}

// footer renders the key hints, including the evaluate hint once the
// answer threshold has been reached.
func (m AnsweringModel) footer(answered int) string {
	hints := tui.DimStyle.Render("a: Ano   n: Ne   i: Důležité   ←/→: Předchozí/Přeskočit")
	if answered >= m.session.MinAnswers() {
		return hints + "   " + tui.SuccessStyle.Render("e: Vyhodnotit")
	}
	return hints + tui.DimStyle.Render(fmt.Sprintf("   (vyhodnocení od %d odpovědí)", m.session.MinAnswers()))
}
