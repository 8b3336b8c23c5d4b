package views

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mandator-dev/mandator/internal/tui"
)

// ============================================================================
// ErrorModel
// ============================================================================

// ErrorModel is the view model for the error screen.
type ErrorModel struct {
	message string
	width   int
	height  int
}

// NewErrorModel creates a new ErrorModel.
func NewErrorModel(message string, width, height int) ErrorModel {
	return ErrorModel{
		message: message,
		width:   width,
		height:  height,
	}
}

// Update handles messages for the error view.
func (m ErrorModel) Update(msg tea.Msg) (ErrorModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case tui.KeyEnter, "r", tui.KeyEsc:
			return m, func() tea.Msg { return ResetQuizMsg{} }
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View renders the error view.
func (m ErrorModel) View() string {
	var b strings.Builder

	b.WriteString(tui.ErrorStyle.Render("Něco se pokazilo"))
	b.WriteString("\n\n")
	b.WriteString(m.message)
	b.WriteString("\n\n")
	b.WriteString(tui.DimStyle.Render("Enter: Zkusit znovu"))

	boxed := tui.BoxStyle.
		Width(m.width - 4).
		Render(b.String())

	return centerVertically(boxed, m.height)
}
