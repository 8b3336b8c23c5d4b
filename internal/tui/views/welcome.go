// Package views provides TUI view components for the Mandator application.
package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mandator-dev/mandator/internal/party"
	"github.com/mandator-dev/mandator/internal/tui"
)

// ============================================================================
// Message Types
// ============================================================================

// StartQuizMsg is sent when the user chooses to start a new quiz.
type StartQuizMsg struct{}

// OpenHistoryMsg is sent when the user opens the saved results list.
type OpenHistoryMsg struct{}

// ============================================================================
// WelcomeModel
// ============================================================================

// menu entries on the welcome screen
const (
	welcomeStart = iota
	welcomeHistory
)

// WelcomeModel is the view model for the welcome screen.
type WelcomeModel struct {
	election   party.ElectionInfo
	hasHistory bool
	selected   int
	width      int
	height     int
}

// NewWelcomeModel creates a new WelcomeModel.
func NewWelcomeModel(election party.ElectionInfo, hasHistory bool, width, height int) WelcomeModel {
	return WelcomeModel{
		election:   election,
		hasHistory: hasHistory,
		width:      width,
		height:     height,
	}
}

// Update handles messages for the welcome view.
func (m WelcomeModel) Update(msg tea.Msg) (WelcomeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case tui.KeyUp, "k":
			if m.selected > 0 {
				m.selected--
			}
		case tui.KeyDown, "j":
			if m.hasHistory && m.selected < welcomeHistory {
				m.selected++
			}
		case tui.KeyEnter:
			if m.selected == welcomeHistory {
				return m, func() tea.Msg { return OpenHistoryMsg{} }
			}
			return m, func() tea.Msg { return StartQuizMsg{} }
		case "h", "H":
			if m.hasHistory {
				return m, func() tea.Msg { return OpenHistoryMsg{} }
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View renders the welcome view.
func (m WelcomeModel) View() string {
	var b strings.Builder

	header := tui.TitleStyle.Render(fmt.Sprintf("Mandátor %d", m.election.Year))
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(tui.DimStyle.Render(m.election.Name))
	b.WriteString("\n\n")

	b.WriteString("Odpovězte na sérii otázek ano/ne a zjistěte,\n")
	b.WriteString("která strana se nejvíce shoduje s vašimi názory.\n\n")

	items := []string{"Spustit kalkulačku"}
	if m.hasHistory {
		items = append(items, "Uložené výsledky")
	}
	for i, item := range items {
		if i == m.selected {
			b.WriteString(tui.SelectedStyle.Render("> " + item))
		} else {
			b.WriteString("  " + item)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	footer := tui.DimStyle.Render("Enter: Select       Ctrl+C: Exit")
	b.WriteString(footer)

	boxed := tui.BoxStyle.
		Width(m.width - 4).
		Render(b.String())

	return centerVertically(boxed, m.height)
}
