package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mandator-dev/mandator/internal/history"
	"github.com/mandator-dev/mandator/internal/tui"
)

// ============================================================================
// Message Types
// ============================================================================

// OpenHistoryItemMsg is sent when the user opens a saved result.
type OpenHistoryItemMsg struct {
	Index int
}

// ============================================================================
// HistoryModel
// ============================================================================

// HistoryModel is the view model for the saved results list.
type HistoryModel struct {
	items    []history.SavedResult
	selected int
	width    int
	height   int
}

// NewHistoryModel creates a new HistoryModel.
func NewHistoryModel(items []history.SavedResult, width, height int) HistoryModel {
	return HistoryModel{
		items:  items,
		width:  width,
		height: height,
	}
}

// Update handles messages for the history view.
func (m HistoryModel) Update(msg tea.Msg) (HistoryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case tui.KeyUp, "k":
			if m.selected > 0 {
				m.selected--
			}
		case tui.KeyDown, "j":
			if m.selected < len(m.items)-1 {
				m.selected++
			}
		case tui.KeyEnter:
			if len(m.items) > 0 {
				index := m.selected
				return m, func() tea.Msg { return OpenHistoryItemMsg{Index: index} }
			}
		case tui.KeyEsc:
			return m, func() tea.Msg { return BackMsg{} }
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View renders the history view.
func (m HistoryModel) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render("Uložené výsledky"))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(tui.DimStyle.Render("Zatím žádné uložené výsledky."))
		b.WriteString("\n")
	}

	for i, item := range m.items {
		top := "-"
		if len(item.Results) > 0 {
			top = fmt.Sprintf("%s (%.0f %%)", item.Results[0].Name, item.Results[0].MatchPercentage)
		}
		line := fmt.Sprintf("%-22s %s", item.Date, top)
		if i == m.selected {
			b.WriteString(tui.SelectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(tui.DimStyle.Render("Enter: Otevřít   Esc: Zpět"))

	boxed := tui.BoxStyle.
		Width(m.width - 4).
		Render(b.String())

	return centerVertically(boxed, m.height)
}
