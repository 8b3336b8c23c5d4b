package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mandator-dev/mandator/internal/quiz"
	"github.com/mandator-dev/mandator/internal/tui"
)

// ============================================================================
// Message Types
// ============================================================================

// ResetQuizMsg is sent when the user restarts from the results screen.
type ResetQuizMsg struct{}

// BackMsg is sent when the user navigates back (results opened from
// history, or the history list itself).
type BackMsg struct{}

// ============================================================================
// ResultsModel
// ============================================================================

// ResultsModel is the view model for the results screen. The same model
// serves fresh evaluations, decoded share tokens, and saved history entries;
// fromHistory controls which exit keys apply.
type ResultsModel struct {
	results     []quiz.PartyResult
	shareToken  string
	fromHistory bool
	selected    int
	showShare   bool
	width       int
	height      int
}

// NewResultsModel creates a new ResultsModel.
func NewResultsModel(results []quiz.PartyResult, shareToken string, fromHistory bool, width, height int) ResultsModel {
	return ResultsModel{
		results:     results,
		shareToken:  shareToken,
		fromHistory: fromHistory,
		width:       width,
		height:      height,
	}
}

// Update handles messages for the results view.
func (m ResultsModel) Update(msg tea.Msg) (ResultsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case tui.KeyUp, "k":
			if m.selected > 0 {
				m.selected--
			}
		case tui.KeyDown, "j":
			if m.selected < len(m.results)-1 {
				m.selected++
			}
		case "s":
			if m.shareToken != "" {
				m.showShare = !m.showShare
			}
		case "r":
			if !m.fromHistory {
				return m, func() tea.Msg { return ResetQuizMsg{} }
			}
		case tui.KeyEsc:
			if m.fromHistory {
				return m, func() tea.Msg { return BackMsg{} }
			}
			return m, func() tea.Msg { return ResetQuizMsg{} }
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View renders the results view.
func (m ResultsModel) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render("Vaše výsledky"))
	b.WriteString("\n\n")

	if len(m.results) == 0 {
		b.WriteString(tui.DimStyle.Render("Vyhodnocení nevrátilo žádné strany."))
		b.WriteString("\n")
	}

	for i, r := range m.results {
		line := fmt.Sprintf("%2d. %-28s %s %3.0f %%", i+1, r.Name, progressBar(int(r.MatchPercentage), 100, 16), r.MatchPercentage)
		if i == m.selected {
			b.WriteString(tui.SelectedStyle.Render("> " + line))
			b.WriteString("\n")
			b.WriteString(m.detail(r))
		} else {
			b.WriteString("  " + line)
			b.WriteString("\n")
		}
	}

	if m.showShare {
		b.WriteString("\n")
		b.WriteString(tui.WarningStyle.Render("Token pro sdílení:"))
		b.WriteString("\n")
		b.WriteString(tui.DimStyle.Render(m.shareToken))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.footer())

	boxed := tui.BoxStyle.
		Width(m.width - 4).
		Render(b.String())

	return centerVertically(boxed, m.height)
}

// detail renders the expanded roster card for the selected party.
func (m ResultsModel) detail(r quiz.PartyResult) string {
	var b strings.Builder
	indent := "     "

	b.WriteString(indent + tui.DimStyle.Render("Lídr: ") + r.Leader + "\n")
	b.WriteString(indent + tui.DimStyle.Render("Ideologie: ") + r.Ideology + "\n")
	b.WriteString(indent + tui.DimStyle.Render("Motto: ") + r.Motto + "\n")
	if len(r.Candidates) > 0 {
		b.WriteString(indent + tui.DimStyle.Render("Kandidáti: ") + strings.Join(r.Candidates, ", ") + "\n")
	}
	b.WriteString(indent + r.Reasoning + "\n")
	return b.String()
}

func (m ResultsModel) footer() string {
	hints := "↑/↓: Výběr"
	if m.shareToken != "" {
		hints += "   s: Sdílet"
	}
	if m.fromHistory {
		hints += "   Esc: Zpět"
	} else {
		hints += "   r: Nový kvíz"
	}
	return tui.DimStyle.Render(hints)
}
