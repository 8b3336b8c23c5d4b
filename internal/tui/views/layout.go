package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mandator-dev/mandator/internal/tui"
)

// centerVertically pads content toward the upper third of the screen.
func centerVertically(content string, height int) string {
	contentHeight := lipgloss.Height(content)
	if height > contentHeight {
		padding := (height - contentHeight) / 3
		if padding > 0 {
			content = strings.Repeat("\n", padding) + content
		}
	}
	return content
}

// progressBar renders a fixed-width done/total bar.
func progressBar(done, total, width int) string {
	if total <= 0 || width <= 0 {
		return ""
	}
	filled := done * width / total
	if filled > width {
		filled = width
	}
	return tui.ProgressFullStyle.Render(strings.Repeat("█", filled)) +
		tui.ProgressEmptyStyle.Render(strings.Repeat("░", width-filled))
}
