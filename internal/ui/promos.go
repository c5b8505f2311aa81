package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fancyactive/backstage/internal/catalog"
)

// renderPromos renders each suggestion as a styled block, in order.
func (m Model) renderPromos(width int) string {
	styles := m.theme.Styles()

	block := lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Accent)).
		Foreground(lipgloss.Color(m.theme.SelectionText)).
		Width(width - 2).
		Padding(0, 2)

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("💡 AI 促銷建議（假資料示範）"))
	b.WriteString("\n\n")

	for _, s := range catalog.Suggestions() {
		b.WriteString(block.Render(s))
		b.WriteString("\n\n")
	}
	return b.String()
}
