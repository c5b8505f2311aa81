package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHome renders the banner and the three summary cards.
func (m Model) renderHome(width int) string {
	styles := m.theme.Styles()
	table := m.snapshot.Sales

	banner := lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Accent)).
		Foreground(lipgloss.Color(m.theme.SelectionText)).
		Width(width).
		Align(lipgloss.Center).
		Padding(1, 0).
		Render("Fancy Active 後台系統\n對肌膚溫柔，對內心堅定")

	cards := []struct {
		label string
		value string
	}{
		{"本月銷售額", groupThousands(table.TotalRevenue().String()) + " 元"},
		{"熱銷商品", table.HottestProduct()},
		{"庫存警示數量", fmt.Sprintf("%d", table.LowStockCount())},
	}

	cardWidth := width/3 - 2
	if cardWidth < 12 {
		cardWidth = 12
	}

	rendered := make([]string, 0, len(cards))
	for _, c := range cards {
		body := styles.MutedText.Render(c.label) + "\n" +
			styles.Text.Bold(true).Render(truncate(c.value, cardWidth-2))
		card := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(m.theme.Border)).
			Width(cardWidth).
			Align(lipgloss.Center).
			Padding(0, 1).
			Render(body)
		rendered = append(rendered, card)
	}

	var b strings.Builder
	b.WriteString(banner)
	b.WriteString("\n\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	return b.String()
}
