package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	sections := []helpSection{
		{
			title: "導覽",
			items: []helpItem{
				{"1-7", "切換主選單"},
				{"tab/shift+tab", "下一頁 / 上一頁"},
				{"esc", "回首頁"},
			},
		},
		{
			title: "訂單管理",
			items: []helpItem{
				{"f", "切換訂單狀態篩選"},
				{"j/k", "選取訂單"},
			},
		},
		{
			title: "產品管理",
			items: []helpItem{
				{"i", "編輯表單"},
				{"tab", "切換欄位（編輯中）"},
				{"enter", "生成文案"},
				{"esc", "完成編輯"},
			},
		},
		{
			title: "模特兒拍攝",
			items: []helpItem{
				{"h/l", "切換子分頁"},
			},
		},
		{
			title: "匯出報表",
			items: []helpItem{
				{"enter", "下載 CSV"},
				{"c", "匯出圖表 PNG"},
			},
		},
		{
			title: "一般",
			items: []helpItem{
				{"r", "重新載入資料"},
				{"T", "切換主題"},
				{"?", "開關說明"},
				{"q/ctrl+c", "離開"},
			},
		},
	}

	var b strings.Builder

	b.WriteString(styles.Text.Bold(true).Render("鍵盤操作"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	for i, section := range sections {
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")

		for _, item := range section.items {
			keyStyle := lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.theme.Warning)).
				Width(16)
			b.WriteString(keyStyle.Render(item.key))
			b.WriteString(styles.Text.Render(item.desc))
			b.WriteString("\n")
		}

		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(44)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

type helpSection struct {
	title string
	items []helpItem
}

type helpItem struct {
	key  string
	desc string
}
