package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader renders the status bar: brand, dataset stats, warnings.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	var parts []string

	parts = append(parts, bg.Render("Fancy Active 後台系統", styles.Logo))

	rows := len(m.snapshot.Sales)
	parts = append(parts,
		bg.Render("資料:", styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%d 筆", rows), styles.Text))

	if !m.snapshot.LoadedAt.IsZero() {
		parts = append(parts,
			bg.Render("載入於", styles.FaintText)+bg.Space()+
				bg.Render(m.snapshot.LoadedAt.Format("15:04:05"), styles.MutedText))
	}

	if m.snapshot.LastError != nil {
		parts = append(parts, bg.Render("重新載入失敗（沿用舊資料）", styles.DangerText))
	}

	parts = append(parts, bg.Render(m.theme.Name, styles.FaintText))

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		Render(bg.Join(parts, "  "))
}

// renderCommandBar renders the footer hint line for the active view.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	hints := [][2]string{
		{"1-7", "切換"},
		{"tab", "下一頁"},
	}

	switch m.view {
	case ViewOrders:
		hints = append(hints, [2]string{"f", "訂單狀態"}, [2]string{"j/k", "選取"})
	case ViewProduct:
		if m.form.editing {
			hints = append(hints, [2]string{"tab", "欄位"}, [2]string{"enter", "生成"}, [2]string{"esc", "完成編輯"})
		} else {
			hints = append(hints, [2]string{"i", "編輯"}, [2]string{"g", "生成文案"})
		}
	case ViewShoots:
		hints = append(hints, [2]string{"h/l", "子分頁"})
	case ViewExport:
		hints = append(hints, [2]string{"enter", "下載 CSV"}, [2]string{"c", "匯出圖表"})
	}

	hints = append(hints, [2]string{"r", "重載"}, [2]string{"T", "主題"}, [2]string{"?", "說明"}, [2]string{"q", "離開"})

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts,
			bg.Render("<"+h[0]+">", styles.AccentText)+bg.Space()+
				bg.Render(h[1], styles.MutedText))
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Width(m.width).
		Render(bg.Join(parts, "  "))
}
