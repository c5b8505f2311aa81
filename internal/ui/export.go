package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fancyactive/backstage/internal/report"
)

// handleExportKey triggers the report exports. Retrying after a failure
// is just pressing the key again.
func (m Model) handleExportKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	exportDir := "."
	if m.config != nil {
		exportDir = m.config.ExportDir
	}

	switch {
	case key.Matches(msg, m.keys.ExportCSV):
		m.exportStatus = ""
		return m, exportCSVCmd(m.snapshot.Sales, exportDir)
	case key.Matches(msg, m.keys.ExportCharts):
		m.exportStatus = ""
		return m, exportChartsCmd(m.snapshot.Sales, exportDir)
	}
	return m, nil
}

// renderExport renders the export summary and the last result.
func (m Model) renderExport(width int) string {
	styles := m.theme.Styles()

	exportDir := "."
	if m.config != nil {
		exportDir = m.config.ExportDir
	}

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("📤 匯出銷售報表"))
	b.WriteString("\n\n")

	rows := [][2]string{
		{"資料筆數", fmt.Sprintf("%d", len(m.snapshot.Sales))},
		{"檔案名稱", report.Filename},
		{"格式", report.ContentType + "（UTF-8 含 BOM）"},
		{"匯出位置", truncate(exportDir, width-12)},
	}
	for _, r := range rows {
		b.WriteString(styles.MutedText.Render(padTo(r[0], 10)))
		b.WriteString(styles.Text.Render(r[1]))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("按 enter 下載 CSV，按 c 匯出走勢與排行榜圖表。"))
	b.WriteString("\n\n")

	if m.exportStatus != "" {
		if m.exportFailed {
			b.WriteString(styles.DangerText.Render("✗ " + m.exportStatus))
		} else {
			b.WriteString(styles.SuccessText.Render("✓ " + m.exportStatus))
		}
		b.WriteString("\n")
	}

	return b.String()
}
