package ui

import (
	"fmt"
	"strings"
)

// Chart layout: the date gutter and the count/amount suffix flank the
// bars, leaving the rest of the pane width to the bar itself.
const (
	chartDateWidth  = 6
	chartLabelWidth = 14
)

// renderOverview renders the revenue trend and the product ranking as
// text charts.
func (m Model) renderOverview(width int) string {
	styles := m.theme.Styles()
	table := m.snapshot.Sales

	var b strings.Builder

	b.WriteString(styles.Text.Bold(true).Render("📈 銷售額走勢"))
	b.WriteString("\n")

	points := table.RevenueByDate()
	if len(points) == 0 {
		b.WriteString(styles.MutedText.Render("（無資料）"))
		b.WriteString("\n")
	} else {
		maxRevenue := 0.0
		for _, p := range points {
			if v := p.Revenue.InexactFloat64(); v > maxRevenue {
				maxRevenue = v
			}
		}
		barWidth := width - chartDateWidth - 14
		if barWidth < 8 {
			barWidth = 8
		}
		for _, p := range points {
			bar := barLine(p.Revenue.InexactFloat64(), maxRevenue, barWidth)
			b.WriteString(styles.MutedText.Render(p.Date.Format("01-02")))
			b.WriteString(" ")
			b.WriteString(styles.AccentText.Render(bar))
			b.WriteString(" ")
			b.WriteString(styles.Text.Render(groupThousands(p.Revenue.String())))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.Text.Bold(true).Render("🔥 熱銷商品排行榜"))
	b.WriteString("\n")

	freqs := table.ProductFrequencies()
	if len(freqs) == 0 {
		b.WriteString(styles.MutedText.Render("（無資料）"))
		return b.String()
	}

	maxCount := freqs[0].Count
	barWidth := width - chartLabelWidth - 8
	if barWidth < 8 {
		barWidth = 8
	}
	for _, f := range freqs {
		bar := barLine(float64(f.Count), float64(maxCount), barWidth)
		b.WriteString(padTo(truncate(f.Product, chartLabelWidth), chartLabelWidth))
		b.WriteString(" ")
		b.WriteString(styles.WarningText.Render(bar))
		b.WriteString(" ")
		b.WriteString(styles.Text.Render(fmt.Sprintf("%d", f.Count)))
		b.WriteString("\n")
	}

	return b.String()
}
