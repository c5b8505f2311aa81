package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fancyactive/backstage/internal/catalog"
)

// handleOrdersKey processes keyboard input for the order view.
func (m Model) handleOrdersKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.CycleFilter):
		m.orderFilter = m.orderFilter.Next()
		m.orderRow = 0

	case key.Matches(msg, m.keys.Down):
		visible := len(catalog.FilterByStatus(catalog.Orders(), m.orderFilter))
		if m.orderRow < visible-1 {
			m.orderRow++
		}

	case key.Matches(msg, m.keys.Up):
		if m.orderRow > 0 {
			m.orderRow--
		}
	}

	return m, nil
}

// renderOrders renders the filtered order table.
func (m Model) renderOrders(width int) string {
	styles := m.theme.Styles()
	orders := catalog.FilterByStatus(catalog.Orders(), m.orderFilter)

	var b strings.Builder

	b.WriteString(styles.Text.Bold(true).Render("📦 訂單管理"))
	b.WriteString("  ")
	b.WriteString(styles.MutedText.Render("狀態："))
	b.WriteString(styles.AccentText.Render(m.orderFilter.Label()))
	b.WriteString("\n\n")

	header := padTo("訂單編號", 10) + padTo("客戶", 10) + padTo("商品", 16) + padTo("數量", 6) + "狀態"
	b.WriteString(styles.MutedText.Bold(true).Render(header))
	b.WriteString("\n")

	if len(orders) == 0 {
		b.WriteString(styles.MutedText.Render("（此狀態沒有訂單）"))
		return b.String()
	}

	for i, o := range orders {
		row := padTo(o.ID, 10) +
			padTo(truncate(o.Customer, 8), 10) +
			padTo(truncate(o.Product, 14), 16) +
			padTo(fmt.Sprintf("%d", o.Quantity), 6)

		badge := styles.StatusStyle(o.Status.String()).Render(o.Status.Label())
		if i == m.orderRow {
			b.WriteString(styles.Selected.Render(row))
		} else {
			b.WriteString(styles.Text.Render(row))
		}
		b.WriteString(" ")
		b.WriteString(badge)
		b.WriteString("\n")
	}

	return b.String()
}
