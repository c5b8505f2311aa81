package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fancyactive/backstage/internal/catalog"
)

// handleShootsKey cycles the sub-navigation.
func (m Model) handleShootsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NextTab):
		m.shootTab = (m.shootTab + 1) % shootTabCount
	case key.Matches(msg, m.keys.PrevTab):
		m.shootTab = (m.shootTab + shootTabCount - 1) % shootTabCount
	}
	return m, nil
}

// renderShoots renders the sub-tab bar and the active sub-view.
func (m Model) renderShoots(width int) string {
	var b strings.Builder

	b.WriteString(m.renderShootTabs())
	b.WriteString("\n\n")

	switch m.shootTab {
	case TabRoster:
		b.WriteString(m.renderRoster())
	case TabGallery:
		b.WriteString(m.renderGallery(width))
	default:
		b.WriteString(m.renderSchedule())
	}

	return b.String()
}

func (m Model) renderShootTabs() string {
	styles := m.theme.Styles()

	tabs := make([]string, 0, shootTabCount)
	for t := ShootTab(0); t < shootTabCount; t++ {
		label := " " + t.Label() + " "
		if t == m.shootTab {
			tabs = append(tabs, styles.Selected.Render(label))
		} else {
			tabs = append(tabs, styles.MutedText.Render(label))
		}
	}
	return strings.Join(tabs, " ")
}

func (m Model) renderSchedule() string {
	styles := m.theme.Styles()

	var b strings.Builder
	header := padTo("拍攝日", 12) + padTo("模特兒", 8) + padTo("產品", 14) + padTo("場地", 12) + "報價"
	b.WriteString(styles.MutedText.Bold(true).Render(header))
	b.WriteString("\n")

	for _, s := range catalog.Shoots() {
		row := padTo(s.Date.Format(time.DateOnly), 12) +
			padTo(s.Model, 8) +
			padTo(truncate(s.Product, 12), 14) +
			padTo(truncate(s.Venue, 10), 12) +
			"$" + groupThousands(s.Quote.String())
		b.WriteString(styles.Text.Render(row))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderRoster() string {
	styles := m.theme.Styles()

	var b strings.Builder
	header := padTo("姓名", 8) + padTo("身高(cm)", 10) + padTo("風格", 12) + "合作產品"
	b.WriteString(styles.MutedText.Bold(true).Render(header))
	b.WriteString("\n")

	for _, p := range catalog.Models() {
		row := padTo(p.Name, 8) +
			padTo(fmt.Sprintf("%d", p.HeightCM), 10) +
			padTo(p.Style, 12) +
			p.Product
		b.WriteString(styles.Text.Render(row))
		b.WriteString("\n")
	}
	return b.String()
}

// renderGallery lays the placeholder tiles out row-major into the
// fixed column grid.
func (m Model) renderGallery(width int) string {
	tileWidth := width/catalog.GalleryColumns - 2
	if tileWidth < 14 {
		tileWidth = 14
	}

	tile := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		Width(tileWidth).
		Height(3).
		Align(lipgloss.Center, lipgloss.Center)

	var rows []string
	for start := 0; start < catalog.GalleryTiles; start += catalog.GalleryColumns {
		cells := make([]string, 0, catalog.GalleryColumns)
		for i := start; i < start+catalog.GalleryColumns && i < catalog.GalleryTiles; i++ {
			cells = append(cells, tile.Render(fmt.Sprintf("🖼\nPhoto Sample %d", i+1)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}
