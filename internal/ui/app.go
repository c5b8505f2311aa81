package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/fancyactive/backstage/internal/catalog"
	"github.com/fancyactive/backstage/internal/config"
	"github.com/fancyactive/backstage/internal/prefs"
	"github.com/fancyactive/backstage/internal/report"
	"github.com/fancyactive/backstage/internal/sales"
	"github.com/fancyactive/backstage/internal/state"
)

// View represents the current active section.
type View int

const (
	ViewHome View = iota
	ViewOverview
	ViewOrders
	ViewProduct
	ViewShoots
	ViewPromos
	ViewExport
)

// viewOption is one entry of the sidebar menu. Icons are cosmetic.
type viewOption struct {
	view  View
	icon  string
	label string
}

// viewOptions fixes the menu order. Keys 1-7 map onto this slice.
var viewOptions = []viewOption{
	{ViewHome, "🏠", "首頁"},
	{ViewOverview, "📊", "銷售概覽"},
	{ViewOrders, "📦", "訂單管理"},
	{ViewProduct, "🛍", "產品管理"},
	{ViewShoots, "📸", "模特兒拍攝"},
	{ViewPromos, "💡", "促銷建議"},
	{ViewExport, "📤", "匯出報表"},
}

// Title returns the section heading.
func (v View) Title() string {
	for _, opt := range viewOptions {
		if opt.view == v {
			return opt.label
		}
	}
	return ""
}

// ShootTab is the sub-navigation inside the shoot management section.
type ShootTab int

const (
	TabSchedule ShootTab = iota
	TabRoster
	TabGallery
)

const shootTabCount = 3

// Label returns the sub-tab heading.
func (t ShootTab) Label() string {
	switch t {
	case TabRoster:
		return "👤 模特兒名單"
	case TabGallery:
		return "🖼 圖片庫"
	default:
		return "📅 拍攝計畫表"
	}
}

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Config    *config.Config
	Logger    *zap.Logger
	DataPath  string
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea. The active
// selection (view plus shoot sub-tab) lives here and nowhere else.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	config    *config.Config
	logger    *zap.Logger
	dataPath  string
	prefsPath string

	// UI state
	theme    Theme
	keys     keyMap
	view     View
	shootTab ShootTab
	width    int
	height   int
	ready    bool

	// Data state
	snapshot state.Snapshot

	// Orders state
	orderFilter catalog.StatusFilter
	orderRow    int

	// Product form state
	form productForm

	// Export state
	exportStatus string
	exportFailed bool

	// Help overlay
	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = themeOrder[0]
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	return Model{
		ctx:       ctx,
		store:     opts.Store,
		config:    opts.Config,
		logger:    logger,
		dataPath:  opts.DataPath,
		prefsPath: prefsPath,
		theme:     GetTheme(themeName),
		keys:      DefaultKeyMap(),
		view:      ViewHome,
		shootTab:  TabSchedule,
		form:      newProductForm(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnterAltScreen}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.form.resize(msg.Width)
		return m, nil

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		if m.snapshot.LastError != nil {
			m.logger.Warn("dataset reload failed", zap.Error(m.snapshot.LastError))
		}
		m.clampOrderRow()
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.exportFailed = true
			m.exportStatus = msg.err.Error()
			m.logger.Error("export failed", zap.Error(msg.err))
		} else {
			m.exportFailed = false
			m.exportStatus = "已匯出：" + strings.Join(msg.paths, "、")
			m.logger.Info("export complete", zap.Strings("paths", msg.paths))
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes the help overlay
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	// The product form in edit mode owns the keyboard
	if m.view == ViewProduct && m.form.editing {
		return m.handleFormKey(msg)
	}

	// Global keys
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		return m, reloadCmd(m.store, m.dataPath)

	case key.Matches(msg, m.keys.Tab):
		m.selectView((m.view + 1) % View(len(viewOptions)))
		return m, nil

	case key.Matches(msg, m.keys.ShiftTab):
		m.selectView((m.view + View(len(viewOptions)) - 1) % View(len(viewOptions)))
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.selectView(ViewHome)
		return m, nil
	}

	// Number keys map straight onto the sidebar order
	if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '7' {
		m.selectView(viewOptions[s[0]-'1'].view)
		return m, nil
	}

	// View-specific keys
	switch m.view {
	case ViewOrders:
		return m.handleOrdersKey(msg)
	case ViewProduct:
		return m.handleProductKey(msg)
	case ViewShoots:
		return m.handleShootsKey(msg)
	case ViewExport:
		return m.handleExportKey(msg)
	}

	return m, nil
}

// selectView switches the active section. Reselecting the current view
// is a no-op; entering the shoot section resets its sub-tab to the
// default so no earlier sub-selection leaks across visits.
func (m *Model) selectView(v View) {
	if v == m.view {
		return
	}
	m.view = v
	if v == ViewShoots {
		m.shootTab = TabSchedule
	}
}

// renderMain renders the full UI: header, command bar, sidebar, content.
func (m Model) renderMain() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderBody())

	return b.String()
}

// renderBody renders the sidebar menu next to the active section.
func (m Model) renderBody() string {
	contentHeight := m.height - 2 // header + command bar

	sidebarWidth := 24
	if m.width < 80 {
		sidebarWidth = 18
	}
	contentWidth := m.width - sidebarWidth

	sidebar := m.renderTitledBox("Fancy Active", m.renderMenu(sidebarWidth-2), sidebarWidth, contentHeight, false)
	content := m.renderTitledBox(m.view.Title(), m.renderContent(contentWidth-4), contentWidth, contentHeight, true)

	return joinHorizontal(sidebar, content)
}

// renderContent renders the active section.
func (m Model) renderContent(width int) string {
	switch m.view {
	case ViewHome:
		return m.renderHome(width)
	case ViewOverview:
		return m.renderOverview(width)
	case ViewOrders:
		return m.renderOrders(width)
	case ViewProduct:
		return m.renderProduct(width)
	case ViewShoots:
		return m.renderShoots(width)
	case ViewPromos:
		return m.renderPromos(width)
	case ViewExport:
		return m.renderExport(width)
	default:
		return ""
	}
}

// renderMenu renders the sidebar options with the active one selected.
func (m Model) renderMenu(width int) string {
	styles := m.theme.Styles()

	var lines []string
	for i, opt := range viewOptions {
		entry := padTo(fmt.Sprintf(" %d %s %s", i+1, opt.icon, opt.label), width)
		if opt.view == m.view {
			lines = append(lines, styles.Selected.Render(entry))
		} else {
			lines = append(lines, styles.Text.Render(entry))
		}
	}
	return strings.Join(lines, "\n")
}

func (m *Model) clampOrderRow() {
	visible := len(catalog.FilterByStatus(catalog.Orders(), m.orderFilter))
	if visible == 0 {
		m.orderRow = 0
		return
	}
	if m.orderRow >= visible {
		m.orderRow = visible - 1
	}
}

// Messages

type snapshotMsg state.Snapshot

type exportDoneMsg struct {
	paths []string
	err   error
}

// Commands

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// reloadCmd re-reads the sales CSV. On failure the store keeps the
// previous table and records the error for the header to show.
func reloadCmd(store *state.Store, path string) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		table, err := sales.Load(path)
		store.Update(table, err)
		return snapshotMsg(store.Snapshot())
	}
}

func exportCSVCmd(table sales.Table, dir string) tea.Cmd {
	return func() tea.Msg {
		path, err := report.ExportCSV(table, dir)
		if err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{paths: []string{path}}
	}
}

func exportChartsCmd(table sales.Table, dir string) tea.Cmd {
	return func() tea.Msg {
		paths, err := report.ExportCharts(table, dir)
		if err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{paths: paths}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
