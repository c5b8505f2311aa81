package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	Reload     key.Binding
	Tab        key.Binding
	ShiftTab   key.Binding
	Escape     key.Binding

	// Orders
	CycleFilter key.Binding
	Up          key.Binding
	Down        key.Binding

	// Shoots
	PrevTab key.Binding
	NextTab key.Binding

	// Product form
	Edit      key.Binding
	Generate  key.Binding
	Confirm   key.Binding
	NextField key.Binding
	PrevField key.Binding

	// Export
	ExportCSV    key.Binding
	ExportCharts key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "離開"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "說明"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "切換主題"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "重新載入資料"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "下一個分頁"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "上一個分頁"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "回首頁"),
		),

		CycleFilter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "切換訂單狀態"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "上移"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "下移"),
		),

		PrevTab: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "上一個子分頁"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "下一個子分頁"),
		),

		Edit: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "編輯表單"),
		),
		Generate: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "生成文案"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "確認"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "下一個欄位"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "上一個欄位"),
		),

		ExportCSV: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "下載 CSV"),
		),
		ExportCharts: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "匯出圖表"),
		),
	}
}
