// Package ui provides the terminal user interface for the backstage
// dashboard.
//
// # Architecture Overview
//
// The UI is a single Bubble Tea model. A fixed sidebar menu selects one
// of seven sections; the shoot management section carries its own
// three-way sub-navigation. The active selection (view plus sub-tab)
// lives on the Model and is the only mutable UI state; all section
// renderers are pure functions over that state and the dataset
// snapshot.
//
// # Package Structure
//
//   - app.go: Model, view registry, key dispatch, messages and commands
//   - keys.go: key bindings
//   - theme.go: theme registry and Lipgloss styles
//   - header.go: status bar and command bar
//   - help.go: help overlay
//   - one file per section: home, overview, orders, product, shoots,
//     promos, export
//
// # Sections
//
//   - Home: brand banner plus revenue/mode/low-stock summary cards
//   - Overview: revenue-by-date and product-frequency text charts
//   - Orders: status-filtered order table
//   - Product: copy-generator form with image preview
//   - Shoots: schedule, roster, and the placeholder gallery grid
//   - Promos: promotion suggestion blocks
//   - Export: BOM CSV download plus PNG chart export
//
// # Event Flow
//
//  1. Run() starts the Bubble Tea program in the alt screen
//  2. Key events either move the selection or invoke a section handler
//  3. Reload and export run as tea.Cmd and report back via messages
//  4. View() re-renders the whole screen from Model state
//
// The interface never mutates the dataset; the store snapshot is
// replaced only by an explicit reload.
package ui
