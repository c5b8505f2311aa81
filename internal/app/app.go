// Package app wires configuration, the dataset, logging and the UI
// into the backstage application. Business logic lives in the domain
// packages; this is only the composition root.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/fancyactive/backstage/internal/config"
	"github.com/fancyactive/backstage/internal/prefs"
	"github.com/fancyactive/backstage/internal/sales"
	"github.com/fancyactive/backstage/internal/state"
	"github.com/fancyactive/backstage/internal/ui"
)

// Options configure the backstage application.
type Options struct {
	ConfigPath string
	DataPath   string // overrides the configured sales CSV path
	Theme      string // overrides the saved theme for this session
	PrefsPath  string // empty uses default ~/.config/backstage/prefs.toml
}

// Run boots the backstage TUI until the context is cancelled. A missing
// or malformed dataset is fatal: the dashboard has nothing to show
// without it.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dataPath := cfg.DataPath
	if opts.DataPath != "" {
		dataPath = opts.DataPath
	}

	logger := newLogger(cfg.LogPath)
	defer func() { _ = logger.Sync() }()

	table, err := sales.Load(dataPath)
	if err != nil {
		logger.Error("load sales data", zap.Error(err))
		return fmt.Errorf("load sales data: %w", err)
	}
	logger.Info("sales data loaded", zap.String("path", dataPath), zap.Int("rows", len(table)))

	store := &state.Store{}
	store.Update(table, nil)

	userPrefs := prefs.Load(opts.PrefsPath)

	uiOpts := ui.Options{
		Context:   ctx,
		Store:     store,
		Config:    &cfg,
		Logger:    logger,
		DataPath:  dataPath,
		ThemeName: themeName(opts.Theme, userPrefs.Theme),
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}

// themeName picks the session theme: an explicit override wins over the
// saved preference.
func themeName(override, saved string) string {
	if override != "" {
		return override
	}
	return saved
}

// newLogger builds a file-only zap logger. The TUI owns the terminal,
// so nothing may be written to stdout or stderr while it runs. Logging
// failures degrade to a nop logger rather than blocking startup.
func newLogger(path string) *zap.Logger {
	if path == "" {
		return zap.NewNop()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zap.NewNop()
	}

	zcfg := zap.NewProductionConfig()
	zcfg.OutputPaths = []string{path}
	zcfg.ErrorOutputPaths = []string{path}

	logger, err := zcfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
