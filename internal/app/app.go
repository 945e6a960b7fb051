package app

import (
	"context"
	"fmt"

	"github.com/tbracken/liftlog/internal/api"
	"github.com/tbracken/liftlog/internal/config"
	"github.com/tbracken/liftlog/internal/logging"
	"github.com/tbracken/liftlog/internal/prefs"
	"github.com/tbracken/liftlog/internal/ui"
)

// Options configure the liftlog application.
type Options struct {
	ConfigPath string
	ServerURL  string // overrides the configured server when set
	PrefsPath  string // empty uses default ~/.config/liftlog/prefs.toml
}

// Run boots the liftlog TUI until the context is cancelled or the user
// quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.ServerURL != "" {
		cfg.ServerURL = opts.ServerURL
	}

	logging.Setup(logging.SetupParams{
		LogFileName: cfg.LogPath(),
		LogLevel:    cfg.LogLevel,
	})

	userPrefs := prefs.Load(opts.PrefsPath)

	client, err := api.NewClient(cfg.ServerURL)
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}

	return ui.Run(ui.Options{
		Context:   ctx,
		Client:    client,
		Config:    &cfg,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	})
}
