package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/herderapp/herder/internal/config"
	"github.com/herderapp/herder/internal/control"
	"github.com/herderapp/herder/internal/ollama"
	"github.com/herderapp/herder/internal/prefs"
	"github.com/herderapp/herder/internal/runner"
	"github.com/herderapp/herder/internal/state"
	"github.com/herderapp/herder/internal/ui"
)

// Options configure the herder application.
type Options struct {
	ConfigPath string // empty uses default ~/.config/herder/config.json
	PrefsPath  string // empty uses default ~/.config/herder/prefs.toml
	ToolPath   string // empty resolves "ollama" from PATH
	Host       string // empty uses the default local server address
	DebugLog   string // empty disables the debug log file
	PollEvery  int    // seconds; zero uses default
}

// Run boots the herder TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	logger := newDebugLogger(opts.DebugLog)

	cfg, reason := config.Load(opts.ConfigPath)
	if reason != "" {
		logger.Debug().Str("reason", reason).Msg("config fallback to defaults")
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	client, err := ollama.NewClient(opts.Host)
	if err != nil {
		return fmt.Errorf("init ollama client: %w", err)
	}

	serverStore := &state.Store{}

	interval := defaultPollInterval
	if opts.PollEvery > 0 {
		interval = time.Duration(opts.PollEvery) * time.Second
	}
	StartPoller(ctx, serverStore, client, interval, logger)

	ctl := control.NewController(ctx, runner.New(), cfg, opts.ConfigPath, opts.ToolPath, logger)

	uiOpts := ui.Options{
		Context:    ctx,
		Controller: ctl,
		Server:     serverStore,
		PollTick:   interval,
		ThemeName:  userPrefs.Theme,
		FollowLogs: userPrefs.FollowLogs,
		PrefsPath:  opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}

// newDebugLogger opens a file-backed zerolog logger, or a no-op logger
// when path is empty or unopenable. Debug output cannot go to stderr
// while the TUI owns the terminal.
func newDebugLogger(path string) zerolog.Logger {
	if path == "" {
		return zerolog.Nop()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop()
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop()
	}
	return zerolog.New(file).With().Timestamp().Logger().Level(zerolog.DebugLevel)
}
