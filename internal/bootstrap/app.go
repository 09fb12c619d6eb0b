package bootstrap

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/bnema/remotenav/internal/infrastructure/config"
	infrahistory "github.com/bnema/remotenav/internal/infrastructure/history"
	"github.com/bnema/remotenav/internal/infrastructure/layout"
	"github.com/bnema/remotenav/internal/logging"
	"github.com/bnema/remotenav/internal/ui/mainloop"
)

// Options selects the files and overrides used by Start.
type Options struct {
	// ConfigFile replaces the XDG config file when set.
	ConfigFile string
	// LayoutFile is the layout to load. Empty loads the built-in demo.
	LayoutFile string
	// LogLevel overrides logging.level when set.
	LogLevel string
	// LogOutput receives log lines; defaults to stderr.
	LogOutput io.Writer
	// Watch reloads the input settings when the config file changes.
	Watch bool
}

// App is a started navigation stack with its host loop and history.
type App struct {
	Config     *config.Manager
	Loop       *mainloop.Loop
	History    *infrahistory.Memory
	Navigation *Navigation
	Logger     zerolog.Logger

	ctx context.Context
}

// NewLogger builds the application logger from the logging section.
func NewLogger(cfg config.LoggingConfig, out io.Writer) zerolog.Logger {
	if out == nil {
		out = os.Stderr
	}
	return logging.New(logging.Config{
		Level:      logging.ParseLevel(cfg.Level),
		Format:     cfg.Format,
		TimeFormat: "15:04:05",
		Output:     out,
	})
}

// LoadConfig loads the config file named by path, or the XDG config file
// when path is empty.
func LoadConfig(path string) (*config.Manager, error) {
	var (
		m   *config.Manager
		err error
	)
	if path != "" {
		m, err = config.NewManagerForFile(path)
	} else {
		m, err = config.NewManager()
	}
	if err != nil {
		return nil, err
	}
	if err := m.Load(); err != nil {
		return nil, err
	}
	return m, nil
}

// LoadLayout loads path, or the built-in demo layout when path is empty.
func LoadLayout(path string) (*layout.Layout, error) {
	if path == "" {
		return layout.Demo(), nil
	}
	return layout.Load(path)
}

// Start loads configuration and layout and wires the navigation stack on an
// in-memory history and a fresh loop.
func Start(ctx context.Context, opts Options) (*App, error) {
	timer := NewStartupTimer()

	cfgManager, err := LoadConfig(opts.ConfigFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := cfgManager.Get()
	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}
	logger := NewLogger(cfg.Logging, opts.LogOutput)
	ctx = logging.WithContext(ctx, logger)
	timer.Mark("config")

	l, err := LoadLayout(opts.LayoutFile)
	if err != nil {
		return nil, fmt.Errorf("load layout: %w", err)
	}
	timer.Mark("layout")

	loop := mainloop.NewLoop()
	hist := infrahistory.NewMemory()
	nav, err := NewNavigation(ctx, cfg, l, hist, loop)
	if err != nil {
		return nil, err
	}
	timer.Mark("navigation")

	if opts.Watch {
		nav.WatchConfig(cfgManager)
		if err := cfgManager.Watch(); err != nil {
			logger.Warn().Err(err).Msg("config watching disabled")
		}
	}

	timer.Log(ctx)
	return &App{
		Config:     cfgManager,
		Loop:       loop,
		History:    hist,
		Navigation: nav,
		Logger:     logger,
		ctx:        nav.Context(),
	}, nil
}

// Context returns the context carrying the application logger.
func (a *App) Context() context.Context {
	return a.ctx
}

// Close disarms the back guard and runs the pending loop tasks.
func (a *App) Close() {
	a.Navigation.Close()
	a.Loop.Drain()
}
