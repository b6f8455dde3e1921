// Package cli wires the focus coordinator, its terminal host and the
// configuration into one application value shared by the commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bnema/textfocus/internal/application/usecase"
	"github.com/bnema/textfocus/internal/cli/styles"
	"github.com/bnema/textfocus/internal/domain/build"
	"github.com/bnema/textfocus/internal/domain/entity"
	"github.com/bnema/textfocus/internal/infrastructure/config"
	"github.com/bnema/textfocus/internal/infrastructure/hostdispatch"
	"github.com/bnema/textfocus/internal/infrastructure/textinput"
	"github.com/bnema/textfocus/internal/logging"
)

const (
	logDirPerm  = 0o755
	logFilePerm = 0o644
)

// Options override configuration values from command-line flags.
type Options struct {
	// Platform overrides host.platform when non-empty.
	Platform string
	// LogToStderr sends logs to stderr instead of the log file.
	LogToStderr bool
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Theme     *styles.Theme
	BuildInfo build.Info
	Platform  entity.Platform

	Coordinator *usecase.FocusCoordinator
	Fields      *textinput.FieldRegistry
	Commands    *textinput.CommandQueue

	// Notices are user-facing warnings collected while building the app.
	Notices []string

	manager *config.Manager
	ctx     context.Context
	logFile io.Closer
}

// NewApp loads the configuration, builds the logger and assembles the
// coordinator with the dispatcher for the configured platform.
func NewApp(opts Options) (*App, error) {
	manager, cfg, loadErr := loadConfig()

	logger, logFile, err := newLogger(cfg.Logging, opts.LogToStderr)
	if err != nil {
		return nil, err
	}
	logger = logger.With().Str("run_id", uuid.NewString()).Logger()
	ctx := logging.WithContext(context.Background(), logger)
	log := logging.FromContext(ctx)
	var notices []string
	if loadErr != nil {
		log.Warn().Err(loadErr).Msg("using default configuration")
		notices = append(notices, fmt.Sprintf("using default configuration: %v", loadErr))
	}

	platform := cfg.Host.Platform
	if opts.Platform != "" {
		platform = entity.ParsePlatform(opts.Platform)
		if suggestion, ok := config.SuggestPlatform(opts.Platform); ok {
			notices = append(notices, fmt.Sprintf(
				"unknown platform %q (did you mean %q?), focus will be tracked without notifying fields",
				opts.Platform, suggestion))
			log.Warn().Str("platform", opts.Platform).Stringer("suggestion", suggestion).Msg("unknown platform")
		}
	}

	fields := textinput.NewFieldRegistry()
	commands := textinput.NewCommandQueue()
	dispatcher, err := hostdispatch.New(platform, fields, commands)
	if err != nil {
		closeQuietly(logFile)
		return nil, fmt.Errorf("create host dispatcher: %w", err)
	}
	coordinator := usecase.NewFocusCoordinator(dispatcher, logging.FocusListener{})

	log.Debug().Stringer("platform", platform).Msg("focus coordinator ready")

	return &App{
		Config:      cfg,
		Theme:       styles.NewTheme(),
		Platform:    platform,
		Coordinator: coordinator,
		Fields:      fields,
		Commands:    commands,
		Notices:     notices,
		manager:     manager,
		ctx:         ctx,
		logFile:     logFile,
	}, nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// ConfigFile returns the path of the config file in use.
func (a *App) ConfigFile() (string, error) {
	if a.manager != nil {
		return a.manager.GetConfigFile(), nil
	}
	return config.GetConfigFile()
}

// WatchConfig reloads the config file on change and applies the new logging
// level. The host platform is fixed for the lifetime of the process.
func (a *App) WatchConfig() error {
	if a.manager == nil {
		return nil
	}

	a.manager.OnConfigChange(func(cfg *config.Config) {
		log := logging.FromContext(a.ctx)
		if level, ok := logging.ParseLevel(cfg.Logging.Level); ok {
			zerolog.SetGlobalLevel(level)
			log.Info().Str("level", level.String()).Msg("log level reloaded")
		}
		if cfg.Host.Platform != a.Platform {
			log.Warn().
				Stringer("configured", cfg.Host.Platform).
				Stringer("active", a.Platform).
				Msg("host platform change ignored until restart")
		}
	})

	if err := a.manager.Watch(); err != nil {
		return fmt.Errorf("watch config: %w", err)
	}
	return nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logFile != nil {
		return a.logFile.Close()
	}
	return nil
}

// loadConfig loads configuration from standard locations, falling back to
// defaults when the file cannot be read.
func loadConfig() (*config.Manager, *config.Config, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, config.DefaultConfig(), err
	}
	if err := mgr.Load(); err != nil {
		return mgr, config.DefaultConfig(), err
	}
	return mgr, mgr.Get(), nil
}

// newLogger builds the application logger. The terminal UI owns the screen, so
// logs go to a file unless stderr was requested. The logger itself accepts
// every level and the configured level is applied globally so it can be
// changed on reload.
func newLogger(cfg config.LoggingConfig, toStderr bool) (zerolog.Logger, io.Closer, error) {
	level, _ := logging.ParseLevel(cfg.Level)
	zerolog.SetGlobalLevel(level)

	logCfg := logging.DefaultConfig()
	logCfg.Level = zerolog.TraceLevel
	logCfg.Format = cfg.Format
	logCfg.TimeFormat = "15:04:05"

	if toStderr {
		return logging.New(logCfg), nil, nil
	}

	path := cfg.File
	if path == "" {
		var err error
		if path, err = config.GetLogFile(); err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("resolve log file: %w", err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), logDirPerm); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}

	logCfg.Output = file
	return logging.New(logCfg), file, nil
}

func closeQuietly(c io.Closer) {
	if c != nil {
		_ = c.Close()
	}
}
