package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/specialistvlad/seedline/internal/ctxlog"
	"github.com/specialistvlad/seedline/internal/handlers"
	"github.com/specialistvlad/seedline/internal/schema"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	logFile  io.Closer
	config   *Config
	schema   *schema.Schema
	registry *handlers.Registry
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
// Without explicit modules the core modules are registered.
func NewApp(outW io.Writer, cfg *Config, s *schema.Schema, modules ...handlers.Module) *App {
	logger, logFile := newLogger(cfg.LogLevel, cfg.LogFormat, cfg.LogFile, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := handlers.New()
	if len(modules) == 0 {
		modules = coreModules(cfg, s)
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All handler modules registered.", "count", len(modules))

	// A mismatch between the schema and the compiled handlers is a
	// programmer error, so we panic.
	if err := reg.Validate(ctx, s); err != nil {
		_ = logFile.Close()
		panic(err)
	}

	return &App{
		outW:     outW,
		logger:   logger,
		logFile:  logFile,
		config:   cfg,
		schema:   s,
		registry: reg,
	}
}

// Registry returns the application's handler registry. This is primarily for testing.
func (a *App) Registry() *handlers.Registry {
	return a.registry
}

// Close releases the log file, if any.
func (a *App) Close() error {
	return a.logFile.Close()
}
