package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/condgen/internal/ctxlog"
	"github.com/vk/condgen/internal/model"
	"github.com/vk/condgen/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	registry *registry.Registry
}

// New is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
func New(outW io.Writer, cfg *Config, loader model.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	set, err := loader.Load(ctx, cfg.ConfigPath)
	if err != nil {
		// A failure to load definitions is a fatal startup error.
		panic(fmt.Errorf("failed to load definitions: %w", err))
	}
	logger.Debug("Definitions loaded and translated into the unified model.")

	reg := registry.New()
	if err := reg.Populate(set); err != nil {
		// So are cross-file definition conflicts.
		panic(err)
	}
	logger.Debug("Registry populated.", "units", len(reg.UnitsInOrder()), "profiles", len(reg.ProfileRegistry))

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		registry: reg,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
