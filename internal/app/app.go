package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/joltage/internal/bank"
	"github.com/vk/joltage/internal/config"
	"github.com/vk/joltage/internal/ctxlog"
	"github.com/vk/joltage/internal/joltage"
	"github.com/vk/joltage/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	cfg      *Config
	registry *registry.Registry
	model    *config.Model
	selector joltage.Selector
	reporter registry.Reporter
}

// NewApp is the constructor for the main application. Results are written to
// outW and logs to logW. With no modules the core modules are registered.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader, modules ...registry.Module) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	var configPaths []string
	if cfg.ConfigPath != "" {
		configPaths = append(configPaths, cfg.ConfigPath)
	}

	model, err := loader.Load(ctx, config.Variables{
		DataDir:  cfg.DataDir,
		Day:      cfg.Day,
		Capacity: bank.Capacity,
	}, configPaths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Debug("Configuration loaded and translated into unified model.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All Go modules registered.", "count", len(modules))

	if err := reg.ValidateRegistry(ctx); err != nil {
		return nil, err
	}

	selector, err := reg.Selector(cfg.Strategy)
	if err != nil {
		return nil, err
	}
	reporter, err := reg.Reporter(cfg.Output)
	if err != nil {
		return nil, err
	}

	return &App{
		outW:     outW,
		logger:   logger,
		cfg:      cfg,
		registry: reg,
		model:    model,
		selector: selector,
		reporter: reporter,
	}, nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}

// Model returns the loaded configuration model.
func (a *App) Model() *config.Model {
	return a.model
}
