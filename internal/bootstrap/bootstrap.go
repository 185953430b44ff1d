// Package bootstrap builds the adapters shared by the roamstats binaries
// from an AppConfig.
package bootstrap

import (
	"context"
	"fmt"

	"roamstats/internal/adapters/roamapi"
	"roamstats/internal/adapters/sqlite"
	"roamstats/internal/application/commands"
	"roamstats/internal/application/stats"
	"roamstats/internal/config"
	"roamstats/internal/log"
	"roamstats/internal/ports"
)

// ConfigureLogging sets up the global logger. LogFile wins over
// defaultOutput; when both are empty logging stays disabled.
func ConfigureLogging(cfg *config.AppConfig, defaultOutput string) error {
	output := cfg.LogFile
	if output == "" {
		output = defaultOutput
	}
	if output == "" {
		log.SetLogger(log.NewNoopLogger())
		return nil
	}
	return log.Configure(cfg.Env, cfg.LogLevel, output)
}

// NewClient returns the backend API client for the configured graph
func NewClient(cfg *config.AppConfig) (*roamapi.Client, error) {
	if err := cfg.RequireRemote(); err != nil {
		return nil, err
	}
	return roamapi.NewClient(cfg.APIBaseURL, cfg.Graph, cfg.Token,
		roamapi.WithTimeout(cfg.Timeout),
	), nil
}

// LoaderOptions maps the config onto loader options
func LoaderOptions(cfg *config.AppConfig) []stats.Option {
	return []stats.Option{
		stats.WithScheduler(stats.NewDeferredScheduler(cfg.FrameDelay)),
		stats.WithMaxConcurrent(cfg.MaxConcurrent),
		stats.WithTimeout(cfg.Timeout),
	}
}

// NewLoader creates a loader over engine configured from cfg
func NewLoader(cfg *config.AppConfig, engine ports.QueryEngine) *stats.Loader {
	return stats.NewLoader(engine, LoaderOptions(cfg)...)
}

// LoaderFactory returns a constructor of independent loaders sharing engine
func LoaderFactory(cfg *config.AppConfig, engine ports.QueryEngine) func() *stats.Loader {
	return func() *stats.Loader {
		return NewLoader(cfg, engine)
	}
}

// OpenSettings opens the preference store and writes the auto-load default
// when it has never been set. The caller closes the store.
func OpenSettings(ctx context.Context, cfg *config.AppConfig) (*sqlite.Store, error) {
	store := sqlite.NewStore()
	if err := store.Open(cfg.SettingsDB); err != nil {
		return nil, err
	}
	if err := commands.EnsureAutoLoadDefault(ctx, store); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("initialize settings: %w", err)
	}
	return store, nil
}
