package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	DefaultAPIBaseURL   = "https://api.roamresearch.com"
	DefaultSettingsPath = "~/.config/roamstats/settings.db"
	envPrefix           = "ROAMSTATS_"
)

// ErrMissingGraph is returned when a command needs the remote graph but no
// graph name or token is configured.
var ErrMissingGraph = errors.New("graph and token are required (set ROAMSTATS_GRAPH and ROAMSTATS_TOKEN)")

// AppConfig holds configuration values parsed from environment variables.
type AppConfig struct {
	// Graph is the Roam graph name.
	Graph string `koanf:"graph"`

	// Token is a backend API token with read access to Graph.
	Token string `koanf:"token"`

	APIBaseURL string `koanf:"api_base_url" validate:"required,url"`

	// SettingsDB is the SQLite file holding extension preferences.
	SettingsDB string `koanf:"settings_db" validate:"required"`

	// Env is the runtime environment, either "dev" or "prod".
	Env string `koanf:"env" validate:"required,oneof=dev prod"`

	LogLevel string `koanf:"log_level" validate:"required,oneof=debug info warn error"`

	// LogFile receives log output. Empty means stderr for the CLI and no
	// logging for the TUI.
	LogFile string `koanf:"log_file"`

	// Timeout bounds a single query round trip.
	Timeout time.Duration `koanf:"timeout" validate:"gt=0"`

	// MaxConcurrent caps in-flight queries; 0 means unlimited.
	MaxConcurrent int `koanf:"max_concurrent" validate:"gte=0"`

	// FrameDelay is how long tag queries wait for the first paint.
	FrameDelay time.Duration `koanf:"frame_delay" validate:"gte=0"`
}

// DefaultAppConfig holds the values used when no environment override is set.
var DefaultAppConfig = AppConfig{
	APIBaseURL:    DefaultAPIBaseURL,
	SettingsDB:    DefaultSettingsPath,
	Env:           "prod",
	LogLevel:      "info",
	Timeout:       30 * time.Second,
	MaxConcurrent: 4,
	FrameDelay:    16 * time.Millisecond,
}

// envLoader loads ROAMSTATS_* variables, lowercasing keys and dropping the prefix.
var envLoader = func(k *koanf.Koanf) error {
	return k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
			return key, strings.TrimSpace(value)
		},
	}), nil)
}

var defaultLoader = func(k *koanf.Koanf) error {
	return k.Load(structs.Provider(DefaultAppConfig, "koanf"), nil)
}

// Load parses environment variables and returns a validated AppConfig.
func Load() (*AppConfig, error) {
	k := koanf.New(".")

	if err := defaultLoader(k); err != nil {
		return nil, fmt.Errorf("error loading default config: %w", err)
	}

	if err := envLoader(k); err != nil {
		return nil, fmt.Errorf("error loading env: %w", err)
	}

	var cfg AppConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints.
func (c *AppConfig) Validate() error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// RequireRemote reports ErrMissingGraph unless both graph and token are set.
func (c *AppConfig) RequireRemote() error {
	if strings.TrimSpace(c.Graph) == "" || strings.TrimSpace(c.Token) == "" {
		return ErrMissingGraph
	}
	return nil
}

// IsDev reports whether the dev environment is active.
func (c *AppConfig) IsDev() bool {
	return c.Env == "dev"
}
