// Package config loads the dashboard configuration. A coinwatch.yaml next to
// the binary is optional; a missing file yields the defaults. There are no
// CLI flags and no environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks when the caller passes an empty path.
const DefaultPath = "coinwatch.yaml"

// Duration wraps time.Duration so YAML values can use readable forms like
// "250ms" or "5s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config contains all configurable parameters for the dashboard.
// Use Default() to get sensible values, then override as needed.
type Config struct {
	Exchange Exchange `yaml:"exchange"`
	UI       UI       `yaml:"ui"`
	Logging  Logging  `yaml:"logging"`
}

// Exchange holds the endpoint and client budget for the market-data provider.
type Exchange struct {
	BaseURL          string   `yaml:"base_url"`           // REST endpoint (default: https://api.binance.com)
	SettlementSuffix string   `yaml:"settlement_suffix"`  // quote-asset suffix pairs must end with (default: USDT)
	RequestTimeout   Duration `yaml:"request_timeout"`    // per-request deadline (default: 5s)
	RetryAttempts    int      `yaml:"retry_attempts"`     // attempts per fetch (default: 3)
	RetryBaseDelay   Duration `yaml:"retry_base_delay"`   // first backoff step (default: 200ms)
	RateLimitPerMin  int      `yaml:"rate_limit_per_min"` // ticker calls per minute (default: 60)
}

// UI holds the event cadence and table geometry.
type UI struct {
	TickInterval  Duration `yaml:"tick_interval"`  // logic clock period (default: 250ms)
	FrameInterval Duration `yaml:"frame_interval"` // render clock period (default: 33ms, ~30fps)
	AutoRefresh   Duration `yaml:"auto_refresh"`   // refetch when data is older than this; 0 disables
	RowHeight     int      `yaml:"row_height"`     // table rows per entry, drives scroll extent (default: 4)
}

// Logging configures the application logger.
type Logging struct {
	File  string `yaml:"file"`  // empty discards log output (the TUI owns stdout)
	Level string `yaml:"level"` // debug/info/warn/error
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		Exchange: Exchange{
			BaseURL:          "https://api.binance.com",
			SettlementSuffix: "USDT",
			RequestTimeout:   Duration(5 * time.Second),
			RetryAttempts:    3,
			RetryBaseDelay:   Duration(200 * time.Millisecond),
			RateLimitPerMin:  60,
		},
		UI: UI{
			TickInterval:  Duration(250 * time.Millisecond),
			FrameInterval: Duration(33 * time.Millisecond),
			AutoRefresh:   0,
			RowHeight:     4,
		},
		Logging: Logging{
			File:  "",
			Level: "info",
		},
	}
}

// Load reads the YAML configuration file at path (DefaultPath when empty),
// layered over Default(). A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// WithTickInterval returns a copy of the config with a modified logic clock period.
func (c Config) WithTickInterval(d time.Duration) Config {
	c.UI.TickInterval = Duration(d)
	return c
}

// WithFrameInterval returns a copy of the config with a modified render clock period.
func (c Config) WithFrameInterval(d time.Duration) Config {
	c.UI.FrameInterval = Duration(d)
	return c
}

// WithSettlementSuffix returns a copy of the config with a modified quote-asset suffix.
func (c Config) WithSettlementSuffix(s string) Config {
	c.Exchange.SettlementSuffix = s
	return c
}

// Validate checks if the configuration is valid and returns an error if not.
func (c Config) Validate() error {
	if c.Exchange.BaseURL == "" {
		return &ConfigError{Field: "exchange.base_url", Message: "must not be empty"}
	}
	if c.Exchange.SettlementSuffix == "" {
		return &ConfigError{Field: "exchange.settlement_suffix", Message: "must not be empty"}
	}
	if c.Exchange.RequestTimeout <= 0 {
		return &ConfigError{Field: "exchange.request_timeout", Message: "must be positive"}
	}
	if c.Exchange.RetryAttempts <= 0 {
		return &ConfigError{Field: "exchange.retry_attempts", Message: "must be positive"}
	}
	if c.Exchange.RateLimitPerMin <= 0 {
		return &ConfigError{Field: "exchange.rate_limit_per_min", Message: "must be positive"}
	}
	if c.UI.TickInterval <= 0 {
		return &ConfigError{Field: "ui.tick_interval", Message: "must be positive"}
	}
	if c.UI.FrameInterval <= 0 {
		return &ConfigError{Field: "ui.frame_interval", Message: "must be positive"}
	}
	if c.UI.AutoRefresh < 0 {
		return &ConfigError{Field: "ui.auto_refresh", Message: "must not be negative"}
	}
	if c.UI.RowHeight <= 0 {
		return &ConfigError{Field: "ui.row_height", Message: "must be positive"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Field + " " + e.Message
}
