// Package config loads tracker settings from the environment and an optional
// config file.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/viper"
)

// Config holds every runtime setting.
type Config struct {
	// DedupHistory is how many handled turn transitions are remembered.
	DedupHistory int `env:"ACTIONTRACKER_DEDUP_HISTORY" envDefault:"64"`
	// StrictOrdering makes condition locks without a reset an error instead of a repair.
	StrictOrdering bool `env:"ACTIONTRACKER_STRICT_ORDERING" envDefault:"false"`
	// RefreshDelay is the redraw delay of the terminal tracker.
	RefreshDelay time.Duration `env:"ACTIONTRACKER_REFRESH_DELAY" envDefault:"50ms"`
	// BonusReactionRule is a CEL expression over actor; empty uses the built-in rule.
	BonusReactionRule string `env:"ACTIONTRACKER_BONUS_REACTION_RULE"`
	// Telemetry enables OTLP trace export.
	Telemetry bool `env:"ACTIONTRACKER_TELEMETRY" envDefault:"false"`
	// ServiceName is the traced service name.
	ServiceName string `env:"ACTIONTRACKER_SERVICE_NAME" envDefault:"actiontracker"`
	// Verbose logs notifications and coordinator decisions to stderr.
	Verbose bool `env:"ACTIONTRACKER_VERBOSE" envDefault:"false"`
}

// Config file keys understood by ApplyOverrides.
const (
	KeyDedupHistory      = "dedup_history"
	KeyStrictOrdering    = "strict_ordering"
	KeyRefreshDelay      = "refresh_delay"
	KeyBonusReactionRule = "bonus_reaction_rule"
	KeyTelemetry         = "telemetry"
	KeyServiceName       = "service_name"
	KeyVerbose           = "verbose"
)

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// ApplyOverrides copies every key set in v (config file or bound flag) over cfg.
func (c *Config) ApplyOverrides(v *viper.Viper) error {
	if v == nil {
		return nil
	}
	if v.IsSet(KeyDedupHistory) {
		c.DedupHistory = v.GetInt(KeyDedupHistory)
	}
	if v.IsSet(KeyStrictOrdering) {
		c.StrictOrdering = v.GetBool(KeyStrictOrdering)
	}
	if v.IsSet(KeyRefreshDelay) {
		c.RefreshDelay = v.GetDuration(KeyRefreshDelay)
	}
	if v.IsSet(KeyBonusReactionRule) {
		c.BonusReactionRule = v.GetString(KeyBonusReactionRule)
	}
	if v.IsSet(KeyTelemetry) {
		c.Telemetry = v.GetBool(KeyTelemetry)
	}
	if v.IsSet(KeyServiceName) {
		c.ServiceName = v.GetString(KeyServiceName)
	}
	if v.IsSet(KeyVerbose) {
		c.Verbose = v.GetBool(KeyVerbose)
	}
	return c.Validate()
}

// Validate rejects settings no component can run with.
func (c *Config) Validate() error {
	if c.DedupHistory < 1 {
		return fmt.Errorf("dedup history must be positive, got %d", c.DedupHistory)
	}
	if c.RefreshDelay < 0 {
		return fmt.Errorf("refresh delay must not be negative, got %s", c.RefreshDelay)
	}
	return nil
}
