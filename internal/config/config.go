// Package config loads server settings from the environment
package config

import (
	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-stats/internal/errors"
)

// Config holds the settings shared by the CLI commands. Flags override
// whatever the environment provides.
type Config struct {
	GRPCPort       int    `env:"STATS_GRPC_PORT" envDefault:"50051"`
	RedisAddr      string `env:"STATS_REDIS_ADDR" envDefault:"localhost:6379"`
	LogLevel       string `env:"STATS_LOG_LEVEL" envDefault:"info"`
	LogFormat      string `env:"STATS_LOG_FORMAT" envDefault:"text"`
	RulesFile      string `env:"STATS_RULES_FILE"`
	DefaultRuleset string `env:"STATS_DEFAULT_RULESET" envDefault:"default"`
	OTelEndpoint   string `env:"STATS_OTEL_ENDPOINT"`
}

// Load parses the environment into a Config and validates it
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.InvalidArgumentf("parse env: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate validates the config
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("STATS_GRPC_PORT", c.GRPCPort, 1, 65535, vb)
	errors.ValidateRequired("STATS_REDIS_ADDR", c.RedisAddr, vb)
	errors.ValidateEnum("STATS_LOG_LEVEL", c.LogLevel, []string{"debug", "info", "warn", "error"}, vb)
	errors.ValidateEnum("STATS_LOG_FORMAT", c.LogFormat, []string{"text", "json"}, vb)

	return vb.Build()
}
