package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/okian/sportsday/internal/domain/match"
)

// Environment variable names.
const (
	EnvPrefix = "SPORTSDAY_"
	EnvConfig = EnvPrefix + "CONFIG"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if SPORTSDAY_CONFIG is set
//  3. env (prefix SPORTSDAY_; a double underscore nests, e.g.
//     SPORTSDAY_COLUMNS__BRANCH -> columns.branch)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv(EnvConfig); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoadConfig, path, err)
		}
	}

	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %w", ErrLoadConfig, err)
	}

	cfg := *base
	// Lists from the file replace the defaults instead of merging by index.
	if k.Exists("families") {
		cfg.Families = nil
	}
	if k.Exists("team_rules") {
		cfg.TeamRules = nil
	}
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the fields the service cannot start without.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if c.DatasetPath == "" {
		return fmt.Errorf("%w: dataset_path must not be empty", ErrInvalidConfig)
	}
	if _, err := match.ByName(c.MatchPolicy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	switch strings.ToLower(c.LogFormat) {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: log_format %q", ErrInvalidConfig, c.LogFormat)
	}
	for _, col := range c.Columns.All() {
		if strings.TrimSpace(col) == "" {
			return fmt.Errorf("%w: every column header must be set", ErrInvalidConfig)
		}
	}
	if c.Metrics.RefreshInterval <= 0 {
		return fmt.Errorf("%w: metrics.refresh_interval must be positive", ErrInvalidConfig)
	}
	for name, b := range map[string][]float64{
		"metrics.matched_buckets": c.Metrics.MatchedBuckets,
		"metrics.latency_buckets": c.Metrics.LatencyBuckets,
	} {
		for i := 1; i < len(b); i++ {
			if b[i] <= b[i-1] {
				return fmt.Errorf("%w: %s must be strictly increasing", ErrInvalidConfig, name)
			}
		}
	}
	for i, r := range c.TeamRules {
		if len(r.Triggers) == 0 || len(r.Required) == 0 {
			return fmt.Errorf("%w: %w: team_rules[%d] needs triggers and required keywords", ErrInvalidConfig, ErrInvalidTeamRule, i)
		}
	}
	return nil
}
