// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Defaults live in New; Load layers a YAML file and env vars on top.
// - External errors are wrapped with this package's sentinel kinds.
package config

import (
	"time"

	"github.com/okian/sportsday/internal/domain/category"
	"github.com/okian/sportsday/internal/domain/match"
	"github.com/okian/sportsday/internal/domain/teamcol"
	"github.com/okian/sportsday/pkg/metrics"
)

// DefaultUnavailableSuffix is appended to the category label when a team
// query has no team member column.
const DefaultUnavailableSuffix = " (team details not available in form)"

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log encoding: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// DatasetPath points at the responses workbook (.xlsx) or CSV export.
	DatasetPath string `koanf:"dataset_path"`

	// DatasetSheet selects the worksheet; the first sheet when empty.
	DatasetSheet string `koanf:"dataset_sheet"`

	// MatchPolicy selects how query keys match record fields: contains or token_set.
	MatchPolicy string `koanf:"match_policy"`

	// UnavailableSuffix annotates team queries without a team member column.
	UnavailableSuffix string `koanf:"unavailable_suffix"`

	// Columns names the sheet headers the engine reads.
	Columns Columns `koanf:"columns"`

	// Families lists team sport families in priority order.
	Families []string `koanf:"families"`

	// TeamRules maps team queries to the keywords of their member column.
	TeamRules []TeamRule `koanf:"team_rules"`

	// Metrics tunes the Prometheus collectors behind /metrics.
	Metrics Metrics `koanf:"metrics"`
}

// Metrics configures pkg/metrics. Empty bucket lists keep the package defaults.
type Metrics struct {
	Enabled         bool              `koanf:"enabled"`
	RefreshInterval time.Duration     `koanf:"refresh_interval"`
	MatchedBuckets  []float64         `koanf:"matched_buckets"`
	LatencyBuckets  []float64         `koanf:"latency_buckets"`
	Labels          map[string]string `koanf:"labels"`
}

// Options converts the section into metrics manager options.
func (m Metrics) Options() []metrics.Option {
	return []metrics.Option{
		metrics.WithMetricsEnabled(m.Enabled),
		metrics.WithRefreshInterval(m.RefreshInterval),
		metrics.WithMatchedBuckets(m.MatchedBuckets),
		metrics.WithHistogramBuckets(m.LatencyBuckets),
		metrics.WithCustomLabels(m.Labels),
	}
}

// Columns holds the header text of each field the engine reads.
type Columns struct {
	Name     string `koanf:"name"`
	Phone    string `koanf:"phone"`
	Branch   string `koanf:"branch"`
	Semester string `koanf:"semester"`
	Gender   string `koanf:"gender"`
	Sport    string `koanf:"sport"`
	Team     string `koanf:"team"`
}

// All returns the configured headers in projection order followed by the
// two selection columns.
func (c Columns) All() []string {
	return []string{c.Name, c.Semester, c.Gender, c.Branch, c.Phone, c.Sport, c.Team}
}

// TeamRule is the configuration form of teamcol.Rule.
type TeamRule struct {
	Triggers []string `koanf:"triggers" yaml:"triggers"`
	Required []string `koanf:"required" yaml:"required"`
}

// Rules converts the configured team rules.
func (c *Config) Rules() []teamcol.Rule {
	out := make([]teamcol.Rule, len(c.TeamRules))
	for i, r := range c.TeamRules {
		out[i] = teamcol.Rule{Triggers: r.Triggers, Required: r.Required}
	}
	return out
}

// New returns a Config holding the defaults.
func New() *Config {
	rules := make([]TeamRule, len(teamcol.DefaultRules))
	for i, r := range teamcol.DefaultRules {
		rules[i] = TeamRule{
			Triggers: append([]string(nil), r.Triggers...),
			Required: append([]string(nil), r.Required...),
		}
	}
	return &Config{
		LogLevel:          "info",
		LogFormat:         "text",
		Addr:              ":9080",
		DatasetPath:       "NFSU Tripura Campus Sports Day (Responses).xlsx",
		MatchPolicy:       match.PolicyContains,
		UnavailableSuffix: DefaultUnavailableSuffix,
		Columns: Columns{
			Name:     "Full Name",
			Phone:    "Phone Number",
			Branch:   "Programme / Branch",
			Semester: "Semester",
			Gender:   "Gender",
			Sport:    "Select the Sports You Want to Participate In",
			Team:     "Sports ( Team)",
		},
		Families:  append([]string(nil), category.DefaultFamilies...),
		TeamRules: rules,
		Metrics: Metrics{
			Enabled:         true,
			RefreshInterval: 10 * time.Second,
		},
	}
}
