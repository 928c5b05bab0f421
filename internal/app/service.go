// Package service answers sport queries against the loaded registrations:
// it classifies the query, filters the sheet, finds the team member column
// when there is one, and groups and tallies the matches.
package service

import (
	"context"
	"strings"
	"time"

	"github.com/okian/sportsday/internal/domain/category"
	"github.com/okian/sportsday/internal/domain/match"
	"github.com/okian/sportsday/internal/domain/model"
	"github.com/okian/sportsday/internal/domain/roster"
	"github.com/okian/sportsday/pkg/logger"
	"github.com/okian/sportsday/pkg/metrics"
)

const (
	defaultUnavailableSuffix = " (team details not available in form)"
	noSportSelected          = "No sport selected"
)

// Query carries the two optional strings of a request. When both are set
// the individual query wins.
type Query struct {
	Sport     string `json:"sport"`
	TeamSport string `json:"team_sport"`
}

// Result is what the presentation layer renders.
type Result struct {
	// Empty is set when the request carried no query.
	Empty bool `json:"empty"`
	// Category is the display label: the query, or the query annotated
	// when team details are unavailable.
	Category   string        `json:"category"`
	Kind       category.Kind `json:"category_kind,omitempty"`
	MatchKey   string        `json:"match_key"`
	IsTeam     bool          `json:"is_team"`
	TeamColumn string        `json:"team_column,omitempty"`
	// Columns lists the projected record fields in display order.
	Columns        []string        `json:"columns"`
	Total          int             `json:"total"`
	Grouped        *roster.Grouped `json:"grouped"`
	BranchCounts   *roster.Tally   `json:"branch_counts"`
	SemesterCounts *roster.Tally   `json:"semester_counts"`
}

// Service implements the search dependencies of the HTTP API.
type Service struct {
	catalog  *Catalog
	resolver *category.Resolver
	matcher  match.Matcher
	policy   string
	suffix   string
	logger   logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMatchPolicy selects the matching primitive by name. Unknown names
// keep containment; config validation rejects them earlier.
func WithMatchPolicy(name string) Option {
	return func(s *Service) {
		if m, err := match.ByName(name); err == nil {
			s.matcher = m
			s.policy = strings.ToLower(strings.TrimSpace(name))
		}
	}
}

// WithFamilies sets the team sport families in priority order.
func WithFamilies(families []string) Option {
	return func(s *Service) {
		s.resolver = category.New(category.WithFamilies(families))
	}
}

// WithUnavailableSuffix sets the annotation for team queries without a
// team member column.
func WithUnavailableSuffix(suffix string) Option {
	return func(s *Service) {
		if suffix != "" {
			s.suffix = suffix
		}
	}
}

// New constructs a Service over an already built catalog.
func New(catalog *Catalog, opts ...Option) *Service {
	s := &Service{
		catalog:  catalog,
		resolver: category.New(),
		matcher:  match.Contains,
		policy:   match.PolicyContains,
		suffix:   defaultUnavailableSuffix,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	return s
}

// Search classifies q and returns the grouped, tallied matches.
func (s *Service) Search(ctx context.Context, q Query) Result {
	start := time.Now()

	var res Result
	switch {
	case strings.TrimSpace(q.Sport) != "":
		res = s.individual(q.Sport)
	case strings.TrimSpace(q.TeamSport) != "":
		res = s.team(ctx, q.TeamSport)
	default:
		metrics.RecordEmptyQuery()
		s.logger.Debug(ctx, "no sport selected")
		return s.empty()
	}

	metrics.RecordSearch(string(res.Kind), res.Total, float64(time.Since(start).Nanoseconds())/nanosPerMilli)
	s.logger.Debug(ctx, "search",
		logger.String("category", res.Category),
		logger.String("kind", string(res.Kind)),
		logger.String("key", res.MatchKey),
		logger.Int("matched", res.Total),
		logger.Bool("team", res.IsTeam),
	)
	return res
}

func (s *Service) individual(raw string) Result {
	m := s.resolver.Individual(raw)
	return s.build(m, strings.TrimSpace(raw), s.catalog.fields.projection())
}

func (s *Service) team(ctx context.Context, raw string) Result {
	m := s.resolver.Team(raw)
	label := strings.TrimSpace(raw)
	cols := s.catalog.fields.projection()

	// Singles entries under team sports have no partner column to look for.
	if m.Kind == category.TeamSingles {
		return s.build(m, label, cols)
	}

	col, ok := s.catalog.teamCols.Resolve(m.Normalized)
	if !ok {
		metrics.RecordTeamColumnUnresolved()
		s.logger.Warn(ctx, "team member column not found",
			logger.String("query", raw),
			logger.String("family", m.Family),
		)
		m.Kind = category.TeamUnresolved
		return s.build(m, label+s.suffix, cols)
	}

	m.TeamColumn = col
	return s.build(m, label, append(cols, col))
}

func (s *Service) build(m category.Match, label string, cols []string) Result {
	matched := s.catalog.Filter(s.matcher, m.Source, m.Key)
	projected := make([]model.Record, len(matched))
	for i, r := range matched {
		projected[i] = r.Project(cols...)
	}

	grouped, counts := roster.Build(projected, s.catalog.fields.roster())
	return Result{
		Category:       label,
		Kind:           m.Kind,
		MatchKey:       m.Key,
		IsTeam:         m.TeamColumn != "",
		TeamColumn:     m.TeamColumn,
		Columns:        cols,
		Total:          len(projected),
		Grouped:        grouped,
		BranchCounts:   counts.Branch,
		SemesterCounts: counts.Semester,
	}
}

func (s *Service) empty() Result {
	grouped, counts := roster.Build(nil, s.catalog.fields.roster())
	return Result{
		Empty:          true,
		Category:       noSportSelected,
		Columns:        []string{},
		Grouped:        grouped,
		BranchCounts:   counts.Branch,
		SemesterCounts: counts.Semester,
	}
}

// Options lists the distinct individual and team selections in the sheet.
func (s *Service) Options(_ context.Context) Options {
	return Options{
		Individual: append([]string{}, s.catalog.options.Individual...),
		Team:       append([]string{}, s.catalog.options.Team...),
	}
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	return map[string]interface{}{
		"rows":        s.catalog.Len(),
		"columns":     len(s.catalog.dataset.Columns),
		"teamColumns": s.catalog.TeamColumns(),
		"families":    s.resolver.Families(),
		"matchPolicy": s.policy,
		"loadedAt":    s.catalog.LoadedAt().UTC().Format(time.RFC3339),
	}
}
