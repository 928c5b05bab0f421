package service

import (
	"context"
	"fmt"
	"time"

	"github.com/okian/sportsday/internal/adapters/source"
	"github.com/okian/sportsday/internal/config"
	"github.com/okian/sportsday/pkg/logger"
	"github.com/okian/sportsday/pkg/metrics"
)

const nanosPerMilli = 1e6

// Bootstrap loads the configured dataset once and builds the shared catalog
// and the search service on top of it.
func Bootstrap(ctx context.Context, cfg *config.Config, log logger.Logger) (*Service, error) {
	start := time.Now()
	ds, err := source.Load(ctx, cfg.DatasetPath, source.WithSheet(cfg.DatasetSheet))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", cfg.DatasetPath, err)
	}

	catalog, err := NewCatalog(ds, Fields{
		Name:     cfg.Columns.Name,
		Phone:    cfg.Columns.Phone,
		Branch:   cfg.Columns.Branch,
		Semester: cfg.Columns.Semester,
		Gender:   cfg.Columns.Gender,
		Sport:    cfg.Columns.Sport,
		Team:     cfg.Columns.Team,
	}, WithTeamRules(cfg.Rules()))
	if err != nil {
		return nil, fmt.Errorf("index %s: %w", cfg.DatasetPath, err)
	}

	metrics.UpdateDataset(catalog.Len(), len(catalog.Columns()), len(catalog.TeamColumns()), catalog.LoadedAt())
	log.Info(ctx, "dataset loaded",
		logger.String("path", cfg.DatasetPath),
		logger.Int("rows", catalog.Len()),
		logger.Int("columns", len(catalog.Columns())),
		logger.Any("team_columns", catalog.TeamColumns()),
		logger.Float64("load_ms", float64(time.Since(start).Nanoseconds())/nanosPerMilli),
	)

	return New(catalog,
		WithLogger(log.Named("search")),
		WithMatchPolicy(cfg.MatchPolicy),
		WithFamilies(cfg.Families),
		WithUnavailableSuffix(cfg.UnavailableSuffix),
	), nil
}
