package probe

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/okian/sportsday/pkg/logger"
)

// Worker configuration constants.
const (
	workerChannelMultiplier = 2
	degradedKind            = "TEAM_UNRESOLVED"
)

type query struct {
	text string
	team bool
}

// Run checks service health, fetches the offered selections and searches
// each of them with a pool of workers. It returns ErrChecksFailed when any
// answer is inconsistent; the findings are in the returned stats.
func Run(ctx context.Context, cfg *Config) (*Stats, error) {
	stats := &Stats{StartTime: time.Now()}
	log := logger.Named("probe")

	log.Info(ctx, "starting probe",
		logger.String("baseURL", cfg.BaseURL),
		logger.Int("workers", cfg.Workers),
		logger.String("timeout", cfg.Timeout.String()),
	)

	client := newHTTPClient(cfg)
	if err := client.health(ctx); err != nil {
		return stats, fmt.Errorf("service health check failed: %w", err)
	}

	opts, err := client.options(ctx)
	if err != nil {
		return stats, fmt.Errorf("fetching selections failed: %w", err)
	}
	queries := make([]query, 0, len(opts.Individual)+len(opts.Team))
	for _, s := range opts.Individual {
		queries = append(queries, query{text: s})
	}
	for _, s := range opts.Team {
		queries = append(queries, query{text: s, team: true})
	}
	if len(queries) == 0 {
		return stats, ErrNoSelections
	}

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	jobs := make(chan query, workers*workerChannelMultiplier)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for q := range jobs {
				res, err := client.search(ctx, q)
				var problems []string
				if err != nil {
					problems = []string{err.Error()}
				} else {
					problems = verify(res)
				}

				mu.Lock()
				stats.Queries++
				stats.Records += res.Total
				if res.Kind == degradedKind {
					stats.Degraded++
				}
				for _, p := range problems {
					stats.Findings = append(stats.Findings, Finding{Query: q.text, Team: q.team, Problem: p})
				}
				if len(problems) > 0 {
					stats.Failed++
				}
				mu.Unlock()

				if len(problems) > 0 {
					log.Warn(ctx, "check failed", logger.String("query", q.text), logger.Bool("team", q.team), logger.Any("problems", problems))
				} else if cfg.Verbose {
					log.Info(ctx, "ok", logger.String("query", q.text), logger.String("category", res.Category), logger.Int("total", res.Total))
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, q := range queries {
			select {
			case <-ctx.Done():
				return
			case jobs <- q:
			}
		}
	}()
	wg.Wait()

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)
	log.Info(ctx, "probe finished",
		logger.Int("queries", stats.Queries),
		logger.Int("failed", stats.Failed),
		logger.Int("degraded", stats.Degraded),
		logger.Int("records", stats.Records),
		logger.String("duration", stats.Duration.String()),
	)

	if err := ctx.Err(); err != nil {
		return stats, err
	}
	if stats.Failed > 0 {
		return stats, fmt.Errorf("%w: %d of %d queries", ErrChecksFailed, stats.Failed, stats.Queries)
	}
	return stats, nil
}
