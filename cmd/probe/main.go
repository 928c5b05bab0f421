package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/okian/sportsday/internal/probe"
	"github.com/okian/sportsday/pkg/logger"
)

// Default configuration constants.
const (
	defaultWorkers = 2 // multiplier for runtime.NumCPU()
	defaultTimeout = 10 * time.Second
	defaultRunTime = 5 * time.Minute
)

func main() {
	var (
		baseURL = flag.String("url", "http://localhost:9080", "Base URL of the service")
		workers = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Number of concurrent workers")
		timeout = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		format  = flag.String("log-format", "text", "Log format: text or json")
		verbose = flag.Bool("verbose", false, "Log every query, not only failures")
	)
	flag.Parse()

	if err := logger.Init(logger.WithFormat(*format)); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, defaultRunTime)
	defer cancel()

	stats, err := probe.Run(ctx, &probe.Config{
		BaseURL: *baseURL,
		Workers: *workers,
		Timeout: *timeout,
		Verbose: *verbose,
	})
	if err != nil {
		log := logger.Get()
		if stats != nil {
			for _, f := range stats.Findings {
				log.Error(ctx, "finding", logger.String("query", f.Query), logger.Bool("team", f.Team), logger.String("problem", f.Problem))
			}
		}
		log.Error(ctx, "probe failed", logger.Error(err))
		os.Exit(1)
	}
}
