package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	app "github.com/okian/sportsday/internal/app"
	"github.com/okian/sportsday/internal/config"
	"github.com/okian/sportsday/pkg/logger"
)

func main() {
	var (
		data   = flag.String("data", "", "Responses workbook (.xlsx) or CSV export (default: dataset_path from config)")
		sheet  = flag.String("sheet", "", "Worksheet name (default: first sheet)")
		sport  = flag.String("sport", "", "Individual sport to list")
		team   = flag.String("team", "", "Team sport to list")
		sports = flag.Bool("sports", false, "List the selections found in the sheet")
		rules  = flag.Bool("rules", false, "Print the effective families and team column rules as YAML")
		debug  = flag.Bool("debug", false, "Enable debug logging on stderr")
	)
	flag.Parse()

	if err := run(context.Background(), os.Stdout, options{
		data: *data, sheet: *sheet, sport: *sport, team: *team,
		sports: *sports, rules: *rules, debug: *debug,
	}); err != nil {
		os.Stderr.WriteString("roster: " + err.Error() + "\n")
		os.Exit(1)
	}
}

type options struct {
	data, sheet  string
	sport, team  string
	sports       bool
	rules, debug bool
}

// ruleDump is the YAML form of the matching configuration; it can be pasted
// into the service config file.
type ruleDump struct {
	MatchPolicy string            `yaml:"match_policy"`
	Families    []string          `yaml:"families"`
	TeamRules   []config.TeamRule `yaml:"team_rules"`
}

func run(ctx context.Context, out io.Writer, o options) error {
	level := "warn"
	if o.debug {
		level = "debug"
	}
	if err := logger.Init(logger.WithWriter(os.Stderr)); err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	if err := logger.SetLevelString(level); err != nil {
		return fmt.Errorf("set log level: %w", err)
	}

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	if o.data != "" {
		cfg.DatasetPath = o.data
	}
	if o.sheet != "" {
		cfg.DatasetSheet = o.sheet
	}

	if o.rules {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(ruleDump{MatchPolicy: cfg.MatchPolicy, Families: cfg.Families, TeamRules: cfg.TeamRules}); err != nil {
			return fmt.Errorf("encode rules: %w", err)
		}
		return enc.Close()
	}

	svc, err := app.Bootstrap(ctx, cfg, logger.Get())
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if o.sports {
		return enc.Encode(svc.Options(ctx))
	}
	return enc.Encode(svc.Search(ctx, app.Query{Sport: o.sport, TeamSport: o.team}))
}
