package config_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/okian/sportsday/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.DatasetPath, convey.ShouldEqual, "NFSU Tripura Campus Sports Day (Responses).xlsx")
				convey.So(cfg.TeamRules, convey.ShouldHaveLength, 6)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("SPORTSDAY_ADDR", ":8080")
			_ = os.Setenv("SPORTSDAY_DATASET_PATH", "/data/responses.csv")
			_ = os.Setenv("SPORTSDAY_MATCH_POLICY", "token_set")
			_ = os.Setenv("SPORTSDAY_COLUMNS__BRANCH", "Department")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.DatasetPath, convey.ShouldEqual, "/data/responses.csv")
				convey.So(cfg.MatchPolicy, convey.ShouldEqual, "token_set")
				convey.So(cfg.Columns.Branch, convey.ShouldEqual, "Department")
				convey.So(cfg.Columns.Semester, convey.ShouldEqual, "Semester")
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			yamlContent := `
addr: ":9090"
log_format: json
dataset_sheet: "Form Responses 1"
columns:
  branch: "Programme"
families:
  - relay
  - tug of war
team_rules:
  - triggers: ["tug of war"]
    required: ["tug", "war"]
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("SPORTSDAY_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.LogFormat, convey.ShouldEqual, "json")
				convey.So(cfg.DatasetSheet, convey.ShouldEqual, "Form Responses 1")
				convey.So(cfg.Columns.Branch, convey.ShouldEqual, "Programme")
				convey.So(cfg.Columns.Name, convey.ShouldEqual, "Full Name")
			})

			convey.Convey("And lists should replace the defaults", func() {
				convey.So(cfg.Families, convey.ShouldResemble, []string{"relay", "tug of war"})
				convey.So(cfg.TeamRules, convey.ShouldResemble, []config.TeamRule{
					{Triggers: []string{"tug of war"}, Required: []string{"tug", "war"}},
				})
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			yamlContent := `
addr: ":9090"
log_level: debug
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("SPORTSDAY_CONFIG", tmpFile)
			_ = os.Setenv("SPORTSDAY_ADDR", ":8080")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080") // Overridden by env
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
			})
		})

		convey.Convey("When the file tunes metrics", func() {
			yamlContent := `
metrics:
  enabled: false
  refresh_interval: 30s
  matched_buckets: [0, 50, 500, 5000]
  labels:
    edition: "2025"
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("SPORTSDAY_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then the metrics section is decoded", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Metrics.Enabled, convey.ShouldBeFalse)
				convey.So(cfg.Metrics.RefreshInterval, convey.ShouldEqual, 30*time.Second)
				convey.So(cfg.Metrics.MatchedBuckets, convey.ShouldResemble, []float64{0, 50, 500, 5000})
				convey.So(cfg.Metrics.LatencyBuckets, convey.ShouldBeEmpty)
				convey.So(cfg.Metrics.Labels, convey.ShouldResemble, map[string]string{"edition": "2025"})
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			tmpFile := createTempConfigFile(`invalid: yaml: content: [`)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("SPORTSDAY_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with non-existent file", func() {
			_ = os.Setenv("SPORTSDAY_CONFIG", "/non/existent/file.yaml")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with empty addr", func() {
			_ = os.Setenv("SPORTSDAY_ADDR", "")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "addr must not be empty")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with an unknown match policy", func() {
			_ = os.Setenv("SPORTSDAY_MATCH_POLICY", "fuzzy")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})
	})
}

func clearConfigEnvVars() {
	for _, k := range []string{
		"SPORTSDAY_CONFIG",
		"SPORTSDAY_ADDR",
		"SPORTSDAY_LOG_LEVEL",
		"SPORTSDAY_DATASET_PATH",
		"SPORTSDAY_MATCH_POLICY",
		"SPORTSDAY_COLUMNS__BRANCH",
	} {
		_ = os.Unsetenv(k)
	}
}

func createTempConfigFile(content string) string {
	tmpFile, err := os.CreateTemp("", "sportsday-config-*.yaml")
	if err != nil {
		panic(err)
	}
	defer func() { _ = tmpFile.Close() }()

	if _, err := tmpFile.WriteString(content); err != nil {
		panic(err)
	}
	return tmpFile.Name()
}
