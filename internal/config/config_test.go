package config_test

import (
	"errors"
	"testing"
	"time"

	"github.com/okian/sportsday/internal/config"
	"github.com/okian/sportsday/internal/domain/teamcol"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.MatchPolicy, convey.ShouldEqual, "contains")
			convey.So(cfg.Columns.Team, convey.ShouldEqual, "Sports ( Team)")
			convey.So(cfg.Families, convey.ShouldResemble, []string{"table tennis", "badminton", "carrom", "relay"})
			convey.So(cfg.Rules(), convey.ShouldResemble, teamcol.DefaultRules)
			convey.So(cfg.Metrics.Enabled, convey.ShouldBeTrue)
			convey.So(cfg.Metrics.RefreshInterval, convey.ShouldEqual, 10*time.Second)
			convey.So(cfg.Metrics.Options(), convey.ShouldHaveLength, 5)
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})

		convey.Convey("Then its rule list does not alias the package defaults", func() {
			cfg.TeamRules[0].Triggers[0] = "changed"
			convey.So(teamcol.DefaultRules[0].Triggers[0], convey.ShouldEqual, "relay")
		})
	})
}

func TestConfig_Validate(t *testing.T) {
	convey.Convey("Given invalid configs", t, func() {
		mutations := map[string]func(*config.Config){
			"empty addr":    func(c *config.Config) { c.Addr = "" },
			"empty dataset": func(c *config.Config) { c.DatasetPath = "" },
			"bad policy":    func(c *config.Config) { c.MatchPolicy = "fuzzy" },
			"bad format":    func(c *config.Config) { c.LogFormat = "xml" },
			"blank column":  func(c *config.Config) { c.Columns.Branch = " " },
			"bad rule":      func(c *config.Config) { c.TeamRules = []config.TeamRule{{Triggers: []string{"x"}}} },
			"zero refresh":  func(c *config.Config) { c.Metrics.RefreshInterval = 0 },
			"bad buckets":   func(c *config.Config) { c.Metrics.MatchedBuckets = []float64{0, 10, 5} },
		}
		for name, mutate := range mutations {
			convey.Convey("Then "+name+" is rejected", func() {
				cfg := config.New()
				mutate(cfg)
				convey.So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		}

		convey.Convey("Then a rule without required keywords names the rule", func() {
			cfg := config.New()
			cfg.TeamRules = append(cfg.TeamRules, config.TeamRule{Triggers: []string{"kabaddi"}})
			err := cfg.Validate()
			convey.So(errors.Is(err, config.ErrInvalidTeamRule), convey.ShouldBeTrue)
			convey.So(err.Error(), convey.ShouldContainSubstring, "team_rules[6]")
		})
	})
}
