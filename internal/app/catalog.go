package service

import (
	"strings"
	"time"

	"github.com/okian/sportsday/internal/adapters/source"
	"github.com/okian/sportsday/internal/domain/category"
	"github.com/okian/sportsday/internal/domain/match"
	"github.com/okian/sportsday/internal/domain/model"
	"github.com/okian/sportsday/internal/domain/normalize"
	"github.com/okian/sportsday/internal/domain/roster"
	"github.com/okian/sportsday/internal/domain/teamcol"
)

// Fields names the sheet headers the engine reads.
type Fields struct {
	Name     string
	Phone    string
	Branch   string
	Semester string
	Gender   string
	Sport    string
	Team     string
}

// projection lists the columns every result carries, in display order.
func (f Fields) projection() []string {
	return []string{f.Name, f.Semester, f.Gender, f.Branch, f.Phone}
}

func (f Fields) roster() roster.Fields {
	return roster.Fields{Branch: f.Branch, Semester: f.Semester}
}

// Options lists the distinct selections found in the sheet.
type Options struct {
	Individual []string `json:"individual"`
	Team       []string `json:"team"`
}

// Catalog is the dataset plus everything derived from it once at startup.
// It is never written after NewCatalog returns, so concurrent searches
// share it without locking.
type Catalog struct {
	dataset   *model.Dataset
	fields    Fields
	sportKeys []string
	teamKeys  []string
	teamCols  *teamcol.Resolver
	options   Options
	loadedAt  time.Time
}

// CatalogOption applies a configuration option to the Catalog.
type CatalogOption func(*catalogSettings)

type catalogSettings struct {
	rules []teamcol.Rule
	now   func() time.Time
}

// WithTeamRules replaces the team column rules.
func WithTeamRules(rules []teamcol.Rule) CatalogOption {
	return func(s *catalogSettings) {
		s.rules = rules
	}
}

// WithClock sets the clock used to stamp the load time.
func WithClock(now func() time.Time) CatalogOption {
	return func(s *catalogSettings) {
		if now != nil {
			s.now = now
		}
	}
}

// NewCatalog indexes ds. It fails when a configured column is absent.
func NewCatalog(ds *model.Dataset, fields Fields, opts ...CatalogOption) (*Catalog, error) {
	s := &catalogSettings{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}

	if err := source.RequireColumns(ds, fields.Name, fields.Phone, fields.Branch,
		fields.Semester, fields.Gender, fields.Sport, fields.Team); err != nil {
		return nil, err
	}

	c := &Catalog{
		dataset:   ds,
		fields:    fields,
		sportKeys: make([]string, len(ds.Records)),
		teamKeys:  make([]string, len(ds.Records)),
		teamCols:  teamcol.New(ds.Columns, teamcol.WithRules(s.rules)),
		loadedAt:  s.now(),
	}
	for i, r := range ds.Records {
		c.sportKeys[i] = normalize.Key(r.Get(fields.Sport))
		c.teamKeys[i] = normalize.Key(r.Get(fields.Team))
	}
	c.options = Options{
		Individual: selections(ds.Records, fields.Sport),
		Team:       selections(ds.Records, fields.Team),
	}
	return c, nil
}

// Filter returns the records whose normalized source field matches key,
// in sheet order.
func (c *Catalog) Filter(m match.Matcher, src category.Source, key string) []model.Record {
	keys := c.sportKeys
	if src == category.SourceTeam {
		keys = c.teamKeys
	}
	var out []model.Record
	for i, k := range keys {
		if m.Match(k, key) {
			out = append(out, c.dataset.Records[i])
		}
	}
	return out
}

// Len returns the number of records.
func (c *Catalog) Len() int { return c.dataset.Len() }

// Columns returns the sheet headers in declared order.
func (c *Catalog) Columns() []string { return append([]string(nil), c.dataset.Columns...) }

// TeamColumns lists the columns some team rule would accept.
func (c *Catalog) TeamColumns() []string { return c.teamCols.Candidates() }

// LoadedAt returns when the catalog was built.
func (c *Catalog) LoadedAt() time.Time { return c.loadedAt }

// selections splits checkbox answers ("Chess, 100m Race (Male)") and returns
// the distinct entries in first-seen order.
func selections(records []model.Record, field string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, r := range records {
		for _, part := range strings.Split(r.Get(field), ",") {
			part = strings.TrimSpace(part)
			k := normalize.Key(part)
			if k == "" {
				continue
			}
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, part)
		}
	}
	return out
}
