// Package teamcol finds the spreadsheet column that holds team member names
// for a team sport query.
//
// Column headers are typed by hand in the form builder, so they are matched
// by keywords rather than by name. Rules are tried in order and the first
// rule whose triggers all occur in the query decides the keywords a column
// must contain. When several columns qualify the first one in the sheet's
// declared order wins; which one is "right" is undefined without domain
// input, so the order dependency is kept as is.
package teamcol

import (
	"strings"

	"github.com/okian/sportsday/internal/domain/normalize"
)

// Rule maps a family of team queries to the keywords its member column carries.
type Rule struct {
	// Triggers must all be substrings of the normalized query.
	Triggers []string `json:"triggers" yaml:"triggers"`
	// Required must all be substrings of the normalized column name.
	Required []string `json:"required" yaml:"required"`
}

// DefaultRules is the built-in priority list.
var DefaultRules = []Rule{
	{Triggers: []string{"relay"}, Required: []string{"relay", "team"}},
	{Triggers: []string{"carrom"}, Required: []string{"carrom"}},
	{Triggers: []string{"table tennis", "mixed"}, Required: []string{"table", "tennis", "mixed"}},
	{Triggers: []string{"table tennis"}, Required: []string{"table", "tennis", "double"}},
	{Triggers: []string{"badminton", "mixed"}, Required: []string{"badminton", "mixed"}},
	{Triggers: []string{"badminton"}, Required: []string{"badminton", "double"}},
}

type column struct {
	name string
	key  string
}

// Resolver holds the normalized column index. It is built once and is safe
// for concurrent use.
type Resolver struct {
	columns []column
	rules   []Rule
}

// Option applies a configuration option to the Resolver.
type Option func(*Resolver)

// WithRules replaces the rule list. Rule tokens are normalized; rules left
// without triggers or required keywords are dropped. An empty list keeps
// the defaults.
func WithRules(rules []Rule) Option {
	return func(r *Resolver) {
		var out []Rule
		for _, rule := range rules {
			nr := Rule{Triggers: keys(rule.Triggers), Required: keys(rule.Required)}
			if len(nr.Triggers) == 0 || len(nr.Required) == 0 {
				continue
			}
			out = append(out, nr)
		}
		if len(out) > 0 {
			r.rules = out
		}
	}
}

// New indexes columns in their declared order.
func New(columns []string, opts ...Option) *Resolver {
	r := &Resolver{
		columns: make([]column, 0, len(columns)),
		rules:   DefaultRules,
	}
	for _, c := range columns {
		r.columns = append(r.columns, column{name: c, key: normalize.Key(c)})
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Rules returns the rule list in priority order.
func (r *Resolver) Rules() []Rule {
	return append([]Rule(nil), r.rules...)
}

// Rule returns the first rule triggered by the normalized query.
func (r *Resolver) Rule(query string) (Rule, bool) {
	for _, rule := range r.rules {
		if containsAll(query, rule.Triggers) {
			return rule, true
		}
	}
	return Rule{}, false
}

// Resolve returns the original name of the team member column for the
// normalized query. It reports false when no rule fires or no column
// carries the rule's keywords.
func (r *Resolver) Resolve(query string) (string, bool) {
	rule, ok := r.Rule(query)
	if !ok {
		return "", false
	}
	for _, c := range r.columns {
		if containsAll(c.key, rule.Required) {
			return c.name, true
		}
	}
	return "", false
}

// Candidates lists every column that contains all keywords of some rule,
// in declared order. It is meant for diagnostics.
func (r *Resolver) Candidates() []string {
	var out []string
	for _, c := range r.columns {
		for _, rule := range r.rules {
			if containsAll(c.key, rule.Required) {
				out = append(out, c.name)
				break
			}
		}
	}
	return out
}

func containsAll(s string, subs []string) bool {
	for _, sub := range subs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}

func keys(in []string) []string {
	var out []string
	for _, s := range in {
		if k := normalize.Key(s); k != "" {
			out = append(out, k)
		}
	}
	return out
}
