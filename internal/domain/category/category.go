// Package category classifies a sport query into a participation category
// and derives the key used to filter registration records.
package category

import (
	"strings"
	"unicode"

	"github.com/okian/sportsday/internal/domain/normalize"
)

// Kind is the participation category of a query.
type Kind string

// Participation categories.
const (
	Individual     Kind = "INDIVIDUAL"
	TeamSingles    Kind = "TEAM_SINGLES"
	TeamDoubles    Kind = "TEAM_DOUBLES"
	TeamMixed      Kind = "TEAM_MIXED"
	TeamGeneric    Kind = "TEAM_GENERIC"
	TeamUnresolved Kind = "TEAM_UNRESOLVED"
)

// IsTeam reports whether the category came from the team-sport selection.
func (k Kind) IsTeam() bool {
	return k != Individual && k != ""
}

// Source names the record field a match filters on.
type Source int

// Record fields a query can be filtered against.
const (
	SourceSport Source = iota
	SourceTeam
)

// DefaultFamilies lists the team sport families in the order they are
// tested against a team query.
var DefaultFamilies = []string{"table tennis", "badminton", "carrom", "relay"}

// Match is the outcome of classifying one query.
type Match struct {
	// Query is the raw query as supplied.
	Query string
	// Normalized is the full normalized query.
	Normalized string
	// Key is the normalized text records are filtered on.
	Key string
	// Family is the matched sport family, empty when none matched.
	Family     string
	Kind       Kind
	Source     Source
	TeamColumn string
}

// Resolver classifies queries. It is immutable after construction and safe
// for concurrent use.
type Resolver struct {
	families []string
}

// Option applies a configuration option to the Resolver.
type Option func(*Resolver)

// WithFamilies replaces the ordered family list. Families are normalized;
// blanks are dropped. An empty list keeps the defaults.
func WithFamilies(families []string) Option {
	return func(r *Resolver) {
		var fs []string
		for _, f := range families {
			if k := normalize.Key(f); k != "" {
				fs = append(fs, k)
			}
		}
		if len(fs) > 0 {
			r.families = fs
		}
	}
}

// New creates a Resolver.
func New(opts ...Option) *Resolver {
	r := &Resolver{families: append([]string(nil), DefaultFamilies...)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Families returns a copy of the family list in priority order.
func (r *Resolver) Families() []string {
	return append([]string(nil), r.families...)
}

// Individual classifies an individual-sport query. Parenthetical
// qualifiers such as "(Male)" are dropped from the key.
func (r *Resolver) Individual(raw string) Match {
	return Match{
		Query:      raw,
		Normalized: normalize.Key(raw),
		Key:        qualifierFree(raw),
		Kind:       Individual,
		Source:     SourceSport,
	}
}

// Team classifies a team-sport query.
//
// Singles events listed under team sports are treated like individual
// queries and never reach team column lookup. Otherwise the first family
// contained in the query becomes the key so that every variant of a family
// filters the same population; the variant is narrowed later by the team
// column.
func (r *Resolver) Team(raw string) Match {
	n := normalize.Key(raw)
	m := Match{Query: raw, Normalized: n, Source: SourceTeam}

	if hasToken(raw, "single", "singles") {
		m.Kind = TeamSingles
		m.Key = qualifierFree(raw)
		return m
	}

	for _, f := range r.families {
		if strings.Contains(n, f) {
			m.Family = f
			m.Key = f
			m.Kind = variant(n)
			return m
		}
	}

	m.Key = n
	m.Kind = TeamGeneric
	return m
}

func variant(n string) Kind {
	switch {
	case strings.Contains(n, "mixed"):
		return TeamMixed
	case strings.Contains(n, "double"):
		return TeamDoubles
	default:
		return TeamGeneric
	}
}

// qualifierFree normalizes the text before the first '('.
func qualifierFree(raw string) string {
	head, _, _ := strings.Cut(raw, "(")
	return normalize.Key(head)
}

// hasToken reports whether raw holds one of tokens as a whole word. Words
// break on every rune that is neither letter nor digit, so "(Singles)" and
// "Singles/Doubles" both yield "singles".
func hasToken(raw string, tokens ...string) bool {
	for _, tok := range strings.FieldsFunc(strings.ToLower(raw), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		for _, want := range tokens {
			if tok == want {
				return true
			}
		}
	}
	return false
}
