// Package probe runs every selection a live portal offers through its
// search endpoint and checks the shape of each answer.
package probe

import (
	"time"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Config holds configuration for a probe run.
type Config struct {
	BaseURL string        // Base URL of the service
	Workers int           // Number of concurrent workers
	Timeout time.Duration // HTTP request timeout
	Verbose bool          // Log every query, not only failures
}

// Options mirrors the /sports response.
type Options struct {
	Individual []string `json:"individual"`
	Team       []string `json:"team"`
}

// Entry mirrors one grouped record.
type Entry struct {
	Serial int               `json:"sno"`
	Record map[string]string `json:"record"`
}

// Result mirrors the /search response. Grouped and the tallies decode into
// ordered maps so branch order survives the round trip.
type Result struct {
	Empty          bool                                    `json:"empty"`
	Category       string                                  `json:"category"`
	Kind           string                                  `json:"category_kind"`
	IsTeam         bool                                    `json:"is_team"`
	TeamColumn     string                                  `json:"team_column"`
	Columns        []string                                `json:"columns"`
	Total          int                                     `json:"total"`
	Grouped        *orderedmap.OrderedMap[string, []Entry] `json:"grouped"`
	BranchCounts   *orderedmap.OrderedMap[string, int]     `json:"branch_counts"`
	SemesterCounts *orderedmap.OrderedMap[string, int]     `json:"semester_counts"`
}

// Finding is one failed check.
type Finding struct {
	Query   string `json:"query"`
	Team    bool   `json:"team"`
	Problem string `json:"problem"`
}

// Stats holds run statistics.
type Stats struct {
	Queries   int
	Failed    int
	Degraded  int
	Records   int
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
	Findings  []Finding
}
