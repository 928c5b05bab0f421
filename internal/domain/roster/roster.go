// Package roster groups matched registrations by branch, numbers them in
// semester order and tallies them for the summary charts.
package roster

import (
	"slices"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/okian/sportsday/internal/domain/model"
	"github.com/okian/sportsday/internal/domain/semester"
)

// Fields names the record fields grouping and ranking read.
type Fields struct {
	Branch   string
	Semester string
}

// Entry is a record with its serial number inside its branch.
type Entry struct {
	Serial int          `json:"sno"`
	Record model.Record `json:"record"`
}

// Grouped maps branch -> entries. Branches iterate in the order they are
// first seen after semester sorting; entries iterate in serial order.
type Grouped = orderedmap.OrderedMap[string, []Entry]

// Tally maps a label to its count in first-seen order.
type Tally = orderedmap.OrderedMap[string, int]

// Counts holds the per-branch and per-semester-label tallies of one
// filtered record set.
type Counts struct {
	Branch   *Tally
	Semester *Tally
}

// Build ranks, sorts, groups and numbers records, and tallies them.
//
// Sorting is stable, so records of equal semester rank keep their source
// order. Semester counts are keyed by the raw label, not the rank: "I" and
// "Semester I" are counted apart.
func Build(records []model.Record, f Fields) (*Grouped, Counts) {
	type ranked struct {
		rank int
		rec  model.Record
	}
	rs := make([]ranked, len(records))
	for i, r := range records {
		rs[i] = ranked{rank: semester.Rank(r.Get(f.Semester)), rec: r}
	}
	slices.SortStableFunc(rs, func(a, b ranked) int { return a.rank - b.rank })

	grouped := orderedmap.New[string, []Entry]()
	for _, r := range rs {
		branch := r.rec.Get(f.Branch)
		entries, _ := grouped.Get(branch)
		entries = append(entries, Entry{Serial: len(entries) + 1, Record: r.rec})
		grouped.Set(branch, entries)
	}

	counts := Counts{
		Branch:   orderedmap.New[string, int](),
		Semester: orderedmap.New[string, int](),
	}
	for _, r := range records {
		incr(counts.Branch, r.Get(f.Branch))
		incr(counts.Semester, r.Get(f.Semester))
	}
	return grouped, counts
}

// Total sums the values of a tally.
func Total(t *Tally) int {
	if t == nil {
		return 0
	}
	n := 0
	for p := t.Oldest(); p != nil; p = p.Next() {
		n += p.Value
	}
	return n
}

func incr(t *Tally, key string) {
	n, _ := t.Get(key)
	t.Set(key, n+1)
}
