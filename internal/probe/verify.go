package probe

import (
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// verify returns every problem found in one search answer. Selections come
// from the sheet itself, so each of them must match at least one record.
func verify(r Result) []string {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if r.Empty {
		add("selection answered as an empty query")
		return problems
	}
	if r.Total == 0 {
		add("selection matched no records")
	}

	grouped := 0
	if r.Grouped != nil {
		for p := r.Grouped.Oldest(); p != nil; p = p.Next() {
			for i, e := range p.Value {
				if e.Serial != i+1 {
					add("branch %q: entry %d has serial %d", p.Key, i, e.Serial)
				}
			}
			grouped += len(p.Value)
		}
	}
	if grouped != r.Total {
		add("grouped %d records, total says %d", grouped, r.Total)
	}
	if n := sum(r.BranchCounts); n != r.Total {
		add("branch counts sum to %d, total says %d", n, r.Total)
	}
	if n := sum(r.SemesterCounts); n != r.Total {
		add("semester counts sum to %d, total says %d", n, r.Total)
	}

	if r.IsTeam != (r.TeamColumn != "") {
		add("is_team=%t with team_column %q", r.IsTeam, r.TeamColumn)
	}
	if r.IsTeam && (len(r.Columns) == 0 || r.Columns[len(r.Columns)-1] != r.TeamColumn) {
		add("team column %q not projected", r.TeamColumn)
	}
	if r.IsTeam && r.Kind == degradedKind {
		add("unresolved team result carries team column %q", r.TeamColumn)
	}
	return problems
}

func sum(m *orderedmap.OrderedMap[string, int]) int {
	if m == nil {
		return 0
	}
	n := 0
	for p := m.Oldest(); p != nil; p = p.Next() {
		n += p.Value
	}
	return n
}
