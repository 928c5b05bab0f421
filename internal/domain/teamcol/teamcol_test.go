package teamcol

import (
	"testing"

	"github.com/okian/sportsday/internal/domain/normalize"
	. "github.com/smartystreets/goconvey/convey"
)

var sheet = []string{
	"Timestamp",
	"Full Name",
	"Sports ( Team)",
	"Enter names of team members - Relay Team",
	"Enter names of team members - Carrom",
	"Enter names of team members - Table Tennis Doubles",
	"Enter names of team members - Table Tennis Mixed Doubles",
	"Enter names - Badminton Mixed Team Members",
	"Enter names - Badminton Doubles Team Members",
}

func TestResolve(t *testing.T) {
	Convey("Given a sheet with hand-typed team member headers", t, func() {
		r := New(sheet)

		cases := []struct {
			query string
			want  string
		}{
			{"Relay 4x100", "Enter names of team members - Relay Team"},
			{"Carrom (Doubles)", "Enter names of team members - Carrom"},
			{"Table Tennis - Mixed", "Enter names of team members - Table Tennis Mixed Doubles"},
			{"Table Tennis - Doubles", "Enter names of team members - Table Tennis Doubles"},
			{"Badminton (Mixed)", "Enter names - Badminton Mixed Team Members"},
			{"Badminton Doubles", "Enter names - Badminton Doubles Team Members"},
		}
		for _, c := range cases {
			Convey("Then "+c.query+" resolves to its column", func() {
				got, ok := r.Resolve(normalize.Key(c.query))
				So(ok, ShouldBeTrue)
				So(got, ShouldEqual, c.want)
			})
		}

		Convey("Then an unknown family is unresolved", func() {
			_, ok := r.Resolve(normalize.Key("Chess - Team"))
			So(ok, ShouldBeFalse)
		})
	})

	Convey("Given badminton mixed and doubles columns", t, func() {
		r := New([]string{
			"Enter names - Badminton Mixed Team Members",
			"Enter names - Badminton Doubles Team Members",
		})

		Convey("Then a mixed query never picks the doubles column", func() {
			got, ok := r.Resolve(normalize.Key("Badminton (Mixed)"))
			So(ok, ShouldBeTrue)
			So(got, ShouldEqual, "Enter names - Badminton Mixed Team Members")
		})
	})

	Convey("Given two columns that both qualify", t, func() {
		r := New([]string{"Carrom Team B", "Carrom Team A"})

		Convey("Then the first in declared order wins", func() {
			got, _ := r.Resolve("carrom")
			So(got, ShouldEqual, "Carrom Team B")
		})
	})

	Convey("Given a rule that fires but no column qualifies", t, func() {
		r := New([]string{"Full Name", "Enter names - Badminton Mixed"})
		_, ok := r.Resolve("badminton doubles")
		So(ok, ShouldBeFalse)
	})
}

func TestRules(t *testing.T) {
	Convey("Given custom rules", t, func() {
		r := New([]string{"Tug-of-War squad", "Relay Team"}, WithRules([]Rule{
			{Triggers: []string{"Tug of War"}, Required: []string{"tug-of-war", "squad"}},
			{Triggers: []string{"bad"}},
		}))

		Convey("Then invalid rules are dropped and tokens normalized", func() {
			So(r.Rules(), ShouldResemble, []Rule{
				{Triggers: []string{"tug of war"}, Required: []string{"tug-of-war", "squad"}},
			})
		})

		Convey("Then the custom rule resolves", func() {
			got, ok := r.Resolve("tug of war boys")
			So(ok, ShouldBeTrue)
			So(got, ShouldEqual, "Tug-of-War squad")
		})

		Convey("And the defaults no longer apply", func() {
			_, ok := r.Resolve("relay")
			So(ok, ShouldBeFalse)
		})
	})

	Convey("Given the default rules", t, func() {
		r := New(sheet)
		rule, ok := r.Rule("table tennis - mixed")
		So(ok, ShouldBeTrue)
		So(rule.Required, ShouldResemble, []string{"table", "tennis", "mixed"})
		So(r.Candidates(), ShouldHaveLength, 6)
	})
}
