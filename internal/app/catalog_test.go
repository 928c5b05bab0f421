package service_test

import (
	"errors"
	"testing"
	"time"

	service "github.com/okian/sportsday/internal/app"
	"github.com/okian/sportsday/internal/adapters/source"
	"github.com/okian/sportsday/internal/domain/category"
	"github.com/okian/sportsday/internal/domain/match"
	"github.com/okian/sportsday/internal/domain/model"
	"github.com/okian/sportsday/internal/domain/teamcol"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNewCatalog(t *testing.T) {
	Convey("Given a registration sheet", t, func() {
		loaded := time.Date(2025, 2, 14, 9, 30, 0, 0, time.UTC)
		c, err := service.NewCatalog(fixture(), fields, service.WithClock(func() time.Time { return loaded }))

		Convey("Then the catalog is built", func() {
			So(err, ShouldBeNil)
			So(c.Len(), ShouldEqual, 6)
			So(c.LoadedAt(), ShouldEqual, loaded)
			So(c.Columns()[0], ShouldEqual, colName)
		})

		Convey("And every team member column is indexed in sheet order", func() {
			So(c.TeamColumns(), ShouldResemble, []string{colMixed, colDoubles, colRelay, colTTMixed, colMixedLate})
		})

		Convey("When filtering the individual field", func() {
			got := c.Filter(match.Contains, category.SourceSport, "chess")

			Convey("Then matches keep sheet order", func() {
				So(len(got), ShouldEqual, 3)
				So(got[0].Get(colName), ShouldEqual, "asha")
				So(got[1].Get(colName), ShouldEqual, "ravi")
				So(got[2].Get(colName), ShouldEqual, "li")
			})
		})

		Convey("When filtering the team field", func() {
			got := c.Filter(match.Contains, category.SourceTeam, "relay")

			Convey("Then only team selections are searched", func() {
				So(len(got), ShouldEqual, 2)
				So(got[0].Get(colName), ShouldEqual, "ravi")
				So(got[1].Get(colName), ShouldEqual, "jo")
			})
		})
	})

	Convey("Given a sheet without the team column", t, func() {
		ds := fixture()
		ds.Columns = ds.Columns[:6]

		Convey("Then building the catalog fails", func() {
			_, err := service.NewCatalog(ds, fields)
			So(errors.Is(err, source.ErrMissingColumn), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, colTeam)
		})
	})

	Convey("Given custom team rules", t, func() {
		c, err := service.NewCatalog(fixture(), fields, service.WithTeamRules([]teamcol.Rule{
			{Triggers: []string{"relay"}, Required: []string{"relay", "members"}},
		}))

		Convey("Then only columns the rules accept are indexed", func() {
			So(err, ShouldBeNil)
			So(c.TeamColumns(), ShouldResemble, []string{colRelay})
		})
	})

	Convey("Given an empty sheet", t, func() {
		ds := &model.Dataset{Columns: fixture().Columns}
		c, err := service.NewCatalog(ds, fields)

		Convey("Then the catalog is empty but usable", func() {
			So(err, ShouldBeNil)
			So(c.Len(), ShouldEqual, 0)
			So(c.Filter(match.Contains, category.SourceSport, ""), ShouldBeEmpty)
		})
	})
}
