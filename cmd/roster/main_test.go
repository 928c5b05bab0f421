package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/smartystreets/goconvey/convey"
	"gopkg.in/yaml.v3"
)

const responsesCSV = `Full Name,Phone Number,Programme / Branch,Semester,Gender,Select the Sports You Want to Participate In,Sports ( Team),Relay Team Members
Asha,900001,B.Tech CSE,Semester III,Female,Chess,Relay,"Asha, Ravi"
Ravi,900002,M.Sc Forensic,I,Male,"Chess, Long Jump",Relay,
`

func writeDataset(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "responses.csv")
	if err := os.WriteFile(path, []byte(responsesCSV), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun(t *testing.T) {
	convey.Convey("Given a responses export", t, func() {
		path := writeDataset(t)
		ctx := context.Background()
		var out bytes.Buffer

		convey.Convey("When listing a team sport", func() {
			err := run(ctx, &out, options{data: path, team: "Relay"})

			convey.Convey("Then the grouped result is printed as JSON", func() {
				convey.So(err, convey.ShouldBeNil)
				var res struct {
					Category   string `json:"category"`
					IsTeam     bool   `json:"is_team"`
					TeamColumn string `json:"team_column"`
					Total      int    `json:"total"`
				}
				convey.So(json.Unmarshal(out.Bytes(), &res), convey.ShouldBeNil)
				convey.So(res.Category, convey.ShouldEqual, "Relay")
				convey.So(res.IsTeam, convey.ShouldBeTrue)
				convey.So(res.TeamColumn, convey.ShouldEqual, "Relay Team Members")
				convey.So(res.Total, convey.ShouldEqual, 2)
			})
		})

		convey.Convey("When listing the selections", func() {
			err := run(ctx, &out, options{data: path, sports: true})

			convey.Convey("Then each is printed once", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(out.String(), convey.ShouldContainSubstring, `"Long Jump"`)
				var opts struct {
					Individual []string `json:"individual"`
				}
				convey.So(json.Unmarshal(out.Bytes(), &opts), convey.ShouldBeNil)
				convey.So(opts.Individual, convey.ShouldResemble, []string{"Chess", "Long Jump"})
			})
		})

		convey.Convey("When printing the rules", func() {
			err := run(ctx, &out, options{rules: true})

			convey.Convey("Then they round-trip as YAML", func() {
				convey.So(err, convey.ShouldBeNil)
				var dump ruleDump
				convey.So(yaml.Unmarshal(out.Bytes(), &dump), convey.ShouldBeNil)
				convey.So(dump.MatchPolicy, convey.ShouldEqual, "contains")
				convey.So(dump.Families[0], convey.ShouldEqual, "table tennis")
				convey.So(dump.TeamRules[0].Triggers, convey.ShouldResemble, []string{"relay"})
				convey.So(dump.TeamRules[0].Required, convey.ShouldResemble, []string{"relay", "team"})
			})
		})

		convey.Convey("When the file does not exist", func() {
			err := run(ctx, &out, options{data: filepath.Join(t.TempDir(), "nope.xlsx")})

			convey.Convey("Then the error is returned", func() {
				convey.So(err, convey.ShouldNotBeNil)
			})
		})
	})
}
