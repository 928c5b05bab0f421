package service_test

import (
	service "github.com/okian/sportsday/internal/app"
	"github.com/okian/sportsday/internal/domain/model"
	"github.com/okian/sportsday/pkg/logger"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

const (
	colName      = "Full Name"
	colPhone     = "Phone Number"
	colBranch    = "Programme / Branch"
	colSemester  = "Semester"
	colGender    = "Gender"
	colSport     = "Select the Sports You Want to Participate In"
	colTeam      = "Sports ( Team)"
	colMixed     = "Enter names - Badminton Mixed Team Members"
	colDoubles   = "Enter names - Badminton Doubles Team Members"
	colRelay     = "Relay Team Members"
	colTTMixed   = "Table Tennis Mixed Partner"
	colMixedLate = "Badminton Mixed Partner (if any)"
)

var fields = service.Fields{
	Name:     colName,
	Phone:    colPhone,
	Branch:   colBranch,
	Semester: colSemester,
	Gender:   colGender,
	Sport:    colSport,
	Team:     colTeam,
}

func student(name, branch, sem, sport, team string, extra ...string) model.Record {
	r := model.Record{
		colName:      name,
		colPhone:     "90000" + name,
		colBranch:    branch,
		colSemester:  sem,
		colGender:    "Male",
		colSport:     sport,
		colTeam:      team,
		colMixed:     "",
		colDoubles:   "",
		colRelay:     "",
		colTTMixed:   "",
		colMixedLate: "",
	}
	for i := 0; i+1 < len(extra); i += 2 {
		r[extra[i]] = extra[i+1]
	}
	return r
}

func fixture() *model.Dataset {
	return &model.Dataset{
		Columns: []string{
			colName, colPhone, colBranch, colSemester, colGender, colSport, colTeam,
			colMixed, colDoubles, colRelay, colTTMixed, colMixedLate,
		},
		Records: []model.Record{
			student("asha", "B.Tech CSE", "Semester III", "100m Race (Female), Chess", "Badminton (Mixed)", colMixed, "asha, ravi"),
			student("ravi", "B.Tech CSE", "I", "Chess", "Badminton (Mixed), Relay", colMixed, "asha, ravi", colRelay, "ravi, jo, ken, li"),
			student("mona", "M.Sc Forensic", "Semester II", "100M RACE (Male)", "Badminton Doubles"),
			student("jo", "B.Tech CSE", "Unknown", "", "Relay, Chess - Team"),
			student("ken", "M.Sc Forensic", "Semester I", "Long Jump", "Table Tennis - Singles"),
			student("li", "B.Tech CSE", "Semester II", "chess", "Chess - Team"),
		},
	}
}
