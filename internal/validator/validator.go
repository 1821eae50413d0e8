package validator

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/derekprior/seasonsim/internal/config"
	"github.com/derekprior/seasonsim/internal/excel"
	"github.com/derekprior/seasonsim/internal/league"
)

// Violation represents a problem found in a team's schedule.
type Violation struct {
	Team    string
	Week    int    // 0 = not tied to a week
	Type    string // "error" or "warning"
	Message string
}

func (v Violation) IsError() bool {
	return v.Type == "error"
}

// HasErrors reports whether any violation is an error.
func HasErrors(violations []Violation) bool {
	for _, v := range violations {
		if v.IsError() {
			return true
		}
	}
	return false
}

// CheckSchedule runs the structural checks over in-memory schedules.
// Teams hold one entry per week by construction, so a double booking here
// means the derived week lists disagree with the map.
func CheckSchedule(teams []*league.Team, weeks int) []Violation {
	lists := make(map[string][]int, len(teams))
	for _, t := range teams {
		lists[t.Name] = t.Weeks()
	}
	return checkAll(teams, lists, weeks)
}

// CheckShortfalls warns about teams that ended up with fewer games than
// the season has room for, or without a bye.
func CheckShortfalls(teams []*league.Team, weeks int) []Violation {
	var violations []Violation
	want := weeks - 1
	for _, t := range teams {
		if games := t.Games(); games < want {
			violations = append(violations, Violation{
				Team:    t.Name,
				Type:    "warning",
				Message: fmt.Sprintf("%s has %d games scheduled (room for %d)", t.Name, games, want),
			})
		}
		if _, ok := t.ByeWeek(); !ok {
			violations = append(violations, Violation{
				Team:    t.Name,
				Type:    "warning",
				Message: fmt.Sprintf("%s has no bye week", t.Name),
			})
		}
	}
	return violations
}

// Validate reads a schedule workbook and checks the team sheets.
func Validate(cfg *config.Config, path string) ([]Violation, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	names := make([]string, 0, len(cfg.Teams))
	for _, t := range cfg.Teams {
		names = append(names, t.Name)
	}

	sheets, err := excel.ReadTeamSchedules(f, names)
	if err != nil {
		return nil, fmt.Errorf("reading team sheets: %w", err)
	}

	teams := make([]*league.Team, 0, len(sheets))
	lists := make(map[string][]int, len(sheets))
	for i, s := range sheets {
		ct := cfg.Teams[i]
		t := league.NewTeam(ct.Name, ct.Conference, ct.Division, ct.Rating, ct.StadiumRating)
		for _, row := range s.Rows {
			lists[t.Name] = append(lists[t.Name], row.Week)
			t.Schedule[row.Week] = row.Entry
		}
		teams = append(teams, t)
	}

	violations := checkAll(teams, lists, cfg.Season.Weeks)
	violations = append(violations, CheckShortfalls(teams, cfg.Season.Weeks)...)
	return violations, nil
}

func checkAll(teams []*league.Team, lists map[string][]int, weeks int) []Violation {
	var violations []Violation
	violations = append(violations, checkDoubleBooking(teams, lists)...)
	violations = append(violations, checkWeekRange(teams, weeks)...)
	violations = append(violations, checkMirrored(teams)...)
	violations = append(violations, checkDuplicatePairs(teams, weeks)...)
	return violations
}

func checkDoubleBooking(teams []*league.Team, lists map[string][]int) []Violation {
	var violations []Violation
	for _, t := range teams {
		counts := make(map[int]int)
		for _, w := range lists[t.Name] {
			counts[w]++
			if counts[w] == 2 {
				violations = append(violations, Violation{
					Team:    t.Name,
					Week:    w,
					Type:    "error",
					Message: fmt.Sprintf("%s has multiple games in week %d", t.Name, w),
				})
			}
		}
	}
	return violations
}

func checkWeekRange(teams []*league.Team, weeks int) []Violation {
	var violations []Violation
	for _, t := range teams {
		for _, w := range t.Weeks() {
			if w < 1 || w > weeks {
				violations = append(violations, Violation{
					Team:    t.Name,
					Week:    w,
					Type:    "error",
					Message: fmt.Sprintf("%s is scheduled in week %d outside weeks 1-%d", t.Name, w, weeks),
				})
			}
		}
	}
	return violations
}

func checkMirrored(teams []*league.Team) []Violation {
	byName := make(map[string]*league.Team, len(teams))
	for _, t := range teams {
		byName[t.Name] = t
	}

	var violations []Violation
	for _, t := range teams {
		for _, w := range t.Weeks() {
			e := t.Schedule[w]
			if e.IsBye() {
				continue
			}
			opp, ok := byName[e.Opponent]
			if !ok {
				violations = append(violations, Violation{
					Team:    t.Name,
					Week:    w,
					Type:    "error",
					Message: fmt.Sprintf("%s plays unknown team %q in week %d", t.Name, e.Opponent, w),
				})
				continue
			}
			want := league.Entry{Opponent: t.Name, Location: e.Location.Opposite()}
			if e.Location == league.NoLocation || opp.Schedule[w] != want {
				violations = append(violations, Violation{
					Team: t.Name,
					Week: w,
					Type: "error",
					Message: fmt.Sprintf("%s plays %s (%s) in week %d but %s's schedule does not mirror it",
						t.Name, opp.Name, e.Location, w, opp.Name),
				})
			}
		}
	}
	return violations
}

func checkDuplicatePairs(teams []*league.Team, weeks int) []Violation {
	type pair struct{ a, b string }

	var violations []Violation
	for w := 1; w <= weeks; w++ {
		seen := make(map[pair]bool)
		for _, t := range teams {
			e, ok := t.Schedule[w]
			if !ok || e.IsBye() || e.Location != league.Home {
				continue
			}
			a, b := t.Name, e.Opponent
			if a > b {
				a, b = b, a
			}
			if seen[pair{a, b}] {
				violations = append(violations, Violation{
					Team:    t.Name,
					Week:    w,
					Type:    "error",
					Message: fmt.Sprintf("%s vs %s is listed twice in week %d", a, b, w),
				})
				continue
			}
			seen[pair{a, b}] = true
		}
	}
	return violations
}
