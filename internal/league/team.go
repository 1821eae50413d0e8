package league

import (
	"fmt"
	"sort"

	"github.com/derekprior/seasonsim/internal/config"
)

// Bye is the opponent recorded for a team's bye week.
const Bye = "BYE"

// Location is where a team plays a scheduled game.
type Location string

const (
	Home       Location = "home"
	Away       Location = "away"
	NoLocation Location = ""
)

// Opposite returns the location the opponent records for the same game.
func (l Location) Opposite() Location {
	switch l {
	case Home:
		return Away
	case Away:
		return Home
	default:
		return NoLocation
	}
}

// Entry is one week of a team's schedule: an opponent or a bye.
type Entry struct {
	Opponent string
	Location Location
}

// ByeEntry returns the entry recorded for a bye week.
func ByeEntry() Entry {
	return Entry{Opponent: Bye, Location: NoLocation}
}

func (e Entry) IsBye() bool {
	return e.Opponent == Bye
}

// Team is a league member and its season state.
type Team struct {
	Name          string
	Conference    string
	Division      string
	Rating        float64
	StadiumRating float64

	// Schedule maps week number to that week's entry. A map keeps at most
	// one entry per week.
	Schedule map[int]Entry

	Wins     int
	Losses   int
	Playoffs bool
}

func NewTeam(name, conference, division string, rating, stadiumRating float64) *Team {
	return &Team{
		Name:          name,
		Conference:    conference,
		Division:      division,
		Rating:        rating,
		StadiumRating: stadiumRating,
		Schedule:      make(map[int]Entry),
	}
}

func (t *Team) String() string {
	return fmt.Sprintf("%s (%s %s)", t.Name, t.Conference, t.Division)
}

// Weeks returns the scheduled week numbers in ascending order.
func (t *Team) Weeks() []int {
	weeks := make([]int, 0, len(t.Schedule))
	for w := range t.Schedule {
		weeks = append(weeks, w)
	}
	sort.Ints(weeks)
	return weeks
}

// FreeWeeks returns the weeks in [from, to] with no entry.
func (t *Team) FreeWeeks(from, to int) []int {
	var weeks []int
	for w := from; w <= to; w++ {
		if _, ok := t.Schedule[w]; !ok {
			weeks = append(weeks, w)
		}
	}
	return weeks
}

// ByeWeek returns the first week holding the team's bye.
func (t *Team) ByeWeek() (int, bool) {
	for _, w := range t.Weeks() {
		if t.Schedule[w].IsBye() {
			return w, true
		}
	}
	return 0, false
}

// Games counts the non-bye entries.
func (t *Team) Games() int {
	n := 0
	for _, e := range t.Schedule {
		if !e.IsBye() {
			n++
		}
	}
	return n
}

// ClearSchedule removes every entry.
func (t *Team) ClearSchedule() {
	t.Schedule = make(map[int]Entry)
}

// Registry is the ordered roster for one run. It is owned by the caller of
// the scheduling pipeline.
type Registry struct {
	teams  []*Team
	byName map[string]*Team
}

// NewRegistry builds a registry, rejecting duplicate names.
func NewRegistry(teams []*Team) (*Registry, error) {
	r := &Registry{byName: make(map[string]*Team, len(teams))}
	for _, t := range teams {
		if t.Name == Bye {
			return nil, fmt.Errorf("team name %q is reserved", Bye)
		}
		if _, ok := r.byName[t.Name]; ok {
			return nil, fmt.Errorf("duplicate team %q", t.Name)
		}
		if t.Schedule == nil {
			t.Schedule = make(map[int]Entry)
		}
		r.byName[t.Name] = t
		r.teams = append(r.teams, t)
	}
	return r, nil
}

// FromConfig creates fresh teams from the configured roster.
func FromConfig(cfg *config.Config) (*Registry, error) {
	teams := make([]*Team, 0, len(cfg.Teams))
	for _, ct := range cfg.Teams {
		teams = append(teams, NewTeam(ct.Name, ct.Conference, ct.Division, ct.Rating, ct.StadiumRating))
	}
	return NewRegistry(teams)
}

// Teams returns the teams in roster order.
func (r *Registry) Teams() []*Team {
	return r.teams
}

func (r *Registry) Len() int {
	return len(r.teams)
}

// Lookup finds a team by name.
func (r *Registry) Lookup(name string) (*Team, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// ClearSchedules empties every team's schedule.
func (r *Registry) ClearSchedules() {
	for _, t := range r.teams {
		t.ClearSchedule()
	}
}
