package schedule

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/derekprior/seasonsim/internal/config"
	"github.com/derekprior/seasonsim/internal/league"
	"github.com/derekprior/seasonsim/internal/strategy"
)

// Season bounds the week range, the preferred bye window and the number of
// regeneration attempts.
type Season struct {
	Weeks       int
	ByeStart    int
	ByeEnd      int
	MaxAttempts int
}

// SeasonFromConfig reads the season bounds from a loaded config.
func SeasonFromConfig(cfg *config.Config) Season {
	return Season{
		Weeks:       cfg.Season.Weeks,
		ByeStart:    cfg.Season.ByeWindow.Start,
		ByeEnd:      cfg.Season.ByeWindow.End,
		MaxAttempts: cfg.Season.MaxAttempts,
	}
}

// Builder places games and byes into team schedules. Placement is random
// and never looks ahead, so a pairing is skipped when its two teams share
// no free week.
type Builder struct {
	season Season
	rng    *rand.Rand
	log    logrus.FieldLogger
}

func NewBuilder(season Season, rng *rand.Rand, log logrus.FieldLogger) *Builder {
	return &Builder{season: season, rng: rng, log: log}
}

// AssignSlot picks a random week free for both teams and a random
// orientation, then records the game in both schedules. It returns false,
// writing nothing, when no such week exists.
func (b *Builder) AssignSlot(a, c *league.Team) bool {
	if a == c {
		return false
	}

	var free []int
	for w := 1; w <= b.season.Weeks; w++ {
		_, busyA := a.Schedule[w]
		_, busyC := c.Schedule[w]
		if !busyA && !busyC {
			free = append(free, w)
		}
	}
	if len(free) == 0 {
		return false
	}

	week := free[b.rng.Intn(len(free))]
	b.record(week, a, c)
	return true
}

// record writes one mirrored game with a random home team.
func (b *Builder) record(week int, a, c *league.Team) {
	loc := league.Home
	if b.rng.Intn(2) == 1 {
		loc = league.Away
	}
	a.Schedule[week] = league.Entry{Opponent: c.Name, Location: loc}
	c.Schedule[week] = league.Entry{Opponent: a.Name, Location: loc.Opposite()}
}

// RunPass places every pairing of the pass and returns how many fit.
func (b *Builder) RunPass(pass strategy.Pass) int {
	placed := 0
	for _, p := range pass.Pairings {
		if b.AssignSlot(p.A, p.B) {
			placed++
		}
	}
	b.log.WithFields(logrus.Fields{
		"pass":    pass.Name,
		"placed":  placed,
		"skipped": len(pass.Pairings) - placed,
	}).Debug("Pass complete")
	return placed
}

// AssignByeWeeks gives each team a bye, preferring the bye window and
// falling back to the whole season. A team with no free week gets none.
func (b *Builder) AssignByeWeeks(teams []*league.Team) {
	for _, t := range teams {
		free := t.FreeWeeks(b.season.ByeStart, b.season.ByeEnd)
		if len(free) == 0 {
			free = t.FreeWeeks(1, b.season.Weeks)
		}
		if len(free) == 0 {
			b.log.WithField("team", t.Name).Debug("No free week for a bye")
			continue
		}
		t.Schedule[free[b.rng.Intn(len(free))]] = league.ByeEntry()
	}
}

// FillRemainingGames hands a bye to any team still without one, then pairs
// the teams left open in each week. When a week has an odd number of open
// teams, the first team holding its bye that week gives it up to join the
// pool. A team left over after pairing stays open.
func (b *Builder) FillRemainingGames(teams []*league.Team) {
	for _, t := range teams {
		if _, ok := t.ByeWeek(); ok {
			continue
		}
		free := t.FreeWeeks(1, b.season.Weeks)
		if len(free) == 0 {
			continue
		}
		t.Schedule[free[b.rng.Intn(len(free))]] = league.ByeEntry()
	}

	for w := 1; w <= b.season.Weeks; w++ {
		var open []*league.Team
		for _, t := range teams {
			if _, ok := t.Schedule[w]; !ok {
				open = append(open, t)
			}
		}

		if len(open)%2 != 0 {
			for _, t := range teams {
				if e, ok := t.Schedule[w]; ok && e.IsBye() {
					delete(t.Schedule, w)
					open = append(open, t)
					b.log.WithFields(logrus.Fields{"team": t.Name, "week": w}).Debug("Reclaimed bye")
					break
				}
			}
		}

		b.rng.Shuffle(len(open), func(i, j int) {
			open[i], open[j] = open[j], open[i]
		})
		for i := 0; i+1 < len(open); i += 2 {
			b.record(w, open[i], open[i+1])
		}
	}
}
