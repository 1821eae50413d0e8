package schedule

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/derekprior/seasonsim/internal/league"
	"github.com/derekprior/seasonsim/internal/strategy"
	"github.com/derekprior/seasonsim/internal/validator"
)

// ErrConflictsPersist is returned when every attempt failed validation.
var ErrConflictsPersist = errors.New("scheduling conflicts persist")

// CheckFunc validates schedules after the bye pass.
type CheckFunc func(teams []*league.Team, weeks int) []validator.Violation

// Result is the output of the scheduling process.
type Result struct {
	Matchups   league.WeeklyMatchups
	Attempts   int
	Removed    int                   // games dropped by duplicate repair
	Violations []validator.Violation // final checks, including shortfall warnings
	TeamGames  map[string]int
}

// Generator runs the full pipeline: passes, byes, validation with bounded
// regeneration, filler, duplicate repair and matchup extraction.
type Generator struct {
	season   Season
	strategy strategy.Strategy
	rng      *rand.Rand
	log      logrus.FieldLogger
	check    CheckFunc
}

func NewGenerator(season Season, strat strategy.Strategy, rng *rand.Rand, log logrus.FieldLogger) *Generator {
	if season.MaxAttempts < 1 {
		season.MaxAttempts = 1
	}
	return &Generator{
		season:   season,
		strategy: strat,
		rng:      rng,
		log:      log,
		check:    validator.CheckSchedule,
	}
}

// WithCheck replaces the validation run after each attempt.
func (g *Generator) WithCheck(check CheckFunc) *Generator {
	g.check = check
	return g
}

// Generate builds a schedule into the registry's teams, replacing whatever
// they held. On failure it returns a partial Result with the last attempt
// alongside the error.
func (g *Generator) Generate(reg *league.Registry) (*Result, error) {
	b := NewBuilder(g.season, g.rng, g.log)
	teams := reg.Teams()

	var violations []validator.Violation
	attempt := 0
	for attempt < g.season.MaxAttempts {
		attempt++
		g.buildAttempt(b, reg)

		violations = g.check(teams, g.season.Weeks)
		if !validator.HasErrors(violations) {
			break
		}

		for _, v := range violations {
			if v.IsError() {
				g.log.WithFields(logrus.Fields{"team": v.Team, "week": v.Week}).Warn(v.Message)
			}
		}
		g.log.WithField("attempt", attempt).Warn("Scheduling conflicts detected, regenerating")
	}

	if validator.HasErrors(violations) {
		return &Result{
			Matchups:   ExtractMatchups(teams, g.season.Weeks),
			Attempts:   attempt,
			Violations: violations,
			TeamGames:  teamGames(teams),
		}, fmt.Errorf("%w after %d attempts", ErrConflictsPersist, attempt)
	}

	b.FillRemainingGames(teams)
	removed := RemoveDuplicateGames(reg, g.season.Weeks)

	final := validator.CheckSchedule(teams, g.season.Weeks)
	final = append(final, validator.CheckShortfalls(teams, g.season.Weeks)...)

	matchups := ExtractMatchups(teams, g.season.Weeks)
	g.log.WithFields(logrus.Fields{
		"attempts": attempt,
		"games":    matchups.Total(),
		"removed":  removed,
		"warnings": len(final),
	}).Info("Schedule generated")

	return &Result{
		Matchups:   matchups,
		Attempts:   attempt,
		Removed:    removed,
		Violations: final,
		TeamGames:  teamGames(teams),
	}, nil
}

// buildAttempt clears the schedules and runs every strategy pass plus byes.
func (g *Generator) buildAttempt(b *Builder, reg *league.Registry) {
	reg.ClearSchedules()
	grouping := league.GroupByDivision(reg.Teams())
	for _, pass := range g.strategy.Passes(grouping) {
		b.RunPass(pass)
	}
	b.AssignByeWeeks(reg.Teams())
}

func teamGames(teams []*league.Team) map[string]int {
	m := make(map[string]int, len(teams))
	for _, t := range teams {
		m[t.Name] = t.Games()
	}
	return m
}
