// Package sim plays out a generated schedule: rating-weighted games, a
// regular season, standings and a seeded playoff bracket.
package sim

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/derekprior/seasonsim/internal/league"
)

// ErrNotEnoughTeams is returned when a conference cannot fill its seeds.
var ErrNotEnoughTeams = errors.New("not enough teams for playoff seeding")

// BracketSeeds is the number of seeds per conference the bracket plays.
const BracketSeeds = 7

// GameResult records one played game. Week is 0 for playoff games.
type GameResult struct {
	Week   int
	Home   string
	Away   string
	Winner string
	Loser  string
}

// WeekResult holds the games of one regular-season week.
type WeekResult struct {
	Week  int
	Games []GameResult
}

// Season is everything produced by simulating a schedule.
type Season struct {
	Weeks     []WeekResult
	Standings []*league.Team
	Seeds     map[string][]*league.Team
	Bracket   *Bracket
}

// Simulator plays games with a shared random source.
type Simulator struct {
	rng   *rand.Rand
	boost float64
	log   logrus.FieldLogger
}

// New returns a Simulator that adds boost to both ratings after each game.
func New(rng *rand.Rand, boost float64, log logrus.FieldLogger) *Simulator {
	return &Simulator{rng: rng, boost: boost, log: log}
}

// PlayGame decides a game between a and b. a wins with probability
// a.Rating / (a.Rating + b.Rating). Records and ratings are updated.
func (s *Simulator) PlayGame(a, b *league.Team) (winner, loser *league.Team) {
	total := a.Rating + b.Rating
	p := 0.5
	if total > 0 {
		p = a.Rating / total
	}

	if s.rng.Float64() < p {
		winner, loser = a, b
	} else {
		winner, loser = b, a
	}

	winner.Wins++
	loser.Losses++
	winner.Rating += s.boost
	loser.Rating += s.boost

	return winner, loser
}

// PlaySeason plays every week of the matchup table in week order.
func (s *Simulator) PlaySeason(reg *league.Registry, matchups league.WeeklyMatchups) ([]WeekResult, error) {
	weeks := make([]int, 0, len(matchups))
	for w := range matchups {
		weeks = append(weeks, w)
	}
	sort.Ints(weeks)

	results := make([]WeekResult, 0, len(weeks))
	for _, w := range weeks {
		wr := WeekResult{Week: w}
		for _, m := range matchups[w] {
			home, ok := reg.Lookup(m.Home)
			if !ok {
				return results, fmt.Errorf("week %d: unknown team %q", w, m.Home)
			}
			away, ok := reg.Lookup(m.Away)
			if !ok {
				return results, fmt.Errorf("week %d: unknown team %q", w, m.Away)
			}
			winner, loser := s.PlayGame(home, away)
			wr.Games = append(wr.Games, GameResult{
				Week:   w,
				Home:   home.Name,
				Away:   away.Name,
				Winner: winner.Name,
				Loser:  loser.Name,
			})
		}
		results = append(results, wr)
	}

	s.log.WithFields(logrus.Fields{
		"weeks": len(results),
		"games": matchups.Total(),
	}).Info("Regular season simulated")

	return results, nil
}

// Standings returns the teams ordered by wins, most first. Ties keep
// roster order.
func Standings(teams []*league.Team) []*league.Team {
	sorted := make([]*league.Team, len(teams))
	copy(sorted, teams)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Wins > sorted[j].Wins
	})
	return sorted
}

// SeedPlayoffs takes the top seeds of each conference from the standings
// and flags them as playoff teams.
func SeedPlayoffs(teams []*league.Team, conferences []string, seeds int) (map[string][]*league.Team, error) {
	out := make(map[string][]*league.Team, len(conferences))
	for _, conf := range conferences {
		out[conf] = nil
	}

	for _, t := range Standings(teams) {
		picked, ok := out[t.Conference]
		if !ok || len(picked) >= seeds {
			continue
		}
		out[t.Conference] = append(picked, t)
	}

	for _, conf := range conferences {
		if len(out[conf]) < seeds {
			return nil, fmt.Errorf("%w: %s has %d teams, need %d", ErrNotEnoughTeams, conf, len(out[conf]), seeds)
		}
	}

	for _, picked := range out {
		for _, t := range picked {
			t.Playoffs = true
		}
	}
	return out, nil
}
