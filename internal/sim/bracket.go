package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/derekprior/seasonsim/internal/league"
)

// Round is one stage of the playoffs.
type Round struct {
	Name  string
	Games []GameResult
}

// Bracket is a played-out playoff tournament.
type Bracket struct {
	Byes     map[string]*league.Team // top seed of each conference
	Rounds   []Round
	Champion *league.Team
}

// PlayBracket plays a two-conference, seven-seed bracket. The top seed of
// each conference skips the wild card round and hosts the lowest remaining
// seed in the divisional round. The final pits the second conference's
// champion against the first's.
func (s *Simulator) PlayBracket(conferences []string, seeds map[string][]*league.Team) (*Bracket, error) {
	if len(conferences) != 2 {
		return nil, fmt.Errorf("bracket needs exactly 2 conferences, got %d", len(conferences))
	}
	for _, conf := range conferences {
		if len(seeds[conf]) != BracketSeeds {
			return nil, fmt.Errorf("%w: %s has %d seeds, bracket needs %d", ErrNotEnoughTeams, conf, len(seeds[conf]), BracketSeeds)
		}
	}

	b := &Bracket{Byes: make(map[string]*league.Team)}

	// Conferences are listed second-first, matching the final.
	order := []string{conferences[1], conferences[0]}

	wildCard := Round{Name: "Wild Card"}
	divisional := Round{Name: "Divisional"}
	championship := Round{Name: "Conference Championship"}
	champs := make(map[string]*league.Team)

	for _, conf := range order {
		seeded := seeds[conf]
		b.Byes[conf] = seeded[0]

		w27 := s.playRound(&wildCard, seeded[1], seeded[6])
		w36 := s.playRound(&wildCard, seeded[2], seeded[5])
		w45 := s.playRound(&wildCard, seeded[3], seeded[4])

		d1 := s.playRound(&divisional, seeded[0], w45)
		d2 := s.playRound(&divisional, w36, w27)

		champs[conf] = s.playRound(&championship, d1, d2)
	}

	final := Round{Name: "Final"}
	b.Champion = s.playRound(&final, champs[conferences[1]], champs[conferences[0]])
	b.Rounds = []Round{wildCard, divisional, championship, final}

	s.log.WithFields(logrus.Fields{
		"champion": b.Champion.Name,
	}).Info("Playoffs complete")

	return b, nil
}

func (s *Simulator) playRound(r *Round, home, away *league.Team) *league.Team {
	winner, loser := s.PlayGame(home, away)
	r.Games = append(r.Games, GameResult{
		Home:   home.Name,
		Away:   away.Name,
		Winner: winner.Name,
		Loser:  loser.Name,
	})
	return winner
}
