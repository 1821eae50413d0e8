package strategy

import (
	"fmt"

	"github.com/derekprior/seasonsim/internal/league"
)

// Pairing is an unordered meeting between two teams. Home and away are
// decided when the pairing is placed into a week.
type Pairing struct {
	A, B *league.Team
}

// Pass is one ordered round of pairings handed to the slot assigner.
type Pass struct {
	Name     string
	Pairings []Pairing
}

// Strategy decides which teams meet during the season.
type Strategy interface {
	Passes(g *league.Grouping) []Pass
}

// Get returns a Strategy by name.
func Get(name string) (Strategy, error) {
	switch name {
	case "rotation":
		return &Rotation{}, nil
	default:
		return nil, fmt.Errorf("unknown strategy: %q", name)
	}
}

// Rotation plays division rivals twice, the cyclic successor division in the
// same conference once, and the positionally matching division of the paired
// conference once.
type Rotation struct{}

func (s *Rotation) Passes(g *league.Grouping) []Pass {
	return []Pass{
		{Name: "division", Pairings: DivisionPairings(g)},
		{Name: "intra-conference", Pairings: IntraConferencePairings(g)},
		{Name: "inter-conference", Pairings: InterConferencePairings(g)},
	}
}

// DivisionPairings lists every pair of division rivals twice in a row, once
// for each meeting.
func DivisionPairings(g *league.Grouping) []Pairing {
	var pairings []Pairing
	for _, key := range g.Keys() {
		teams := g.Teams(key)
		for i := 0; i < len(teams); i++ {
			for j := i + 1; j < len(teams); j++ {
				p := Pairing{A: teams[i], B: teams[j]}
				pairings = append(pairings, p, p)
			}
		}
	}
	return pairings
}

// IntraConferencePairings pairs each division with its cyclic successor in
// the same conference; every team meets every team of the successor once.
// A conference with a single division has no intra-conference pairings.
func IntraConferencePairings(g *league.Grouping) []Pairing {
	var pairings []Pairing
	for _, conf := range g.Conferences() {
		divs := g.Divisions(conf)
		if len(divs) < 2 {
			continue
		}
		for i, div := range divs {
			next := divs[(i+1)%len(divs)]
			pairings = append(pairings, crossPairings(g.Teams(div), g.Teams(next))...)
		}
	}
	return pairings
}

// InterConferencePairings zips the divisions of conference 2k with those of
// conference 2k+1 by enumeration order; an odd trailing conference and
// unmatched trailing divisions sit out.
func InterConferencePairings(g *league.Grouping) []Pairing {
	var pairings []Pairing
	confs := g.Conferences()
	for c := 0; c+1 < len(confs); c += 2 {
		left := g.Divisions(confs[c])
		right := g.Divisions(confs[c+1])
		for i := 0; i < len(left) && i < len(right); i++ {
			pairings = append(pairings, crossPairings(g.Teams(left[i]), g.Teams(right[i]))...)
		}
	}
	return pairings
}

func crossPairings(left, right []*league.Team) []Pairing {
	var pairings []Pairing
	for _, a := range left {
		for _, b := range right {
			pairings = append(pairings, Pairing{A: a, B: b})
		}
	}
	return pairings
}
