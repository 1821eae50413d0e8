package schedule

import (
	"github.com/derekprior/seasonsim/internal/league"
)

// RemoveDuplicateGames walks each week and deletes every game that is not a
// single mirrored meeting: one side home, the other away, both naming each
// other. The opponent's entry goes too when it names the team. Deleted games
// are not replaced. It returns the number of games removed.
func RemoveDuplicateGames(reg *league.Registry, weeks int) int {
	removed := 0
	for w := 1; w <= weeks; w++ {
		for _, t := range reg.Teams() {
			e, ok := t.Schedule[w]
			if !ok || e.IsBye() {
				continue
			}

			opp, found := reg.Lookup(e.Opponent)
			if found && isMirrored(t, opp, w) {
				continue
			}

			delete(t.Schedule, w)
			if found {
				if oe, ok := opp.Schedule[w]; ok && oe.Opponent == t.Name {
					delete(opp.Schedule, w)
				}
			}
			removed++
		}
	}
	return removed
}

func isMirrored(t, opp *league.Team, week int) bool {
	e := t.Schedule[week]
	if e.Location == league.NoLocation {
		return false
	}
	return opp.Schedule[week] == league.Entry{Opponent: t.Name, Location: e.Location.Opposite()}
}
