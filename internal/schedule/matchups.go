package schedule

import (
	"github.com/derekprior/seasonsim/internal/league"
)

// ExtractMatchups lists each week's games from the home team's side, in
// roster order. Every week in [1, weeks] has an entry, possibly empty.
func ExtractMatchups(teams []*league.Team, weeks int) league.WeeklyMatchups {
	m := make(league.WeeklyMatchups, weeks)
	for w := 1; w <= weeks; w++ {
		games := []league.Matchup{}
		for _, t := range teams {
			e, ok := t.Schedule[w]
			if !ok || e.IsBye() || e.Location != league.Home {
				continue
			}
			games = append(games, league.Matchup{Home: t.Name, Away: e.Opponent})
		}
		m[w] = games
	}
	return m
}
