package league

// Matchup is one game of a week, from the home team's side.
type Matchup struct {
	Home string
	Away string
}

// WeeklyMatchups maps week number to that week's games in roster order.
type WeeklyMatchups map[int][]Matchup

// Total counts the games across all weeks.
func (m WeeklyMatchups) Total() int {
	n := 0
	for _, games := range m {
		n += len(games)
	}
	return n
}
