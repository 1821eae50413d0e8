package strategy

import (
	"fmt"
	"testing"

	"github.com/derekprior/seasonsim/internal/league"
)

// testLeague builds two conferences of four divisions with four teams each.
func testLeague() *league.Grouping {
	var teams []*league.Team
	for _, conf := range []string{"AFC", "NFC"} {
		for _, div := range []string{"East", "North", "South", "West"} {
			for i := 1; i <= 4; i++ {
				name := fmt.Sprintf("%s %s %d", conf, div, i)
				teams = append(teams, league.NewTeam(name, conf, div, 50, 50))
			}
		}
	}
	return league.GroupByDivision(teams)
}

type pair struct{ a, b string }

func countPairs(pairings []Pairing) map[pair]int {
	counts := make(map[pair]int)
	for _, p := range pairings {
		a, b := p.A.Name, p.B.Name
		if a > b {
			a, b = b, a
		}
		counts[pair{a, b}]++
	}
	return counts
}

func perTeam(pairings []Pairing) map[string]int {
	counts := make(map[string]int)
	for _, p := range pairings {
		counts[p.A.Name]++
		counts[p.B.Name]++
	}
	return counts
}

func TestRotationPasses(t *testing.T) {
	s, err := Get("rotation")
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}

	passes := s.Passes(testLeague())
	if len(passes) != 3 {
		t.Fatalf("passes = %d, want 3", len(passes))
	}

	names := []string{"division", "intra-conference", "inter-conference"}
	for i, want := range names {
		if passes[i].Name != want {
			t.Errorf("pass %d = %q, want %q", i, passes[i].Name, want)
		}
	}
}

func TestDivisionPairings(t *testing.T) {
	pairings := DivisionPairings(testLeague())

	t.Run("total pairing count", func(t *testing.T) {
		// 8 divisions × C(4,2)=6 pairs × 2 meetings = 96
		if len(pairings) != 96 {
			t.Errorf("pairings = %d, want 96", len(pairings))
		}
	})

	t.Run("rivals meet twice", func(t *testing.T) {
		for p, n := range countPairs(pairings) {
			if n != 2 {
				t.Errorf("%s vs %s = %d pairings, want 2", p.a, p.b, n)
			}
		}
	})

	t.Run("pairings stay inside a division", func(t *testing.T) {
		for _, p := range pairings {
			if p.A.Conference != p.B.Conference || p.A.Division != p.B.Division {
				t.Errorf("%s paired with %s across divisions", p.A, p.B)
			}
		}
	})

	t.Run("each team has six division pairings", func(t *testing.T) {
		for team, n := range perTeam(pairings) {
			if n != 6 {
				t.Errorf("%s has %d division pairings, want 6", team, n)
			}
		}
	})
}

func TestIntraConferencePairings(t *testing.T) {
	pairings := IntraConferencePairings(testLeague())

	t.Run("successor divisions only", func(t *testing.T) {
		successor := map[string]string{"East": "North", "North": "South", "South": "West", "West": "East"}
		for _, p := range pairings {
			if p.A.Conference != p.B.Conference {
				t.Errorf("%s paired with %s across conferences", p.A, p.B)
			}
			if successor[p.A.Division] != p.B.Division {
				t.Errorf("%s paired with %s, want successor division %s", p.A, p.B, successor[p.A.Division])
			}
		}
	})

	t.Run("each team meets successor and predecessor divisions", func(t *testing.T) {
		// 4 from the successor division + 4 as the predecessor's successor
		for team, n := range perTeam(pairings) {
			if n != 8 {
				t.Errorf("%s has %d intra-conference pairings, want 8", team, n)
			}
		}
	})

	t.Run("single-division conference sits out", func(t *testing.T) {
		g := league.GroupByDivision([]*league.Team{
			league.NewTeam("A1", "AFC", "East", 50, 50),
			league.NewTeam("A2", "AFC", "East", 50, 50),
		})
		if got := IntraConferencePairings(g); len(got) != 0 {
			t.Errorf("pairings = %d, want 0", len(got))
		}
	})
}

func TestInterConferencePairings(t *testing.T) {
	pairings := InterConferencePairings(testLeague())

	if len(pairings) != 64 {
		t.Errorf("pairings = %d, want 64", len(pairings))
	}

	for _, p := range pairings {
		if p.A.Conference != "AFC" || p.B.Conference != "NFC" {
			t.Errorf("%s vs %s is not AFC vs NFC", p.A, p.B)
		}
		if p.A.Division != p.B.Division {
			t.Errorf("%s paired with %s, want positional division match", p.A, p.B)
		}
	}

	for p, n := range countPairs(pairings) {
		if n != 1 {
			t.Errorf("%s vs %s = %d pairings, want 1", p.a, p.b, n)
		}
	}
}

func TestInterConferenceZipsByPosition(t *testing.T) {
	g := league.GroupByDivision([]*league.Team{
		league.NewTeam("A-East", "AFC", "East", 50, 50),
		league.NewTeam("A-West", "AFC", "West", 50, 50),
		league.NewTeam("N-North", "NFC", "North", 50, 50),
		league.NewTeam("N-South", "NFC", "South", 50, 50),
	})

	pairings := InterConferencePairings(g)
	if len(pairings) != 2 {
		t.Fatalf("pairings = %d, want 2", len(pairings))
	}
	if pairings[0].A.Name != "A-East" || pairings[0].B.Name != "N-North" {
		t.Errorf("first pairing = %s vs %s, want A-East vs N-North", pairings[0].A.Name, pairings[0].B.Name)
	}
	if pairings[1].A.Name != "A-West" || pairings[1].B.Name != "N-South" {
		t.Errorf("second pairing = %s vs %s, want A-West vs N-South", pairings[1].A.Name, pairings[1].B.Name)
	}
}

func TestUnknownStrategy(t *testing.T) {
	if _, err := Get("round_robin"); err == nil {
		t.Error("expected error for unknown strategy")
	}
}
