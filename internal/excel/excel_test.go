package excel

import (
	"testing"

	"github.com/derekprior/seasonsim/internal/league"
	"github.com/derekprior/seasonsim/internal/sim"
	"github.com/xuri/excelize/v2"
)

func testData(t *testing.T) *league.Registry {
	t.Helper()
	bills := league.NewTeam("Bills", "AFC", "East", 75, 65)
	jets := league.NewTeam("Jets", "AFC", "East", 58, 70)
	eagles := league.NewTeam("Eagles", "NFC", "East", 85, 78)
	giants := league.NewTeam("Giants", "NFC", "East", 42, 65)

	reg, err := league.NewRegistry([]*league.Team{bills, jets, eagles, giants})
	if err != nil {
		t.Fatalf("NewRegistry() error: %v", err)
	}

	game := func(week int, home, away *league.Team) {
		home.Schedule[week] = league.Entry{Opponent: away.Name, Location: league.Home}
		away.Schedule[week] = league.Entry{Opponent: home.Name, Location: league.Away}
	}
	game(1, bills, jets)
	game(1, eagles, giants)
	game(2, giants, bills)
	jets.Schedule[2] = league.ByeEntry()
	eagles.Schedule[2] = league.ByeEntry()

	return reg
}

func TestGenerateWorkbook(t *testing.T) {
	reg := testData(t)

	f, err := Generate(reg, 2, nil)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	t.Run("has Weekly Schedule sheet", func(t *testing.T) {
		idx, err := f.GetSheetIndex("Weekly Schedule")
		if err != nil {
			t.Fatalf("GetSheetIndex error: %v", err)
		}
		if idx < 0 {
			t.Error("Weekly Schedule sheet not found")
		}
	})

	t.Run("weekly sheet has headers", func(t *testing.T) {
		for ref, want := range map[string]string{"A1": "Week", "B1": "Home", "C1": "Away", "D1": "Winner"} {
			val, _ := f.GetCellValue("Weekly Schedule", ref)
			if val != want {
				t.Errorf("%s = %q, want %q", ref, val, want)
			}
		}
	})

	t.Run("weekly sheet lists games in week order", func(t *testing.T) {
		rows, _ := f.GetRows("Weekly Schedule")
		want := [][]string{
			{"1", "Bills", "Jets"},
			{"1", "Eagles", "Giants"},
			{"2", "Giants", "Bills"},
		}
		if len(rows) != len(want)+1 {
			t.Fatalf("rows = %d, want %d", len(rows), len(want)+1)
		}
		for i, w := range want {
			row := rows[i+1]
			if len(row) < 3 || row[0] != w[0] || row[1] != w[1] || row[2] != w[2] {
				t.Errorf("row %d = %v, want %v", i+2, row, w)
			}
		}
	})

	t.Run("has per-team sheets", func(t *testing.T) {
		for _, team := range []string{"Bills", "Jets", "Eagles", "Giants"} {
			idx, err := f.GetSheetIndex(team)
			if err != nil {
				t.Fatalf("GetSheetIndex error: %v", err)
			}
			if idx < 0 {
				t.Errorf("sheet for %s not found", team)
			}
		}
	})

	t.Run("team sheet shows bye and location", func(t *testing.T) {
		rows, _ := f.GetRows("Jets")
		if len(rows) != 3 {
			t.Fatalf("Jets sheet has %d rows, want 3", len(rows))
		}
		if rows[1][1] != "Bills" || rows[1][2] != "Away" {
			t.Errorf("week 1 = %v, want Bills Away", rows[1])
		}
		if rows[2][1] != "BYE" {
			t.Errorf("week 2 = %v, want BYE", rows[2])
		}
	})

	t.Run("no simulation sheets without a season", func(t *testing.T) {
		for _, sheet := range []string{"Standings", "Playoffs"} {
			idx, _ := f.GetSheetIndex(sheet)
			if idx >= 0 {
				t.Errorf("%s sheet should not exist", sheet)
			}
		}
	})

	t.Run("default Sheet1 removed", func(t *testing.T) {
		idx, _ := f.GetSheetIndex("Sheet1")
		if idx >= 0 {
			t.Error("Sheet1 should be removed")
		}
	})
}

func TestGenerateWithSeason(t *testing.T) {
	reg := testData(t)
	bills, _ := reg.Lookup("Bills")
	jets, _ := reg.Lookup("Jets")
	eagles, _ := reg.Lookup("Eagles")
	giants, _ := reg.Lookup("Giants")

	bills.Wins, bills.Losses, bills.Playoffs = 1, 1, true
	jets.Losses = 1
	eagles.Wins = 1
	giants.Wins, giants.Losses = 1, 1

	season := &sim.Season{
		Weeks: []sim.WeekResult{
			{Week: 1, Games: []sim.GameResult{
				{Week: 1, Home: "Bills", Away: "Jets", Winner: "Bills", Loser: "Jets"},
				{Week: 1, Home: "Eagles", Away: "Giants", Winner: "Eagles", Loser: "Giants"},
			}},
			{Week: 2, Games: []sim.GameResult{
				{Week: 2, Home: "Giants", Away: "Bills", Winner: "Giants", Loser: "Bills"},
			}},
		},
		Standings: sim.Standings(reg.Teams()),
		Bracket: &sim.Bracket{
			Rounds: []sim.Round{
				{Name: "Final", Games: []sim.GameResult{{Home: "Eagles", Away: "Bills", Winner: "Eagles", Loser: "Bills"}}},
			},
			Champion: eagles,
		},
	}

	f, err := Generate(reg, 2, season)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	t.Run("weekly sheet records winners", func(t *testing.T) {
		val, _ := f.GetCellValue("Weekly Schedule", "D4")
		if val != "Giants" {
			t.Errorf("D4 = %q, want Giants", val)
		}
	})

	t.Run("team sheet records results", func(t *testing.T) {
		w1, _ := f.GetCellValue("Bills", "D2")
		w2, _ := f.GetCellValue("Bills", "D3")
		if w1 != "W" || w2 != "L" {
			t.Errorf("Bills results = %q, %q, want W, L", w1, w2)
		}
		bye, _ := f.GetCellValue("Jets", "D3")
		if bye != "" {
			t.Errorf("bye result = %q, want empty", bye)
		}
	})

	t.Run("standings are ranked by wins", func(t *testing.T) {
		rows, _ := f.GetRows("Standings")
		if len(rows) != 5 {
			t.Fatalf("standings rows = %d, want 5", len(rows))
		}
		if rows[1][1] != "Bills" || rows[1][6] != "Yes" {
			t.Errorf("first row = %v, want Bills in playoffs", rows[1])
		}
		if rows[4][1] != "Jets" {
			t.Errorf("last row = %v, want Jets", rows[4])
		}
	})

	t.Run("playoffs sheet names the champion", func(t *testing.T) {
		rows, _ := f.GetRows("Playoffs")
		last := rows[len(rows)-1]
		if last[0] != "Champion" || last[1] != "Eagles" {
			t.Errorf("last row = %v, want Champion Eagles", last)
		}
	})
}

func TestSheetName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Bills", "Bills"},
		{"A/B Team", "A_B Team"},
		{"What?", "What_"},
		{"'Quoted'", "Quoted"},
		{"An Extremely Long Team Name That Overflows", "An Extremely Long Team Name Tha"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := SheetName(tt.in); got != tt.want {
				t.Errorf("SheetName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestWriteAndRead(t *testing.T) {
	reg := testData(t)

	f, err := Generate(reg, 2, nil)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	path := t.TempDir() + "/test.xlsx"
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs error: %v", err)
	}

	f2, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile error: %v", err)
	}
	defer f2.Close()

	sheets, err := ReadTeamSchedules(f2, []string{"Bills", "Jets"})
	if err != nil {
		t.Fatalf("ReadTeamSchedules() error: %v", err)
	}
	if len(sheets) != 2 || sheets[0].Team != "Bills" || sheets[1].Team != "Jets" {
		t.Fatalf("sheets = %+v", sheets)
	}

	bills := sheets[0].Rows
	if len(bills) != 2 {
		t.Fatalf("Bills rows = %d, want 2", len(bills))
	}
	if bills[0].Week != 1 || bills[0].Entry != (league.Entry{Opponent: "Jets", Location: league.Home}) {
		t.Errorf("row 1 = %+v", bills[0])
	}
	if bills[1].Week != 2 || bills[1].Entry != (league.Entry{Opponent: "Giants", Location: league.Away}) {
		t.Errorf("row 2 = %+v", bills[1])
	}
	if !sheets[1].Rows[1].Entry.IsBye() {
		t.Errorf("Jets week 2 = %+v, want bye", sheets[1].Rows[1])
	}

	t.Run("bad cells are errors", func(t *testing.T) {
		f2.SetCellValue("Jets", "C2", "Neutral")
		if _, err := ReadTeamSchedules(f2, []string{"Jets"}); err == nil {
			t.Error("expected error for invalid home/away")
		}
		f2.SetCellValue("Jets", "C2", "Away")
		f2.SetCellValue("Jets", "A2", "one")
		if _, err := ReadTeamSchedules(f2, []string{"Jets"}); err == nil {
			t.Error("expected error for invalid week")
		}
	})

	t.Run("missing sheet is an error", func(t *testing.T) {
		if _, err := ReadTeamSchedules(f2, []string{"Oilers"}); err == nil {
			t.Error("expected error for missing sheet")
		}
	})
}
