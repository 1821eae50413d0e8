package excel

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/derekprior/seasonsim/internal/league"
	"github.com/derekprior/seasonsim/internal/sim"
	"github.com/xuri/excelize/v2"
)

const (
	weeklySheet    = "Weekly Schedule"
	standingsSheet = "Standings"
	playoffsSheet  = "Playoffs"

	maxSheetName = 31
)

// TeamSheet is one team's schedule as read back from a workbook.
type TeamSheet struct {
	Team string
	Rows []SheetRow
}

// SheetRow is a single week on a team sheet.
type SheetRow struct {
	Week  int
	Entry league.Entry
}

// Generate creates an Excel workbook with the weekly schedule and per-team
// sheets. When season is non-nil, results, standings and the playoff
// bracket are written as well.
func Generate(reg *league.Registry, weeks int, season *sim.Season) (*excelize.File, error) {
	f := excelize.NewFile()

	// Set default font for the workbook
	f.SetDefaultFont("Arial")

	s := newStyles(f)
	winners := winnerIndex(season)

	if err := writeWeeklySheet(f, s, reg, weeks, winners); err != nil {
		return nil, fmt.Errorf("writing weekly sheet: %w", err)
	}

	if err := writeTeamSheets(f, s, reg, winners); err != nil {
		return nil, fmt.Errorf("writing team sheets: %w", err)
	}

	if season != nil {
		if err := writeStandingsSheet(f, s, season); err != nil {
			return nil, fmt.Errorf("writing standings sheet: %w", err)
		}
		if season.Bracket != nil {
			if err := writePlayoffsSheet(f, s, season.Bracket); err != nil {
				return nil, fmt.Errorf("writing playoffs sheet: %w", err)
			}
		}
	}

	f.DeleteSheet("Sheet1")
	return f, nil
}

// SheetName returns the worksheet name used for a team. Excel limits names
// to 31 characters and forbids a handful of punctuation marks.
func SheetName(team string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return '_'
		}
		return r
	}, team)
	name = strings.Trim(name, "'")
	if runes := []rune(name); len(runes) > maxSheetName {
		name = string(runes[:maxSheetName])
	}
	return name
}

// ReadTeamSchedules reads the sheet of each named team, in order. A missing
// sheet or an unreadable row is an error.
func ReadTeamSchedules(f *excelize.File, names []string) ([]TeamSheet, error) {
	out := make([]TeamSheet, 0, len(names))
	for _, name := range names {
		sheet := SheetName(name)
		idx, err := f.GetSheetIndex(sheet)
		if err != nil {
			return nil, fmt.Errorf("looking up sheet %q: %w", sheet, err)
		}
		if idx < 0 {
			return nil, fmt.Errorf("no sheet for team %s", name)
		}

		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
		}

		ts := TeamSheet{Team: name}
		for i, row := range rows {
			if i == 0 || len(row) == 0 || strings.TrimSpace(row[0]) == "" {
				continue // header or blank
			}
			sr, err := parseRow(row)
			if err != nil {
				return nil, fmt.Errorf("sheet %q row %d: %w", sheet, i+1, err)
			}
			ts.Rows = append(ts.Rows, sr)
		}
		out = append(out, ts)
	}
	return out, nil
}

func parseRow(row []string) (SheetRow, error) {
	week, err := strconv.Atoi(strings.TrimSpace(row[0]))
	if err != nil {
		return SheetRow{}, fmt.Errorf("invalid week %q", row[0])
	}

	opponent := strings.TrimSpace(cell(row, 1))
	if opponent == "" {
		return SheetRow{}, fmt.Errorf("week %d has no opponent", week)
	}
	if strings.EqualFold(opponent, league.Bye) {
		return SheetRow{Week: week, Entry: league.ByeEntry()}, nil
	}

	var loc league.Location
	switch strings.ToLower(strings.TrimSpace(cell(row, 2))) {
	case "home":
		loc = league.Home
	case "away":
		loc = league.Away
	default:
		return SheetRow{}, fmt.Errorf("week %d: invalid home/away %q", week, cell(row, 2))
	}

	return SheetRow{Week: week, Entry: league.Entry{Opponent: opponent, Location: loc}}, nil
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

type styles struct {
	header int
	cell   int
	center int
}

func newStyles(f *excelize.File) styles {
	var s styles
	s.header, _ = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 16, Family: "Arial"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#4472C4"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	s.cell, _ = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 16, Family: "Arial"},
	})
	s.center, _ = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 16, Family: "Arial"},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	return s
}

func writeHeader(f *excelize.File, s styles, sheet string, headers []string) {
	for i, h := range headers {
		f.SetCellValue(sheet, cellRef(i+1, 1), h)
	}
	if s.header != 0 {
		f.SetCellStyle(sheet, cellRef(1, 1), cellRef(len(headers), 1), s.header)
	}
}

func writeRow(f *excelize.File, s styles, sheet string, row int, values ...interface{}) {
	for i, v := range values {
		f.SetCellValue(sheet, cellRef(i+1, row), v)
	}
	if s.cell != 0 {
		f.SetCellStyle(sheet, cellRef(1, row), cellRef(len(values), row), s.cell)
	}
	if s.center != 0 {
		f.SetCellStyle(sheet, cellRef(1, row), cellRef(1, row), s.center)
	}
}

type gameKey struct {
	week       int
	home, away string
}

func winnerIndex(season *sim.Season) map[gameKey]string {
	winners := make(map[gameKey]string)
	if season == nil {
		return winners
	}
	for _, wr := range season.Weeks {
		for _, g := range wr.Games {
			winners[gameKey{g.Week, g.Home, g.Away}] = g.Winner
		}
	}
	return winners
}

func writeWeeklySheet(f *excelize.File, s styles, reg *league.Registry, weeks int, winners map[gameKey]string) error {
	sheet := weeklySheet
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	writeHeader(f, s, sheet, []string{"Week", "Home", "Away", "Winner"})

	row := 2
	for w := 1; w <= weeks; w++ {
		for _, t := range reg.Teams() {
			e, ok := t.Schedule[w]
			if !ok || e.Location != league.Home {
				continue
			}
			writeRow(f, s, sheet, row, w, t.Name, e.Opponent, winners[gameKey{w, t.Name, e.Opponent}])
			row++
		}
	}

	// Set column widths (sized for Arial 16)
	f.SetColWidth(sheet, "A", "A", 10)
	f.SetColWidth(sheet, "B", "D", 30)
	return nil
}

func writeTeamSheets(f *excelize.File, s styles, reg *league.Registry, winners map[gameKey]string) error {
	used := map[string]bool{weeklySheet: true, standingsSheet: true, playoffsSheet: true}

	for _, team := range reg.Teams() {
		sheet := SheetName(team.Name)
		if used[sheet] {
			return fmt.Errorf("team %s: sheet name %q already in use", team.Name, sheet)
		}
		used[sheet] = true
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("team %s: %w", team.Name, err)
		}

		headers := []string{"Week", "Opponent", "Home/Away"}
		if len(winners) > 0 {
			headers = append(headers, "Result")
		}
		writeHeader(f, s, sheet, headers)

		for i, w := range team.Weeks() {
			e := team.Schedule[w]
			values := []interface{}{w, e.Opponent, locationLabel(e.Location)}
			if len(winners) > 0 {
				values = append(values, resultLabel(team, w, e, winners))
			}
			writeRow(f, s, sheet, i+2, values...)
		}

		// Set column widths (sized for Arial 16)
		widths := map[string]float64{"A": 10, "B": 30, "C": 16, "D": 12}
		for col, w := range widths {
			f.SetColWidth(sheet, col, col, w)
		}
	}

	return nil
}

func locationLabel(l league.Location) string {
	switch l {
	case league.Home:
		return "Home"
	case league.Away:
		return "Away"
	default:
		return ""
	}
}

func resultLabel(team *league.Team, week int, e league.Entry, winners map[gameKey]string) string {
	if e.IsBye() {
		return ""
	}
	key := gameKey{week, team.Name, e.Opponent}
	if e.Location == league.Away {
		key = gameKey{week, e.Opponent, team.Name}
	}
	switch winners[key] {
	case "":
		return ""
	case team.Name:
		return "W"
	default:
		return "L"
	}
}

func writeStandingsSheet(f *excelize.File, s styles, season *sim.Season) error {
	sheet := standingsSheet
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	writeHeader(f, s, sheet, []string{"Rank", "Team", "Conference", "Division", "Wins", "Losses", "Playoffs"})
	for i, t := range season.Standings {
		playoffs := ""
		if t.Playoffs {
			playoffs = "Yes"
		}
		writeRow(f, s, sheet, i+2, i+1, t.Name, t.Conference, t.Division, t.Wins, t.Losses, playoffs)
	}

	f.SetColWidth(sheet, "A", "A", 10)
	f.SetColWidth(sheet, "B", "B", 30)
	f.SetColWidth(sheet, "C", "G", 16)
	return nil
}

func writePlayoffsSheet(f *excelize.File, s styles, b *sim.Bracket) error {
	sheet := playoffsSheet
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	writeHeader(f, s, sheet, []string{"Round", "Home", "Away", "Winner"})
	row := 2
	for _, r := range b.Rounds {
		for _, g := range r.Games {
			writeRow(f, s, sheet, row, r.Name, g.Home, g.Away, g.Winner)
			row++
		}
	}
	if b.Champion != nil {
		writeRow(f, s, sheet, row, "Champion", b.Champion.Name)
	}

	f.SetColWidth(sheet, "A", "A", 28)
	f.SetColWidth(sheet, "B", "D", 30)
	return nil
}

func cellRef(col, row int) string {
	return fmt.Sprintf("%s%d", colLetter(col), row)
}

func colLetter(col int) string {
	result := ""
	for col > 0 {
		col--
		result = string(rune('A'+col%26)) + result
		col /= 26
	}
	return result
}
