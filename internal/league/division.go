package league

// DivisionKey identifies a division within a conference.
type DivisionKey struct {
	Conference string
	Division   string
}

func (k DivisionKey) String() string {
	return k.Conference + " " + k.Division
}

// Grouping maps each division to its teams. Keys and teams keep roster order.
type Grouping struct {
	keys  []DivisionKey
	teams map[DivisionKey][]*Team
}

// GroupByDivision partitions teams by (conference, division).
func GroupByDivision(teams []*Team) *Grouping {
	g := &Grouping{teams: make(map[DivisionKey][]*Team)}
	for _, t := range teams {
		key := DivisionKey{t.Conference, t.Division}
		if _, ok := g.teams[key]; !ok {
			g.keys = append(g.keys, key)
		}
		g.teams[key] = append(g.teams[key], t)
	}
	return g
}

// Keys returns the divisions in order of first appearance.
func (g *Grouping) Keys() []DivisionKey {
	return g.keys
}

// Teams returns the teams of one division.
func (g *Grouping) Teams(key DivisionKey) []*Team {
	return g.teams[key]
}

// Conferences returns conference names in order of first appearance.
func (g *Grouping) Conferences() []string {
	seen := make(map[string]bool)
	var confs []string
	for _, k := range g.keys {
		if !seen[k.Conference] {
			seen[k.Conference] = true
			confs = append(confs, k.Conference)
		}
	}
	return confs
}

// Divisions returns the divisions of one conference in enumeration order.
func (g *Grouping) Divisions(conference string) []DivisionKey {
	var keys []DivisionKey
	for _, k := range g.keys {
		if k.Conference == conference {
			keys = append(keys, k)
		}
	}
	return keys
}
