package seating

// table is the run-local state of one open table.
type table struct {
	number    TableNumber
	capacity  int
	occupants []Participant
	vips      int
}

func (t *table) seat(u unit) {
	t.occupants = append(t.occupants, u.members...)
	t.vips += u.vipCount()
}

// admits evaluates the hard constraints for placing u at t.
func (t *table) admits(u unit, c Constraints) bool {
	if len(t.occupants)+u.size() > t.capacity {
		return false
	}
	// A VIP primary is turned away from a table already at the cap. The
	// check counts every VIP in the unit so a pair can never push a table
	// past the cap either.
	if c.VIPSpread && u.vipCount() > 0 && t.vips+u.vipCount() > VIPSpreadCap {
		return false
	}
	return true
}

// affinity counts occupants sharing at least one interest with p. Each
// occupant counts once regardless of how many tags overlap.
func (t *table) affinity(p Participant) int {
	score := 0
	for _, o := range t.occupants {
		if p.SharesInterestWith(o) {
			score++
		}
	}
	return score
}

// selectTable returns the best admissible table for u, or nil when every
// table rejects it. tables must be in ascending table-number order; only a
// strictly higher score replaces the incumbent, so the lowest number wins
// ties.
func selectTable(tables []*table, u unit, c Constraints) *table {
	var best *table
	bestScore := -1
	primary := u.primary()
	for _, t := range tables {
		if !t.admits(u, c) {
			continue
		}
		if score := t.affinity(primary); score > bestScore {
			best, bestScore = t, score
		}
	}
	return best
}
