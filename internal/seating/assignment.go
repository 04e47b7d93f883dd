package seating

import "sort"

// Assignment maps each table opened by a run to its occupants in seating
// order. Table numbers are dense, starting at 1.
type Assignment map[TableNumber][]Participant

// Tables returns the table numbers in ascending order.
func (a Assignment) Tables() []TableNumber {
	out := make([]TableNumber, 0, len(a))
	for n := range a {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// TableOf returns the table seating id.
func (a Assignment) TableOf(id ParticipantID) (TableNumber, bool) {
	for n, occupants := range a {
		for _, p := range occupants {
			if p.ID == id {
				return n, true
			}
		}
	}
	return 0, false
}

// Seated returns the total number of seated participants.
func (a Assignment) Seated() int {
	n := 0
	for _, occupants := range a {
		n += len(occupants)
	}
	return n
}

// RunStats summarises an assignment for logs, metrics and events.
type RunStats struct {
	Tables       int `json:"tables"`
	Seated       int `json:"seated"`
	VIPTables    int `json:"vip_tables"`
	LargestTable int `json:"largest_table"`
	// FullTables counts tables filled to their effective capacity.
	FullTables int `json:"full_tables"`
}

// Stats computes RunStats for a, using c for table capacities.
func Stats(a Assignment, c Constraints) RunStats {
	s := RunStats{Tables: len(a)}
	for n, occupants := range a {
		s.Seated += len(occupants)
		if len(occupants) > s.LargestTable {
			s.LargestTable = len(occupants)
		}
		if len(occupants) >= c.EffectiveCapacity(n) {
			s.FullTables++
		}
		for _, p := range occupants {
			if p.IsVIP {
				s.VIPTables++
				break
			}
		}
	}
	return s
}
