package seating

import "sort"

// SortByPriority returns the processing order for a seating run: VIPs
// first, then participants with more interest tags. Participants that
// compare equal keep their input order. The input slice is not modified.
func SortByPriority(participants []Participant) []Participant {
	out := append([]Participant(nil), participants...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.IsVIP != b.IsVIP {
			return a.IsVIP
		}
		return len(a.InterestTags) > len(b.InterestTags)
	})
	return out
}
