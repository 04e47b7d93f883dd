package seating

// unit is the atomic placement decision of a run: a primary participant
// and, optionally, the companion resolved for it.
type unit struct {
	members []Participant
}

func (u unit) primary() Participant { return u.members[0] }

func (u unit) size() int { return len(u.members) }

func (u unit) vipCount() int {
	n := 0
	for _, m := range u.members {
		if m.IsVIP {
			n++
		}
	}
	return n
}

// companionIndex answers companion lookups against the input pool.
type companionIndex struct {
	pool []Participant
	// byID maps an id to its first position in pool.
	byID map[ParticipantID]int
	// referrers maps an id to the pool positions that name it as companion,
	// in input order.
	referrers map[ParticipantID][]int
}

func newCompanionIndex(pool []Participant) *companionIndex {
	idx := &companionIndex{
		pool:      pool,
		byID:      make(map[ParticipantID]int, len(pool)),
		referrers: make(map[ParticipantID][]int),
	}
	for i, p := range pool {
		if _, ok := idx.byID[p.ID]; !ok {
			idx.byID[p.ID] = i
		}
		if p.HasCompanion() {
			idx.referrers[p.CompanionID] = append(idx.referrers[p.CompanionID], i)
		}
	}
	return idx
}

// resolve builds the unit for p. The companion named by p wins; when it is
// missing or already seated, the first unseated participant that names p
// as its companion is used instead. Absence of either degrades to a solo
// unit.
func (idx *companionIndex) resolve(p Participant, seated map[ParticipantID]struct{}) unit {
	if p.HasCompanion() {
		if i, ok := idx.byID[p.CompanionID]; ok {
			if _, done := seated[p.CompanionID]; !done {
				return unit{members: []Participant{p, idx.pool[i]}}
			}
		}
	}
	for _, i := range idx.referrers[p.ID] {
		c := idx.pool[i]
		if c.ID == p.ID {
			continue
		}
		if _, done := seated[c.ID]; done {
			continue
		}
		return unit{members: []Participant{p, c}}
	}
	return unit{members: []Participant{p}}
}

// hasResolvablePair reports whether any participant in the pool names a
// different participant that is also present.
func (idx *companionIndex) hasResolvablePair() bool {
	for _, p := range idx.pool {
		if !p.HasCompanion() {
			continue
		}
		if _, ok := idx.byID[p.CompanionID]; ok {
			return true
		}
	}
	return false
}
