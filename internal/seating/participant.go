package seating

// ParticipantID identifies a participant within an event.
type ParticipantID string

// InterestID identifies a track or topic a participant is associated with.
type InterestID string

// TableNumber is a 1-based table number. Numbers are allocated densely in
// the order tables are opened.
type TableNumber int

// Participant is the engine's read-only view of an event participant.
//
// CompanionID is a lookup reference to another participant in the same
// pool; the zero value means the participant has no companion.
// NetworkingOptIn is carried for upstream filtering (see FilterOptedIn);
// the engine itself treats every participant it receives as eligible.
type Participant struct {
	ID              ParticipantID `json:"id"`
	FirstName       string        `json:"first_name"`
	LastName        string        `json:"last_name"`
	IsVIP           bool          `json:"is_vip"`
	InterestTags    []InterestID  `json:"interest_tags"`
	CompanionID     ParticipantID `json:"companion_id,omitempty"`
	NetworkingOptIn bool          `json:"networking_opt_in"`
}

// HasCompanion reports whether p references a companion other than itself.
func (p Participant) HasCompanion() bool {
	return p.CompanionID != "" && p.CompanionID != p.ID
}

// SharesInterestWith reports whether p and other have at least one interest
// tag in common.
func (p Participant) SharesInterestWith(other Participant) bool {
	if len(p.InterestTags) == 0 || len(other.InterestTags) == 0 {
		return false
	}
	for _, a := range p.InterestTags {
		for _, b := range other.InterestTags {
			if a == b {
				return true
			}
		}
	}
	return false
}

// FilterOptedIn returns the participants that opted in to networking, in
// their original order. The input slice is not modified.
func FilterOptedIn(participants []Participant) []Participant {
	out := make([]Participant, 0, len(participants))
	for _, p := range participants {
		if p.NetworkingOptIn {
			out = append(out, p)
		}
	}
	return out
}
