package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/logi101/eventflow-seating/internal/seating"
)

// ParticipantRepo reads the participants a seating plan is built from.
// Participants are owned by the registration service; this repo never
// writes them.
type ParticipantRepo struct {
	db *sql.DB
}

// NewParticipantRepo constructs a ParticipantRepo with the given DB handle.
func NewParticipantRepo(db *sql.DB) *ParticipantRepo {
	return &ParticipantRepo{db: db}
}

// ListForSeating returns every participant of the event in registration
// order, with the event tracks they signed up for as interest tags.
// Opted-out participants are included; callers filter them.
func (r *ParticipantRepo) ListForSeating(ctx context.Context, eventID string) ([]seating.Participant, error) {
	const q = `SELECT id, first_name, last_name, is_vip, companion_id, networking_opt_in
	           FROM participants
	           WHERE event_id = ?
	           ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, q, eventID)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	defer rows.Close()

	out := []seating.Participant{}
	index := map[seating.ParticipantID]int{}
	for rows.Next() {
		var (
			p         seating.Participant
			companion sql.NullString
		)
		if err := rows.Scan(&p.ID, &p.FirstName, &p.LastName, &p.IsVIP, &companion, &p.NetworkingOptIn); err != nil {
			return nil, err
		}
		if companion.Valid {
			p.CompanionID = seating.ParticipantID(companion.String)
		}
		index[p.ID] = len(out)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	if err := r.attachTracks(ctx, eventID, out, index); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ParticipantRepo) attachTracks(ctx context.Context, eventID string, ps []seating.Participant, index map[seating.ParticipantID]int) error {
	const q = `SELECT pt.participant_id, pt.track_id
	           FROM participant_tracks pt
	           JOIN participants p ON p.id = pt.participant_id
	           WHERE p.event_id = ?
	           ORDER BY pt.participant_id, pt.track_id`
	rows, err := r.db.QueryContext(ctx, q, eventID)
	if err != nil {
		return fmt.Errorf("list participant tracks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var pid, track string
		if err := rows.Scan(&pid, &track); err != nil {
			return err
		}
		i, ok := index[seating.ParticipantID(pid)]
		if !ok {
			continue
		}
		ps[i].InterestTags = append(ps[i].InterestTags, seating.InterestID(track))
	}
	return rows.Err()
}
