package repository // repository for table assignment persistence

import (
	"context"      // context allows query cancellation and timeouts
	"database/sql" // sql provides DB primitives
	"errors"       // errors for sql.ErrNoRows checks
	"fmt"          // fmt wraps storage errors
	"strings"      // strings builds the bulk insert

	"github.com/google/uuid"

	"github.com/logi101/eventflow-seating/internal/model"
)

// AssignmentRepo reads and writes rows of table_assignments.
type AssignmentRepo struct {
	db *sql.DB
}

// NewAssignmentRepo constructs an AssignmentRepo with the given DB handle.
func NewAssignmentRepo(db *sql.DB) *AssignmentRepo {
	return &AssignmentRepo{db: db}
}

const assignmentColumns = `id, event_id, participant_id, table_number, seat_number, is_vip_table, assigned_by, assigned_at, notes`

// ListByEvent returns every assignment of an event ordered by table, then
// seat.  Unseated (NULL) seats sort last within their table.
func (r *AssignmentRepo) ListByEvent(ctx context.Context, eventID string) ([]model.TableAssignment, error) {
	q := `SELECT ` + assignmentColumns + `
	      FROM table_assignments
	      WHERE event_id = ?
	      ORDER BY table_number, seat_number IS NULL, seat_number, assigned_at`
	rows, err := r.db.QueryContext(ctx, q, eventID)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	defer rows.Close()

	out := []model.TableAssignment{}
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ReplaceAll deletes every assignment of the event and inserts rows in one
// transaction.  Rows without an ID receive a fresh uuid; every row is
// stamped with eventID.  Either the whole plan is stored or nothing changes.
func (r *AssignmentRepo) ReplaceAll(ctx context.Context, eventID string, rows []model.TableAssignment) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM table_assignments WHERE event_id = ?`, eventID); err != nil {
		return fmt.Errorf("clear assignments: %w", err)
	}
	if len(rows) > 0 {
		var sb strings.Builder
		sb.WriteString(`INSERT INTO table_assignments (` + assignmentColumns + `) VALUES `)
		args := make([]interface{}, 0, len(rows)*9)
		for i := range rows {
			a := &rows[i]
			if i > 0 {
				sb.WriteString(",")
			}
			sb.WriteString("(?, ?, ?, ?, ?, ?, ?, ?, ?)")
			if a.ID == "" {
				a.ID = uuid.NewString()
			}
			a.EventID = eventID
			args = append(args, a.ID, a.EventID, a.ParticipantID, a.TableNumber,
				a.SeatNumber, a.IsVIPTable, a.AssignedBy, a.AssignedAt, a.Notes)
		}
		if _, err = tx.ExecContext(ctx, sb.String(), args...); err != nil {
			return fmt.Errorf("insert assignments: %w", err)
		}
	}
	return tx.Commit()
}

// Upsert creates or moves the assignment of a single participant.  An
// existing row for (event_id, participant_id) keeps its id and has its
// table, seat, source, timestamp and notes overwritten.  a is refreshed from
// the stored row.
func (r *AssignmentRepo) Upsert(ctx context.Context, a *model.TableAssignment) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	const q = `INSERT INTO table_assignments (id, event_id, participant_id, table_number, seat_number, is_vip_table, assigned_by, assigned_at, notes)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	           ON DUPLICATE KEY UPDATE
	             table_number = VALUES(table_number),
	             seat_number  = VALUES(seat_number),
	             is_vip_table = VALUES(is_vip_table),
	             assigned_by  = VALUES(assigned_by),
	             assigned_at  = VALUES(assigned_at),
	             notes        = VALUES(notes)`
	if _, err := r.db.ExecContext(ctx, q, a.ID, a.EventID, a.ParticipantID, a.TableNumber,
		a.SeatNumber, a.IsVIPTable, a.AssignedBy, a.AssignedAt, a.Notes); err != nil {
		return fmt.Errorf("upsert assignment: %w", err)
	}
	stored, err := r.getByParticipant(ctx, a.EventID, a.ParticipantID)
	if err != nil {
		return err
	}
	*a = *stored
	return nil
}

func (r *AssignmentRepo) getByParticipant(ctx context.Context, eventID, participantID string) (*model.TableAssignment, error) {
	q := `SELECT ` + assignmentColumns + ` FROM table_assignments WHERE event_id = ? AND participant_id = ?`
	a, err := scanAssignment(r.db.QueryRowContext(ctx, q, eventID, participantID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}
	return &a, nil
}

// DeleteByID removes one assignment of an event.  ErrAssignmentNotFound is
// returned when no row matched.
func (r *AssignmentRepo) DeleteByID(ctx context.Context, eventID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM table_assignments WHERE id = ? AND event_id = ?`, id, eventID)
	if err != nil {
		return fmt.Errorf("delete assignment: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrAssignmentNotFound
	}
	return nil
}

// DeleteAllByEvent clears the seating plan of an event and reports how many
// rows were removed.
func (r *AssignmentRepo) DeleteAllByEvent(ctx context.Context, eventID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM table_assignments WHERE event_id = ?`, eventID)
	if err != nil {
		return 0, fmt.Errorf("clear assignments: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAssignment(s rowScanner) (model.TableAssignment, error) {
	var (
		a     model.TableAssignment
		seat  sql.NullInt64
		notes sql.NullString
	)
	if err := s.Scan(&a.ID, &a.EventID, &a.ParticipantID, &a.TableNumber, &seat,
		&a.IsVIPTable, &a.AssignedBy, &a.AssignedAt, &notes); err != nil {
		return a, err
	}
	if seat.Valid {
		n := int(seat.Int64)
		a.SeatNumber = &n
	}
	if notes.Valid {
		a.Notes = &notes.String
	}
	return a, nil
}
