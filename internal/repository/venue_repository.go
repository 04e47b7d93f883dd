package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/logi101/eventflow-seating/internal/model"
)

// VenueRepo stores the per-event table configuration.
type VenueRepo struct {
	db *sql.DB
}

// NewVenueRepo constructs a VenueRepo with the given DB handle.
func NewVenueRepo(db *sql.DB) *VenueRepo {
	return &VenueRepo{db: db}
}

// ListByEvent returns the configured tables of an event by table number.
func (r *VenueRepo) ListByEvent(ctx context.Context, eventID string) ([]model.VenueTable, error) {
	const q = `SELECT event_id, table_number, capacity, shape, is_vip_table
	           FROM venue_tables
	           WHERE event_id = ?
	           ORDER BY table_number`
	rows, err := r.db.QueryContext(ctx, q, eventID)
	if err != nil {
		return nil, fmt.Errorf("list venue tables: %w", err)
	}
	defer rows.Close()

	out := []model.VenueTable{}
	for rows.Next() {
		var t model.VenueTable
		if err := rows.Scan(&t.EventID, &t.TableNumber, &t.Capacity, &t.Shape, &t.IsVIPTable); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Upsert creates or replaces one table of an event.
func (r *VenueRepo) Upsert(ctx context.Context, t model.VenueTable) error {
	const q = `INSERT INTO venue_tables (event_id, table_number, capacity, shape, is_vip_table)
	           VALUES (?, ?, ?, ?, ?)
	           ON DUPLICATE KEY UPDATE
	             capacity     = VALUES(capacity),
	             shape        = VALUES(shape),
	             is_vip_table = VALUES(is_vip_table)`
	if _, err := r.db.ExecContext(ctx, q, t.EventID, t.TableNumber, t.Capacity, t.Shape, t.IsVIPTable); err != nil {
		return fmt.Errorf("upsert venue table: %w", err)
	}
	return nil
}

// Delete removes one table of an event.  ErrVenueTableNotFound is returned
// when the event has no such table.
func (r *VenueRepo) Delete(ctx context.Context, eventID string, tableNumber int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM venue_tables WHERE event_id = ? AND table_number = ?`, eventID, tableNumber)
	if err != nil {
		return fmt.Errorf("delete venue table: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrVenueTableNotFound
	}
	return nil
}
