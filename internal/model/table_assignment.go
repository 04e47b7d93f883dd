package model

import "time"

// Assignment sources recorded in table_assignments.assigned_by.
const (
	AssignedByAI      = "ai"
	AssignedByManager = "manager"
	AssignedByAuto    = "auto"
)

// TableAssignment places one participant of an event at a table.  A
// participant holds at most one assignment per event; the pair
// (event_id, participant_id) is unique.
//
// Fields:
//
//	ID            – uuid primary key.
//	EventID       – event the seating plan belongs to.
//	ParticipantID – participant being seated.
//	TableNumber   – 1-based table number.
//	SeatNumber    – 1-based seat within the table, if fixed.
//	IsVIPTable    – whether the table is a VIP table.
//	AssignedBy    – ai, manager or auto.
//	AssignedAt    – time of the assignment.
//	Notes         – free-form manager notes.
type TableAssignment struct {
	ID            string    `json:"id"`             // table_assignments.id
	EventID       string    `json:"event_id"`       // table_assignments.event_id
	ParticipantID string    `json:"participant_id"` // table_assignments.participant_id
	TableNumber   int       `json:"table_number"`   // table_assignments.table_number
	SeatNumber    *int      `json:"seat_number,omitempty"`
	IsVIPTable    bool      `json:"is_vip_table"`
	AssignedBy    string    `json:"assigned_by"`
	AssignedAt    time.Time `json:"assigned_at"`
	Notes         *string   `json:"notes,omitempty"` // nullable
}
