// Package queue defines message payloads exchanged over the message broker
// and the background consumer that records them.
package queue

import "time"

// SeatingGeneratedQueue is the durable queue seating runs are announced on.
const SeatingGeneratedQueue = "seating.generated"

// SeatingGeneratedEvent is published after a seating run completes.  It
// carries enough of the run summary for downstream consumers to log, notify
// or trigger analytics without querying the primary database.
type SeatingGeneratedEvent struct {
	EventID     string    `json:"event_id"`
	TableCount  int       `json:"table_count"`
	Seated      int       `json:"seated"`
	VIPTables   int       `json:"vip_tables"`
	DryRun      bool      `json:"dry_run"`
	GeneratedBy string    `json:"generated_by"`
	GeneratedAt time.Time `json:"generated_at"`
}
