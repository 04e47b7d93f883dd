package model

// VenueTable is the configured shape and capacity of one table of an event's
// venue.  Capacities feed the seating engine as per-table overrides.
type VenueTable struct {
	EventID     string `json:"event_id"`     // venue_tables.event_id
	TableNumber int    `json:"table_number"` // venue_tables.table_number
	Capacity    int    `json:"capacity"`     // venue_tables.capacity
	Shape       string `json:"shape"`        // venue_tables.shape (round | rect)
	IsVIPTable  bool   `json:"is_vip_table"` // venue_tables.is_vip_table
}
