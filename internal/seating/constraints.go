package seating

import (
	"fmt"
	"sort"
)

// VIPSpreadCap is the maximum number of VIPs seated at one table when
// Constraints.VIPSpread is enabled. It does not scale with table size.
const VIPSpreadCap = 2

// Constraints configures a seating run.
//
// MinSharedInterests, MaxSameTrack and VIPPriorityTables are accepted and
// validated but are not consulted by the table scorer; they are reserved
// until their enforcement policy is settled.
type Constraints struct {
	// MaxTableSize is the default capacity of every table.
	MaxTableSize int `json:"max_table_size"`
	// VariableTableSizes overrides MaxTableSize for specific tables.
	VariableTableSizes map[TableNumber]int `json:"variable_table_sizes,omitempty"`
	// MinSharedInterests is reserved.
	MinSharedInterests int `json:"min_shared_interests"`
	// MaxSameTrack is reserved.
	MaxSameTrack int `json:"max_same_track"`
	// CompanionsTogether seats a participant and their companion as one unit.
	CompanionsTogether bool `json:"companions_together"`
	// VIPSpread caps VIP occupancy per table at VIPSpreadCap.
	VIPSpread bool `json:"vip_spread"`
	// VIPPriorityTables is reserved.
	VIPPriorityTables []TableNumber `json:"vip_priority_tables,omitempty"`
}

// DefaultConstraints returns the constraints used when an event has not
// configured its own.
func DefaultConstraints() Constraints {
	return Constraints{
		MaxTableSize:       8,
		MinSharedInterests: 1,
		MaxSameTrack:       3,
		CompanionsTogether: true,
		VIPSpread:          true,
	}
}

// Validate checks that c can drive a seating run. All failures wrap
// ErrInvalidConstraints.
func (c Constraints) Validate() error {
	if c.MaxTableSize <= 0 {
		return fmt.Errorf("%w: max table size must be positive, got %d", ErrInvalidConstraints, c.MaxTableSize)
	}
	// iterate in table order so the reported table is stable
	for _, table := range sortedTables(c.VariableTableSizes) {
		if table < 1 {
			return fmt.Errorf("%w: table size override for table %d, tables start at 1", ErrInvalidConstraints, table)
		}
		if size := c.VariableTableSizes[table]; size <= 0 {
			return fmt.Errorf("%w: table %d capacity must be positive, got %d", ErrInvalidConstraints, table, size)
		}
	}
	if c.MinSharedInterests < 0 {
		return fmt.Errorf("%w: min shared interests must not be negative", ErrInvalidConstraints)
	}
	if c.MaxSameTrack < 0 {
		return fmt.Errorf("%w: max same track must not be negative", ErrInvalidConstraints)
	}
	for _, table := range c.VIPPriorityTables {
		if table < 1 {
			return fmt.Errorf("%w: vip priority table %d, tables start at 1", ErrInvalidConstraints, table)
		}
	}
	return nil
}

// EffectiveCapacity returns the seat limit of table: its override when one
// is configured, otherwise MaxTableSize.
func (c Constraints) EffectiveCapacity(table TableNumber) int {
	if size, ok := c.VariableTableSizes[table]; ok {
		return size
	}
	return c.MaxTableSize
}

// Clone returns a deep copy of c so callers can adjust overrides without
// touching the original.
func (c Constraints) Clone() Constraints {
	out := c
	if c.VariableTableSizes != nil {
		out.VariableTableSizes = make(map[TableNumber]int, len(c.VariableTableSizes))
		for k, v := range c.VariableTableSizes {
			out.VariableTableSizes[k] = v
		}
	}
	if c.VIPPriorityTables != nil {
		out.VIPPriorityTables = append([]TableNumber(nil), c.VIPPriorityTables...)
	}
	return out
}

func sortedTables(m map[TableNumber]int) []TableNumber {
	out := make([]TableNumber, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
