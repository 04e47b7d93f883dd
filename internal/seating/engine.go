package seating

import "fmt"

// Engine runs seating passes against a fixed, validated set of constraints.
// An Engine is immutable and safe for concurrent use.
type Engine struct {
	constraints Constraints
}

// NewEngine validates c and returns an Engine bound to a private copy of it.
func NewEngine(c Constraints) (*Engine, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &Engine{constraints: c.Clone()}, nil
}

// Constraints returns a copy of the engine's constraints.
func (e *Engine) Constraints() Constraints {
	return e.constraints.Clone()
}

// Assign validates constraints and seats participants in one pass.
// See Engine.Assign.
func Assign(participants []Participant, c Constraints) (Assignment, error) {
	e, err := NewEngine(c)
	if err != nil {
		return nil, err
	}
	return e.Assign(participants)
}

// Assign partitions participants into tables.
//
// Every participant is placed at most once; duplicates of an already
// seated id are skipped. An empty pool yields an empty, non-nil
// Assignment. The only failure is a unit that cannot fit a fresh table,
// in which case no assignment is returned.
func (e *Engine) Assign(participants []Participant) (Assignment, error) {
	r := newRun(e.constraints, participants)
	if err := r.precheck(); err != nil {
		return nil, err
	}
	for _, p := range SortByPriority(participants) {
		if err := r.place(p); err != nil {
			return nil, err
		}
	}
	return r.result(), nil
}

// run is the working state of one Assign call.
type run struct {
	constraints Constraints
	companions  *companionIndex
	seated      map[ParticipantID]struct{}
	tables      []*table
	nextTable   TableNumber
}

func newRun(c Constraints, pool []Participant) *run {
	return &run{
		constraints: c,
		companions:  newCompanionIndex(pool),
		seated:      make(map[ParticipantID]struct{}, len(pool)),
		nextTable:   1,
	}
}

// precheck rejects runs that are bound to fail on a companion pair before
// anything is placed.
func (r *run) precheck() error {
	if !r.constraints.CompanionsTogether {
		return nil
	}
	largest := r.constraints.MaxTableSize
	for _, size := range r.constraints.VariableTableSizes {
		if size > largest {
			largest = size
		}
	}
	if largest < 2 && r.companions.hasResolvablePair() {
		return fmt.Errorf("%w: companion pairs need tables of at least 2 seats, largest table has %d",
			ErrUnitExceedsCapacity, largest)
	}
	return nil
}

func (r *run) place(p Participant) error {
	if _, done := r.seated[p.ID]; done {
		return nil
	}

	u := unit{members: []Participant{p}}
	if r.constraints.CompanionsTogether {
		u = r.companions.resolve(p, r.seated)
	}

	t := selectTable(r.tables, u, r.constraints)
	if t == nil {
		var err error
		if t, err = r.openTable(u); err != nil {
			return err
		}
	}
	t.seat(u)

	for _, m := range u.members {
		r.seated[m.ID] = struct{}{}
	}
	return nil
}

func (r *run) openTable(u unit) (*table, error) {
	number := r.nextTable
	capacity := r.constraints.EffectiveCapacity(number)
	if u.size() > capacity {
		return nil, fmt.Errorf("%w: unit of %d led by %q does not fit table %d (capacity %d)",
			ErrUnitExceedsCapacity, u.size(), u.primary().ID, number, capacity)
	}
	r.nextTable++
	t := &table{number: number, capacity: capacity}
	r.tables = append(r.tables, t)
	return t, nil
}

func (r *run) result() Assignment {
	out := make(Assignment, len(r.tables))
	for _, t := range r.tables {
		out[t.number] = t.occupants
	}
	return out
}
