// Package service orchestrates seating runs: it loads participants and
// venue configuration, runs the engine, stores the plan and announces it.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/logi101/eventflow-seating/internal/logging"
	"github.com/logi101/eventflow-seating/internal/metrics"
	"github.com/logi101/eventflow-seating/internal/model"
	"github.com/logi101/eventflow-seating/internal/queue"
	"github.com/logi101/eventflow-seating/internal/seating"
)

var (
	// ErrParticipantNotFound is returned by MoveParticipant when the
	// participant is not registered for the event.
	ErrParticipantNotFound = errors.New("participant not found")
	// ErrInvalidTable is returned for table or seat numbers below 1.
	ErrInvalidTable = errors.New("table and seat numbers start at 1")
)

// AssignmentStore persists seating plans.
type AssignmentStore interface {
	ListByEvent(ctx context.Context, eventID string) ([]model.TableAssignment, error)
	ReplaceAll(ctx context.Context, eventID string, rows []model.TableAssignment) error
	Upsert(ctx context.Context, a *model.TableAssignment) error
	DeleteByID(ctx context.Context, eventID, id string) error
	DeleteAllByEvent(ctx context.Context, eventID string) (int64, error)
}

// ParticipantSource lists the participants of an event.
type ParticipantSource interface {
	ListForSeating(ctx context.Context, eventID string) ([]seating.Participant, error)
}

// VenueSource lists the configured tables of an event.
type VenueSource interface {
	ListByEvent(ctx context.Context, eventID string) ([]model.VenueTable, error)
}

// Publisher announces completed seating runs.
type Publisher interface {
	PublishSeatingGenerated(ctx context.Context, ev queue.SeatingGeneratedEvent) error
}

// GenerateRequest overrides the configured seating defaults for one run.
// Nil fields keep the default.  VariableTableSizes entries win over the
// venue's configured capacities for the same table.
type GenerateRequest struct {
	MaxTableSize       *int        `json:"max_table_size" validate:"omitempty,min=1,max=100"`
	VariableTableSizes map[int]int `json:"variable_table_sizes" validate:"omitempty,dive,keys,min=1,endkeys,min=1,max=100"`
	MinSharedInterests *int        `json:"min_shared_interests" validate:"omitempty,min=0"`
	MaxSameTrack       *int        `json:"max_same_track" validate:"omitempty,min=0"`
	CompanionsTogether *bool       `json:"companions_together"`
	VIPSpread          *bool       `json:"vip_spread"`
	VIPPriorityTables  []int       `json:"vip_priority_tables" validate:"omitempty,dive,min=1"`
	// DryRun computes the plan without storing it.
	DryRun bool `json:"dry_run"`
	// GeneratedBy identifies the requesting manager; set from the token.
	GeneratedBy string `json:"-"`
}

// TablePlan is one table of a generated plan.
type TablePlan struct {
	TableNumber  int                   `json:"table_number"`
	Capacity     int                   `json:"capacity"`
	IsVIPTable   bool                  `json:"is_vip_table"`
	Participants []seating.Participant `json:"participants"`
}

// GenerateResult is the outcome of a successful run.
type GenerateResult struct {
	EventID     string                  `json:"event_id"`
	DryRun      bool                    `json:"dry_run"`
	Constraints seating.Constraints     `json:"constraints"`
	Stats       seating.RunStats        `json:"stats"`
	Tables      []TablePlan             `json:"tables"`
	Assignments []model.TableAssignment `json:"assignments"`
}

// MoveRequest places one participant manually.
type MoveRequest struct {
	TableNumber int     `json:"table_number" validate:"required,min=1"`
	SeatNumber  *int    `json:"seat_number" validate:"omitempty,min=1"`
	Notes       *string `json:"notes" validate:"omitempty,max=500"`
}

// SeatingService runs and edits seating plans.
type SeatingService struct {
	assignments  AssignmentStore
	participants ParticipantSource
	venue        VenueSource
	publisher    Publisher
	defaults     seating.Constraints
	now          func() time.Time
}

// NewSeatingService wires a SeatingService.  publisher may be nil, in which
// case runs are not announced.
func NewSeatingService(a AssignmentStore, p ParticipantSource, v VenueSource, pub Publisher, defaults seating.Constraints) *SeatingService {
	return &SeatingService{
		assignments:  a,
		participants: p,
		venue:        v,
		publisher:    pub,
		defaults:     defaults.Clone(),
		now:          time.Now,
	}
}

// Generate builds a seating plan for the event's opted-in participants and,
// unless req.DryRun is set, replaces the stored plan with it.  Engine
// failures abort the run before anything is written.
func (s *SeatingService) Generate(ctx context.Context, eventID string, req GenerateRequest) (*GenerateResult, error) {
	started := time.Now()
	res, err := s.generate(ctx, eventID, req)
	switch {
	case err == nil:
		metrics.ObserveRun(metrics.OutcomeOK, started, res.Stats.Tables, res.Stats.Seated)
	case errors.Is(err, seating.ErrInvalidConstraints), errors.Is(err, seating.ErrUnitExceedsCapacity):
		metrics.ObserveRun(metrics.OutcomeRejected, started, 0, 0)
	default:
		metrics.ObserveRun(metrics.OutcomeError, started, 0, 0)
	}
	return res, err
}

func (s *SeatingService) generate(ctx context.Context, eventID string, req GenerateRequest) (*GenerateResult, error) {
	log := logging.For("seating")

	pool, err := s.participants.ListForSeating(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("load participants: %w", err)
	}
	pool = seating.FilterOptedIn(pool)

	venue, err := s.venue.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("load venue: %w", err)
	}

	c := s.constraintsFor(venue, req)
	engine, err := seating.NewEngine(c)
	if err != nil {
		return nil, err
	}
	plan, err := engine.Assign(pool)
	if err != nil {
		log.Warn().Err(err).Str("event_id", eventID).Int("participants", len(pool)).Msg("seating run rejected")
		return nil, err
	}

	res := &GenerateResult{
		EventID:     eventID,
		DryRun:      req.DryRun,
		Constraints: c,
		Stats:       seating.Stats(plan, c),
	}
	res.Tables, res.Assignments = s.toRows(eventID, plan, c, venueVIPTables(venue))

	if !req.DryRun {
		if err := s.assignments.ReplaceAll(ctx, eventID, res.Assignments); err != nil {
			return nil, fmt.Errorf("store seating plan: %w", err)
		}
	}

	log.Info().
		Str("event_id", eventID).
		Int("tables", res.Stats.Tables).
		Int("seated", res.Stats.Seated).
		Int("vip_tables", res.Stats.VIPTables).
		Bool("dry_run", req.DryRun).
		Msg("seating generated")

	s.announce(ctx, res, req.GeneratedBy)
	return res, nil
}

// publishTimeout bounds the announcement of a run that is already stored.
const publishTimeout = 5 * time.Second

func (s *SeatingService) announce(ctx context.Context, res *GenerateResult, by string) {
	if s.publisher == nil {
		return
	}
	ev := queue.SeatingGeneratedEvent{
		EventID:     res.EventID,
		TableCount:  res.Stats.Tables,
		Seated:      res.Stats.Seated,
		VIPTables:   res.Stats.VIPTables,
		DryRun:      res.DryRun,
		GeneratedBy: by,
		GeneratedAt: s.now().UTC(),
	}
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	if err := s.publisher.PublishSeatingGenerated(ctx, ev); err != nil {
		logging.For("seating").Error().Err(err).Str("event_id", res.EventID).Msg("publish seating.generated failed")
	}
}

// constraintsFor layers venue capacities and the request over the defaults.
func (s *SeatingService) constraintsFor(venue []model.VenueTable, req GenerateRequest) seating.Constraints {
	c := s.defaults.Clone()
	if req.MaxTableSize != nil {
		c.MaxTableSize = *req.MaxTableSize
	}
	if req.MinSharedInterests != nil {
		c.MinSharedInterests = *req.MinSharedInterests
	}
	if req.MaxSameTrack != nil {
		c.MaxSameTrack = *req.MaxSameTrack
	}
	if req.CompanionsTogether != nil {
		c.CompanionsTogether = *req.CompanionsTogether
	}
	if req.VIPSpread != nil {
		c.VIPSpread = *req.VIPSpread
	}
	if req.VIPPriorityTables != nil {
		c.VIPPriorityTables = make([]seating.TableNumber, 0, len(req.VIPPriorityTables))
		for _, n := range req.VIPPriorityTables {
			c.VIPPriorityTables = append(c.VIPPriorityTables, seating.TableNumber(n))
		}
	}

	if len(venue) > 0 || len(req.VariableTableSizes) > 0 {
		if c.VariableTableSizes == nil {
			c.VariableTableSizes = make(map[seating.TableNumber]int, len(venue)+len(req.VariableTableSizes))
		}
		for _, t := range venue {
			c.VariableTableSizes[seating.TableNumber(t.TableNumber)] = t.Capacity
		}
		for n, size := range req.VariableTableSizes {
			c.VariableTableSizes[seating.TableNumber(n)] = size
		}
	}
	return c
}

func venueVIPTables(venue []model.VenueTable) map[seating.TableNumber]bool {
	out := make(map[seating.TableNumber]bool, len(venue))
	for _, t := range venue {
		if t.IsVIPTable {
			out[seating.TableNumber(t.TableNumber)] = true
		}
	}
	return out
}

func (s *SeatingService) toRows(eventID string, plan seating.Assignment, c seating.Constraints, vipTables map[seating.TableNumber]bool) ([]TablePlan, []model.TableAssignment) {
	at := s.now().UTC()
	tables := make([]TablePlan, 0, len(plan))
	rows := make([]model.TableAssignment, 0, plan.Seated())
	for _, n := range plan.Tables() {
		occupants := plan[n]
		vip := vipTables[n]
		for _, p := range occupants {
			if p.IsVIP {
				vip = true
				break
			}
		}
		tables = append(tables, TablePlan{
			TableNumber:  int(n),
			Capacity:     c.EffectiveCapacity(n),
			IsVIPTable:   vip,
			Participants: occupants,
		})
		for i, p := range occupants {
			seat := i + 1
			rows = append(rows, model.TableAssignment{
				EventID:       eventID,
				ParticipantID: string(p.ID),
				TableNumber:   int(n),
				SeatNumber:    &seat,
				IsVIPTable:    vip,
				AssignedBy:    model.AssignedByAI,
				AssignedAt:    at,
			})
		}
	}
	return tables, rows
}

// ListAssignments returns the stored plan of an event.
func (s *SeatingService) ListAssignments(ctx context.Context, eventID string) ([]model.TableAssignment, error) {
	return s.assignments.ListByEvent(ctx, eventID)
}

// MoveParticipant assigns one participant to a table outside the engine,
// creating or replacing their assignment.
func (s *SeatingService) MoveParticipant(ctx context.Context, eventID, participantID string, req MoveRequest) (*model.TableAssignment, error) {
	if req.TableNumber < 1 || (req.SeatNumber != nil && *req.SeatNumber < 1) {
		return nil, ErrInvalidTable
	}
	pool, err := s.participants.ListForSeating(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("load participants: %w", err)
	}
	found := false
	for _, p := range pool {
		if string(p.ID) == participantID {
			found = true
			break
		}
	}
	if !found {
		return nil, ErrParticipantNotFound
	}

	venue, err := s.venue.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("load venue: %w", err)
	}

	a := &model.TableAssignment{
		EventID:       eventID,
		ParticipantID: participantID,
		TableNumber:   req.TableNumber,
		SeatNumber:    req.SeatNumber,
		IsVIPTable:    venueVIPTables(venue)[seating.TableNumber(req.TableNumber)],
		AssignedBy:    model.AssignedByManager,
		AssignedAt:    s.now().UTC(),
		Notes:         req.Notes,
	}
	if err := s.assignments.Upsert(ctx, a); err != nil {
		return nil, err
	}
	metrics.ManualMoves.Inc()
	logging.For("seating").Info().
		Str("event_id", eventID).
		Str("participant_id", participantID).
		Int("table", req.TableNumber).
		Msg("participant moved")
	return a, nil
}

// DeleteAssignment removes one assignment of the event.
func (s *SeatingService) DeleteAssignment(ctx context.Context, eventID, id string) error {
	return s.assignments.DeleteByID(ctx, eventID, id)
}

// ClearAssignments removes the event's whole plan and reports how many
// assignments were deleted.
func (s *SeatingService) ClearAssignments(ctx context.Context, eventID string) (int64, error) {
	n, err := s.assignments.DeleteAllByEvent(ctx, eventID)
	if err != nil {
		return 0, err
	}
	logging.For("seating").Info().Str("event_id", eventID).Int64("removed", n).Msg("seating cleared")
	return n, nil
}
