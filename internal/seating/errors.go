package seating

import "errors"

// ErrInvalidConstraints is returned when a Constraints value cannot drive a
// seating run, e.g. a non-positive table size.
var ErrInvalidConstraints = errors.New("invalid seating constraints")

// ErrUnitExceedsCapacity is returned when a unit does not fit even an empty
// table. The run is aborted and no partial assignment is returned.
var ErrUnitExceedsCapacity = errors.New("seating unit exceeds table capacity")
