// Package repository holds the MySQL data access for seating plans, venue
// tables and the participants they are built from.  Sentinel errors defined
// here let handlers distinguish not-found from storage failures.
package repository

import "errors"

// ErrAssignmentNotFound is returned when a table assignment id does not
// exist.  Handlers translate it into an HTTP 404 response.
var ErrAssignmentNotFound = errors.New("table assignment not found")

// ErrVenueTableNotFound is returned when an event has no table with the
// requested number.
var ErrVenueTableNotFound = errors.New("venue table not found")
