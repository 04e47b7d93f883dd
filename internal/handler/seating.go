package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/logi101/eventflow-seating/internal/logging"
	"github.com/logi101/eventflow-seating/internal/middleware"
	"github.com/logi101/eventflow-seating/internal/model"
	"github.com/logi101/eventflow-seating/internal/repository"
	"github.com/logi101/eventflow-seating/internal/seating"
	"github.com/logi101/eventflow-seating/internal/service"
)

// SeatingService is the part of service.SeatingService the handlers use.
type SeatingService interface {
	Generate(ctx context.Context, eventID string, req service.GenerateRequest) (*service.GenerateResult, error)
	ListAssignments(ctx context.Context, eventID string) ([]model.TableAssignment, error)
	MoveParticipant(ctx context.Context, eventID, participantID string, req service.MoveRequest) (*model.TableAssignment, error)
	DeleteAssignment(ctx context.Context, eventID, id string) error
	ClearAssignments(ctx context.Context, eventID string) (int64, error)
}

// SeatingHandler serves the seating plan endpoints of an event.
type SeatingHandler struct {
	svc SeatingService
}

// NewSeatingHandler constructs a SeatingHandler and panics if svc is nil.
func NewSeatingHandler(svc SeatingService) *SeatingHandler {
	if svc == nil {
		panic("nil service passed to NewSeatingHandler")
	}
	return &SeatingHandler{svc: svc}
}

// Generate handles POST /v1/events/:event_id/seating/generate.  The body is
// optional and overrides the configured seating defaults.
func (h *SeatingHandler) Generate(c echo.Context) error {
	eventID, err := uuidParam(c, "event_id")
	if err != nil {
		return badRequest(c, err)
	}
	var req service.GenerateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return badRequest(c, err)
	}
	req.GeneratedBy = middleware.UserID(c)

	res, err := h.svc.Generate(c.Request().Context(), eventID, req)
	if err != nil {
		return seatingError(c, err)
	}
	status := http.StatusCreated
	if res.DryRun {
		status = http.StatusOK
	}
	return c.JSON(status, res)
}

// List handles GET /v1/events/:event_id/seating.
func (h *SeatingHandler) List(c echo.Context) error {
	eventID, err := uuidParam(c, "event_id")
	if err != nil {
		return badRequest(c, err)
	}
	rows, err := h.svc.ListAssignments(c.Request().Context(), eventID)
	if err != nil {
		return seatingError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"event_id": eventID, "assignments": rows})
}

// Clear handles DELETE /v1/events/:event_id/seating.
func (h *SeatingHandler) Clear(c echo.Context) error {
	eventID, err := uuidParam(c, "event_id")
	if err != nil {
		return badRequest(c, err)
	}
	n, err := h.svc.ClearAssignments(c.Request().Context(), eventID)
	if err != nil {
		return seatingError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"removed": n})
}

// Move handles PUT /v1/events/:event_id/seating/participants/:participant_id,
// the manual override that bypasses the engine.
func (h *SeatingHandler) Move(c echo.Context) error {
	eventID, err := uuidParam(c, "event_id")
	if err != nil {
		return badRequest(c, err)
	}
	participantID, err := uuidParam(c, "participant_id")
	if err != nil {
		return badRequest(c, err)
	}
	var req service.MoveRequest
	if err := bindAndValidate(c, &req); err != nil {
		return badRequest(c, err)
	}
	a, err := h.svc.MoveParticipant(c.Request().Context(), eventID, participantID, req)
	if err != nil {
		return seatingError(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

// DeleteAssignment handles DELETE /v1/events/:event_id/seating/assignments/:id.
func (h *SeatingHandler) DeleteAssignment(c echo.Context) error {
	eventID, err := uuidParam(c, "event_id")
	if err != nil {
		return badRequest(c, err)
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return badRequest(c, err)
	}
	if err := h.svc.DeleteAssignment(c.Request().Context(), eventID, id); err != nil {
		return seatingError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// seatingError maps service and storage errors to HTTP responses.
func seatingError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, seating.ErrInvalidConstraints),
		errors.Is(err, seating.ErrUnitExceedsCapacity),
		errors.Is(err, service.ErrInvalidTable):
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrAssignmentNotFound),
		errors.Is(err, repository.ErrVenueTableNotFound),
		errors.Is(err, service.ErrParticipantNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "request cancelled"})
	}
	logging.For("http").Error().Err(err).Str("path", c.Path()).Msg("request failed")
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
}
