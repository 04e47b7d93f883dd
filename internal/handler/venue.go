package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/logi101/eventflow-seating/internal/geometry"
	"github.com/logi101/eventflow-seating/internal/model"
)

// VenueTables is the venue table storage used by VenueHandler.
type VenueTables interface {
	ListByEvent(ctx context.Context, eventID string) ([]model.VenueTable, error)
	Upsert(ctx context.Context, t model.VenueTable) error
	Delete(ctx context.Context, eventID string, tableNumber int) error
}

// VenueHandler manages the configured tables of an event.
type VenueHandler struct {
	tables VenueTables
}

// NewVenueHandler constructs a VenueHandler and panics if tables is nil.
func NewVenueHandler(tables VenueTables) *VenueHandler {
	if tables == nil {
		panic("nil repository passed to NewVenueHandler")
	}
	return &VenueHandler{tables: tables}
}

type venueTableBody struct {
	Capacity   int    `json:"capacity" validate:"required,min=1,max=100"`
	Shape      string `json:"shape" validate:"omitempty,oneof=round rect circle rectangle"`
	IsVIPTable bool   `json:"is_vip_table"`
}

// List handles GET /v1/events/:event_id/tables.
func (h *VenueHandler) List(c echo.Context) error {
	eventID, err := uuidParam(c, "event_id")
	if err != nil {
		return badRequest(c, err)
	}
	tables, err := h.tables.ListByEvent(c.Request().Context(), eventID)
	if err != nil {
		return seatingError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"event_id": eventID, "tables": tables})
}

// Upsert handles PUT /v1/events/:event_id/tables/:table_number.  Shape
// defaults to round.
func (h *VenueHandler) Upsert(c echo.Context) error {
	eventID, err := uuidParam(c, "event_id")
	if err != nil {
		return badRequest(c, err)
	}
	number, err := tableNumberParam(c)
	if err != nil {
		return badRequest(c, err)
	}
	var body venueTableBody
	if err := bindAndValidate(c, &body); err != nil {
		return badRequest(c, err)
	}
	shape := geometry.ShapeRound
	if body.Shape != "" {
		if shape, err = geometry.ParseShape(body.Shape); err != nil {
			return badRequest(c, err)
		}
	}
	t := model.VenueTable{
		EventID:     eventID,
		TableNumber: number,
		Capacity:    body.Capacity,
		Shape:       string(shape),
		IsVIPTable:  body.IsVIPTable,
	}
	if err := h.tables.Upsert(c.Request().Context(), t); err != nil {
		return seatingError(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

// Delete handles DELETE /v1/events/:event_id/tables/:table_number.
func (h *VenueHandler) Delete(c echo.Context) error {
	eventID, err := uuidParam(c, "event_id")
	if err != nil {
		return badRequest(c, err)
	}
	number, err := tableNumberParam(c)
	if err != nil {
		return badRequest(c, err)
	}
	if err := h.tables.Delete(c.Request().Context(), eventID, number); err != nil {
		return seatingError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
