package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/logi101/eventflow-seating/internal/geometry"
)

const (
	maxLayoutCapacity = 100
	maxTheaterSeats   = 2000
)

// LayoutSeats handles GET /v1/layout/seats?shape=round|rect&capacity=N and
// returns the seat coordinates of a standard table.  The response depends
// only on the query, so the route is cached.
func LayoutSeats(c echo.Context) error {
	shape := geometry.ShapeRound
	if raw := c.QueryParam("shape"); raw != "" {
		var err error
		if shape, err = geometry.ParseShape(raw); err != nil {
			return badRequest(c, err)
		}
	}
	capacity, err := strconv.Atoi(c.QueryParam("capacity"))
	if err != nil || capacity < 1 || capacity > maxLayoutCapacity {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "capacity must be between 1 and 100"})
	}
	seats, err := geometry.TableSeats(shape, capacity)
	if err != nil {
		return badRequest(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"shape":    shape,
		"capacity": capacity,
		"seats":    seats,
	})
}

// LayoutTheater handles GET /v1/layout/theater?rows=R&per_row=N and returns
// row-major seat coordinates for a theater-style block starting at the
// origin.
func LayoutTheater(c echo.Context) error {
	rows, err := strconv.Atoi(c.QueryParam("rows"))
	if err != nil || rows < 1 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "rows must be a positive integer"})
	}
	perRow, err := strconv.Atoi(c.QueryParam("per_row"))
	if err != nil || perRow < 1 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "per_row must be a positive integer"})
	}
	// Bound each factor before multiplying so the product cannot wrap.
	if rows > maxTheaterSeats || perRow > maxTheaterSeats/rows {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "layout exceeds 2000 seats"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"rows":    rows,
		"per_row": perRow,
		"seats":   geometry.TheaterSeats(geometry.Point{}, perRow, rows),
	})
}
