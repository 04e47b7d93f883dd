package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"                             // Echo web framework
	"github.com/prometheus/client_golang/prometheus/promhttp" // Prometheus scrape handler

	"github.com/logi101/eventflow-seating/internal/handler"    // HTTP handlers
	"github.com/logi101/eventflow-seating/internal/middleware" // JWT and role enforcement
)

// RegisterRoutes registers routes that do not require authentication: the
// health check used by load balancers and the Prometheus scrape endpoint.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

// RegisterLayout registers the public seat layout endpoints.  Responses
// depend only on the query string, so cache wraps every route.
func RegisterLayout(e *echo.Echo, cache echo.MiddlewareFunc) {
	g := e.Group("/v1/layout", cache)
	g.GET("/seats", handler.LayoutSeats)
	g.GET("/theater", handler.LayoutTheater)
}

// RegisterSeating registers the manager endpoints of an event under
// /v1/events/:event_id.  All routes require a valid JWT with the MANAGER or
// ADMIN role; generate is additionally rate limited.
func RegisterSeating(e *echo.Echo, s *handler.SeatingHandler, v *handler.VenueHandler, jwtSecret string, limit echo.MiddlewareFunc) {
	g := e.Group(
		"/v1/events/:event_id",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(middleware.RoleManager, middleware.RoleAdmin),
	)

	// ---- Seating plan ----
	g.POST("/seating/generate", s.Generate, limit)
	g.GET("/seating", s.List)
	g.DELETE("/seating", s.Clear)
	g.PUT("/seating/participants/:participant_id", s.Move)
	g.DELETE("/seating/assignments/:id", s.DeleteAssignment)

	// ---- Venue tables ----
	g.GET("/tables", v.List)
	g.PUT("/tables/:table_number", v.Upsert)
	g.DELETE("/tables/:table_number", v.Delete)
}
