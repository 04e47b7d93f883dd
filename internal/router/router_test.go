package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/logi101/eventflow-seating/internal/handler"
	"github.com/logi101/eventflow-seating/internal/middleware"
	"github.com/logi101/eventflow-seating/internal/model"
	"github.com/logi101/eventflow-seating/internal/service"
	"github.com/logi101/eventflow-seating/internal/utils"
)

const (
	secret  = "router-secret"
	eventID = "7f1c2a36-3d5e-4d7a-9a43-1b2c3d4e5f60"
)

type stubSeating struct{}

func (stubSeating) Generate(_ context.Context, id string, req service.GenerateRequest) (*service.GenerateResult, error) {
	return &service.GenerateResult{EventID: id, DryRun: req.DryRun}, nil
}
func (stubSeating) ListAssignments(context.Context, string) ([]model.TableAssignment, error) {
	return nil, nil
}
func (stubSeating) MoveParticipant(context.Context, string, string, service.MoveRequest) (*model.TableAssignment, error) {
	return &model.TableAssignment{}, nil
}
func (stubSeating) DeleteAssignment(context.Context, string, string) error  { return nil }
func (stubSeating) ClearAssignments(context.Context, string) (int64, error) { return 0, nil }

type stubVenue struct{}

func (stubVenue) ListByEvent(context.Context, string) ([]model.VenueTable, error) { return nil, nil }
func (stubVenue) Upsert(context.Context, model.VenueTable) error                  { return nil }
func (stubVenue) Delete(context.Context, string, int) error                       { return nil }

func newServer(limit echo.MiddlewareFunc) *echo.Echo {
	pass := func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	if limit == nil {
		limit = pass
	}
	e := echo.New()
	RegisterRoutes(e)
	RegisterLayout(e, pass)
	RegisterSeating(e, handler.NewSeatingHandler(stubSeating{}), handler.NewVenueHandler(stubVenue{}), secret, limit)
	return e
}

func call(e *echo.Echo, method, target, token string) int {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec.Code
}

func tokenFor(t *testing.T, role string) string {
	t.Helper()
	at, err := utils.NewAccessToken(secret, "u-1", role, time.Hour)
	require.NoError(t, err)
	return at.Token
}

func TestPublicRoutes(t *testing.T) {
	e := newServer(nil)
	require.Equal(t, http.StatusOK, call(e, http.MethodGet, "/healthz", ""))
	require.Equal(t, http.StatusOK, call(e, http.MethodGet, "/metrics", ""))
	require.Equal(t, http.StatusOK, call(e, http.MethodGet, "/v1/layout/seats?capacity=4", ""))
	require.Equal(t, http.StatusOK, call(e, http.MethodGet, "/v1/layout/theater?rows=1&per_row=4", ""))
}

func TestManagerRoutesRequireRole(t *testing.T) {
	e := newServer(nil)
	base := "/v1/events/" + eventID

	routes := []struct{ method, path string }{
		{http.MethodPost, "/seating/generate"},
		{http.MethodGet, "/seating"},
		{http.MethodDelete, "/seating"},
		{http.MethodGet, "/tables"},
		{http.MethodDelete, "/tables/1"},
	}
	manager := tokenFor(t, middleware.RoleManager)
	admin := tokenFor(t, middleware.RoleAdmin)
	guest := tokenFor(t, "PARTICIPANT")
	for _, r := range routes {
		require.Equal(t, http.StatusUnauthorized, call(e, r.method, base+r.path, ""), r.path)
		require.Equal(t, http.StatusForbidden, call(e, r.method, base+r.path, guest), r.path)
		require.Less(t, call(e, r.method, base+r.path, manager), 300, r.path)
		require.Less(t, call(e, r.method, base+r.path, admin), 300, r.path)
	}
}

func TestGenerateIsRateLimited(t *testing.T) {
	hits := 0
	limit := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			hits++
			return next(c)
		}
	}
	e := newServer(limit)
	manager := tokenFor(t, middleware.RoleManager)

	call(e, http.MethodPost, "/v1/events/"+eventID+"/seating/generate", manager)
	call(e, http.MethodGet, "/v1/events/"+eventID+"/seating", manager)
	require.Equal(t, 1, hits)
}
