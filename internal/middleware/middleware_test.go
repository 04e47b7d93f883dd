package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/logi101/eventflow-seating/internal/config"
	"github.com/logi101/eventflow-seating/internal/utils"
)

const testSecret = "test-secret"

func newRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func serve(e *echo.Echo, method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func token(t *testing.T, role string) string {
	t.Helper()
	at, err := utils.NewAccessToken(testSecret, "m-1", role, time.Hour)
	require.NoError(t, err)
	return at.Token
}

func whoami(c echo.Context) error {
	return c.String(http.StatusOK, UserID(c))
}

func TestJWTAuth(t *testing.T) {
	e := echo.New()
	e.GET("/me", whoami, JWTAuth(testSecret), RequireRole(RoleManager, RoleAdmin))

	rec := serve(e, http.MethodGet, "/me", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "missing bearer token")

	rec = serve(e, http.MethodGet, "/me", "not-a-jwt")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	other, err := utils.NewAccessToken("other-secret", "m-1", RoleManager, time.Hour)
	require.NoError(t, err)
	rec = serve(e, http.MethodGet, "/me", other.Token)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	expired, err := utils.NewAccessToken(testSecret, "m-1", RoleManager, -time.Minute)
	require.NoError(t, err)
	rec = serve(e, http.MethodGet, "/me", expired.Token)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(e, http.MethodGet, "/me", token(t, "CUSTOMER"))
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = serve(e, http.MethodGet, "/me", token(t, RoleManager))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "m-1", rec.Body.String())
}

func TestUserID_Anonymous(t *testing.T) {
	e := echo.New()
	e.GET("/me", whoami)
	require.Equal(t, "anon", serve(e, http.MethodGet, "/me", "").Body.String())
}

func cacheConfig() config.LayoutCacheConfig {
	return config.LayoutCacheConfig{
		Enabled: true,
		TTL:     time.Minute,
		Prefix:  "test-cache",
	}
}

func TestRedisCache_HitAfterMiss(t *testing.T) {
	calls := 0
	e := echo.New()
	e.GET("/layout", func(c echo.Context) error {
		calls++
		c.Response().Header().Set("X-Layout", "round")
		return c.JSON(http.StatusOK, echo.Map{"capacity": c.QueryParam("capacity")})
	}, NewRedisCache(cacheConfig(), newRedis(t)))

	first := serve(e, http.MethodGet, "/layout?capacity=8&shape=round", "")
	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, "MISS", first.Header().Get("X-Cache"))

	second := serve(e, http.MethodGet, "/layout?shape=round&capacity=8", "")
	require.Equal(t, http.StatusOK, second.Code)
	require.Equal(t, "HIT", second.Header().Get("X-Cache"))
	require.Equal(t, "round", second.Header().Get("X-Layout"))
	require.Equal(t, first.Body.String(), second.Body.String())
	require.Equal(t, 1, calls)

	third := serve(e, http.MethodGet, "/layout?capacity=6", "")
	require.Equal(t, "MISS", third.Header().Get("X-Cache"))
	require.Equal(t, 2, calls)
}

func TestRedisCache_SkipsErrorsAndOtherMethods(t *testing.T) {
	calls := 0
	h := func(c echo.Context) error {
		calls++
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad"})
	}
	e := echo.New()
	mw := NewRedisCache(cacheConfig(), newRedis(t))
	e.GET("/bad", h, mw)
	e.POST("/bad", h, mw)

	serve(e, http.MethodGet, "/bad", "")
	serve(e, http.MethodGet, "/bad", "")
	serve(e, http.MethodPost, "/bad", "")
	require.Equal(t, 3, calls)
}

func TestRedisCache_DisabledWithoutClient(t *testing.T) {
	e := echo.New()
	e.GET("/x", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, NewRedisCache(cacheConfig(), nil))
	require.Empty(t, serve(e, http.MethodGet, "/x", "").Header().Get("X-Cache"))
}

func TestRedisCache_StoresWithTTLAndSkipsOversizedBodies(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	cfg := cacheConfig()
	cfg.MaxBodyBytes = 32
	e := echo.New()
	e.GET("/seats", func(c echo.Context) error {
		return c.String(http.StatusOK, strings.Repeat("s", len(c.QueryParam("n"))))
	}, NewRedisCache(cfg, rdb))

	serve(e, http.MethodGet, "/seats?n=xx", "")
	keys := mr.Keys()
	require.Len(t, keys, 1)
	require.True(t, strings.HasPrefix(keys[0], "test-cache:"))
	require.Equal(t, time.Minute, mr.TTL(keys[0]))

	rec := serve(e, http.MethodGet, "/seats?n="+strings.Repeat("x", 64), "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, rec.Body.String(), 64)
	require.Len(t, mr.Keys(), 1)
}

func TestEncodeDecodePayload_RejectsShortInput(t *testing.T) {
	_, _, _, ok := decodePayload([]byte{0, 0, 0})
	require.False(t, ok)
	_, _, _, ok = decodePayload([]byte{0, 0, 0, 200, 0, 0, 0, 99})
	require.False(t, ok)
}

func TestTokenBucket_BlocksAfterCapacity(t *testing.T) {
	cfg := config.RateLimitConfig{
		Enabled:        true,
		Capacity:       2,
		RefillTokens:   1,
		RefillInterval: time.Minute,
		TTL:            5 * time.Minute,
		KeyStrategy:    "event",
		Prefix:         "rl-test",
	}
	e := echo.New()
	e.POST("/events/:event_id/generate", func(c echo.Context) error {
		return c.NoContent(http.StatusAccepted)
	}, NewTokenBucket(cfg, newRedis(t)))

	for i := 0; i < 2; i++ {
		rec := serve(e, http.MethodPost, "/events/e1/generate", "")
		require.Equal(t, http.StatusAccepted, rec.Code)
	}
	rec := serve(e, http.MethodPost, "/events/e1/generate", "")
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	require.NotEmpty(t, rec.Header().Get("Retry-After"))

	// Buckets are per event.
	rec = serve(e, http.MethodPost, "/events/e2/generate", "")
	require.Equal(t, http.StatusAccepted, rec.Code)
}

func TestTokenBucket_FailsOpenWhenRedisIsDown(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	mr.Close()

	cfg := config.RateLimitConfig{Enabled: true, Capacity: 1, RefillTokens: 1, RefillInterval: time.Second, TTL: time.Minute}
	e := echo.New()
	e.GET("/x", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, NewTokenBucket(cfg, rdb))

	for i := 0; i < 3; i++ {
		require.Equal(t, http.StatusOK, serve(e, http.MethodGet, "/x", "").Code)
	}
}

func TestRequestID(t *testing.T) {
	e := echo.New()
	e.Use(RequestID())
	e.GET("/x", func(c echo.Context) error {
		return c.String(http.StatusOK, c.Get("request_id").(string))
	})

	rec := serve(e, http.MethodGet, "/x", "")
	generated := rec.Header().Get(HeaderRequestID)
	require.Len(t, generated, 36)
	require.Equal(t, generated, rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(HeaderRequestID, "upstream-1")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, "upstream-1", rec.Header().Get(HeaderRequestID))
}
