package main // Entry point package

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/logi101/eventflow-seating/internal/config"
	"github.com/logi101/eventflow-seating/internal/database"
	"github.com/logi101/eventflow-seating/internal/handler"
	"github.com/logi101/eventflow-seating/internal/logging"
	"github.com/logi101/eventflow-seating/internal/middleware"
	"github.com/logi101/eventflow-seating/internal/queue"
	"github.com/logi101/eventflow-seating/internal/repository"
	"github.com/logi101/eventflow-seating/internal/router"
	"github.com/logi101/eventflow-seating/internal/service"
)

func main() {
	cfg := config.Load() // Load environment config
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log := logging.For("server")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("database unavailable")
	}
	defer db.Close()
	if cfg.Migrate {
		if err := database.Migrate(ctx, db); err != nil {
			log.Fatal().Err(err).Msg("schema migration failed")
		}
	}

	// Redis backs the response cache and the rate limiter; both pass
	// through when it is down.
	rdb, err := config.NewRedisClient(ctx, config.LoadRedisConfig())
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable; caching and rate limiting disabled")
	} else {
		defer rdb.Close()
	}

	qcfg := config.LoadQueueConfig()
	assignments := repository.NewAssignmentRepo(db)
	participants := repository.NewParticipantRepo(db)
	venue := repository.NewVenueRepo(db)
	svc := service.NewSeatingService(assignments, participants, venue,
		service.NewQueuePublisher(qcfg.URL), config.LoadSeatingDefaults())

	e := echo.New() // Create Echo instance
	e.HideBanner = true
	e.Use(middleware.RequestID())
	router.RegisterRoutes(e)
	router.RegisterLayout(e, middleware.NewRedisCache(config.LoadLayoutCacheConfig(), rdb))
	router.RegisterSeating(e,
		handler.NewSeatingHandler(svc),
		handler.NewVenueHandler(venue),
		cfg.JWTSecret,
		middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
	)

	if qcfg.ConsumerEnabled {
		go func() {
			if err := queue.StartSeatingConsumer(ctx, qcfg); err != nil && !errors.Is(err, context.Canceled) {
				log.Error().Err(err).Msg("seating consumer stopped")
			}
		}()
	}

	addr := ":" + cfg.Port
	go func() {
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("listening")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
