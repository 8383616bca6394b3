package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/sessionbook/booking-api/internal/api"
	"github.com/sessionbook/booking-api/internal/infrastructure/db/mongo"
	"github.com/sessionbook/booking-api/internal/infrastructure/db/redis"
	"github.com/sessionbook/booking-api/internal/infrastructure/worker"
	"github.com/sessionbook/booking-api/internal/pkg/config"
	"github.com/sessionbook/booking-api/pkg/logger"
)

// @title        SessionBook Booking API
// @version      1.0
// @description  Expert session marketplace: directory, availability, bookings and dashboards.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.Load()

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongo disconnect failed")
		}
	}()

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close failed")
		}
	}()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	bookingRepo := mongo.NewBookingRepository(db)
	reconciler := worker.NewReconciler(cfg.Reconciler.Workers, cfg.Reconciler.Interval, bookingRepo, log)
	reconciler.Start(ctx)

	e := api.NewRouter(db, rdb, cfg, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}

func ensureIndexes(ctx context.Context, db *mongodriver.Database) error {
	repos := []interface {
		EnsureIndexes(context.Context) error
	}{
		mongo.NewProfileRepository(db),
		mongo.NewExpertRepository(db),
		mongo.NewSessionTypeRepository(db),
		mongo.NewBookingRepository(db),
	}
	for _, r := range repos {
		if err := r.EnsureIndexes(ctx); err != nil {
			return err
		}
	}
	return nil
}
