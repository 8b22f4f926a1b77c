package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"engagement-metrics-service/internal/config"
	"engagement-metrics-service/internal/database"

	eventsHttp "engagement-metrics-service/internal/events/adapters/http/fiber"
	eventsRepoPg "engagement-metrics-service/internal/events/adapters/postgres"
	eventsUsecase "engagement-metrics-service/internal/events/core/usecase"

	metricsHttp "engagement-metrics-service/internal/metrics/adapters/http/fiber"
	metricsRepoPg "engagement-metrics-service/internal/metrics/adapters/postgres"
	metricsUsecase "engagement-metrics-service/internal/metrics/core/usecase"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	fiberSwagger "github.com/swaggo/fiber-swagger"

	_ "engagement-metrics-service/docs"
)

// @title Engagement Metrics Service API
// @version 1.0
// @description Ingests product interaction events and serves per-account engagement metrics.
// @BasePath /
func main() {
	// Config
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}

	setupLogging(cfg)

	// Migration subcommands run instead of the server.
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		if err := handleMigrationCommand(cfg.PostgresDSN); err != nil {
			log.WithError(err).Fatal("migration failed")
		}
		return
	}

	// DB connection
	db, err := database.Open(database.Config{
		DSN:             cfg.PostgresDSN,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		log.WithError(err).Fatal("failed to open postgres")
	}
	defer db.Close()

	// Adapter-level DB wrappers
	eventsDB := eventsRepoPg.NewSQLDB(db)
	metricsDB := metricsRepoPg.NewSQLDB(db)

	// Repositories
	eventRepository := eventsRepoPg.NewEventRepository(eventsDB)
	eventSource := metricsRepoPg.NewEventSource(metricsDB)

	// Usecases
	recordEventUC := eventsUsecase.NewRecordEventUseCase(eventRepository)
	engagementUC := metricsUsecase.NewEngagementUseCase(eventSource)

	// HTTP (Fiber) app + handlers
	app := fiber.New()

	// events endpoints
	eventsHandler := eventsHttp.NewEventHandler(recordEventUC)
	app.Post("/events", eventsHandler.CreateEvent)
	app.Post("/events/bulk", eventsHandler.BulkCreateEvents)

	// engagement endpoints
	engagementHandler := metricsHttp.NewEngagementHandler(engagementUC)
	app.Get("/metrics/engagement/dau", engagementHandler.GetAverageDailyActiveUsers)
	app.Get("/metrics/engagement/mau", engagementHandler.GetMonthlyActiveUsers)
	app.Get("/metrics/engagement/growth", engagementHandler.GetUserGrowthRate)

	// Swagger
	app.Get("/docs/*", fiberSwagger.WrapHandler)

	// Graceful shutdown
	go func() {
		if err := app.Listen(cfg.HTTPAddr); err != nil {
			log.WithError(err).Error("fiber stopped")
		}
	}()

	log.WithField("addr", cfg.HTTPAddr).Info("server started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit

	log.Info("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.WithError(err).Error("fiber shutdown error")
	}

	log.Info("server exiting")
}

func setupLogging(cfg config.Config) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.LogJSON {
		log.SetFormatter(&log.JSONFormatter{})
	}
}

func handleMigrationCommand(dsn string) error {
	if len(os.Args) < 3 {
		return fmt.Errorf("usage: api migrate [up|down|status] [steps]")
	}

	switch os.Args[2] {
	case "up":
		return database.MigrateUp(dsn)
	case "down":
		steps := 1
		if len(os.Args) > 3 {
			parsed, err := strconv.Atoi(os.Args[3])
			if err != nil {
				return fmt.Errorf("invalid steps argument %q", os.Args[3])
			}
			steps = parsed
		}
		return database.MigrateDown(dsn, steps)
	case "status":
		return database.MigrateStatus(dsn)
	default:
		return fmt.Errorf("unknown migration command: %s", os.Args[2])
	}
}
