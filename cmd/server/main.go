// cmd/server/main.go
// This is the entry point for the Golf Tour API server.
// The "cmd/server" directory follows a common Go convention: the cmd/ folder holds executable
// binaries, and internal/ holds packages that are not meant to be imported by other projects.
package main

import (
	"os"
	"os/signal"
	"syscall"

	// fiber is a fast HTTP web framework inspired by Express.js
	"github.com/gofiber/fiber/v2"
	// adaptor lets a net/http handler (the Prometheus scrape endpoint) run inside fiber
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	// cors handles Cross-Origin Resource Sharing so browser and mobile clients can call the API
	"github.com/gofiber/fiber/v2/middleware/cors"
	// logger prints request details (method, path, status, duration) to stdout
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/trentd187/golf-tour/internal/competitions"
	"github.com/trentd187/golf-tour/internal/config"
	"github.com/trentd187/golf-tour/internal/database"
	"github.com/trentd187/golf-tour/internal/handlers"
	"github.com/trentd187/golf-tour/internal/leaderboard"
	"github.com/trentd187/golf-tour/internal/logging"
	"github.com/trentd187/golf-tour/internal/metrics"
	"github.com/trentd187/golf-tour/internal/repository"
)

func main() {
	// Load configuration from environment variables (and optionally a .env file).
	cfg := config.Load()
	log := logging.New(cfg.LogLevel)

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	db, err := database.Connect(cfg.DatabaseURL, cfg.IsDevelopment())
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}

	// Running migrations on startup keeps the schema in sync with the binary.
	if err := database.RunMigrations(cfg.MigrationsPath, cfg.DatabaseURL, log); err != nil {
		log.WithError(err).Fatal("failed to run migrations")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// The registry is static; building it validates every competition definition once.
	registry, err := competitions.NewRegistry(competitions.Catalog()...)
	if err != nil {
		log.WithError(err).Fatal("invalid competition catalog")
	}

	store := repository.NewStore(db)
	svc := leaderboard.NewService(store, competitions.NewEngine(registry), m, log)

	app := fiber.New(fiber.Config{
		AppName:      "Golf Tour API",
		ErrorHandler: handlers.ErrorHandler(log),
	})

	// --- Global middleware ---
	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	handlers.Register(app, handlers.Deps{Service: svc, Tours: store, JWTSecret: cfg.JWTSecret})

	// Shut down cleanly on SIGINT/SIGTERM so in-flight requests finish.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info("shutting down")
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("shutdown failed")
		}
	}()

	log.WithField("port", cfg.Port).Info("starting server")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
