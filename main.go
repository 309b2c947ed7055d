package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/insightdelivered/financial-analytics/internal/api"
	"github.com/insightdelivered/financial-analytics/internal/config"
	"github.com/insightdelivered/financial-analytics/internal/storage"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	store, disconnect, err := newStore(cfg, logger)
	if err != nil {
		logger.Error("storage init failed", "error", err)
		os.Exit(1)
	}

	app := fiber.New(fiber.Config{
		AppName:      "Financial Analytics API",
		BodyLimit:    cfg.BodyLimitMB << 20,
		ErrorHandler: api.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Content-Type",
	}))

	api.NewHandler(store, logger).RegisterRoutes(app)

	// Serve until interrupted, then drain in-flight requests.
	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Port)
		logger.Info("listening", "addr", addr)
		errCh <- app.Listen(addr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	case sig := <-sigCh:
		logger.Info("shutting down", "signal", sig.String())
	}

	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		logger.Error("shutdown error", "error", err)
	}

	if disconnect != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := disconnect(ctx); err != nil {
			logger.Error("mongo disconnect error", "error", err)
		}
	}
}

// newStore picks the MongoDB store when MONGO_URL is configured, otherwise
// the in-memory store for local runs.
func newStore(cfg *config.Config, logger *slog.Logger) (storage.Store, func(context.Context) error, error) {
	if cfg.MongoURL == "" {
		logger.Warn("MONGO_URL not set; using in-memory store, records will not survive restarts")
		return storage.NewMemoryStore(), nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, disconnect, err := storage.NewMongoStore(ctx, cfg.MongoURL, cfg.DBName)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("connected to MongoDB", "database", cfg.DBName)
	return store, disconnect, nil
}
