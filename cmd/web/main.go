package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/CAFxX/httpcompression"

	"superstore-dashboard/internal/config"
	"superstore-dashboard/internal/middleware"
	"superstore-dashboard/internal/observability"
	"superstore-dashboard/internal/server"
	"superstore-dashboard/internal/services"
	"superstore-dashboard/internal/ui/templates"
)

const (
	renderTimeout  = 10 * time.Second
	csvLoadTimeout = 30 * time.Second
	cacheMaxAge    = "public, max-age=300"
)

func handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), renderTimeout)
	defer cancel()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", cacheMaxAge)
	if err := templates.Dashboard().Render(ctx, w); err != nil {
		http.Error(w, "render error", http.StatusInternalServerError)
	}
}

// loadDataset fills the analytics store from the configured source: the
// seeded synthetic generator by default, or a CSV file in the export schema.
func loadDataset(analytics *services.Analytics, cfg *config.Config, logger *slog.Logger) error {
	start := time.Now()

	if cfg.Dataset.Source == "csv" {
		ctx, cancel := context.WithTimeout(context.Background(), csvLoadTimeout)
		defer cancel()
		if err := analytics.LoadFromCSV(ctx, cfg.Dataset.CSVFile); err != nil {
			return err
		}
	} else {
		orders := services.GenerateOrders(cfg.Dataset.Seed, cfg.Dataset.Rows, cfg.Dataset.StartDate, cfg.Dataset.EndDate)
		analytics.SetData(orders)
	}

	logger.Info("dataset ready",
		"source", cfg.Dataset.Source,
		"records", len(analytics.Orders()),
		"duration", time.Since(start),
	)
	return nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg.Logger)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"version", "1.0.0",
		"addr", cfg.Address(),
	)

	analytics := services.NewAnalytics()
	if err := loadDataset(analytics, cfg, logger); err != nil {
		logger.Error("failed to load dataset", "error", err)
		os.Exit(1)
	}

	templateHandlers := &server.TemplateHandlers{
		Dashboard: handleDashboard,
	}

	srv := server.NewServer(analytics, logger, templateHandlers)

	rateLimiter := middleware.NewRateLimiter(cfg.Security)

	middlewareChain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Tracing(),
		middleware.SecurityHeaders(),
		middleware.CORS(cfg.Security),
		middleware.TrustedProxy(cfg.Security),
		middleware.RateLimit(rateLimiter, logger),
	)

	compress, err := httpcompression.DefaultAdapter()
	if err != nil {
		logger.Error("failed to build compression adapter", "error", err)
		os.Exit(1)
	}

	handler := compress(middlewareChain(srv))

	httpServer := &http.Server{
		Addr:         cfg.Address(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	gracefulServer := server.NewGracefulServer(httpServer, logger, cfg)

	gracefulServer.RegisterShutdownHook(func(ctx context.Context) error {
		logger.Info("shutting down analytics service")
		return nil
	})

	if err := gracefulServer.ListenAndServe(); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}

	logger.Info("application stopped gracefully")
}
