package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/viharinalla/student-dashboard/internal/catalog"
	"github.com/viharinalla/student-dashboard/internal/config"
	"github.com/viharinalla/student-dashboard/internal/database"
	"github.com/viharinalla/student-dashboard/internal/handler"
	"github.com/viharinalla/student-dashboard/internal/logger"
	"github.com/viharinalla/student-dashboard/internal/repository"
	"github.com/viharinalla/student-dashboard/internal/router"
	"github.com/viharinalla/student-dashboard/internal/service"
	"github.com/viharinalla/student-dashboard/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Str("catalog_source", cfg.CatalogSource).
		Str("token_mode", cfg.TokenMode).
		Msg("Starting Student Dashboard API")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Load Catalog ──────────────────────────────────────────────────
	// The catalog is read once here and stays read-only for the life of
	// the process.
	cat, err := loadCatalog(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load catalog")
	}
	counts := log.Info()
	for k, v := range cat.Counts() {
		counts = counts.Int(k, v)
	}
	counts.Msg("Catalog loaded")

	// ─── Initialize Services ──────────────────────────────────────────
	catalogService := service.NewCatalogService(cat, log)
	authService := service.NewAuthService(cfg)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Health:    handler.NewHealthHandler(),
		Auth:      handler.NewAuthHandler(authService, log),
		Course:    handler.NewCourseHandler(catalogService),
		Dashboard: handler.NewDashboardHandler(catalogService),
		Community: handler.NewCommunityHandler(catalogService),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, cfg, log)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// loadCatalog builds the catalog from the configured source. The postgres
// pool is only held for the duration of the load.
func loadCatalog(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*catalog.Catalog, error) {
	switch cfg.CatalogSource {
	case config.CatalogSourceEmbedded, "":
		return catalog.Load(ctx, catalog.EmbeddedSource{})
	case config.CatalogSourceFile:
		if cfg.CatalogFile == "" {
			return nil, fmt.Errorf("CATALOG_FILE is required when CATALOG_SOURCE=%s", config.CatalogSourceFile)
		}
		return catalog.Load(ctx, catalog.FileSource{Path: cfg.CatalogFile})
	case config.CatalogSourcePostgres:
		pool, err := database.NewPostgresPool(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		defer pool.Close()
		return catalog.Load(ctx, repository.NewCatalogRepository(pool))
	default:
		return nil, fmt.Errorf("unknown CATALOG_SOURCE %q", cfg.CatalogSource)
	}
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
