package main

import (
	"context"
	"fmt"
	"time"

	"github.com/viharinalla/student-dashboard/internal/catalog"
	"github.com/viharinalla/student-dashboard/internal/config"
	"github.com/viharinalla/student-dashboard/internal/database"
	"github.com/viharinalla/student-dashboard/internal/logger"
	"github.com/viharinalla/student-dashboard/internal/repository"
)

// seed-catalog copies the embedded catalog (or CATALOG_FILE when set) into
// the PostgreSQL catalog tables, replacing whatever is there.
func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	var src catalog.Source = catalog.EmbeddedSource{}
	origin := "embedded seed"
	if cfg.CatalogFile != "" {
		src = catalog.FileSource{Path: cfg.CatalogFile}
		origin = cfg.CatalogFile
	}

	cat, err := catalog.Load(ctx, src)
	if err != nil {
		log.Fatal().Err(err).Str("source", origin).Msg("Failed to load catalog")
	}

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	fmt.Printf("=== Seeding catalog from %s ===\n", origin)

	repo := repository.NewCatalogRepository(pool)
	if err := repo.Replace(ctx, cat.Snapshot()); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed catalog")
	}

	for table, n := range cat.Counts() {
		fmt.Printf("  %-12s %d\n", table, n)
	}
	fmt.Println("\nSeed completed!")
}
