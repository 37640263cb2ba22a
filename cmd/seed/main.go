package main

import (
	"context"
	"flag"
	"os"
	"time"

	"property_catalog_backend/internal/adapters"
	listingsdomain "property_catalog_backend/internal/listings/domain"
	listingsrepo "property_catalog_backend/internal/listings/repository"
	listingsservice "property_catalog_backend/internal/listings/service"
	statsdomain "property_catalog_backend/internal/stats/domain"
	statsrepo "property_catalog_backend/internal/stats/repository"
	statsservice "property_catalog_backend/internal/stats/service"
	"property_catalog_backend/platform/config"
	"property_catalog_backend/platform/db"
	"property_catalog_backend/platform/logger"
)

func main() {
	file := flag.String("file", "listings.yaml", "YAML fixture file to import")
	dryRun := flag.Bool("dry-run", false, "validate and summarise the fixtures without writing to the database")
	flag.Parse()

	log := logger.New(os.Getenv("APP_ENV"))

	f, err := os.Open(*file)
	if err != nil {
		log.Error("failed to open fixture file", "file", *file, "error", err)
		panic("failed to open fixture file: " + err.Error())
	}
	fixtures, err := decodeFixtures(f)
	_ = f.Close()
	if err != nil {
		log.Error("failed to read fixtures", "file", *file, "error", err)
		panic("failed to read fixtures: " + err.Error())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if *dryRun {
		if err := summarise(ctx, fixtures, log); err != nil {
			log.Error("dry run failed", "error", err)
			panic("dry run failed: " + err.Error())
		}
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Error("failed to load config", "error", err)
		panic("failed to load config: " + err.Error())
	}
	if err := db.RunMigrations(ctx, cfg); err != nil {
		log.Error("failed to run database migrations", "error", err)
		panic("failed to run database migrations: " + err.Error())
	}
	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()

	svc := listingsservice.New(listingsrepo.New(pool), nil, nil, listingsservice.SettingsFromConfig(cfg, ""), log)
	imported := 0
	for _, l := range fixtures {
		created, err := svc.Import(ctx, l)
		if err != nil {
			log.Error("failed to import listing", "title", l.Title, "error", err)
			panic("failed to import listing: " + err.Error())
		}
		imported++
		log.Debug("listing imported", "id", created.ID, "title", created.Title)
	}
	log.Info("seed complete", "file", *file, "imported", imported)
}

// summarise imports into memory and logs the statistics the fixtures would produce.
func summarise(ctx context.Context, fixtures []listingsdomain.Listing, log *logger.Logger) error {
	repo := listingsrepo.NewMemory()
	svc := listingsservice.New(repo, nil, nil, listingsservice.DefaultSettings(), log)
	for _, l := range fixtures {
		if _, err := svc.Import(ctx, l); err != nil {
			return err
		}
	}

	source := statsrepo.NewMemory(adapters.StatsListingFacts(repo.All()), nil, nil)
	stats := statsservice.New(source, statsservice.DefaultSettings(), log)
	report, err := stats.Report(ctx, 30, statsdomain.ScopeActive)
	if err != nil {
		return err
	}

	log.Info("dry run complete",
		"listings", report.Overview.Listings.Total,
		"active", report.Overview.Listings.Active,
		"featured", report.Overview.Listings.Featured,
		"averagePrice", report.Prices.Average,
		"propertyTypes", len(report.ByType),
		"cities", len(report.ByCity),
	)
	return nil
}
