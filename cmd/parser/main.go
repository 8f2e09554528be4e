package main

import (
	"fmt"
	"os"

	"accredparser/cmd/internal/config"
	"accredparser/cmd/internal/domain/sqlite"
	"accredparser/cmd/internal/domain/sqlite/repository"
	"accredparser/cmd/internal/infrastructure/opendata"
	"accredparser/cmd/internal/infrastructure/state"
	"accredparser/cmd/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "accredparser",
		Usage: "Ingests the accreditation registry open-data export into SQLite",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:  "data-url",
				Usage: "Open-data archive endpoint",
			},
			&cli.StringFlag{
				Name:  "cache-dir",
				Usage: "Directory the archive is downloaded and extracted into",
			},
			&cli.StringFlag{
				Name:  "state-file",
				Usage: "Path of the fingerprint state file",
			},
			&cli.StringFlag{
				Name:  "db-file",
				Usage: "Path of the SQLite database",
			},
			&cli.IntFlag{
				Name:  "batch-size",
				Usage: "Number of staged entities per commit",
			},
			&cli.StringFlag{
				Name:  "mode",
				Usage: "Ingestion mode: 'full' keeps every organization, 'higher' keeps universities and branches only",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Errorf("Run failed: %v", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	setLogLevel(c.String("log-level"))

	cfg := config.Load()
	applyFlags(c, cfg)
	if err := cfg.Validate(validator.New()); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Fetch and unpack; any failure here is fatal before parsing begins.
	client := opendata.NewClient(cfg.DataURL, cfg.CacheDir)
	if _, err := client.DownloadAndExtract(c.Context); err != nil {
		return fmt.Errorf("fetching data: %w", err)
	}

	xmlPath, err := opendata.FindXML(cfg.CacheDir)
	if err != nil {
		return fmt.Errorf("scanning cache dir: %w", err)
	}
	if xmlPath == "" {
		return fmt.Errorf("no XML file found in %s", cfg.CacheDir)
	}

	needs, err := state.New(cfg.StateFile).NeedsProcessing(xmlPath)
	if err != nil {
		return fmt.Errorf("checking file state: %w", err)
	}
	if !needs {
		log.Info("Data unchanged, nothing to process")
		return nil
	}

	db, err := sqlite.Init(cfg.DBFile)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}

	refRepo := repository.NewReferenceRepository(db)
	if err := refRepo.SeedAll(); err != nil {
		return fmt.Errorf("seeding reference data: %w", err)
	}
	refs, err := loadReferenceCache(refRepo)
	if err != nil {
		return fmt.Errorf("loading reference cache: %w", err)
	}

	ingestor := service.NewIngestService(
		repository.NewIngestStore(db),
		refs,
		service.Mode(cfg.Mode),
		cfg.BatchSize,
	)

	log.Info("Starting ingestion...")
	report, err := ingestor.Run(xmlPath)
	if err != nil {
		return fmt.Errorf("ingestion aborted: %w", err)
	}

	stats, err := repository.NewStatsRepository(db).Collect()
	if err != nil {
		return fmt.Errorf("collecting statistics: %w", err)
	}
	logSummary(report, stats)
	return nil
}

func loadReferenceCache(repo *repository.DefaultReferenceRepository) (*service.ReferenceCache, error) {
	orgTypes, err := repo.OrgTypeIDs()
	if err != nil {
		return nil, err
	}
	levels, err := repo.LevelIDs()
	if err != nil {
		return nil, err
	}
	forms, err := repo.FormIDs()
	if err != nil {
		return nil, err
	}
	return &service.ReferenceCache{OrgTypes: orgTypes, Levels: levels, Forms: forms}, nil
}

func logSummary(report *service.RunReport, stats *repository.RunStats) {
	log.Infof("Run %s finished in %.2fs: %d records seen, %d persisted, %d skipped, %d failed",
		report.RunID, report.Duration.Seconds(),
		report.Records, report.Persisted, report.Skipped, report.Failed)
	log.Infof("Totals: %d organizations (%d main universities, %d branches), "+
		"%d certificates, %d programs, %d decisions, %d entrepreneurs",
		stats.Organizations, stats.MainHigher, stats.Branches,
		stats.Certificates, stats.Programs, stats.Decisions, stats.Entrepreneurs)
}

func setLogLevel(level string) {
	switch level {
	case "debug":
		log.SetLevel(log.DEBUG)
	case "warn":
		log.SetLevel(log.WARN)
	case "error":
		log.SetLevel(log.ERROR)
	default:
		log.SetLevel(log.INFO)
	}
}

// applyFlags lets CLI flags override the environment-derived config.
func applyFlags(c *cli.Context, cfg *config.Config) {
	if c.IsSet("data-url") {
		cfg.DataURL = c.String("data-url")
	}
	if c.IsSet("cache-dir") {
		cfg.CacheDir = c.String("cache-dir")
	}
	if c.IsSet("state-file") {
		cfg.StateFile = c.String("state-file")
	}
	if c.IsSet("db-file") {
		cfg.DBFile = c.String("db-file")
	}
	if c.IsSet("batch-size") {
		cfg.BatchSize = c.Int("batch-size")
	}
	if c.IsSet("mode") {
		cfg.Mode = c.String("mode")
	}
}
